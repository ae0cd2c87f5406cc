package users_models

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	Email          string    `json:"email"       gorm:"column:email;uniqueIndex"`
	Username       string    `json:"username"    gorm:"column:username;uniqueIndex"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"column:phone_number;uniqueIndex"`
	DateOfBirth    time.Time `json:"dateOfBirth" gorm:"column:date_of_birth"`
	HashedPassword string    `json:"-"           gorm:"column:hashed_password"`
	IsActive       bool      `json:"isActive"    gorm:"column:is_active"`
	IsStaff        bool      `json:"isStaff"     gorm:"column:is_staff"`
	CreatedAt      time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func init() {
	storage.RegisterModels(&User{})
}
