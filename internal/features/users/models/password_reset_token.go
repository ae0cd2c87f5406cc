package users_models

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

const PasswordResetTokenTTL = time.Hour

// At most one live reset token exists per email: issuing a new one deletes
// the previous row first.
type PasswordResetToken struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	Email     string    `json:"email"     gorm:"column:email;uniqueIndex"`
	Token     string    `json:"token"     gorm:"column:token;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return now.Before(t.CreatedAt.Add(PasswordResetTokenTTL))
}

func init() {
	storage.RegisterModels(&PasswordResetToken{})
}
