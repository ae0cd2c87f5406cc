package users_models

import (
	"time"

	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
)

const EmailVerificationTokenTTL = 24 * time.Hour

// EmailVerificationToken is keyed by email, not by user: it exists before
// the account does. One row per email, refreshed on every signup-link request.
type EmailVerificationToken struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id;primaryKey"`
	Email      string    `json:"email"      gorm:"column:email;uniqueIndex"`
	Token      uuid.UUID `json:"token"      gorm:"column:token;uniqueIndex"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
	IsVerified bool      `json:"isVerified" gorm:"column:is_verified"`
}

func (EmailVerificationToken) TableName() string {
	return "email_verification_tokens"
}

func (t *EmailVerificationToken) IsExpired(now time.Time) bool {
	return now.After(t.CreatedAt.Add(EmailVerificationTokenTTL))
}

func init() {
	storage.RegisterModels(&EmailVerificationToken{})
}
