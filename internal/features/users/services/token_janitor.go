package users_services

import (
	"time"

	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
)

// TokenJanitor removes expired signup and password-reset tokens. It runs
// hourly from the background scheduler in main.
type TokenJanitor struct {
	emailVerificationRepository *users_repositories.EmailVerificationRepository
	passwordResetRepository     *users_repositories.PasswordResetRepository
}

func (j *TokenJanitor) PurgeExpiredTokens() {
	now := time.Now().UTC()

	removed, err := j.emailVerificationRepository.DeleteCreatedBefore(
		now.Add(-users_models.EmailVerificationTokenTTL),
	)
	if err != nil {
		log.Error("Failed to purge expired signup tokens", "error", err)
	} else if removed > 0 {
		log.Info("Purged expired signup tokens", "count", removed)
	}

	removed, err = j.passwordResetRepository.DeleteCreatedBefore(
		now.Add(-users_models.PasswordResetTokenTTL),
	)
	if err != nil {
		log.Error("Failed to purge expired reset tokens", "error", err)
	} else if removed > 0 {
		log.Info("Purged expired reset tokens", "count", removed)
	}
}
