package users_repositories

import (
	"time"

	users_models "collabriq-backend/internal/features/users/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmailVerificationRepository struct{}

// UpsertByEmail refreshes the token row for the email: a new token value,
// a reset creation timestamp and a cleared verified flag.
func (r *EmailVerificationRepository) UpsertByEmail(
	email string,
) (*users_models.EmailVerificationToken, error) {
	var existing users_models.EmailVerificationToken

	err := storage.GetDb().Where("email = ?", email).First(&existing).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err == gorm.ErrRecordNotFound {
		token := &users_models.EmailVerificationToken{
			ID:         uuid.New(),
			Email:      email,
			Token:      uuid.New(),
			CreatedAt:  time.Now().UTC(),
			IsVerified: false,
		}

		if err := storage.GetDb().Create(token).Error; err != nil {
			return nil, err
		}

		return token, nil
	}

	existing.Token = uuid.New()
	existing.CreatedAt = time.Now().UTC()
	existing.IsVerified = false

	if err := storage.GetDb().Save(&existing).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

func (r *EmailVerificationRepository) GetByToken(
	token uuid.UUID,
) (*users_models.EmailVerificationToken, error) {
	var entry users_models.EmailVerificationToken

	err := storage.GetDb().Where("token = ?", token).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *EmailVerificationRepository) MarkVerified(tokenID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.EmailVerificationToken{}).
		Where("id = ?", tokenID).
		Update("is_verified", true).Error
}

func (r *EmailVerificationRepository) DeleteCreatedBefore(cutoff time.Time) (int64, error) {
	result := storage.GetDb().
		Where("created_at < ?", cutoff).
		Delete(&users_models.EmailVerificationToken{})

	return result.RowsAffected, result.Error
}
