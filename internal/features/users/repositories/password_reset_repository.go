package users_repositories

import (
	"time"

	users_models "collabriq-backend/internal/features/users/models"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PasswordResetRepository struct{}

// ReplaceByEmail deletes any existing token for the email before inserting
// the new one, keeping at most one live token per email.
func (r *PasswordResetRepository) ReplaceByEmail(
	email, token string,
) (*users_models.PasswordResetToken, error) {
	entry := &users_models.PasswordResetToken{
		ID:        uuid.New(),
		Email:     email,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).
			Delete(&users_models.PasswordResetToken{}).Error; err != nil {
			return err
		}

		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *PasswordResetRepository) GetByToken(
	token string,
) (*users_models.PasswordResetToken, error) {
	var entry users_models.PasswordResetToken

	err := storage.GetDb().Where("token = ?", token).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *PasswordResetRepository) GetByEmail(
	email string,
) ([]*users_models.PasswordResetToken, error) {
	var entries []*users_models.PasswordResetToken

	err := storage.GetDb().Where("email = ?", email).Find(&entries).Error

	return entries, err
}

func (r *PasswordResetRepository) DeleteToken(tokenID uuid.UUID) error {
	return storage.GetDb().Delete(&users_models.PasswordResetToken{}, tokenID).Error
}

func (r *PasswordResetRepository) DeleteCreatedBefore(cutoff time.Time) (int64, error) {
	result := storage.GetDb().
		Where("created_at < ?", cutoff).
		Delete(&users_models.PasswordResetToken{})

	return result.RowsAffected, result.Error
}
