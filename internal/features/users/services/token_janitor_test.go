package users_services

import (
	"testing"
	"time"

	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TokenJanitor_PurgesOnlyExpiredTokens(t *testing.T) {
	freshEmail := uniqueEmail()
	staleEmail := uniqueEmail()

	fresh, err := users_repositories.GetEmailVerificationRepository().UpsertByEmail(freshEmail)
	require.NoError(t, err)

	stale, err := users_repositories.GetEmailVerificationRepository().UpsertByEmail(staleEmail)
	require.NoError(t, err)

	backdated := time.Now().UTC().Add(-users_models.EmailVerificationTokenTTL - time.Hour)
	require.NoError(t, storage.GetDb().Model(&users_models.EmailVerificationToken{}).
		Where("id = ?", stale.ID).
		Update("created_at", backdated).Error)

	expiredReset := &users_models.PasswordResetToken{
		ID:        uuid.New(),
		Email:     staleEmail,
		Token:     uuid.New().String(),
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
	require.NoError(t, storage.GetDb().Create(expiredReset).Error)

	GetTokenJanitor().PurgeExpiredTokens()

	kept, err := users_repositories.GetEmailVerificationRepository().GetByToken(fresh.Token)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	gone, err := users_repositories.GetEmailVerificationRepository().GetByToken(stale.Token)
	require.NoError(t, err)
	assert.Nil(t, gone)

	resetGone, err := users_repositories.GetPasswordResetRepository().GetByToken(expiredReset.Token)
	require.NoError(t, err)
	assert.Nil(t, resetGone)
}
