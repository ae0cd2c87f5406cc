package users_testing

import (
	"fmt"
	"testing"
	"time"

	users_controllers "collabriq-backend/internal/features/users/controllers"
	users_middleware "collabriq-backend/internal/features/users/middleware"
	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	users_services "collabriq-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestUserPassword = "test-password-123"

// CreateTestRouter builds a gin engine with the user routes plus any extra
// route registrars. Public registrars attach to /api/v1 directly, protected
// ones go behind the auth middleware.
func CreateTestRouter(
	publicRegistrars []func(*gin.RouterGroup),
	protectedRegistrars []func(*gin.RouterGroup),
) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	public := router.Group("/api/v1")
	userController := users_controllers.GetUserController()
	userController.RegisterPublicRoutes(public)
	for _, register := range publicRegistrars {
		register(public)
	}

	protected := router.Group("/api/v1")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	userController.RegisterProtectedRoutes(protected)
	for _, register := range protectedRegistrars {
		register(protected)
	}

	return router
}

// CreateTestUser inserts an active user with a unique email/username/phone
// and returns it with a valid access token.
func CreateTestUser(t *testing.T) (*users_models.User, string) {
	t.Helper()

	suffix := uuid.New().String()[:13]

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(TestUserPassword), bcrypt.MinCost,
	)
	require.NoError(t, err)

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          fmt.Sprintf("user-%s@example.com", suffix),
		Username:       "user-" + suffix,
		PhoneNumber:    "+1" + suffix[:8] + suffix[9:11],
		DateOfBirth:    time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	require.NoError(t, users_repositories.GetUserRepository().CreateUser(user))

	token, err := users_services.GetUserService().GenerateAccessToken(user)
	require.NoError(t, err)

	return user, token
}
