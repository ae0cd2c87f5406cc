package users_middleware

import (
	"net/http"
	"strings"

	users_models "collabriq-backend/internal/features/users/models"
	users_services "collabriq-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "authenticatedUser"

// AuthMiddleware rejects requests without a valid Bearer token and stores
// the resolved user in the request context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized, gin.H{"error": "authorization header is missing"},
			)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized, gin.H{"error": "authorization header is malformed"},
			)
			return
		}

		user, err := userService.GetUserFromToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) (*users_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)

	return user, ok
}
