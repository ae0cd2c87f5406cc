package users_controllers

import (
	"net/http"
	"strings"

	users_dto "collabriq-backend/internal/features/users/dto"
	users_middleware "collabriq-backend/internal/features/users/middleware"
	users_services "collabriq-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type UserController struct {
	userService *users_services.UserService

	authLimiter *rate.Limiter
}

func (c *UserController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/users/signup-link", c.SendSignupLink)
	router.POST("/users/signup/:token", c.SignUp)
	router.POST("/users/signin", c.SignIn)
	router.POST("/users/forgot-password", c.ForgotPassword)
	router.POST("/users/reset-password/:token", c.ResetPassword)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/me", c.GetProfile)
}

// SendSignupLink
// @Summary Email a signup link
// @Tags users
// @Accept json
// @Param request body users_dto.SendSignupLinkRequestDTO true "Email"
// @Success 200
// @Router /users/signup-link [post]
func (c *UserController) SendSignupLink(ctx *gin.Context) {
	if !c.authLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var request users_dto.SendSignupLinkRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := c.userService.SendSignupLink(strings.ToLower(request.Email)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.MessageResponseDTO{
		Message: "signup link sent",
	})
}

// SignUp
// @Summary Complete registration using an emailed token
// @Tags users
// @Accept json
// @Param token path string true "Signup token"
// @Param request body users_dto.SignUpRequestDTO true "Profile"
// @Success 201 {object} users_dto.UserProfileResponseDTO
// @Router /users/signup/{token} [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	token, err := uuid.Parse(ctx.Param("token"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "signup link is invalid"})
		return
	}

	var request users_dto.SignUpRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := c.userService.SignUpWithToken(token, &request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, users_dto.UserProfileResponseDTO{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	})
}

// SignIn
// @Summary Exchange credentials for an access token
// @Tags users
// @Accept json
// @Param request body users_dto.SignInRequestDTO true "Credentials"
// @Success 200 {object} users_dto.SignInResponseDTO
// @Router /users/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	if !c.authLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var request users_dto.SignInRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	response, err := c.userService.SignIn(strings.ToLower(request.Email), request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ForgotPassword
// @Summary Email a password reset link
// @Tags users
// @Accept json
// @Param request body users_dto.ForgotPasswordRequestDTO true "Email"
// @Success 200
// @Router /users/forgot-password [post]
func (c *UserController) ForgotPassword(ctx *gin.Context) {
	if !c.authLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		return
	}

	var request users_dto.ForgotPasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := c.userService.ForgotPassword(strings.ToLower(request.Email)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.MessageResponseDTO{
		Message: "password reset link sent",
	})
}

// ResetPassword
// @Summary Set a new password using an emailed token
// @Tags users
// @Accept json
// @Param token path string true "Reset token"
// @Param request body users_dto.ResetPasswordRequestDTO true "New password"
// @Success 200
// @Router /users/reset-password/{token} [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	var request users_dto.ResetPasswordRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := c.userService.ResetPassword(
		ctx.Param("token"), request.Password, request.ConfirmPassword,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.MessageResponseDTO{
		Message: "password updated",
	})
}

// GetProfile
// @Summary Current user's profile
// @Tags users
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Router /users/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.UserProfileResponseDTO{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		DateOfBirth: user.DateOfBirth.Format("2006-01-02"),
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	})
}
