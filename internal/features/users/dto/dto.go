package users_dto

import (
	"time"

	"github.com/google/uuid"
)

type SendSignupLinkRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type SignUpRequestDTO struct {
	Username        string `json:"username"        binding:"required,min=1,max=150"`
	DateOfBirth     string `json:"dateOfBirth"     binding:"required"` // YYYY-MM-DD
	PhoneNumber     string `json:"phoneNumber"     binding:"required,min=5,max=15"`
	Password        string `json:"password"        binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type ForgotPasswordRequestDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequestDTO struct {
	Password        string `json:"password"        binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UserProfileResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phoneNumber"`
	DateOfBirth string    `json:"dateOfBirth"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
