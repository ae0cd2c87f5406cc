package users_services

import (
	"errors"
	"fmt"
	"time"

	users_dto "collabriq-backend/internal/features/users/dto"
	users_interfaces "collabriq-backend/internal/features/users/interfaces"
	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	"collabriq-backend/internal/features/mail"
	"collabriq-backend/internal/config"
	random_utils "collabriq-backend/internal/util/random"
	"collabriq-backend/internal/util/logger"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var log = logger.GetLogger()

const accessTokenTTL = 24 * time.Hour

type UserService struct {
	userRepository              *users_repositories.UserRepository
	emailVerificationRepository *users_repositories.EmailVerificationRepository
	passwordResetRepository     *users_repositories.PasswordResetRepository

	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// SendSignupLink creates (or refreshes) a verification token for the email
// and mails a signup link carrying it. Requesting a link again reuses the
// same row with a fresh token and expiry.
func (s *UserService) SendSignupLink(email string) error {
	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return errors.New("user with this email already exists")
	}

	token, err := s.emailVerificationRepository.UpsertByEmail(email)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/signup?token=%s", config.GetEnv().AppBaseURL, token.Token)
	body := fmt.Sprintf(
		"Hello,\n\nFollow this link to complete your registration:\n%s\n\nThe link is valid for 24 hours.",
		link,
	)

	if err := mail.GetMailSender().Send(email, "Complete your registration", body); err != nil {
		log.Error("Failed to send signup link", "email", email, "error", err)
		return errors.New("failed to send signup email")
	}

	return nil
}

// SignUpWithToken finishes registration started by SendSignupLink. The email
// is taken from the token row, never from the request.
func (s *UserService) SignUpWithToken(
	token uuid.UUID,
	request *users_dto.SignUpRequestDTO,
) (*users_models.User, error) {
	entry, err := s.emailVerificationRepository.GetByToken(token)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("signup link is invalid")
	}
	if entry.IsVerified {
		return nil, errors.New("signup link was already used")
	}
	if entry.IsExpired(time.Now().UTC()) {
		return nil, errors.New("signup link has expired")
	}

	if request.Password != request.ConfirmPassword {
		return nil, errors.New("passwords do not match")
	}

	dateOfBirth, err := time.Parse("2006-01-02", request.DateOfBirth)
	if err != nil {
		return nil, errors.New("date of birth must be in YYYY-MM-DD format")
	}

	existingUser, err := s.userRepository.GetUserByEmail(entry.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	sameUsername, err := s.userRepository.GetUserByUsername(request.Username)
	if err != nil {
		return nil, err
	}
	if sameUsername != nil {
		return nil, errors.New("username is already taken")
	}

	samePhone, err := s.userRepository.GetUserByPhoneNumber(request.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if samePhone != nil {
		return nil, errors.New("phone number is already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(request.Password), bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &users_models.User{
		ID:             uuid.New(),
		Email:          entry.Email,
		Username:       request.Username,
		PhoneNumber:    request.PhoneNumber,
		DateOfBirth:    dateOfBirth,
		HashedPassword: string(hashedPassword),
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, err
	}

	if err := s.emailVerificationRepository.MarkVerified(entry.ID); err != nil {
		log.Error("Failed to mark verification token as used", "error", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User %s signed up", user.Username), &user.ID, nil,
		)
	}

	return user, nil
}

func (s *UserService) SignIn(email, password string) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}
	if !user.IsActive {
		return nil, errors.New("account is deactivated")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}

// ForgotPassword mails a reset link. A repeated request invalidates the
// previous link because only one reset token per email is kept.
func (s *UserService) ForgotPassword(email string) error {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user with this email was not found")
	}

	rawToken, err := random_utils.GenerateToken(32)
	if err != nil {
		return err
	}

	if _, err := s.passwordResetRepository.ReplaceByEmail(email, rawToken); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", config.GetEnv().AppBaseURL, rawToken)
	body := fmt.Sprintf(
		"Hello %s,\n\nFollow this link to reset your password:\n%s\n\nThe link is valid for 1 hour.",
		user.Username,
		link,
	)

	if err := mail.GetMailSender().Send(email, "Reset your password", body); err != nil {
		log.Error("Failed to send password reset link", "email", email, "error", err)
		return errors.New("failed to send password reset email")
	}

	return nil
}

func (s *UserService) ResetPassword(token, password, confirmPassword string) error {
	entry, err := s.passwordResetRepository.GetByToken(token)
	if err != nil {
		return err
	}
	if entry == nil {
		return errors.New("reset link is invalid")
	}
	if !entry.IsValid(time.Now().UTC()) {
		return errors.New("reset link has expired")
	}

	if password != confirmPassword {
		return errors.New("passwords do not match")
	}

	user, err := s.userRepository.GetUserByEmail(entry.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user with this email was not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepository.UpdateUserPassword(user.ID, string(hashedPassword)); err != nil {
		return err
	}

	// The token is single use.
	if err := s.passwordResetRepository.DeleteToken(entry.ID); err != nil {
		log.Error("Failed to delete used reset token", "error", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("User %s reset their password", user.Username), &user.ID, nil,
		)
	}

	return nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) GenerateAccessToken(user *users_models.User) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.GetEnv().JwtSecret))
}

// GetUserFromToken validates the signed access token and loads its user.
func (s *UserService) GetUserFromToken(tokenString string) (*users_models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(config.GetEnv().JwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid access token")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid access token")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("invalid access token")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, errors.New("invalid access token")
	}
	if !user.IsActive {
		return nil, errors.New("account is deactivated")
	}

	return user, nil
}
