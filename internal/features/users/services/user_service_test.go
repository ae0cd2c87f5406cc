package users_services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	users_dto "collabriq-backend/internal/features/users/dto"
	users_models "collabriq-backend/internal/features/users/models"
	users_repositories "collabriq-backend/internal/features/users/repositories"
	"collabriq-backend/internal/features/mail"
	"collabriq-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signupTokenPattern = regexp.MustCompile(`signup\?token=([0-9a-f-]+)`)
var resetTokenPattern = regexp.MustCompile(`reset-password\?token=([0-9a-f]+)`)

func installFakeSender(t *testing.T) *mail.FakeSender {
	t.Helper()

	fake := &mail.FakeSender{}
	mail.SetMailSender(fake)
	t.Cleanup(func() { mail.SetMailSender(&mail.SMTPSender{}) })

	return fake
}

func uniqueEmail() string {
	return fmt.Sprintf("signup-%s@example.com", uuid.New().String()[:8])
}

func signupRequest(suffix string) *users_dto.SignUpRequestDTO {
	return &users_dto.SignUpRequestDTO{
		Username:        "newuser-" + suffix,
		DateOfBirth:     "1991-06-02",
		PhoneNumber:     "+9100" + suffix,
		Password:        "strong-password",
		ConfirmPassword: "strong-password",
	}
}

func Test_SendSignupLink_MailsTokenizedLink(t *testing.T) {
	fake := installFakeSender(t)
	email := uniqueEmail()

	require.NoError(t, GetUserService().SendSignupLink(email))

	message := fake.LastMessage()
	require.NotNil(t, message)
	assert.Equal(t, email, message.To)
	assert.Regexp(t, signupTokenPattern, message.Body)
}

func Test_SendSignupLink_RepeatRequestRotatesToken(t *testing.T) {
	fake := installFakeSender(t)
	email := uniqueEmail()

	require.NoError(t, GetUserService().SendSignupLink(email))
	firstToken := signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1]

	require.NoError(t, GetUserService().SendSignupLink(email))
	secondToken := signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1]

	assert.NotEqual(t, firstToken, secondToken)

	// The superseded token no longer resolves.
	entry, err := users_repositories.GetEmailVerificationRepository().
		GetByToken(uuid.MustParse(firstToken))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func Test_SignUpWithToken_CreatesActiveUser(t *testing.T) {
	fake := installFakeSender(t)
	email := uniqueEmail()

	require.NoError(t, GetUserService().SendSignupLink(email))
	token := uuid.MustParse(signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	user, err := GetUserService().SignUpWithToken(token, signupRequest(uuid.New().String()[:8]))
	require.NoError(t, err)

	assert.Equal(t, email, user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "strong-password", user.HashedPassword)

	// The same link cannot be used twice.
	_, err = GetUserService().SignUpWithToken(token, signupRequest(uuid.New().String()[:8]))
	require.Error(t, err)
	assert.Equal(t, "signup link was already used", err.Error())
}

func Test_SignUpWithToken_RejectsMismatchedPasswords(t *testing.T) {
	fake := installFakeSender(t)

	require.NoError(t, GetUserService().SendSignupLink(uniqueEmail()))
	token := uuid.MustParse(signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	request := signupRequest(uuid.New().String()[:8])
	request.ConfirmPassword = "something-else"

	_, err := GetUserService().SignUpWithToken(token, request)
	require.Error(t, err)
	assert.Equal(t, "passwords do not match", err.Error())
}

func Test_SignUpWithToken_RejectsExpiredToken(t *testing.T) {
	fake := installFakeSender(t)
	email := uniqueEmail()

	require.NoError(t, GetUserService().SendSignupLink(email))
	token := uuid.MustParse(signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	// Age the token past its 24 hour window.
	backdated := time.Now().UTC().Add(-users_models.EmailVerificationTokenTTL - time.Minute)
	require.NoError(t, backdateVerificationToken(email, backdated))

	_, err := GetUserService().SignUpWithToken(token, signupRequest(uuid.New().String()[:8]))
	require.Error(t, err)
	assert.Equal(t, "signup link has expired", err.Error())
}

func Test_SignIn_ReturnsTokenForValidCredentials(t *testing.T) {
	email, password := registerUser(t)

	response, err := GetUserService().SignIn(email, password)
	require.NoError(t, err)

	assert.Equal(t, email, response.Email)
	assert.NotEmpty(t, response.Token)

	user, err := GetUserService().GetUserFromToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, email, user.Email)
}

func Test_SignIn_RejectsWrongPassword(t *testing.T) {
	email, _ := registerUser(t)

	_, err := GetUserService().SignIn(email, "not-the-password")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func Test_ResetPassword_ReplacesPasswordAndConsumesToken(t *testing.T) {
	email, oldPassword := registerUser(t)
	fake := installFakeSender(t)

	require.NoError(t, GetUserService().ForgotPassword(email))
	resetToken := resetTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1]

	require.NoError(t, GetUserService().ResetPassword(resetToken, "fresh-password", "fresh-password"))

	_, err := GetUserService().SignIn(email, oldPassword)
	require.Error(t, err)

	_, err = GetUserService().SignIn(email, "fresh-password")
	require.NoError(t, err)

	// The token was single use.
	err = GetUserService().ResetPassword(resetToken, "another-one1", "another-one1")
	require.Error(t, err)
	assert.Equal(t, "reset link is invalid", err.Error())
}

func Test_ForgotPassword_UnknownEmailIsRejected(t *testing.T) {
	installFakeSender(t)

	err := GetUserService().ForgotPassword(uniqueEmail())
	require.Error(t, err)
	assert.Equal(t, "user with this email was not found", err.Error())
}

func backdateVerificationToken(email string, createdAt time.Time) error {
	return storage.GetDb().Model(&users_models.EmailVerificationToken{}).
		Where("email = ?", email).
		Update("created_at", createdAt).Error
}

// registerUser drives the real signup flow and returns the credentials.
func registerUser(t *testing.T) (string, string) {
	t.Helper()

	fake := installFakeSender(t)
	email := uniqueEmail()

	require.NoError(t, GetUserService().SendSignupLink(email))
	token := uuid.MustParse(signupTokenPattern.FindStringSubmatch(fake.LastMessage().Body)[1])

	request := signupRequest(uuid.New().String()[:8])
	_, err := GetUserService().SignUpWithToken(token, request)
	require.NoError(t, err)

	return email, request.Password
}
