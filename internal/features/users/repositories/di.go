package users_repositories

var userRepository = &UserRepository{}
var emailVerificationRepository = &EmailVerificationRepository{}
var passwordResetRepository = &PasswordResetRepository{}

func GetUserRepository() *UserRepository {
	return userRepository
}

func GetEmailVerificationRepository() *EmailVerificationRepository {
	return emailVerificationRepository
}

func GetPasswordResetRepository() *PasswordResetRepository {
	return passwordResetRepository
}
