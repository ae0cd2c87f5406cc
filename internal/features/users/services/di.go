package users_services

import (
	users_repositories "collabriq-backend/internal/features/users/repositories"
)

var userService = &UserService{
	userRepository:              users_repositories.GetUserRepository(),
	emailVerificationRepository: users_repositories.GetEmailVerificationRepository(),
	passwordResetRepository:     users_repositories.GetPasswordResetRepository(),
}

var tokenJanitor = &TokenJanitor{
	emailVerificationRepository: users_repositories.GetEmailVerificationRepository(),
	passwordResetRepository:     users_repositories.GetPasswordResetRepository(),
}

func GetUserService() *UserService {
	return userService
}

func GetTokenJanitor() *TokenJanitor {
	return tokenJanitor
}
