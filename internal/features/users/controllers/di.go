package users_controllers

import (
	"collabriq-backend/internal/config"
	users_services "collabriq-backend/internal/features/users/services"

	"golang.org/x/time/rate"
)

// 5 auth attempts per second with a small burst, shared across the
// credential endpoints. Unlimited under tests.
var userController = &UserController{
	userService: users_services.GetUserService(),
	authLimiter: rate.NewLimiter(authRate(), 10),
}

func authRate() rate.Limit {
	if config.GetEnv().IsTesting {
		return rate.Inf
	}

	return rate.Limit(5)
}

func GetUserController() *UserController {
	return userController
}
