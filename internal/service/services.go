package service

import (
	"github.com/viniciusmog/daily-diet-api/internal/repository"
)

type Services struct {
	Auth *AuthService
	Meal *MealService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Auth: NewAuthService(repos.User),
		Meal: NewMealService(repos.Meal),
	}
}
