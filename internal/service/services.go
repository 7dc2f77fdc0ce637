package service

import (
	"github.com/ayune/ayune-backend/internal/config"
	"github.com/ayune/ayune-backend/internal/repository"
)

type Services struct {
	Auth *AuthService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth: NewAuthService(repos.Account, repos.Credential, cfg),
	}
}
