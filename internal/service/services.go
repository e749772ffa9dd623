package service

import (
	"github.com/evolt-dev/evolt/internal/identity"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, provider identity.Provider, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(provider, storages.ProfileRepository, logger),
	}
}
