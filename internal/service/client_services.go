package service

import (
	"github.com/evolt-dev/evolt/internal/adapter"
	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	SessionWatcher ClientSessionWatcher
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(storages, serverAdapter, cfg, logger)

	return &ClientServices{
		SessionService: sessionSvc,
		SessionWatcher: NewClientSessionWatcher(sessionSvc),
	}
}
