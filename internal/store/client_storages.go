package store

import (
	"context"
	"fmt"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [LocalStore]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// Local is the SQLite-backed key-value store for cached session state
	// kept locally on the client device.
	Local LocalStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens an SQLite connection to the file path in
// cfg.DBPath, creating the database file if it does not yet exist, and wires
// a fresh [LocalStore] on top of it.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	local, err := NewLocalStore(db, logger)
	if err != nil {
		return nil, fmt.Errorf("local store init error: %w", err)
	}

	return &ClientStorages{
		Local: local,
	}, nil
}
