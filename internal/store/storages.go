package store

import (
	"context"
	"fmt"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed around the service layer. Currently it holds only
// [ProfileRepository]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// ProfileRepository is the PostgreSQL-backed repository for
	// application-owned profile rows.
	ProfileRepository ProfileRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection using cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [ProfileRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ProfileRepository: NewProfileRepository(db, logger),
	}, nil
}
