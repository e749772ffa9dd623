package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evolt-dev/evolt/internal/logger"
)

// localStore is the SQLite-backed implementation of [LocalStore]. All
// values live in a single two-column kv table so that adding a new cached
// slot never requires a schema change.
type localStore struct {
	logger *logger.Logger
	db     *DB
}

// NewLocalStore constructs a [LocalStore] on top of the given SQLite
// connection, creating the kv table if it does not exist yet.
func NewLocalStore(db *DB, logger *logger.Logger) (LocalStore, error) {
	logger.Debug().Msg("creating local store")

	if _, err := db.ExecContext(context.Background(), createKVTable); err != nil {
		logger.Err(err).Msg("error creating kv table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &localStore{
		db:     db,
		logger: logger,
	}, nil
}

func (s *localStore) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := s.db.QueryRowContext(ctx, getValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}

		s.logger.Err(err).Str("key", key).Msg("local get failed")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

func (s *localStore) Set(ctx context.Context, key string, value string) error {
	if _, err := s.db.ExecContext(ctx, setValue, key, value); err != nil {
		s.logger.Err(err).Str("key", key).Msg("local set failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteValue, key); err != nil {
		s.logger.Err(err).Str("key", key).Msg("local delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *localStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearValues); err != nil {
		s.logger.Err(err).Msg("local clear failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
