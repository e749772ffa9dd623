package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrProfileNotCreated covers the whole profile-insert failure path of
	// account creation, compensating delete included. The underlying store
	// error is logged, never surfaced.
	ErrProfileNotCreated = errors.New("failed to create user profile")
)
