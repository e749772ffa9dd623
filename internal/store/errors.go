package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileAlreadyExists is returned when a profile insert collides
	// with an existing row for the same account ID or email.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when a lookup expected to match
	// exactly one profile row produces an empty result set.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileNotSaved is returned when a write completes without a
	// driver error but affects zero rows, so nothing was persisted.
	ErrProfileNotSaved = errors.New("profile was not saved")

	// ErrKeyNotFound is returned by the client local store when the
	// requested key holds no value.
	ErrKeyNotFound = errors.New("local key not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no fields to set).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan profile row")
)
