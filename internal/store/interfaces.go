package store

import (
	"context"
	"time"

	"github.com/evolt-dev/evolt/models"
)

// ProfileRepository is the data-access boundary for application-owned
// profile rows, keyed by identity-provider account ID.
type ProfileRepository interface {
	// CreateProfile inserts a new row and returns its canonical database
	// representation (server-side timestamps included).
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)

	// GetProfileByID returns the single row with the given account ID, or
	// ErrProfileNotFound. The primary key guarantees at most one match;
	// zero matches are an error, never an empty value.
	GetProfileByID(ctx context.Context, id string) (models.Profile, error)

	// GetProfileByEmail returns the single row with the given email, or
	// ErrProfileNotFound.
	GetProfileByEmail(ctx context.Context, email string) (models.Profile, error)

	// UpdateLastSignIn advances the last_sign_in stamp for the given
	// account ID.
	UpdateLastSignIn(ctx context.Context, id string, at time.Time) error

	// UpdateProfile applies a partial update; only non-nil fields of the
	// update are written.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
}
