package service

import (
	"context"
	"time"

	"github.com/evolt-dev/evolt/models"
)

// ClientSessionService is the client-side session manager: it submits
// credentials through the server adapter, caches the returned state in local
// storage, and gates the authenticated area of the app on that cache.
type ClientSessionService interface {
	// SubmitSignup registers a new account. On success nothing is
	// persisted (the account still requires email verification); the
	// returned string is the verification prompt to show the user.
	SubmitSignup(ctx context.Context, email, password string, fields models.ProfileFields) (string, error)

	// SubmitLogin authenticates and, only on success, persists the
	// account, session and profile under the fixed local keys.
	SubmitLogin(ctx context.Context, email, password string) (models.Profile, error)

	// LoadCachedProfile returns the locally cached profile without a
	// network round-trip, or ErrNotAuthenticated when no cache exists.
	LoadCachedProfile(ctx context.Context) (models.Profile, error)

	// RestoreSession checks the cached session at startup. An expired or
	// absent session is wiped and reported as ErrNotAuthenticated;
	// otherwise the cached profile is returned.
	RestoreSession(ctx context.Context) (models.Profile, error)

	// RefreshProfile re-fetches the profile from the server and updates
	// the cache. Requires a cached account.
	RefreshProfile(ctx context.Context) (models.Profile, error)

	// SignOut deletes all local session keys. The theme preference
	// survives. Irreversible.
	SignOut(ctx context.Context) error

	// Theme returns the persisted theme preference, falling back to the
	// configured default when none is stored.
	Theme(ctx context.Context) models.Theme

	// SetTheme persists the given theme preference.
	SetTheme(ctx context.Context, theme models.Theme) error

	// ToggleTheme flips the persisted theme and returns the new value.
	ToggleTheme(ctx context.Context) (models.Theme, error)
}

// ClientSessionWatcher periodically re-checks the cached session's expiry in
// the background and fires a callback once it lapses.
type ClientSessionWatcher interface {
	// Start launches the watcher goroutine. onExpired runs after the
	// cached session is found expired and wiped. The goroutine exits when
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration, onExpired func())

	// Stop cancels the watcher and blocks until it has fully exited.
	// Safe to call when the watcher is not running.
	Stop()
}
