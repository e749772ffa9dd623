package store

import "context"

// Well-known keys in the client's local key-value store. The same slots the
// original mobile app kept in device storage: the active session bundle, the
// provider account, the cached profile and the UI theme.
const (
	KeyCurrentUser = "currentUser"
	KeyUser        = "user"
	KeySession     = "session"
	KeyUserProfile = "userProfile"
	KeyTheme       = "theme"
)

// LocalStore is a string key-value store persisted on the client device.
// Values are opaque to the store; the service layer encodes structured
// values as JSON before writing them.
type LocalStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key. Used on sign-out.
	Clear(ctx context.Context) error
}
