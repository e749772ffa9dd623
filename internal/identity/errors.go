package identity

import "errors"

// Sentinel errors returned by Provider implementations. The service layer
// matches against them with [errors.Is] to build the client-facing error
// taxonomy; raw provider messages never cross the HTTP boundary.
var (
	// ErrEmailNotConfirmed is returned on login before the user has
	// followed the emailed verification link.
	ErrEmailNotConfirmed = errors.New("email not confirmed")

	// ErrInvalidCredentials is returned for a wrong email/password
	// combination. The provider deliberately does not reveal which of the
	// two was wrong, and neither does this error.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrInvalidAPIKey is returned when the provider rejects the service's
	// own API key. Operator-facing: logged in detail, surfaced generically.
	ErrInvalidAPIKey = errors.New("provider rejected API key")

	// ErrAccountExists is returned when signing up with an email that is
	// already registered.
	ErrAccountExists = errors.New("account already registered")

	// ErrNoAccountReturned is returned when the provider reports success
	// but the response carries no account object. Defensive check against
	// a malformed upstream response.
	ErrNoAccountReturned = errors.New("provider returned no account")

	// ErrProvider wraps any other provider-side failure, including
	// timeouts and non-2xx responses with unrecognised bodies.
	ErrProvider = errors.New("identity provider error")
)
