package identity

import (
	"context"

	"github.com/evolt-dev/evolt/models"
)

// Provider is the capability boundary around the external identity provider.
// It exposes exactly the operations this system uses; everything else the
// provider offers (password reset, MFA, token refresh) is out of scope.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	// SignUp registers a new account. The provider sends the verification
	// email as a side effect; the returned account is unverified until the
	// user follows the link.
	SignUp(ctx context.Context, email, password string) (models.Account, error)

	// SignInWithPassword verifies the credentials and returns the account
	// together with a fresh session token bundle.
	SignInWithPassword(ctx context.Context, email, password string) (models.Account, models.Session, error)

	// SignOut revokes the session identified by the given access token.
	// Used only when revocation on sign-out is enabled.
	SignOut(ctx context.Context, accessToken string) error

	// DeleteAccount removes the account by ID. Requires the privileged
	// service key; used as the compensating action when profile creation
	// fails after a successful SignUp.
	DeleteAccount(ctx context.Context, id string) error
}
