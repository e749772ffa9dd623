package service

import (
	"context"

	"github.com/evolt-dev/evolt/models"
)

type AuthService interface {
	// CreateAccount registers an account with the identity provider and
	// inserts the matching profile row. The provider sends the
	// verification email; the account is unusable until verified.
	CreateAccount(ctx context.Context, email, password string, fields models.ProfileFields) (models.Account, models.Profile, error)

	// Authenticate verifies credentials against the provider and returns
	// the account, its profile and a fresh session bundle.
	Authenticate(ctx context.Context, email, password string) (models.Account, models.Profile, models.Session, error)

	// GetProfile returns the profile row for the given account ID.
	GetProfile(ctx context.Context, id string) (models.Profile, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)

	// RevokeSession revokes the provider session behind the given access
	// token.
	RevokeSession(ctx context.Context, accessToken string) error
}
