// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the auth/profile service.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Server-side failures are mapped by mapHTTPError into [ServerError] values
// carrying the service's client-facing message, so the UI can display the
// message verbatim while callers branch on the status code.
package adapter

import (
	"context"

	"github.com/evolt-dev/evolt/models"
)

// ServerAdapter defines transport-agnostic communication with the
// auth/profile service. Implementations are responsible for serialisation
// and for mapping transport-level errors to [ServerError] values.
type ServerAdapter interface {
	// Signup registers a new account. On success the account is created
	// but unverified; no session is returned.
	Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates and returns the account, profile and session.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// FetchProfile retrieves the profile for the given account ID.
	FetchProfile(ctx context.Context, id string) (models.Profile, error)

	// UpdateProfile applies a partial profile update and returns the
	// stored row.
	UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (models.Profile, error)

	// Logout asks the service to revoke the provider session behind the
	// given access token.
	Logout(ctx context.Context, accessToken string) error
}
