package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evolt-dev/evolt/internal/identity"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/store"
	"github.com/evolt-dev/evolt/models"
)

// authService is the concrete implementation of AuthService. It orchestrates
// the identity provider (system of record for credentials) and the profile
// repository (system of record for application data), keeping the two in
// step: every provider account has exactly one profile row under the same ID.
type authService struct {
	// provider is the external identity provider client.
	provider identity.Provider

	// profiles is the data-access layer for profile rows.
	profiles store.ProfileRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given identity
// provider and profile repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(provider identity.Provider, profiles store.ProfileRepository, logger *logger.Logger) AuthService {
	return &authService{
		provider: provider,
		profiles: profiles,
		logger:   logger,
	}
}

// CreateAccount registers a new account and its profile row.
//
// It validates the credentials locally, asks the provider to create the
// account (which triggers the verification email), then inserts a profile
// row under the provider-assigned ID with created_at and last_sign_in
// stamped to now.
//
// If the profile insert fails, the just-created account is deleted so that
// the user can retry signup with the same email. The compensating delete is
// best-effort: its own failure is logged, never surfaced, so it cannot mask
// the original insert error.
//
// Returns:
//   - ErrInvalidDataProvided for missing/malformed email or short password.
//   - The provider's error unchanged (e.g. identity.ErrAccountExists).
//   - ErrProfileNotCreated when the profile insert fails.
func (a *authService) CreateAccount(ctx context.Context, email, password string, fields models.ProfileFields) (models.Account, models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(email, password); err != nil {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.Account{}, models.Profile{}, err
	}

	account, err := a.provider.SignUp(ctx, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("provider signup failed")
		return models.Account{}, models.Profile{}, fmt.Errorf("provider signup failed: %w", err)
	}

	now := time.Now().UTC()
	profile := models.Profile{
		ID:         account.ID,
		Email:      account.Email,
		FirstName:  fields.FirstName,
		LastName:   fields.LastName,
		Phone:      fields.Phone,
		Address:    fields.Address,
		City:       fields.City,
		State:      fields.State,
		ZipCode:    fields.ZipCode,
		CreatedAt:  now,
		LastSignIn: now,
	}

	saved, err := a.profiles.CreateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("id", account.ID).Msg("profile insert failed, rolling back account")

		if delErr := a.provider.DeleteAccount(ctx, account.ID); delErr != nil {
			log.Err(delErr).Str("id", account.ID).Msg("compensating account delete failed")
		}

		return models.Account{}, models.Profile{}, ErrProfileNotCreated
	}

	return account, saved, nil
}

// Authenticate verifies credentials and assembles the login response.
//
// An email with no profile row is logged before the provider call: the
// provider error that follows is the authoritative answer, the log line just
// distinguishes "unknown email" from "wrong password" for the operator
// (the client-facing error deliberately does not).
//
// The last_sign_in update is best-effort: a login must not fail because a
// bookkeeping write did.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.Account, models.Profile, models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Account{}, models.Profile{}, models.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidDataProvided)
	}

	if _, err := a.profiles.GetProfileByEmail(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("no profile row for login email")
	}

	account, session, err := a.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("provider sign-in failed")
		return models.Account{}, models.Profile{}, models.Session{}, fmt.Errorf("provider sign-in failed: %w", err)
	}

	if account.ID == "" {
		log.Error().Str("email", email).Msg("provider sign-in returned no account")
		return models.Account{}, models.Profile{}, models.Session{}, identity.ErrNoAccountReturned
	}

	if err := a.profiles.UpdateLastSignIn(ctx, account.ID, time.Now().UTC()); err != nil {
		log.Warn().Err(err).Str("id", account.ID).Msg("last_sign_in update failed")
	}

	profile, err := a.profiles.GetProfileByID(ctx, account.ID)
	if err != nil {
		log.Err(err).Str("id", account.ID).Msg("profile fetch after login failed")
		return models.Account{}, models.Profile{}, models.Session{}, fmt.Errorf("profile fetch failed: %w", err)
	}

	return account, profile, session, nil
}

// GetProfile returns the profile row for the given account ID, or
// store.ErrProfileNotFound.
func (a *authService) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Profile{}, fmt.Errorf("%w: id is required", ErrInvalidDataProvided)
	}

	profile, err := a.profiles.GetProfileByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies a partial update and returns the row as stored
// afterwards.
func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if update.ID == "" {
		return models.Profile{}, fmt.Errorf("%w: id is required", ErrInvalidDataProvided)
	}

	updated, err := a.profiles.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Str("id", update.ID).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// RevokeSession asks the provider to revoke the session behind the given
// access token.
func (a *authService) RevokeSession(ctx context.Context, accessToken string) error {
	log := logger.FromContext(ctx)

	if accessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidDataProvided)
	}

	if err := a.provider.SignOut(ctx, accessToken); err != nil {
		log.Err(err).Msg("provider sign-out failed")
		return fmt.Errorf("provider sign-out failed: %w", err)
	}

	return nil
}
