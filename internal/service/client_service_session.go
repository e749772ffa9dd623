package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/evolt-dev/evolt/internal/adapter"
	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/store"
	"github.com/evolt-dev/evolt/internal/utils"
	"github.com/evolt-dev/evolt/models"
)

// sessionKeys are the local slots wiped on sign-out. The theme preference is
// deliberately not among them: it survives sign-out.
var sessionKeys = []string{store.KeyCurrentUser, store.KeyUser, store.KeySession, store.KeyUserProfile}

type clientSessionService struct {
	local   store.LocalStore
	adapter adapter.ServerAdapter

	defaultTheme    models.Theme
	revokeOnSignOut bool

	logger *logger.Logger
}

// NewClientSessionService constructs a [ClientSessionService] on top of the
// local store and the server adapter.
func NewClientSessionService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		local:           storages.Local,
		adapter:         serverAdapter,
		defaultTheme:    cfg.DefaultTheme,
		revokeOnSignOut: cfg.RevokeOnSignOut,
		logger:          logger,
	}
}

// SubmitSignup registers a new account through the service. Nothing is
// cached: the account is unusable until the emailed verification link is
// followed, so the user is sent back to the login screen with the prompt.
func (s *clientSessionService) SubmitSignup(ctx context.Context, email, password string, fields models.ProfileFields) (string, error) {
	resp, err := s.adapter.Signup(ctx, models.SignupRequest{
		Username: email,
		Password: password,
		UserData: fields,
	})
	if err != nil {
		s.logger.Err(err).Str("email", email).Msg("signup failed")
		return "", err
	}

	return resp.Message, nil
}

// SubmitLogin authenticates and persists the returned state. The four keys
// are written only after the server reports success; a failed login leaves
// local storage untouched.
func (s *clientSessionService) SubmitLogin(ctx context.Context, email, password string) (models.Profile, error) {
	resp, err := s.adapter.Login(ctx, models.LoginRequest{Username: email, Password: password})
	if err != nil {
		s.logger.Err(err).Str("email", email).Msg("login failed")
		return models.Profile{}, err
	}

	if err := s.persistSession(ctx, resp); err != nil {
		s.logger.Err(err).Msg("persisting session state failed")
		return models.Profile{}, err
	}

	return resp.Profile, nil
}

func (s *clientSessionService) persistSession(ctx context.Context, resp models.LoginResponse) error {
	entries := map[string]any{
		store.KeyCurrentUser: resp.User,
		store.KeyUser:        resp.User,
		store.KeySession:     resp.Session,
		store.KeyUserProfile: resp.Profile,
	}

	for key, value := range entries {
		payload, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if err := s.local.Set(ctx, key, string(payload)); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
	}

	return nil
}

// LoadCachedProfile reads the cached profile for screen-mount rendering.
func (s *clientSessionService) LoadCachedProfile(ctx context.Context) (models.Profile, error) {
	raw, err := s.local.Get(ctx, store.KeyUserProfile)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Profile{}, ErrNotAuthenticated
		}
		return models.Profile{}, err
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// a corrupt cache is as good as no cache
		s.logger.Err(err).Msg("cached profile is corrupt, wiping session state")
		s.wipeSession(ctx)
		return models.Profile{}, ErrNotAuthenticated
	}

	return profile, nil
}

// RestoreSession decides at startup whether the cached session is still
// worth presenting. Expiry is taken from the access token's exp claim,
// falling back to the session bundle's expires_at stamp when the token
// carries none.
func (s *clientSessionService) RestoreSession(ctx context.Context) (models.Profile, error) {
	raw, err := s.local.Get(ctx, store.KeySession)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Profile{}, ErrNotAuthenticated
		}
		return models.Profile{}, err
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.logger.Err(err).Msg("cached session is corrupt, wiping session state")
		s.wipeSession(ctx)
		return models.Profile{}, ErrNotAuthenticated
	}

	if s.sessionExpired(session) {
		s.logger.Info().Msg("cached session expired, wiping session state")
		s.wipeSession(ctx)
		return models.Profile{}, ErrNotAuthenticated
	}

	return s.LoadCachedProfile(ctx)
}

func (s *clientSessionService) sessionExpired(session models.Session) bool {
	if expiry, err := utils.TokenExpiry(session.AccessToken); err == nil {
		return time.Now().After(expiry)
	}

	if session.ExpiresAt > 0 {
		return time.Now().After(time.Unix(session.ExpiresAt, 0))
	}

	// a session with no readable expiry is treated as still valid; the
	// server rejects it soon enough if it is not
	return false
}

// RefreshProfile re-fetches the profile from the server using the cached
// account ID and rewrites the cache with the result.
func (s *clientSessionService) RefreshProfile(ctx context.Context) (models.Profile, error) {
	account, err := s.cachedAccount(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	profile, err := s.adapter.FetchProfile(ctx, account.ID)
	if err != nil {
		s.logger.Err(err).Str("id", account.ID).Msg("profile refresh failed")
		return models.Profile{}, err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("marshal profile: %w", err)
	}
	if err := s.local.Set(ctx, store.KeyUserProfile, string(payload)); err != nil {
		return models.Profile{}, fmt.Errorf("persist profile: %w", err)
	}

	return profile, nil
}

func (s *clientSessionService) cachedAccount(ctx context.Context) (models.Account, error) {
	raw, err := s.local.Get(ctx, store.KeyUser)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return models.Account{}, ErrNotAuthenticated
		}
		return models.Account{}, err
	}

	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return models.Account{}, ErrNotAuthenticated
	}

	return account, nil
}

// SignOut wipes the local session keys. When revocation is enabled, a
// best-effort provider logout runs first; its failure is logged and the
// local wipe proceeds regardless.
func (s *clientSessionService) SignOut(ctx context.Context) error {
	if s.revokeOnSignOut {
		if raw, err := s.local.Get(ctx, store.KeySession); err == nil {
			var session models.Session
			if err := json.Unmarshal([]byte(raw), &session); err == nil && session.AccessToken != "" {
				if err := s.adapter.Logout(ctx, session.AccessToken); err != nil {
					s.logger.Err(err).Msg("server-side session revocation failed")
				}
			}
		}
	}

	return s.wipeSession(ctx)
}

func (s *clientSessionService) wipeSession(ctx context.Context) error {
	var firstErr error
	for _, key := range sessionKeys {
		if err := s.local.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return firstErr
}

// Theme returns the persisted preference, or the configured default when
// nothing (or garbage) is stored.
func (s *clientSessionService) Theme(ctx context.Context) models.Theme {
	raw, err := s.local.Get(ctx, store.KeyTheme)
	if err != nil {
		return s.defaultTheme
	}

	theme := models.Theme(raw)
	if !theme.Valid() {
		return s.defaultTheme
	}

	return theme
}

func (s *clientSessionService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	return s.local.Set(ctx, store.KeyTheme, string(theme))
}

func (s *clientSessionService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
