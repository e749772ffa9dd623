package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/models"
	"github.com/go-resty/resty/v2"
)

// gotrueProvider implements [Provider] over the GoTrue-style HTTP API that
// Supabase exposes at /auth/v1. Signup and login use the public anon key;
// the compensating admin delete uses the privileged service key.
type gotrueProvider struct {
	client      *resty.Client
	anonKey     string
	serviceKey  string
	redirectURL string

	logger *logger.Logger
}

// NewGoTrueProvider constructs a [Provider] speaking the GoTrue HTTP API.
// It normalises the base URL, mounts the /auth/v1 prefix, and bounds every
// call with cfg.RequestTimeout. frontendURL, when non-empty, is turned into
// the redirect target of the verification email.
func NewGoTrueProvider(cfg config.Provider, frontendURL string, logger *logger.Logger) (Provider, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL+"/auth/v1").
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.AnonKey)

	redirectURL := ""
	if frontendURL != "" {
		redirectURL = strings.TrimRight(frontendURL, "/") + "/auth/callback"
	}

	return &gotrueProvider{
		client:      client,
		anonKey:     cfg.AnonKey,
		serviceKey:  cfg.ServiceKey,
		redirectURL: redirectURL,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// accountPayload is the provider's wire representation of an account.
type accountPayload struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (p accountPayload) toModel() models.Account {
	return models.Account{
		ID:               p.ID,
		Email:            p.Email,
		EmailConfirmedAt: p.EmailConfirmedAt,
		CreatedAt:        p.CreatedAt,
	}
}

// signupResult covers both shapes GoTrue answers a signup with: the bare
// account object when confirmations are on, or a full session bundle with a
// nested user when they are off.
type signupResult struct {
	accountPayload
	User *accountPayload `json:"user"`
}

type tokenResult struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	ExpiresAt    int64           `json:"expires_at"`
	User         *accountPayload `json:"user"`
}

// SignUp implements [Provider]. It POSTs the credentials to /signup with the
// verification redirect attached, and returns the (unverified) account.
func (g *gotrueProvider) SignUp(ctx context.Context, email, password string) (models.Account, error) {
	var result signupResult

	req := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.anonKey).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result)
	if g.redirectURL != "" {
		req.SetQueryParam("redirect_to", g.redirectURL)
	}

	resp, err := req.Post("/signup")
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: signup request: %w", ErrProvider, err)
	}
	if err = g.mapError(resp); err != nil {
		return models.Account{}, err
	}

	payload := result.accountPayload
	if result.User != nil {
		payload = *result.User
	}
	if payload.ID == "" {
		return models.Account{}, ErrNoAccountReturned
	}

	return payload.toModel(), nil
}

// SignInWithPassword implements [Provider]. It exchanges the credentials for
// a token bundle via the password grant.
func (g *gotrueProvider) SignInWithPassword(ctx context.Context, email, password string) (models.Account, models.Session, error) {
	var result tokenResult

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.anonKey).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&result).
		Post("/token")
	if err != nil {
		return models.Account{}, models.Session{}, fmt.Errorf("%w: token request: %w", ErrProvider, err)
	}
	if err = g.mapError(resp); err != nil {
		return models.Account{}, models.Session{}, err
	}

	if result.User == nil || result.User.ID == "" {
		return models.Account{}, models.Session{}, ErrNoAccountReturned
	}

	session := models.Session{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    result.TokenType,
		ExpiresIn:    result.ExpiresIn,
		ExpiresAt:    result.ExpiresAt,
	}

	return result.User.toModel(), session, nil
}

// SignOut implements [Provider]. It revokes the session behind accessToken.
func (g *gotrueProvider) SignOut(ctx context.Context, accessToken string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("%w: logout request: %w", ErrProvider, err)
	}

	return g.mapError(resp)
}

// DeleteAccount implements [Provider]. It issues the privileged admin delete
// used to roll back a signup whose profile insert failed.
func (g *gotrueProvider) DeleteAccount(ctx context.Context, id string) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+g.serviceKey).
		SetPathParam("id", id).
		Delete("/admin/users/{id}")
	if err != nil {
		return fmt.Errorf("%w: admin delete request: %w", ErrProvider, err)
	}

	return g.mapError(resp)
}

// mapError classifies a non-2xx provider response into one of the package
// sentinels. The raw body is logged server-side and never propagated.
func (g *gotrueProvider) mapError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := parseErrorBody(resp.Body())

	g.logger.Error().
		Int("status", resp.StatusCode()).
		Str("message", message).
		Msg("identity provider call failed")

	switch {
	case strings.Contains(message, "Email not confirmed"):
		return ErrEmailNotConfirmed
	case strings.Contains(message, "Invalid login credentials"):
		return ErrInvalidCredentials
	case strings.Contains(message, "Invalid API key"):
		return ErrInvalidAPIKey
	case strings.Contains(message, "already registered"):
		return ErrAccountExists
	case resp.StatusCode() == http.StatusUnauthorized && message == "":
		return ErrInvalidAPIKey
	default:
		return fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode(), message)
	}
}
