package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/utils"
	"github.com/evolt-dev/evolt/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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

// Signup implements [ServerAdapter]. It POSTs the signup payload to
// POST /signup and decodes the account/profile pair plus the verification
// prompt from the response.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SignupResponse, error) {
	var result models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.SignupResponse{}, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignupResponse{}, err
	}

	return result, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to POST /login
// and decodes the account, profile and session bundle.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

// FetchProfile implements [ServerAdapter]. It GETs /user/{id}.
func (h *httpServerAdapter) FetchProfile(ctx context.Context, id string) (models.Profile, error) {
	var result models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/user/" + url.PathEscape(id))
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return result, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the partial update to
// /user/{id} and decodes the row as stored afterwards.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (models.Profile, error) {
	var result models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Put("/user/" + url.PathEscape(id))
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return result, nil
}

// Logout implements [ServerAdapter]. It POSTs to /logout with the session's
// access token as the bearer credential.
func (h *httpServerAdapter) Logout(ctx context.Context, accessToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+accessToken).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}
