// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evolt-dev/evolt/internal/identity"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	createAccountFn func(ctx context.Context, email, password string, fields models.ProfileFields) (models.Account, models.Profile, error)
	authenticateFn  func(ctx context.Context, email, password string) (models.Account, models.Profile, models.Session, error)
	getProfileFn    func(ctx context.Context, id string) (models.Profile, error)
	updateProfileFn func(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	revokeSessionFn func(ctx context.Context, accessToken string) error
}

func (m *mockAuthService) CreateAccount(ctx context.Context, email, password string, fields models.ProfileFields) (models.Account, models.Profile, error) {
	return m.createAccountFn(ctx, email, password, fields)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.Account, models.Profile, models.Session, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	return m.getProfileFn(ctx, id)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	return m.updateProfileFn(ctx, update)
}

func (m *mockAuthService) RevokeSession(ctx context.Context, accessToken string) error {
	return m.revokeSessionFn(ctx, accessToken)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop())
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func decodeErrorBody(t *testing.T, body *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body.Body.Bytes(), &resp))
	return resp.Error
}

var validSignup = models.SignupRequest{
	Username: "driver@example.com",
	Password: "secret1",
	UserData: models.ProfileFields{FirstName: "Ada", LastName: "Lovelace"},
}

// ─────────────────────────────────────────────
// POST /signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	auth := &mockAuthService{
		createAccountFn: func(_ context.Context, email, _ string, _ models.ProfileFields) (models.Account, models.Profile, error) {
			return models.Account{ID: "acc-1", Email: email}, models.Profile{ID: "acc-1", Email: email}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acc-1", resp.User.ID)
	assert.Contains(t, resp.Message, "verification")
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request data", decodeErrorBody(t, rec))
}

func TestSignup_UnknownFieldRejected(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	body := `{"username":"driver@example.com","password":"secret1","unexpected":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignup_AccountExists(t *testing.T) {
	auth := &mockAuthService{
		createAccountFn: func(_ context.Context, _, _ string, _ models.ProfileFields) (models.Account, models.Profile, error) {
			return models.Account{}, models.Profile{}, identity.ErrAccountExists
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already registered", decodeErrorBody(t, rec))
}

func TestSignup_ProfileNotCreated(t *testing.T) {
	auth := &mockAuthService{
		createAccountFn: func(_ context.Context, _, _ string, _ models.ProfileFields) (models.Account, models.Profile, error) {
			return models.Account{}, models.Profile{}, service.ErrProfileNotCreated
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Failed to create user profile", decodeErrorBody(t, rec))
}

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, email, _ string) (models.Account, models.Profile, models.Session, error) {
			return models.Account{ID: "acc-1", Email: email},
				models.Profile{ID: "acc-1", Email: email},
				models.Session{AccessToken: "token", TokenType: "bearer"}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	body := jsonBody(t, models.LoginRequest{Username: "driver@example.com", Password: "secret1"})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acc-1", resp.User.ID)
	assert.Equal(t, "token", resp.Session.AccessToken)
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unverified email",
			err:         identity.ErrEmailNotConfirmed,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please verify your email before logging in",
		},
		{
			name:        "wrong credentials",
			err:         identity.ErrInvalidCredentials,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid email or password",
		},
		{
			name:        "provider api key rejected",
			err:         identity.ErrInvalidAPIKey,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Authentication service error",
		},
		{
			name:        "validation",
			err:         service.ErrInvalidDataProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authenticateFn: func(_ context.Context, _, _ string) (models.Account, models.Profile, models.Session, error) {
					return models.Account{}, models.Profile{}, models.Session{}, tt.err
				},
			}
			h := newHandlerWithAuth(t, auth)

			body := jsonBody(t, models.LoginRequest{Username: "driver@example.com", Password: "x"})
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeErrorBody(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// POST /logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var revoked string
	auth := &mockAuthService{
		revokeSessionFn: func(_ context.Context, accessToken string) error {
			revoked = accessToken
			return nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "token-123", revoked)
}

func TestLogout_MissingAuthorization(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc", want: "abc"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "missing header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := bearerToken(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
