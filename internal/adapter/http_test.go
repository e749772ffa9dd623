// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    server.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:3001", want: "http://localhost:3001"},
		{name: "trailing slash trimmed", raw: "http://localhost:3001/", want: "http://localhost:3001"},
		{name: "scheme defaulted", raw: "localhost:3001", want: "http://localhost:3001"},
		{name: "https kept", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "whitespace trimmed", raw: "  localhost:3001 ", want: "http://localhost:3001"},
		{name: "empty", raw: "", wantErr: true},
		{name: "spaces only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapter_Signup(t *testing.T) {
	var received models.SignupRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.SignupResponse{
			User:    models.Account{ID: "acc-1", Email: received.Username},
			Profile: models.Profile{ID: "acc-1"},
			Message: "Please check your email for verification link",
		})
	})

	a := newTestAdapter(t, handler)

	resp, err := a.Signup(context.Background(), models.SignupRequest{
		Username: "driver@example.com",
		Password: "secret1",
		UserData: models.ProfileFields{FirstName: "Ada"},
	})

	require.NoError(t, err)
	assert.Equal(t, "acc-1", resp.User.ID)
	assert.Contains(t, resp.Message, "verification")
	assert.Equal(t, "Ada", received.UserData.FirstName)
}

func TestAdapter_Login(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.LoginResponse{
			User:    models.Account{ID: "acc-1"},
			Profile: models.Profile{ID: "acc-1"},
			Session: models.Session{AccessToken: "token", TokenType: "bearer"},
		})
	})

	a := newTestAdapter(t, handler)

	resp, err := a.Login(context.Background(), models.LoginRequest{Username: "driver@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "token", resp.Session.AccessToken)
}

func TestAdapter_LoginError_CarriesServerMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Invalid email or password"})
	})

	a := newTestAdapter(t, handler)

	_, err := a.Login(context.Background(), models.LoginRequest{Username: "driver@example.com", Password: "wrong"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusBadRequest, serverErr.StatusCode)
	assert.Equal(t, "Invalid email or password", serverErr.Message)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestAdapter_ErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	a := newTestAdapter(t, handler)

	_, err := a.FetchProfile(context.Background(), "acc-1")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), serverErr.Message)
}

func TestAdapter_FetchProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/acc-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Profile{ID: "acc-1", FirstName: "Ada"})
	})

	a := newTestAdapter(t, handler)

	profile, err := a.FetchProfile(context.Background(), "acc-1")

	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
}

func TestAdapter_UpdateProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/user/acc-1", r.URL.Path)

		var req models.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.City)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Profile{ID: "acc-1", City: *req.City})
	})

	a := newTestAdapter(t, handler)

	city := "Dallas"
	profile, err := a.UpdateProfile(context.Background(), "acc-1", models.UpdateProfileRequest{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Dallas", profile.City)
}

func TestAdapter_Logout(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logout", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	a := newTestAdapter(t, handler)

	require.NoError(t, a.Logout(context.Background(), "token-123"))
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestAdapter_ServerUnreachable(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    "http://127.0.0.1:1", // nothing listens here
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.FetchProfile(context.Background(), "acc-1")
	assert.True(t, errors.Is(err, ErrServerUnreachable))
}
