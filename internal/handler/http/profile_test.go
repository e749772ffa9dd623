// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evolt-dev/evolt/internal/store"
	"github.com/evolt-dev/evolt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routed builds the full router so that chi URL params are populated.
func routedRequest(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestGetProfile_Success(t *testing.T) {
	auth := &mockAuthService{
		getProfileFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id, Email: "driver@example.com", FirstName: "Ada"}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := routedRequest(t, h, http.MethodGet, "/user/acc-1", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "acc-1", profile.ID)
	assert.Equal(t, "Ada", profile.FirstName)
}

func TestGetProfile_NotFound(t *testing.T) {
	auth := &mockAuthService{
		getProfileFn: func(_ context.Context, _ string) (models.Profile, error) {
			return models.Profile{}, store.ErrProfileNotFound
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := routedRequest(t, h, http.MethodGet, "/user/missing", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Profile not found", decodeErrorBody(t, rec))
}

func TestUpdateProfile_Success(t *testing.T) {
	var got models.ProfileUpdate
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, update models.ProfileUpdate) (models.Profile, error) {
			got = update
			return models.Profile{ID: update.ID, FirstName: *update.FirstName}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := routedRequest(t, h, http.MethodPut, "/user/acc-1", `{"firstName":"Grace"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acc-1", got.ID)
	require.NotNil(t, got.FirstName)
	assert.Equal(t, "Grace", *got.FirstName)
	assert.Nil(t, got.LastName, "absent fields stay nil")
}

func TestUpdateProfile_NoFields(t *testing.T) {
	auth := &mockAuthService{
		updateProfileFn: func(_ context.Context, _ models.ProfileUpdate) (models.Profile, error) {
			return models.Profile{}, store.ErrBuildingSQLQuery
		},
	}
	h := newHandlerWithAuth(t, auth)

	rec := routedRequest(t, h, http.MethodPut, "/user/acc-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request data", decodeErrorBody(t, rec))
}

func TestUpdateProfile_UnknownFieldRejected(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	rec := routedRequest(t, h, http.MethodPut, "/user/acc-1", `{"nickname":"gg"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
