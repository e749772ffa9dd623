// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evolt-dev/evolt/models"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_MethodNotAllowedHidesRoute(t *testing.T) {
	auth := &mockAuthService{
		getProfileFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	// DELETE is not registered for /signup; the route must look absent
	req := httptest.NewRequest(http.MethodDelete, "/signup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	auth := &mockAuthService{
		getProfileFn: func(_ context.Context, id string) (models.Profile, error) {
			return models.Profile{ID: id}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)
	router := h.Init()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/acc-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/acc-1", nil)
		req.Header.Set(traceIDHeader, "trace-42")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	})
}

func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK) // ignored

	n, err := rw.Write([]byte("body"))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 4, rw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, err := rw.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rw.status)
}
