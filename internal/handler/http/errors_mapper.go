package http

import (
	"errors"
	"net/http"

	"github.com/evolt-dev/evolt/internal/app"
	"github.com/evolt-dev/evolt/internal/identity"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/internal/store"
)

// errorStatusMap maps service and store sentinels to HTTP status codes.
// Anything not listed is an internal error. Provider and store failures are
// 400 except for the two operator-facing categories (rejected API key,
// malformed provider response), which the client can do nothing about.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrProfileNotCreated:   http.StatusBadRequest,

	identity.ErrEmailNotConfirmed:  http.StatusBadRequest,
	identity.ErrInvalidCredentials: http.StatusBadRequest,
	identity.ErrAccountExists:      http.StatusBadRequest,
	identity.ErrProvider:           http.StatusBadRequest,
	identity.ErrInvalidAPIKey:      http.StatusInternalServerError,
	identity.ErrNoAccountReturned:  http.StatusInternalServerError,

	store.ErrProfileNotFound:      http.StatusBadRequest,
	store.ErrProfileAlreadyExists: http.StatusBadRequest,

	// an update with no fields to set is a caller mistake
	store.ErrBuildingSQLQuery:   http.StatusBadRequest,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrProfileNotSaved:    http.StatusInternalServerError,
}

// errorMessageMap holds the client-facing message per sentinel. Raw provider
// or database detail never crosses the HTTP boundary; it is logged instead.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: app.MsgInvalidRequestData,
	service.ErrProfileNotCreated:   app.MsgProfileNotCreated,

	identity.ErrEmailNotConfirmed:  app.MsgEmailNotVerified,
	identity.ErrInvalidCredentials: app.MsgInvalidCredentials,
	identity.ErrAccountExists:      app.MsgAccountExists,
	identity.ErrProvider:           app.MsgAuthServiceError,
	identity.ErrInvalidAPIKey:      app.MsgAuthServiceError,
	identity.ErrNoAccountReturned:  app.MsgAuthServiceError,

	store.ErrProfileNotFound:  app.MsgProfileNotFound,
	store.ErrBuildingSQLQuery: app.MsgInvalidRequestData,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}
