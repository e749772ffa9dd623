package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/evolt-dev/evolt/internal/app"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/utils"
	"github.com/evolt-dev/evolt/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeStrict(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidRequestData, http.StatusBadRequest)
		return
	}

	account, profile, err := h.services.AuthService.CreateAccount(ctx, req.Username, req.Password, req.UserData)
	if err != nil {
		log.Err(err).Str("email", req.Username).Msg("signup failed")
		writeError(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Str("id", account.ID).Msg("account registered")

	utils.WriteJSON(w, models.SignupResponse{
		User:    account,
		Profile: profile,
		Message: app.MsgSignupSuccess,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeStrict(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidRequestData, http.StatusBadRequest)
		return
	}

	account, profile, session, err := h.services.AuthService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Username).Msg("login failed")
		writeError(w, messageFromError(err), statusFromError(err))
		return
	}

	log.Debug().Str("id", account.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		User:    account,
		Profile: profile,
		Session: session,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := bearerToken(r)
	if err != nil {
		log.Err(err).Msg("missing bearer token on logout")
		writeError(w, app.MsgInvalidRequestData, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RevokeSession(ctx, token); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, messageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bearerToken extracts the access token from the "Authorization" header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if parts[1] == "" {
		return "", ErrEmptyToken
	}

	return parts[1], nil
}

// decodeStrict parses the request body rejecting unknown fields, so that a
// body of the wrong shape fails as a validation error instead of silently
// zero-filling.
func decodeStrict(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
