package http

import (
	"net/http"

	"github.com/evolt-dev/evolt/internal/app"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/utils"
	"github.com/evolt-dev/evolt/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	profile, err := h.services.AuthService.GetProfile(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile fetch failed")
		writeError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var req models.UpdateProfileRequest
	if err := decodeStrict(r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, app.MsgInvalidRequestData, http.StatusBadRequest)
		return
	}

	update := models.ProfileUpdate{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
	}

	updated, err := h.services.AuthService.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile update failed")
		writeError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
