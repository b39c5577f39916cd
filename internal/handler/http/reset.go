package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/models"
)

// The three reset endpoints share the models.ResetPassword payload:
// the request step needs only the email, verification adds the token,
// completion adds the new password.

func (h *Handler) resetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var query models.ResetPassword
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.RequestReset(ctx, query.Email); err != nil {
		log.Err(err).Str("email", query.Email).Msg("reset request failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var query models.ResetPassword
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.VerifyReset(ctx, query.Email, query.Token); err != nil {
		log.Err(err).Str("email", query.Email).Msg("reset verification failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) resetComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var query models.ResetPassword
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ResetService.CompleteReset(ctx, query.Email, query.Token, query.Password); err != nil {
		log.Err(err).Str("email", query.Email).Msg("reset completion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
