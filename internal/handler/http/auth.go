package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/service"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var query models.Login
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	admin, token, err := h.services.AuthService.Login(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAdminNotFound) || errors.Is(err, service.ErrWrongPassword):
			// unknown email and wrong password collapse into one answer
			// so that the endpoint does not reveal which accounts exist
			log.Err(err).Str("email", query.Email).Msg("no admin was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", admin.AdminID).Msg("admin successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, admin, http.StatusOK)
}
