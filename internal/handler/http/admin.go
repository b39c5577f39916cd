package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
)

func (h *Handler) addAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var query models.NewAdmin
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AdminService.CreateAdmin(ctx, actingID, query)
	if err != nil {
		log.Err(err).Msg("admin creation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateAccesses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var query models.UpdateAccesses
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.UpdateAccesses(ctx, actingID, query); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("access update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updateMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var query models.UpdateMeta
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.UpdateMeta(ctx, actingID, query); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("meta update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var query models.UpdatePassword
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.UpdatePassword(ctx, actingID, query); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("password update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query, err := parseListQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid pagination params")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.AdminService.ListAdmins(ctx, actingID, query)
	if err != nil {
		log.Err(err).Msg("admin listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) countAdmins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	count, err := h.services.AdminService.CountAdmins(ctx, actingID)
	if err != nil {
		log.Err(err).Msg("admin count failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]int64{"count": count}, http.StatusOK)
}

func (h *Handler) adminDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	targetID, err := parseIDParam(r)
	if err != nil {
		log.Err(err).Msg("invalid id param")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	admin, err := h.services.AdminService.AdminDetail(ctx, actingID, targetID)
	if err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("admin detail failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}

func (h *Handler) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var query models.IDQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AdminService.DeleteAdmin(ctx, actingID, query.ID); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("admin deletion failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) selfInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actingID, ok := utils.GetAdminIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no acting admin id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	admin, err := h.services.AdminService.SelfInfo(ctx, actingID)
	if err != nil {
		log.Err(err).Msg("self info failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, admin, http.StatusOK)
}

// parseListQuery reads the offset and limit query params. Both are
// optional; absent values default to zero and are validated downstream.
func parseListQuery(r *http.Request) (models.ListQuery, error) {
	var query models.ListQuery

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.ListQuery{}, err
		}
		query.Offset = offset
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.ListQuery{}, err
		}
		query.Limit = limit
	}

	return query, nil
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
}
