package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-keeper/internal/service"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrParam:                   http.StatusBadRequest,
	service.ErrMissingParam:            http.StatusBadRequest,
	service.ErrResetTokenInvalid:       http.StatusBadRequest,
	service.ErrResetTokenExpired:       http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusForbidden,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrAdminNotFound:      http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrResetTokenNotFound: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
