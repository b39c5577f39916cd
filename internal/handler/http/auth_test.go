// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-admin-keeper/internal/service"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, query models.Login) (models.Admin, models.Token, error) {
			assert.Equal(t, "operator@example.com", query.Email)
			return models.Admin{AdminID: 5, Email: query.Email}, models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, nil, nil, auth)

	body := jsonBody(t, models.Login{Email: "operator@example.com", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
	}{
		{"unknown email", store.ErrAdminNotFound},
		{"wrong password", service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _ models.Login) (models.Admin, models.Token, error) {
					return models.Admin{}, models.Token{}, tt.serviceErr
				},
			}

			h := newTestHandler(t, nil, nil, auth)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{}"))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			// both credential failures collapse into the same answer
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid email/password")
		})
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Login) (models.Admin, models.Token, error) {
			return models.Admin{}, models.Token{}, errors.New("connection refused")
		},
	}

	h := newTestHandler(t, nil, nil, auth)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
