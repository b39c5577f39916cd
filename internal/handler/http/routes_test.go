package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-admin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_UnauthenticatedGroupReachable(t *testing.T) {
	reset := &mockResetService{
		requestResetFn: func(_ context.Context, _ string) error { return nil },
	}

	h := newTestHandler(t, nil, reset, &mockAuthService{})
	router := h.Init()

	body := jsonBody(t, models.ResetPassword{Email: "operator@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/reset_password/request", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_AuthenticatedGroupRejectsAnonymous(t *testing.T) {
	h := newTestHandler(t, &mockAdminService{}, nil, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/me/info", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_AuthenticatedGroupPassesActingIdentity(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{AdminID: 42}, nil
		},
	}
	admin := &mockAdminService{
		selfInfoFn: func(_ context.Context, actingID int64) (models.Admin, error) {
			assert.Equal(t, int64(42), actingID)
			return models.Admin{AdminID: actingID}, nil
		},
	}

	h := newTestHandler(t, admin, nil, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/me/info", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_TraceIDHeaderAlwaysSet(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Login) (models.Admin, models.Token, error) {
			return models.Admin{}, models.Token{}, nil
		},
	}
	h := newTestHandler(t, nil, nil, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRoutes_EchoesIncomingTraceID(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Login) (models.Admin, models.Token, error) {
			return models.Admin{}, models.Token{}, nil
		},
	}
	h := newTestHandler(t, nil, nil, auth)
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/login", strings.NewReader("{}"))
	req.Header.Set("X-Trace-ID", "trace-abc")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get("X-Trace-ID"))
}
