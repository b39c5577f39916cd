// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/service"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAdminService implements service.AdminService for unit tests.
// Each method field can be overridden per test case.
type mockAdminService struct {
	createAdminFn    func(ctx context.Context, actingID int64, query models.NewAdmin) (models.Admin, error)
	updateAccessesFn func(ctx context.Context, actingID int64, query models.UpdateAccesses) error
	updateMetaFn     func(ctx context.Context, actingID int64, query models.UpdateMeta) error
	updatePasswordFn func(ctx context.Context, actingID int64, query models.UpdatePassword) error
	listAdminsFn     func(ctx context.Context, actingID int64, query models.ListQuery) (models.EntriesResult, error)
	countAdminsFn    func(ctx context.Context, actingID int64) (int64, error)
	adminDetailFn    func(ctx context.Context, actingID int64, targetID int64) (models.Admin, error)
	deleteAdminFn    func(ctx context.Context, actingID int64, targetID int64) error
	selfInfoFn       func(ctx context.Context, actingID int64) (models.Admin, error)
}

func (m *mockAdminService) CreateAdmin(ctx context.Context, actingID int64, query models.NewAdmin) (models.Admin, error) {
	return m.createAdminFn(ctx, actingID, query)
}

func (m *mockAdminService) UpdateAccesses(ctx context.Context, actingID int64, query models.UpdateAccesses) error {
	return m.updateAccessesFn(ctx, actingID, query)
}

func (m *mockAdminService) UpdateMeta(ctx context.Context, actingID int64, query models.UpdateMeta) error {
	return m.updateMetaFn(ctx, actingID, query)
}

func (m *mockAdminService) UpdatePassword(ctx context.Context, actingID int64, query models.UpdatePassword) error {
	return m.updatePasswordFn(ctx, actingID, query)
}

func (m *mockAdminService) ListAdmins(ctx context.Context, actingID int64, query models.ListQuery) (models.EntriesResult, error) {
	return m.listAdminsFn(ctx, actingID, query)
}

func (m *mockAdminService) CountAdmins(ctx context.Context, actingID int64) (int64, error) {
	return m.countAdminsFn(ctx, actingID)
}

func (m *mockAdminService) AdminDetail(ctx context.Context, actingID int64, targetID int64) (models.Admin, error) {
	return m.adminDetailFn(ctx, actingID, targetID)
}

func (m *mockAdminService) DeleteAdmin(ctx context.Context, actingID int64, targetID int64) error {
	return m.deleteAdminFn(ctx, actingID, targetID)
}

func (m *mockAdminService) SelfInfo(ctx context.Context, actingID int64) (models.Admin, error) {
	return m.selfInfoFn(ctx, actingID)
}

// mockResetService implements service.ResetService for unit tests.
type mockResetService struct {
	requestResetFn  func(ctx context.Context, email string) error
	verifyResetFn   func(ctx context.Context, email, token string) error
	completeResetFn func(ctx context.Context, email, token, password string) error
}

func (m *mockResetService) RequestReset(ctx context.Context, email string) error {
	return m.requestResetFn(ctx, email)
}

func (m *mockResetService) VerifyReset(ctx context.Context, email, token string) error {
	return m.verifyResetFn(ctx, email, token)
}

func (m *mockResetService) CompleteReset(ctx context.Context, email, token, password string) error {
	return m.completeResetFn(ctx, email, token, password)
}

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	loginFn       func(ctx context.Context, query models.Login) (models.Admin, models.Token, error)
	createTokenFn func(ctx context.Context, adminID int64) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, query models.Login) (models.Admin, models.Token, error) {
	return m.loginFn(ctx, query)
}

func (m *mockAuthService) CreateToken(ctx context.Context, adminID int64) (models.Token, error) {
	return m.createTokenFn(ctx, adminID)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are fine for endpoints the test never touches.
func newTestHandler(t *testing.T, admin service.AdminService, reset service.ResetService, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AdminService: admin,
		ResetService: reset,
		AuthService:  auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// actingCtx returns a context carrying the given acting admin id, the way
// the auth middleware stores it.
func actingCtx(adminID int64) context.Context {
	return context.WithValue(context.Background(), utils.AdminIDCtxKey, adminID)
}
