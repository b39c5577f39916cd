package service

import (
	"context"

	"github.com/MKhiriev/go-admin-keeper/models"
)

// AdminService implements the authorized administrative operations.
// Every method receives the acting identity's id (resolved from the
// request token by the transport layer) and consults the authorization
// policy before touching the store.
type AdminService interface {
	CreateAdmin(ctx context.Context, actingID int64, query models.NewAdmin) (models.Admin, error)
	UpdateAccesses(ctx context.Context, actingID int64, query models.UpdateAccesses) error
	UpdateMeta(ctx context.Context, actingID int64, query models.UpdateMeta) error
	UpdatePassword(ctx context.Context, actingID int64, query models.UpdatePassword) error
	ListAdmins(ctx context.Context, actingID int64, query models.ListQuery) (models.EntriesResult, error)
	CountAdmins(ctx context.Context, actingID int64) (int64, error)
	AdminDetail(ctx context.Context, actingID int64, targetID int64) (models.Admin, error)
	DeleteAdmin(ctx context.Context, actingID int64, targetID int64) error
	SelfInfo(ctx context.Context, actingID int64) (models.Admin, error)
}

// ResetService implements the pre-authentication password reset flow.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	VerifyReset(ctx context.Context, email, token string) error
	CompleteReset(ctx context.Context, email, token, password string) error
}

// AuthService establishes and validates acting identities.
type AuthService interface {
	Login(ctx context.Context, query models.Login) (models.Admin, models.Token, error)
	CreateToken(ctx context.Context, adminID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TokenGenerator produces opaque reset token values.
type TokenGenerator interface {
	Generate() string
}
