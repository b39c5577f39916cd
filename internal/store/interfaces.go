package store

import (
	"context"

	"github.com/MKhiriev/go-admin-keeper/models"
)

// AdminRepository is the persistence contract for administrator accounts.
// It performs no authorization: all access decisions happen in the service
// layer before any call reaches this interface.
type AdminRepository interface {
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)
	GetByID(ctx context.Context, adminID int64) (models.Admin, error)
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
	UpdateMeta(ctx context.Context, adminID int64, meta []string) error
	SetPasswordHash(ctx context.Context, adminID int64, hash string) error
	DeleteByID(ctx context.Context, adminID int64) error
	List(ctx context.Context, offset, limit int64) ([]models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// ResetTokenRepository is the persistence contract for password reset
// tokens. At most one pending token exists per account; Upsert overwrites
// any previous pending token for the same account.
type ResetTokenRepository interface {
	Upsert(ctx context.Context, token models.ResetToken) error
	Get(ctx context.Context, adminID int64) (models.ResetToken, error)
	Delete(ctx context.Context, adminID int64) error
	Consume(ctx context.Context, adminID int64, passwordHash string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Used for diagnostic logging on store error paths.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
