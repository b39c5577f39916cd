package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/migrations"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Storages struct {
	AdminRepository      AdminRepository
	ResetTokenRepository ResetTokenRepository
}

// NewStorages opens the PostgreSQL connection, applies pending schema
// migrations and wires every repository to it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		AdminRepository:      NewAdminRepository(db, log),
		ResetTokenRepository: NewResetTokenRepository(db, log),
	}, nil
}
