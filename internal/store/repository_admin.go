package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/models"
	"github.com/jackc/pgerrcode"
)

// adminRepository is the PostgreSQL-backed implementation of [AdminRepository].
// It handles administrator account CRUD against the "admins" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type adminRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new administrator record and returns the fully populated
// [models.Admin] with server-assigned fields (AdminID, CreatedAt).
//
// The INSERT uses the [createAdmin] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *adminRepository) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	metaJSON, err := metaToJSON(admin.Meta)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.Create").Msg("error: meta serialization failed")
		return models.Admin{}, err
	}

	row := r.db.QueryRowContext(ctx, createAdmin, admin.Name, admin.Email, admin.PhoneNum, admin.PasswordHash, metaJSON)

	// create admin in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*adminRepository.Create").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Admin{}, ErrEmailAlreadyExists
		default:
			return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanAdminRow(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Admin{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*adminRepository.Create").Msg("error: scanning error")
		return models.Admin{}, err
	}

	return created, nil
}

// GetByID retrieves an administrator record by its identifier.
//
// Error handling:
//   - No matching row → [ErrAdminNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminRepository) GetByID(ctx context.Context, adminID int64) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getAdminByID, adminID)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.GetByID").Msg("error: row is nil")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAdminRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.GetByID").Int64("admin_id", adminID).Msg("error: scanning error")
		return models.Admin{}, err
	}

	return found, nil
}

// GetByEmail retrieves an administrator record whose email matches the one
// provided. Used by the login and password reset flows.
//
// Error handling mirrors [adminRepository.GetByID].
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getAdminByEmail, email)
	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.GetByEmail").Msg("error: row is nil")
		return models.Admin{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	found, err := scanAdminRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		log.Err(err).Str("func", "*adminRepository.GetByEmail").Str("email", email).Msg("error: scanning error")
		return models.Admin{}, err
	}

	return found, nil
}

// UpdateMeta replaces the entire metadata document of the target account.
//
// The UPDATE statement is built with squirrel (see [buildUpdateMetaQuery]).
// A zero-row update means the target account does not exist →
// [ErrAdminNotFound].
func (r *adminRepository) UpdateMeta(ctx context.Context, adminID int64, meta []string) error {
	log := logger.FromContext(ctx)

	metaJSON, err := metaToJSON(meta)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.UpdateMeta").Msg("error: meta serialization failed")
		return err
	}

	query, args, err := buildUpdateMetaQuery(adminID, metaJSON)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.UpdateMeta").Msg("failed to build update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*adminRepository.UpdateMeta").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute meta update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireRowAffected(result)
}

// SetPasswordHash stores a new password hash for the target account.
// A zero-row update → [ErrAdminNotFound].
func (r *adminRepository) SetPasswordHash(ctx context.Context, adminID int64, hash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setAdminPassword, hash, adminID)
	if err != nil {
		log.Err(err).
			Str("func", "*adminRepository.SetPasswordHash").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute password update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireRowAffected(result)
}

// DeleteByID removes the target account. Hard delete, no undo.
// A zero-row delete → [ErrAdminNotFound].
func (r *adminRepository) DeleteByID(ctx context.Context, adminID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteAdminByID, adminID)
	if err != nil {
		log.Err(err).
			Str("func", "*adminRepository.DeleteByID").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireRowAffected(result)
}

// List returns a page of administrator accounts ordered by id. The reserved
// root account is excluded at the SQL level (see [buildListAdminsQuery]).
func (r *adminRepository) List(ctx context.Context, offset, limit int64) ([]models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAdminsQuery(offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.List").Msg("failed to build list query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*adminRepository.List").
			Int64("offset", offset).
			Int64("limit", limit).
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Admin, 0, limit)

	for rows.Next() {
		var admin models.Admin
		var metaJSON []byte

		scanErr := rows.Scan(
			&admin.AdminID,
			&admin.Name,
			&admin.Email,
			&admin.PhoneNum,
			&admin.PasswordHash,
			&metaJSON,
			&admin.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*adminRepository.List").Msg("failed to scan admin row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if admin.Meta, err = metaFromJSON(metaJSON); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		results = append(results, admin)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*adminRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Count returns the raw number of rows in the admins table, the reserved
// root account included. Listing callers filter separately; see the service
// layer notes on this asymmetry.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countAdmins).Scan(&count); err != nil {
		log.Err(err).Str("func", "*adminRepository.Count").Msg("failed to count admins")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// scanAdminRow scans a single admins row, decoding the meta JSONB column.
func scanAdminRow(row *sql.Row) (models.Admin, error) {
	var admin models.Admin
	var metaJSON []byte

	if err := row.Scan(
		&admin.AdminID,
		&admin.Name,
		&admin.Email,
		&admin.PhoneNum,
		&admin.PasswordHash,
		&metaJSON,
		&admin.CreatedAt,
	); err != nil {
		return models.Admin{}, err
	}

	meta, err := metaFromJSON(metaJSON)
	if err != nil {
		return models.Admin{}, err
	}
	admin.Meta = meta

	return admin, nil
}

// requireRowAffected maps a zero-row DML result to [ErrAdminNotFound].
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAdminNotFound
	}

	return nil
}
