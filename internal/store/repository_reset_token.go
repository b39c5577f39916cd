package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/models"
)

// resetTokenRepository is the PostgreSQL-backed implementation of
// [ResetTokenRepository]. The "reset_tokens" table keys on admin_id, so
// the one-pending-token-per-account invariant is enforced by the table
// itself: Upsert is a last-write-wins overwrite of the token row.
type resetTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTokenRepository constructs a [ResetTokenRepository] backed by the
// provided database connection and logger.
func NewResetTokenRepository(db *DB, logger *logger.Logger) ResetTokenRepository {
	logger.Debug().Msg("creating reset token repository")
	return &resetTokenRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert stores a fresh pending token for the account, replacing any
// previous pending token in a single atomic write.
func (r *resetTokenRepository) Upsert(ctx context.Context, token models.ResetToken) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertResetToken, token.AdminID, token.Token, token.ExpiresAt)
	if err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Upsert").
			Int64("admin_id", token.AdminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to store reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Get returns the pending token for the account, or [ErrResetTokenNotFound]
// when no token row exists.
func (r *resetTokenRepository) Get(ctx context.Context, adminID int64) (models.ResetToken, error) {
	log := logger.FromContext(ctx)

	var token models.ResetToken
	row := r.db.QueryRowContext(ctx, getResetToken, adminID)
	if err := row.Scan(&token.AdminID, &token.Token, &token.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ResetToken{}, ErrResetTokenNotFound
		}
		log.Err(err).Str("func", "*resetTokenRepository.Get").Int64("admin_id", adminID).Msg("failed to scan reset token")
		return models.ResetToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// Delete removes the pending token for the account, consuming it.
// Deleting an absent token is not an error: the end state is the same.
func (r *resetTokenRepository) Delete(ctx context.Context, adminID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, deleteResetToken, adminID)
	if err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Delete").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to delete reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Consume finishes a password reset: it replaces the account's password hash
// and removes the pending token in a single transaction, so a crash cannot
// leave the new password in place with the token still pending.
func (r *resetTokenRepository) Consume(ctx context.Context, adminID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Consume").
			Int64("admin_id", adminID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, setAdminPassword, passwordHash, adminID)
	if err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Consume").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to replace password hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err := requireRowAffected(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deleteResetToken, adminID); err != nil {
		log.Err(err).
			Str("func", "*resetTokenRepository.Consume").
			Int64("admin_id", adminID).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to delete reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "*resetTokenRepository.Consume").
			Int64("admin_id", adminID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}
