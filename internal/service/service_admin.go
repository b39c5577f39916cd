package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-admin-keeper/internal/labels"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
)

// adminService is the concrete implementation of [AdminService].
// It resolves the acting identity, consults the authorization policy and
// performs the semantic work against the admin repository. All access
// decisions happen here; the repository performs none.
type adminService struct {
	// adminRepository is the data-access layer for administrator accounts.
	adminRepository store.AdminRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAdminService constructs an [AdminService] wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAdminService(adminRepository store.AdminRepository, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		logger:          logger,
	}
}

// CreateAdmin registers a new administrator account.
//
// Checks run strictly before the store write, in this order: input
// validation, confirmation password match, authorization. The requested
// permission names are namespaced and normalised into access labels, and
// the password is stored as a bcrypt hash.
//
// Returns the persisted account or:
//   - ErrValidation for malformed input.
//   - ErrParam if the confirmation password does not match.
//   - ErrUnauthorized unless the acting identity is the superuser.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *adminService) CreateAdmin(ctx context.Context, actingID int64, query models.NewAdmin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	if err := validateNewAdmin(query); err != nil {
		log.Error().Str("email", query.Email).Msg("invalid new admin data provided")
		return models.Admin{}, err
	}

	if query.Password != query.ConfirmPassword {
		log.Error().Str("email", query.Email).Msg("confirmation password didn't match")
		return models.Admin{}, fmt.Errorf("%w: confirmation password didn't match", ErrParam)
	}

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return models.Admin{}, err
	}
	if err := Authorize(acting, OpCreateAdmin); err != nil {
		log.Error().Int64("acting_id", actingID).Msg("admin creation denied")
		return models.Admin{}, err
	}

	hash, err := utils.HashPassword(query.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Admin{}, err
	}

	created, err := a.adminRepository.Create(ctx, models.Admin{
		Name:         query.Name,
		Email:        query.Email,
		PhoneNum:     query.PhoneNum,
		PasswordHash: hash,
		Meta:         labels.ToLabels(query.Accesses),
	})
	if err != nil {
		log.Err(err).Str("email", query.Email).Msg("admin creation ended with error")
		return models.Admin{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateAccesses replaces the access labels of the target account,
// preserving every non-access metadata entry. Superuser only.
func (a *adminService) UpdateAccesses(ctx context.Context, actingID int64, query models.UpdateAccesses) error {
	log := logger.FromContext(ctx)

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return err
	}
	if err := Authorize(acting, OpUpdateAccesses); err != nil {
		log.Error().Int64("acting_id", actingID).Int64("target_id", query.ID).Msg("access update denied")
		return err
	}

	target, err := a.adminRepository.GetByID(ctx, query.ID)
	if err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("target admin lookup failed")
		return err
	}

	newMeta := labels.ReplaceAccess(target.Meta, query.Accesses)
	if err := a.adminRepository.UpdateMeta(ctx, query.ID, newMeta); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("access update failed")
		return err
	}

	return nil
}

// UpdateMeta replaces the entire metadata list of the target account,
// access labels included. Superuser only.
func (a *adminService) UpdateMeta(ctx context.Context, actingID int64, query models.UpdateMeta) error {
	log := logger.FromContext(ctx)

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return err
	}
	if err := Authorize(acting, OpUpdateMeta); err != nil {
		log.Error().Int64("acting_id", actingID).Int64("target_id", query.ID).Msg("meta update denied")
		return err
	}

	// the target must exist before the blind replace
	if _, err := a.adminRepository.GetByID(ctx, query.ID); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("target admin lookup failed")
		return err
	}

	if err := a.adminRepository.UpdateMeta(ctx, query.ID, query.Meta); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("meta update failed")
		return err
	}

	return nil
}

// UpdatePassword sets a new password for the target account by id.
// Superuser only; the confirmation password must match.
func (a *adminService) UpdatePassword(ctx context.Context, actingID int64, query models.UpdatePassword) error {
	log := logger.FromContext(ctx)

	if err := validatePassword(query.Password); err != nil {
		return err
	}

	if query.Password != query.ConfirmPassword {
		log.Error().Int64("target_id", query.ID).Msg("confirmation password didn't match")
		return fmt.Errorf("%w: confirmation password didn't match", ErrParam)
	}

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return err
	}
	if err := Authorize(acting, OpUpdatePassword); err != nil {
		log.Error().Int64("acting_id", actingID).Int64("target_id", query.ID).Msg("password update denied")
		return err
	}

	hash, err := utils.HashPassword(query.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return err
	}

	if err := a.adminRepository.SetPasswordHash(ctx, query.ID, hash); err != nil {
		log.Err(err).Int64("target_id", query.ID).Msg("password update failed")
		return err
	}

	return nil
}

// ListAdmins pages through the account listing. Superuser only.
//
// The returned entries never include the reserved root account; the
// count, however, is the raw table count (root included) for
// compatibility with existing listing consumers.
func (a *adminService) ListAdmins(ctx context.Context, actingID int64, query models.ListQuery) (models.EntriesResult, error) {
	log := logger.FromContext(ctx)

	if err := validateListQuery(query); err != nil {
		return models.EntriesResult{}, err
	}

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return models.EntriesResult{}, err
	}
	if err := Authorize(acting, OpListAdmins); err != nil {
		log.Error().Int64("acting_id", actingID).Msg("admin listing denied")
		return models.EntriesResult{}, err
	}

	entries, err := a.adminRepository.List(ctx, query.Offset, query.Limit)
	if err != nil {
		log.Err(err).Msg("admin listing failed")
		return models.EntriesResult{}, err
	}

	count, err := a.adminRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("admin count failed")
		return models.EntriesResult{}, err
	}

	return models.EntriesResult{Count: count, Entries: entries}, nil
}

// CountAdmins returns the total account count. Any authenticated identity.
func (a *adminService) CountAdmins(ctx context.Context, actingID int64) (int64, error) {
	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return 0, err
	}
	if err := Authorize(acting, OpCountAdmins); err != nil {
		return 0, err
	}

	return a.adminRepository.Count(ctx)
}

// AdminDetail reads a single account by id. Any authenticated identity.
func (a *adminService) AdminDetail(ctx context.Context, actingID int64, targetID int64) (models.Admin, error) {
	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return models.Admin{}, err
	}
	if err := Authorize(acting, OpAdminDetail); err != nil {
		return models.Admin{}, err
	}

	return a.adminRepository.GetByID(ctx, targetID)
}

// DeleteAdmin removes the target account. Hard delete, no undo.
// Any authenticated identity may delete, except that the reserved root
// account can only be targeted by the superuser itself.
func (a *adminService) DeleteAdmin(ctx context.Context, actingID int64, targetID int64) error {
	log := logger.FromContext(ctx)

	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return err
	}
	if err := Authorize(acting, OpDeleteAdmin); err != nil {
		return err
	}

	if targetID == models.RootAdminID && !acting.IsRoot() {
		log.Error().Int64("acting_id", actingID).Msg("attempt to delete the root account denied")
		return ErrUnauthorized
	}

	if err := a.adminRepository.DeleteByID(ctx, targetID); err != nil {
		log.Err(err).Int64("target_id", targetID).Msg("admin deletion failed")
		return err
	}

	return nil
}

// SelfInfo returns the acting identity's own record.
func (a *adminService) SelfInfo(ctx context.Context, actingID int64) (models.Admin, error) {
	acting, err := a.actingAdmin(ctx, actingID)
	if err != nil {
		return models.Admin{}, err
	}
	if err := Authorize(acting, OpSelfInfo); err != nil {
		return models.Admin{}, err
	}

	return acting, nil
}

// actingAdmin resolves the acting identity from the store. A missing
// account means the token refers to a deleted admin: treated as
// unauthorized, not as not-found.
func (a *adminService) actingAdmin(ctx context.Context, actingID int64) (models.Admin, error) {
	if actingID == 0 {
		return models.Admin{}, ErrUnauthorized
	}

	acting, err := a.adminRepository.GetByID(ctx, actingID)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return models.Admin{}, ErrUnauthorized
		}
		return models.Admin{}, fmt.Errorf("acting admin lookup failed: %w", err)
	}

	return acting, nil
}
