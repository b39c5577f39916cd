package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/notify"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
)

// resetService implements [ResetService], the three-step password reset
// flow: request a token, verify it, then set the new password.
//
// Only one reset token exists per account at any time; requesting a new
// one overwrites the previous. Verification does not consume the token,
// completion does.
type resetService struct {
	// adminRepository resolves accounts by email.
	adminRepository store.AdminRepository

	// tokenRepository stores the single active reset token per account.
	tokenRepository store.ResetTokenRepository

	// notifier delivers the freshly issued token to the account owner.
	notifier notify.Notifier

	// tokenGenerator produces opaque reset token values.
	tokenGenerator TokenGenerator

	// resetTokenTTL bounds the lifetime of an issued reset token.
	resetTokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewResetService constructs a [ResetService] from the app configuration.
func NewResetService(adminRepository store.AdminRepository, tokenRepository store.ResetTokenRepository, notifier notify.Notifier, tokenGenerator TokenGenerator, cfg config.App, logger *logger.Logger) ResetService {
	return &resetService{
		adminRepository: adminRepository,
		tokenRepository: tokenRepository,
		notifier:        notifier,
		tokenGenerator:  tokenGenerator,
		resetTokenTTL:   cfg.ResetTokenTTL,
		logger:          logger,
	}
}

// RequestReset issues a fresh reset token for the account with the given
// email, overwriting any previous one, and hands it to the notifier.
//
// A notifier failure is logged but not returned: the token is already
// stored and the caller can retry delivery by requesting again.
func (s *resetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	admin, err := s.adminRepository.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset request lookup failed")
		return err
	}

	token := models.ResetToken{
		AdminID:   admin.AdminID,
		Token:     s.tokenGenerator.Generate(),
		ExpiresAt: time.Now().Add(s.resetTokenTTL),
	}
	if err := s.tokenRepository.Upsert(ctx, token); err != nil {
		log.Err(err).Int64("admin_id", admin.AdminID).Msg("reset token upsert failed")
		return err
	}

	if err := s.notifier.SendResetCode(ctx, notify.ResetCodeMessage{
		Name:  admin.Name,
		Email: admin.Email,
		Token: token.Token,
	}); err != nil {
		log.Err(err).Str("email", email).Msg("reset code delivery failed")
	}

	return nil
}

// VerifyReset checks that the given token is the active reset token of
// the account with the given email and has not expired. The token is
// left in place so that completion can present it again.
func (s *resetService) VerifyReset(ctx context.Context, email, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return fmt.Errorf("%w: token", ErrMissingParam)
	}

	admin, err := s.adminRepository.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset verification lookup failed")
		return err
	}

	stored, err := s.tokenRepository.Get(ctx, admin.AdminID)
	if err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetTokenInvalid
		}
		log.Err(err).Int64("admin_id", admin.AdminID).Msg("reset token lookup failed")
		return err
	}

	if stored.Expired(time.Now()) {
		return ErrResetTokenExpired
	}
	if stored.Token != token {
		return ErrResetTokenInvalid
	}

	return nil
}

// CompleteReset verifies the token one final time, replaces the account's
// password and consumes the token. After completion the token is gone and
// cannot be replayed.
func (s *resetService) CompleteReset(ctx context.Context, email, token, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		return fmt.Errorf("%w: password", ErrMissingParam)
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	if err := s.VerifyReset(ctx, email, token); err != nil {
		return err
	}

	admin, err := s.adminRepository.GetByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("reset completion lookup failed")
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return err
	}

	// one transaction: the password change and the token removal land together
	if err := s.tokenRepository.Consume(ctx, admin.AdminID, hash); err != nil {
		log.Err(err).Int64("admin_id", admin.AdminID).Msg("reset completion failed")
		return err
	}

	return nil
}
