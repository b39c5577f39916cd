package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
	"github.com/MKhiriev/go-admin-keeper/models"
)

// authService implements [AuthService]: credential checks and JWT issue/parse.
type authService struct {
	// adminRepository is used for email based credential lookups.
	adminRepository store.AdminRepository

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is written into the `iss` claim of issued tokens.
	tokenIssuer string

	// tokenDuration is the lifetime of issued tokens.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] from the app configuration.
func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login checks the given credentials and, on success, returns the matching
// account together with a freshly signed token.
//
// A wrong password and an unknown email are reported differently on
// purpose: an unknown email surfaces as store.ErrAdminNotFound, a bad
// password as ErrWrongPassword.
func (s *authService) Login(ctx context.Context, query models.Login) (models.Admin, models.Token, error) {
	log := logger.FromContext(ctx)

	admin, err := s.adminRepository.GetByEmail(ctx, query.Email)
	if err != nil {
		log.Err(err).Str("email", query.Email).Msg("login lookup failed")
		return models.Admin{}, models.Token{}, err
	}

	if !utils.CheckPassword(admin.PasswordHash, query.Password) {
		log.Error().Str("email", query.Email).Msg("wrong password on login")
		return models.Admin{}, models.Token{}, ErrWrongPassword
	}

	token, err := s.CreateToken(ctx, admin.AdminID)
	if err != nil {
		return models.Admin{}, models.Token{}, err
	}

	return admin, token, nil
}

// CreateToken issues a signed JWT carrying the given admin id.
func (s *authService) CreateToken(ctx context.Context, adminID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.tokenIssuer, adminID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("admin_id", adminID).Msg("jwt token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates the signature and claims of the given token string
// and returns the parsed token. Any verification failure, expiry included,
// is reported as ErrTokenIsExpiredOrInvalid.
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("jwt token validation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
