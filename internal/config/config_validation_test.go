package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "admin-keeper",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/admins"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())
	// unset TTL falls back to the default
	assert.Equal(t, defaultResetTokenTTL, cfg.App.ResetTokenTTL)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingTokenSettings(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := validConfig()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_KeepsExplicitResetTTL(t *testing.T) {
	cfg := validConfig()
	cfg.App.ResetTokenTTL = 10 * time.Minute
	require.NoError(t, cfg.validate())
	assert.Equal(t, 10*time.Minute, cfg.App.ResetTokenTTL)
}
