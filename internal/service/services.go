package service

import (
	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/notify"
	"github.com/MKhiriev/go-admin-keeper/internal/store"
	"github.com/MKhiriev/go-admin-keeper/internal/utils"
)

type Services struct {
	AdminService AdminService
	ResetService ResetService
	AuthService  AuthService
}

func NewServices(storages *store.Storages, notifier notify.Notifier, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AdminService: NewAdminService(storages.AdminRepository, logger),
		ResetService: NewResetService(storages.AdminRepository, storages.ResetTokenRepository, notifier, utils.NewUUIDGenerator(), cfg.App, logger),
		AuthService:  NewAuthService(storages.AdminRepository, cfg.App, logger),
	}
}
