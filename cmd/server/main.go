package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-admin-keeper/internal/config"
	"github.com/MKhiriev/go-admin-keeper/internal/handler"
	"github.com/MKhiriev/go-admin-keeper/internal/logger"
	"github.com/MKhiriev/go-admin-keeper/internal/notify"
	"github.com/MKhiriev/go-admin-keeper/internal/server"
	"github.com/MKhiriev/go-admin-keeper/internal/service"
	"github.com/MKhiriev/go-admin-keeper/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := notify.NewWebhookNotifier(cfg.Notify, log)

	services := service.NewServices(storages, notifier, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
