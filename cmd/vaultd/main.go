package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/handler"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/server"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/tracing"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// drainTimeout bounds how long queued persist jobs may run after the server
// stopped.
const drainTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	shutdownTracing, err := tracing.Init(context.Background(), "vaultd", buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}

	log.Debug().
		Str("data_dir", cfg.Storage.Files.DataDir).
		Str("backup_dir", cfg.Storage.Files.BackupDir).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	pool := workers.NewPool(cfg.Workers.PersistWorkers, cfg.Workers.QueueSize, log.Component("persist-pool"))

	storages, err := store.NewStorages(cfg, pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// out-of-process hosts are told to close views in the relocation
	// response and report the close through the bridge
	services, err := service.NewServices(storages, pool, nil, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(pool).Run()
	srv.RunServer()

	shutdown(pool, storages, shutdownTracing, log)
}

func shutdown(pool *workers.Pool, storages *store.Storages, shutdownTracing tracing.ShutdownFunc, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	log.Info().Int("pending", pool.Pending()).Msg("draining persist pool")
	if err := pool.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("persist pool did not drain")
	}

	if err := storages.Close(); err != nil {
		log.Error().Err(err).Msg("error closing storages")
	}

	// persist spans end with the drain, so the exporter stops last
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("error flushing spans")
	}

	log.Info().Msg("vaultd stopped")
}
