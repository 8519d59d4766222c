package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/client"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/tracing"
	"github.com/MKhiriev/go-vault-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// flushTimeout bounds the export of spans before vaultctl exits.
const flushTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewConsoleLogger("vaultctl", os.Stderr)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	shutdownTracing, err := tracing.Init(context.Background(), "vaultctl", buildInfo, log)
	if err != nil {
		log.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn().Err(err).Msg("error flushing spans")
		}
	}()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	adminAdapter, err := adapter.NewHTTPAdminAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin adapter")
	}

	var app client.Client = client.NewApp(adminAdapter, cfg, buildInfo, os.Stdout, log)

	ctx, span := otel.Tracer("github.com/MKhiriev/go-vault-keeper/cmd/vaultctl").Start(context.Background(), "vaultctl")
	defer span.End()

	if err = app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
