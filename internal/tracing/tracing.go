// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tracing installs the OpenTelemetry tracer provider used by the
// persist pipeline spans and the otelhttp server and client wrappers.
//
// Export is off unless OTEL_TRACES_EXPORTER=otlp is set; the OTLP exporter is
// then configured by the standard OTEL_EXPORTER_OTLP_* variables. The W3C
// trace context propagators are installed either way, so trace headers pass
// through vaultd and vaultctl even when nothing is exported.
package tracing

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/go-logr/stdr"
	"go.opentelemetry.io/contrib/exporters/autoexport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// ExporterEnvVar selects the span exporter. Only "otlp" enables export.
const ExporterEnvVar = "OTEL_TRACES_EXPORTER"

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init installs the global propagators and, when export is enabled, a batching
// tracer provider for service. The returned ShutdownFunc is never nil.
func Init(ctx context.Context, service string, info models.AppBuildInfo, log *logger.Logger) (ShutdownFunc, error) {
	log = log.Component("tracing")

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetLogger(stdr.New(stdlog.New(log, "", 0)))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Error().Err(err).Msg("opentelemetry error")
	}))

	// autoexport expects a collector on localhost when nothing is configured,
	// so export stays off unless asked for
	if os.Getenv(ExporterEnvVar) != "otlp" {
		log.Debug().Str("env", ExporterEnvVar).Msg("span export disabled")
		return noopShutdown, nil
	}

	res, err := resource.New(ctx,
		resource.WithOS(),
		resource.WithHost(),
		resource.WithProcess(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(service),
			semconv.ServiceVersion(info.Version),
			semconv.TelemetrySDKName("opentelemetry"),
			semconv.TelemetrySDKLanguageGo,
			semconv.TelemetrySDKVersion(sdk.Version()),
		),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("%w: resource: %w", ErrTracingInit, err)
	}

	exporter, err := autoexport.NewSpanExporter(ctx)
	if err != nil {
		return noopShutdown, fmt.Errorf("%w: exporter: %w", ErrTracingInit, err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	log.Info().Str("service", service).Msg("span export enabled")
	return provider.Shutdown, nil
}
