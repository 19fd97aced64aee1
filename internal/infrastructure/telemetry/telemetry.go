package telemetry

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-faster/errors"
	"github.com/mrops-br/storefront/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Telemetry holds all OpenTelemetry components
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Registry       *prometheus.Registry
	Logger         *slog.Logger

	conn *grpc.ClientConn
}

// NewTelemetry initializes all OpenTelemetry components. Export over OTLP only
// happens when cfg.OTLP.Enabled is set; Prometheus metrics are always served.
func NewTelemetry(w io.Writer, cfg *config.Config) (*Telemetry, error) {
	ctx := context.Background()
	logger := NewLogger(w, cfg)

	if !cfg.OTLP.Enabled {
		return newLocalTelemetry(logger, &cfg.OTLP)
	}

	logger.Info("Initializing OpenTelemetry",
		slog.String("endpoint", cfg.OTLP.Endpoint),
		slog.String("service_name", cfg.OTLP.ServiceName),
	)

	conn, err := grpc.NewClient(cfg.OTLP.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create gRPC connection")
	}

	res, err := newResource(ctx, &cfg.OTLP)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	tp, err := initTracerProvider(ctx, conn, res)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "initialize tracer provider")
	}
	otel.SetTracerProvider(tp)
	logger.Info("Tracer provider initialized successfully")

	registry := prometheus.NewRegistry()
	mp, err := initMeterProvider(ctx, conn, res, registry)
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "initialize meter provider")
	}
	otel.SetMeterProvider(mp)
	logger.Info("Meter provider initialized successfully (OTLP + Prometheus exporters)")

	return &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Registry:       registry,
		Logger:         logger,
		conn:           conn,
	}, nil
}

// NewNoOpTelemetry creates a telemetry instance that never exports over the
// network. Spans are recorded but dropped; metrics stay in the local registry.
func NewNoOpTelemetry(w io.Writer, cfg *config.Config) *Telemetry {
	t, err := newLocalTelemetry(NewLogger(w, cfg), &cfg.OTLP)
	if err != nil {
		// only the prometheus exporter can fail here, and only on a
		// duplicate registration, which a fresh registry rules out
		panic(err)
	}
	return t
}

func newLocalTelemetry(logger *slog.Logger, cfg *config.OTLPConfig) (*Telemetry, error) {
	res := resource.NewWithAttributes("", serviceAttributes(cfg)...)

	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))

	registry := prometheus.NewRegistry()
	mp, err := initMeterProvider(context.Background(), nil, res, registry)
	if err != nil {
		return nil, errors.Wrap(err, "initialize meter provider")
	}

	logger.Debug("Telemetry initialized in local mode (OTLP export disabled)")

	return &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Registry:       registry,
		Logger:         logger,
	}, nil
}

// Shutdown gracefully shuts down all telemetry components
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.Logger.Debug("Shutting down OpenTelemetry")

	if err := t.TracerProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown tracer provider", slog.String("error", err.Error()))
		return err
	}

	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown meter provider", slog.String("error", err.Error()))
		return err
	}

	if t.conn != nil {
		if err := t.conn.Close(); err != nil {
			return errors.Wrap(err, "close gRPC connection")
		}
	}

	t.Logger.Debug("OpenTelemetry shutdown successfully")
	return nil
}
