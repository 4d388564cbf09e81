// Package main is the entry point for the registration service. It wires all
// dependencies using samber/do v2, starts the HTTP server and the idle-flow
// sweeper, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/registration-flow/internal/adapters/http"
	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/analytics"
	"github.com/jsamuelsen11/registration-flow/internal/adapters/store/memory"
	"github.com/jsamuelsen11/registration-flow/internal/app"
	"github.com/jsamuelsen11/registration-flow/internal/platform/config"
	"github.com/jsamuelsen11/registration-flow/internal/platform/health"
	"github.com/jsamuelsen11/registration-flow/internal/platform/httpclient"
	"github.com/jsamuelsen11/registration-flow/internal/platform/logging"
	"github.com/jsamuelsen11/registration-flow/internal/platform/telemetry"
	"github.com/jsamuelsen11/registration-flow/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	store := do.MustInvoke[*memory.Store](injector)
	registry.Register(store)
	if cfg.Analytics.CollectorEnabled {
		registry.Register(do.MustInvoke[*analytics.CollectorSink](injector))
	}

	if otel.meter != nil {
		gauge, err := telemetry.ObserveActiveFlows(otel.meter, cfg.Telemetry.ServiceName, store.Len)
		if err != nil {
			return fmt.Errorf("observing active flows: %w", err)
		}
		defer func() { _ = gauge.Unregister() }()
	}

	// Expire abandoned flows in the background.
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	sweeper := memory.NewSweeper(store, cfg.Flow.SessionTTL, cfg.Flow.SweepInterval, logger)
	go sweeper.Run(sweepCtx)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr
	stopSweeper()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*memory.Store, error) {
		return memory.New(cfg.Flow.MaxSessions), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FlowStore, error) {
		return do.MustInvoke[*memory.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Analytics.Client, analytics.CollectorServiceName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*analytics.CollectorSink, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return analytics.NewCollectorSink(client, cfg.Analytics.CollectorPath, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Tracker, error) {
		sinks := []ports.AnalyticsSink{analytics.NewLogSink(logger)}
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			sinks = append(sinks, analytics.NewMetricsSink(metrics))
		}
		if cfg.Analytics.CollectorEnabled {
			sinks = append(sinks, do.MustInvoke[*analytics.CollectorSink](i))
		}
		return app.NewTracker(sinks, cfg.Analytics.MaxWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RegistrationService, error) {
		store := do.MustInvoke[ports.FlowStore](i)
		tracker := do.MustInvoke[*app.Tracker](i)
		return app.NewRegistrationService(store, tracker, app.Settings{
			SubmitDelay:  cfg.Flow.SubmitDelay,
			Celebration:  cfg.Flow.Celebration,
			PasswordCost: cfg.Flow.PasswordCost,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Analytics.Client.Timeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RegistrationHandler, error) {
		svc := do.MustInvoke[ports.RegistrationService](i)
		return handlers.NewRegistrationHandler(svc, cfg.Server.MaxUploadBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		regH := do.MustInvoke[*handlers.RegistrationHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(regH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
