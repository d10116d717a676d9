// Package main implements the bench process that exercises the in-memory
// replicated-log store under a configurable workload.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	apppkg "github.com/avassa-io/ra/internal/app"
	"github.com/avassa-io/ra/internal/observability/metrics"
	"github.com/avassa-io/ra/internal/workload"
	"github.com/avassa-io/ra/memlog"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "rabench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := apppkg.LoadConfigFromEnv()
	if err != nil {
		return err
	}

	slog.SetDefault(newLogger(cfg.LogLevel))
	logger := slog.Default()

	promMetrics, err := metrics.NewPrometheus(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	store, err := memlog.New(cfg.LogID, logger, promMetrics)
	if err != nil {
		return err
	}

	driver, err := workload.NewDriver(
		store,
		cfg.Profile(),
		cfg.LogID,
		logger,
		otel.Tracer("rabench/workload"),
		promMetrics,
	)
	if err != nil {
		return err
	}

	app, err := apppkg.New(cfg, logger, store, driver)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}
