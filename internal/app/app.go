// Package app wires the in-memory log store, the workload driver, and the
// observability endpoints into a runnable bench process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/avassa-io/ra"
	"github.com/avassa-io/ra/internal/workload"
)

// Logger is the logging interface required by App.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// App wires the log store and the workload driver into a runnable process.
// All dependencies are injected; App does not construct them.
type App struct {
	config Config
	logger Logger
	store  ra.Storage
	driver *workload.Driver
}

// New validates dependencies and constructs a runnable application.
func New(cfg Config, logger Logger, store ra.Storage, driver *workload.Driver) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, fmt.Errorf("app: nil logger")
	}
	if store == nil {
		return nil, fmt.Errorf("app: nil store")
	}
	if driver == nil {
		return nil, fmt.Errorf("app: nil driver")
	}
	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		driver: driver,
	}, nil
}

// endpoint is one HTTP listener served by the app.
type endpoint struct {
	name string
	srv  *http.Server
	lis  net.Listener
}

// Run starts tracing and the HTTP endpoints, drives the workload to
// completion, and blocks until the run is verified, a server fails, or ctx
// is canceled.
func (a *App) Run(ctx context.Context) error {
	shutdownTracing, err := a.initTracing(ctx)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			a.logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	eps, err := a.listenEndpoints()
	if err != nil {
		return err
	}

	a.logger.Info(
		"bench node started",
		"log_id", a.config.LogID,
		"entries", a.config.Entries,
		"batch_size", a.config.BatchSize,
		"metrics_addr", a.config.MetricsAddr,
		"status_addr", a.config.StatusAddr,
	)

	return a.serve(ctx, eps)
}

// listenEndpoints opens the configured HTTP listeners, closing the ones
// already open when a later one fails.
func (a *App) listenEndpoints() ([]endpoint, error) {
	builders := []struct {
		name string
		fn   func() (*http.Server, net.Listener, error)
	}{
		{"metrics server", a.metricsServer},
		{"pprof server", a.pprofServer},
		{"status server", a.statusServer},
	}

	var eps []endpoint
	for _, b := range builders {
		srv, lis, err := b.fn()
		if err != nil {
			for _, ep := range eps {
				_ = ep.lis.Close()
			}
			return nil, err
		}
		if srv == nil {
			continue
		}
		eps = append(eps, endpoint{name: b.name, srv: srv, lis: lis})
	}
	return eps, nil
}

// serve starts goroutines for the HTTP endpoints and the workload run and
// blocks until the first terminal event. A completed run is verified
// against the store before serve returns.
func (a *App) serve(ctx context.Context, eps []endpoint) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(eps)+1)
	resCh := make(chan workload.Result, 1)

	for _, ep := range eps {
		go func(ep endpoint) {
			if err := ep.srv.Serve(ep.lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("%s serve: %w", ep.name, err)
			}
		}(ep)
	}

	go func() {
		res, err := a.driver.Run(runCtx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("workload run: %w", err)
			}
			return
		}
		resCh <- res
	}()

	shutdown := func() {
		for _, ep := range eps {
			shutdownHTTPServer(ep.srv, a.logger, ep.name)
		}
	}

	select {
	case <-ctx.Done():
		shutdown()
		return nil
	case err := <-errCh:
		shutdown()
		return err
	case res := <-resCh:
		shutdown()
		if err := a.driver.Verify(); err != nil {
			return fmt.Errorf("verify store after run: %w", err)
		}
		a.logger.Info(
			"run verified",
			"entries", res.Entries,
			"batches", res.Batches,
			"overwrites", res.Overwrites,
			"snapshots", res.Snapshots,
			"last_index", res.LastIndex,
			"elapsed", res.Elapsed,
		)
		return nil
	}
}
