// Package server hosts the app for a long-running process: it opens the
// configured record store, wires the app facade, and runs the operational
// and metrics listeners with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"leaguehub/internal/app"
	"leaguehub/internal/config"
	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
	"leaguehub/internal/ops"
	"leaguehub/internal/storage"
	boltstore "leaguehub/internal/storage/bolt"
	filestore "leaguehub/internal/storage/file"
	"leaguehub/internal/storage/memory"
)

var metricsSetup = metrics.Setup

// Server owns the process lifecycle.
type Server struct {
	cfg    config.Config
	logger *slog.Logger

	store storage.Store
	app   *app.App
	ready atomic.Bool

	opsServer     httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	store, err := openStore(cfg.Storage)
	if err != nil {
		return nil, err
	}

	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger)
	application := app.New(store, logger, recorder)
	application.SeedOnEmpty = cfg.SeedOnEmpty

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		app:           application,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
	}
	s.opsServer = buildOpsServer(cfg, logger, recorder, s.ready.Load)
	return s, nil
}

// App returns the wired application facade.
func (s *Server) App() *app.App {
	return s.app
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		store, err := boltstore.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		return store, nil
	case config.DriverFile:
		store, err := filestore.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return store, nil
	case config.DriverMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func buildOpsServer(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, ready func() bool) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	router := ops.NewRouter(ops.NewHandler(ready, logger))
	wrapped := ops.LoggingMiddleware(logger, recorder, router)

	return netHTTPServer{
		srv: &http.Server{
			Addr:         ":" + cfg.OpsPort,
			Handler:      wrapped,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

// Run bootstraps the app, starts the listeners, and waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) error {
	if err := s.app.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	s.ready.Store(true)

	s.startMetrics()
	s.startOps(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
	return nil
}

func (s *Server) startOps(stop context.CancelFunc) {
	launchServer("ops", s.opsServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if s.opsServer != nil {
		if err := s.opsServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "ops server shutdown failed", err)
		}
	}
	if err := s.store.Close(); err != nil {
		logging.Error(s.logger, "record store close failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the ops HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.opsServer.Handler()
}
