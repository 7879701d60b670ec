// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/wardrobe/internal/api"
	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/database"
	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/supervisor"
	"github.com/tomtom215/wardrobe/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

//nolint:gocyclo // Sequential setup steps
func run(cfg *config.Config) error {
	logger := logging.Logger()
	metrics.SetAppInfo(version, runtime.Version())

	logger.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting wardrobe server")

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bridges zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	engine, err := initRecommend(cfg, db, logger)
	if err != nil {
		return err
	}

	events, err := initEvents(cfg, engine, tree, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	ledgerOpts := []ledger.Option{ledger.WithCacheInvalidator(engine)}
	if events != nil {
		ledgerOpts = append(ledgerOpts, ledger.WithPublisher(events.Publisher))
	}
	led := ledger.New(db, logger, ledgerOpts...)

	handler := api.NewHandler(led, engine, db, db, api.WithVersion(version))
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	if cfg.Security.RateLimitDisabled {
		logger.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Data layer
	if cfg.Database.CheckpointInterval > 0 {
		tree.AddDataService(services.NewCheckpointService(db, cfg.Database.CheckpointInterval, logger))
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logger.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logger.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor tree error")
		}
		stop()
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logger.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
