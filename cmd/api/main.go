// Copyright (c) 2026 Faststamps. All rights reserved.

// Command api is the entry point for the Faststamps catalogue API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Load the stamp catalogue CSV into the in-memory store.
//  4. Wire HTTP handlers.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/faststamps/catalog-api/internal/api"
	"github.com/faststamps/catalog-api/internal/catalog"
	"github.com/faststamps/catalog-api/internal/platform/config"
	"github.com/faststamps/catalog-api/internal/platform/constants"
	"github.com/faststamps/catalog-api/internal/search"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// ── 3. Catalogue Store ────────────────────────────────────────────────
	// The store is the only I/O dependency; it must load fully (or fail
	// fatally) before any query is accepted.
	stamps, err := catalog.LoadCSV(cfg.CatalogCSVFile)
	must(log, err, "load catalogue csv")

	store, err := catalog.NewMemoryStore(stamps)
	must(log, err, "build catalogue store")

	log.Info("catalogue_loaded",
		slog.String("file", cfg.CatalogCSVFile),
		slog.Int("stamps", store.Size()),
	)

	// ── 4. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalog: func() error {
			if store.Size() == 0 {
				return fmt.Errorf("catalogue store is empty")
			}
			return nil
		},
	}, log)

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	catalogService := catalog.NewService(store, log)
	catalogHandler := catalog.NewHandler(catalogService, cfg.CatalogImagesDir)

	searchService := search.NewService(store, cfg.ResultsPerPage, cfg.LinkedPages, log)
	searchHandler := search.NewHandler(searchService)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Catalog:   catalogHandler,
		Search:    searchHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
