package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jpeder/gamevault/internal/archive"
	"github.com/jpeder/gamevault/internal/config"
	"github.com/jpeder/gamevault/internal/database"
	"github.com/jpeder/gamevault/internal/database/postgres"
	"github.com/jpeder/gamevault/internal/review"
	"github.com/jpeder/gamevault/internal/server"
	"github.com/jpeder/gamevault/internal/taxonomy"
	"github.com/jpeder/gamevault/internal/wip"
)

const shutdownTimeout = 10 * time.Second

// @title GameVault API
// @version 1.0
// @description Personal game review catalog with archive snapshots and genre normalization
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	_ = godotenv.Load()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Repositories
	taxonomyRepo := postgres.NewTaxonomyRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	archiveRepo := postgres.NewArchiveRepository(pool)
	wipRepo := postgres.NewWipRepository(pool)

	// Services
	taxonomyService := taxonomy.NewService(taxonomyRepo, taxonomy.DefaultCacheSize, cfg.GenreCacheTTL)
	reviewService := review.NewService(reviewRepo, taxonomyService)
	archiveService := archive.NewService(archiveRepo, taxonomyService)
	wipService := wip.NewService(wipRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool,
		reviewService, archiveService, taxonomyService, wipService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
