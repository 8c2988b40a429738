package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/placemint/placemint/config"
	"github.com/placemint/placemint/internal/api"
	"github.com/placemint/placemint/internal/database"
	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/metrics"
	middlewares "github.com/placemint/placemint/internal/middleware"
	"github.com/placemint/placemint/internal/ratelimit"
	"github.com/placemint/placemint/internal/scoring"
	"github.com/placemint/placemint/internal/store"
	"github.com/placemint/placemint/internal/zones"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Starting placemint",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Initialize metrics
	if cfg.Metrics.Enabled {
		metrics.Init()
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database (optional; file/in-memory fallback without it)
	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}
	defer db.Close(ctx)

	// Initialize zone inventory
	zoneProvider, err := setupZones(ctx, db, cfg.Zones)
	if err != nil {
		logger.Fatal("Failed to initialize zone inventory", "error", err)
	}

	// Initialize saved-recommendation store
	savedStore := store.New(db)
	if pg, ok := savedStore.(*store.PostgresStore); ok {
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Fatal("Failed to prepare saved-recommendations schema", "error", err)
		}
	}

	// Initialize scoring engine
	engine := scoring.NewEngine(zoneProvider, cfg.Scoring.Workers)
	engine.MaxZones = cfg.Scoring.MaxZonesPerRun
	engine.MaxAlternatives = cfg.Scoring.MaxAlternatives

	// Optional Redis-backed rate limiting
	var limiter *ratelimit.Manager
	if cfg.RateLimit.Enabled && cfg.Redis.URL != "" {
		limiter, err = ratelimit.NewManager(cfg.Redis.URL)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer limiter.Close()
		logger.Info("Redis rate limiting enabled", "rpm", cfg.RateLimit.RequestsPerMinute)
	}

	// Setup HTTP server
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.Logging)
	r.Use(middlewares.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.ReadTimeout))
	r.Use(middlewares.Security)
	if cfg.RateLimit.Enabled {
		if limiter != nil {
			r.Use(middlewares.RedisRateLimit(limiter, cfg.RateLimit.RequestsPerMinute))
		} else {
			r.Use(middlewares.RateLimit(cfg.RateLimit.RequestsPerMinute))
		}
	}

	// Initialize API handlers
	apiHandler := api.NewHandler(engine, zoneProvider, savedStore, Version, BuildTime, GitCommit)
	apiHandler.RegisterRoutes(r)

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path)
	}

	// HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}

// setupZones picks the provider and, when a database is configured,
// seeds the zones table from the file inventory so a fresh postgres
// deployment starts with data.
func setupZones(ctx context.Context, db *database.DB, cfg config.ZonesConfig) (zones.Provider, error) {
	provider, err := zones.New(db, cfg)
	if err != nil {
		return nil, err
	}

	pg, ok := provider.(*zones.PostgresProvider)
	if !ok {
		return provider, nil
	}

	if err := pg.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	count, err := pg.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		file, err := zones.NewFileProvider(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		inventory, err := file.GetAllZones(ctx)
		if err != nil {
			return nil, err
		}
		if err := pg.Seed(ctx, inventory); err != nil {
			return nil, err
		}
		logger.Info("Seeded zones table from file inventory", "zones", len(inventory))
		count = len(inventory)
	}

	metrics.SetZonesLoaded(float64(count))
	return pg, nil
}

func startMetricsServer(port int, path string) {
	mux := http.NewServeMux()
	mux.Handle(path, metrics.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info("Starting metrics server", "address", addr, "path", path)

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "error", err)
	}
}
