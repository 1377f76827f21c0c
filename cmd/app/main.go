package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aldermoor/villageforge/internal/bootstrap"
	"github.com/aldermoor/villageforge/internal/concurrency"
	"github.com/aldermoor/villageforge/internal/config"
	"github.com/aldermoor/villageforge/internal/database"
	"github.com/aldermoor/villageforge/internal/database/postgres"
	"github.com/aldermoor/villageforge/internal/handler"
	"github.com/aldermoor/villageforge/internal/narrative"
	"github.com/aldermoor/villageforge/internal/resource"
	"github.com/aldermoor/villageforge/internal/scheduler"
	"github.com/aldermoor/villageforge/internal/server"
	"github.com/aldermoor/villageforge/internal/simulation"
	"github.com/aldermoor/villageforge/internal/villageevent"
	"github.com/aldermoor/villageforge/internal/worker"
)

// Database pool sizing
const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
)

// shutdownTimeout bounds how long graceful shutdown may take before the
// process exits anyway.
const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration (reads .env when present)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging (stdout + rotating session files)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Validate environment schema, surfacing non-fatal warnings
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn("Environment warning", "detail", warning)
	}

	ctx := context.Background()

	// Apply database migrations before opening the pool
	if err := database.RunMigrations(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	store := postgres.NewVillageRepository(dbPool)

	// Event system: in-memory bus behind a retrying publisher
	eventBus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system setup failed", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.RegisterEventHandlers(eventBus); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Core services
	locks := concurrency.NewLockManager()
	resources := resource.NewService(nil)
	narrator := narrative.NewClient(cfg.NarrativeBaseURL, cfg.NarrativeAPIKey)
	events := villageevent.NewService(resources, narrator, nil, nil)
	sim := simulation.NewService(store, resources, events, locks, publisher, nil)

	// Request validation (custom location rule)
	handler.InitValidator()

	// Seed villages from config on first boot
	if err := bootstrap.SeedVillages(ctx, sim, store); err != nil {
		slog.Error("Village seeding failed", "error", err)
		os.Exit(1)
	}

	// Background simulation: worker pool + periodic tick scheduling
	pool := worker.NewPool(cfg.TickWorkers, cfg.TickQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleVillageTicks(cfg.TickInterval, sim, cfg.TickDeltaHours)

	tradeReset := worker.NewTradeResetWorker(store, locks)
	tradeReset.Start()

	// HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, sim)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		Scheduler:        sched,
		WorkerPool:       pool,
		TradeResetWorker: tradeReset,
		DeadLetter:       deadLetter,
	})
}
