package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sharonsgarden/garden-api/internal/bootstrap"
	"github.com/sharonsgarden/garden-api/internal/config"
	"github.com/sharonsgarden/garden-api/internal/database"
	"github.com/sharonsgarden/garden-api/internal/dayclock"
	"github.com/sharonsgarden/garden-api/internal/growth"
	"github.com/sharonsgarden/garden-api/internal/handler"
	"github.com/sharonsgarden/garden-api/internal/ledger"
	"github.com/sharonsgarden/garden-api/internal/reward"
	"github.com/sharonsgarden/garden-api/internal/scheduler"
	"github.com/sharonsgarden/garden-api/internal/server"
	"github.com/sharonsgarden/garden-api/internal/slot"
	"github.com/sharonsgarden/garden-api/internal/worker"
)

const (
	shutdownTimeout = 30 * time.Second

	retentionWorkerCount = 1
	retentionQueueSize   = 4
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()
	if err := database.MigrateUp(connString); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, database.DefaultMaxConns, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}
	bootstrap.RegisterEventHandlers(eventBus)

	repos := bootstrap.InitializeRepositories(dbPool)
	clock := dayclock.SystemClock{}

	statusCache := ledger.NewStatusCache(cfg.StatusCacheSize, cfg.StatusCacheTTL)
	ledgerService := ledger.NewService(repos.Ledger, statusCache, clock)
	rewardService := reward.NewService(repos.Reward, repos.Badge, repos.Seed, repos.Ledger, publisher, clock, nil)
	slotService := slot.NewService(repos.Seed, repos.User)
	growthService := growth.NewService(repos.Seed, repos.User, ledgerService, rewardService, slotService, publisher, clock)

	// Retention sweep runs on the worker pool at the configured interval
	pool := worker.NewPool(retentionWorkerCount, retentionQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.RetentionSweepInterval, worker.NewRetentionWorker(ledgerService, publisher, clock, cfg.RetentionDays))

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool, growthService, ledgerService, rewardService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})
}
