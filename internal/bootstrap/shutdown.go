package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sharonsgarden/garden-api/internal/event"
	"github.com/sharonsgarden/garden-api/internal/scheduler"
	"github.com/sharonsgarden/garden-api/internal/server"
	"github.com/sharonsgarden/garden-api/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	DBPool             *pgxpool.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// Order matters:
//  1. HTTP server (stop accepting new requests)
//  2. Scheduler, then worker pool (finish in-flight sweeps)
//  3. Event publisher (flush pending events)
//  4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgPublisherShutdownFailed, "error", err)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
