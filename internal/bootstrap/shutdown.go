package bootstrap

import (
	"context"
	"log/slog"

	"github.com/aldermoor/villageforge/internal/event"
	"github.com/aldermoor/villageforge/internal/scheduler"
	"github.com/aldermoor/villageforge/internal/server"
	"github.com/aldermoor/villageforge/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server           *server.Server
	Scheduler        *scheduler.Scheduler
	WorkerPool       *worker.Pool
	TradeResetWorker *worker.TradeResetWorker
	DeadLetter       *event.DeadLetterWriter
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop queueing new tick jobs)
// 3. Worker pool (drain in-flight tick jobs)
// 4. Trade reset worker (cancel pending timers)
// 5. Dead-letter writer (flush and close the file)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)

	// Stop the scheduler before the pool so no new jobs arrive while draining
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.TradeResetWorker != nil {
		if err := components.TradeResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgTradeResetShutdownFailed, "error", err)
		}
	}

	// Close the dead-letter writer last so late retries can still land
	slog.Info(LogMsgShuttingDownDeadLetter)
	if components.DeadLetter != nil {
		if err := components.DeadLetter.Close(); err != nil {
			slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
