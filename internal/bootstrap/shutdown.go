package bootstrap

import (
	"context"
	"log/slog"

	"github.com/rethesda/soulsy/internal/server"
	"github.com/rethesda/soulsy/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	// Stream closes open SSE connections
	Stream *sse.Hub
	// Jobs stops the scheduler and worker pool
	Jobs *Jobs
}

// GracefulShutdown stops components in order:
// 1. SSE streams (long-lived requests would otherwise hold the server open)
// 2. HTTP server (stop accepting requests, finish in-flight ones)
// 3. Background jobs
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Stream != nil {
		components.Stream.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Jobs != nil {
		slog.Info(LogMsgStoppingJobs)
		components.Jobs.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
