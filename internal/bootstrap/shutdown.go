package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/Stockpile_Go/internal/database"
	"github.com/osse101/Stockpile_Go/internal/event"
	"github.com/osse101/Stockpile_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	ResilientPublisher *event.ResilientPublisher
	Pool               database.Pool
	Redis              io.Closer
	LogFile            io.Closer
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Event publisher (flush pending retries to subscribers or the dead-letter file)
// 3. Redis and the database
// 4. The log file
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	closeResource("redis", components.Redis)

	if components.Pool != nil {
		components.Pool.Close()
		slog.Info(LogMsgDatabaseClosed)
	}

	slog.Info(LogMsgServerStopped)

	closeResource("log_file", components.LogFile)
}

func closeResource(name string, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		slog.Error(LogMsgCloseFailed, "resource", name, "error", err)
	}
}
