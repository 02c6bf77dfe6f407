package bootstrap

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Shutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Event publisher (flush pending retries into the bus)
// 3. Announcer and SSE hub in parallel (drain what the flush delivered)
// 4. Tree store
//
// Errors are logged and do not stop the sequence.
func (a *App) Shutdown(ctx context.Context) {
	slog.Info(LogMsgShuttingDownServer)
	if a.Server != nil {
		if err := a.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	a.release(ctx)
	slog.Info(LogMsgServerStopped)
}

// release tears down everything except the HTTP server
func (a *App) release(ctx context.Context) {
	if a.Publisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := a.Publisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	var g errgroup.Group
	if a.Announcer != nil {
		g.Go(func() error {
			if err := a.Announcer.Shutdown(ctx); err != nil {
				slog.Error(LogMsgComponentShutdownFailed, "component", ComponentAnnouncer, "error", err)
			}
			return nil
		})
	}
	if a.Hub != nil {
		g.Go(func() error {
			a.Hub.Stop()
			return nil
		})
	}
	_ = g.Wait()

	if a.Store != nil {
		a.Store.Close()
	}
}
