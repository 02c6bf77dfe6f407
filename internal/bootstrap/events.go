package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/osse101/GreenMap_Go/internal/config"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process bus and the resilient
// publisher in front of it. Services publish through the publisher;
// subscribers register on the bus.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	maxRetries, retryDelay, deadLetterPath := eventSettings(cfg)

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}
	reportDeadLetters(deadLetterPath)

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}
	publisher.OnPublishFailure(func(t event.Type) {
		metrics.EventHandlerErrors.WithLabelValues(string(t)).Inc()
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return bus, publisher, nil
}

func eventSettings(cfg *config.Config) (int, time.Duration, string) {
	maxRetries := cfg.EventMaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultEventMaxRetries
	}
	retryDelay := cfg.EventRetryDelay
	if retryDelay <= 0 {
		retryDelay = config.DefaultEventRetryDelay
	}
	path := cfg.EventDeadLetterPath
	if path == "" {
		path = config.DefaultEventDeadLetterPath
	}
	return maxRetries, retryDelay, path
}

// reportDeadLetters surfaces events a previous run failed to deliver so an
// operator can replay them.
func reportDeadLetters(path string) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		metrics.DeadLetterBacklog.Set(0)
		return
	}
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
		return
	}
	defer f.Close()

	entries, err := event.ReadDeadLetters(f)
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
	}
	metrics.DeadLetterBacklog.Set(float64(len(entries)))
	if len(entries) == 0 {
		return
	}

	byType := make(map[event.Type]int)
	for _, e := range entries {
		byType[e.EventType]++
	}
	slog.Warn(LogMsgDeadLetterBacklog, "path", path, "count", len(entries), "by_type", byType)
}
