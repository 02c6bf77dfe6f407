package classifier

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// ModelLoader runs a load function at most once successfully. Concurrent
// callers share the in-flight attempt; a failed attempt lets the next
// caller try again.
type ModelLoader struct {
	load   func(ctx context.Context) error
	group  singleflight.Group
	loaded atomic.Bool
}

// NewModelLoader wraps load.
func NewModelLoader(load func(ctx context.Context) error) *ModelLoader {
	return &ModelLoader{load: load}
}

// Loaded reports whether a load has succeeded.
func (l *ModelLoader) Loaded() bool { return l.loaded.Load() }

// EnsureLoaded blocks until the model is loaded or the shared attempt fails.
func (l *ModelLoader) EnsureLoaded(ctx context.Context) error {
	if l.loaded.Load() {
		return nil
	}

	ch := l.group.DoChan(singleflightKey, func() (interface{}, error) {
		if l.loaded.Load() {
			return nil, nil
		}
		// Detached so one caller giving up does not fail the shared load
		if err := l.load(context.WithoutCancel(ctx)); err != nil {
			metrics.ClassifierLoads.WithLabelValues(metrics.ResultFailure).Inc()
			logger.FromContext(ctx).Warn(LogMsgModelLoadFailed, "error", err)
			return nil, err
		}
		l.loaded.Store(true)
		metrics.ClassifierLoads.WithLabelValues(metrics.ResultSuccess).Inc()
		logger.FromContext(ctx).Info(LogMsgModelLoaded)
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}
