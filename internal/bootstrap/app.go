// Package bootstrap wires configuration, storage, events and services into
// a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/classifier"
	"github.com/osse101/GreenMap_Go/internal/config"
	"github.com/osse101/GreenMap_Go/internal/discord"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/handler"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/internal/server"
	"github.com/osse101/GreenMap_Go/internal/sse"
	"github.com/osse101/GreenMap_Go/internal/tree"
)

// App holds every long-lived component
type App struct {
	Config     *config.Config
	Store      *Store
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	Hub        *sse.Hub
	Announcer  *discord.Announcer
	Classifier *classifier.Client
	Trees      tree.Service
	Admitter   *admission.Pipeline
	Sessions   *placement.Manager
	Server     *server.Server
}

// Options overrides collaborators, mainly for tests
type Options struct {
	DiscordExecutor discord.WebhookExecutor
}

// Build opens the store and constructs the services and HTTP server. On
// error everything opened so far is released.
func Build(ctx context.Context, cfg *config.Config, opts Options) (app *App, err error) {
	app = &App{Config: cfg}
	defer func() {
		if err != nil {
			app.release(context.Background())
			app = nil
		}
	}()

	app.Store, err = OpenStore(ctx, cfg)
	if err != nil {
		return app, err
	}

	app.Bus, app.Publisher, err = InitializeEventSystem(cfg)
	if err != nil {
		return app, fmt.Errorf("%s: %w", ErrMsgFailedInitEventSystem, err)
	}

	app.Hub = sse.NewHub()
	app.Hub.Start()

	app.Announcer, err = RegisterEventHandlers(EventHandlerDependencies{
		EventBus: app.Bus,
		Hub:      app.Hub,
		Config:   cfg,
		Executor: opts.DiscordExecutor,
	})
	if err != nil {
		return app, err
	}

	var cls classifier.Classifier
	if cfg.ClassifierURL != "" {
		app.Classifier = classifier.NewClient(cfg.ClassifierURL, cfg.ClassifierModel, cfg.ClassifierTimeout)
		app.Classifier.Preload(context.WithoutCancel(ctx))
		cls = app.Classifier
		slog.Info(LogMsgClassifierConfigured, "url", cfg.ClassifierURL, "model", cfg.ClassifierModel, "fail_closed", cfg.ClassifierFailClosed)
	} else {
		slog.Warn(LogMsgClassifierDisabled, "fail_closed", cfg.ClassifierFailClosed)
	}
	app.Admitter = admission.NewPipeline(AdmissionConfig(cfg), cls, app.Publisher)

	app.Trees = tree.NewService(app.Store.Trees, app.Publisher, geometry.DefaultRegion(), tree.Config{
		CacheSize: cfg.TreeCacheSize,
		CacheTTL:  cfg.TreeCacheTTL,
	})
	app.Sessions = placement.NewManager(app.Trees, app.Admitter, placement.ManagerConfig{
		Capacity:     cfg.SessionCapacity,
		TTL:          cfg.SessionTTL,
		RequireImage: cfg.RequireImage,
	})
	slog.Info(LogMsgServicesInitialized, "require_image", cfg.RequireImage, "session_capacity", cfg.SessionCapacity)

	deps := server.Deps{
		Store:          app.Store.Trees,
		StoreDriver:    app.Store.Driver,
		Trees:          app.Trees,
		Admitter:       app.Admitter,
		Sessions:       app.Sessions,
		Hub:            app.Hub,
		Canvas:         handler.Canvas{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight},
		TrustedProxies: cfg.TrustedProxies,
	}
	if app.Classifier != nil {
		deps.Classifier = app.Classifier
	}
	app.Server = server.NewServer(cfg.Port, deps)

	return app, nil
}

// AdmissionConfig maps the image settings onto the pipeline thresholds
func AdmissionConfig(cfg *config.Config) admission.Config {
	c := admission.DefaultConfig()
	c.MinBytes = cfg.ImageMinBytes
	c.MaxBytes = cfg.ImageMaxBytes
	c.TargetBytes = cfg.ImageTargetBytes
	c.MinDimension = cfg.ImageMinDimension
	c.MaxDimension = cfg.ImageMaxDimension
	c.MaxPixels = cfg.ImageMaxPixels
	c.UnsafeThreshold = cfg.UnsafeThreshold
	c.FailClosed = cfg.ClassifierFailClosed
	return c
}
