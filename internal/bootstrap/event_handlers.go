package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/GreenMap_Go/internal/config"
	"github.com/osse101/GreenMap_Go/internal/discord"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Config   *config.Config

	// Executor overrides the discord session, mainly for tests
	Executor discord.WebhookExecutor
}

// RegisterEventHandlers sets up every bus subscriber:
// - Metrics collector
// - SSE bridge to connected browsers
// - Discord announcer, when a webhook is configured
//
// The announcer is returned so shutdown can drain it; it is nil when disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*discord.Announcer, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	slog.Info(LogMsgSSESubscriberRegistered)

	discordCfg := discord.Config{
		WebhookID:    deps.Config.DiscordWebhookID,
		WebhookToken: deps.Config.DiscordWebhookToken,
	}
	if !discordCfg.Enabled() {
		slog.Info(LogMsgAnnouncerDisabled)
		return nil, nil
	}

	executor := deps.Executor
	if executor == nil {
		session, err := discord.NewSession()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitDiscord, err)
		}
		executor = session
	}
	announcer := discord.NewAnnouncer(discordCfg, executor)
	announcer.Subscribe(deps.EventBus)
	slog.Info(LogMsgAnnouncerRegistered, "webhook_id", discordCfg.WebhookID)

	return announcer, nil
}
