// Package discord posts new trees to a Discord channel through a webhook.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
)

// WebhookExecutor is the part of *discordgo.Session the announcer needs.
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the webhook credentials
type Config struct {
	WebhookID    string
	WebhookToken string
}

// Enabled reports whether both credentials are set
func (c Config) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// Announcer turns tree.planted events into webhook messages. Sends happen on
// a background worker so the bus never waits on Discord.
type Announcer struct {
	cfg    Config
	client WebhookExecutor
	queue  chan domain.Tree
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewSession creates a discordgo session for webhook calls. Webhooks carry
// their own token, so the session needs no bot token.
func NewSession() (*discordgo.Session, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return s, nil
}

// NewAnnouncer creates an announcer and starts its worker
func NewAnnouncer(cfg Config, client WebhookExecutor) *Announcer {
	a := &Announcer{
		cfg:    cfg,
		client: client,
		queue:  make(chan domain.Tree, AnnounceQueueSize),
	}
	a.wg.Add(1)
	go a.worker()
	slog.Info(LogMsgAnnouncerStarted, "webhook_id", cfg.WebhookID)
	return a
}

// Subscribe registers the announcer on the bus
func (a *Announcer) Subscribe(bus event.Bus) {
	bus.Subscribe(event.TreePlanted, a.handleTreePlanted)
}

func (a *Announcer) handleTreePlanted(_ context.Context, evt event.Event) error {
	payload, err := event.TreePlantedPayload(evt)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "error", err)
		return nil
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return nil
	}
	select {
	case a.queue <- payload.Tree:
		slog.Debug(LogMsgAnnounceQueued, "tree_id", payload.Tree.ID)
	default:
		slog.Warn(LogMsgAnnounceDropped, "tree_id", payload.Tree.ID)
	}
	return nil
}

func (a *Announcer) worker() {
	defer a.wg.Done()
	for t := range a.queue {
		_, err := a.client.WebhookExecute(a.cfg.WebhookID, a.cfg.WebhookToken, false, BuildTreeMessage(t))
		if err != nil {
			slog.Error(LogMsgAnnounceFailed, "tree_id", t.ID, "error", err)
			continue
		}
		slog.Debug(LogMsgAnnounceSent, "tree_id", t.ID)
	}
}

// Shutdown drains queued announcements or gives up when ctx ends
func (a *Announcer) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BuildTreeMessage builds the webhook body announcing t
func BuildTreeMessage(t domain.Tree) *discordgo.WebhookParams {
	photo := EmbedPhotoNo
	if t.Image.Exists() {
		photo = EmbedPhotoYes
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(EmbedTitleFormat, t.Name),
		Description: EmbedDescription,
		Color:       embedColor(t.Color),
		Timestamp:   t.Timestamp,
		Fields: []*discordgo.MessageEmbedField{
			{Name: EmbedFieldLocation, Value: fmt.Sprintf(EmbedFieldLocFormat, t.X, t.Y), Inline: true},
			{Name: EmbedFieldPhoto, Value: photo, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf(EmbedFooterFormat, t.ID)},
	}

	return &discordgo.WebhookParams{
		Username: AnnouncerUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{},
		},
	}
}

func embedColor(hex string) int {
	if hex == "" {
		hex = domain.DefaultTreeColor
	}
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}
