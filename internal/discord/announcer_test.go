package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/testing/leaktest"
)

type recordingExecutor struct {
	mu    sync.Mutex
	calls []*discordgo.WebhookParams
	ids   []string
	err   error
}

func (r *recordingExecutor) WebhookExecute(webhookID, token string, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, webhookID+"/"+token)
	r.calls = append(r.calls, data)
	return &discordgo.Message{}, r.err
}

func (r *recordingExecutor) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestAnnouncer_PostsPlantedTrees(t *testing.T) {
	exec := &recordingExecutor{}
	a := NewAnnouncer(Config{WebhookID: "123", WebhookToken: "tok"}, exec)
	bus := event.NewMemoryBus()
	a.Subscribe(bus)

	tree := domain.Tree{ID: 8, X: 412.5, Y: 300, Name: "Cedar", Color: "#16a34a", Image: domain.ImageNotFetched()}
	require.NoError(t, bus.Publish(context.Background(), event.NewTreePlantedEvent(tree, "sess")))
	require.NoError(t, bus.Publish(context.Background(), event.NewTreeRemovedEvent(8)))

	require.NoError(t, a.Shutdown(context.Background()))
	require.Equal(t, 1, exec.count())
	assert.Equal(t, "123/tok", exec.ids[0])

	embed := exec.calls[0].Embeds[0]
	assert.Equal(t, "🌳 Cedar was planted", embed.Title)
	assert.Equal(t, 0x16a34a, embed.Color)
	assert.Equal(t, "412.50, 300.00", embed.Fields[0].Value)
	assert.Equal(t, EmbedPhotoYes, embed.Fields[1].Value)
	assert.Equal(t, "Tree #8", embed.Footer.Text)
	assert.Empty(t, exec.calls[0].AllowedMentions.Parse)
}

func TestAnnouncer_FailureDoesNotStopWorker(t *testing.T) {
	exec := &recordingExecutor{err: errors.New("rate limited")}
	ctx := context.Background()

	leaktest.CheckNoGoroutineLeak(t, func() {
		a := NewAnnouncer(Config{WebhookID: "1", WebhookToken: "t"}, exec)
		for i := int64(1); i <= 3; i++ {
			require.NoError(t, a.handleTreePlanted(ctx, event.NewTreePlantedEvent(domain.Tree{ID: i, Name: "x"}, "")))
		}
		require.NoError(t, a.Shutdown(ctx))
	})
	assert.Equal(t, 3, exec.count())
}

func TestAnnouncer_AfterShutdownIgnored(t *testing.T) {
	exec := &recordingExecutor{}
	a := NewAnnouncer(Config{WebhookID: "1", WebhookToken: "t"}, exec)
	ctx := context.Background()
	require.NoError(t, a.Shutdown(ctx))
	require.NoError(t, a.Shutdown(ctx))

	assert.NoError(t, a.handleTreePlanted(ctx, event.NewTreePlantedEvent(domain.Tree{ID: 1}, "")))
	assert.Zero(t, exec.count())
}

func TestAnnouncer_ShutdownHonoursContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	exec := &blockingExecutor{release: block}
	a := NewAnnouncer(Config{WebhookID: "1", WebhookToken: "t"}, exec)
	ctx := context.Background()
	require.NoError(t, a.handleTreePlanted(ctx, event.NewTreePlantedEvent(domain.Tree{ID: 1}, "")))

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.Shutdown(short), context.DeadlineExceeded)
}

type blockingExecutor struct {
	release chan struct{}
}

func (b *blockingExecutor) WebhookExecute(string, string, bool, *discordgo.WebhookParams, ...discordgo.RequestOption) (*discordgo.Message, error) {
	<-b.release
	return nil, nil
}

func TestBuildTreeMessage_DefaultsColorAndNoPhoto(t *testing.T) {
	msg := BuildTreeMessage(domain.Tree{ID: 2, Name: "Elm", Image: domain.NoImage()})
	embed := msg.Embeds[0]
	assert.Equal(t, 0x16a34a, embed.Color)
	assert.Equal(t, EmbedPhotoNo, embed.Fields[1].Value)
	assert.Equal(t, AnnouncerUsername, msg.Username)
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{WebhookID: "1"}.Enabled())
	assert.True(t, Config{WebhookID: "1", WebhookToken: "t"}.Enabled())
}
