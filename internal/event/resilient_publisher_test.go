package event

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	n := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(n) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func readDeadLetters(t *testing.T, path string) []DeadLetterEntry {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out, err := ReadDeadLetters(f)
	require.NoError(t, err)
	return out
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, t.TempDir()+"/dl.jsonl")
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	require.NoError(t, rp.Publish(context.Background(), NewTreeRemovedEvent(1)))
	assert.Equal(t, 1, bus.CallCount())
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	bus := &mockBus{shouldFail: func(n int) bool { return n == 1 }}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, t.TempDir()+"/dl.jsonl")
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewTreeRemovedEvent(2))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 5*time.Millisecond)
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	path := t.TempDir() + "/dl.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, err := NewResilientPublisher(bus, 3, 5*time.Millisecond, path)
	require.NoError(t, err)

	var failures atomic.Int32
	rp.OnPublishFailure(func(typ Type) {
		assert.Equal(t, TreeRemoved, typ)
		failures.Add(1)
	})

	rp.PublishWithRetry(context.Background(), NewTreeRemovedEvent(3))

	require.Eventually(t, func() bool { return bus.CallCount() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool {
		info, err := os.Stat(path)
		return err == nil && info.Size() > 0
	}, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries := readDeadLetters(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, TreeRemoved, entries[0].EventType)
	assert.Equal(t, int64(3), entries[0].TreeID)
	assert.Equal(t, 4, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
	assert.Equal(t, int32(4), failures.Load())
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := t.TempDir() + "/dl.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewTreeRemovedEvent(4))
	rp.PublishWithRetry(context.Background(), NewTreeRemovedEvent(5))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Len(t, readDeadLetters(t, path), 2)
}
