// Package sse streams live map changes to connected browsers.
package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// Event is one message on the stream. ID is a decimal sequence number that
// browsers echo back as Last-Event-ID when they reconnect.
type Event struct {
	ID        string      `json:"id,omitempty"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected map viewer
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// offer never blocks: a viewer that stops reading misses events
func (c *Client) offer(ev Event) bool {
	select {
	case c.EventChannel <- ev:
		return true
	default:
		return false
	}
}

type registration struct {
	client *Client
	since  uint64
	replay bool
}

// Hub fans tree events out to viewers and keeps a short history for replay.
// All client bookkeeping happens on the run goroutine.
type Hub struct {
	broadcast  chan Event
	register   chan registration
	unregister chan string
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	clients map[string]*Client
	history []Event
	seq     uint64

	connected atomic.Int64
}

// NewHub creates a hub. Call Start before registering clients.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan registration),
		unregister: make(chan string),
		shutdown:   make(chan struct{}),
		clients:    make(map[string]*Client),
		history:    make([]Event, 0, HistorySize),
	}
}

// Start launches the run goroutine
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop closes every client channel and waits for the run goroutine. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case reg := <-h.register:
			h.clients[reg.client.ID] = reg.client
			if reg.replay {
				h.replay(reg.client, reg.since)
			}
			h.setConnected()

		case id := <-h.unregister:
			if c, ok := h.clients[id]; ok {
				close(c.EventChannel)
				delete(h.clients, id)
			}
			h.setConnected()

		case ev := <-h.broadcast:
			h.seq++
			ev.ID = strconv.FormatUint(h.seq, 10)
			h.remember(ev)
			for _, c := range h.clients {
				if c.wants(ev.Type) && !c.offer(ev) {
					slog.Debug(LogMsgClientLagging, "client_id", c.ID, "event_id", ev.ID)
				}
			}

		case <-h.shutdown:
			for id, c := range h.clients {
				close(c.EventChannel)
				delete(h.clients, id)
			}
			h.setConnected()
			return
		}
	}
}

func (h *Hub) remember(ev Event) {
	if len(h.history) == HistorySize {
		copy(h.history, h.history[1:])
		h.history = h.history[:HistorySize-1]
	}
	h.history = append(h.history, ev)
}

// replay resends history newer than since. A since ahead of the current
// sequence comes from before a restart, so the whole history is sent.
func (h *Hub) replay(c *Client, since uint64) {
	if since > h.seq {
		since = 0
	}
	for _, ev := range h.history {
		seq, _ := strconv.ParseUint(ev.ID, 10, 64)
		if seq <= since || !c.wants(ev.Type) {
			continue
		}
		if !c.offer(ev) {
			return
		}
	}
}

func (h *Hub) setConnected() {
	h.connected.Store(int64(len(h.clients)))
	metrics.SSEClients.Set(float64(len(h.clients)))
}

// Register adds a client receiving the given event types (all when empty).
// After Stop the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string) *Client {
	return h.register0(eventTypes, registration{})
}

// RegisterSince is Register for a reconnecting browser. Events after
// lastEventID still held in history are queued before live ones.
func (h *Hub) RegisterSince(eventTypes []string, lastEventID string) *Client {
	since, err := strconv.ParseUint(lastEventID, 10, 64)
	if err != nil {
		return h.Register(eventTypes)
	}
	return h.register0(eventTypes, registration{since: since, replay: true})
}

func (h *Hub) register0(eventTypes []string, reg registration) *Client {
	reg.client = &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		reg.client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			reg.client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- reg:
	case <-h.shutdown:
		close(reg.client.EventChannel)
	}
	return reg.client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	ev := Event{Type: eventType, Timestamp: time.Now().Unix(), Payload: payload}
	select {
	case h.broadcast <- ev:
	default:
		slog.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

// FormatSSEMessage encodes an event in text/event-stream framing. The id line
// is omitted for unsequenced events so the browser keeps its last id.
func FormatSSEMessage(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if ev.ID != "" {
		buf.WriteString("id: " + ev.ID + "\n")
	}
	buf.WriteString("event: " + ev.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
