package sse

import "time"

// Buffer sizes
const (
	BroadcastBufferSize = 128
	ClientEventBuffer   = 64

	// HistorySize is how many sequenced events are kept for Last-Event-ID replay
	HistorySize = 32
)

// Stream settings
const (
	KeepaliveInterval = 25 * time.Second

	// RetryMillis is the reconnect delay advertised to browsers
	RetryMillis = 3000
)

// Event types
const (
	EventTypeTreePlanted = "tree.planted"
	EventTypeTreeRemoved = "tree.removed"

	// EventTypeConnected opens every stream and carries no id
	EventTypeConnected = "connected"
)

// Request inputs
const (
	QueryParamTypes       = "types"
	QueryParamLastEventID = "last_event_id"
	HeaderLastEventID     = "Last-Event-ID"
)

// Log messages
const (
	LogMsgClientConnected       = "SSE client connected"
	LogMsgClientDisconnected    = "SSE client disconnected"
	LogMsgClientLagging         = "SSE client buffer full, event skipped"
	LogMsgEventBroadcast        = "Broadcasting SSE event"
	LogMsgBroadcastDropped      = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError            = "Failed to write SSE event"
	LogMsgInvalidPayload        = "Unexpected SSE event payload"
	LogMsgSubscribed            = "SSE subscriber registered for event types"
	LogMsgStreamingNotSupported = "Response writer cannot stream"
)
