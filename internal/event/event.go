package event

import (
	"context"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/logger"
)

// Type names what happened, e.g. tree.planted
type Type string

const (
	TreePlanted   Type = domain.EventTypeTreePlanted
	TreeRemoved   Type = domain.EventTypeTreeRemoved
	ImageRejected Type = domain.EventTypeImageRejected
)

// Metadata carries tracing context alongside the payload
type Metadata map[string]interface{}

const (
	MetaRequestID = "request_id"
	MetaSessionID = "session_id"
)

// Event is one fact published on the bus. Payload holds a domain payload
// struct in-process, or a decoded JSON map after a dead-letter replay; use
// the typed accessors in payloads.go to read it.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// MetaString returns the metadata value for key when it is a non-empty string
func (e Event) MetaString(key string) string {
	s, _ := e.Metadata[key].(string)
	return s
}

// WithMeta returns a copy of e with key set. The original metadata map is
// left untouched so a shared event can be stamped safely.
func (e Event) WithMeta(key string, value interface{}) Event {
	md := make(Metadata, len(e.Metadata)+1)
	for k, v := range e.Metadata {
		md[k] = v
	}
	md[key] = value
	e.Metadata = md
	return e
}

// Stamp copies the request id from ctx into the event metadata
func Stamp(ctx context.Context, e Event) Event {
	if rid := logger.GetRequestID(ctx); rid != "" {
		return e.WithMeta(MetaRequestID, rid)
	}
	return e
}

func newEvent(t Type, payload interface{}) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// NewTreePlantedEvent announces a stored tree. Photo bytes are replaced by
// the NotLoaded marker so subscribers never fan out image data.
func NewTreePlantedEvent(tree domain.Tree, sessionID string) Event {
	if tree.Image.Exists() {
		tree.Image = domain.ImageNotFetched()
	}
	e := newEvent(TreePlanted, domain.TreePlantedPayload{Tree: tree, SessionID: sessionID})
	if sessionID != "" {
		e = e.WithMeta(MetaSessionID, sessionID)
	}
	return e
}

func NewTreeRemovedEvent(treeID int64) Event {
	return newEvent(TreeRemoved, domain.TreeRemovedPayload{TreeID: treeID})
}

// NewImageRejectedEvent records which admission stage turned a photo away
func NewImageRejectedEvent(stage, reason string) Event {
	return newEvent(ImageRejected, domain.ImageRejectedPayload{Stage: stage, Reason: reason})
}
