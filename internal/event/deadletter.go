package event

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DeadLetterEntry is one JSON line in the dead-letter log
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	FailedAt      time.Time `json:"failed_at"`
	EventType     Type      `json:"event_type"`
	TreeID        int64     `json:"tree_id,omitempty"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
	Event         Event     `json:"event"`
}

// DeadLetterWriter appends events that could not be delivered after retries
type DeadLetterWriter struct {
	mu  sync.Mutex
	out io.WriteCloser
	now func() time.Time
}

// NewDeadLetterWriter opens (or creates) the log at path in append mode
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead-letter log %s: %w", path, err)
	}
	return &DeadLetterWriter{out: f, now: time.Now}, nil
}

// Write records one undeliverable event
func (w *DeadLetterWriter) Write(e Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		EventType:     e.Type,
		TreeID:        subjectTreeID(e),
		Attempts:      attempts,
		Event:         e,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	entry.FailedAt = w.now().UTC()

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = w.out.Write(append(line, '\n'))
	return err
}

// Close closes the underlying file
func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Close()
}

// ReadDeadLetters parses a dead-letter log. Blank lines are skipped.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLineBytes)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return entries, fmt.Errorf("dead-letter line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

func subjectTreeID(e Event) int64 {
	switch e.Type {
	case TreePlanted:
		if p, err := TreePlantedPayload(e); err == nil {
			return p.Tree.ID
		}
	case TreeRemoved:
		if p, err := TreeRemovedPayload(e); err == nil {
			return p.TreeID
		}
	}
	return 0
}
