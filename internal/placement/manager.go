package placement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/tree"
)

// ManagerConfig bounds how many sessions are held and for how long. Each
// access renews a session's TTL.
type ManagerConfig struct {
	Capacity     int
	TTL          time.Duration
	RequireImage bool
	Now          func() time.Time
}

// Manager creates and looks up sessions. Idle sessions expire after the TTL
// and the least recently used is evicted at capacity.
type Manager struct {
	trees    tree.Service
	admitter admission.Admitter
	opts     Options
	sessions *expirable.LRU[string, *Session]
}

// NewManager returns an empty Manager.
func NewManager(trees tree.Service, admitter admission.Admitter, cfg ManagerConfig) *Manager {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	onEvict := func(string, *Session) {
		metrics.ActiveSessions.Dec()
	}
	return &Manager{
		trees:    trees,
		admitter: admitter,
		opts:     Options{RequireImage: cfg.RequireImage, Now: cfg.Now},
		sessions: expirable.NewLRU[string, *Session](cfg.Capacity, onEvict, cfg.TTL),
	}
}

// Create starts a new idle session.
func (m *Manager) Create(ctx context.Context) *Session {
	s := NewSession(uuid.NewString(), m.trees, m.admitter, m.opts)
	m.sessions.Add(s.ID(), s)
	metrics.ActiveSessions.Set(float64(m.sessions.Len()))
	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", s.ID())
	return s
}

// Get returns a live session and renews its TTL.
func (m *Manager) Get(id string) (*Session, error) {
	s, ok := m.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	m.sessions.Add(id, s)
	metrics.ActiveSessions.Set(float64(m.sessions.Len()))
	return s, nil
}

// Remove drops a session. It reports whether the session existed.
func (m *Manager) Remove(ctx context.Context, id string) bool {
	ok := m.sessions.Remove(id)
	if ok {
		logger.FromContext(ctx).Info(LogMsgSessionEvicted, "session_id", id)
	}
	return ok
}

// Len is the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
