// Package placement runs the drag, drop, form and submit flow for placing a
// tree, one Session per map view.
package placement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/render"
	"github.com/osse101/GreenMap_Go/internal/tree"
	"github.com/osse101/GreenMap_Go/internal/viewport"
)

// Form is what the user has entered for the pending placement.
type Form struct {
	Name       string               `json:"name"`
	Color      string               `json:"color"`
	Image      *domain.ImagePayload `json:"image,omitempty"`
	ImageError string               `json:"image_error,omitempty"`
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	ID           string                   `json:"id"`
	State        State                    `json:"state"`
	Pending      *domain.PendingPlacement `json:"pending,omitempty"`
	Form         Form                     `json:"form"`
	ImagePreview string                   `json:"image_preview,omitempty"`
	Admitting    bool                     `json:"admitting"`
	Viewport     domain.Viewport          `json:"viewport"`
	HoveredID    *int64                   `json:"hovered_id,omitempty"`
}

// Options are the per-session knobs shared by every session of a Manager.
type Options struct {
	RequireImage bool
	Now          func() time.Time
}

// Session holds one user's placement state and map view. State transitions
// are serialized by mu; admission and persistence run without it.
type Session struct {
	id       string
	trees    tree.Service
	admitter admission.Admitter
	boundary geometry.Boundary
	opts     Options
	view     *viewport.Controller

	mu         sync.Mutex
	state      State
	pending    *domain.PendingPlacement
	form       Form
	generation uint64
	admitting  bool
	hovered    *int64
}

// NewSession returns an idle session at the initial viewport.
func NewSession(id string, trees tree.Service, admitter admission.Admitter, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		id:       id,
		trees:    trees,
		admitter: admitter,
		boundary: trees.Boundary(),
		opts:     opts,
		view:     viewport.NewController(),
		state:    StateIdle,
	}
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot copies the session for display.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:        s.id,
		State:     s.state,
		Form:      s.form,
		Admitting: s.admitting,
		Viewport:  s.view.Snapshot(),
	}
	if s.form.Image != nil {
		snap.ImagePreview = s.form.Image.DataURL()
	}
	if s.pending != nil {
		p := *s.pending
		snap.Pending = &p
	}
	if s.hovered != nil {
		h := *s.hovered
		snap.HoveredID = &h
	}
	return snap
}

// BeginDrag starts dragging the tree affordance. Dragging again while a drag
// is active is a no-op.
func (s *Session) BeginDrag(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		s.state = StateDragActive
		logger.FromContext(ctx).Debug(LogMsgDragStarted, "session_id", s.id)
		return nil
	case StateDragActive:
		return nil
	default:
		return s.transitionError("begin drag")
	}
}

// Drop ends a drag at a screen point. A drop inside the region opens the
// form and returns true; a drop outside returns to idle without an error.
func (s *Session) Drop(ctx context.Context, screen domain.Point, scale geometry.CanvasScale) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDragActive {
		return false, s.transitionError("drop")
	}
	s.state = StatePendingDrop

	world := geometry.WorldFromScreen(screen, s.view.Snapshot(), scale)
	log := logger.FromContext(ctx)
	if !s.boundary.Contains(world) {
		s.state = StateIdle
		metrics.Placements.WithLabelValues(metrics.OutcomeOutOfBounds).Inc()
		log.Debug(LogMsgDropOutOfBounds, "session_id", s.id, "x", world.X, "y", world.Y)
		return false, nil
	}

	s.generation++
	s.pending = &domain.PendingPlacement{
		DropPoint:     world,
		ProvisionalID: s.opts.Now().UnixMilli(),
	}
	s.form = Form{Color: domain.DefaultTreeColor}
	s.state = StateFormOpen
	metrics.Placements.WithLabelValues(metrics.OutcomeAccepted).Inc()
	log.Info(LogMsgFormOpened, "session_id", s.id, "provisional_id", s.pending.ProvisionalID,
		"x", world.X, "y", world.Y)
	return true, nil
}

// UpdateForm sets the name and color. An empty color keeps the current one.
func (s *Session) UpdateForm(name, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFormOpen {
		return s.transitionError("edit form")
	}
	s.form.Name = name
	if color != "" {
		s.form.Color = color
	}
	return nil
}

// AttachImage runs the admission pipeline for the pending placement. The
// result is dropped with ErrPlacementCancelled if the placement was cancelled
// or replaced while the pipeline ran. A rejection clears the form image.
func (s *Session) AttachImage(ctx context.Context, up admission.Upload) (*admission.Result, error) {
	s.mu.Lock()
	if s.state != StateFormOpen {
		err := s.transitionError("attach photo")
		s.mu.Unlock()
		return nil, err
	}
	if s.admitting {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTransition, errMsgAdmissionInFlight)
	}
	gen := s.generation
	s.admitting = true
	s.mu.Unlock()

	res, err := s.admitter.Admit(ctx, up)

	s.mu.Lock()
	defer s.mu.Unlock()
	log := logger.FromContext(ctx)
	if gen != s.generation {
		log.Info(LogMsgStaleAdmission, "session_id", s.id)
		return nil, domain.ErrPlacementCancelled
	}
	s.admitting = false

	if err != nil {
		s.form.Image = nil
		if rej, ok := admission.AsRejection(err); ok {
			s.form.ImageError = rej.Reason
			log.Info(LogMsgImageRejected, "session_id", s.id, "stage", rej.Stage)
		}
		return nil, err
	}

	payload := res.Payload
	s.form.Image = &payload
	s.form.ImageError = ""
	log.Info(LogMsgImageAttached, "session_id", s.id, "bytes", payload.Size(),
		"width", payload.Width, "height", payload.Height)
	return res, nil
}

// Submit persists the pending placement. A blank name or a missing required
// photo blocks without calling the store. A store failure reopens the form
// with its input intact.
func (s *Session) Submit(ctx context.Context) (*domain.Tree, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	if s.state != StateFormOpen {
		err := s.transitionError("submit")
		s.mu.Unlock()
		return nil, err
	}
	if err := s.blocked(); err != nil {
		s.mu.Unlock()
		metrics.Placements.WithLabelValues(metrics.OutcomeBlocked).Inc()
		log.Info(LogMsgSubmitBlocked, "session_id", s.id, "reason", err.Error())
		return nil, err
	}
	req := tree.CreateRequest{
		X:         s.pending.DropPoint.X,
		Y:         s.pending.DropPoint.Y,
		Name:      s.form.Name,
		Color:     s.form.Color,
		Image:     s.form.Image,
		SessionID: s.id,
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	created, err := s.trees.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFormOpen
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrOutOfBounds) {
			metrics.Placements.WithLabelValues(metrics.OutcomeBlocked).Inc()
			return nil, err
		}
		metrics.Placements.WithLabelValues(metrics.OutcomePersistError).Inc()
		log.Warn(LogMsgPersistFailed, "session_id", s.id, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}

	s.reset()
	metrics.Placements.WithLabelValues(metrics.OutcomePersisted).Inc()
	log.Info(LogMsgPlacementSaved, "session_id", s.id, "tree_id", created.ID)
	return created, nil
}

// Cancel abandons a drag or an open form. Cancelling while idle is a no-op;
// a submission in flight cannot be cancelled.
func (s *Session) Cancel(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return nil
	case StateSubmitting:
		return s.transitionError("cancel")
	}
	hadForm := s.state == StateFormOpen
	s.reset()
	if hadForm {
		metrics.Placements.WithLabelValues(metrics.OutcomeCancelled).Inc()
		logger.FromContext(ctx).Info(LogMsgPlacementCancelled, "session_id", s.id)
	}
	return nil
}

// Gesture feeds one viewport event to the session's controller.
func (s *Session) Gesture(ev viewport.Event) domain.Viewport {
	return s.view.Handle(ev)
}

// Gestures feeds events in order and returns the final viewport.
func (s *Session) Gestures(events []viewport.Event) domain.Viewport {
	return s.view.HandleAll(events)
}

// Hover hit-tests a screen point against the current trees and records the
// result as the hovered tree.
func (s *Session) Hover(ctx context.Context, screen domain.Point, scale geometry.CanvasScale) (*int64, error) {
	trees, err := s.trees.List(ctx)
	if err != nil {
		return nil, err
	}
	vp := s.view.Snapshot()
	world := geometry.WorldFromScreen(screen, vp, scale)

	var hovered *int64
	if id, ok := geometry.HitTest(trees, world, vp.Zoom); ok {
		hovered = &id
	}

	s.mu.Lock()
	s.hovered = hovered
	s.mu.Unlock()
	return hovered, nil
}

// Scene assembles everything needed to draw the session's current frame.
func (s *Session) Scene(ctx context.Context) (render.Scene, error) {
	trees, err := s.trees.List(ctx)
	if err != nil {
		return render.Scene{}, err
	}
	snap := s.Snapshot()
	return render.Scene{
		Boundary:  s.boundary,
		Trees:     trees,
		Viewport:  snap.Viewport,
		HoveredID: snap.HoveredID,
	}, nil
}

// RenderPNG draws the session's frame at width by height.
func (s *Session) RenderPNG(ctx context.Context, width, height int) ([]byte, error) {
	scene, err := s.Scene(ctx)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := render.PNG(scene, width, height)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	return out, err
}

func (s *Session) blocked() error {
	if tree.NormalizeName(s.form.Name) == "" {
		return domain.ErrNameRequired
	}
	if s.admitting {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTransition, errMsgAdmissionInFlight)
	}
	if s.opts.RequireImage && s.form.Image == nil {
		return domain.ErrImageRequired
	}
	return nil
}

// reset must be called with mu held.
func (s *Session) reset() {
	s.generation++
	s.state = StateIdle
	s.pending = nil
	s.form = Form{}
	s.admitting = false
}

func (s *Session) transitionError(action string) error {
	return fmt.Errorf(errFmtTransition, domain.ErrInvalidTransition, action, s.state)
}
