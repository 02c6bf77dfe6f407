package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/internal/viewport"
)

// SessionHandler handles placement session endpoints
type SessionHandler struct {
	manager *placement.Manager
	canvas  Canvas
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(manager *placement.Manager, canvas Canvas) *SessionHandler {
	return &SessionHandler{manager: manager, canvas: canvas}
}

// ScreenPointRequest is a point in screen pixels plus the display scale of
// the canvas it was measured on. A zero scale means unscaled.
type ScreenPointRequest struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	ScaleX float64 `json:"scale_x" validate:"gte=0"`
	ScaleY float64 `json:"scale_y" validate:"gte=0"`
}

func (p ScreenPointRequest) point() domain.Point { return domain.Point{X: p.X, Y: p.Y} }

func (p ScreenPointRequest) scale() geometry.CanvasScale {
	return geometry.CanvasScale{X: p.ScaleX, Y: p.ScaleY}
}

// GestureRequest is a batch of viewport events applied in order
type GestureRequest struct {
	Events []viewport.RawEvent `json:"events" validate:"required,min=1,max=100,dive"`
}

// FormRequest updates the placement form
type FormRequest struct {
	Name  string `json:"name" validate:"max=255"`
	Color string `json:"color,omitempty" validate:"omitempty,treecolor"`
}

// DropResponse reports whether the drop opened the form
type DropResponse struct {
	Accepted bool               `json:"accepted"`
	Message  string             `json:"message,omitempty"`
	Session  placement.Snapshot `json:"session"`
}

// ViewportResponse is the viewport after a gesture batch
type ViewportResponse struct {
	Viewport domain.Viewport `json:"viewport"`
}

// HoverResponse names the tree under the pointer, if any
type HoverResponse struct {
	HoveredID *int64 `json:"hovered_id"`
}

// AttachImageResponse is the admitted photo plus the updated session
type AttachImageResponse struct {
	Image   AdmitResponse      `json:"image"`
	Session placement.Snapshot `json:"session"`
}

// SubmitResponse is the stored tree plus the reset session
type SubmitResponse struct {
	Tree    *domain.Tree       `json:"tree"`
	Session placement.Snapshot `json:"session"`
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*placement.Session, bool) {
	s, err := h.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return nil, false
	}
	return s, true
}

// HandleCreate starts a placement session
// @Summary New placement session
// @Tags sessions
// @Produce json
// @Success 201 {object} placement.Snapshot
// @Router /api/v1/sessions [post]
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create(r.Context())
	respondJSON(w, http.StatusCreated, s.Snapshot())
}

// HandleGet returns the session snapshot
// @Summary Get placement session
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} placement.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, s.Snapshot())
}

// HandleGestures applies pointer, wheel and touch events to the viewport
// @Summary Apply gestures
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param request body GestureRequest true "events"
// @Success 200 {object} ViewportResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/sessions/{id}/gestures [post]
func (h *SessionHandler) HandleGestures(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req GestureRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Gestures"); err != nil {
		return
	}

	events := make([]viewport.Event, 0, len(req.Events))
	for _, raw := range req.Events {
		ev, err := raw.Decode()
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		events = append(events, ev)
	}
	respondJSON(w, http.StatusOK, ViewportResponse{Viewport: s.Gestures(events)})
}

// HandleHover hit-tests a screen point
// @Summary Hover
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param request body ScreenPointRequest true "pointer"
// @Success 200 {object} HoverResponse
// @Router /api/v1/sessions/{id}/hover [post]
func (h *SessionHandler) HandleHover(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req ScreenPointRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hover"); err != nil {
		return
	}
	id, err := s.Hover(r.Context(), req.point(), req.scale())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, HoverResponse{HoveredID: id})
}

// HandleMapPNG renders the session's current frame
// @Summary Render session map
// @Tags sessions
// @Produce png
// @Param id path string true "session id"
// @Param width query int false "frame width"
// @Param height query int false "frame height"
// @Success 200 {file} file
// @Router /api/v1/sessions/{id}/map.png [get]
func (h *SessionHandler) HandleMapPNG(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	width, height, ok := canvasFromQuery(w, r, h.canvas)
	if !ok {
		return
	}
	scene, err := s.Scene(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writePNG(w, r, scene, width, height)
}

// HandleBeginDrag starts dragging the tree marker
// @Summary Begin drag
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} placement.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/drag [post]
func (h *SessionHandler) HandleBeginDrag(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.BeginDrag(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.Snapshot())
}

// HandleDrop ends a drag. Drops outside the region answer accepted=false.
// @Summary Drop
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param request body ScreenPointRequest true "drop point"
// @Success 200 {object} DropResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/drop [post]
func (h *SessionHandler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req ScreenPointRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Drop"); err != nil {
		return
	}
	accepted, err := s.Drop(r.Context(), req.point(), req.scale())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	resp := DropResponse{Accepted: accepted, Session: s.Snapshot()}
	if !accepted {
		resp.Message = MsgDropOutside
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleUpdateForm sets the name and color
// @Summary Update form
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param request body FormRequest true "form"
// @Success 200 {object} placement.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/form [put]
func (h *SessionHandler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req FormRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update form"); err != nil {
		return
	}
	if err := s.UpdateForm(req.Name, req.Color); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.Snapshot())
}

// HandleAttachImage admits a photo for the pending placement
// @Summary Attach photo
// @Tags sessions
// @Accept mpfd
// @Produce json
// @Param id path string true "session id"
// @Param image formData file true "photo"
// @Success 200 {object} AttachImageResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /api/v1/sessions/{id}/image [post]
func (h *SessionHandler) HandleAttachImage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	up, ok := readUpload(w, r)
	if !ok {
		return
	}
	res, err := s.AttachImage(r.Context(), up)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, AttachImageResponse{Image: newAdmitResponse(res), Session: s.Snapshot()})
}

// HandleSubmit saves the pending placement
// @Summary Submit placement
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/submit [post]
func (h *SessionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	created, err := s.Submit(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, SubmitResponse{Tree: created, Session: s.Snapshot()})
}

// HandleCancel abandons the pending placement
// @Summary Cancel placement
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} placement.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/cancel [post]
func (h *SessionHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.Cancel(r.Context()); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s.Snapshot())
}
