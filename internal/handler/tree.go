package handler

import (
	"net/http"
	"time"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/metrics"
	"github.com/osse101/GreenMap_Go/internal/render"
	"github.com/osse101/GreenMap_Go/internal/tree"
	"github.com/osse101/GreenMap_Go/internal/viewport"
)

// Canvas is the default frame size for rendered maps
type Canvas struct {
	Width  int
	Height int
}

// TreeHandler handles tree HTTP endpoints
type TreeHandler struct {
	service tree.Service
	canvas  Canvas
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(service tree.Service, canvas Canvas) *TreeHandler {
	return &TreeHandler{service: service, canvas: canvas}
}

// CreateTreeRequest is the request body for planting a tree directly
type CreateTreeRequest struct {
	X         float64 `json:"x" validate:"gte=0,lte=800"`
	Y         float64 `json:"y" validate:"gte=0,lte=600"`
	Name      string  `json:"name" validate:"required,max=255"`
	Color     string  `json:"color,omitempty" validate:"omitempty,treecolor"`
	Timestamp string  `json:"timestamp,omitempty" validate:"max=50"`
	Image     string  `json:"image,omitempty"`
}

// TreeListResponse wraps the tree list
type TreeListResponse struct {
	Trees []domain.Tree `json:"trees"`
	Count int           `json:"count"`
}

// CountResponse is the total number of trees
type CountResponse struct {
	Count int64 `json:"count"`
}

// BoundaryResponse is the region polygon in world space
type BoundaryResponse struct {
	Vertices []domain.Point `json:"vertices"`
	Centroid domain.Point   `json:"centroid"`
}

// HandleList returns every tree, newest first, without photos
// @Summary List trees
// @Tags trees
// @Produce json
// @Success 200 {object} TreeListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trees [get]
func (h *TreeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	trees, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if trees == nil {
		trees = []domain.Tree{}
	}
	respondJSON(w, http.StatusOK, TreeListResponse{Trees: trees, Count: len(trees)})
}

// HandleCount returns the number of trees
// @Summary Count trees
// @Tags trees
// @Produce json
// @Success 200 {object} CountResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/trees/count [get]
func (h *TreeHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Count(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, CountResponse{Count: n})
}

// HandleGet returns one tree with its photo
// @Summary Get tree
// @Tags trees
// @Produce json
// @Param id path int true "tree id"
// @Success 200 {object} domain.Tree
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/trees/{id} [get]
func (h *TreeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := treeIDParam(w, r)
	if !ok {
		return
	}
	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// HandleCreate plants a tree at world coordinates
// @Summary Create tree
// @Tags trees
// @Accept json
// @Produce json
// @Param request body CreateTreeRequest true "tree"
// @Success 201 {object} domain.Tree
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/trees [post]
func (h *TreeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateTreeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create tree"); err != nil {
		return
	}

	create := tree.CreateRequest{
		X:         req.X,
		Y:         req.Y,
		Name:      req.Name,
		Color:     req.Color,
		Timestamp: req.Timestamp,
	}
	if req.Image != "" {
		payload, err := domain.ParseDataURL(req.Image)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidImageData)
			return
		}
		create.Image = &payload
	}

	created, err := h.service.Create(r.Context(), create)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	loggerFor(r).Info(LogMsgTreeCreated, "tree_id", created.ID)
	respondJSON(w, http.StatusCreated, created)
}

// HandleDelete removes a tree
// @Summary Delete tree
// @Tags trees
// @Produce json
// @Param id path int true "tree id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/trees/{id} [delete]
func (h *TreeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := treeIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	loggerFor(r).Info(LogMsgTreeDeleted, "tree_id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTreeDeleted})
}

// HandleBoundary returns the region polygon
// @Summary Map region
// @Tags map
// @Produce json
// @Success 200 {object} BoundaryResponse
// @Router /api/v1/boundary [get]
func (h *TreeHandler) HandleBoundary(w http.ResponseWriter, r *http.Request) {
	b := h.service.Boundary()
	respondJSON(w, http.StatusOK, BoundaryResponse{Vertices: b.Vertices(), Centroid: b.Centroid()})
}

// HandleMapPNG renders a frame for the viewport given in the query
// @Summary Render map
// @Tags map
// @Produce png
// @Param zoom query number false "zoom, clamped"
// @Param pan_x query number false "pan x"
// @Param pan_y query number false "pan y"
// @Param hover query int false "highlighted tree id"
// @Param width query int false "frame width"
// @Param height query int false "frame height"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/map.png [get]
func (h *TreeHandler) HandleMapPNG(w http.ResponseWriter, r *http.Request) {
	scene, width, height, ok := h.sceneFromQuery(w, r)
	if !ok {
		return
	}
	trees, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	scene.Trees = trees
	writePNG(w, r, scene, width, height)
}

func (h *TreeHandler) sceneFromQuery(w http.ResponseWriter, r *http.Request) (render.Scene, int, int, bool) {
	vp := domain.InitialViewport()
	var err error
	for _, q := range []struct {
		name string
		dst  *float64
	}{{"zoom", &vp.Zoom}, {"pan_x", &vp.PanX}, {"pan_y", &vp.PanY}} {
		if *q.dst, err = floatQuery(r, q.name, *q.dst); err != nil {
			respondError(w, http.StatusBadRequest, queryError(q.name))
			return render.Scene{}, 0, 0, false
		}
	}
	vp.Zoom = viewport.Clamp(vp.Zoom)

	width, height, ok := canvasFromQuery(w, r, h.canvas)
	if !ok {
		return render.Scene{}, 0, 0, false
	}

	scene := render.Scene{Boundary: h.service.Boundary(), Viewport: vp}
	if raw := r.URL.Query().Get("hover"); raw != "" {
		id, err := intQuery(r, "hover", 0)
		if err != nil {
			respondError(w, http.StatusBadRequest, queryError("hover"))
			return render.Scene{}, 0, 0, false
		}
		hovered := int64(id)
		scene.HoveredID = &hovered
	}
	return scene, width, height, true
}

// canvasFromQuery reads width and height, bounded to maxFrameFactor times the
// default canvas.
func canvasFromQuery(w http.ResponseWriter, r *http.Request, c Canvas) (int, int, bool) {
	width, err := intQuery(r, "width", c.Width)
	if err != nil || width <= 0 || width > c.Width*maxFrameFactor {
		respondError(w, http.StatusBadRequest, queryError("width"))
		return 0, 0, false
	}
	height, err := intQuery(r, "height", c.Height)
	if err != nil || height <= 0 || height > c.Height*maxFrameFactor {
		respondError(w, http.StatusBadRequest, queryError("height"))
		return 0, 0, false
	}
	return width, height, true
}

const maxFrameFactor = 4

func writePNG(w http.ResponseWriter, r *http.Request, scene render.Scene, width, height int) {
	start := time.Now()
	out, err := render.PNG(scene, width, height)
	metrics.RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		loggerFor(r).Error(ErrMsgRenderFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgRenderFailed)
		return
	}
	w.Header().Set("Content-Type", ContentTypePNG)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
