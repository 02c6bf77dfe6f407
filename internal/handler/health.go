package handler

import (
	"context"
	"net/http"
	"time"
)

const readinessTimeout = 2 * time.Second

// Component states reported by /readyz
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusDisabled    = "disabled"
	StatusWarming     = "warming"
)

// HealthResponse is the liveness body
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse breaks readiness down per component. Only the store
// decides the HTTP status; a cold classifier still admits photos.
type ReadinessResponse struct {
	Status     string `json:"status"`
	Store      string `json:"store"`
	Classifier string `json:"classifier"`
	Message    string `json:"message,omitempty"`
}

// Pinger is anything whose reachability decides readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModelStatus reports whether the content classifier has warmed up
type ModelStatus interface {
	Loaded() bool
}

// HandleHealthz answers as long as the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz pings the tree store and reports the classifier warm-up state.
// model may be nil when no classifier is configured.
// @Summary Readiness check
// @Description 503 when the tree store cannot be reached
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /readyz [get]
func HandleReadyz(store Pinger, model ModelStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ReadinessResponse{
			Status:     StatusOK,
			Store:      StatusOK,
			Classifier: classifierState(model),
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			loggerFor(r).Error(LogMsgReadinessFailed, "error", err)
			resp.Status = StatusUnavailable
			resp.Store = StatusUnavailable
			resp.Message = ErrMsgStoreUnavailable
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

func classifierState(model ModelStatus) string {
	switch {
	case model == nil:
		return StatusDisabled
	case model.Loaded():
		return StatusOK
	default:
		return StatusWarming
	}
}
