package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// RejectionResponse is returned when the admission pipeline refuses a photo
type RejectionResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err to a status and user message and writes it.
// Admission rejections carry their own reason and stage.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if rej, ok := admission.AsRejection(err); ok {
		respondJSON(w, http.StatusUnprocessableEntity, RejectionResponse{Error: rej.Reason, Stage: string(rej.Stage)})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	log := loggerFor(r)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "error", err, "status", status)
	} else {
		log.Debug(LogMsgServiceError, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrTreeNotFound):
		return http.StatusNotFound, ErrMsgTreeNotFound
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrNameRequired):
		return http.StatusBadRequest, ErrMsgNameRequired
	case errors.Is(err, domain.ErrImageRequired):
		return http.StatusBadRequest, ErrMsgImageRequired
	case errors.Is(err, domain.ErrInvalidColor):
		return http.StatusBadRequest, ErrMsgInvalidColor
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, ErrMsgInvalidImage
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrOutOfBounds):
		return http.StatusUnprocessableEntity, ErrMsgOutOfBounds
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransition
	case errors.Is(err, domain.ErrPlacementCancelled):
		return http.StatusConflict, ErrMsgPlacementCancelled
	case errors.Is(err, domain.ErrPersistenceFailed):
		return http.StatusBadGateway, ErrMsgPersistenceFailed
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
