package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/GreenMap_Go/internal/admission"
)

// ImageHandler runs uploads through the admission pipeline without placing a tree
type ImageHandler struct {
	admitter admission.Admitter
}

// NewImageHandler creates a new image handler
func NewImageHandler(admitter admission.Admitter) *ImageHandler {
	return &ImageHandler{admitter: admitter}
}

// AdmitResponse describes an admitted photo
type AdmitResponse struct {
	Image             string              `json:"image"`
	MIME              string              `json:"mime"`
	Width             int                 `json:"width"`
	Height            int                 `json:"height"`
	Bytes             int                 `json:"bytes"`
	OverBudget        bool                `json:"over_budget"`
	ClassifierSkipped bool                `json:"classifier_skipped"`
	Attempts          []admission.Attempt `json:"attempts"`
}

func newAdmitResponse(res *admission.Result) AdmitResponse {
	p := res.Payload
	return AdmitResponse{
		Image:             p.DataURL(),
		MIME:              p.MIME,
		Width:             p.Width,
		Height:            p.Height,
		Bytes:             p.Size(),
		OverBudget:        p.OverBudget,
		ClassifierSkipped: res.ClassifierSkipped,
		Attempts:          res.Attempts,
	}
}

// HandleAdmit validates, compresses and classifies an uploaded photo
// @Summary Admit photo
// @Description Runs the structural, dimension, compression and content checks
// @Tags images
// @Accept mpfd
// @Produce json
// @Param image formData file true "photo"
// @Success 200 {object} AdmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /api/v1/images/admit [post]
func (h *ImageHandler) HandleAdmit(w http.ResponseWriter, r *http.Request) {
	up, ok := readUpload(w, r)
	if !ok {
		return
	}
	res, err := h.admitter.Admit(r.Context(), up)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	loggerFor(r).Info(LogMsgImageAdmitted, "bytes", res.Payload.Size(), "attempts", len(res.Attempts))
	respondJSON(w, http.StatusOK, newAdmitResponse(res))
}

// readUpload pulls the image file out of a multipart form. On failure the
// response has been written and ok is false.
func readUpload(w http.ResponseWriter, r *http.Request) (admission.Upload, bool) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		respondUploadError(w, r, err)
		return admission.Upload{}, false
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(FormFieldImage)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgMissingImageField)
		return admission.Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondUploadError(w, r, err)
		return admission.Upload{}, false
	}

	return admission.Upload{
		Data:         data,
		DeclaredMIME: header.Header.Get("Content-Type"),
		Filename:     header.Filename,
	}, true
}

func respondUploadError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		respondError(w, http.StatusRequestEntityTooLarge, ErrMsgUploadTooLarge)
		return
	}
	loggerFor(r).Warn(LogMsgDecodeFailed, "error", err)
	respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
}
