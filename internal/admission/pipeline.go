// Package admission runs uploaded photos through structural, dimension,
// compression and content-safety checks before they can be attached to a
// tree.
package admission

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/osse101/GreenMap_Go/internal/classifier"
	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/event"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

// Admitter is the contract consumed by placement sessions and handlers.
type Admitter interface {
	Admit(ctx context.Context, up Upload) (*Result, error)
}

// Result is an admitted image.
type Result struct {
	Payload           domain.ImagePayload `json:"payload"`
	Attempts          []Attempt           `json:"attempts"`
	ClassifierSkipped bool                `json:"classifier_skipped"`
}

// Pipeline runs the stages in order and stops at the first rejection.
type Pipeline struct {
	cfg        Config
	classifier classifier.Classifier
	bus        event.Bus
}

// NewPipeline creates a pipeline. A nil classifier behaves like an
// unreachable model service; a nil bus disables rejection events.
func NewPipeline(cfg Config, c classifier.Classifier, bus event.Bus) *Pipeline {
	if c == nil {
		c = classifier.Unavailable{}
	}
	return &Pipeline{cfg: cfg, classifier: c, bus: bus}
}

// Admit validates, compresses and classifies an upload. Rejections are
// returned as *Rejection errors.
func (p *Pipeline) Admit(ctx context.Context, up Upload) (*Result, error) {
	start := time.Now()
	defer func() {
		metrics.AdmissionDuration.Observe(time.Since(start).Seconds())
	}()

	if _, rej := checkStructure(p.cfg, up); rej != nil {
		return nil, p.rejected(ctx, up, rej)
	}
	metrics.AdmissionOutcomes.WithLabelValues(string(StageStructural), metrics.OutcomeAdmitted).Inc()

	if _, rej := checkDimensions(p.cfg, up.Data); rej != nil {
		return nil, p.rejected(ctx, up, rej)
	}
	metrics.AdmissionOutcomes.WithLabelValues(string(StageDimension), metrics.OutcomeAdmitted).Inc()

	src, _, err := image.Decode(bytes.NewReader(up.Data))
	if err != nil {
		return nil, p.rejected(ctx, up, reject(StageDimension, ReasonCorrupt, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := compress(p.cfg, src)
	if err != nil {
		return nil, p.rejected(ctx, up, reject(StageCompression, ReasonEncodeFailed, err))
	}
	metrics.CompressionAttempts.Observe(float64(len(out.attempts)))
	metrics.CompressedBytes.Observe(float64(len(out.data)))
	metrics.AdmissionOutcomes.WithLabelValues(string(StageCompression), metrics.OutcomeAdmitted).Inc()
	if out.overBudget {
		logger.FromContext(ctx).Info(LogMsgOverBudget, "bytes", len(out.data), "target", p.cfg.TargetBytes)
	}

	skipped, rej := checkSafety(ctx, p.cfg, p.classifier, out.data)
	if rej != nil {
		return nil, p.rejected(ctx, up, rej)
	}
	if !skipped {
		metrics.AdmissionOutcomes.WithLabelValues(string(StageContentSafety), metrics.OutcomeAdmitted).Inc()
	}

	logger.FromContext(ctx).Info(LogMsgImageAdmitted,
		"filename", up.Filename,
		"input_bytes", len(up.Data),
		"output_bytes", len(out.data),
		"attempts", len(out.attempts),
		"classifier_skipped", skipped)

	return &Result{
		Payload: domain.ImagePayload{
			Data:       out.data,
			MIME:       MIMEJPEG,
			Width:      out.width,
			Height:     out.height,
			OverBudget: out.overBudget,
		},
		Attempts:          out.attempts,
		ClassifierSkipped: skipped,
	}, nil
}

func (p *Pipeline) rejected(ctx context.Context, up Upload, rej *Rejection) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgImageRejected, "stage", rej.Stage, "reason", rej.Reason, "filename", up.Filename, "error", rej.Err)
	metrics.AdmissionOutcomes.WithLabelValues(string(rej.Stage), metrics.OutcomeRejected).Inc()

	if p.bus != nil {
		if err := p.bus.Publish(ctx, event.NewImageRejectedEvent(string(rej.Stage), rej.Reason)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}
	return rej
}
