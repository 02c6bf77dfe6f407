package admission

import (
	"context"
	"fmt"

	"github.com/osse101/GreenMap_Go/internal/classifier"
	"github.com/osse101/GreenMap_Go/internal/logger"
	"github.com/osse101/GreenMap_Go/internal/metrics"
)

var unsafeDescriptions = map[string]string{
	classifier.CategoryPorn:   "adult content",
	classifier.CategoryHentai: "inappropriate content",
	classifier.CategorySexy:   "suggestive content",
}

// checkSafety scores the compressed image. skipped is true when the
// classifier failed and the image was let through.
func checkSafety(ctx context.Context, cfg Config, c classifier.Classifier, data []byte) (skipped bool, rej *Rejection) {
	log := logger.FromContext(ctx)

	preds, err := c.Classify(ctx, data)
	if err != nil {
		if cfg.FailClosed {
			log.Warn(LogMsgClassifierClose, "error", err)
			return false, reject(StageContentSafety, ReasonCheckUnavailable, err)
		}
		log.Warn(LogMsgClassifierOpen, "error", err)
		metrics.AdmissionOutcomes.WithLabelValues(string(StageContentSafety), metrics.OutcomeFailOpen).Inc()
		return true, nil
	}

	category, score := classifier.MaxUnsafe(preds)
	if category != "" && score >= cfg.UnsafeThreshold {
		desc, ok := unsafeDescriptions[category]
		if !ok {
			desc = category
		}
		return false, reject(StageContentSafety, fmt.Sprintf(ReasonUnsafeFormat, desc, score*100), nil)
	}
	return false, nil
}
