// Package classifier talks to the external content-safety model service.
package classifier

import (
	"context"
	"fmt"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// Prediction is one category score.
type Prediction struct {
	Category    string  `json:"className"`
	Probability float64 `json:"probability"`
}

// Classifier scores an encoded image per category.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]Prediction, error)
}

// Unavailable is used when no model service is configured. Every call fails,
// which the admission pipeline treats as fail-open.
type Unavailable struct{}

func (Unavailable) Classify(ctx context.Context, image []byte) ([]Prediction, error) {
	return nil, fmt.Errorf("%w: no classifier configured", domain.ErrClassifierFailed)
}

// MaxUnsafe returns the highest scoring unsafe category and its probability.
// Ties go to the earlier entry of UnsafeCategories.
func MaxUnsafe(preds []Prediction) (string, float64) {
	best, bestP := "", 0.0
	for _, unsafe := range UnsafeCategories {
		for _, p := range preds {
			if p.Category == unsafe && (best == "" || p.Probability > bestP) {
				best, bestP = p.Category, p.Probability
			}
		}
	}
	return best, bestP
}
