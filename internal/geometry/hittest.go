package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// Distance is the Euclidean distance between two points.
func Distance(a, b domain.Point) float64 {
	return r2.Norm(r2.Sub(r2.Vec{X: a.X, Y: a.Y}, r2.Vec{X: b.X, Y: b.Y}))
}

// HitTest returns the first tree within HitRadiusBase/zoom of world.
// Iteration order decides between overlapping candidates.
func HitTest(trees []domain.Tree, world domain.Point, zoom float64) (int64, bool) {
	radius := HitRadiusBase / zoom
	for _, t := range trees {
		if Distance(t.Position(), world) < radius {
			return t.ID, true
		}
	}
	return 0, false
}
