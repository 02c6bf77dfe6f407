// Package geometry implements region containment, hit testing and the
// screen/canvas/world coordinate transforms of the map.
package geometry

import (
	"fmt"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// Boundary is an immutable, implicitly closed polygon in world space.
type Boundary struct {
	vertices []domain.Point
}

// NewBoundary copies vertices into a Boundary. At least three are required.
func NewBoundary(vertices []domain.Point) (Boundary, error) {
	if len(vertices) < 3 {
		return Boundary{}, fmt.Errorf("%w: got %d", domain.ErrInvalidBoundary, len(vertices))
	}
	v := make([]domain.Point, len(vertices))
	copy(v, vertices)
	return Boundary{vertices: v}, nil
}

// MustBoundary is NewBoundary for static data.
func MustBoundary(vertices []domain.Point) Boundary {
	b, err := NewBoundary(vertices)
	if err != nil {
		panic(err)
	}
	return b
}

// Vertices returns a copy of the polygon vertices.
func (b Boundary) Vertices() []domain.Point {
	v := make([]domain.Point, len(b.vertices))
	copy(v, b.vertices)
	return v
}

// Len is the vertex count.
func (b Boundary) Len() int { return len(b.vertices) }

// ContainsPoint runs the even-odd ray cast. An edge counts as a crossing
// when exactly one endpoint lies strictly above p.Y and the intercept is to
// the right of p.X. The strict comparison makes the half-open rule the vertex
// tie-break: a vertex exactly at p.Y belongs to the edge below it, so a ray
// through a vertex is counted once. Zero-length and horizontal edges never
// satisfy the span test.
func ContainsPoint(b Boundary, p domain.Point) bool {
	inside := false
	n := len(b.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, c := b.vertices[i], b.vertices[j]
		if (a.Y > p.Y) == (c.Y > p.Y) {
			continue
		}
		xCross := (c.X-a.X)*(p.Y-a.Y)/(c.Y-a.Y) + a.X
		if p.X < xCross {
			inside = !inside
		}
	}
	return inside
}

// Contains is the method form of ContainsPoint.
func (b Boundary) Contains(p domain.Point) bool {
	return ContainsPoint(b, p)
}

// Centroid is the vertex average, used by tests and as a default drop hint.
func (b Boundary) Centroid() domain.Point {
	var sx, sy float64
	for _, v := range b.vertices {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(b.vertices))
	return domain.Point{X: sx / n, Y: sy / n}
}

// Bounds returns the axis aligned bounding box corners.
func (b Boundary) Bounds() (minPt, maxPt domain.Point) {
	minPt, maxPt = b.vertices[0], b.vertices[0]
	for _, v := range b.vertices[1:] {
		minPt.X = min(minPt.X, v.X)
		minPt.Y = min(minPt.Y, v.Y)
		maxPt.X = max(maxPt.X, v.X)
		maxPt.Y = max(maxPt.Y, v.Y)
	}
	return minPt, maxPt
}
