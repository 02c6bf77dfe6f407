// Package render draws the map: background, region outline and planted
// trees, as a pure function of the trees, the viewport and the hovered tree.
package render

import (
	"image/color"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
)

// Canvas is an immediate mode drawing surface. Shape coordinates and stroke
// widths pass through the current transform; the gradient fill and Clear
// always cover the whole surface.
type Canvas interface {
	Size() (width, height int)
	Clear()
	FillVerticalGradient(top, bottom color.Color)

	SetTransform(t geometry.Affine)
	ResetTransform()

	FillPolygon(pts []domain.Point, clr color.Color)
	StrokePolygon(pts []domain.Point, width float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	FillEllipse(cx, cy, rx, ry float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
}
