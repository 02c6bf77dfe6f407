package render

import (
	"math"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
)

// Scene is everything a frame depends on.
type Scene struct {
	Boundary  geometry.Boundary
	Trees     []domain.Tree
	Viewport  domain.Viewport
	HoveredID *int64
}

// Render clears c and redraws the whole scene back to front.
func Render(c Canvas, s Scene) {
	c.ResetTransform()
	c.Clear()
	c.FillVerticalGradient(BackgroundTop, BackgroundBottom)

	c.SetTransform(geometry.WorldToCanvas(s.Viewport))
	zoom := s.Viewport.Zoom

	outline := s.Boundary.Vertices()
	off := RegionShadowOffset / zoom
	shadow := make([]domain.Point, len(outline))
	for i, p := range outline {
		shadow[i] = domain.Point{X: p.X + off, Y: p.Y + off}
	}
	c.FillPolygon(shadow, RegionShadow)
	c.FillPolygon(outline, RegionFill)
	c.FillPolygon(HighlightPolygon(s.Boundary), RegionHighlight)
	c.StrokePolygon(outline, RegionStrokeWidth/zoom, RegionStroke)

	for _, t := range s.Trees {
		hovered := s.HoveredID != nil && *s.HoveredID == t.ID
		drawTree(c, t, zoom, hovered)
	}

	c.ResetTransform()
}

// HighlightPolygon is the leading fraction of the outline closed through an
// interior anchor point.
func HighlightPolygon(b geometry.Boundary) []domain.Point {
	v := b.Vertices()
	n := int(math.Ceil(float64(len(v)) * HighlightFraction))
	out := make([]domain.Point, 0, n+1)
	out = append(out, v[:n]...)
	return append(out, domain.Point{X: HighlightAnchor.X, Y: HighlightAnchor.Y})
}

func drawTree(c Canvas, t domain.Tree, zoom float64, hovered bool) {
	s := 1 / zoom
	x, y := t.X, t.Y

	c.FillEllipse(x+TreeShadowOffsetX*s, y+TreeShadowOffsetY*s, TreeShadowRX*s, TreeShadowRY*s, TreeShadow)
	c.FillRect(x+TrunkOffsetX*s, y+TrunkOffsetY*s, TrunkWidth*s, TrunkHeight*s, TrunkColor)

	c.FillCircle(x, y, FoliageBaseRadius*s, mustColor(DarkenHex(t.Color, FoliageDarken)))
	top := mustColor(t.Color)
	c.FillCircle(x-FoliageTopOffsetX*s, y+FoliageTopOffsetY*s, FoliageTopRadius*s, top)
	c.FillCircle(x+FoliageTopOffsetX*s, y+FoliageTopOffsetY*s, FoliageTopRadius*s, top)

	if hovered {
		c.StrokeCircle(x, y, HoverRingRadius*s, HoverRingWidth/zoom, HoverRing)
	}
}
