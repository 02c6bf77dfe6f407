package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
)

// RasterCanvas draws anti-aliased shapes into an RGBA image.
type RasterCanvas struct {
	img  *image.RGBA
	coef [6]float64 // a, b, tx, c, d, ty
}

var identity = [6]float64{1, 0, 0, 0, 1, 0}

// NewRasterCanvas allocates a width x height surface.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		coef: identity,
	}
}

// Image exposes the backing image.
func (c *RasterCanvas) Image() *image.RGBA { return c.img }

func (c *RasterCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *RasterCanvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *RasterCanvas) FillVerticalGradient(top, bottom color.Color) {
	b := c.img.Bounds()
	t := color.NRGBAModel.Convert(top).(color.NRGBA)
	u := color.NRGBAModel.Convert(bottom).(color.NRGBA)
	h := max(1, b.Dy()-1)
	lerp := func(a, b uint8, f float64) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		f := float64(y-b.Min.Y) / float64(h)
		row := color.NRGBA{R: lerp(t.R, u.R, f), G: lerp(t.G, u.G, f), B: lerp(t.B, u.B, f), A: lerp(t.A, u.A, f)}
		draw.Draw(c.img, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(row), image.Point{}, draw.Over)
	}
}

func (c *RasterCanvas) SetTransform(t geometry.Affine) { c.coef = t.Coefficients() }

func (c *RasterCanvas) ResetTransform() { c.coef = identity }

func (c *RasterCanvas) apply(p domain.Point) (float32, float32) {
	m := c.coef
	return float32(m[0]*p.X + m[1]*p.Y + m[2]), float32(m[3]*p.X + m[4]*p.Y + m[5])
}

// fill rasterizes closed contours in one pass. Contours of opposite
// orientation cancel, which is how rings are cut out.
func (c *RasterCanvas) fill(contours [][]domain.Point, clr color.Color) {
	w, h := c.Size()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over
	drawn := false
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		x, y := c.apply(contour[0])
		z.MoveTo(x, y)
		for _, p := range contour[1:] {
			x, y = c.apply(p)
			z.LineTo(x, y)
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
	}
}

func (c *RasterCanvas) FillPolygon(pts []domain.Point, clr color.Color) {
	c.fill([][]domain.Point{pts}, clr)
}

// StrokePolygon draws each edge as a quad and rounds the joins.
func (c *RasterCanvas) StrokePolygon(pts []domain.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	half := width / 2
	edges := make([][]domain.Point, 0, len(pts))
	joins := make([][]domain.Point, 0, len(pts))
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l > 0 {
			nx, ny := -dy/l*half, dx/l*half
			edges = append(edges, []domain.Point{
				{X: a.X + nx, Y: a.Y + ny},
				{X: b.X + nx, Y: b.Y + ny},
				{X: b.X - nx, Y: b.Y - ny},
				{X: a.X - nx, Y: a.Y - ny},
			})
		}
		joins = append(joins, ellipse(a.X, a.Y, half, half, false))
	}
	c.fill(edges, clr)
	c.fill(joins, clr)
}

func (c *RasterCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.FillPolygon([]domain.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, clr)
}

func (c *RasterCanvas) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	c.fill([][]domain.Point{ellipse(cx, cy, rx, ry, false)}, clr)
}

func (c *RasterCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	c.FillEllipse(cx, cy, r, r, clr)
}

func (c *RasterCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	half := width / 2
	c.fill([][]domain.Point{
		ellipse(cx, cy, r+half, r+half, false),
		ellipse(cx, cy, max(0, r-half), max(0, r-half), true),
	}, clr)
}

func ellipse(cx, cy, rx, ry float64, reverse bool) []domain.Point {
	out := make([]domain.Point, circleSegments)
	for i := range out {
		a := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			a = -a
		}
		out[i] = domain.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return out
}
