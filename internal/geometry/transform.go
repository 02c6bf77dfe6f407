package geometry

import (
	"gonum.org/v1/gonum/mat"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// CanvasScale is the displayed size of the canvas divided by its backing
// size. A canvas stretched to twice its width on screen has X = 2.
type CanvasScale struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// UnitScale is the scale of a canvas displayed at its backing size.
func UnitScale() CanvasScale { return CanvasScale{X: 1, Y: 1} }

func (s CanvasScale) orUnit() CanvasScale {
	if s.X <= 0 || s.Y <= 0 {
		return UnitScale()
	}
	return s
}

// Affine is a 2D homogeneous transform.
type Affine struct {
	m *mat.Dense
}

func newAffine(a, b, tx, c, d, ty float64) Affine {
	return Affine{m: mat.NewDense(3, 3, []float64{
		a, b, tx,
		c, d, ty,
		0, 0, 1,
	})}
}

// Translate returns a translation transform.
func Translate(tx, ty float64) Affine { return newAffine(1, 0, tx, 0, 1, ty) }

// ScaleBy returns a scaling transform.
func ScaleBy(sx, sy float64) Affine { return newAffine(sx, 0, 0, 0, sy, 0) }

// Then returns the transform that applies a first and then next.
func (a Affine) Then(next Affine) Affine {
	var out mat.Dense
	out.Mul(next.m, a.m)
	return Affine{m: &out}
}

// Apply maps p through the transform.
func (a Affine) Apply(p domain.Point) domain.Point {
	var out mat.VecDense
	out.MulVec(a.m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return domain.Point{X: out.AtVec(0), Y: out.AtVec(1)}
}

// Coefficients returns (a, b, tx, c, d, ty).
func (a Affine) Coefficients() [6]float64 {
	return [6]float64{a.m.At(0, 0), a.m.At(0, 1), a.m.At(0, 2), a.m.At(1, 0), a.m.At(1, 1), a.m.At(1, 2)}
}

// WorldToCanvas is the renderer's forward transform: scale by zoom, then
// translate by pan (canvas = world*zoom + pan).
func WorldToCanvas(v domain.Viewport) Affine {
	return ScaleBy(v.Zoom, v.Zoom).Then(Translate(v.PanX, v.PanY))
}

// CanvasToWorld is the exact inverse of WorldToCanvas.
func CanvasToWorld(v domain.Viewport) Affine {
	return Translate(-v.PanX, -v.PanY).Then(ScaleBy(1/v.Zoom, 1/v.Zoom))
}

// CanvasFromScreen converts displayed pixels to backing canvas pixels.
func CanvasFromScreen(screen domain.Point, s CanvasScale) domain.Point {
	s = s.orUnit()
	return domain.Point{X: screen.X / s.X, Y: screen.Y / s.Y}
}

// ScreenFromCanvas converts backing canvas pixels to displayed pixels.
func ScreenFromCanvas(canvas domain.Point, s CanvasScale) domain.Point {
	s = s.orUnit()
	return domain.Point{X: canvas.X * s.X, Y: canvas.Y * s.Y}
}

// WorldFromScreen divides by the canvas scale, subtracts pan, divides by zoom.
func WorldFromScreen(screen domain.Point, v domain.Viewport, s CanvasScale) domain.Point {
	return CanvasToWorld(v).Apply(CanvasFromScreen(screen, s))
}

// ScreenFromWorld is the inverse of WorldFromScreen.
func ScreenFromWorld(world domain.Point, v domain.Viewport, s CanvasScale) domain.Point {
	return ScreenFromCanvas(WorldToCanvas(v).Apply(world), s)
}
