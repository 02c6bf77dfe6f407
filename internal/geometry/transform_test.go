package geometry

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

const tolerance = 1e-9

func TestWorldFromScreen_Identity(t *testing.T) {
	p := domain.Point{X: 123.5, Y: 45.25}
	got := WorldFromScreen(p, domain.InitialViewport(), UnitScale())
	assert.InDelta(t, p.X, got.X, tolerance)
	assert.InDelta(t, p.Y, got.Y, tolerance)
}

func TestWorldFromScreen_KnownValues(t *testing.T) {
	v := domain.Viewport{Zoom: 2, PanX: 100, PanY: -50}
	// Canvas displayed at half its backing size
	s := CanvasScale{X: 0.5, Y: 0.5}

	got := WorldFromScreen(domain.Point{X: 150, Y: 75}, v, s)

	// canvas = (300, 150); world = ((300-100)/2, (150+50)/2)
	assert.InDelta(t, 100, got.X, tolerance)
	assert.InDelta(t, 100, got.Y, tolerance)
}

func TestTransformInverseLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := domain.Viewport{
			Zoom: 0.5 + rng.Float64()*4.5,
			PanX: rng.Float64()*2000 - 1000,
			PanY: rng.Float64()*2000 - 1000,
		}
		s := CanvasScale{X: 0.25 + rng.Float64()*2, Y: 0.25 + rng.Float64()*2}
		screen := domain.Point{X: rng.Float64() * 1600, Y: rng.Float64() * 1200}

		back := ScreenFromWorld(WorldFromScreen(screen, v, s), v, s)

		assert.InDelta(t, screen.X, back.X, 1e-6)
		assert.InDelta(t, screen.Y, back.Y, 1e-6)
	}
}

func TestWorldToCanvas_MatchesRenderOrder(t *testing.T) {
	v := domain.Viewport{Zoom: 3, PanX: 10, PanY: 20}
	c := WorldToCanvas(v).Coefficients()
	assert.Equal(t, [6]float64{3, 0, 10, 0, 3, 20}, c)
}

func TestCanvasScale_ZeroFallsBackToUnit(t *testing.T) {
	p := domain.Point{X: 10, Y: 20}
	assert.Equal(t, p, CanvasFromScreen(p, CanvasScale{}))
}
