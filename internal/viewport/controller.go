// Package viewport owns the zoom and pan state of a map view and turns
// pointer, wheel and touch gestures into viewport changes.
package viewport

import (
	"math"
	"sync"

	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
)

type pinchState struct {
	startDistance float64
	startZoom     float64
}

// Controller is the only writer of its Viewport. Panning and pinching are
// mutually exclusive; at most one is active.
type Controller struct {
	mu        sync.Mutex
	view      domain.Viewport
	panning   bool
	panAnchor domain.Point
	pinch     *pinchState
}

// NewController returns a controller at the initial viewport.
func NewController() *Controller {
	return &Controller{view: domain.InitialViewport()}
}

// Snapshot returns the current viewport.
func (c *Controller) Snapshot() domain.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Panning reports whether a pan gesture is active.
func (c *Controller) Panning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panning
}

// Pinching reports whether a pinch gesture is active.
func (c *Controller) Pinching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinch != nil
}

// Reset returns to zoom 1 and no pan, ending any gesture.
func (c *Controller) Reset() domain.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = domain.InitialViewport()
	c.panning = false
	c.pinch = nil
	return c.view
}

// Handle applies one gesture event and returns the resulting viewport.
func (c *Controller) Handle(ev Event) domain.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch e := ev.(type) {
	case PointerDown:
		if e.Button == ButtonPrimary {
			c.startPan(e.Pos)
		}
	case PointerMove:
		c.movePan(e.Pos)
	case PointerUp, PointerLeave:
		c.panning = false
	case Wheel:
		switch {
		case e.DeltaY > 0:
			c.zoomAt(e.Pos, c.view.Zoom*WheelZoomOut)
		case e.DeltaY < 0:
			c.zoomAt(e.Pos, c.view.Zoom*WheelZoomIn)
		}
	case TouchStart:
		c.touchStart(e.Touches)
	case TouchMove:
		c.touchMove(e.Touches)
	case TouchEnd:
		if len(e.Touches) < 2 {
			c.pinch = nil
		}
		if len(e.Touches) == 0 {
			c.panning = false
		}
	}
	return c.view
}

// HandleAll applies events in order.
func (c *Controller) HandleAll(events []Event) domain.Viewport {
	v := c.Snapshot()
	for _, ev := range events {
		v = c.Handle(ev)
	}
	return v
}

func (c *Controller) startPan(pos domain.Point) {
	c.panning = true
	c.panAnchor = domain.Point{X: pos.X - c.view.PanX, Y: pos.Y - c.view.PanY}
}

func (c *Controller) movePan(pos domain.Point) {
	if !c.panning {
		return
	}
	c.view.PanX = pos.X - c.panAnchor.X
	c.view.PanY = pos.Y - c.panAnchor.Y
}

func (c *Controller) touchStart(touches []domain.Point) {
	switch len(touches) {
	case 0:
	case 1:
		if c.pinch == nil {
			c.startPan(touches[0])
		}
	default:
		c.panning = false
		d := geometry.Distance(touches[0], touches[1])
		if d == 0 {
			return
		}
		c.pinch = &pinchState{startDistance: d, startZoom: c.view.Zoom}
	}
}

func (c *Controller) touchMove(touches []domain.Point) {
	switch {
	case len(touches) >= 2 && c.pinch != nil:
		d := geometry.Distance(touches[0], touches[1])
		if d == 0 {
			return
		}
		center := domain.Point{X: (touches[0].X + touches[1].X) / 2, Y: (touches[0].Y + touches[1].Y) / 2}
		c.zoomAt(center, c.pinch.startZoom*d/c.pinch.startDistance)
	case len(touches) == 1 && c.panning:
		c.movePan(touches[0])
	}
}

// zoomAt keeps the world point under screen fixed: pan' = screen - world*zoom'.
func (c *Controller) zoomAt(screen domain.Point, zoom float64) {
	world := geometry.CanvasToWorld(c.view).Apply(screen)
	z := Clamp(zoom)
	c.view = domain.Viewport{
		Zoom: z,
		PanX: screen.X - world.X*z,
		PanY: screen.Y - world.Y*z,
	}
}

// Clamp limits zoom to [ZoomMin, ZoomMax]. NaN maps to ZoomMin.
func Clamp(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return ZoomMin
	}
	return max(ZoomMin, min(ZoomMax, zoom))
}
