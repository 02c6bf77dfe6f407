package viewport

import (
	"fmt"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// Event is a gesture input. All positions are in canvas space.
type Event interface {
	Kind() string
}

type PointerDown struct {
	Pos    domain.Point
	Button int
}

type PointerMove struct {
	Pos domain.Point
}

type PointerUp struct{}

type PointerLeave struct{}

// Wheel zooms out when DeltaY is positive and in when negative.
type Wheel struct {
	Pos    domain.Point
	DeltaY float64
}

// TouchStart, TouchMove and TouchEnd carry the touches still on the surface.
type TouchStart struct {
	Touches []domain.Point
}

type TouchMove struct {
	Touches []domain.Point
}

type TouchEnd struct {
	Touches []domain.Point
}

func (PointerDown) Kind() string  { return KindPointerDown }
func (PointerMove) Kind() string  { return KindPointerMove }
func (PointerUp) Kind() string    { return KindPointerUp }
func (PointerLeave) Kind() string { return KindPointerLeave }
func (Wheel) Kind() string        { return KindWheel }
func (TouchStart) Kind() string   { return KindTouchStart }
func (TouchMove) Kind() string    { return KindTouchMove }
func (TouchEnd) Kind() string     { return KindTouchEnd }

// RawEvent is the JSON shape of a gesture event.
type RawEvent struct {
	Type    string         `json:"type" validate:"required,oneof=pointerdown pointermove pointerup pointerleave wheel touchstart touchmove touchend"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Button  int            `json:"button"`
	DeltaY  float64        `json:"delta_y"`
	Touches []domain.Point `json:"touches" validate:"max=10"`
}

// Decode turns a RawEvent into a typed Event.
func (r RawEvent) Decode() (Event, error) {
	pos := domain.Point{X: r.X, Y: r.Y}
	switch r.Type {
	case KindPointerDown:
		return PointerDown{Pos: pos, Button: r.Button}, nil
	case KindPointerMove:
		return PointerMove{Pos: pos}, nil
	case KindPointerUp:
		return PointerUp{}, nil
	case KindPointerLeave:
		return PointerLeave{}, nil
	case KindWheel:
		return Wheel{Pos: pos, DeltaY: r.DeltaY}, nil
	case KindTouchStart:
		return TouchStart{Touches: r.Touches}, nil
	case KindTouchMove:
		return TouchMove{Touches: r.Touches}, nil
	case KindTouchEnd:
		return TouchEnd{Touches: r.Touches}, nil
	default:
		return nil, fmt.Errorf("%w: unknown gesture %q", domain.ErrInvalidInput, r.Type)
	}
}
