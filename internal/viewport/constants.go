package viewport

// Zoom limits
const (
	ZoomMin = 0.5
	ZoomMax = 5.0
)

// Wheel zoom factors per notch
const (
	WheelZoomOut = 0.9
	WheelZoomIn  = 1.1
)

// Pointer buttons
const (
	ButtonPrimary   = 0
	ButtonSecondary = 2
)

// Event kinds as they appear on the wire
const (
	KindPointerDown  = "pointerdown"
	KindPointerMove  = "pointermove"
	KindPointerUp    = "pointerup"
	KindPointerLeave = "pointerleave"
	KindWheel        = "wheel"
	KindTouchStart   = "touchstart"
	KindTouchMove    = "touchmove"
	KindTouchEnd     = "touchend"
)
