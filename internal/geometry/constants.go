package geometry

// HitRadiusBase is the hover radius in screen units; divided by zoom in world space.
const HitRadiusBase = 15.0

// Vector source dimensions of the built-in region outline.
const (
	regionSourceWidth  = 912.0
	regionSourceHeight = 1024.0
)
