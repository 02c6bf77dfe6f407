package render

import "image/color"

// Palette
var (
	BackgroundTop    = color.NRGBA{R: 0xdb, G: 0xea, B: 0xfe, A: 0xff}
	BackgroundBottom = color.NRGBA{R: 0xfe, G: 0xf9, B: 0xc3, A: 0xff}
	RegionFill       = color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	RegionStroke     = color.NRGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff}
	RegionShadow     = color.NRGBA{A: 77}                             // black 30%
	RegionHighlight  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 64} // white 25%
	TreeShadow       = color.NRGBA{A: 51}                             // black 20%
	TrunkColor       = color.NRGBA{R: 0x92, G: 0x40, B: 0x0e, A: 0xff}
	HoverRing        = color.NRGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
)

// Region styling, in screen units before division by zoom
const (
	RegionShadowOffset = 8.0
	RegionStrokeWidth  = 4.0
	HoverRingWidth     = 3.0
	HighlightFraction  = 0.3
)

// HighlightAnchor is the interior point closing the highlight polygon.
var HighlightAnchor = struct{ X, Y float64 }{400, 200}

// Tree glyph geometry in units of the tree scale (1/zoom)
const (
	TreeShadowOffsetX = 2.0
	TreeShadowOffsetY = 22.0
	TreeShadowRX      = 8.0
	TreeShadowRY      = 4.0
	TrunkOffsetX      = -2.0
	TrunkOffsetY      = 10.0
	TrunkWidth        = 4.0
	TrunkHeight       = 12.0
	FoliageBaseRadius = 8.0
	FoliageTopRadius  = 6.0
	FoliageTopOffsetX = 3.0
	FoliageTopOffsetY = -2.0
	HoverRingRadius   = 15.0
	FoliageDarken     = 18
)

// circleSegments is the polygon resolution of rasterized circles and ellipses.
const circleSegments = 48
