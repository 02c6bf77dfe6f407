package domain

// World space dimensions in logical units.
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)

// Tree field constraints
const (
	DefaultTreeColor = "#16a34a"
	MaxTreeNameLen   = 255
	CoordinateScale  = 100 // two decimal places
)
