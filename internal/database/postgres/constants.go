package postgres

// CoordinateDecimals matches the NUMERIC(10,2) coordinate columns
const CoordinateDecimals = 2

// Log messages
const (
	LogMsgStoredImageInvalid = "Stored tree image is not a valid data URL"
)
