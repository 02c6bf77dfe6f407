package admission

// Stage names a step of the admission pipeline
type Stage string

const (
	StageStructural    Stage = "structural"
	StageDimension     Stage = "dimension"
	StageCompression   Stage = "compression"
	StageContentSafety Stage = "content_safety"
)

// Accepted MIME types
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"

	mimeJPGAlias    = "image/jpg"
	mimeOctetStream = "application/octet-stream"
)

// Defaults mirror the config package defaults
const (
	DefaultMinBytes           = 10 * 1024
	DefaultMaxBytes           = 5 * 1024 * 1024
	DefaultMinDimension       = 200
	DefaultMaxPixels          = 40_000_000
	DefaultTargetBytes        = 50 * 1024
	DefaultStartDimension     = 800
	DefaultStartQuality       = 0.8
	DefaultMaxAttempts        = 10
	DefaultMinQuality         = 0.3
	DefaultMinScaledDimension = 64
	DefaultUnsafeThreshold    = 0.5
)

// Compression schedule
const (
	overBudgetFactor = 1.5
	dimensionShrink  = 0.8
	qualityStepLarge = 0.1
	qualityStepSmall = 0.15
	qualityPrecision = 100
	maxJPEGQuality   = 100
)

// User-facing rejection reasons
const (
	ReasonInvalidType      = "Invalid file type. Please upload a JPEG, PNG or WebP image."
	ReasonTooLargeFormat   = "Image is too large. The maximum size is %s."
	ReasonTooSmall         = "Image file is too small. Please upload a clear photo."
	ReasonCorrupt          = "Invalid or corrupt image file."
	ReasonLowResFormat     = "Image resolution is too low (minimum %dx%d pixels)."
	ReasonHighResFormat    = "Image resolution is too high (maximum %dx%d pixels)."
	ReasonTooManyPixels    = "Image resolution is too high (maximum %d megapixels)."
	ReasonEncodeFailed     = "Could not process the image. Please try another photo."
	ReasonUnsafeFormat     = "The image appears to contain %s (%.0f%% confidence). Please upload a family-friendly photo of your tree planting."
	ReasonCheckUnavailable = "Content check is unavailable right now. Please try again later."
)

// Log messages
const (
	LogMsgImageRejected   = "Image rejected"
	LogMsgImageAdmitted   = "Image admitted"
	LogMsgClassifierOpen  = "Content classifier failed, admitting image"
	LogMsgClassifierClose = "Content classifier failed, rejecting image"
	LogMsgPublishFailed   = "Failed to publish image rejection event"
	LogMsgOverBudget      = "Compression stopped at attempt cap above target size"
)
