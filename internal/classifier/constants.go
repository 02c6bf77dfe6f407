package classifier

// Category labels returned by the model
const (
	CategoryPorn    = "Porn"
	CategorySexy    = "Sexy"
	CategoryHentai  = "Hentai"
	CategoryNeutral = "Neutral"
	CategoryDrawing = "Drawing"
)

// UnsafeCategories are the labels checked against the admission threshold.
var UnsafeCategories = []string{CategoryPorn, CategoryHentai, CategorySexy}

// Endpoint paths relative to the service base URL
const (
	pathLoadFormat     = "%s/v1/models/%s/load"
	pathClassifyFormat = "%s/v1/models/%s/classify"
)

const (
	singleflightKey   = "model"
	maxResponseBytes  = 1 << 20
	contentTypeHeader = "Content-Type"
)

// Log messages
const (
	LogMsgModelLoaded      = "Content classifier model loaded"
	LogMsgModelLoadFailed  = "Content classifier model load failed"
	LogMsgPreloadFailed    = "Content classifier preload failed, will retry on first upload"
	LogMsgClassifyFailed   = "Content classification request failed"
	LogMsgClassifierAbsent = "No content classifier configured"
)
