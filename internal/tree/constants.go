package tree

// CacheSchemaVersion is bumped when the cached tree shape changes
const CacheSchemaVersion = "1.0"

const (
	listCacheKey      = "all"
	listCacheSize     = 1
	timestampLayout   = "2006-01-02T15:04:05.000Z07:00"
	coordinateScale   = 100
	validationISO8601 = "iso8601"
)

// Log messages
const (
	LogMsgTreeCreated      = "Tree planted"
	LogMsgTreeDeleted      = "Tree removed"
	LogMsgPublishFailed    = "Failed to publish tree event"
	LogMsgListFailed       = "Failed to list trees"
	LogMsgCreateFailed     = "Failed to store tree"
	LogMsgValidationFailed = "Tree rejected by validation"
)
