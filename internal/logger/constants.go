package logger

// Accepted LOG_LEVEL values
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Defaults used before the app config is loaded
const (
	DefaultServiceName = "greenmap"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	// DefaultMaxValueLen truncates long string attributes such as raw request bodies
	DefaultMaxValueLen = 512
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeySessionID   = "session_id"
)

// Placeholders substituted into records
const (
	dataURLPrefix    = "data:"
	redactedImageFmt = "[image %s, %d bytes]"
	redactedBytesFmt = "[%d bytes]"
	truncatedSuffix  = "...(truncated)"
)
