package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting      = "Server starting"
	LogMsgRequestStarted      = "Request started"
	LogMsgRequestCompleted    = "Request completed"
	LogMsgRequestHeaders      = "Request headers"
	LogMsgInvalidTrustedProxy = "Ignoring invalid trusted proxy entry"
)

// HTTP header names
const (
	HeaderAuthorization       = "Authorization"
	HeaderCookie              = "Cookie"
	HeaderForwardedFor        = "X-Forwarded-For"
	HeaderRequestID           = "X-Request-ID"
	HeaderRetryAfter          = "Retry-After"
	HeaderContentType         = "X-Content-Type-Options"
	HeaderFrameOptions        = "X-Frame-Options"
	HeaderReferrerPolicy      = "Referrer-Policy"
	HeaderCrossOriginResource = "Cross-Origin-Resource-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueSameOriginLower      = "same-origin"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate limiting and request bounds
const (
	RateLimitWindow      = 5 * time.Minute
	RateLimitMaxRequests = 1000
	RateLimitLogEvery    = 100

	// Photo uploads and saves run the admission pipeline, so they get a
	// smaller budget than reads and gestures
	UploadRateLimitWindow      = time.Minute
	UploadRateLimitMaxRequests = 20

	// RateLimitTrackedClients bounds how many client IPs each limiter remembers
	RateLimitTrackedClients = 10000

	// MaxRequestBodyBytes fits a 5MB photo plus multipart framing
	MaxRequestBodyBytes = 6 << 20

	ReadHeaderTimeout = 5 * time.Second
)

// Limiter names used in log lines
const (
	LimiterGlobal = "global"
	LimiterUpload = "upload"
)

// Paths excluded from request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
