package event

import "time"

// Schema versions for published events and dead-letter lines
const (
	EventSchemaVersion      = "1.0"
	DeadLetterSchemaVersion = "2"
)

// Retry configuration constants
const (
	// RetryQueueBufferSize is the buffer size for the retry queue
	RetryQueueBufferSize = 256

	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead-letter log limits
const (
	DeadLetterFilePermissions = 0o640
	DeadLetterMaxLineBytes    = 1 << 20
)

// Log message constants
const (
	LogMsgEventPublishFailed   = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull       = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterFailed     = "Failed to write to dead letter"
	LogMsgEventRetryExhausted  = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed     = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgQueueDrainedShutdown = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout      = "Resilient publisher shutdown timed out"
)

const (
	ErrMsgHandlersFailed  = "%d handler(s) failed for %s: %w"
	ErrMsgHandlerPanicked = "handler for %s panicked: %v"
)

// CalculateRetryDelay doubles the base delay per attempt: 2s, 4s, 8s...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
