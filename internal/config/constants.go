package config

import "time"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "greenmap"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 10
	DefaultDBMaxConnLifetime = time.Hour
	DefaultSQLitePath        = "data/greenmap.db"

	DefaultTreeCacheSize   = 256
	DefaultTreeCacheTTL    = 10 * time.Minute
	DefaultSessionCapacity = 1024
	DefaultSessionTTL      = 30 * time.Minute

	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600

	DefaultClassifierModel   = "nsfwjs-mobilenet-v2"
	DefaultClassifierTimeout = 15 * time.Second
	DefaultUnsafeThreshold   = 0.5

	DefaultImageMinBytes     = 10 * 1024
	DefaultImageMaxBytes     = 5 * 1024 * 1024
	DefaultImageTargetBytes  = 50 * 1024
	DefaultImageMinDimension = 200
	DefaultImageMaxPixels    = 40_000_000

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
