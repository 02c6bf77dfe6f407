package bootstrap

// Log files live under LOG_DIR as greenmap_<timestamp>.log; the newest
// LogFileRetentionCount files survive a restart.
const (
	DirPermission          = 0o755
	LogFilePermission      = 0o644
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "greenmap_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGreenMap    = "Starting GreenMap"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event system
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgDeadLetterBacklog              = "Undelivered events left in dead-letter log"
	LogMsgDeadLetterUnreadable           = "Could not read dead-letter log"

	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "Live map stream subscribed to tree events"
	LogMsgAnnouncerRegistered        = "Discord announcer registered"
	LogMsgAnnouncerDisabled          = "Discord webhook not configured, announcements disabled"
)

// Store and services
const (
	LogMsgStoreOpened          = "Tree store opened"
	LogMsgClassifierDisabled   = "CLASSIFIER_URL not set, content check will be skipped"
	LogMsgClassifierConfigured = "Content classifier configured"
	LogMsgServicesInitialized  = "Services initialized"

	ErrMsgFailedOpenStore       = "failed to open tree store"
	ErrMsgFailedMigrateStore    = "failed to migrate tree store"
	ErrMsgUnknownStoreDriver    = "unknown store driver"
	ErrMsgFailedInitDiscord     = "failed to create discord session"
	ErrMsgFailedInitEventSystem = "failed to initialize event system"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgShuttingDownEventPublisher = "Draining event publisher"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgComponentShutdownFailed    = "Component shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"

	ComponentAnnouncer = "discord_announcer"
)
