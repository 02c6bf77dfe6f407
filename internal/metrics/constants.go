package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameDeadLetterBacklog  = "event_deadletter_entries"
)

// Domain metric names
const (
	MetricNameAdmissionOutcomes   = "image_admission_outcomes_total"
	MetricNameAdmissionDuration   = "image_admission_duration_seconds"
	MetricNameCompressionAttempts = "image_compression_attempts"
	MetricNameCompressedBytes     = "image_compressed_bytes"
	MetricNameClassifierErrors    = "classifier_errors_total"
	MetricNameClassifierDuration  = "classifier_request_duration_seconds"
	MetricNameClassifierLoads     = "classifier_model_loads_total"
	MetricNamePlacements          = "placements_total"
	MetricNameActiveSessions      = "placement_sessions_active"
	MetricNameRenderDuration      = "map_render_duration_seconds"
	MetricNameTreesPlanted        = "trees_planted_total"
	MetricNameTreesRemoved        = "trees_removed_total"
	MetricNameImagesRejected      = "images_rejected_total"
	MetricNameTreeCacheLookups    = "tree_cache_lookups_total"
	MetricNameSSEClients          = "sse_clients_connected"
)

// Help text
const (
	HelpTextHTTPRequestsTotal     = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration   = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight  = "Current number of HTTP requests being served"
	HelpTextEventsPublished       = "Total number of events published"
	HelpTextEventHandlerErrors    = "Total number of event handler errors"
	HelpTextDeadLetterBacklog     = "Undelivered events found in the dead-letter log at startup"
	HelpTextAdmissionOutcomes     = "Image admission results by stage and outcome"
	HelpTextAdmissionDuration     = "Time spent running the image admission pipeline"
	HelpTextCompressionAttempts   = "Re-encode attempts needed per admitted image"
	HelpTextCompressedBytes       = "Encoded size of admitted images"
	HelpTextClassifierErrors      = "Content classifier failures by operation"
	HelpTextClassifierDuration    = "Content classifier request latency in seconds"
	HelpTextClassifierLoads       = "Classifier model load attempts by result"
	HelpTextPlacements            = "Placement session transitions by outcome"
	HelpTextActiveSessions        = "Placement sessions currently held in memory"
	HelpTextRenderDuration        = "Time to rasterize a map frame"
	HelpTextTreesPlanted          = "Trees persisted, split by whether a photo was attached"
	HelpTextTreesRemoved          = "Trees deleted"
	HelpTextImagesRejected        = "Photos turned away by admission stage"
	HelpTextTreeCacheLookups      = "Tree detail cache lookups by result"
	HelpTextSSEClients            = "Connected live map clients"
)

// Metric Label Names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelStage     = "stage"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelPhoto     = "photo"
)

// Label values
const (
	OutcomeAdmitted     = "admitted"
	OutcomeRejected     = "rejected"
	OutcomeFailOpen     = "fail_open"
	OutcomeAccepted     = "accepted"
	OutcomeOutOfBounds  = "out_of_bounds"
	OutcomePersisted    = "persisted"
	OutcomePersistError = "persist_error"
	OutcomeCancelled    = "cancelled"
	OutcomeBlocked      = "blocked"
	ResultHit           = "hit"
	ResultMiss          = "miss"
	ResultSuccess       = "success"
	ResultFailure       = "failure"
	PhotoAttached       = "attached"
	PhotoNone           = "none"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AttemptBuckets covers the compression attempt cap
var AttemptBuckets = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// ByteBuckets covers encoded image sizes around the 50 KB budget
var ByteBuckets = []float64{8 << 10, 16 << 10, 32 << 10, 50 << 10, 64 << 10, 100 << 10, 200 << 10}

// Log messages
const (
	LogMsgMetricsRecorded = "Event metrics recorded"
	LogMsgMalformedEvent  = "Event payload could not be read for metrics"
)
