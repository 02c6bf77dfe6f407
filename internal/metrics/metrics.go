package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)

	DeadLetterBacklog = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDeadLetterBacklog,
			Help: HelpTextDeadLetterBacklog,
		},
	)
)

// Image admission metrics
var (
	AdmissionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdmissionOutcomes,
			Help: HelpTextAdmissionOutcomes,
		},
		[]string{LabelStage, LabelOutcome},
	)

	AdmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAdmissionDuration,
			Help:    HelpTextAdmissionDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	CompressionAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCompressionAttempts,
			Help:    HelpTextCompressionAttempts,
			Buckets: AttemptBuckets,
		},
	)

	CompressedBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCompressedBytes,
			Help:    HelpTextCompressedBytes,
			Buckets: ByteBuckets,
		},
	)

	ClassifierErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClassifierErrors,
			Help: HelpTextClassifierErrors,
		},
		[]string{LabelOperation},
	)

	ClassifierDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameClassifierDuration,
			Help:    HelpTextClassifierDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	ClassifierLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClassifierLoads,
			Help: HelpTextClassifierLoads,
		},
		[]string{LabelResult},
	)
)

// Map and placement metrics
var (
	Placements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlacements,
			Help: HelpTextPlacements,
		},
		[]string{LabelOutcome},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRenderDuration,
			Help:    HelpTextRenderDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	TreesPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreesPlanted,
			Help: HelpTextTreesPlanted,
		},
		[]string{LabelPhoto},
	)

	TreesRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreesRemoved,
			Help: HelpTextTreesRemoved,
		},
	)

	ImagesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImagesRejected,
			Help: HelpTextImagesRejected,
		},
		[]string{LabelStage},
	)

	TreeCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreeCacheLookups,
			Help: HelpTextTreeCacheLookups,
		},
		[]string{LabelResult},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)
