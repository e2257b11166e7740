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

// Watering / bloom Metrics
var (
	WateringsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWateringsTotal,
			Help: HelpTextWateringsTotal,
		},
	)

	WateringRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWateringRejectionsTotal,
			Help: HelpTextWateringRejectionsTotal,
		},
		[]string{LabelReason},
	)

	BloomsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBloomsTotal,
			Help: HelpTextBloomsTotal,
		},
		[]string{LabelKind},
	)

	BadgeUnlocksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBadgeUnlocksTotal,
			Help: HelpTextBadgeUnlocksTotal,
		},
		[]string{LabelBadge},
	)

	SeedsPlantedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsPlantedTotal,
			Help: HelpTextSeedsPlantedTotal,
		},
		[]string{LabelKind},
	)

	LedgerRecordsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLedgerPurgedTotal,
			Help: HelpTextLedgerPurgedTotal,
		},
	)
)

// Status cache Metrics
var (
	StatusCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatusCacheHits,
			Help: HelpTextStatusCacheHits,
		},
	)

	StatusCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatusCacheMisses,
			Help: HelpTextStatusCacheMisses,
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
)
