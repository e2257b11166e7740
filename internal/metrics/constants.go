package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "garden_http_requests_total"
	MetricNameHTTPRequestDuration  = "garden_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "garden_http_requests_in_flight"

	MetricNameWateringsTotal          = "garden_waterings_total"
	MetricNameWateringRejectionsTotal = "garden_watering_rejections_total"
	MetricNameBloomsTotal             = "garden_blooms_total"
	MetricNameBadgeUnlocksTotal       = "garden_badge_unlocks_total"
	MetricNameSeedsPlantedTotal       = "garden_seeds_planted_total"
	MetricNameLedgerPurgedTotal       = "garden_ledger_records_purged_total"

	MetricNameStatusCacheHits   = "garden_status_cache_hits_total"
	MetricNameStatusCacheMisses = "garden_status_cache_misses_total"

	MetricNameEventsPublished    = "garden_events_published_total"
	MetricNameEventHandlerErrors = "garden_event_handler_errors_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextWateringsTotal          = "Total number of accepted waterings"
	HelpTextWateringRejectionsTotal = "Total number of rejected watering attempts by reason"
	HelpTextBloomsTotal             = "Total number of bloom transitions by seed kind"
	HelpTextBadgeUnlocksTotal       = "Total number of badge unlocks by badge"
	HelpTextSeedsPlantedTotal       = "Total number of seeds planted by kind"
	HelpTextLedgerPurgedTotal       = "Total number of watering records purged by retention sweeps"

	HelpTextStatusCacheHits   = "Watering status cache hits"
	HelpTextStatusCacheMisses = "Watering status cache misses"

	HelpTextEventsPublished    = "Total number of events published by type"
	HelpTextEventHandlerErrors = "Total number of event handler errors by type"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
	LabelKind   = "kind"
	LabelBadge  = "badge"
	LabelType   = "type"
)

// Rejection reason label values
const (
	ReasonAlreadyWatered    = "already_watered_today"
	ReasonAlreadyBloomed    = "already_bloomed"
	ReasonAtCapacity        = "at_capacity"
	ReasonLedgerUnavailable = "ledger_unavailable"
	ReasonConflictExhausted = "conflict_retries_exhausted"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
