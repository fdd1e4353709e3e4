package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Classification metric names
const (
	MetricNameItemsClassified = "items_classified_total"
	MetricNameIconFallbacks   = "icon_fallbacks_total"
	MetricNameCacheLookups    = "classification_cache_lookups_total"
)

// Power slot metric names
const (
	MetricNamePowerTransitions = "power_slot_transitions_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextItemsClassified      = "Total number of item records classified, by slot type"
	HelpTextIconFallbacks        = "Total number of classifications that fell back to a generic icon"
	HelpTextCacheLookups         = "Total number of classification cache lookups, by result"
	HelpTextPowerTransitions     = "Total number of power slot transitions, by event and outcome"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelSlotType = "slot_type"
	LabelResult   = "result"
	LabelEvent    = "event"
	LabelOutcome  = "outcome"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
