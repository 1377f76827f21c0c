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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Simulation metric names
const (
	MetricNameTicksProcessed     = "simulation_ticks_total"
	MetricNameTickDuration       = "simulation_tick_duration_seconds"
	MetricNameVillageEvents      = "village_events_generated_total"
	MetricNameEventsResolved     = "village_events_resolved_total"
	MetricNameCrisesDetected     = "village_crises_detected_total"
	MetricNameCrisisLevel        = "village_crisis_level"
	MetricNameTradesExecuted     = "village_trades_total"
	MetricNameTradeProfit        = "village_trade_profit_total"
	MetricNameNarrativeFallbacks = "narrative_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Simulation metric help text
const (
	HelpTextTicksProcessed     = "Total number of simulation ticks processed"
	HelpTextTickDuration       = "Simulation tick latency in seconds"
	HelpTextVillageEvents      = "Total number of village events generated"
	HelpTextEventsResolved     = "Total number of village events resolved"
	HelpTextCrisesDetected     = "Total number of resource crises detected"
	HelpTextCrisisLevel        = "Current aggregate crisis level per village (0-100)"
	HelpTextTradesExecuted     = "Total number of trade executions"
	HelpTextTradeProfit        = "Cumulative net profit from executed trades, in gold"
	HelpTextNarrativeFallbacks = "Total number of narrative requests served from fallback text"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelVillage  = "village_id"
	LabelCategory = "category"
	LabelSeverity = "severity"
	LabelOutcome  = "outcome"
	LabelSuccess  = "success"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// TickLatencyBuckets covers the expected range of a full village tick,
// including narrative round-trips on the slow end.
var TickLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
