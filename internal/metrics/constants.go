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
)

// Item lifecycle metric names
const (
	MetricNameItemsCreated         = "items_created_total"
	MetricNameItemUpdates          = "item_updates_total"
	MetricNameItemConflicts        = "item_conflicts_total"
	MetricNameCustomIDEdits        = "custom_id_edits_total"
	MetricNameIDGenerationDuration = "id_generation_duration_seconds"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextItemsCreated         = "Total number of items created"
	HelpTextItemUpdates          = "Total number of committed item updates"
	HelpTextItemConflicts        = "Total number of rejected item writes by conflict kind"
	HelpTextCustomIDEdits        = "Total number of custom ID edits by outcome"
	HelpTextIDGenerationDuration = "Time spent generating a custom ID in seconds"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// Conflict kinds
const (
	ConflictSequence = "sequence"
	ConflictCustomID = "custom_id"
	ConflictVersion  = "version"
)

// Custom ID edit outcomes
const (
	EditOutcomeAccepted = "accepted"
	EditOutcomeRejected = "rejected"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// GenerationBuckets range from 1µs to 10ms
var GenerationBuckets = []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005, .01}

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
