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
)

// Item lifecycle Metrics
var (
	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
	)

	ItemUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemUpdates,
			Help: HelpTextItemUpdates,
		},
	)

	ItemConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemConflicts,
			Help: HelpTextItemConflicts,
		},
		[]string{LabelKind},
	)

	CustomIDEdits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCustomIDEdits,
			Help: HelpTextCustomIDEdits,
		},
		[]string{LabelOutcome},
	)

	IDGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameIDGenerationDuration,
			Help:    HelpTextIDGenerationDuration,
			Buckets: GenerationBuckets,
		},
	)
)
