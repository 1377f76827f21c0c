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

// Simulation Metrics
var (
	TicksProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTicksProcessed,
			Help: HelpTextTicksProcessed,
		},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	VillageEventsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVillageEvents,
			Help: HelpTextVillageEvents,
		},
		[]string{LabelCategory, LabelSeverity},
	)

	VillageEventsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsResolved,
			Help: HelpTextEventsResolved,
		},
		[]string{LabelOutcome},
	)

	CrisesDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrisesDetected,
			Help: HelpTextCrisesDetected,
		},
		[]string{LabelType, LabelSeverity},
	)

	CrisisLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCrisisLevel,
			Help: HelpTextCrisisLevel,
		},
		[]string{LabelVillage},
	)

	TradesExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTradesExecuted,
			Help: HelpTextTradesExecuted,
		},
		[]string{LabelSuccess},
	)

	TradeProfit = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradeProfit,
			Help: HelpTextTradeProfit,
		},
	)

	NarrativeFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNarrativeFallbacks,
			Help: HelpTextNarrativeFallbacks,
		},
	)
)
