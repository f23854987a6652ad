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

// Shop Metrics
var (
	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNamePurchases, Help: HelpTextPurchases},
		[]string{LabelSource},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsBought, Help: HelpTextItemsBought},
		[]string{LabelSource},
	)

	SilverSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameSilverSpent, Help: HelpTextSilverSpent},
		[]string{LabelSource},
	)

	Sales = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameSales, Help: HelpTextSales},
	)

	SilverEarned = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameSilverEarned, Help: HelpTextSilverEarned},
	)

	Deliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameDeliveries, Help: HelpTextDeliveries},
		[]string{LabelMethod},
	)

	Restocks = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameRestocks, Help: HelpTextRestocks},
		[]string{LabelPool},
	)

	StockDrift = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameStockDrift, Help: HelpTextStockDrift},
	)
)

// World Metrics
var (
	VerbsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameVerbs, Help: HelpTextVerbs},
		[]string{LabelVerb},
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickLatencyBuckets,
		},
	)

	ActiveStreams = promauto.NewGauge(
		prometheus.GaugeOpts{Name: MetricNameActiveStreams, Help: HelpTextActiveStreams},
	)
)
