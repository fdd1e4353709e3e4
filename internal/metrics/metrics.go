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

// Classification Metrics
var (
	ItemsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsClassified,
			Help: HelpTextItemsClassified,
		},
		[]string{LabelSlotType},
	)

	IconFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIconFallbacks,
			Help: HelpTextIconFallbacks,
		},
		[]string{LabelSlotType},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Power Slot Metrics
var (
	PowerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePowerTransitions,
			Help: HelpTextPowerTransitions,
		},
		[]string{LabelEvent, LabelOutcome},
	)
)
