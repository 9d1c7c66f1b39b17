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

// Business Metrics
var (
	ReviewsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReviewsSubmitted,
			Help: HelpTextReviewsSubmitted,
		},
	)

	ReviewsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReviewsUpdated,
			Help: HelpTextReviewsUpdated,
		},
	)

	ReviewsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReviewsDeleted,
			Help: HelpTextReviewsDeleted,
		},
	)

	ArchivesMaterialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameArchivesMaterialized,
			Help: HelpTextArchivesMaterialized,
		},
		[]string{LabelOutcome},
	)

	ArchivePatches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameArchivePatches,
			Help: HelpTextArchivePatches,
		},
	)

	GenresNormalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGenresNormalized,
			Help: HelpTextGenresNormalized,
		},
	)

	GenreCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGenreCacheHits,
			Help: HelpTextGenreCacheHits,
		},
	)

	GenreCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGenreCacheMisses,
			Help: HelpTextGenreCacheMisses,
		},
	)
)
