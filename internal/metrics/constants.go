package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "gamevault_http_requests_total"
	MetricNameHTTPRequestDuration  = "gamevault_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "gamevault_http_requests_in_flight"
)

// Business metric names
const (
	MetricNameReviewsSubmitted     = "gamevault_reviews_submitted_total"
	MetricNameReviewsUpdated       = "gamevault_reviews_updated_total"
	MetricNameReviewsDeleted       = "gamevault_reviews_deleted_total"
	MetricNameArchivesMaterialized = "gamevault_archives_materialized_total"
	MetricNameArchivePatches       = "gamevault_archive_patches_total"
	MetricNameGenresNormalized     = "gamevault_genres_normalized_total"
	MetricNameGenreCacheHits       = "gamevault_genre_cache_hits_total"
	MetricNameGenreCacheMisses     = "gamevault_genre_cache_misses_total"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextReviewsSubmitted     = "Total number of reviews submitted"
	HelpTextReviewsUpdated       = "Total number of reviews updated"
	HelpTextReviewsDeleted       = "Total number of reviews deleted"
	HelpTextArchivesMaterialized = "Total number of archive snapshots materialized, by outcome"
	HelpTextArchivePatches       = "Total number of archive snapshot patches applied"
	HelpTextGenresNormalized     = "Total number of genre normalization calls"
	HelpTextGenreCacheHits       = "Total number of genre cache hits"
	HelpTextGenreCacheMisses     = "Total number of genre cache misses"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
