// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_db_query_errors_total",
			Help: "Total number of database query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wardrobe_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode", "result"}, // result: "success", "invalid", "error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_recommendation_duration_seconds",
			Help:    "Recommendation latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"mode"},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wardrobe_recommendation_candidates",
			Help:    "Number of outfits surviving the filter pipeline per request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	RecommendationReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wardrobe_recommendation_returned",
			Help:    "Number of outfits returned per request",
			Buckets: []float64{0, 1, 3, 5, 10, 20, 50},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_recommendation_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_recommendation_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	RecommendationCacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_recommendation_cache_invalidations_total",
			Help: "Total number of recommendation cache invalidations",
		},
	)

	// Ledger Metrics
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_ledger_operations_total",
			Help: "Total number of worn-history ledger operations",
		},
		[]string{"operation", "result"}, // result: "created", "duplicate", "removed", "not_found", "error"
	)

	LedgerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_ledger_duration_seconds",
			Help:    "Worn-history ledger operation latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_events_published_total",
			Help: "Total number of history events published",
		},
		[]string{"topic"},
	)

	EventsPublishFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_events_publish_failed_total",
			Help: "Total number of history events that failed to publish",
		},
		[]string{"topic"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_events_consumed_total",
			Help: "Total number of history events handled by subscribers",
		},
		[]string{"topic", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wardrobe_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wardrobe_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// maxErrorLabelLen bounds the cardinality of error_type labels.
const maxErrorLabelLen = 50

// RecordDBQuery records a database query metric.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		if len(errorType) > maxErrorLabelLen {
			errorType = errorType[:maxErrorLabelLen]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request.
// result is "success", "invalid" or "error".
func RecordRecommendation(mode, result string, candidates, returned int, duration time.Duration) {
	RecommendationRequests.WithLabelValues(mode, result).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if result == "success" {
		RecommendationCandidates.Observe(float64(candidates))
		RecommendationReturned.Observe(float64(returned))
	}
}

// RecordRecommendationCache records a response cache lookup.
func RecordRecommendationCache(hit bool) {
	if hit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordLedgerOperation records a ledger mutation and its outcome.
func RecordLedgerOperation(operation, result string, duration time.Duration) {
	LedgerOperations.WithLabelValues(operation, result).Inc()
	LedgerDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEventPublish records the outcome of publishing one event.
func RecordEventPublish(topic string, err error) {
	if err != nil {
		EventsPublishFailed.WithLabelValues(topic).Inc()
		return
	}
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventConsumed records a subscriber handling one event.
func RecordEventConsumed(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(topic, result).Inc()
}

// Circuit breaker state values for CircuitBreakerState.
const (
	CircuitClosed   = 0
	CircuitHalfOpen = 1
	CircuitOpen     = 2
)

// RecordCircuitBreakerTransition records a state change and updates the state gauge.
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerRequest records a request outcome through a breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
