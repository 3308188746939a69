// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes used as the "outcome" label.
const (
	OutcomeSuccess           = "success"
	OutcomeItemNotFound      = "item_not_found"
	OutcomeCorpusUnavailable = "corpus_unavailable"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeInternal          = "internal"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total recommendation engine operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RecommendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation engine operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	RecommendFitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_fit_duration_seconds",
			Help:    "Time spent fitting the TF-IDF vector spaces for one snapshot",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RecommendVocabularyTerms = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommend_vocabulary_terms",
			Help: "Vocabulary size of the published vector spaces",
		},
		[]string{"space"}, // "similarity", "criteria"
	)

	RecommendCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_cache_lookups_total",
			Help: "Similar-movie result cache lookups",
		},
		[]string{"result"}, // "hit", "miss"
	)

	RecommendSnapshotVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_snapshot_version",
			Help: "Version of the currently published snapshot",
		},
	)

	// Corpus Metrics
	CorpusItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "corpus_items",
			Help: "Number of movies in the published corpus",
		},
	)

	CorpusSkippedRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "corpus_skipped_rows_total",
			Help: "Total malformed corpus rows skipped during loads",
		},
	)

	CorpusLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "corpus_loads_total",
			Help: "Total corpus load attempts",
		},
		[]string{"source", "result"}, // result: "success", "error"
	)

	CorpusLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "corpus_load_duration_seconds",
			Help:    "Duration of corpus loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one engine operation and its outcome.
func RecordRecommendation(operation, outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(operation, outcome).Inc()
	RecommendDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheLookup counts one result cache lookup.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	RecommendCacheLookups.WithLabelValues("miss").Inc()
}

// RecordSnapshot publishes the gauges describing a freshly fitted snapshot.
func RecordSnapshot(version int64, items, similarityTerms, criteriaTerms int, fit time.Duration) {
	RecommendSnapshotVersion.Set(float64(version))
	CorpusItems.Set(float64(items))
	RecommendVocabularyTerms.WithLabelValues("similarity").Set(float64(similarityTerms))
	RecommendVocabularyTerms.WithLabelValues("criteria").Set(float64(criteriaTerms))
	RecommendFitDuration.Observe(fit.Seconds())
}

// RecordCorpusLoad records a corpus load attempt against a named source.
func RecordCorpusLoad(source string, skippedRows int, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	CorpusLoads.WithLabelValues(source, result).Inc()
	CorpusLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if skippedRows > 0 {
		CorpusSkippedRows.Add(float64(skippedRows))
	}
}
