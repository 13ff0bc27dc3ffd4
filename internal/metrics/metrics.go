// Cinequiz - Movie Recommendation Quiz
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry at package init via
// promauto; callers use the Record* helpers rather than touching the
// collectors directly.
//
//	curl http://localhost:8080/metrics | grep cinequiz_
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinequiz_api_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinequiz_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinequiz_api_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)

	// Catalog metrics
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinequiz_catalog_load_total",
			Help: "Catalog load attempts by source and result",
		},
		[]string{"source", "result"}, // result: "success", "failure"
	)

	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinequiz_catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinequiz_catalog_load_duration_seconds",
			Help:    "Time spent fetching and indexing the catalog",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Circuit breaker metrics (remote catalog source)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinequiz_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinequiz_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinequiz_circuit_breaker_requests_total",
			Help: "Requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	// Recommendation metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinequiz_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"}, // "ok", "empty", "catalog_unavailable"
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinequiz_scoring_duration_seconds",
			Help:    "Time spent scoring and ranking one answer set",
			Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	VetoedMovies = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinequiz_vetoed_movies_total",
			Help: "Movies vetoed by the avoid list across all scoring runs",
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinequiz_recommend_cache_hits_total",
			Help: "Recommendation results served from cache",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cinequiz_recommend_cache_misses_total",
			Help: "Recommendation results computed from scratch",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogLoad records the outcome of a catalog load.
func RecordCatalogLoad(source string, movies int, duration time.Duration, err error) {
	CatalogLoadDuration.Observe(duration.Seconds())
	if err != nil {
		CatalogLoads.WithLabelValues(source, "failure").Inc()
		CatalogSize.Set(0)
		return
	}
	CatalogLoads.WithLabelValues(source, "success").Inc()
	CatalogSize.Set(float64(movies))
}

// RecordRecommendation records one scoring pass.
func RecordRecommendation(outcome string, duration time.Duration, vetoed int) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if duration > 0 {
		ScoringDuration.Observe(duration.Seconds())
	}
	if vetoed > 0 {
		VetoedMovies.Add(float64(vetoed))
	}
}

// RecordCacheLookup records a recommendation cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}
