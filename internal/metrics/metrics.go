// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package metrics provides Prometheus instrumentation for the recommendation
// pipeline and the API surface. Metrics are registered with promauto against
// the default registry and exposed at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation pipeline metrics.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"strategy"}, // "ml", "rules"
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates_returned",
			Help:    "Number of candidates returned per request",
			Buckets: []float64{1, 3, 5, 10, 12},
		},
	)

	DataQualityWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_data_quality_warnings_total",
			Help: "Total number of requests served with estimated field data",
		},
	)

	// ML predictor client metrics.
	PredictorCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictor_calls_total",
			Help: "Total number of ML predictor calls",
		},
		[]string{"operation", "outcome"}, // operation: "crops", "yield"; outcome: "success", "error"
	)

	PredictorCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "predictor_call_duration_seconds",
			Help:    "Duration of ML predictor calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	PredictorFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "predictor_fallbacks_total",
			Help: "Total number of requests that fell back to rule-based scoring",
		},
	)

	PredictorBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "predictor_circuit_breaker_open",
			Help: "1 when the predictor circuit breaker is open, 0 otherwise",
		},
	)

	// API endpoint metrics.
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
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(mlUsed bool, candidates int, dataQualityWarning bool, duration time.Duration) {
	strategy := "rules"
	if mlUsed {
		strategy = "ml"
	}
	RecommendationsTotal.WithLabelValues(strategy).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationCandidates.Observe(float64(candidates))
	if dataQualityWarning {
		DataQualityWarnings.Inc()
	}
}

// RecordPredictorCall records one ML predictor call.
func RecordPredictorCall(operation string, duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	PredictorCalls.WithLabelValues(operation, outcome).Inc()
	PredictorCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFallback records a whole-request fallback to rule-based scoring.
func RecordFallback() {
	PredictorFallbacks.Inc()
}

// SetBreakerOpen publishes the predictor circuit breaker state.
func SetBreakerOpen(open bool) {
	if open {
		PredictorBreakerState.Set(1)
	} else {
		PredictorBreakerState.Set(0)
	}
}

// RecordAPIRequest records one handled API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
