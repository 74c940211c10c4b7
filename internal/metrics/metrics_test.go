// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	mlBefore := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ml"))
	rulesBefore := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("rules"))
	warningsBefore := testutil.ToFloat64(DataQualityWarnings)

	RecordRecommendation(true, 10, false, 5*time.Millisecond)
	RecordRecommendation(false, 5, true, 2*time.Millisecond)

	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("ml")); got != mlBefore+1 {
		t.Errorf("ml counter = %f, want %f", got, mlBefore+1)
	}
	if got := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("rules")); got != rulesBefore+1 {
		t.Errorf("rules counter = %f, want %f", got, rulesBefore+1)
	}
	if got := testutil.ToFloat64(DataQualityWarnings); got != warningsBefore+1 {
		t.Errorf("warnings counter = %f, want %f", got, warningsBefore+1)
	}
}

func TestRecordPredictorCall(t *testing.T) {
	successBefore := testutil.ToFloat64(PredictorCalls.WithLabelValues("crops", "success"))
	errorBefore := testutil.ToFloat64(PredictorCalls.WithLabelValues("crops", "error"))

	RecordPredictorCall("crops", 10*time.Millisecond, nil)
	RecordPredictorCall("crops", 10*time.Millisecond, errors.New("timeout"))

	if got := testutil.ToFloat64(PredictorCalls.WithLabelValues("crops", "success")); got != successBefore+1 {
		t.Errorf("success counter = %f, want %f", got, successBefore+1)
	}
	if got := testutil.ToFloat64(PredictorCalls.WithLabelValues("crops", "error")); got != errorBefore+1 {
		t.Errorf("error counter = %f, want %f", got, errorBefore+1)
	}
}

func TestRecordFallback(t *testing.T) {
	before := testutil.ToFloat64(PredictorFallbacks)
	RecordFallback()
	if got := testutil.ToFloat64(PredictorFallbacks); got != before+1 {
		t.Errorf("fallback counter = %f, want %f", got, before+1)
	}
}

func TestSetBreakerOpen(t *testing.T) {
	SetBreakerOpen(true)
	if got := testutil.ToFloat64(PredictorBreakerState); got != 1 {
		t.Errorf("breaker gauge = %f, want 1", got)
	}
	SetBreakerOpen(false)
	if got := testutil.ToFloat64(PredictorBreakerState); got != 0 {
		t.Errorf("breaker gauge = %f, want 0", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))

	RecordAPIRequest("POST", "/api/v1/recommendations", 200, 20*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200")); got != before+1 {
		t.Errorf("api counter = %f, want %f", got, before+1)
	}
}
