// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
	"github.com/vikasreddy148/CropRecommendation/internal/engine"
)

// testEnvelope mirrors the response envelope with raw data for per-test
// decoding.
type testEnvelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
	Error *apiError `json:"error"`
}

func newTestRouter(t *testing.T, cfg RouterConfig) http.Handler {
	t.Helper()

	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error: %v", err)
	}

	eng, err := engine.NewEngine(engine.DefaultConfig(), cat, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	return NewRouter(NewHandler(eng, cat, false, zerolog.Nop()), cfg)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, env
}

func TestRecommendations(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	body := `{
		"conditions": {"latitude": 28.6, "longitude": 77.2, "ph": 6.8},
		"season": "rabi",
		"k": 3
	}`

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header is empty")
	}

	var resp engine.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(resp.Candidates) != 3 {
		t.Errorf("got %d candidates, want 3", len(resp.Candidates))
	}
	if resp.TotalCandidates != 12 {
		t.Errorf("TotalCandidates = %d, want 12", resp.TotalCandidates)
	}
	if resp.Season != catalog.SeasonRabi {
		t.Errorf("Season = %q, want rabi", resp.Season)
	}
	if resp.MLUsed {
		t.Error("MLUsed = true without a predictor")
	}
}

func TestRecommendations_EmptyBodyConditions(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	// No measurements at all is a valid request served from neutral defaults.
	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", `{"conditions": {}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp engine.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !resp.DataQualityWarning {
		t.Error("DataQualityWarning = false for fully defaulted request")
	}
}

func TestRecommendations_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "INVALID_JSON" {
		t.Errorf("error = %+v, want INVALID_JSON", env.Error)
	}
}

func TestRecommendations_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ph out of range", `{"conditions": {"ph": 20}}`},
		{"bad latitude", `{"conditions": {"latitude": 200}}`},
		{"unknown season", `{"conditions": {}, "season": "monsoon"}`},
		{"k too large", `{"conditions": {}, "k": 100}`},
		{"history missing crop name", `{"conditions": {}, "history": [{"year": 2025}]}`},
		{"history bad year", `{"conditions": {}, "history": [{"crop_name": "Rice", "year": 99}]}`},
	}

	router := newTestRouter(t, RouterConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400\nbody: %s", rec.Code, rec.Body.String())
			}
			if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
			}
		})
	}
}

func TestRecommendations_HistoryLowersRotation(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	body := `{
		"conditions": {"latitude": 28.6, "longitude": 77.2},
		"season": "rabi",
		"history": [{"crop_name": "Wheat", "season": "rabi", "year": 2025}],
		"k": 12
	}`

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/recommendations", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var resp engine.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	for _, c := range resp.Candidates {
		if c.CropName != "Wheat" {
			continue
		}
		if c.Rotation.Score >= 100 {
			t.Errorf("Wheat rotation score = %f after Wheat history, want < 100", c.Rotation.Score)
		}
		return
	}
	t.Fatal("Wheat not found in candidates")
}

func TestRecommendations_RequestIDPropagation(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
		strings.NewReader(`{"conditions": {}}`))
	req.Header.Set("X-Request-ID", "req-propagated-7")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-propagated-7" {
		t.Errorf("X-Request-ID = %q, want req-propagated-7", got)
	}

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Metadata.RequestID != "req-propagated-7" {
		t.Errorf("metadata request_id = %q, want req-propagated-7", env.Metadata.RequestID)
	}

	var resp engine.Response
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.RequestID != "req-propagated-7" {
		t.Errorf("response request_id = %q, want req-propagated-7", resp.RequestID)
	}
}

func TestCrops(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/crops", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp cropsResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if resp.Total != 12 || len(resp.Crops) != 12 {
		t.Errorf("total = %d, len = %d, want 12", resp.Total, len(resp.Crops))
	}

	found := false
	for _, c := range resp.Crops {
		if c.Name == "Rice" {
			found = true
			if c.Family != catalog.FamilyCereal {
				t.Errorf("Rice family = %q, want cereal", c.Family)
			}
		}
	}
	if !found {
		t.Error("Rice missing from crop listing")
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status healthStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("status = %q, want healthy", status.Status)
	}
	if status.CatalogSize != 12 {
		t.Errorf("catalog_size = %d, want 12", status.CatalogSize)
	}
	if status.MLPredictorEnabled {
		t.Error("ml_predictor_enabled = true, want false")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	rec, env := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	// Serve one API request so the endpoint metrics exist.
	doJSON(t, router, http.MethodGet, "/api/v1/health", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("metrics output missing api_requests_total")
	}
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, RouterConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})

	for i := 0; i < 2; i++ {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != "RATE_LIMITED" {
		t.Errorf("error = %+v, want RATE_LIMITED", env.Error)
	}
}

func TestRateLimit_DisabledWhenZero(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	for i := 0; i < 20; i++ {
		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, RouterConfig{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
