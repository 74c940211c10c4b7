// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package predictor implements the engine.Predictor boundary against an
// external ML prediction service over HTTP, with circuit breaker protection.
//
// Every failure mode, transport error, non-200 response, malformed body, or
// open circuit, surfaces as engine.ErrPredictorUnavailable so the engine
// falls back to rule-based scoring uniformly.
package predictor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/vikasreddy148/CropRecommendation/internal/engine"
	"github.com/vikasreddy148/CropRecommendation/internal/metrics"
)

// Options configures the prediction service client.
type Options struct {
	// URL is the prediction service base URL, e.g. http://ml.internal:5000.
	URL string

	// Timeout bounds a single prediction call. Default: 5s.
	Timeout time.Duration

	// MaxFailures opens the circuit after this many consecutive failures.
	// Default: 5.
	MaxFailures uint32

	// Cooldown is how long the circuit stays open before a probe request.
	// Default: 30s.
	Cooldown time.Duration

	Logger zerolog.Logger
}

// Client calls the ML prediction service. It implements engine.Predictor.
//
// The circuit breaker uses real time for its cooldown; tests exercise the
// HTTP paths against httptest servers and the breaker against scripted
// failures.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[any]
	logger  zerolog.Logger
}

// NewClient builds a prediction service client.
func NewClient(opts Options) (*Client, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("prediction service URL is empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = 30 * time.Second
	}

	logger := opts.Logger.With().Str("component", "predictor").Logger()

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "ml-predictor",
		MaxRequests: 1,
		Timeout:     opts.Cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.MaxFailures
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			logger.Info().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("predictor circuit breaker state change")
			metrics.SetBreakerOpen(to == gobreaker.StateOpen)
		},
	})

	return &Client{
		baseURL: opts.URL,
		http:    &http.Client{Timeout: opts.Timeout},
		cb:      cb,
		logger:  logger,
	}, nil
}

type predictCropsRequest struct {
	Features []float64 `json:"features"`
}

type predictCropsResponse struct {
	Predictions []engine.CropProbability `json:"predictions"`
}

type predictYieldRequest struct {
	CropName string    `json:"crop_name"`
	Features []float64 `json:"features"`
}

type predictYieldResponse struct {
	YieldKgPerHa float64 `json:"yield_kg_per_ha"`
}

// PredictCrops returns per-crop probabilities for the feature vector.
func (c *Client) PredictCrops(ctx context.Context, features []float64) ([]engine.CropProbability, error) {
	start := time.Now()
	result, err := c.cb.Execute(func() (any, error) {
		var resp predictCropsResponse
		if err := c.post(ctx, "/predict", predictCropsRequest{Features: features}, &resp); err != nil {
			return nil, err
		}
		return resp.Predictions, nil
	})
	metrics.RecordPredictorCall("crops", time.Since(start), err)
	if err != nil {
		return nil, unavailable(err)
	}

	predictions, ok := result.([]engine.CropProbability)
	if !ok {
		return nil, unavailable(fmt.Errorf("unexpected result type %T", result))
	}
	return predictions, nil
}

// PredictYield estimates yield in kg/ha for one crop.
func (c *Client) PredictYield(ctx context.Context, cropName string, features []float64) (float64, error) {
	start := time.Now()
	result, err := c.cb.Execute(func() (any, error) {
		var resp predictYieldResponse
		req := predictYieldRequest{CropName: cropName, Features: features}
		if err := c.post(ctx, "/predict_yield", req, &resp); err != nil {
			return nil, err
		}
		return resp.YieldKgPerHa, nil
	})
	metrics.RecordPredictorCall("yield", time.Since(start), err)
	if err != nil {
		return 0, unavailable(err)
	}

	yield, ok := result.(float64)
	if !ok {
		return 0, unavailable(fmt.Errorf("unexpected result type %T", result))
	}
	return yield, nil
}

// post performs one JSON request/response round trip.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// unavailable collapses any client failure into the engine's single
// predictor-unavailable signal, preserving the cause for logs.
func unavailable(err error) error {
	return fmt.Errorf("%w: %s", engine.ErrPredictorUnavailable, err)
}
