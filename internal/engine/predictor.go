// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"context"
	"errors"
)

// ErrPredictorUnavailable is the single signal for every predictor failure
// mode: model missing, transport error, circuit open. Callers never
// distinguish further; the whole request falls back to rule-based scoring.
var ErrPredictorUnavailable = errors.New("ml predictor unavailable")

// CropProbability is one entry of an ML crop prediction.
type CropProbability struct {
	CropName    string  `json:"crop_name"`
	Probability float64 `json:"probability"`
}

// Predictor is the ML model boundary. Implementations may block on model
// inference; the engine performs at most one PredictCrops call per request
// and never retries.
type Predictor interface {
	// PredictCrops returns per-crop probabilities for the feature vector,
	// ordered by descending probability.
	PredictCrops(ctx context.Context, features []float64) ([]CropProbability, error)

	// PredictYield estimates yield in kg/ha for one crop.
	PredictYield(ctx context.Context, cropName string, features []float64) (float64, error)
}

// FeatureNames is the fixed feature vector schema consumed by the trained
// models. Order is part of the model contract and must not change.
var FeatureNames = []string{
	"ph", "moisture", "n", "p", "k",
	"temperature", "rainfall", "humidity",
	"np_ratio", "nk_ratio", "pk_ratio", "total_nutrients",
	"n_sufficient", "p_sufficient", "k_sufficient",
	"lat_norm", "lon_norm",
	"ph_category", "temp_category", "rainfall_category",
}

// Sufficiency thresholds for the engineered indicator features.
const (
	nSufficientThreshold = 100
	pSufficientThreshold = 30
	kSufficientThreshold = 50
)

// epsilon guards the engineered ratio features against zero denominators.
const epsilon = 1e-6

// FeatureVector builds the fixed-order numeric vector for the ML models from
// resolved conditions. The schema is FeatureNames.
func FeatureVector(res ResolvedConditions) []float64 {
	c := res.Values

	latNorm, lonNorm := 0.5, 0.5
	if res.LocationKnown {
		latNorm = clamp01((c.Latitude - latMin) / (latMax - latMin))
		lonNorm = clamp01((c.Longitude - lonMin) / (lonMax - lonMin))
	}

	return []float64{
		c.PH, c.Moisture, c.N, c.P, c.K,
		c.Temperature, c.Rainfall, c.Humidity,
		c.N / (c.P + epsilon),
		c.N / (c.K + epsilon),
		c.P / (c.K + epsilon),
		c.N + c.P + c.K,
		boolFeature(c.N >= nSufficientThreshold),
		boolFeature(c.P >= pSufficientThreshold),
		boolFeature(c.K >= kSufficientThreshold),
		latNorm, lonNorm,
		phCategory(c.PH),
		temperatureCategory(c.Temperature),
		rainfallCategory(c.Rainfall),
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// phCategory encodes pH into acidic(0)/slightly acidic(1)/neutral(2)/alkaline(3).
func phCategory(ph float64) float64 {
	switch {
	case ph < 5.5:
		return 0
	case ph < 6.5:
		return 1
	case ph < 7.5:
		return 2
	default:
		return 3
	}
}

// temperatureCategory encodes temperature into cold(0)/moderate(1)/warm(2)/hot(3).
func temperatureCategory(t float64) float64 {
	switch {
	case t < 15:
		return 0
	case t < 25:
		return 1
	case t < 35:
		return 2
	default:
		return 3
	}
}

// rainfallCategory encodes rainfall into low(0)/moderate(1)/high(2)/very high(3).
func rainfallCategory(r float64) float64 {
	switch {
	case r < 400:
		return 0
	case r < 800:
		return 1
	case r < 1200:
		return 2
	default:
		return 3
	}
}
