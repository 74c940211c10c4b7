// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"fmt"
	"math"
)

// weightSumTolerance is the allowed deviation of the weight sum from 1.0.
const weightSumTolerance = 0.001

// Weights defines the contribution of each component to the composite score.
// Unlike normalized algorithm weights, these are policy: they must sum to 1.0
// and are rejected otherwise.
type Weights struct {
	// Compatibility weighs the rule-based or ML confidence score.
	Compatibility float64 `json:"compatibility" koanf:"compatibility"`

	// Profit weighs the profit score normalized across the candidate set.
	Profit float64 `json:"profit" koanf:"profit"`

	// Sustainability weighs the environmental composite.
	Sustainability float64 `json:"sustainability" koanf:"sustainability"`

	// Rotation weighs the crop-rotation score.
	Rotation float64 `json:"rotation" koanf:"rotation"`

	// Risk weighs (1 - risk_factor) * 100, so lower-risk crops score higher.
	Risk float64 `json:"risk" koanf:"risk"`
}

// DefaultWeights returns the standard composite weighting policy.
func DefaultWeights() Weights {
	return Weights{
		Compatibility:  0.35,
		Profit:         0.25,
		Sustainability: 0.20,
		Rotation:       0.15,
		Risk:           0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Compatibility + w.Profit + w.Sustainability + w.Rotation + w.Risk
}

// Validate rejects weight sets that do not sum to 1.0 within tolerance or
// contain negative entries.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"compatibility":  w.Compatibility,
		"profit":         w.Profit,
		"sustainability": w.Sustainability,
		"rotation":       w.Rotation,
		"risk":           w.Risk,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %f", name, v)
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %f", sum)
	}
	return nil
}

// Config contains the engine's operational parameters.
type Config struct {
	// Weights is the composite weighting policy.
	Weights Weights `json:"weights" koanf:"weights"`

	// DefaultK is the number of candidates returned when the request does
	// not specify one. Default: 10.
	DefaultK int `json:"default_k" koanf:"default_k"`

	// MaxK caps the requested candidate count. Default: 12.
	MaxK int `json:"max_k" koanf:"max_k"`

	// RotationYears is the history lookback window. Default: 3.
	RotationYears int `json:"rotation_years" koanf:"rotation_years"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		Weights:       DefaultWeights(),
		DefaultK:      10,
		MaxK:          12,
		RotationYears: 3,
	}
}

// Validate checks the configuration. Failures here are fatal at startup and
// never surface at request time.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", c.DefaultK)
	}
	if c.MaxK < c.DefaultK {
		return fmt.Errorf("max_k must be >= default_k, got %d < %d", c.MaxK, c.DefaultK)
	}
	if c.RotationYears < 1 {
		return fmt.Errorf("rotation_years must be positive, got %d", c.RotationYears)
	}
	return nil
}
