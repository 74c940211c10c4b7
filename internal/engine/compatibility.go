// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"fmt"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// Fixed penalties per mismatched factor.
const (
	penaltyPHMinor     = 10 // within phTolerance of a bound
	penaltyPHMajor     = 20
	penaltyNutrient    = 15 // per nutrient below minimum
	penaltyMoisture    = 10
	penaltyTemperature = 15
	penaltyRainfall    = 10
	penaltySeason      = 20
	phTolerance        = 0.5
)

// CompatibilityResult is the rule-based fit between field conditions and one
// crop's requirements.
type CompatibilityResult struct {
	// Score is in [0, 100].
	Score float64

	// Reasons itemizes every deduction plus a qualitative headline, in
	// stable factor order: headline, pH, N, P, K, moisture, temperature,
	// rainfall, season.
	Reasons []string

	// MatchDetails maps each factor to optimal/acceptable/poor,
	// sufficient/deficient, or suitable/unsuitable.
	MatchDetails map[string]string
}

// ScoreCompatibility computes the deterministic rule-based confidence score
// for one crop. Same inputs always produce the same score and the same
// reasons in the same order.
func ScoreCompatibility(cond FieldConditions, profile *catalog.CropProfile, season catalog.Season) CompatibilityResult {
	score := 100.0
	reasons := make([]string, 0, 8)
	details := make(map[string]string, 8)

	// pH
	switch {
	case cond.PH >= profile.PHMin && cond.PH <= profile.PHMax:
		details["ph"] = "optimal"
	case cond.PH >= profile.PHMin-phTolerance && cond.PH <= profile.PHMax+phTolerance:
		score -= penaltyPHMinor
		details["ph"] = "acceptable"
		reasons = append(reasons, fmt.Sprintf("pH %.1f slightly outside optimal range %.1f-%.1f", cond.PH, profile.PHMin, profile.PHMax))
	default:
		score -= penaltyPHMajor
		details["ph"] = "poor"
		reasons = append(reasons, fmt.Sprintf("pH %.1f outside optimal range %.1f-%.1f", cond.PH, profile.PHMin, profile.PHMax))
	}

	// Nutrients
	nutrients := []struct {
		key   string
		label string
		value float64
		min   float64
	}{
		{"n", "nitrogen", cond.N, profile.NMin},
		{"p", "phosphorus", cond.P, profile.PMin},
		{"k", "potassium", cond.K, profile.KMin},
	}
	for _, nu := range nutrients {
		if nu.value >= nu.min {
			details[nu.key] = "sufficient"
			continue
		}
		score -= penaltyNutrient
		details[nu.key] = "deficient"
		reasons = append(reasons, fmt.Sprintf("%s %.0f kg/ha below minimum %.0f kg/ha", nu.label, nu.value, nu.min))
	}

	// Moisture
	if cond.Moisture >= profile.MoistureMin {
		details["moisture"] = "sufficient"
	} else {
		score -= penaltyMoisture
		details["moisture"] = "deficient"
		reasons = append(reasons, fmt.Sprintf("moisture %.0f%% below minimum %.0f%%", cond.Moisture, profile.MoistureMin))
	}

	// Temperature
	if cond.Temperature >= profile.TemperatureMin && cond.Temperature <= profile.TemperatureMax {
		details["temperature"] = "optimal"
	} else {
		score -= penaltyTemperature
		details["temperature"] = "poor"
		reasons = append(reasons, fmt.Sprintf("temperature %.1f°C outside optimal range %.1f-%.1f°C", cond.Temperature, profile.TemperatureMin, profile.TemperatureMax))
	}

	// Rainfall
	if cond.Rainfall >= profile.RainfallMin {
		details["rainfall"] = "sufficient"
	} else {
		score -= penaltyRainfall
		details["rainfall"] = "deficient"
		reasons = append(reasons, fmt.Sprintf("rainfall %.0f mm below minimum %.0f mm", cond.Rainfall, profile.RainfallMin))
	}

	// Season
	if profile.GrowsIn(season) {
		details["season"] = "suitable"
	} else {
		score -= penaltySeason
		details["season"] = "unsuitable"
		reasons = append(reasons, fmt.Sprintf("season %s not ideal for %s", season, profile.Name))
	}

	if score < 0 {
		score = 0
	}

	reasons = append([]string{compatibilityHeadline(score)}, reasons...)

	return CompatibilityResult{
		Score:        score,
		Reasons:      reasons,
		MatchDetails: details,
	}
}

// compatibilityHeadline maps a score to its qualitative band.
func compatibilityHeadline(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match for current conditions"
	case score >= 60:
		return "Good match for current conditions"
	case score >= 40:
		return "Moderate match - some conditions need improvement"
	default:
		return "Poor match - significant improvements needed"
	}
}
