// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"time"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// RawConditions carries the caller-supplied field, weather, and location
// measurements. Every value is optional; nil means "not measured".
type RawConditions struct {
	PH          *float64 `json:"ph,omitempty"`
	Moisture    *float64 `json:"moisture,omitempty"`
	N           *float64 `json:"n,omitempty"`
	P           *float64 `json:"p,omitempty"`
	K           *float64 `json:"k,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	Rainfall    *float64 `json:"rainfall,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// FieldConditions is a complete feature set with no gaps. Units: pH unitless,
// moisture and humidity in percent, N/P/K in kg/ha, temperature in Celsius,
// rainfall in mm.
type FieldConditions struct {
	PH          float64 `json:"ph"`
	Moisture    float64 `json:"moisture"`
	N           float64 `json:"n"`
	P           float64 `json:"p"`
	K           float64 `json:"k"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    float64 `json:"humidity"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// ResolvedConditions is the FeatureResolver output: complete conditions plus
// per-field provenance.
type ResolvedConditions struct {
	Values FieldConditions `json:"values"`

	// Defaulted lists the names of fields that were estimated rather than
	// measured, in schema order.
	Defaulted []string `json:"defaulted_fields"`

	// LocationKnown is false when latitude/longitude were unavailable and
	// fixed neutral defaults were used instead of location interpolation.
	LocationKnown bool `json:"location_known"`

	// DataQualityWarning is true when at least one value was estimated.
	DataQualityWarning bool `json:"data_quality_warning"`
}

// IsDefaulted reports whether the named field was estimated.
func (r *ResolvedConditions) IsDefaulted(field string) bool {
	for _, f := range r.Defaulted {
		if f == field {
			return true
		}
	}
	return false
}

// CropHistoryEntry records one past planting on a field. Entries are ordered
// oldest to newest.
type CropHistoryEntry struct {
	CropName string         `json:"crop_name"`
	Season   catalog.Season `json:"season"`
	Year     int            `json:"year"`

	// YieldAchieved is the realized yield in kg/ha, if recorded.
	YieldAchieved *float64 `json:"yield_achieved,omitempty"`
}

// Request is one recommendation request. Conditions and history are built
// fresh per call from caller data; the engine does not retain them.
type Request struct {
	Conditions RawConditions      `json:"conditions"`
	History    []CropHistoryEntry `json:"history,omitempty"`

	// Season overrides the calendar-derived season when set.
	Season catalog.Season `json:"season,omitempty"`

	// WaterAvailability is the available irrigation water in liters/ha,
	// if known. It refines the sustainability water sub-score.
	WaterAvailability *float64 `json:"water_availability,omitempty"`

	// K is the number of candidates to return. Zero or negative means the
	// configured default.
	K int `json:"k,omitempty"`

	// RequestID is a caller-supplied identifier for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// ProfitBreakdown itemizes the revenue/cost/profit projection for one crop.
// All monetary values are rounded to two decimals.
type ProfitBreakdown struct {
	MarketPricePerKg   float64 `json:"market_price_per_kg"`
	Revenue            float64 `json:"revenue"`
	InputCosts         float64 `json:"input_costs"`
	LaborCosts         float64 `json:"labor_costs"`
	TotalCosts         float64 `json:"total_costs"`
	GrossProfit        float64 `json:"gross_profit"`
	RiskFactor         float64 `json:"risk_factor"`
	RiskAdjustedProfit float64 `json:"risk_adjusted_profit"`
	ProfitMarginPct    float64 `json:"profit_margin_pct"`
	ROIPct             float64 `json:"roi_pct"`
}

// SustainabilityBreakdown itemizes the environmental composite. Each sub-score
// is in [0, 25]; Total is their sum in [0, 100]. The percentage fields are
// sub-score/25*100, precomputed for presentation layers.
type SustainabilityBreakdown struct {
	WaterScore           float64 `json:"water_score"`
	WaterScorePct        float64 `json:"water_score_pct"`
	SoilScore            float64 `json:"soil_score"`
	SoilScorePct         float64 `json:"soil_score_pct"`
	CarbonScore          float64 `json:"carbon_score"`
	CarbonScorePct       float64 `json:"carbon_score_pct"`
	BiodiversityScore    float64 `json:"biodiversity_score"`
	BiodiversityScorePct float64 `json:"biodiversity_score_pct"`
	Total                float64 `json:"total"`
}

// RotationBreakdown is the crop-rotation analysis for one candidate.
type RotationBreakdown struct {
	Score    float64  `json:"score"`
	Benefits []string `json:"benefits"`
	Concerns []string `json:"concerns"`

	// BeneficialSequences counts recognized beneficial predecessor matches
	// in the history window.
	BeneficialSequences int `json:"beneficial_sequences"`

	// LegumeCandidate is true when the candidate itself is a legume.
	LegumeCandidate bool `json:"legume_candidate"`
}

// CompositeBreakdown records each component's weighted contribution to the
// composite score.
type CompositeBreakdown struct {
	Compatibility  float64 `json:"compatibility"`
	Profit         float64 `json:"profit"`
	Sustainability float64 `json:"sustainability"`
	Rotation       float64 `json:"rotation"`
	Risk           float64 `json:"risk"`
}

// Candidate is one scored recommendation.
type Candidate struct {
	CropName string `json:"crop_name"`

	// ConfidenceScore is the 0-100 compatibility score (rule path) or the
	// ML probability scaled to 0-100 (ML path).
	ConfidenceScore float64 `json:"confidence_score"`

	// ExpectedYield is the projected yield in kg/ha.
	ExpectedYield float64 `json:"expected_yield"`

	Profit         ProfitBreakdown         `json:"profit_details"`
	Sustainability SustainabilityBreakdown `json:"sustainability_details"`
	Rotation       RotationBreakdown       `json:"rotation_analysis"`

	CompositeScore float64            `json:"composite_score"`
	Composite      CompositeBreakdown `json:"composite_breakdown"`

	// Reasons explains the confidence score in stable order.
	Reasons []string `json:"reasons"`

	// MatchDetails maps each agronomic factor to its qualitative match
	// (optimal/acceptable/poor/...). Rule path only.
	MatchDetails map[string]string `json:"match_details,omitempty"`

	// MLPrediction is true when the confidence came from the ML predictor.
	MLPrediction bool `json:"ml_prediction"`
}

// Response is the ordered recommendation list for one request.
type Response struct {
	Candidates []Candidate `json:"candidates"`

	// TotalCandidates is the number of crops scored before the top-K cut.
	TotalCandidates int `json:"total_candidates"`

	Season catalog.Season `json:"season"`

	// MLUsed is true when the ML predictor scored this request. It is
	// false for every candidate in the rule-based fallback path.
	MLUsed bool `json:"ml_used"`

	DataQualityWarning bool     `json:"data_quality_warning"`
	DefaultedFields    []string `json:"defaulted_fields"`

	RequestID   string    `json:"request_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
