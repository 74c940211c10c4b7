// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// maxSubScore is the ceiling of each sustainability sub-score.
const maxSubScore = 25.0

// rotationBonusCap limits the rotation-derived bonus applied to the soil and
// biodiversity sub-scores before clamping.
const rotationBonusCap = 5.0

// SustainabilityInput carries per-request refinements for the environmental
// composite.
type SustainabilityInput struct {
	// WaterAvailability is available irrigation water in liters/ha, nil if
	// unknown.
	WaterAvailability *float64

	// SoilRotationBonus rewards beneficial crop sequences. Capped at
	// rotationBonusCap.
	SoilRotationBonus float64

	// BiodiversityRotationBonus rewards nitrogen-fixing candidates. Capped
	// at rotationBonusCap.
	BiodiversityRotationBonus float64
}

// SustainabilityScorer computes the four-part environmental composite. The
// catalog-wide water and carbon ranges are captured at construction so crops
// are normalized against the same table the engine recommends from.
type SustainabilityScorer struct {
	water  catalog.Range
	carbon catalog.Range
}

// NewSustainabilityScorer builds a scorer normalized against the catalog.
func NewSustainabilityScorer(c *catalog.Catalog) *SustainabilityScorer {
	return &SustainabilityScorer{
		water:  c.WaterUsageRange(),
		carbon: c.CarbonFootprintRange(),
	}
}

// Score computes the sustainability breakdown for one crop. Each sub-score
// clamps independently to [0, 25], so the total is always in [0, 100].
func (s *SustainabilityScorer) Score(profile *catalog.CropProfile, in SustainabilityInput) SustainabilityBreakdown {
	waterScore := round2(s.waterScore(profile, in.WaterAvailability))
	soilScore := round2(clampSubScore(linearImpactScore(profile.SoilHealthImpact) + capBonus(in.SoilRotationBonus)))
	carbonScore := round2(clampSubScore(inverseNormalized(profile.CarbonFootprintPerHa, s.carbon) * maxSubScore))
	bioScore := round2(clampSubScore(linearImpactScore(profile.BiodiversityImpact) + capBonus(in.BiodiversityRotationBonus)))

	return SustainabilityBreakdown{
		WaterScore:           waterScore,
		WaterScorePct:        round2(waterScore / maxSubScore * 100),
		SoilScore:            soilScore,
		SoilScorePct:         round2(soilScore / maxSubScore * 100),
		CarbonScore:          carbonScore,
		CarbonScorePct:       round2(carbonScore / maxSubScore * 100),
		BiodiversityScore:    bioScore,
		BiodiversityScorePct: round2(bioScore / maxSubScore * 100),
		Total:                round2(waterScore + soilScore + carbonScore + bioScore),
	}
}

// waterScore rewards crops whose water demand fits the available supply. When
// supply is unknown the crop's usage is normalized against the table's range:
// the thriftiest crop in the table scores 25, the thirstiest 0.
func (s *SustainabilityScorer) waterScore(profile *catalog.CropProfile, availability *float64) float64 {
	usage := profile.WaterUsagePerHa

	if availability != nil {
		switch a := *availability; {
		case a >= usage*1.2:
			return 25
		case a >= usage:
			return 20
		case a >= usage*0.8:
			return 15
		default:
			return 5
		}
	}

	return clampSubScore(inverseNormalized(usage, s.water) * maxSubScore)
}

// linearImpactScore maps an impact in [-100, 100] to [0, 25], with 0 -> 12.5.
func linearImpactScore(impact float64) float64 {
	return 12.5 + impact*maxSubScore/200
}

// inverseNormalized maps v within r to [0, 1] with lower values scoring
// higher. A degenerate range (all crops equal) scores 0.5.
func inverseNormalized(v float64, r catalog.Range) float64 {
	if r.Max == r.Min {
		return 0.5
	}
	return 1 - (v-r.Min)/(r.Max-r.Min)
}

func capBonus(b float64) float64 {
	if b > rotationBonusCap {
		return rotationBonusCap
	}
	if b < 0 {
		return 0
	}
	return b
}

func clampSubScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxSubScore {
		return maxSubScore
	}
	return v
}
