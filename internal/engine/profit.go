// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"math"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// CalculateProfit projects the revenue/cost/profit breakdown for a crop at
// the given yield. yieldMultiplier scales the yield for condition quality;
// pass 1.0 for an already-adjusted yield estimate. Ratio computations return
// 0 on a zero denominator instead of dividing by zero, and all monetary
// values are rounded to two decimals for deterministic comparison.
func CalculateProfit(eco catalog.Economics, yieldKgPerHa, yieldMultiplier float64) ProfitBreakdown {
	adjustedYield := yieldKgPerHa * yieldMultiplier

	revenue := adjustedYield * eco.MarketPricePerKg
	totalCosts := eco.InputCostPerHa + eco.LaborCostPerHa
	grossProfit := revenue - totalCosts
	riskAdjusted := grossProfit * (1 - eco.RiskFactor)

	var marginPct float64
	if revenue != 0 {
		marginPct = grossProfit / revenue * 100
	}

	var roiPct float64
	if totalCosts != 0 {
		roiPct = grossProfit / totalCosts * 100
	}

	return ProfitBreakdown{
		MarketPricePerKg:   eco.MarketPricePerKg,
		Revenue:            round2(revenue),
		InputCosts:         round2(eco.InputCostPerHa),
		LaborCosts:         round2(eco.LaborCostPerHa),
		TotalCosts:         round2(totalCosts),
		GrossProfit:        round2(grossProfit),
		RiskFactor:         eco.RiskFactor,
		RiskAdjustedProfit: round2(riskAdjusted),
		ProfitMarginPct:    round2(marginPct),
		ROIPct:             round2(roiPct),
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
