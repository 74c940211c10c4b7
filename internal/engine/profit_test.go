// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"testing"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

func TestCalculateProfit(t *testing.T) {
	tests := []struct {
		name       string
		eco        catalog.Economics
		yield      float64
		multiplier float64
		want       ProfitBreakdown
	}{
		{
			name:       "wheat at full yield",
			eco:        catalog.Economics{MarketPricePerKg: 22, InputCostPerHa: 35000, LaborCostPerHa: 15000, RiskFactor: 0.2},
			yield:      3500,
			multiplier: 1.0,
			want: ProfitBreakdown{
				MarketPricePerKg:   22,
				Revenue:            77000,
				InputCosts:         35000,
				LaborCosts:         15000,
				TotalCosts:         50000,
				GrossProfit:        27000,
				RiskFactor:         0.2,
				RiskAdjustedProfit: 21600,
				ProfitMarginPct:    35.06,
				ROIPct:             54,
			},
		},
		{
			name:       "multiplier scales yield",
			eco:        catalog.Economics{MarketPricePerKg: 10, InputCostPerHa: 1000, LaborCostPerHa: 500, RiskFactor: 0.5},
			yield:      1000,
			multiplier: 0.5,
			want: ProfitBreakdown{
				MarketPricePerKg:   10,
				Revenue:            5000,
				InputCosts:         1000,
				LaborCosts:         500,
				TotalCosts:         1500,
				GrossProfit:        3500,
				RiskFactor:         0.5,
				RiskAdjustedProfit: 1750,
				ProfitMarginPct:    70,
				ROIPct:             233.33,
			},
		},
		{
			name:       "zero revenue yields zero margin, not a panic",
			eco:        catalog.Economics{MarketPricePerKg: 0, InputCostPerHa: 1000, LaborCostPerHa: 500, RiskFactor: 0.1},
			yield:      2000,
			multiplier: 1.0,
			want: ProfitBreakdown{
				MarketPricePerKg:   0,
				Revenue:            0,
				InputCosts:         1000,
				LaborCosts:         500,
				TotalCosts:         1500,
				GrossProfit:        -1500,
				RiskFactor:         0.1,
				RiskAdjustedProfit: -1350,
				ProfitMarginPct:    0,
				ROIPct:             -100,
			},
		},
		{
			name:       "zero costs yield zero roi, not a panic",
			eco:        catalog.Economics{MarketPricePerKg: 5, InputCostPerHa: 0, LaborCostPerHa: 0, RiskFactor: 0},
			yield:      100,
			multiplier: 1.0,
			want: ProfitBreakdown{
				MarketPricePerKg:   5,
				Revenue:            500,
				InputCosts:         0,
				LaborCosts:         0,
				TotalCosts:         0,
				GrossProfit:        500,
				RiskFactor:         0,
				RiskAdjustedProfit: 500,
				ProfitMarginPct:    100,
				ROIPct:             0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateProfit(tt.eco, tt.yield, tt.multiplier)
			if got != tt.want {
				t.Errorf("CalculateProfit() =\n%+v\nwant\n%+v", got, tt.want)
			}
		})
	}
}

func TestCalculateProfit_Idempotent(t *testing.T) {
	eco := catalog.Economics{MarketPricePerKg: 25, InputCostPerHa: 40000, LaborCostPerHa: 20000, RiskFactor: 0.3}

	first := CalculateProfit(eco, 3000, 0.85)
	second := CalculateProfit(eco, 3000, 0.85)

	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{-2.675, -2.67}, // float64 representation of -2.675 is slightly above
		{0, 0},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
