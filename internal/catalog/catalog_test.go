// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile(name string) CropProfile {
	return CropProfile{
		Name: name, Family: FamilyCereal,
		PHMin: 5.5, PHMax: 7.5, NMin: 100, PMin: 20, KMin: 40,
		MoistureMin: 50, TemperatureMin: 15, TemperatureMax: 30, RainfallMin: 500,
		Seasons:             []Season{SeasonKharif},
		AverageYieldKgPerHa: 3000,
		Economics:           Economics{MarketPricePerKg: 20, InputCostPerHa: 30000, LaborCostPerHa: 15000, RiskFactor: 0.2},
		WaterUsagePerHa:     800000, CarbonFootprintPerHa: 2000,
	}
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name     string
		profiles func() []CropProfile
		rotation RotationRules
		wantErr  string
	}{
		{
			name:     "empty table",
			profiles: func() []CropProfile { return nil },
			wantErr:  "empty",
		},
		{
			name: "missing name",
			profiles: func() []CropProfile {
				p := validProfile("")
				return []CropProfile{p}
			},
			wantErr: "name is empty",
		},
		{
			name: "unknown family",
			profiles: func() []CropProfile {
				p := validProfile("Barley")
				p.Family = "brassica"
				return []CropProfile{p}
			},
			wantErr: "unknown family",
		},
		{
			name: "inverted ph range",
			profiles: func() []CropProfile {
				p := validProfile("Barley")
				p.PHMin, p.PHMax = 7.5, 6.0
				return []CropProfile{p}
			},
			wantErr: "ph_min",
		},
		{
			name: "invalid season",
			profiles: func() []CropProfile {
				p := validProfile("Barley")
				p.Seasons = []Season{"monsoon"}
				return []CropProfile{p}
			},
			wantErr: "unknown season",
		},
		{
			name: "risk factor above one",
			profiles: func() []CropProfile {
				p := validProfile("Barley")
				p.Economics.RiskFactor = 1.5
				return []CropProfile{p}
			},
			wantErr: "risk_factor",
		},
		{
			name: "duplicate crop",
			profiles: func() []CropProfile {
				return []CropProfile{validProfile("Barley"), validProfile("Barley")}
			},
			wantErr: "duplicate",
		},
		{
			name:     "rotation rule references unknown crop",
			profiles: func() []CropProfile { return []CropProfile{validProfile("Barley")} },
			rotation: RotationRules{
				Beneficial: map[string][]string{"Barley": {"Lentil"}},
			},
			wantErr: "unknown crop",
		},
		{
			name:     "rotation rule keyed on unknown crop",
			profiles: func() []CropProfile { return []CropProfile{validProfile("Barley")} },
			rotation: RotationRules{
				Incompatible: map[string][]string{"Lentil": {"Barley"}},
			},
			wantErr: "unknown crop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.profiles(), tt.rotation)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 12, c.Len())
	assert.IsIncreasing(t, c.Names())

	rice, ok := c.Get("Rice")
	require.True(t, ok)
	assert.Equal(t, FamilyCereal, rice.Family)
	assert.Equal(t, 3000.0, rice.AverageYieldKgPerHa)

	_, ok = c.Get("Quinoa")
	assert.False(t, ok)
}

func TestDefault_NormalizationRanges(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	water := c.WaterUsageRange()
	assert.Equal(t, 400000.0, water.Min, "Onion and Pigeon Pea use the least water")
	assert.Equal(t, 2500000.0, water.Max, "Rice uses the most water")

	carbon := c.CarbonFootprintRange()
	assert.Less(t, carbon.Min, carbon.Max)
}

func TestDefault_RotationMatrices(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// A legume before wheat is the canonical beneficial sequence.
	assert.Contains(t, c.BeneficialPredecessors("Wheat"), "Soybean")

	// Solanaceae crops share soil-borne diseases.
	assert.Contains(t, c.IncompatiblePredecessors("Tomato"), "Potato")

	assert.Empty(t, c.BeneficialPredecessors("Quinoa"))
}

func TestGrowsIn(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	wheat, _ := c.Get("Wheat")
	assert.True(t, wheat.GrowsIn(SeasonRabi))
	assert.False(t, wheat.GrowsIn(SeasonKharif))

	sugarcane, _ := c.Get("Sugarcane")
	for _, s := range []Season{SeasonKharif, SeasonRabi, SeasonZaid} {
		assert.True(t, sugarcane.GrowsIn(s), "year_round crop must grow in %s", s)
	}
}

func TestParseSeason(t *testing.T) {
	for _, valid := range []string{"kharif", "rabi", "zaid", "year_round"} {
		s, err := ParseSeason(valid)
		require.NoError(t, err)
		assert.Equal(t, Season(valid), s)
	}

	_, err := ParseSeason("monsoon")
	assert.Error(t, err)

	_, err = ParseSeason("Kharif")
	assert.Error(t, err, "season names are case sensitive")
}

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Season
	}{
		{time.January, SeasonRabi},
		{time.March, SeasonRabi},
		{time.April, SeasonZaid},
		{time.May, SeasonZaid},
		{time.June, SeasonKharif},
		{time.October, SeasonKharif},
		{time.November, SeasonRabi},
		{time.December, SeasonRabi},
	}

	for _, tt := range tests {
		got := CurrentSeason(time.Date(2026, tt.month, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.want, got, "month %s", tt.month)
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	names := c.Names()
	names[0] = "mutated"

	assert.NotEqual(t, "mutated", c.Names()[0])
}
