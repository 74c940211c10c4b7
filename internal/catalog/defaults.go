// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package catalog

// DefaultProfiles returns the built-in 12-crop reference table. Values are
// representative for Indian agriculture: nutrient minimums in kg/ha, rainfall
// in mm, water usage in liters/ha, prices and costs in local currency.
func DefaultProfiles() []CropProfile {
	return []CropProfile{
		{
			Name: "Rice", Family: FamilyCereal,
			PHMin: 5.0, PHMax: 7.5, NMin: 100, PMin: 20, KMin: 40,
			MoistureMin: 60, TemperatureMin: 20, TemperatureMax: 35, RainfallMin: 1000,
			Seasons:             []Season{SeasonKharif},
			AverageYieldKgPerHa: 3000, BaseSustainabilityScore: 75,
			Economics:       Economics{MarketPricePerKg: 25, InputCostPerHa: 40000, LaborCostPerHa: 20000, RiskFactor: 0.3},
			WaterUsagePerHa: 2500000, SoilHealthImpact: -10, CarbonFootprintPerHa: 5000, BiodiversityImpact: 10,
		},
		{
			Name: "Wheat", Family: FamilyCereal,
			PHMin: 6.0, PHMax: 7.5, NMin: 120, PMin: 30, KMin: 50,
			MoistureMin: 40, TemperatureMin: 15, TemperatureMax: 25, RainfallMin: 500,
			Seasons:             []Season{SeasonRabi},
			AverageYieldKgPerHa: 3500, BaseSustainabilityScore: 80,
			Economics:       Economics{MarketPricePerKg: 22, InputCostPerHa: 35000, LaborCostPerHa: 15000, RiskFactor: 0.2},
			WaterUsagePerHa: 800000, SoilHealthImpact: 0, CarbonFootprintPerHa: 2000, BiodiversityImpact: 0,
		},
		{
			Name: "Maize", Family: FamilyCereal,
			PHMin: 5.5, PHMax: 7.0, NMin: 150, PMin: 25, KMin: 60,
			MoistureMin: 50, TemperatureMin: 18, TemperatureMax: 30, RainfallMin: 600,
			Seasons:             []Season{SeasonKharif, SeasonZaid},
			AverageYieldKgPerHa: 4000, BaseSustainabilityScore: 70,
			Economics:       Economics{MarketPricePerKg: 18, InputCostPerHa: 38000, LaborCostPerHa: 18000, RiskFactor: 0.25},
			WaterUsagePerHa: 600000, SoilHealthImpact: -5, CarbonFootprintPerHa: 2500, BiodiversityImpact: -10,
		},
		{
			Name: "Cotton", Family: FamilyFiber,
			PHMin: 5.5, PHMax: 8.0, NMin: 80, PMin: 20, KMin: 50,
			MoistureMin: 50, TemperatureMin: 21, TemperatureMax: 35, RainfallMin: 500,
			Seasons:             []Season{SeasonKharif},
			AverageYieldKgPerHa: 500, BaseSustainabilityScore: 65,
			Economics:       Economics{MarketPricePerKg: 120, InputCostPerHa: 50000, LaborCostPerHa: 25000, RiskFactor: 0.4},
			WaterUsagePerHa: 1000000, SoilHealthImpact: -20, CarbonFootprintPerHa: 4000, BiodiversityImpact: -30,
		},
		{
			Name: "Sugarcane", Family: FamilyCash,
			PHMin: 6.0, PHMax: 7.5, NMin: 200, PMin: 40, KMin: 100,
			MoistureMin: 70, TemperatureMin: 20, TemperatureMax: 35, RainfallMin: 1200,
			Seasons:             []Season{SeasonYearRound},
			AverageYieldKgPerHa: 70000, BaseSustainabilityScore: 60,
			Economics:       Economics{MarketPricePerKg: 3, InputCostPerHa: 60000, LaborCostPerHa: 30000, RiskFactor: 0.2},
			WaterUsagePerHa: 2000000, SoilHealthImpact: -15, CarbonFootprintPerHa: 3000, BiodiversityImpact: -20,
		},
		{
			Name: "Potato", Family: FamilyRoot,
			PHMin: 4.8, PHMax: 5.5, NMin: 100, PMin: 50, KMin: 150,
			MoistureMin: 60, TemperatureMin: 15, TemperatureMax: 25, RainfallMin: 500,
			Seasons:             []Season{SeasonRabi, SeasonZaid},
			AverageYieldKgPerHa: 25000, BaseSustainabilityScore: 75,
			Economics:       Economics{MarketPricePerKg: 15, InputCostPerHa: 80000, LaborCostPerHa: 25000, RiskFactor: 0.35},
			WaterUsagePerHa: 500000, SoilHealthImpact: -10, CarbonFootprintPerHa: 2500, BiodiversityImpact: -5,
		},
		{
			Name: "Tomato", Family: FamilySolanaceae,
			PHMin: 6.0, PHMax: 7.0, NMin: 120, PMin: 40, KMin: 120,
			MoistureMin: 60, TemperatureMin: 18, TemperatureMax: 28, RainfallMin: 400,
			Seasons:             []Season{SeasonYearRound},
			AverageYieldKgPerHa: 30000, BaseSustainabilityScore: 70,
			Economics:       Economics{MarketPricePerKg: 30, InputCostPerHa: 100000, LaborCostPerHa: 30000, RiskFactor: 0.4},
			WaterUsagePerHa: 600000, SoilHealthImpact: -5, CarbonFootprintPerHa: 3000, BiodiversityImpact: 0,
		},
		{
			Name: "Onion", Family: FamilyAllium,
			PHMin: 6.0, PHMax: 7.0, NMin: 100, PMin: 30, KMin: 80,
			MoistureMin: 50, TemperatureMin: 13, TemperatureMax: 25, RainfallMin: 400,
			Seasons:             []Season{SeasonRabi, SeasonKharif},
			AverageYieldKgPerHa: 20000, BaseSustainabilityScore: 75,
			Economics:       Economics{MarketPricePerKg: 20, InputCostPerHa: 70000, LaborCostPerHa: 20000, RiskFactor: 0.3},
			WaterUsagePerHa: 400000, SoilHealthImpact: 0, CarbonFootprintPerHa: 2000, BiodiversityImpact: 0,
		},
		{
			Name: "Chilli", Family: FamilySolanaceae,
			PHMin: 6.0, PHMax: 7.0, NMin: 100, PMin: 30, KMin: 100,
			MoistureMin: 50, TemperatureMin: 20, TemperatureMax: 30, RainfallMin: 400,
			Seasons:             []Season{SeasonKharif, SeasonRabi},
			AverageYieldKgPerHa: 15000, BaseSustainabilityScore: 70,
			Economics:       Economics{MarketPricePerKg: 80, InputCostPerHa: 90000, LaborCostPerHa: 25000, RiskFactor: 0.35},
			WaterUsagePerHa: 500000, SoilHealthImpact: -5, CarbonFootprintPerHa: 2500, BiodiversityImpact: 0,
		},
		{
			Name: "Groundnut", Family: FamilyLegume,
			PHMin: 6.0, PHMax: 7.5, NMin: 20, PMin: 20, KMin: 40,
			MoistureMin: 40, TemperatureMin: 20, TemperatureMax: 35, RainfallMin: 500,
			Seasons:             []Season{SeasonKharif, SeasonRabi},
			AverageYieldKgPerHa: 2000, BaseSustainabilityScore: 80,
			Economics:       Economics{MarketPricePerKg: 60, InputCostPerHa: 45000, LaborCostPerHa: 20000, RiskFactor: 0.25},
			WaterUsagePerHa: 500000, SoilHealthImpact: 20, CarbonFootprintPerHa: 1500, BiodiversityImpact: 10,
		},
		{
			Name: "Soybean", Family: FamilyLegume,
			PHMin: 6.0, PHMax: 7.0, NMin: 20, PMin: 30, KMin: 50,
			MoistureMin: 50, TemperatureMin: 20, TemperatureMax: 30, RainfallMin: 600,
			Seasons:             []Season{SeasonKharif},
			AverageYieldKgPerHa: 2500, BaseSustainabilityScore: 85,
			Economics:       Economics{MarketPricePerKg: 45, InputCostPerHa: 40000, LaborCostPerHa: 18000, RiskFactor: 0.2},
			WaterUsagePerHa: 600000, SoilHealthImpact: 25, CarbonFootprintPerHa: 1500, BiodiversityImpact: 15,
		},
		{
			Name: "Pigeon Pea", Family: FamilyLegume,
			PHMin: 6.0, PHMax: 7.5, NMin: 20, PMin: 20, KMin: 30,
			MoistureMin: 40, TemperatureMin: 20, TemperatureMax: 35, RainfallMin: 600,
			Seasons:             []Season{SeasonKharif},
			AverageYieldKgPerHa: 1200, BaseSustainabilityScore: 90,
			Economics:       Economics{MarketPricePerKg: 50, InputCostPerHa: 35000, LaborCostPerHa: 15000, RiskFactor: 0.2},
			WaterUsagePerHa: 400000, SoilHealthImpact: 30, CarbonFootprintPerHa: 1000, BiodiversityImpact: 20,
		},
	}
}

// DefaultRotationRules returns the built-in rotation compatibility matrices.
func DefaultRotationRules() RotationRules {
	return RotationRules{
		Beneficial: map[string][]string{
			"Rice":       {"Wheat", "Potato", "Groundnut", "Soybean"},
			"Wheat":      {"Rice", "Soybean", "Groundnut", "Potato"},
			"Maize":      {"Soybean", "Groundnut", "Wheat"},
			"Soybean":    {"Wheat", "Rice", "Maize", "Cotton"},
			"Groundnut":  {"Wheat", "Rice", "Maize"},
			"Cotton":     {"Wheat", "Soybean", "Groundnut"},
			"Potato":     {"Wheat", "Rice", "Soybean"},
			"Tomato":     {"Wheat", "Onion", "Groundnut"},
			"Onion":      {"Wheat", "Tomato", "Potato"},
			"Chilli":     {"Wheat", "Onion", "Groundnut"},
			"Pigeon Pea": {"Wheat", "Rice", "Cotton"},
			"Sugarcane":  {"Wheat", "Potato", "Groundnut"},
		},
		Incompatible: map[string][]string{
			"Maize":  {"Rice", "Wheat"},
			"Tomato": {"Chilli", "Potato"},
			"Chilli": {"Tomato", "Potato"},
			"Potato": {"Tomato", "Chilli"},
		},
	}
}
