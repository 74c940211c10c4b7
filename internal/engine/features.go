// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

// Regional coordinate bounds used to normalize location for interpolation.
// They cover the Indian subcontinent, matching the reference data the crop
// table was assembled from.
const (
	latMin = 8.0
	latMax = 37.0
	lonMin = 68.0
	lonMax = 97.0
)

// Neutral fallback values used when location itself is unavailable.
const (
	neutralPH          = 6.5
	neutralN           = 100.0
	neutralP           = 30.0
	neutralK           = 50.0
	neutralMoisture    = 50.0
	neutralTemperature = 25.0
	neutralRainfall    = 500.0
	neutralHumidity    = 60.0
)

// ResolveFeatures normalizes raw, possibly-missing measurements into a
// complete FieldConditions. Missing values are interpolated from normalized
// latitude/longitude rather than collapsed to one global constant, so two
// fields at distinct locations resolve to distinct defaults. When location is
// unknown, fixed neutral values are used and the whole result carries a data
// quality warning. Pure function, no I/O.
func ResolveFeatures(raw RawConditions) ResolvedConditions {
	res := ResolvedConditions{
		LocationKnown: raw.Latitude != nil && raw.Longitude != nil,
	}

	latNorm, lonNorm := 0.5, 0.5
	if res.LocationKnown {
		res.Values.Latitude = *raw.Latitude
		res.Values.Longitude = *raw.Longitude
		latNorm = clamp01((*raw.Latitude - latMin) / (latMax - latMin))
		lonNorm = clamp01((*raw.Longitude - lonMin) / (lonMax - lonMin))
	} else {
		res.Defaulted = append(res.Defaulted, "latitude", "longitude")
	}

	// Location-interpolated defaults, replaced wholesale by fixed neutral
	// values when coordinates are unavailable.
	defaults := FieldConditions{
		PH:          6.5 + latNorm*1.5,
		N:           80 + latNorm*60,
		P:           25 + lonNorm*15,
		K:           40 + latNorm*30,
		Moisture:    45 + lonNorm*20,
		Temperature: 20 + (1-latNorm)*10,
		Rainfall:    400 + lonNorm*800,
		Humidity:    50 + lonNorm*25,
	}
	if !res.LocationKnown {
		defaults = FieldConditions{
			PH: neutralPH, N: neutralN, P: neutralP, K: neutralK,
			Moisture: neutralMoisture, Temperature: neutralTemperature,
			Rainfall: neutralRainfall, Humidity: neutralHumidity,
		}
	}

	res.Values.PH = pick(raw.PH, defaults.PH, "ph", &res.Defaulted)
	res.Values.Moisture = pick(raw.Moisture, defaults.Moisture, "moisture", &res.Defaulted)
	res.Values.N = pick(raw.N, defaults.N, "n", &res.Defaulted)
	res.Values.P = pick(raw.P, defaults.P, "p", &res.Defaulted)
	res.Values.K = pick(raw.K, defaults.K, "k", &res.Defaulted)
	res.Values.Temperature = pick(raw.Temperature, defaults.Temperature, "temperature", &res.Defaulted)
	res.Values.Rainfall = pick(raw.Rainfall, defaults.Rainfall, "rainfall", &res.Defaulted)
	res.Values.Humidity = pick(raw.Humidity, defaults.Humidity, "humidity", &res.Defaulted)

	res.DataQualityWarning = len(res.Defaulted) > 0
	return res
}

// pick returns the measured value when present, otherwise records the field
// as defaulted and returns the estimate.
func pick(measured *float64, estimate float64, field string, defaulted *[]string) float64 {
	if measured != nil {
		return *measured
	}
	*defaulted = append(*defaulted, field)
	return estimate
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
