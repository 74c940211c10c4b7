// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package api

import (
	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
	"github.com/vikasreddy148/CropRecommendation/internal/engine"
)

// conditionsPayload carries the optional field measurements. Every value is a
// pointer: nil means "not measured" and the engine estimates it.
type conditionsPayload struct {
	PH          *float64 `json:"ph,omitempty" validate:"omitempty,gte=0,lte=14"`
	Moisture    *float64 `json:"moisture,omitempty" validate:"omitempty,gte=0,lte=100"`
	N           *float64 `json:"n,omitempty" validate:"omitempty,gte=0"`
	P           *float64 `json:"p,omitempty" validate:"omitempty,gte=0"`
	K           *float64 `json:"k,omitempty" validate:"omitempty,gte=0"`
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=-20,lte=60"`
	Rainfall    *float64 `json:"rainfall,omitempty" validate:"omitempty,gte=0"`
	Humidity    *float64 `json:"humidity,omitempty" validate:"omitempty,gte=0,lte=100"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// historyEntryPayload is one past planting supplied by the caller.
type historyEntryPayload struct {
	CropName      string   `json:"crop_name" validate:"required"`
	Season        string   `json:"season,omitempty" validate:"omitempty,season"`
	Year          int      `json:"year" validate:"required,gte=1900,lte=2100"`
	YieldAchieved *float64 `json:"yield_achieved,omitempty" validate:"omitempty,gte=0"`
}

// recommendationRequest is the POST /api/v1/recommendations body.
type recommendationRequest struct {
	Conditions        conditionsPayload     `json:"conditions"`
	History           []historyEntryPayload `json:"history,omitempty" validate:"omitempty,dive"`
	Season            string                `json:"season,omitempty" validate:"omitempty,season"`
	WaterAvailability *float64              `json:"water_availability,omitempty" validate:"omitempty,gt=0"`
	K                 int                   `json:"k,omitempty" validate:"omitempty,min=1,max=50"`
}

// toEngineRequest converts the validated payload into the engine's request
// type. Season strings are already validated by the "season" tag.
func (req *recommendationRequest) toEngineRequest(requestID string) engine.Request {
	out := engine.Request{
		Conditions: engine.RawConditions{
			PH:          req.Conditions.PH,
			Moisture:    req.Conditions.Moisture,
			N:           req.Conditions.N,
			P:           req.Conditions.P,
			K:           req.Conditions.K,
			Temperature: req.Conditions.Temperature,
			Rainfall:    req.Conditions.Rainfall,
			Humidity:    req.Conditions.Humidity,
			Latitude:    req.Conditions.Latitude,
			Longitude:   req.Conditions.Longitude,
		},
		Season:            catalog.Season(req.Season),
		WaterAvailability: req.WaterAvailability,
		K:                 req.K,
		RequestID:         requestID,
	}

	for _, h := range req.History {
		out.History = append(out.History, engine.CropHistoryEntry{
			CropName:      h.CropName,
			Season:        catalog.Season(h.Season),
			Year:          h.Year,
			YieldAchieved: h.YieldAchieved,
		})
	}

	return out
}
