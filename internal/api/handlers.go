// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package api provides the HTTP surface for the recommendation engine:
// recommendation requests, catalog listing, health, and Prometheus metrics.
package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
	"github.com/vikasreddy148/CropRecommendation/internal/engine"
	"github.com/vikasreddy148/CropRecommendation/internal/logging"
	"github.com/vikasreddy148/CropRecommendation/internal/metrics"
	"github.com/vikasreddy148/CropRecommendation/internal/validation"
)

// maxRequestBody bounds the recommendation request body size.
const maxRequestBody = 1 << 20

// Handler serves the recommendation API endpoints.
type Handler struct {
	engine    *engine.Engine
	catalog   *catalog.Catalog
	mlEnabled bool
	started   time.Time
	logger    zerolog.Logger
}

// NewHandler builds the API handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(eng *engine.Engine, cat *catalog.Catalog, mlEnabled bool, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:    eng,
		catalog:   cat,
		mlEnabled: mlEnabled,
		started:   time.Now(),
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// apiResponse is the envelope for every JSON response.
type apiResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata metadata    `json:"metadata"`
	Error    *apiError   `json:"error,omitempty"`
}

type metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

type apiError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := logging.RequestIDFromContext(r.Context())

	var req recommendationRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, &apiError{
			Code:    "INVALID_JSON",
			Message: "Request body is not valid JSON",
		})
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		ae := verr.ToAPIError()
		respondError(w, r, http.StatusBadRequest, &apiError{
			Code:    ae.Code,
			Message: ae.Message,
			Details: ae.Details,
		})
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req.toEngineRequest(requestID))
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		respondError(w, r, http.StatusInternalServerError, &apiError{
			Code:    "INTERNAL_ERROR",
			Message: "Recommendation could not be computed",
		})
		return
	}

	metrics.RecordRecommendation(resp.MLUsed, resp.TotalCandidates, resp.DataQualityWarning, time.Since(start))
	if !resp.MLUsed && h.mlEnabled {
		metrics.RecordFallback()
	}

	respondJSON(w, r, http.StatusOK, resp)
}

// cropsResponse is the GET /api/v1/crops payload.
type cropsResponse struct {
	Crops []*catalog.CropProfile `json:"crops"`
	Total int                    `json:"total"`
}

// Crops handles GET /api/v1/crops: the full catalog in name order.
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.Names()
	crops := make([]*catalog.CropProfile, 0, len(names))
	for _, name := range names {
		profile, _ := h.catalog.Get(name)
		crops = append(crops, profile)
	}

	respondJSON(w, r, http.StatusOK, cropsResponse{Crops: crops, Total: len(crops)})
}

// healthStatus is the GET /api/v1/health payload.
type healthStatus struct {
	Status             string  `json:"status"`
	CatalogSize        int     `json:"catalog_size"`
	MLPredictorEnabled bool    `json:"ml_predictor_enabled"`
	CurrentSeason      string  `json:"current_season"`
	UptimeSeconds      float64 `json:"uptime_seconds"`
}

// Health handles GET /api/v1/health. The engine has no external hard
// dependencies, so a responding process with a loaded catalog is healthy.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, healthStatus{
		Status:             "healthy",
		CatalogSize:        h.catalog.Len(),
		MLPredictorEnabled: h.mlEnabled,
		CurrentSeason:      string(catalog.CurrentSeason(time.Now())),
		UptimeSeconds:      time.Since(h.started).Seconds(),
	})
}

// respondJSON writes a success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeEnvelope(w, r, status, &apiResponse{
		Status: "success",
		Data:   data,
		Metadata: metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *apiError) {
	writeEnvelope(w, r, status, &apiResponse{
		Status: "error",
		Metadata: metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: apiErr,
	})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, resp *apiResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(resp)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}
