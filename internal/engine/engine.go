// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// Engine is the recommendation decision pipeline. It is safe for concurrent
// use: the catalog is immutable and all per-request data lives on the stack.
type Engine struct {
	config   Config
	catalog  *catalog.Catalog
	logger   zerolog.Logger
	ranker   *Ranker
	sustain  *SustainabilityScorer
	rotation *RotationAnalyzer

	// predictor is the optional ML boundary; nil means rule-based only.
	predictor Predictor

	// now is injectable for deterministic season/rotation tests.
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPredictor attaches an ML predictor. Without one the engine always uses
// rule-based scoring.
func WithPredictor(p Predictor) Option {
	return func(e *Engine) { e.predictor = p }
}

// WithClock overrides the time source used for season derivation and the
// rotation window.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine validates the configuration and builds the pipeline.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, cat *catalog.Catalog, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	if cat == nil || cat.Len() == 0 {
		return nil, fmt.Errorf("crop catalog is empty")
	}

	e := &Engine{
		config:  cfg,
		catalog: cat,
		logger:  logger.With().Str("component", "engine").Logger(),
		ranker:  NewRanker(cfg.Weights),
		sustain: NewSustainabilityScorer(cat),
		now:     time.Now,
	}
	e.rotation = NewRotationAnalyzer(cat, cfg.RotationYears, logger)

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Recommend scores every crop in the catalog against the request and returns
// the top-K ranked candidates with full sub-score breakdowns. Per-request
// degradations (missing measurements, unavailable predictor, unknown history
// crops) are flagged in the output and never fail the call.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := e.now()

	k := req.K
	if k <= 0 {
		k = e.config.DefaultK
	}
	if k > e.config.MaxK {
		k = e.config.MaxK
	}

	resolved := ResolveFeatures(req.Conditions)

	season := req.Season
	if season == "" {
		season = catalog.CurrentSeason(start)
	}

	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("season", string(season)).
		Logger()

	candidates, mlUsed := e.scoreCandidates(ctx, logger, req, resolved, season, start.Year())

	e.ranker.Rank(candidates)
	total := len(candidates)
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	logger.Debug().
		Int("candidates", total).
		Int("returned", len(candidates)).
		Bool("ml_used", mlUsed).
		Bool("data_quality_warning", resolved.DataQualityWarning).
		Msg("recommendation complete")

	return &Response{
		Candidates:         candidates,
		TotalCandidates:    total,
		Season:             season,
		MLUsed:             mlUsed,
		DataQualityWarning: resolved.DataQualityWarning,
		DefaultedFields:    resolved.Defaulted,
		RequestID:          req.RequestID,
		GeneratedAt:        start,
	}, nil
}

// scoreCandidates tries the ML strategy once, and on any failure scores the
// entire request rule-based. ML and rule confidences are never mixed within
// one ranked list; they are not comparable methodologies.
func (e *Engine) scoreCandidates(ctx context.Context, logger zerolog.Logger, req Request, resolved ResolvedConditions, season catalog.Season, refYear int) ([]Candidate, bool) {
	if e.predictor != nil {
		candidates, err := e.scoreWithPredictor(ctx, logger, req, resolved, season, refYear)
		if err == nil {
			return candidates, true
		}
		logger.Warn().Err(err).Msg("ml predictor unavailable, falling back to rule-based scoring")
	}

	return e.scoreRuleBased(req, resolved, season, refYear), false
}

// scoreWithPredictor builds ML-backed candidates. Any predictor error aborts
// the whole attempt so the caller can fall back uniformly.
func (e *Engine) scoreWithPredictor(ctx context.Context, logger zerolog.Logger, req Request, resolved ResolvedConditions, season catalog.Season, refYear int) ([]Candidate, error) {
	features := FeatureVector(resolved)

	predictions, err := e.predictor.PredictCrops(ctx, features)
	if err != nil {
		return nil, fmt.Errorf("predict crops: %w", err)
	}
	if len(predictions) == 0 {
		return nil, ErrPredictorUnavailable
	}

	candidates := make([]Candidate, 0, len(predictions))
	for _, pred := range predictions {
		profile, ok := e.catalog.Get(pred.CropName)
		if !ok {
			logger.Warn().Str("crop", pred.CropName).Msg("predictor returned crop absent from catalog, skipping")
			continue
		}

		confidence := round2(pred.Probability * 100)

		yield, err := e.predictor.PredictYield(ctx, pred.CropName, features)
		if err != nil {
			return nil, fmt.Errorf("predict yield for %s: %w", pred.CropName, err)
		}
		if yield <= 0 {
			// Model declined this crop; scale the reference yield by confidence.
			yield = profile.AverageYieldKgPerHa * confidence / 100
		}
		yield = round2(yield)

		c := e.buildCandidate(profile, req, confidence, yield, 1.0, season, refYear)
		c.MLPrediction = true
		c.Reasons = []string{fmt.Sprintf("ML model prediction with %.1f%% confidence", confidence)}
		c.MatchDetails = nil
		candidates = append(candidates, c)
	}

	if len(candidates) == 0 {
		return nil, ErrPredictorUnavailable
	}
	return candidates, nil
}

// scoreRuleBased scores every catalog crop with the deterministic
// compatibility rules.
func (e *Engine) scoreRuleBased(req Request, resolved ResolvedConditions, season catalog.Season, refYear int) []Candidate {
	names := e.catalog.Names()
	candidates := make([]Candidate, 0, len(names))

	for _, name := range names {
		profile, _ := e.catalog.Get(name)

		compat := ScoreCompatibility(resolved.Values, profile, season)
		yieldMultiplier := compat.Score / 100
		yield := round2(profile.AverageYieldKgPerHa * yieldMultiplier)

		c := e.buildCandidate(profile, req, compat.Score, yield, yieldMultiplier, season, refYear)
		c.Reasons = compat.Reasons
		c.MatchDetails = compat.MatchDetails
		candidates = append(candidates, c)
	}

	return candidates
}

// buildCandidate computes the sub-scores shared by both strategies. The
// profit projection uses the profile's reference yield scaled by the
// multiplier, so ExpectedYield and Revenue agree.
func (e *Engine) buildCandidate(profile *catalog.CropProfile, req Request, confidence, expectedYield, yieldMultiplier float64, season catalog.Season, refYear int) Candidate {
	var profit ProfitBreakdown
	if yieldMultiplier == 1.0 {
		profit = CalculateProfit(profile.Economics, expectedYield, 1.0)
	} else {
		profit = CalculateProfit(profile.Economics, profile.AverageYieldKgPerHa, yieldMultiplier)
	}

	rotation := e.rotation.Analyze(profile, req.History, refYear)

	sustain := e.sustain.Score(profile, SustainabilityInput{
		WaterAvailability:         req.WaterAvailability,
		SoilRotationBonus:         float64(rotation.BeneficialSequences) * 2.5,
		BiodiversityRotationBonus: legumeBonus(rotation),
	})

	return Candidate{
		CropName:        profile.Name,
		ConfidenceScore: confidence,
		ExpectedYield:   expectedYield,
		Profit:          profit,
		Sustainability:  sustain,
		Rotation:        rotation,
	}
}

func legumeBonus(rotation RotationBreakdown) float64 {
	if rotation.LegumeCandidate {
		return rotationLegumeBonus
	}
	return 0
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Catalog returns the shared immutable crop table.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
