// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"sort"
)

// Ranker merges per-candidate sub-scores into one composite ranking.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker. The weights must already be validated; NewEngine
// rejects invalid weight configurations at construction.
func NewRanker(weights Weights) *Ranker {
	return &Ranker{weights: weights}
}

// Rank computes composite scores in place and sorts candidates descending.
//
// Profit is min-max normalized across this request's candidate set: raw
// currency values are not comparable to 0-100 scores and vary wildly by crop.
// As a consequence composite scores are only comparable within one response,
// never across separate recommendation calls. Ties are broken by higher
// confidence, then crop name ascending, for full determinism.
func (r *Ranker) Rank(candidates []Candidate) {
	minProfit, maxProfit := profitBounds(candidates)

	for i := range candidates {
		c := &candidates[i]

		profitScore := normalizeProfit(c.Profit.GrossProfit, minProfit, maxProfit)
		riskScore := (1 - c.Profit.RiskFactor) * 100

		c.Composite = CompositeBreakdown{
			Compatibility:  round2(c.ConfidenceScore * r.weights.Compatibility),
			Profit:         round2(profitScore * r.weights.Profit),
			Sustainability: round2(c.Sustainability.Total * r.weights.Sustainability),
			Rotation:       round2(c.Rotation.Score * r.weights.Rotation),
			Risk:           round2(riskScore * r.weights.Risk),
		}
		c.CompositeScore = round2(c.Composite.Compatibility +
			c.Composite.Profit +
			c.Composite.Sustainability +
			c.Composite.Rotation +
			c.Composite.Risk)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if a.ConfidenceScore != b.ConfidenceScore {
			return a.ConfidenceScore > b.ConfidenceScore
		}
		return a.CropName < b.CropName
	})
}

func profitBounds(candidates []Candidate) (minP, maxP float64) {
	if len(candidates) == 0 {
		return 0, 0
	}
	minP = candidates[0].Profit.GrossProfit
	maxP = minP
	for _, c := range candidates[1:] {
		if c.Profit.GrossProfit < minP {
			minP = c.Profit.GrossProfit
		}
		if c.Profit.GrossProfit > maxP {
			maxP = c.Profit.GrossProfit
		}
	}
	return minP, maxP
}

// normalizeProfit maps a profit into [0, 100] relative to the candidate set.
// A degenerate spread (single candidate, or all profits equal) maps to the
// 50-point midpoint so the profit component neither helps nor hurts.
func normalizeProfit(profit, minP, maxP float64) float64 {
	if maxP == minP {
		return 50
	}
	return (profit - minP) / (maxP - minP) * 100
}
