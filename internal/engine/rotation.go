// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vikasreddy148/CropRecommendation/internal/catalog"
)

// Rotation scoring constants.
const (
	rotationSameCropPenalty     = 50 // candidate equals the most recent crop
	rotationRepeatPenalty       = 15 // per other occurrence in the window
	rotationIncompatiblePenalty = 15 // per incompatible predecessor
	rotationBeneficialBonus     = 10 // per recognized beneficial predecessor
	rotationLegumeBonus         = 5  // candidate fixes nitrogen, regardless of history
)

// RotationAnalyzer scores a candidate crop against recent field history using
// the catalog's static compatibility matrices.
type RotationAnalyzer struct {
	catalog *catalog.Catalog
	years   int
	logger  zerolog.Logger
}

// NewRotationAnalyzer creates an analyzer with the given lookback window.
func NewRotationAnalyzer(c *catalog.Catalog, years int, logger zerolog.Logger) *RotationAnalyzer {
	if years < 1 {
		years = 3
	}
	return &RotationAnalyzer{
		catalog: c,
		years:   years,
		logger:  logger.With().Str("component", "rotation").Logger(),
	}
}

// Analyze scores the candidate against history entries within the lookback
// window ending at refYear. History is ordered oldest to newest; the last
// in-window entry is the most recent planting. Entries naming crops absent
// from the catalog are logged and skipped, never fatal. Pure function over
// its inputs.
func (a *RotationAnalyzer) Analyze(candidate *catalog.CropProfile, history []CropHistoryEntry, refYear int) RotationBreakdown {
	out := RotationBreakdown{
		Score:           100,
		Benefits:        []string{},
		Concerns:        []string{},
		LegumeCandidate: candidate.Family == catalog.FamilyLegume,
	}

	recent := a.windowed(history, refYear)

	score := 100.0

	if len(recent) > 0 {
		mostRecent := recent[len(recent)-1]

		// Same crop back-to-back is the strongest penalty.
		if mostRecent.CropName == candidate.Name {
			score -= rotationSameCropPenalty
			out.Concerns = append(out.Concerns,
				fmt.Sprintf("%s was the most recent crop on this field (%d %s)", candidate.Name, mostRecent.Year, mostRecent.Season))
		}

		// Repeats elsewhere in the window.
		for _, h := range recent[:len(recent)-1] {
			if h.CropName == candidate.Name {
				score -= rotationRepeatPenalty
				out.Concerns = append(out.Concerns,
					fmt.Sprintf("%s was also grown in %d", candidate.Name, h.Year))
			}
		}

		incompatible := toSet(a.catalog.IncompatiblePredecessors(candidate.Name))
		beneficial := toSet(a.catalog.BeneficialPredecessors(candidate.Name))

		for _, h := range recent {
			if h.CropName == candidate.Name {
				continue
			}
			if _, bad := incompatible[h.CropName]; bad {
				score -= rotationIncompatiblePenalty
				out.Concerns = append(out.Concerns,
					fmt.Sprintf("%s is a poor predecessor for %s", h.CropName, candidate.Name))
			}
			if _, good := beneficial[h.CropName]; good {
				score += rotationBeneficialBonus
				out.BeneficialSequences++
				out.Benefits = append(out.Benefits,
					fmt.Sprintf("good rotation: %s before %s", h.CropName, candidate.Name))
			}
		}
	}

	// Nitrogen fixation benefits the soil whatever came before.
	if out.LegumeCandidate {
		score += rotationLegumeBonus
		out.Benefits = append(out.Benefits, "legume crop improves soil nitrogen")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	out.Score = score

	return out
}

// windowed filters history to the lookback window, dropping entries for crops
// the catalog does not know.
func (a *RotationAnalyzer) windowed(history []CropHistoryEntry, refYear int) []CropHistoryEntry {
	cutoff := refYear - a.years
	recent := make([]CropHistoryEntry, 0, len(history))
	for _, h := range history {
		if h.Year < cutoff || h.Year > refYear {
			continue
		}
		if _, ok := a.catalog.Get(h.CropName); !ok {
			a.logger.Warn().
				Str("crop", h.CropName).
				Int("year", h.Year).
				Msg("history references crop absent from catalog, skipping")
			continue
		}
		recent = append(recent, h)
	}
	return recent
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
