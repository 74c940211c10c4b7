// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package engine implements the crop recommendation decision pipeline.
//
// The pipeline is synchronous and CPU-bound: feature resolution fills gaps in
// field measurements, a per-crop confidence score comes from either an external
// ML predictor or the rule-based compatibility scorer, and independent profit,
// sustainability, and rotation sub-scores are merged into one weighted
// composite ranking with full numeric provenance.
//
// The engine performs no I/O and retains no state between requests. Its only
// shared input is the immutable catalog.Catalog, so any number of requests may
// run in parallel without locking. The MLPredictor boundary is the single
// external collaborator; any failure there downgrades the whole request to
// rule-based scoring so that all candidates in one ranked list share the same
// scoring methodology.
package engine
