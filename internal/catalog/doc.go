// CropRecommendation - Crop Recommendation Decision Engine
// Copyright 2026 Vikas Reddy (vikasreddy148)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vikasreddy148/CropRecommendation

// Package catalog holds the static crop reference table: agronomic
// requirements, economics, environmental factors, and rotation rules.
//
// A Catalog is built once at process start, validated, and then shared
// read-only across all recommendation requests. It is never mutated after
// construction, so concurrent reads need no synchronization.
package catalog
