// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package recommend ranks outfits for the wearer to put on next.
//
// # Architecture
//
// A recommendation runs in four steps:
//
//  1. Query: an OutfitSource returns outfits meeting the minimum rating and
//     formality, with recent wears pushed down to the query when requested.
//  2. Filter: an ordered pipeline of Stage functions removes candidates
//     (recency, season coverage, must-have items, excluded items).
//  3. Score: each Scorer maps an outfit to [0, 1] for one criterion
//     (rating, formality fit, freshness, season fit) and ScoringWeights
//     combine them into a total.
//  4. Rank: a stable sort by total, descending, truncated to the limit.
//
// Basic mode skips scoring and returns the stalest outfits first.
//
// # Weights
//
// Three presets are provided: balanced (0.3/0.2/0.3/0.2), freshness-first
// (0.2/0.2/0.5/0.1) and rating-first (0.5/0.2/0.2/0.1), in rating,
// formality, freshness, season order. Custom weights are used as given and
// are not normalized.
//
// # Usage
//
//	engine, err := recommend.NewEngine(db, recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Criteria: recommend.Criteria{
//	        MinRating:     3,
//	        CurrentSeason: models.SeasonWinter,
//	        Weights:       recommend.FreshnessFirstWeights(),
//	    },
//	    Limit: 5,
//	})
//
// # Thread Safety
//
// Filtering and scoring are pure. The engine's response cache is an
// internal/cache LRU guarded by a sync.Mutex. It holds copies, so callers
// may modify the responses they get back. InvalidateCache clears it after
// every history or catalog write.
package recommend
