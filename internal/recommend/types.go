// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// Criteria describes what the caller wants from a recommendation.
//
// Zero values mean "no constraint": MinRating and MinFormality default to 1,
// MaxFormality defaults to 5, and ExcludeRecentDays <= 0 disables the
// recency filter. Zero Weights resolve to the engine's default preset.
type Criteria struct {
	MinRating         int            `json:"min_rating" validate:"min=0,max=5"`
	MinFormality      int            `json:"min_formality" validate:"min=0,max=5"`
	MaxFormality      int            `json:"max_formality" validate:"min=0,max=5"`
	CurrentSeason     models.Season  `json:"current_season,omitempty" validate:"season"`
	ExcludeRecentDays int            `json:"exclude_recent_days"`
	MustHaveItemIDs   []int64        `json:"must_have_item_ids,omitempty"`
	ExcludeItemIDs    []int64        `json:"exclude_item_ids,omitempty"`
	Weights           ScoringWeights `json:"weights"`
}

// formalityRange returns the effective inclusive formality bounds.
func (c *Criteria) formalityRange() (minF, maxF int) {
	minF, maxF = c.MinFormality, c.MaxFormality
	if minF <= 0 {
		minF = models.MinScale
	}
	if maxF <= 0 {
		maxF = models.MaxScale
	}
	return minF, maxF
}

// effectiveMinRating returns MinRating with the zero default applied.
func (c *Criteria) effectiveMinRating() int {
	if c.MinRating <= 0 {
		return models.MinScale
	}
	return c.MinRating
}

// ComponentScores holds the per-criterion scores of one outfit, each in [0, 1].
type ComponentScores struct {
	Rating    float64 `json:"rating"`
	Formality float64 `json:"formality"`
	Freshness float64 `json:"freshness"`
	Season    float64 `json:"season"`
}

// ScoredOutfit is a candidate outfit with its weighted total score.
type ScoredOutfit struct {
	Outfit     models.Outfit   `json:"outfit"`
	Score      float64         `json:"score"`
	Components ComponentScores `json:"components"`

	// Breakdown is a human-readable summary of the score.
	Breakdown string `json:"breakdown"`
}

// Request is an advanced recommendation request.
type Request struct {
	Criteria Criteria `json:"criteria"`

	// Limit is the maximum number of outfits to return.
	// Zero uses the configured default; values above the maximum are clamped.
	Limit int `json:"limit"`

	// RequestID is used for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response contains ranked outfits and request metadata.
type Response struct {
	Items []ScoredOutfit `json:"items"`

	// TotalCandidates is the number of outfits that survived filtering,
	// before truncation to the limit.
	TotalCandidates int `json:"total_candidates"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID string    `json:"request_id"`
	Preset    string    `json:"preset"`
	Today     string    `json:"today"`
	LatencyMS int64     `json:"latency_ms"`
	CacheHit  bool      `json:"cache_hit"`
	Timestamp time.Time `json:"timestamp"`
}

// BasicRequest is an unscored recommendation request.
type BasicRequest struct {
	MinRating    int `json:"min_rating" validate:"min=0,max=5"`
	MinFormality int `json:"min_formality" validate:"min=0,max=5"`

	// ExcludeRecentDays drops outfits worn within the last N days. <= 0 disables.
	ExcludeRecentDays int `json:"exclude_recent_days"`
}

// Stats reports engine counters since startup.
type Stats struct {
	RequestCount int64 `json:"request_count"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	ErrorCount   int64 `json:"error_count"`
	CacheEntries int   `json:"cache_entries"`
}
