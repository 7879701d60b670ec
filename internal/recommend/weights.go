// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"fmt"
	"math"
)

// Preset names accepted by WeightsForPreset.
const (
	PresetBalanced       = "balanced"
	PresetFreshnessFirst = "freshness-first"
	PresetRatingFirst    = "rating-first"
)

// weightSumTolerance is how far from 1.0 a weight set may sum before
// Normalized reports it as incoherent.
const weightSumTolerance = 0.001

// ScoringWeights defines the contribution of each scorer to the total score.
//
// Weights should sum to 1.0. They are never normalized automatically: a set
// summing to 2.0 doubles every total.
type ScoringWeights struct {
	Rating    float64 `json:"rating" validate:"gte=0"`
	Formality float64 `json:"formality" validate:"gte=0"`
	Freshness float64 `json:"freshness" validate:"gte=0"`
	Season    float64 `json:"season" validate:"gte=0"`
}

// BalancedWeights weighs rating and freshness highest.
func BalancedWeights() ScoringWeights {
	return ScoringWeights{Rating: 0.3, Formality: 0.2, Freshness: 0.3, Season: 0.2}
}

// FreshnessFirstWeights favors outfits that have not been worn recently.
func FreshnessFirstWeights() ScoringWeights {
	return ScoringWeights{Rating: 0.2, Formality: 0.2, Freshness: 0.5, Season: 0.1}
}

// RatingFirstWeights favors the best-rated outfits.
func RatingFirstWeights() ScoringWeights {
	return ScoringWeights{Rating: 0.5, Formality: 0.2, Freshness: 0.2, Season: 0.1}
}

// WeightsForPreset resolves a preset name. An empty name resolves to balanced.
func WeightsForPreset(name string) (ScoringWeights, error) {
	switch name {
	case "", PresetBalanced:
		return BalancedWeights(), nil
	case PresetFreshnessFirst:
		return FreshnessFirstWeights(), nil
	case PresetRatingFirst:
		return RatingFirstWeights(), nil
	default:
		return ScoringWeights{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidCriteria, name)
	}
}

// PresetName returns the preset matching w exactly, or "custom".
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) PresetName() string {
	switch w {
	case BalancedWeights():
		return PresetBalanced
	case FreshnessFirstWeights():
		return PresetFreshnessFirst
	case RatingFirstWeights():
		return PresetRatingFirst
	default:
		return "custom"
	}
}

// Sum returns the total of all four weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) Sum() float64 {
	return w.Rating + w.Formality + w.Freshness + w.Season
}

// IsZero reports whether no weight is set.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) IsZero() bool {
	return w == ScoringWeights{}
}

// Normalized reports whether the weights sum to 1.0 within tolerance.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) Normalized() bool {
	return math.Abs(w.Sum()-1.0) <= weightSumTolerance
}

// Validate rejects negative or non-finite weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) Validate() error {
	for kind, v := range map[ScorerKind]float64{
		ScorerRating:    w.Rating,
		ScorerFormality: w.Formality,
		ScorerFreshness: w.Freshness,
		ScorerSeason:    w.Season,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s weight must be a non-negative number, got %v", ErrInvalidCriteria, kind, v)
		}
	}
	return nil
}

// For returns the weight applied to the given scorer kind.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w ScoringWeights) For(kind ScorerKind) float64 {
	switch kind {
	case ScorerRating:
		return w.Rating
	case ScorerFormality:
		return w.Formality
	case ScorerFreshness:
		return w.Freshness
	case ScorerSeason:
		return w.Season
	default:
		return 0
	}
}
