// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		want ScoringWeights
	}{
		{PresetBalanced, ScoringWeights{Rating: 0.3, Formality: 0.2, Freshness: 0.3, Season: 0.2}},
		{PresetFreshnessFirst, ScoringWeights{Rating: 0.2, Formality: 0.2, Freshness: 0.5, Season: 0.1}},
		{PresetRatingFirst, ScoringWeights{Rating: 0.5, Formality: 0.2, Freshness: 0.2, Season: 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightsForPreset(tt.name)
			if err != nil {
				t.Fatalf("WeightsForPreset(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("WeightsForPreset(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
			if !got.Normalized() {
				t.Errorf("preset %q sums to %v", tt.name, got.Sum())
			}
			if got.PresetName() != tt.name {
				t.Errorf("PresetName() = %q, want %q", got.PresetName(), tt.name)
			}
		})
	}
}

func TestWeightsForPreset_EmptyIsBalanced(t *testing.T) {
	got, err := WeightsForPreset("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != BalancedWeights() {
		t.Errorf("got %+v, want balanced", got)
	}
}

func TestWeightsForPreset_Unknown(t *testing.T) {
	_, err := WeightsForPreset("chaotic")
	if !errors.Is(err, ErrInvalidCriteria) {
		t.Errorf("expected ErrInvalidCriteria, got %v", err)
	}
}

func TestScoringWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights ScoringWeights
		wantErr bool
	}{
		{"balanced", BalancedWeights(), false},
		{"zero", ScoringWeights{}, false},
		{"unnormalized but positive", ScoringWeights{Rating: 1, Formality: 1, Freshness: 1, Season: 1}, false},
		{"negative rating", ScoringWeights{Rating: -0.1, Freshness: 1.1}, true},
		{"NaN season", ScoringWeights{Season: math.NaN()}, true},
		{"infinite freshness", ScoringWeights{Freshness: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidCriteria) {
				t.Errorf("expected ErrInvalidCriteria, got %v", err)
			}
		})
	}
}

func TestScoringWeights_Helpers(t *testing.T) {
	custom := ScoringWeights{Rating: 0.4, Formality: 0.4, Freshness: 0.4, Season: 0.4}

	if custom.PresetName() != "custom" {
		t.Errorf("PresetName() = %q, want custom", custom.PresetName())
	}
	if custom.Normalized() {
		t.Error("weights summing to 1.6 should not be normalized")
	}
	if math.Abs(custom.Sum()-1.6) > 1e-9 {
		t.Errorf("Sum() = %v, want 1.6", custom.Sum())
	}
	if !(ScoringWeights{}).IsZero() || custom.IsZero() {
		t.Error("IsZero() mismatch")
	}

	w := RatingFirstWeights()
	for kind, want := range map[ScorerKind]float64{
		ScorerRating: 0.5, ScorerFormality: 0.2, ScorerFreshness: 0.2, ScorerSeason: 0.1,
	} {
		if got := w.For(kind); got != want {
			t.Errorf("For(%s) = %v, want %v", kind, got, want)
		}
	}
}
