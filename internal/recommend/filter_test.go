// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"testing"

	"github.com/tomtom215/wardrobe/internal/models"
)

func TestRecencyStage(t *testing.T) {
	outfits := []models.Outfit{
		outfit(1, 3, 3, 3),
		outfit(2, 3, 3, 10),
		outfit(3, 3, 3, neverWorn),
		outfit(4, 3, 3, 7),
		outfit(5, 3, 3, 8),
	}

	tests := []struct {
		name string
		days int
		want []int64
	}{
		{"disabled at zero", 0, []int64{1, 2, 3, 4, 5}},
		{"disabled when negative", -5, []int64{1, 2, 3, 4, 5}},
		{"seven days", 7, []int64{2, 3, 5}},
		{"one day", 1, []int64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecencyStage(outfits, &Criteria{ExcludeRecentDays: tt.days}, testToday)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestRecencyStage_Idempotent(t *testing.T) {
	outfits := []models.Outfit{outfit(1, 3, 3, 3), outfit(2, 3, 3, 10), outfit(3, 3, 3, neverWorn)}
	c := &Criteria{ExcludeRecentDays: 7}

	once := RecencyStage(outfits, c, testToday)
	twice := RecencyStage(once, c, testToday)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("second pass changed result: %v -> %v", ids(once), ids(twice))
	}
}

func TestSeasonStage(t *testing.T) {
	tests := []struct {
		name  string
		items []models.Item
		pass  bool
	}{
		{
			"one winter and one unset of four",
			[]models.Item{item(1, models.SeasonWinter), item(2, models.SeasonAny), item(3, models.SeasonSummer), item(4, models.SeasonSummer)},
			true,
		},
		{
			"one winter of four",
			[]models.Item{item(1, models.SeasonWinter), item(2, models.SeasonSummer), item(3, models.SeasonSummer), item(4, models.SeasonFall)},
			false,
		},
		{"all agnostic", []models.Item{item(1, models.SeasonAny), item(2, models.SeasonAny)}, true},
		{"single summer item", []models.Item{item(1, models.SeasonSummer)}, false},
		{"no items", nil, false},
		{
			"two of three",
			[]models.Item{item(1, models.SeasonWinter), item(2, models.SeasonWinter), item(3, models.SeasonSpring)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outfits := []models.Outfit{outfit(9, 3, 3, neverWorn, tt.items...)}
			got := SeasonStage(outfits, &Criteria{CurrentSeason: models.SeasonWinter}, testToday)
			if (len(got) == 1) != tt.pass {
				t.Errorf("pass = %v, want %v", len(got) == 1, tt.pass)
			}
		})
	}
}

func TestSeasonStage_NoSeasonPassesEverything(t *testing.T) {
	outfits := []models.Outfit{outfit(1, 3, 3, neverWorn), outfit(2, 3, 3, neverWorn, item(1, models.SeasonSummer))}
	got := SeasonStage(outfits, &Criteria{}, testToday)
	if len(got) != 2 {
		t.Errorf("expected all outfits to pass, got %v", ids(got))
	}
}

func TestMustHaveStage(t *testing.T) {
	x, y, z := item(10, models.SeasonAny), item(20, models.SeasonAny), item(30, models.SeasonAny)
	outfits := []models.Outfit{
		outfit(1, 3, 3, neverWorn, x, y),
		outfit(2, 3, 3, neverWorn, x, z),
		outfit(3, 3, 3, neverWorn, y, z, x),
		outfit(4, 3, 3, neverWorn),
	}

	got := MustHaveStage(outfits, &Criteria{MustHaveItemIDs: []int64{10, 20}}, testToday)
	if want := []int64{1, 3}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}

	all := MustHaveStage(outfits, &Criteria{}, testToday)
	if len(all) != len(outfits) {
		t.Errorf("empty must-have set should pass everything, got %v", ids(all))
	}
}

func TestExcludeItemsStage(t *testing.T) {
	x, y, z := item(10, models.SeasonAny), item(20, models.SeasonAny), item(30, models.SeasonAny)
	outfits := []models.Outfit{
		outfit(1, 3, 3, neverWorn, x, y),
		outfit(2, 3, 3, neverWorn, z),
		outfit(3, 3, 3, neverWorn, y),
		outfit(4, 3, 3, neverWorn),
	}

	got := ExcludeItemsStage(outfits, &Criteria{ExcludeItemIDs: []int64{20, 99}}, testToday)
	if want := []int64{2, 4}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestRunPipeline_AppliesStagesInOrder(t *testing.T) {
	w := item(10, models.SeasonWinter)
	s := item(20, models.SeasonSummer)
	a := item(30, models.SeasonAny)

	outfits := []models.Outfit{
		outfit(1, 3, 3, 2, w, a),         // worn too recently
		outfit(2, 3, 3, 20, s, s, w),     // fails season
		outfit(3, 3, 3, neverWorn, w, a), // passes
		outfit(4, 3, 3, 40, w, a, s),     // contains excluded item 20
		outfit(5, 3, 3, neverWorn, a),    // missing must-have item 10
		outfit(6, 3, 3, 15, w),           // passes
	}
	c := &Criteria{
		ExcludeRecentDays: 7,
		CurrentSeason:     models.SeasonWinter,
		MustHaveItemIDs:   []int64{10},
		ExcludeItemIDs:    []int64{20},
	}

	got := RunPipeline(DefaultPipeline(), outfits, c, testToday)
	if want := []int64{3, 6}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestRunPipeline_EmptyCriteriaPassesEverything(t *testing.T) {
	outfits := []models.Outfit{outfit(1, 3, 3, 0), outfit(2, 3, 3, neverWorn)}
	got := RunPipeline(DefaultPipeline(), outfits, &Criteria{}, testToday)
	if !equalIDs(ids(got), []int64{1, 2}) {
		t.Errorf("got %v", ids(got))
	}
}

func TestRunPipeline_DoesNotMutateInput(t *testing.T) {
	outfits := []models.Outfit{outfit(1, 3, 3, 1), outfit(2, 3, 3, neverWorn)}
	_ = RunPipeline(DefaultPipeline(), outfits, &Criteria{ExcludeRecentDays: 5}, testToday)
	if !equalIDs(ids(outfits), []int64{1, 2}) {
		t.Errorf("input modified: %v", ids(outfits))
	}
}
