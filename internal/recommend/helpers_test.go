// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/models"
)

// testToday is the fixed "today" used throughout the package tests.
var testToday = models.NewDate(2026, time.March, 15)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

func item(id int64, season models.Season) models.Item {
	return models.Item{ID: id, Category: models.CategoryTop, Season: season}
}

func outfit(id int64, rating, formality int, lastWornDaysAgo int, items ...models.Item) models.Outfit {
	o := models.Outfit{
		ID:             id,
		Rating:         rating,
		FormalityLevel: formality,
		Items:          items,
	}
	if lastWornDaysAgo >= 0 {
		o.LastWornDate = testToday.AddDays(-lastWornDaysAgo)
		o.WornCount = 1
	}
	return o
}

// neverWorn is passed as lastWornDaysAgo for outfits without history.
const neverWorn = -1

func ids(outfits []models.Outfit) []int64 {
	out := make([]int64, len(outfits))
	for i := range outfits {
		out[i] = outfits[i].ID
	}
	return out
}

func scoredIDs(scored []ScoredOutfit) []int64 {
	out := make([]int64, len(scored))
	for i := range scored {
		out[i] = scored[i].Outfit.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
