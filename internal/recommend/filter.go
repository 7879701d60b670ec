// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"github.com/tomtom215/wardrobe/internal/models"
)

// Stage narrows a candidate list. Stages only ever remove outfits and keep
// the relative order of the survivors.
type Stage func(outfits []models.Outfit, criteria *Criteria, today models.Date) []models.Outfit

// DefaultPipeline returns the candidate stages in application order.
func DefaultPipeline() []Stage {
	return []Stage{
		RecencyStage,
		SeasonStage,
		MustHaveStage,
		ExcludeItemsStage,
	}
}

// RunPipeline applies each stage in order.
func RunPipeline(stages []Stage, outfits []models.Outfit, criteria *Criteria, today models.Date) []models.Outfit {
	for _, stage := range stages {
		if len(outfits) == 0 {
			return outfits
		}
		outfits = stage(outfits, criteria, today)
	}
	return outfits
}

// keep returns the outfits for which pred is true, in order.
func keep(outfits []models.Outfit, pred func(*models.Outfit) bool) []models.Outfit {
	out := make([]models.Outfit, 0, len(outfits))
	for i := range outfits {
		if pred(&outfits[i]) {
			out = append(out, outfits[i])
		}
	}
	return out
}

// RecencyStage drops outfits last worn on or after today minus ExcludeRecentDays.
// Never-worn outfits always pass.
func RecencyStage(outfits []models.Outfit, criteria *Criteria, today models.Date) []models.Outfit {
	if criteria.ExcludeRecentDays <= 0 {
		return outfits
	}
	cutoff := today.AddDays(-criteria.ExcludeRecentDays)
	return keep(outfits, func(o *models.Outfit) bool {
		return o.LastWornDate.IsZero() || o.LastWornDate.Before(cutoff)
	})
}

// SeasonStage keeps outfits where at least half of the items suit the
// current season, counting season-agnostic items as suitable. Outfits
// without items never pass while a season is set.
func SeasonStage(outfits []models.Outfit, criteria *Criteria, _ models.Date) []models.Outfit {
	season := criteria.CurrentSeason
	if season == models.SeasonAny {
		return outfits
	}
	return keep(outfits, func(o *models.Outfit) bool {
		if len(o.Items) == 0 {
			return false
		}
		suitable := 0
		for i := range o.Items {
			if s := o.Items[i].Season; s == season || s == models.SeasonAny {
				suitable++
			}
		}
		return suitable*2 >= len(o.Items)
	})
}

// MustHaveStage keeps outfits containing every item in MustHaveItemIDs.
func MustHaveStage(outfits []models.Outfit, criteria *Criteria, _ models.Date) []models.Outfit {
	if len(criteria.MustHaveItemIDs) == 0 {
		return outfits
	}
	return keep(outfits, func(o *models.Outfit) bool {
		have := itemSet(o)
		for _, id := range criteria.MustHaveItemIDs {
			if _, ok := have[id]; !ok {
				return false
			}
		}
		return true
	})
}

// ExcludeItemsStage drops outfits containing any item in ExcludeItemIDs.
func ExcludeItemsStage(outfits []models.Outfit, criteria *Criteria, _ models.Date) []models.Outfit {
	if len(criteria.ExcludeItemIDs) == 0 {
		return outfits
	}
	excluded := make(map[int64]struct{}, len(criteria.ExcludeItemIDs))
	for _, id := range criteria.ExcludeItemIDs {
		excluded[id] = struct{}{}
	}
	return keep(outfits, func(o *models.Outfit) bool {
		for i := range o.Items {
			if _, ok := excluded[o.Items[i].ID]; ok {
				return false
			}
		}
		return true
	})
}

func itemSet(o *models.Outfit) map[int64]struct{} {
	set := make(map[int64]struct{}, len(o.Items))
	for i := range o.Items {
		set[o.Items[i].ID] = struct{}{}
	}
	return set
}
