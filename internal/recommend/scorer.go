// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/wardrobe/internal/models"
)

// ScorerKind identifies one of the fixed scoring criteria.
type ScorerKind int

const (
	ScorerRating ScorerKind = iota
	ScorerFormality
	ScorerFreshness
	ScorerSeason
)

// String returns the lowercase criterion name.
func (k ScorerKind) String() string {
	switch k {
	case ScorerRating:
		return "rating"
	case ScorerFormality:
		return "formality"
	case ScorerFreshness:
		return "freshness"
	case ScorerSeason:
		return "season"
	default:
		return fmt.Sprintf("scorer(%d)", int(k))
	}
}

// Scorer maps an outfit to a score in [0, 1] for one criterion.
// Implementations must be pure and safe for concurrent use.
type Scorer interface {
	Kind() ScorerKind
	Score(outfit *models.Outfit, criteria *Criteria, today models.Date) float64
}

const (
	// freshnessHorizonDays is the number of days after which an outfit is fully fresh.
	freshnessHorizonDays = 30.0

	// formalityFalloff is the distance outside the range at which the formality score reaches zero.
	formalityFalloff = 4.0

	// neutralSeasonScore is used when no season is requested or the outfit has no items.
	neutralSeasonScore = 0.5
)

type ratingScorer struct{}

func (ratingScorer) Kind() ScorerKind { return ScorerRating }

func (ratingScorer) Score(outfit *models.Outfit, _ *Criteria, _ models.Date) float64 {
	return clamp01(float64(outfit.Rating) / float64(models.MaxScale))
}

type formalityScorer struct{}

func (formalityScorer) Kind() ScorerKind { return ScorerFormality }

func (formalityScorer) Score(outfit *models.Outfit, criteria *Criteria, _ models.Date) float64 {
	minF, maxF := criteria.formalityRange()
	level := outfit.FormalityLevel

	var distance int
	switch {
	case level < minF:
		distance = minF - level
	case level > maxF:
		distance = level - maxF
	default:
		return 1.0
	}

	return math.Max(0, 1-float64(distance)/formalityFalloff)
}

type freshnessScorer struct{}

func (freshnessScorer) Kind() ScorerKind { return ScorerFreshness }

func (freshnessScorer) Score(outfit *models.Outfit, _ *Criteria, today models.Date) float64 {
	if outfit.LastWornDate.IsZero() {
		return 1.0
	}
	if outfit.LastWornDate.After(today) {
		return 0.0
	}
	days := today.DaysSince(outfit.LastWornDate)
	return math.Min(float64(days)/freshnessHorizonDays, 1.0)
}

type seasonScorer struct{}

func (seasonScorer) Kind() ScorerKind { return ScorerSeason }

func (seasonScorer) Score(outfit *models.Outfit, criteria *Criteria, _ models.Date) float64 {
	if criteria.CurrentSeason == models.SeasonAny || len(outfit.Items) == 0 {
		return neutralSeasonScore
	}

	var total float64
	for i := range outfit.Items {
		switch outfit.Items[i].Season {
		case criteria.CurrentSeason:
			total += 1.0
		case models.SeasonAny:
			total += 0.5
		}
	}
	return total / float64(len(outfit.Items))
}

// DefaultScorers returns one scorer per ScorerKind, in kind order.
func DefaultScorers() []Scorer {
	return []Scorer{ratingScorer{}, formalityScorer{}, freshnessScorer{}, seasonScorer{}}
}

// ScoreOutfit runs every scorer and combines the results with the criteria weights.
func ScoreOutfit(outfit *models.Outfit, criteria *Criteria, today models.Date, scorers []Scorer) ScoredOutfit {
	var components ComponentScores
	var total float64

	for _, s := range scorers {
		score := s.Score(outfit, criteria, today)
		components.set(s.Kind(), score)
		total += score * criteria.Weights.For(s.Kind())
	}

	return ScoredOutfit{
		Outfit:     *outfit,
		Score:      total,
		Components: components,
		Breakdown:  components.breakdown(total),
	}
}

func (c *ComponentScores) set(kind ScorerKind, score float64) {
	switch kind {
	case ScorerRating:
		c.Rating = score
	case ScorerFormality:
		c.Formality = score
	case ScorerFreshness:
		c.Freshness = score
	case ScorerSeason:
		c.Season = score
	}
}

func (c *ComponentScores) breakdown(total float64) string {
	return fmt.Sprintf("Total: %.2f (Rating: %.2f, Formality: %.2f, Freshness: %.2f, Season: %.2f)",
		total, c.Rating, c.Formality, c.Freshness, c.Season)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
