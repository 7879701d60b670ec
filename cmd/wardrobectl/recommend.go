// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

type recommendFlags struct {
	preset       string
	minRating    int
	minFormality int
	maxFormality int
	season       string
	excludeDays  int
	mustHave     []int64
	exclude      []int64
	limit        int
}

func (a *app) recommendCmd() *cobra.Command {
	var f recommendFlags
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank outfits by rating, formality, freshness and season",
		Long: `Rank outfits with the scoring engine.

Presets weight rating, formality, freshness and season as:
  balanced         0.3 0.2 0.3 0.2
  freshness-first  0.2 0.2 0.5 0.1
  rating-first     0.5 0.2 0.2 0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			resp, err := a.engine.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printRecommendation(cmd.OutOrStdout(), resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.preset, "preset", "p", "", "Weight preset: balanced, freshness-first or rating-first")
	flags.IntVar(&f.minRating, "min-rating", 0, "Minimum rating, 1-5")
	flags.IntVar(&f.minFormality, "min-formality", 0, "Minimum formality, 1-5")
	flags.IntVar(&f.maxFormality, "max-formality", 0, "Maximum formality, 1-5")
	flags.StringVar(&f.season, "season", "", "Current season: spring, summer, fall or winter")
	flags.IntVar(&f.excludeDays, "exclude-days", 0, "Skip outfits worn in the last N days")
	flags.Int64SliceVar(&f.mustHave, "must-have", nil, "Item ids every outfit must contain")
	flags.Int64SliceVar(&f.exclude, "exclude", nil, "Item ids no outfit may contain")
	flags.IntVarP(&f.limit, "limit", "n", 0, "Maximum outfits to return (default from config)")
	return cmd
}

func (f *recommendFlags) request() (recommend.Request, error) {
	season, err := models.ParseSeason(f.season)
	if err != nil {
		return recommend.Request{}, err
	}
	if f.limit < 0 {
		return recommend.Request{}, fmt.Errorf("invalid --limit %d", f.limit)
	}

	req := recommend.Request{
		Criteria: recommend.Criteria{
			MinRating:         f.minRating,
			MinFormality:      f.minFormality,
			MaxFormality:      f.maxFormality,
			CurrentSeason:     season,
			ExcludeRecentDays: f.excludeDays,
			MustHaveItemIDs:   f.mustHave,
			ExcludeItemIDs:    f.exclude,
		},
		Limit: f.limit,
	}
	if f.preset != "" {
		if req.Criteria.Weights, err = recommend.WeightsForPreset(f.preset); err != nil {
			return recommend.Request{}, err
		}
	}
	return req, nil
}

func (a *app) basicCmd() *cobra.Command {
	var req recommend.BasicRequest
	cmd := &cobra.Command{
		Use:   "basic",
		Short: "List the outfits worn least recently",
		Long: `List outfits in the order they were last worn, never-worn first.

Unset flags fall back to the configured basic-mode defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults := a.engine.Config().Basic.ToRequest()
			flags := cmd.Flags()
			if !flags.Changed("min-rating") {
				req.MinRating = defaults.MinRating
			}
			if !flags.Changed("min-formality") {
				req.MinFormality = defaults.MinFormality
			}
			if !flags.Changed("exclude-days") {
				req.ExcludeRecentDays = defaults.ExcludeRecentDays
			}

			outfits, err := a.engine.RecommendBasic(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printOutfits(cmd.OutOrStdout(), outfits)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&req.MinRating, "min-rating", 0, "Minimum rating, 1-5")
	flags.IntVar(&req.MinFormality, "min-formality", 0, "Minimum formality, 1-5")
	flags.IntVar(&req.ExcludeRecentDays, "exclude-days", 0, "Skip outfits worn in the last N days (0 disables)")
	return cmd
}
