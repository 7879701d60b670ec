// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// initRecommend creates the recommendation engine over source.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, source recommend.OutfitSource, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg, err := recommend.ConfigFromApp(&cfg.Recommend)
	if err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	engine, err := recommend.NewEngine(source, engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Str("default_preset", engineCfg.DefaultPreset).
		Int("default_limit", engineCfg.Limits.DefaultLimit).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Str("timezone", engineCfg.Location.String()).
		Msg("recommendation engine initialized")

	return engine, nil
}
