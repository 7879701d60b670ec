// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package logging provides centralized zerolog-based structured logging for Wardrobe.
//
// JSON output is the default for production; console output is available for
// local development. A package-level logger is initialized at import time so
// that packages can log before main calls Init.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int64("outfit_id", id).Str("worn_date", date.String()).Msg("Outfit worn")
//	logging.Error().Err(err).Msg("Recommendation failed")
//
// # Configuration
//
// The server maps these environment variables onto Config through the config
// package:
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// HTTP middleware stores a request ID in the context. Ctx returns a logger
// carrying that ID (and a correlation ID, when present):
//
//	logging.Ctx(r.Context()).Warn().Msg("Outfit not found")
//
// # slog Adapter
//
// The supervisor tree logs through sutureslog, which expects *slog.Logger.
// NewSlogLogger returns one that writes to zerolog under a component name:
//
//	slogger := logging.NewSlogLogger("supervisor")
//	hook := (&sutureslog.Handler{Logger: slogger}).MustHook()
package logging
