// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator with wardrobe-specific tags and
// translates failures into human-readable messages and the API's
// VALIDATION_ERROR format.
//
// # Custom Tags
//
//   - season: "" or spring, summer, fall, winter
//   - category: top, bottom, outerwear, dress, shoes, bag, accessory
//   - isodate: "" or a YYYY-MM-DD date string
//
// Field names in messages are taken from `json` struct tags, so errors name
// the same keys clients send.
//
// # Usage
//
//	type wornRequest struct {
//	    WornDate string `json:"worn_date" validate:"isodate"`
//	}
//
//	if err := validation.ValidateStruct(&req); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
