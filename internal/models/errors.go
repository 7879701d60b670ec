// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import "errors"

var (
	// ErrOutfitNotFound is returned when an outfit id does not resolve.
	ErrOutfitNotFound = errors.New("outfit not found")

	// ErrItemNotFound is returned when an item id does not resolve.
	ErrItemNotFound = errors.New("item not found")

	// ErrHistoryNotFound is returned when a history record id does not resolve.
	ErrHistoryNotFound = errors.New("history record not found")

	// ErrInvalidCriteria is returned for structurally invalid recommendation criteria.
	ErrInvalidCriteria = errors.New("invalid recommendation criteria")
)
