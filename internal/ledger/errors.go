// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package ledger

import (
	"errors"

	"github.com/tomtom215/wardrobe/internal/models"
)

var (
	// ErrOutfitNotFound is returned when the outfit id does not resolve.
	ErrOutfitNotFound = models.ErrOutfitNotFound

	// ErrHistoryNotFound is returned when the history id does not resolve.
	ErrHistoryNotFound = models.ErrHistoryNotFound

	// ErrDuplicateHistory is returned by Tx.SaveHistory when a record for the
	// same outfit and date already exists. The ledger absorbs it.
	ErrDuplicateHistory = errors.New("history record already exists for outfit and date")

	// ErrInvalidDate is returned for an unset worn date.
	ErrInvalidDate = errors.New("worn date is required")

	// ErrInvalidRange is returned for an inverted date range or an invalid month.
	ErrInvalidRange = errors.New("invalid date range")
)
