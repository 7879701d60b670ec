// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import "github.com/tomtom215/wardrobe/internal/models"

// ErrInvalidCriteria is returned when criteria or weights are structurally invalid.
var ErrInvalidCriteria = models.ErrInvalidCriteria
