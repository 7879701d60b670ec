// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package models defines the data structures shared across Wardrobe.

Domain Models:

  - Item: a single wardrobe piece (category, color, season)
  - Outfit: a rated collection of items with derived wear statistics
  - HistoryRecord: the fact that an outfit was worn on a calendar date
  - Date: a zone-free calendar date, stored and serialized as YYYY-MM-DD

API Models:

  - APIResponse: standard response envelope
  - APIError: error details
  - Metadata: response metadata (timestamp, request id, timing)

Errors:

The sentinel errors in this package (ErrOutfitNotFound, ErrHistoryNotFound,
ErrItemNotFound, ErrInvalidCriteria) are shared by the storage, ledger and
recommendation layers so callers can classify failures with errors.Is
regardless of which layer produced them.

Derived Fields:

Outfit.WornCount and Outfit.LastWornDate are maintained exclusively by the
ledger package. WornCount always equals the number of history records for
the outfit, and LastWornDate is the latest WornDate among them (zero when
the outfit has never been worn).
*/
package models
