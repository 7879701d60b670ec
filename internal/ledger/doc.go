// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package ledger owns the worn history of outfits and keeps each outfit's
// WornCount and LastWornDate consistent with it.
//
// Every mutation runs inside a single store transaction while holding a
// per-outfit lock, so concurrent recordings of the same outfit and date
// resolve to one history record and one increment. Mutations on different
// outfits never contend.
//
// # Invariants
//
//   - WornCount equals the number of history records for the outfit.
//   - LastWornDate equals the latest WornDate among them, or is unset.
//   - At most one record exists per (outfit, date). Recording a date twice
//     is not an error.
//
// # Usage
//
//	l := ledger.New(db, logger, ledger.WithPublisher(bus))
//
//	rec, created, err := l.RecordWorn(ctx, outfitID, models.NewDate(2026, time.March, 1))
//	if errors.Is(err, ledger.ErrOutfitNotFound) { ... }
//
//	removed, err := l.RemoveRecord(ctx, rec.ID)
//
// Committed changes are announced to an optional Publisher as
// models.HistoryEvent values. Publish failures are logged and never undo
// a committed change.
package ledger
