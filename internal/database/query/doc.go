// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package query provides SQL WHERE clause building for the database package.
//
// WhereBuilder collects parameterized conditions and joins them with AND:
//
//	wb := query.NewWhereBuilder()
//	wb.AddMin("rating", 3)
//	wb.AddMin("formality_level", 2)
//	wb.AddClause("(last_worn_date IS NULL OR last_worn_date < ?)", "2026-03-08")
//	whereClause, args := wb.Build()
//	// "rating >= ? AND formality_level >= ? AND (last_worn_date IS NULL OR last_worn_date < ?)"
//	// [3 2 "2026-03-08"]
//
// Helpers skip themselves when given a zero bound or an empty list, so
// optional filters can be added unconditionally. Build returns "1=1" when no
// clause was added.
//
// Values are always bound as arguments. Column names are trusted input and
// must never come from a request.
package query
