// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package query

import (
	"strings"
)

// WhereBuilder constructs SQL WHERE clauses with parameterized arguments.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddMin("rating", 3)
//	wb.AddIDs("outfit_id", []int64{1, 2})
//	whereClause, args := wb.Build()
//	// rating >= ? AND outfit_id IN (?, ?)
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddClause adds a raw WHERE clause with its arguments.
// This is useful for custom conditions not covered by helper methods.
//
// Parameters:
//   - clause: SQL condition fragment (e.g., "rating >= ?")
//   - args: Arguments to bind to placeholders in the clause
func (wb *WhereBuilder) AddClause(clause string, args ...interface{}) *WhereBuilder {
	wb.clauses = append(wb.clauses, clause)
	wb.args = append(wb.args, args...)
	return wb
}

// AddMin adds "column >= ?" when min is positive.
func (wb *WhereBuilder) AddMin(column string, minValue int) *WhereBuilder {
	if minValue <= 0 {
		return wb
	}
	return wb.AddClause(column+" >= ?", minValue)
}

// AddMax adds "column <= ?" when max is positive. Zero means unbounded.
func (wb *WhereBuilder) AddMax(column string, maxValue int) *WhereBuilder {
	if maxValue <= 0 {
		return wb
	}
	return wb.AddClause(column+" <= ?", maxValue)
}

// AddDateRange adds inclusive bounds on a YYYY-MM-DD text column.
// Empty bounds are skipped.
//
// Generates:
//   - "column >= ?" if start is non-empty
//   - "column <= ?" if end is non-empty
func (wb *WhereBuilder) AddDateRange(column, start, end string) *WhereBuilder {
	if start != "" {
		wb.AddClause(column+" >= ?", start)
	}
	if end != "" {
		wb.AddClause(column+" <= ?", end)
	}
	return wb
}

// AddIDs adds "column IN (?, ...)". An empty list is skipped.
func (wb *WhereBuilder) AddIDs(column string, ids []int64) *WhereBuilder {
	if len(ids) == 0 {
		return wb
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return wb.AddClause(column+" IN ("+Placeholders(len(ids))+")", args...)
}

// Placeholders returns n comma separated "?" markers.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Build constructs the final WHERE clause and returns it with arguments.
// Clauses are joined with "AND". Returns ("1=1", []) if no clauses were added.
//
// Example:
//
//	whereClause, args := wb.Build()
//	query := fmt.Sprintf("SELECT * FROM outfits WHERE %s", whereClause)
//	db.QueryContext(ctx, query, args...)
func (wb *WhereBuilder) Build() (string, []interface{}) {
	if len(wb.clauses) == 0 {
		return "1=1", []interface{}{}
	}
	return strings.Join(wb.clauses, " AND "), wb.args
}

// BuildWithPrefix returns the WHERE clause with "WHERE " prefix.
func (wb *WhereBuilder) BuildWithPrefix() (string, []interface{}) {
	whereClause, args := wb.Build()
	return "WHERE " + whereClause, args
}

// Count returns the number of clauses added to the builder.
func (wb *WhereBuilder) Count() int {
	return len(wb.clauses)
}

// IsEmpty returns true if no clauses have been added.
func (wb *WhereBuilder) IsEmpty() bool {
	return len(wb.clauses) == 0
}
