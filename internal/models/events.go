// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import "time"

// HistoryEventType identifies a change to the worn history.
type HistoryEventType string

const (
	// HistoryRecorded is emitted when a new history record is created.
	// Duplicate recordings do not emit an event.
	HistoryRecorded HistoryEventType = "history.recorded"

	// HistoryRemoved is emitted after a history record is deleted.
	HistoryRemoved HistoryEventType = "history.removed"
)

// HistoryEvent describes a committed worn-history change and the outfit
// aggregates that resulted from it.
type HistoryEvent struct {
	Type         HistoryEventType `json:"type"`
	OutfitID     int64            `json:"outfit_id"`
	HistoryID    int64            `json:"history_id"`
	WornDate     Date             `json:"worn_date"`
	WornCount    int              `json:"worn_count"`
	LastWornDate Date             `json:"last_worn_date"`
	OccurredAt   time.Time        `json:"occurred_at"`
}
