// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wardrobe/internal/models"
)

// SerializeEvent validates and marshals an event to JSON.
//
//nolint:gocritic // hugeParam: events are small and passed by value through the ledger
func SerializeEvent(event models.HistoryEvent) ([]byte, error) {
	if err := validateEvent(event); err != nil {
		return nil, err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// DeserializeEvent unmarshals a JSON payload into an event.
func DeserializeEvent(data []byte) (models.HistoryEvent, error) {
	var event models.HistoryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return models.HistoryEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := validateEvent(event); err != nil {
		return models.HistoryEvent{}, err
	}
	return event, nil
}

//nolint:gocritic // hugeParam
func validateEvent(event models.HistoryEvent) error {
	switch event.Type {
	case models.HistoryRecorded, models.HistoryRemoved:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, event.Type)
	}
	if event.OutfitID <= 0 {
		return fmt.Errorf("%w: outfit id is required", ErrInvalidEvent)
	}
	if event.WornDate.IsZero() {
		return fmt.Errorf("%w: worn date is required", ErrInvalidEvent)
	}
	if event.WornCount < 0 {
		return fmt.Errorf("%w: negative worn count", ErrInvalidEvent)
	}
	return nil
}
