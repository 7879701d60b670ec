// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"github.com/tomtom215/wardrobe/internal/models"
)

// Topics carrying history events. The topic name equals the event type.
const (
	TopicHistoryRecorded = string(models.HistoryRecorded)
	TopicHistoryRemoved  = string(models.HistoryRemoved)
)

// HistoryTopics lists every history topic.
var HistoryTopics = []string{TopicHistoryRecorded, TopicHistoryRemoved}

// Message metadata keys.
const (
	MetadataEventType     = "event_type"
	MetadataOutfitID      = "outfit_id"
	MetadataCorrelationID = "correlation_id"
)

// TopicFor returns the topic an event is published on.
func TopicFor(t models.HistoryEventType) string {
	return string(t)
}
