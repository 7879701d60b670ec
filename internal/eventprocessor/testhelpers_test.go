// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/tomtom215/wardrobe/internal/models"
)

var errPublishFailed = errors.New("publish failed")

// failingPublisher fails every publish.
type failingPublisher struct {
	calls atomic.Int32
}

func (f *failingPublisher) Publish(string, ...*message.Message) error {
	f.calls.Add(1)
	return errPublishFailed
}

func (f *failingPublisher) Close() error { return nil }

// capturingPublisher keeps every message it is handed.
type capturingPublisher struct {
	mu   sync.Mutex
	msgs []*message.Message
}

func (c *capturingPublisher) Publish(_ string, msgs ...*message.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msgs...)
	return nil
}

func (c *capturingPublisher) Close() error { return nil }

func (c *capturingPublisher) last() *message.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.msgs) == 0 {
		return nil
	}
	return c.msgs[len(c.msgs)-1]
}

// countingCache counts InvalidateCache calls.
type countingCache struct {
	n atomic.Int32
}

func (c *countingCache) InvalidateCache() { c.n.Add(1) }

// persistentChannel replays messages to late subscribers.
func persistentChannel() *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{Persistent: true}, watermill.NopLogger{})
}

func sampleEvent(t models.HistoryEventType) models.HistoryEvent {
	return models.HistoryEvent{
		Type:         t,
		OutfitID:     7,
		HistoryID:    42,
		WornDate:     models.NewDate(2026, time.March, 14),
		WornCount:    3,
		LastWornDate: models.NewDate(2026, time.March, 14),
		OccurredAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

// eventSink collects events seen by an Invalidator.
type eventSink struct {
	mu     sync.Mutex
	events []models.HistoryEvent
	got    chan struct{}
}

func newEventSink() *eventSink {
	return &eventSink{got: make(chan struct{}, 16)}
}

func (s *eventSink) add(e models.HistoryEvent) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	s.got <- struct{}{}
}

func (s *eventSink) wait(n int, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for i := 0; i < n; i++ {
		select {
		case <-s.got:
		case <-deadline:
			return false
		}
	}
	return true
}
