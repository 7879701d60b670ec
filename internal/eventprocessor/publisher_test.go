// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/models"
)

func TestNewPublisher_NilPublisher(t *testing.T) {
	if _, err := NewPublisher(nil, nil, zerolog.Nop()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestPublishHistoryEvent(t *testing.T) {
	ch := persistentChannel()
	defer ch.Close()

	pub, err := NewPublisher(ch, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPublisher: %v", err)
	}

	ctx := logging.ContextWithRequestID(context.Background(), "req-123")
	event := sampleEvent(models.HistoryRemoved)
	if err := pub.PublishHistoryEvent(ctx, event); err != nil {
		t.Fatalf("PublishHistoryEvent: %v", err)
	}

	subCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msgs, err := ch.Subscribe(subCtx, TopicHistoryRemoved)
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	select {
	case msg := <-msgs:
		msg.Ack()
		if got := msg.Metadata.Get(MetadataEventType); got != string(models.HistoryRemoved) {
			t.Errorf("event_type = %q", got)
		}
		if got := msg.Metadata.Get(MetadataOutfitID); got != strconv.FormatInt(event.OutfitID, 10) {
			t.Errorf("outfit_id = %q", got)
		}
		if got := msg.Metadata.Get(MetadataCorrelationID); got != "req-123" {
			t.Errorf("correlation_id = %q, want req-123", got)
		}
		decoded, err := DeserializeEvent(msg.Payload)
		if err != nil {
			t.Fatalf("DeserializeEvent: %v", err)
		}
		if decoded.HistoryID != event.HistoryID {
			t.Errorf("HistoryID = %d, want %d", decoded.HistoryID, event.HistoryID)
		}
	case <-subCtx.Done():
		t.Fatal("timed out waiting for message")
	}
}

func TestPublishHistoryEvent_CorrelationID(t *testing.T) {
	withBoth := logging.ContextWithRequestID(context.Background(), "req-9")
	withBoth = logging.ContextWithCorrelationID(withBoth, "corr0009")

	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"correlation id wins", withBoth, "corr0009"},
		{"request id fallback", logging.ContextWithRequestID(context.Background(), "req-7"), "req-7"},
		{"generated outside a request", context.Background(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := &capturingPublisher{}
			pub, _ := NewPublisher(cp, nil, zerolog.Nop())

			if err := pub.PublishHistoryEvent(tt.ctx, sampleEvent(models.HistoryRecorded)); err != nil {
				t.Fatalf("PublishHistoryEvent: %v", err)
			}
			msg := cp.last()
			if msg == nil {
				t.Fatal("nothing published")
			}
			got := msg.Metadata.Get(MetadataCorrelationID)
			if tt.want != "" && got != tt.want {
				t.Errorf("correlation_id = %q, want %q", got, tt.want)
			}
			if tt.want == "" && len(got) != 8 {
				t.Errorf("correlation_id = %q, want a generated 8-character id", got)
			}
		})
	}
}

func TestPublishHistoryEvent_InvalidEvent(t *testing.T) {
	fp := &failingPublisher{}
	pub, _ := NewPublisher(fp, nil, zerolog.Nop())

	err := pub.PublishHistoryEvent(context.Background(), models.HistoryEvent{Type: models.HistoryRecorded})
	if !errors.Is(err, ErrInvalidEvent) {
		t.Errorf("err = %v, want ErrInvalidEvent", err)
	}
	if fp.calls.Load() != 0 {
		t.Error("invalid events must not reach the bus")
	}
}

func TestPublisher_Closed(t *testing.T) {
	ch := persistentChannel()
	defer ch.Close()
	pub, _ := NewPublisher(ch, nil, zerolog.Nop())

	if err := pub.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	err := pub.PublishHistoryEvent(context.Background(), sampleEvent(models.HistoryRecorded))
	if !errors.Is(err, ErrPublisherClosed) {
		t.Errorf("err = %v, want ErrPublisherClosed", err)
	}
}

func TestPublisher_CanceledContext(t *testing.T) {
	fp := &failingPublisher{}
	pub, _ := NewPublisher(fp, nil, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pub.PublishHistoryEvent(ctx, sampleEvent(models.HistoryRecorded)); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPublisher_CircuitBreakerOpens(t *testing.T) {
	fp := &failingPublisher{}
	cfg := DefaultCircuitBreakerConfig("test-publisher")
	cfg.FailureThreshold = 3
	cfg.Timeout = time.Hour
	cb := NewCircuitBreaker(cfg, zerolog.Nop())

	pub, _ := NewPublisher(fp, cb, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := pub.PublishHistoryEvent(ctx, sampleEvent(models.HistoryRecorded))
		if !errors.Is(err, errPublishFailed) {
			t.Fatalf("attempt %d: err = %v, want errPublishFailed", i, err)
		}
	}

	if got := CircuitBreakerState(cb); got != gobreaker.StateOpen.String() {
		t.Fatalf("state = %s, want open", got)
	}

	err := pub.PublishHistoryEvent(ctx, sampleEvent(models.HistoryRecorded))
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if got := fp.calls.Load(); got != 3 {
		t.Errorf("publisher calls = %d, want 3 (open breaker short-circuits)", got)
	}
}
