// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wardrobe/internal/ledger"
	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/models"
)

var _ ledger.Publisher = (*Publisher)(nil)

// Publisher publishes history events with circuit breaker protection.
// It implements ledger.Publisher.
type Publisher struct {
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	logger         zerolog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher wraps pub. A nil breaker publishes without protection.
func NewPublisher(pub message.Publisher, cb *gobreaker.CircuitBreaker[interface{}], logger zerolog.Logger) (*Publisher, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: publisher cannot be nil", ErrInvalidConfig)
	}
	return &Publisher{
		publisher:      pub,
		circuitBreaker: cb,
		logger:         logger.With().Str("component", "event-publisher").Logger(),
	}, nil
}

// Publish sends a message to the specified topic.
func (p *Publisher) Publish(ctx context.Context, topic string, msg *message.Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.circuitBreaker == nil {
		return p.publisher.Publish(topic, msg)
	}

	name := p.circuitBreaker.Name()
	_, err := p.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, p.publisher.Publish(topic, msg)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordCircuitBreakerRequest(name, "rejected")
	case err != nil:
		metrics.RecordCircuitBreakerRequest(name, "failure")
	default:
		metrics.RecordCircuitBreakerRequest(name, "success")
	}
	return err
}

// PublishHistoryEvent serializes and publishes a history event on the topic
// named after its type.
//
//nolint:gocritic // hugeParam: implements ledger.Publisher
func (p *Publisher) PublishHistoryEvent(ctx context.Context, event models.HistoryEvent) error {
	topic := TopicFor(event.Type)

	data, err := SerializeEvent(event)
	if err != nil {
		metrics.RecordEventPublish(topic, err)
		return fmt.Errorf("serialize event: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set(MetadataEventType, string(event.Type))
	msg.Metadata.Set(MetadataOutfitID, strconv.FormatInt(event.OutfitID, 10))
	msg.Metadata.Set(MetadataCorrelationID, correlationID(ctx))

	err = p.Publish(ctx, topic, msg)
	metrics.RecordEventPublish(topic, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	p.logger.Debug().
		Str("topic", topic).
		Str("message_id", msg.UUID).
		Int64("outfit_id", event.OutfitID).
		Msg("Published history event")
	return nil
}

// Close marks the publisher closed. The underlying bus is owned by the caller.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// correlationID ties an event to the request that caused it. Writes from
// outside an HTTP request get a fresh id.
func correlationID(ctx context.Context) string {
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		return id
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return logging.GenerateCorrelationID()
}
