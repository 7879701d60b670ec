// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/models"
)

// CacheInvalidator is implemented by recommend.Engine.
type CacheInvalidator interface {
	InvalidateCache()
}

// Invalidator consumes history events and clears the recommendation cache.
// It implements suture.Service.
type Invalidator struct {
	subscriber message.Subscriber
	cache      CacheInvalidator
	cfg        Config
	logger     zerolog.Logger

	// onEvent is called after each handled event; tests hook it.
	onEvent func(models.HistoryEvent)
}

// NewInvalidator creates the cache invalidation consumer.
//
//nolint:gocritic // hugeParam: called once at startup
func NewInvalidator(sub message.Subscriber, cache CacheInvalidator, cfg Config, logger zerolog.Logger) (*Invalidator, error) {
	if sub == nil || cache == nil {
		return nil, fmt.Errorf("%w: subscriber and cache are required", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Invalidator{
		subscriber: sub,
		cache:      cache,
		cfg:        cfg,
		logger:     logger.With().Str("component", "cache-invalidator").Logger(),
	}, nil
}

// Serve runs a Watermill router until ctx is canceled.
func (inv *Invalidator) Serve(ctx context.Context) error {
	router, err := inv.newRouter()
	if err != nil {
		return err
	}

	inv.logger.Info().Strs("topics", HistoryTopics).Msg("Cache invalidator started")
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("invalidator router: %w", err)
	}
	inv.logger.Info().Msg("Cache invalidator stopped")
	return ctx.Err()
}

// String implements fmt.Stringer for suture logging.
func (inv *Invalidator) String() string {
	return "cache-invalidator"
}

func (inv *Invalidator) newRouter() (*message.Router, error) {
	adapter := NewLoggerAdapter(inv.logger)
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: inv.cfg.CloseTimeout}, adapter)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	if inv.cfg.RetryMaxRetries > 0 {
		retry := middleware.Retry{
			MaxRetries:      inv.cfg.RetryMaxRetries,
			InitialInterval: inv.cfg.RetryInitialInterval,
			MaxInterval:     inv.cfg.RetryMaxInterval,
			Multiplier:      inv.cfg.RetryMultiplier,
			Logger:          adapter,
		}
		router.AddMiddleware(retry.Middleware)
	}

	for _, topic := range HistoryTopics {
		router.AddNoPublisherHandler("invalidate-"+topic, topic, keepOpen{inv.subscriber}, inv.handle)
	}
	return router, nil
}

// handle clears the cache for any well-formed history event. Malformed
// payloads are acknowledged and dropped since a retry cannot fix them.
func (inv *Invalidator) handle(msg *message.Message) error {
	topic := msg.Metadata.Get(MetadataEventType)

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		metrics.RecordEventConsumed(topic, err)
		inv.logger.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed history event")
		return nil
	}

	inv.cache.InvalidateCache()
	metrics.RecordEventConsumed(topic, nil)

	inv.logger.Debug().
		Str("type", string(event.Type)).
		Int64("outfit_id", event.OutfitID).
		Str("correlation_id", msg.Metadata.Get(MetadataCorrelationID)).
		Msg("Recommendation cache invalidated")

	if inv.onEvent != nil {
		inv.onEvent(event)
	}
	return nil
}

// keepOpen stops the router from closing the shared bus when it shuts down.
// Subscriptions still end when the router cancels their context.
type keepOpen struct {
	message.Subscriber
}

func (keepOpen) Close() error { return nil }
