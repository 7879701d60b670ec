// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/eventprocessor"
	"github.com/tomtom215/wardrobe/internal/supervisor"
)

// EventComponents holds the in-process event bus and its endpoints.
type EventComponents struct {
	Bus         *eventprocessor.Bus
	Publisher   *eventprocessor.Publisher
	Invalidator *eventprocessor.Invalidator

	tree  *supervisor.SupervisorTree
	token suture.ServiceToken
}

// initEvents wires the history event bus: a publisher for the ledger and a
// cache invalidator in the messaging layer. Returns nil when events are
// disabled; the ledger then runs without a publisher and purges the
// response cache itself.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEvents(cfg *config.Config, cache eventprocessor.CacheInvalidator, tree *supervisor.SupervisorTree, logger zerolog.Logger) (*EventComponents, error) {
	if !cfg.Events.Enabled {
		logger.Info().Msg("History events disabled (EVENTS_ENABLED=false)")
		return nil, nil
	}

	epCfg := eventprocessor.ConfigFromApp(cfg.Events)
	if err := epCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid events config: %w", err)
	}

	bus := eventprocessor.NewBus(epCfg, logger)
	breaker := eventprocessor.NewCircuitBreaker(epCfg.Breaker, logger)

	publisher, err := eventprocessor.NewPublisher(bus.Publisher(), breaker, logger)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create event publisher: %w", err)
	}

	invalidator, err := eventprocessor.NewInvalidator(bus.Subscriber(), cache, epCfg, logger)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create cache invalidator: %w", err)
	}
	token := tree.AddMessagingService(invalidator)

	logger.Info().
		Int64("buffer_size", epCfg.BufferSize).
		Uint32("failure_threshold", epCfg.Breaker.FailureThreshold).
		Msg("History event bus initialized")

	return &EventComponents{
		Bus:         bus,
		Publisher:   publisher,
		Invalidator: invalidator,
		tree:        tree,
		token:       token,
	}, nil
}

// Close stops the invalidator and the publisher, then closes the bus.
func (c *EventComponents) Close() error {
	if c == nil {
		return nil
	}
	return errors.Join(
		c.tree.RemoveMessagingService(c.token),
		c.Publisher.Close(),
		c.Bus.Close(),
	)
}
