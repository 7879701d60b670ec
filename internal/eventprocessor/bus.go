// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package eventprocessor

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"
)

// Bus is the in-process message bus shared by the publisher and subscribers.
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus creates a GoChannel bus. Messages published while no subscriber is
// attached are dropped.
func NewBus(cfg Config, logger zerolog.Logger) *Bus { //nolint:gocritic // hugeParam: called once at startup
	return &Bus{
		channel: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.BufferSize,
		}, NewLoggerAdapter(logger.With().Str("component", "event-bus").Logger())),
	}
}

// Publisher returns the bus as a Watermill publisher.
func (b *Bus) Publisher() message.Publisher { return b.channel }

// Subscriber returns the bus as a Watermill subscriber.
func (b *Bus) Subscriber() message.Subscriber { return b.channel }

// Close closes every subscription.
func (b *Bus) Close() error { return b.channel.Close() }
