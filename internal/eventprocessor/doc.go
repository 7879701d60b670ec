// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package eventprocessor carries worn-history events from the ledger to
// in-process subscribers over a Watermill GoChannel.
//
// # Architecture
//
//	┌────────────┐  PublishHistoryEvent  ┌─────────────┐
//	│   Ledger   │ ────────────────────► │  Publisher  │  circuit breaker
//	└────────────┘                       └──────┬──────┘
//	                                            │ history.recorded / history.removed
//	                                            ▼
//	                                     ┌─────────────┐
//	                                     │  GoChannel  │
//	                                     └──────┬──────┘
//	                                            ▼
//	                                     ┌─────────────┐
//	                                     │ Invalidator │  clears the recommendation cache
//	                                     └─────────────┘
//
// Events are published after the ledger transaction commits. A failed or
// rejected publish is logged and counted but never fails the mutation, so a
// subscriber can miss an event; the recommendation cache TTL bounds how long
// a missed invalidation stays visible.
//
// # Supervision
//
// Invalidator implements suture.Service. Each Serve call builds a fresh
// Watermill router on the shared subscriber, so a restarted service resumes
// consuming without losing the bus.
package eventprocessor
