// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package services provides suture.Service wrappers for wardrobe components.

Each wrapper translates a component's lifecycle into suture's
Serve(ctx) error pattern:

  - HTTPServerService: ListenAndServe plus graceful Shutdown on cancel.
  - CheckpointService: a ticker loop flushing the database WAL.

The event invalidator in eventprocessor implements suture.Service itself
and needs no wrapper.
*/
package services
