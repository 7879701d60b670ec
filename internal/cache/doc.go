// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package cache provides a thread-safe LRU cache with per-entry TTL.

The recommendation engine uses it to keep recent responses. Entries expire
lazily on lookup and the least recently used entry is evicted once the
cache is full. Purge drops everything at once and is driven by worn-history
events, since any wear changes freshness scores.

# Usage

	c := cache.NewLRU[*recommend.Response](1000, time.Minute)
	c.Add(key, resp)
	if resp, ok := c.Get(key); ok {
	    // use resp
	}
	c.Purge()

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because
it reorders the recency list.
*/
package cache
