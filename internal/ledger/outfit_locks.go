// Wardrobe - Outfit Tracking and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package ledger

import (
	"strconv"
	"sync"

	"github.com/moby/locker"
)

// outfitLocks serializes mutations per outfit. Locks on different outfits
// never contend, and unused entries are dropped by the locker.
type outfitLocks struct {
	locker *locker.Locker
}

func newOutfitLocks() *outfitLocks {
	return &outfitLocks{locker: locker.New()}
}

// lock blocks until outfitID is free and returns its release function.
// Calling the release function more than once is a no-op.
func (o *outfitLocks) lock(outfitID int64) (unlock func()) {
	name := strconv.FormatInt(outfitID, 10)
	o.locker.Lock(name)

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = o.locker.Unlock(name) //nolint:errcheck // held by this call
		})
	}
}
