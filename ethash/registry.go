// Copyright 2017 The go-ethereum Authors
// This file is part of the egihash library.
//
// The egihash library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The egihash library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the egihash library. If not, see <http://www.gnu.org/licenses/>.

package ethash

import (
	"sync"

	"github.com/ethereum/go-ethereum/log"
	lru "github.com/hashicorp/golang-lru/simplelru"
)

// registry is the process-wide, single-flight epoch -> handle map from spec
// §4.9. It is adapted from the teacher's lru type (ethash.go's `lru`,
// bounded items with a precomputed "future" slot), generalized to store
// either *Cache or *DAGHandle as an interface{} — the teacher's own
// approach, since it keeps two separate instances of the same type (one for
// caches, one for datasets) rather than a generic container. The
// race-resolution rule is made explicit here: construction happens outside
// mu, and a builder that loses a race drops its result (§4.9, §7 "Registry
// insertion failure on race is NOT an error").
// registry는 프로세스 전역의, 단일흐름(single-flight) epoch -> 핸들 맵이다
type registry struct {
	what string
	mu   sync.Mutex
	lru  *lru.LRU

	future     uint64
	futureItem interface{}
}

// newRegistry creates a registry holding at most maxItems handles,
// evicting least-recently-used handles beyond that bound.
func newRegistry(what string, maxItems int) *registry {
	if maxItems <= 0 {
		maxItems = 1
	}
	l, _ := lru.NewLRU(maxItems, func(key, value interface{}) {
		log.Trace("Evicted ethash "+what, "epoch", key)
	})
	return &registry{what: what, lru: l}
}

// get returns the handle for epoch if one is already cached, plus the
// precomputed future handle if the future slot was last set for this same
// epoch (see setFuture). Both return values may be nil.
func (reg *registry) get(epoch uint64) (current, future interface{}) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	current, _ = reg.lru.Get(epoch)
	if reg.future > 0 && reg.future == epoch {
		future = reg.futureItem
	}
	return
}

// acquire returns the handle for epoch, building it with build if it is not
// already present. build runs outside the registry lock (construction is
// long; §5 "Registry insertion — brief lock, bounded by a map operation").
// If a concurrent acquire for the same epoch wins the race, this caller's
// freshly built handle is discarded and the winner's handle is returned —
// every reader observes exactly one handle per epoch (§4.9, I3).
func (reg *registry) acquire(epoch uint64, build func() (interface{}, error)) (interface{}, error) {
	reg.mu.Lock()
	if v, ok := reg.lru.Get(epoch); ok {
		reg.mu.Unlock()
		return v, nil
	}
	reg.mu.Unlock()

	handle, err := build()
	if err != nil {
		return nil, err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if v, ok := reg.lru.Get(epoch); ok {
		// Someone else finished building the same epoch first; drop ours.
		return v, nil
	}
	reg.lru.Add(epoch, handle)
	return handle, nil
}

// setFuture installs handle as the precomputed next-epoch item, mirroring
// the teacher's "always keep (highest seen epoch)+1" lookahead.
func (reg *registry) setFuture(epoch uint64, handle interface{}) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.future = epoch
	reg.futureItem = handle
}
