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
	"runtime"
	"sync"
	"sync/atomic"
)

// Dataset is the fully materialized DAG for an epoch: a flat []uint32
// buffer of n items of 16 words each, same "contiguous buffer" shape as
// Cache.
// Dataset는 에포크에 대해 완전히 구체화된 DAG이다
type Dataset struct {
	epoch uint64
	data  []uint32 // n * 16 words, flat
}

// Epoch returns the epoch this dataset was built for.
func (d *Dataset) Epoch() uint64 { return d.epoch }

// Len returns the number of hashBytes items in the dataset.
func (d *Dataset) Len() int { return len(d.data) / (hashBytes / wordBytes) }

// SizeBytes returns the dataset's size in bytes.
func (d *Dataset) SizeBytes() uint64 { return uint64(len(d.data)) * wordBytes }

// item returns the 16 word view of item i.
func (d *Dataset) item(i uint64) []uint32 {
	const r = hashBytes / wordBytes
	return d.data[i*r : i*r+r]
}

// Bytes returns the dataset contents serialized little-endian, item by
// item, per the DAG file layout (§4.8).
func (d *Dataset) Bytes() []byte { return wordsToBytes(d.data) }

// calcDatasetItem computes DAG item i from cache, per spec §4.5. r is the
// number of words per item (hashBytes/wordBytes = 16).
func calcDatasetItem(cache *Cache, i uint64) []uint32 {
	const r = hashBytes / wordBytes
	n := uint64(cache.Len())

	mix := make([]uint32, r)
	copy(mix, cache.item(int(i%n)))
	mix[0] ^= uint32(i)

	keccak512 := makeHasher(newKeccak512Hash())
	buf := make([]byte, hashBytes)
	keccak512(buf, wordsToBytes(mix))
	mix = bytesToWords(buf)

	for j := uint64(0); j < datasetParents; j++ {
		parent := uint64(fnv(uint32(i^j), mix[j%r])) % n
		fnvWordsInto(mix, cache.item(int(parent)))
	}

	keccak512(buf, wordsToBytes(mix))
	return bytesToWords(buf)
}

// generateDataset materializes every item of the dataset for epoch from
// cache, per spec §4.6.
func generateDataset(epoch uint64, cache *Cache, obs Observer) (*Dataset, error) {
	n := datasetSize(epoch*epochLength) / hashBytes
	return buildDataset(epoch, n, cache, obs)
}

// buildDataset does the actual construction for n items; generateDataset is
// the epoch-sized entry point, with n split out so tests can build tiny
// datasets directly rather than materializing a real epoch's worth of
// items. Construction is embarrassingly parallel: this implementation
// splits the item range across GOMAXPROCS workers, each owning a disjoint
// slice of the backing buffer so no synchronization is needed beyond a
// final join.
func buildDataset(epoch uint64, n uint64, cache *Cache, obs Observer) (*Dataset, error) {
	const r = hashBytes / wordBytes

	data := make([]uint32, n*r)

	workers := runtime.GOMAXPROCS(0)
	if uint64(workers) > n {
		workers = int(n)
	}
	if workers < 1 {
		workers = 1
	}

	var (
		wg        sync.WaitGroup
		doneCount uint64
		obsMu     sync.Mutex
		cancelled atomic.Bool
	)

	chunk := n / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}

	for w := 0; w < workers; w++ {
		start := uint64(w) * chunk
		end := start + chunk
		if w == workers-1 || end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end uint64) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if cancelled.Load() {
					return
				}
				item := calcDatasetItem(cache, i)
				copy(data[i*r:i*r+r], item)

				dc := atomic.AddUint64(&doneCount, 1)
				if dc%observerStride == 0 {
					obsMu.Lock()
					ok := callObserver(obs, int(dc), int(n), PhaseDagGeneration)
					obsMu.Unlock()
					if !ok {
						cancelled.Store(true)
						return
					}
				}
			}
		}(start, end)
	}
	wg.Wait()

	if cancelled.Load() {
		return nil, ErrCancelled
	}
	if !callObserver(obs, int(n), int(n), PhaseDagGeneration) {
		return nil, ErrCancelled
	}

	return &Dataset{epoch: epoch, data: data}, nil
}
