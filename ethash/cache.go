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

// Cache is an epoch-bound sequence of n items of hashBytes (64) bytes each,
// held as a flat []uint32 buffer (16 words per item) per the "large
// contiguous buffers" guidance in the spec's design notes: items are views
// into one allocation rather than n separately allocated slices.
// Cache는 n개의 64바이트 아이템을 갖는 에포크에 귀속된 시퀀스이다
type Cache struct {
	epoch uint64
	seed  []byte
	data  []uint32 // n * 16 words, flat
}

// Epoch returns the epoch this cache was built for.
func (c *Cache) Epoch() uint64 { return c.epoch }

// Seed returns the 32 byte seed this cache was built from.
func (c *Cache) Seed() []byte { return c.seed }

// Len returns the number of hashBytes items in the cache.
func (c *Cache) Len() int { return len(c.data) / (hashBytes / wordBytes) }

// SizeBytes returns the cache's size in bytes (Len() * hashBytes).
func (c *Cache) SizeBytes() uint64 { return uint64(len(c.data)) * wordBytes }

// item returns the 16 word view of item i, i taken mod Len() by callers that
// need wraparound (the dataset item function indexes this way).
func (c *Cache) item(i int) []uint32 {
	const r = hashBytes / wordBytes
	return c.data[i*r : i*r+r]
}

// Bytes returns the cache contents serialized little-endian, item by item,
// as specified by the DAG file layout (§4.8).
func (c *Cache) Bytes() []byte { return wordsToBytes(c.data) }

// generateCache builds the n = cacheSize(epoch)/hashBytes item cache for the
// given epoch and seed, per spec §4.4.
func generateCache(epoch uint64, seed []byte, obs Observer) (*Cache, error) {
	n := int(cacheSize(epoch*epochLength) / hashBytes)
	return buildCache(epoch, n, seed, obs)
}

// buildCache does the actual construction for n items; generateCache is the
// epoch-sized entry point, with n split out so tests can exercise the
// builder at sizes far smaller than a real epoch's cache, the way the
// reference implementations size off of a caller-supplied buffer rather
// than recomputing it internally.
//
// Phase A seeds the cache with a chained Keccak-512 hash; Phase B runs
// cacheRounds RandMemoHash-style strengthening passes. Phase B writes the
// rehashed item back to index j, the position it read from — the spec
// fixes a source bug that instead indexed by the outer round counter (see
// DESIGN.md Open Question 1).
func buildCache(epoch uint64, n int, seed []byte, obs Observer) (*Cache, error) {
	const r = hashBytes / wordBytes

	data := make([]uint32, n*r)

	// Phase A: cache[0] = H512(seed); cache[i] = H512(cache[i-1]).
	keccak512 := makeHasher(newKeccak512Hash())
	buf := make([]byte, hashBytes)
	keccak512(buf, seed)
	copy(data[0:r], bytesToWords(buf))
	for i := 1; i < n; i++ {
		prev := wordsToBytes(data[(i-1)*r : i*r])
		keccak512(buf, prev)
		copy(data[i*r:i*r+r], bytesToWords(buf))
		if i%observerStride == 0 && !callObserver(obs, i, n, PhaseCacheSeeding) {
			return nil, ErrCancelled
		}
	}
	if !callObserver(obs, n, n, PhaseCacheSeeding) {
		return nil, ErrCancelled
	}

	// Phase B: cacheRounds strengthening passes.
	tmp := make([]uint32, r)
	total := cacheRounds * n
	done := 0
	for round := 0; round < cacheRounds; round++ {
		for j := 0; j < n; j++ {
			item := data[j*r : j*r+r]
			v := int(item[0]) % n
			srcA := data[((j-1+n)%n)*r : ((j-1+n)%n)*r+r]
			srcB := data[v*r : v*r+r]
			copy(tmp, xorWords(srcA, srcB))
			h := wordsToBytes(tmp)
			keccak512(buf, h)
			copy(item, bytesToWords(buf))

			done++
			if done%observerStride == 0 && !callObserver(obs, done, total, PhaseCacheGeneration) {
				return nil, ErrCancelled
			}
		}
	}
	if !callObserver(obs, total, total, PhaseCacheGeneration) {
		return nil, ErrCancelled
	}

	cachesBuiltCounter.Inc(1)
	return &Cache{epoch: epoch, seed: seed, data: data}, nil
}
