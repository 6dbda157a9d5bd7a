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

import "sync"

// Protocol constants. These mirror the authoritative values in the spec
// this package implements.
// 프로토콜 상수들
const (
	hashBytes          = 64       // HASH_BYTES: bytes in a cache/dataset item
	mixBytes           = 128      // MIX_BYTES: width of the Hashimoto mix
	datasetParents     = 256      // DATASET_PARENTS: parents per dataset item
	cacheRounds        = 3        // CACHE_ROUNDS: strengthening rounds in the cache builder
	loopAccesses       = 64       // ACCESSES: probes per Hashimoto call
	epochLength        = 30000    // EPOCH_LENGTH: blocks per epoch
	cacheBytesInit     = 1 << 24  // CACHE_BYTES_INIT
	cacheBytesGrowth   = 1 << 17  // CACHE_BYTES_GROWTH
	datasetBytesInit   = 1 << 30  // DATASET_BYTES_INIT
	datasetBytesGrowth = 1 << 23  // DATASET_BYTES_GROWTH
	maxEpoch           = 2048     // sanity bound used by the future-item lookahead in the registry
)

// epoch returns the epoch a block number belongs to.
func epoch(block uint64) uint64 {
	return block / epochLength
}

// isPrime reports whether x is prime using trial division up to floor(sqrt(x)).
// The spec notes this is adequate because x never exceeds a few billion in
// any realistic horizon (§4.1).
func isPrime(x uint64) bool {
	if x < 2 {
		return false
	}
	if x%2 == 0 {
		return x == 2
	}
	for d := uint64(3); d*d <= x; d += 2 {
		if x%d == 0 {
			return false
		}
	}
	return true
}

// cacheSize returns the number of bytes in the verification cache for the
// epoch containing block. It is the largest value not exceeding
// cacheBytesInit + cacheBytesGrowth*epoch - hashBytes such that dividing by
// hashBytes yields a prime count of items.
func cacheSize(block uint64) uint64 {
	size := uint64(cacheBytesInit) + uint64(cacheBytesGrowth)*epoch(block) - hashBytes
	for !isPrime(size / hashBytes) {
		size -= 2 * hashBytes
	}
	return size
}

// datasetSize returns the number of bytes in the full dataset (DAG) for the
// epoch containing block. It is the largest value not exceeding
// datasetBytesInit + datasetBytesGrowth*epoch - mixBytes such that dividing
// by mixBytes yields a prime count of mix-width items.
func datasetSize(block uint64) uint64 {
	size := uint64(datasetBytesInit) + uint64(datasetBytesGrowth)*epoch(block) - mixBytes
	for !isPrime(size / mixBytes) {
		size -= 2 * mixBytes
	}
	return size
}

// seedCache memoizes the seed hash chain: computing seed(e) naively costs
// O(e) Keccak-256 calls, and callers frequently ask for consecutive epochs
// (the "current" and "future" cache in ethash.go's cacheFor). The spec
// explicitly allows memoization (§4.1).
// seedCache는 시드해시 체인을 메모이즈한다
var seedCache sync.Map // epoch uint64 -> [32]byte

// seedHash returns the 32 byte seed for the epoch containing block. seed(0)
// is the all-zero constant; seed(e) = H256(seed(e-1)) for e >= 1.
func seedHash(block uint64) []byte {
	e := epoch(block)
	if v, ok := seedCache.Load(e); ok {
		s := v.([32]byte)
		out := make([]byte, 32)
		copy(out, s[:])
		return out
	}
	seed := make([]byte, 32)
	start := uint64(0)
	if e > 0 {
		if v, ok := seedCache.Load(e - 1); ok {
			s := v.([32]byte)
			copy(seed, s[:])
			start = e - 1
		}
	}
	for i := start; i < e; i++ {
		seed = hashKeccak256(seed)
	}
	var stored [32]byte
	copy(stored[:], seed)
	seedCache.Store(e, stored)
	return seed
}
