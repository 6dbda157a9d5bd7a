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

import "encoding/binary"

// Result is the output of a Hashimoto computation: a 256 bit result digest
// and a 256 bit mix digest.
// Result는 Hashimoto 계산의 결과이다
type Result struct {
	Result [32]byte
	Mix    [32]byte
}

// lookupFunc retrieves the 16 word dataset item at index i. Light mode
// recomputes it from the cache on every call; full mode indexes a
// materialized Dataset. Per the spec's re-architecture guidance (§4.9),
// these are the two providers of a single capability rather than a
// polymorphic type hierarchy.
type lookupFunc func(i uint64) []uint32

// lightLookup returns a lookupFunc that recomputes items from cache.
func lightLookup(cache *Cache) lookupFunc {
	return func(i uint64) []uint32 { return calcDatasetItem(cache, i) }
}

// fullLookup returns a lookupFunc that indexes a materialized dataset.
func fullLookup(dataset *Dataset) lookupFunc {
	return func(i uint64) []uint32 { return dataset.item(i) }
}

// hashimoto runs the mixing loop of spec §4.7 against datasetSize bytes
// addressable through lookup, returning the (result, mix) pair.
func hashimoto(header [32]byte, nonce uint64, datasetSizeBytes uint64, lookup lookupFunc) Result {
	const (
		r         = hashBytes / wordBytes // 16
		w         = mixBytes / wordBytes  // 32
		mixHashes = mixBytes / hashBytes  // 2
	)
	n := datasetSizeBytes / hashBytes

	seedInput := make([]byte, 32+8)
	copy(seedInput, header[:])
	binary.LittleEndian.PutUint64(seedInput[32:], nonce)

	s := bytesToWords(hashKeccak512(seedInput))

	mix := make([]uint32, w)
	copy(mix[0:r], s)
	copy(mix[r:2*r], s)

	for i := uint64(0); i < loopAccesses; i++ {
		p := uint64(fnv(uint32(i)^s[0], mix[i%w])) % (n / mixHashes) * mixHashes
		page := make([]uint32, w)
		for j := uint64(0); j < mixHashes; j++ {
			copy(page[j*r:(j+1)*r], lookup(p+j))
		}
		fnvWordsInto(mix, page)
	}

	cmix := make([]uint32, w/4)
	for i := 0; i < w; i += 4 {
		cmix[i/4] = fnv(fnv(fnv(mix[i], mix[i+1]), mix[i+2]), mix[i+3])
	}

	sBytes := wordsToBytes(s)
	cmixBytes := wordsToBytes(cmix)

	digestInput := make([]byte, 0, len(sBytes)+len(cmixBytes))
	digestInput = append(digestInput, sBytes...)
	digestInput = append(digestInput, cmixBytes...)
	resultDigest := hashKeccak256(digestInput)

	var out Result
	copy(out.Result[:], resultDigest)
	copy(out.Mix[:], cmixBytes)
	return out
}

// HashimotoLight computes the (result, mix) pair for header/nonce against
// datasetSizeBytes, recomputing each probed item from cache on demand.
func HashimotoLight(datasetSizeBytes uint64, cache *Cache, header [32]byte, nonce uint64) Result {
	return hashimoto(header, nonce, datasetSizeBytes, lightLookup(cache))
}

// HashimotoFull computes the (result, mix) pair for header/nonce against a
// fully materialized dataset.
func HashimotoFull(datasetSizeBytes uint64, dataset *Dataset, header [32]byte, nonce uint64) Result {
	return hashimoto(header, nonce, datasetSizeBytes, fullLookup(dataset))
}
