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
	"hash"

	"golang.org/x/crypto/sha3"
)

// This file is the single seam between the core algorithms and the Keccak
// primitive the spec treats as an external collaborator (§1: "treat as an
// externally provided pure function with a fixed output size"). Everything
// above this file only ever calls hashKeccak256/hashKeccak512, or a
// makeHasher wrapped around newKeccak512Hash.

// hasher is a repetitive hash function allowing the same hash.Hash to be
// reused across many calls instead of allocating one per call. Grounded on
// the teacher's identically-shaped makeHasher helper.
// hasher는 동일한 hash.Hash를 재사용하는 반복적인 해시함수이다
type hasher func(dest, data []byte)

// makeHasher adapts a hash.Hash into a hasher. The returned function is not
// safe for concurrent use.
func makeHasher(h hash.Hash) hasher {
	return func(dest, data []byte) {
		h.Reset()
		h.Write(data)
		h.Sum(dest[:0])
	}
}

// hashKeccak256 returns the 32 byte Keccak-256 digest of data.
func hashKeccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// hashKeccak512 returns the 64 byte Keccak-512 digest of data.
func hashKeccak512(data []byte) []byte {
	h := sha3.NewLegacyKeccak512()
	h.Write(data)
	return h.Sum(nil)
}

// newKeccak512Hash returns a fresh hash.Hash computing Keccak-512, for
// callers that want to reuse it across many calls via makeHasher instead of
// allocating one per call.
func newKeccak512Hash() hash.Hash { return sha3.NewLegacyKeccak512() }
