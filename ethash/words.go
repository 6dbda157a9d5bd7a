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

// wordBytes is the number of bytes in a single word of the cache/dataset.
// wordBytes는 캐시/데이터셋의 단일 word가 가지는 바이트수이다
const wordBytes = 4

// bytesToWords reinterprets b, a little-endian byte buffer whose length is a
// multiple of wordBytes, as a slice of 32 bit words. The conversion is total
// and bit-exact: wordsToBytes(bytesToWords(b)) == b for any well-formed b.
func bytesToWords(b []byte) []uint32 {
	if len(b)%wordBytes != 0 {
		panic("ethash: bytesToWords: length not a multiple of wordBytes")
	}
	words := make([]uint32, len(b)/wordBytes)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[i*wordBytes:])
	}
	return words
}

// wordsToBytes is the inverse of bytesToWords.
func wordsToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*wordBytes)
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[i*wordBytes:], w)
	}
	return b
}

// xorWords returns the element-wise XOR of a and b, which must be of equal
// length. Used by the cache builder's RandMemoHash-style strengthening round.
func xorWords(a, b []uint32) []uint32 {
	if len(a) != len(b) {
		panic("ethash: xorWords: length mismatch")
	}
	out := make([]uint32, len(a))
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}
