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

// fnvPrime is the prime used by the FNV-1 combinator that both the dataset
// item function and Hashimoto use to pseudo-randomly blend two 32 bit words.
// fnvPrime는 FNV-1 결합자가 사용하는 소수이다
const fnvPrime = 0x01000193

// fnv combines two 32 bit words. Multiplication wraps mod 2^32, matching the
// width of uint32 exactly, so no explicit modulus is needed.
func fnv(a, b uint32) uint32 {
	return (a * fnvPrime) ^ b
}

// fnvWordsInto applies fnv element-wise over two equal-length word slices,
// writing the result into dst in place to avoid an allocation on the
// dataset item and Hashimoto hot loops.
func fnvWordsInto(dst, src []uint32) {
	if len(dst) != len(src) {
		panic("ethash: fnvWordsInto: length mismatch")
	}
	for i := range dst {
		dst[i] = fnv(dst[i], src[i])
	}
}
