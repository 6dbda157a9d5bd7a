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

import "testing"

func TestFnv(t *testing.T) {
	var maxU32 uint32 = 0xffffffff
	cases := []struct {
		a, b, want uint32
	}{
		{0, 0, 0},
		{1, 0, fnvPrime},
		{0, 1, 1},
		{maxU32, maxU32, (maxU32*uint32(fnvPrime) ^ maxU32)},
	}
	for _, c := range cases {
		if got := fnv(c.a, c.b); got != c.want {
			t.Errorf("fnv(%#x, %#x) = %#x, want %#x", c.a, c.b, got, c.want)
		}
	}
}

func TestFnvWordsInto(t *testing.T) {
	dst := []uint32{1, 2, 3}
	src := []uint32{4, 5, 6}
	want := []uint32{fnv(1, 4), fnv(2, 5), fnv(3, 6)}
	fnvWordsInto(dst, src)
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("fnvWordsInto[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestFnvWordsIntoPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	fnvWordsInto([]uint32{1, 2}, []uint32{1})
}
