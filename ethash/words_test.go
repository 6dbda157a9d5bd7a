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
	"bytes"
	"testing"
)

func TestBytesWordsRoundTrip(t *testing.T) {
	cases := [][]byte{
		make([]byte, 0),
		{1, 0, 0, 0},
		{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0},
		bytes.Repeat([]byte{0xab}, hashBytes),
	}
	for _, b := range cases {
		words := bytesToWords(b)
		back := wordsToBytes(words)
		if !bytes.Equal(b, back) {
			t.Fatalf("round trip mismatch: in=%x out=%x", b, back)
		}
	}
}

func TestBytesToWordsLittleEndian(t *testing.T) {
	words := bytesToWords([]byte{0x01, 0x02, 0x03, 0x04})
	if len(words) != 1 || words[0] != 0x04030201 {
		t.Fatalf("got %#x, want 0x04030201", words)
	}
}

func TestBytesToWordsPanicsOnMisalignedInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-multiple-of-4 length")
		}
	}()
	bytesToWords([]byte{1, 2, 3})
}

func TestXorWords(t *testing.T) {
	a := []uint32{0x1, 0x2, 0xffffffff}
	b := []uint32{0x1, 0x3, 0x00000001}
	got := xorWords(a, b)
	want := []uint32{0x0, 0x1, 0xfffffffe}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("xorWords[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestXorWordsPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	xorWords([]uint32{1}, []uint32{1, 2})
}
