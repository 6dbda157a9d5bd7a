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
	"os"
	"path/filepath"
	"testing"
)

// smallHandle builds a tiny DAGHandle (17 cache items, 13 dataset items)
// that declares epoch 0. Its section sizes are far below cacheSize(0) and
// datasetSize(0), so LoadDAG's epoch-derived size check rejects it; tests
// use it for SaveDAG framing and for that rejection path.
func smallHandle(t *testing.T) *DAGHandle {
	t.Helper()
	cache, err := buildCache(0, 17, testSeed(), nil)
	if err != nil {
		t.Fatalf("buildCache: %v", err)
	}
	dataset, err := buildDataset(0, 13, cache, nil)
	if err != nil {
		t.Fatalf("buildDataset: %v", err)
	}
	return &DAGHandle{epoch: 0, size: dataset.SizeBytes(), cache: cache, dataset: dataset}
}

func TestDagHeaderMarshalRoundTrip(t *testing.T) {
	h := &dagHeader{
		MajorVersion:     dagMajorVersion,
		Revision:         dagRevision,
		MinorVersion:     dagMinorVersion,
		Epoch:            7,
		CacheBeginOffset: dagHeaderSize,
		CacheEndOffset:   dagHeaderSize + 100,
		DagBeginOffset:   dagHeaderSize + 100,
		DagEndOffset:     dagHeaderSize + 200,
	}
	buf := h.marshal()
	if len(buf) != dagHeaderSize {
		t.Fatalf("marshal() length = %d, want %d", len(buf), dagHeaderSize)
	}
	back, err := unmarshalDagHeader(buf)
	if err != nil {
		t.Fatalf("unmarshalDagHeader: %v", err)
	}
	if *back != *h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, h)
	}
}

func TestUnmarshalDagHeaderBadMagic(t *testing.T) {
	h := &dagHeader{MajorVersion: dagMajorVersion, Revision: dagRevision}
	buf := h.marshal()
	buf[0] ^= 0xff
	_, err := unmarshalDagHeader(buf)
	corrupt, ok := err.(*CorruptDagError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CorruptDagError", err, err)
	}
	if corrupt.Reason != ReasonBadMagic {
		t.Fatalf("Reason = %v, want ReasonBadMagic", corrupt.Reason)
	}
}

func TestUnmarshalDagHeaderBadVersion(t *testing.T) {
	h := &dagHeader{MajorVersion: dagMajorVersion + 1, Revision: dagRevision}
	buf := h.marshal()
	_, err := unmarshalDagHeader(buf)
	corrupt, ok := err.(*CorruptDagError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CorruptDagError", err, err)
	}
	if corrupt.Reason != ReasonBadVersion {
		t.Fatalf("Reason = %v, want ReasonBadVersion", corrupt.Reason)
	}
}

func TestUnmarshalDagHeaderShortFile(t *testing.T) {
	_, err := unmarshalDagHeader(make([]byte, 10))
	corrupt, ok := err.(*CorruptDagError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CorruptDagError", err, err)
	}
	if corrupt.Reason != ReasonShortFile {
		t.Fatalf("Reason = %v, want ReasonShortFile", corrupt.Reason)
	}
}

func TestSaveLoadDagRejectsUndersizedSections(t *testing.T) {
	handle := smallHandle(t)

	var buf bytes.Buffer
	if err := SaveDAG(handle, &buf, nil); err != nil {
		t.Fatalf("SaveDAG: %v", err)
	}

	// LoadDAG validates section sizes against cacheSize(0)/datasetSize(0),
	// which smallHandle's tiny cache/dataset intentionally don't satisfy;
	// this exercises the size-validation path itself.
	_, err := LoadDAG(bytes.NewReader(buf.Bytes()), nil)
	corrupt, ok := err.(*CorruptDagError)
	if !ok {
		t.Fatalf("err = %v (%T), want *CorruptDagError (bad sizes)", err, err)
	}
	if corrupt.Reason != ReasonBadSizes {
		t.Fatalf("Reason = %v, want ReasonBadSizes", corrupt.Reason)
	}
}

func TestSaveDagSectionsRoundTrip(t *testing.T) {
	// Building a handle with epoch 0's real cacheSize/datasetSize would be
	// too slow for a unit test, so this uses smallHandle and checks the
	// byte-level codec (header + section framing + word codec) directly:
	// it parses the header with unmarshalDagHeader and slices the sections
	// out itself, skipping LoadDAG and its epoch-size check.
	handle := smallHandle(t)
	cacheBytes := handle.cache.Bytes()
	dagBytes := handle.dataset.Bytes()

	var buf bytes.Buffer
	if err := SaveDAG(handle, &buf, nil); err != nil {
		t.Fatalf("SaveDAG: %v", err)
	}

	all := buf.Bytes()
	header, err := unmarshalDagHeader(all)
	if err != nil {
		t.Fatalf("unmarshalDagHeader: %v", err)
	}
	if header.Epoch != handle.epoch {
		t.Fatalf("Epoch = %d, want %d", header.Epoch, handle.epoch)
	}
	gotCache := all[header.CacheBeginOffset:header.CacheEndOffset]
	gotDag := all[header.DagBeginOffset:header.DagEndOffset]
	if !bytes.Equal(gotCache, cacheBytes) {
		t.Fatal("cache section did not round trip bit-exactly")
	}
	if !bytes.Equal(gotDag, dagBytes) {
		t.Fatal("dag section did not round trip bit-exactly")
	}
}

func TestSaveDagToFileAndReadBack(t *testing.T) {
	handle := smallHandle(t)
	path := filepath.Join(t.TempDir(), "test.dag")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create: %v", err)
	}
	if err := SaveDAG(handle, f, nil); err != nil {
		f.Close()
		t.Fatalf("SaveDAG: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	wantLen := dagHeaderSize + len(handle.cache.Bytes()) + len(handle.dataset.Bytes())
	if len(raw) != wantLen {
		t.Fatalf("file length = %d, want %d", len(raw), wantLen)
	}
}

func TestSaveDagCancellation(t *testing.T) {
	handle := smallHandle(t)
	obs := func(step, max int, phase Phase) bool { return false }
	var buf bytes.Buffer
	err := SaveDAG(handle, &buf, obs)
	if err != ErrCancelled {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}

func TestLoadDagCancellation(t *testing.T) {
	handle := smallHandle(t)
	var buf bytes.Buffer
	if err := SaveDAG(handle, &buf, nil); err != nil {
		t.Fatalf("SaveDAG: %v", err)
	}

	obs := func(step, max int, phase Phase) bool { return false }
	_, err := LoadDAG(bytes.NewReader(buf.Bytes()), obs)
	if err != ErrCancelled {
		t.Fatalf("err = %v, want ErrCancelled", err)
	}
}
