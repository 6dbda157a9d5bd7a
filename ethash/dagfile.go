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
	"encoding/binary"
	"io"
)

// DAG file format constants, per spec §4.8. The magic and version numbers
// are pinned by original_source/egihash.cpp's constants block.
// DAG파일 포맷 상수들
const (
	dagMagic        = "EGIHASH_DAG\x00" // 11 byte ASCII tag + 1 NUL byte = 12 bytes
	dagMajorVersion = uint32(1)
	dagRevision     = uint32(23)
	dagMinorVersion = uint32(0)
	dagHeaderSize   = 65 // bytes, see field layout below
)

// dagHeader is the 65 byte fixed header of a DAG file.
type dagHeader struct {
	MajorVersion     uint32
	Revision         uint32
	MinorVersion     uint32
	Epoch            uint64
	CacheBeginOffset uint64
	CacheEndOffset   uint64
	DagBeginOffset   uint64
	DagEndOffset     uint64
	Reserved         uint8
}

func (h *dagHeader) marshal() []byte {
	buf := make([]byte, dagHeaderSize)
	copy(buf[0:12], dagMagic)
	binary.LittleEndian.PutUint32(buf[12:16], h.MajorVersion)
	binary.LittleEndian.PutUint32(buf[16:20], h.Revision)
	binary.LittleEndian.PutUint32(buf[20:24], h.MinorVersion)
	binary.LittleEndian.PutUint64(buf[24:32], h.Epoch)
	binary.LittleEndian.PutUint64(buf[32:40], h.CacheBeginOffset)
	binary.LittleEndian.PutUint64(buf[40:48], h.CacheEndOffset)
	binary.LittleEndian.PutUint64(buf[48:56], h.DagBeginOffset)
	binary.LittleEndian.PutUint64(buf[56:64], h.DagEndOffset)
	buf[64] = h.Reserved
	return buf
}

func unmarshalDagHeader(buf []byte) (*dagHeader, error) {
	if len(buf) < dagHeaderSize {
		return nil, corruptDag(ReasonShortFile, "header truncated: got %d bytes, want %d", len(buf), dagHeaderSize)
	}
	if !bytes.Equal(buf[0:12], []byte(dagMagic)) {
		return nil, corruptDag(ReasonBadMagic, "magic mismatch: got %x", buf[0:12])
	}
	h := &dagHeader{
		MajorVersion:     binary.LittleEndian.Uint32(buf[12:16]),
		Revision:         binary.LittleEndian.Uint32(buf[16:20]),
		MinorVersion:     binary.LittleEndian.Uint32(buf[20:24]),
		Epoch:            binary.LittleEndian.Uint64(buf[24:32]),
		CacheBeginOffset: binary.LittleEndian.Uint64(buf[32:40]),
		CacheEndOffset:   binary.LittleEndian.Uint64(buf[40:48]),
		DagBeginOffset:   binary.LittleEndian.Uint64(buf[48:56]),
		DagEndOffset:     binary.LittleEndian.Uint64(buf[56:64]),
		Reserved:         buf[64],
	}
	if h.MajorVersion != dagMajorVersion || h.Revision != dagRevision {
		return nil, corruptDag(ReasonBadVersion, "got major=%d revision=%d, want major=%d revision=%d",
			h.MajorVersion, h.Revision, dagMajorVersion, dagRevision)
	}
	return h, nil
}

// DAGHandle is an immutable, epoch-bound {cache, dataset} pair, the unit the
// registry hands out (§3 "DAG handle").
// DAGHandle는 불변이며 에포크에 귀속된 {cache, dataset} 쌍이다
type DAGHandle struct {
	epoch   uint64
	size    uint64
	cache   *Cache
	dataset *Dataset
}

// Epoch returns the epoch this handle was built for.
func (h *DAGHandle) Epoch() uint64 { return h.epoch }

// SizeBytes returns the dataset size in bytes for this handle's epoch.
func (h *DAGHandle) SizeBytes() uint64 { return h.size }

// Cache returns the handle's cache, usable for light-mode Hashimoto even
// when the full dataset has also been materialized.
func (h *DAGHandle) Cache() *Cache { return h.cache }

// Dataset returns the handle's materialized dataset.
func (h *DAGHandle) Dataset() *Dataset { return h.dataset }

// SaveDAG writes handle to w using the layout in spec §4.8. path handling
// is deliberately not this function's concern (§1): callers that persist to
// disk open the file themselves and pass it in.
func SaveDAG(handle *DAGHandle, w io.Writer, obs Observer) error {
	cacheBytes := handle.cache.Bytes()
	dagBytes := handle.dataset.Bytes()

	header := &dagHeader{
		MajorVersion:     dagMajorVersion,
		Revision:         dagRevision,
		MinorVersion:     dagMinorVersion,
		Epoch:            handle.epoch,
		CacheBeginOffset: dagHeaderSize,
		CacheEndOffset:   uint64(dagHeaderSize) + uint64(len(cacheBytes)),
		DagBeginOffset:   uint64(dagHeaderSize) + uint64(len(cacheBytes)),
		DagEndOffset:     uint64(dagHeaderSize) + uint64(len(cacheBytes)) + uint64(len(dagBytes)),
	}

	if !callObserver(obs, 0, 3, PhaseDagSaving) {
		return ErrCancelled
	}
	if _, err := w.Write(header.marshal()); err != nil {
		return &ErrIoFailure{Err: err}
	}
	if !callObserver(obs, 1, 3, PhaseDagSaving) {
		return ErrCancelled
	}
	if _, err := w.Write(cacheBytes); err != nil {
		return &ErrIoFailure{Err: err}
	}
	if !callObserver(obs, 2, 3, PhaseDagSaving) {
		return ErrCancelled
	}
	if _, err := w.Write(dagBytes); err != nil {
		return &ErrIoFailure{Err: err}
	}
	callObserver(obs, 3, 3, PhaseDagSaving)
	return nil
}

// LoadDAG reads a DAGHandle from r, validating the header and section sizes
// against cacheSize/datasetSize for the file's declared epoch, per spec
// §4.8's load invariants.
func LoadDAG(r io.Reader, obs Observer) (*DAGHandle, error) {
	if !callObserver(obs, 0, 1, PhaseDagLoading) {
		return nil, ErrCancelled
	}

	all, err := io.ReadAll(r)
	if err != nil {
		return nil, &ErrIoFailure{Err: err}
	}
	header, err := unmarshalDagHeader(all)
	if err != nil {
		return nil, err
	}

	wantCacheSize := cacheSize(header.Epoch * epochLength)
	wantDagSize := datasetSize(header.Epoch * epochLength)

	if header.CacheBeginOffset > header.CacheEndOffset ||
		header.DagBeginOffset > header.DagEndOffset ||
		header.CacheEndOffset > header.DagBeginOffset ||
		header.CacheBeginOffset < dagHeaderSize {
		return nil, corruptDag(ReasonBadSizes, "offsets out of order: cache=[%d,%d) dag=[%d,%d)",
			header.CacheBeginOffset, header.CacheEndOffset, header.DagBeginOffset, header.DagEndOffset)
	}
	if header.CacheEndOffset-header.CacheBeginOffset != wantCacheSize {
		return nil, corruptDag(ReasonBadSizes, "cache section is %d bytes, want %d",
			header.CacheEndOffset-header.CacheBeginOffset, wantCacheSize)
	}
	if header.DagEndOffset-header.DagBeginOffset != wantDagSize {
		return nil, corruptDag(ReasonBadSizes, "dag section is %d bytes, want %d",
			header.DagEndOffset-header.DagBeginOffset, wantDagSize)
	}
	if uint64(len(all)) < header.DagEndOffset {
		return nil, corruptDag(ReasonShortFile, "file is %d bytes, want at least %d", len(all), header.DagEndOffset)
	}

	cacheBytes := all[header.CacheBeginOffset:header.CacheEndOffset]
	dagBytes := all[header.DagBeginOffset:header.DagEndOffset]

	cache := &Cache{epoch: header.Epoch, seed: seedHash(header.Epoch * epochLength), data: bytesToWords(cacheBytes)}
	if !callObserver(obs, 1, 2, PhaseCacheLoading) {
		return nil, ErrCancelled
	}
	dataset := &Dataset{epoch: header.Epoch, data: bytesToWords(dagBytes)}
	if !callObserver(obs, 1, 1, PhaseDagLoading) {
		return nil, ErrCancelled
	}

	return &DAGHandle{
		epoch:   header.Epoch,
		size:    wantDagSize,
		cache:   cache,
		dataset: dataset,
	}, nil
}
