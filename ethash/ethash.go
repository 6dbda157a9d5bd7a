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

// Package ethash implements an Ethash-family memory-hard proof-of-work
// engine: seed/cache/DAG derivation and the Hashimoto mixing loop, an
// epoch-keyed process-wide DAG registry, and a persistent on-disk DAG
// format. It does not implement a mining loop, difficulty comparison, or
// networking — those are left to callers.
// ethash package는 메모리 하드 pow 엔진을 구현한다
package ethash

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"unsafe"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/ethereum/go-ethereum/log"
)

// isLittleEndian returns whether the local system is running in little or
// big endian byte order. The on-disk DAG format and every word conversion
// in this package is little-endian regardless of host order (§9); this is
// only used to pick a file name suffix so host-mismatched caches aren't
// silently reused.
// isLittleEndian 함수는 로컬 시스템이 어떤 바이트 오더에서 동작하는지 반환한다
func isLittleEndian() bool {
	n := uint32(0x01020304)
	return *(*byte)(unsafe.Pointer(&n)) == 0x04
}

// memoryMap memory-maps an existing DAG file read-only, loads it through
// the DAG file codec, and unmaps it again: LoadDAG copies the cache/dataset
// bytes out of the mapped region (via bytesToWords), so nothing needs to
// stay mapped once it returns.
func memoryMap(path string, obs Observer) (*DAGHandle, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mem, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mem.Unmap()

	return LoadDAG(bytes.NewReader(mem), obs)
}

// memoryMapAndGenerate builds a handle with generate, writes it to a
// temporary file in the same directory as path, and atomically renames it
// into place — mirroring the teacher's memoryMapAndGenerate, adapted to
// call SaveDAG instead of filling a raw []uint32 buffer directly.
func memoryMapAndGenerate(path string, generate func() (*DAGHandle, error), obs Observer) (*DAGHandle, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	handle, err := generate()
	if err != nil {
		return nil, err
	}

	temp := path + "." + strconv.Itoa(rand.Int())
	f, err := os.Create(temp)
	if err != nil {
		return nil, err
	}
	if err := SaveDAG(handle, f, obs); err != nil {
		f.Close()
		os.Remove(temp)
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(temp)
		return nil, err
	}
	if err := os.Rename(temp, path); err != nil {
		return nil, err
	}
	return handle, nil
}

func dagFileName(epoch uint64, seed []byte) string {
	var endian string
	if !isLittleEndian() {
		endian = ".be"
	}
	return fmt.Sprintf("full-R%d-%x%s", dagRevision, seed[:8], endian)
}

// Mode defines the type and amount of PoW verification an Ethash engine
// performs.
// Mode는 Ethash 엔진이 수행하는 pow 검증의 종류와 양을 정의한다
type Mode uint

const (
	ModeNormal Mode = iota
	ModeShared
	ModeTest
)

// Config are the configuration parameters of an Ethash engine. Only the
// full dataset is ever persisted to disk (DatasetDir): the cache is cheap
// enough (tens of megabytes) to regenerate on demand and is not itself
// independently cached to disk, matching how a loaded DAGHandle already
// carries its cache bytes.
// Config는 Ethash 엔진의 설정 파라미터이다
type Config struct {
	CachesInMem   int
	DatasetDir    string
	DatasetsInMem int
	PowMode       Mode
}

// Ethash holds the epoch-keyed caches/dataset registries described in spec
// §4.9, plus whatever on-disk directories the caller configured.
// Ethash구조체는 §4.9의 에포크 단위 캐시/데이터셋 레지스트리를 보관한다
type Ethash struct {
	config Config

	caches *registry // epoch -> *Cache, cheap, used for light-mode verification
	dags   *registry // epoch -> *DAGHandle, expensive, used for full-mode hashing

	shared *Ethash // shared instance to avoid duplicate generation within a process
}

// sharedEthash is a full instance that may be shared between multiple users
// within the same process, mirroring the teacher's singleton.
var sharedEthash = New(Config{CachesInMem: 3, DatasetsInMem: 1, PowMode: ModeNormal})

// New creates an Ethash engine from the given configuration.
func New(config Config) *Ethash {
	if config.CachesInMem <= 0 {
		config.CachesInMem = 1
	}
	if config.DatasetsInMem <= 0 {
		config.DatasetsInMem = 1
	}
	return &Ethash{
		config: config,
		caches: newRegistry("cache", config.CachesInMem),
		dags:   newRegistry("dataset", config.DatasetsInMem),
	}
}

// NewTester creates a small-sized Ethash engine useful only for testing
// purposes; it does not shrink the algorithm, only the in-memory LRU bounds.
func NewTester() *Ethash {
	return New(Config{CachesInMem: 1, DatasetsInMem: 1, PowMode: ModeTest})
}

// NewShared creates an Ethash engine sharing caches/datasets with the
// process-wide shared instance.
func NewShared() *Ethash {
	return &Ethash{shared: sharedEthash}
}

// cacheFor retrieves (building if necessary) the verification cache for the
// epoch containing block, and eagerly kicks off construction of the next
// epoch's cache in the background.
func (e *Ethash) cacheFor(block uint64, obs Observer) (*Cache, error) {
	if e.shared != nil {
		return e.shared.cacheFor(block, obs)
	}
	ep := epoch(block)

	buildEpoch := func(ep uint64) func() (interface{}, error) {
		return func() (interface{}, error) {
			seed := seedHash(ep * epochLength)
			return generateCache(ep, seed, obs)
		}
	}

	v, err := e.caches.acquire(ep, buildEpoch(ep))
	if err != nil {
		return nil, err
	}
	current := v.(*Cache)

	if _, future := e.caches.get(ep); future == nil && ep+1 < maxEpoch {
		go func() {
			if h, err := e.caches.acquire(ep+1, buildEpoch(ep+1)); err == nil {
				e.caches.setFuture(ep+1, h)
			}
		}()
	}
	return current, nil
}

// dagFor retrieves (building or loading if necessary) the full DAG handle
// for the epoch containing block.
func (e *Ethash) dagFor(block uint64, obs Observer) (*DAGHandle, error) {
	if e.shared != nil {
		return e.shared.dagFor(block, obs)
	}
	ep := epoch(block)

	v, err := e.dags.acquire(ep, func() (interface{}, error) { return e.buildOrLoadDAG(ep, obs) })
	if err != nil {
		return nil, err
	}
	return v.(*DAGHandle), nil
}

// buildOrLoadDAG implements the disk-backed generation path: try to load an
// existing file first, and only regenerate (and persist, if a directory is
// configured) on a miss.
func (e *Ethash) buildOrLoadDAG(ep uint64, obs Observer) (*DAGHandle, error) {
	seed := seedHash(ep * epochLength)
	build := func() (*DAGHandle, error) {
		cache, err := e.cacheFor(ep*epochLength, obs)
		if err != nil {
			return nil, err
		}
		dataset, err := generateDataset(ep, cache, obs)
		if err != nil {
			return nil, err
		}
		dagsBuiltCounter.Inc(1)
		return &DAGHandle{epoch: ep, size: dataset.SizeBytes(), cache: cache, dataset: dataset}, nil
	}

	if e.config.DatasetDir == "" {
		return build()
	}

	path := filepath.Join(e.config.DatasetDir, dagFileName(ep, seed))
	logger := log.New("epoch", ep)

	if handle, err := memoryMap(path, obs); err == nil {
		logger.Debug("Loaded ethash DAG from disk")
		dagsLoadedFromDiskCounter.Inc(1)
		return handle, nil
	}

	handle, err := memoryMapAndGenerate(path, build, obs)
	if err != nil {
		logger.Error("Failed to persist generated ethash DAG", "err", err)
		return build()
	}
	return handle, nil
}

// SeedHash is the seed used to derive a verification cache and mining
// dataset for the epoch containing block.
func SeedHash(block uint64) []byte { return seedHash(block) }

// CacheSize returns the size in bytes of the verification cache for the
// epoch containing block.
func CacheSize(block uint64) uint64 { return cacheSize(block) }

// DatasetSize returns the size in bytes of the full dataset for the epoch
// containing block.
func DatasetSize(block uint64) uint64 { return datasetSize(block) }

// MakeCache builds (and returns) the verification cache for the epoch
// containing block, using e's registries.
func (e *Ethash) MakeCache(block uint64, obs Observer) (*Cache, error) {
	return e.cacheFor(block, obs)
}

// MakeDAG builds (and returns) the full DAG handle for the epoch containing
// block, using e's registries and, if configured, e's on-disk DatasetDir.
func (e *Ethash) MakeDAG(block uint64, obs Observer) (*DAGHandle, error) {
	return e.dagFor(block, obs)
}

// Load reads a DAG handle from r and installs it into e's registry, so
// later calls for the same epoch reuse it instead of rebuilding.
func (e *Ethash) Load(r io.Reader, obs Observer) (*DAGHandle, error) {
	handle, err := LoadDAG(r, obs)
	if err != nil {
		return nil, err
	}
	v, err := e.dags.acquire(handle.epoch, func() (interface{}, error) { return handle, nil })
	if err != nil {
		return nil, err
	}
	return v.(*DAGHandle), nil
}

// Save writes handle to w using the on-disk DAG format (§4.8).
func Save(handle *DAGHandle, w io.Writer, obs Observer) error {
	return SaveDAG(handle, w, obs)
}

