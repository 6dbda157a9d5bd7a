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

// Phase identifies which long-running operation an Observer callback is
// reporting progress for.
// Phase는 Observer 콜백이 어떤 장시간 작업의 진행상황을 알리는지 식별한다
type Phase int

const (
	PhaseCacheSeeding    Phase = iota // filling the cache with the H512 chain
	PhaseCacheGeneration              // RandMemoHash-style strengthening rounds
	PhaseCacheSaving                  // writing a cache to a DAG file
	PhaseCacheLoading                 // reading a cache from a DAG file
	PhaseDagGeneration                // materializing dataset items from the cache
	PhaseDagSaving                    // writing the dataset to a DAG file
	PhaseDagLoading                   // reading the dataset from a DAG file
)

func (p Phase) String() string {
	switch p {
	case PhaseCacheSeeding:
		return "cache_seeding"
	case PhaseCacheGeneration:
		return "cache_generation"
	case PhaseCacheSaving:
		return "cache_saving"
	case PhaseCacheLoading:
		return "cache_loading"
	case PhaseDagGeneration:
		return "dag_generation"
	case PhaseDagSaving:
		return "dag_saving"
	case PhaseDagLoading:
		return "dag_loading"
	default:
		return "unknown"
	}
}

// Observer receives progress updates from a long-running core operation.
// step is the number of units of work completed so far, max is the total
// number of units the operation expects to perform, and phase identifies
// which operation is reporting. Returning false requests cancellation; the
// builder unwinds and reports ErrCancelled, discarding whatever it had
// built so far (§5: "no half-valid handle is ever published").
// Observer는 장시간 작업으로부터의 진행상황을 전달받는다
type Observer func(step, max int, phase Phase) (continue_ bool)

// callObserver calls obs if non-nil, defaulting to "continue" otherwise.
func callObserver(obs Observer, step, max int, phase Phase) bool {
	if obs == nil {
		return true
	}
	ok := obs(step, max, phase)
	if !ok {
		cancellationsCounter.Inc(1)
	}
	return ok
}

// observerStride is the number of loop iterations between progress
// callbacks for tight per-item loops (cache/dataset generation), matching
// the spec's "fixed step frequency" cancellation-check cadence (§5).
const observerStride = 1 << 10
