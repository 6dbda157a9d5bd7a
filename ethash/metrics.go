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

import "github.com/ethereum/go-ethereum/metrics"

// These counters are the repurposed descendant of the teacher's
// hashrate metrics.Meter — mining hashrate itself is a non-goal here, but
// the teacher's comfort with exposing go-ethereum/metrics counters at
// generation call sites carries over directly onto cache/DAG build vs.
// load accounting.
var (
	cachesBuiltCounter        = metrics.NewRegisteredCounter("ethash/caches/built", nil)
	dagsBuiltCounter          = metrics.NewRegisteredCounter("ethash/dags/built", nil)
	dagsLoadedFromDiskCounter = metrics.NewRegisteredCounter("ethash/dags/loaded", nil)
	cancellationsCounter      = metrics.NewRegisteredCounter("ethash/cancellations", nil)
)
