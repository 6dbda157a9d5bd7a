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

func TestPhaseStrings(t *testing.T) {
	phases := []Phase{
		PhaseCacheSeeding, PhaseCacheGeneration, PhaseCacheSaving, PhaseCacheLoading,
		PhaseDagGeneration, PhaseDagSaving, PhaseDagLoading,
	}
	seen := map[string]bool{}
	for _, p := range phases {
		s := p.String()
		if s == "" || s == "unknown" {
			t.Fatalf("Phase(%d).String() = %q", p, s)
		}
		if seen[s] {
			t.Fatalf("duplicate Phase string %q", s)
		}
		seen[s] = true
	}
	if Phase(-1).String() != "unknown" {
		t.Fatal(`Phase(-1).String() should fall back to "unknown"`)
	}
}

func TestCallObserverNilIsAlwaysContinue(t *testing.T) {
	if !callObserver(nil, 0, 10, PhaseCacheSeeding) {
		t.Fatal("callObserver(nil, ...) must default to continue")
	}
}

func TestCallObserverPropagatesResult(t *testing.T) {
	if callObserver(func(step, max int, phase Phase) bool { return false }, 0, 10, PhaseCacheSeeding) {
		t.Fatal("callObserver should propagate a false result from the Observer")
	}
	if !callObserver(func(step, max int, phase Phase) bool { return true }, 0, 10, PhaseCacheSeeding) {
		t.Fatal("callObserver should propagate a true result from the Observer")
	}
}

func TestCallObserverPassesArguments(t *testing.T) {
	var gotStep, gotMax int
	var gotPhase Phase
	callObserver(func(step, max int, phase Phase) bool {
		gotStep, gotMax, gotPhase = step, max, phase
		return true
	}, 3, 10, PhaseDagGeneration)

	if gotStep != 3 || gotMax != 10 || gotPhase != PhaseDagGeneration {
		t.Fatalf("got (%d, %d, %v), want (3, 10, %v)", gotStep, gotMax, gotPhase, PhaseDagGeneration)
	}
}
