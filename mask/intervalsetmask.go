// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

import "github.com/Guardianofgotham/csa/interval"

// IntervalSetMask denotes the Cartesian product S0 x S1 of two IntervalSets
// (spec.md §4.3). It is always Finite. Iteration walks S1's intervals as the
// outer loop and S0's as the inner loop, matching the (j, i) post-order.
type IntervalSetMask struct {
	S0, S1 *interval.Set
}

// NewIntervalSetMask constructs the mask S0 x S1.
func NewIntervalSetMask(s0, s1 *interval.Set) *IntervalSetMask {
	return &IntervalSetMask{S0: s0, S1: s1}
}

// Bounds implements Finite.
func (m *IntervalSetMask) Bounds() (low0, high0, low1, high1 Index) {
	b0, b1 := m.S0.Bounds(), m.S1.Bounds()
	if b0.Empty() || b1.Empty() {
		return 0, 0, 0, 0
	}
	return b0.Low, b0.High + 1, b1.Low, b1.High + 1
}

// StartIteration implements Mask. IntervalSetMask has no mutable iteration
// state of its own.
func (m *IntervalSetMask) StartIteration(state *State) Snapshot {
	return intervalSetSnapshot{m}
}

type intervalSetSnapshot struct{ m *IntervalSetMask }

func (s intervalSetSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	return &intervalProductIterator{
		s0set:   s.m.S0,
		s0lo:    low0,
		s0hi:    high0,
		targets: s.m.S1.BoundedIter(low1, high1),
	}
}

// intervalProductIterator walks the target axis (outer) and re-walks the
// source axis (inner) for every target, producing strict (j, i) post-order
// without materializing the full product.
type intervalProductIterator struct {
	s0set      *interval.Set
	s0lo, s0hi Index
	targets    *interval.ElementIter
	sources    *interval.ElementIter
	curJ       Index
}

func (it *intervalProductIterator) Next() bool {
	if it.sources != nil && it.sources.Next() {
		return true
	}
	for it.targets.Next() {
		it.curJ = it.targets.Value()
		it.sources = it.s0set.BoundedIter(it.s0lo, it.s0hi)
		if it.sources.Next() {
			return true
		}
	}
	return false
}

func (it *intervalProductIterator) Pair() Pair {
	return Pair{I: it.sources.Value(), J: it.curJ}
}
