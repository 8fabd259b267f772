// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

// OneToOne is the identity mask: it emits (i, i) for every i in the
// intersection of both window axes (spec.md §4.5). It has infinite support
// (it is not Finite): any window restriction is valid, so there is no
// bounding rectangle to report.
type OneToOne struct{}

// NewOneToOne constructs the identity mask.
func NewOneToOne() *OneToOne { return &OneToOne{} }

// StartIteration implements Mask. OneToOne carries no mutable state.
func (OneToOne) StartIteration(state *State) Snapshot { return oneToOneSnapshot{} }

type oneToOneSnapshot struct{}

// Iterate emits (i, i) for i in [max(low0,low1), min(high0,high1)), per
// spec.md §9's resolution of the open question about OneToOne's
// single-axis semantics.
func (oneToOneSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	lo := maxIdx(low0, low1)
	hi := minIdx(high0, high1)
	return &oneToOneIterator{next: lo, hi: hi, started: false}
}

type oneToOneIterator struct {
	next, hi Index
	started  bool
}

func (it *oneToOneIterator) Next() bool {
	if it.started {
		it.next++
	}
	it.started = true
	return it.next < it.hi
}

func (it *oneToOneIterator) Pair() Pair { return Pair{I: it.next, J: it.next} }
