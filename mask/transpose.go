// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

import (
	"sort"

	"github.com/Guardianofgotham/csa/errors"
)

// Transpose swaps the axes of inner on every call: Transpose(m) emits
// (i, j) wherever m emits (j, i). It is used internally to implement
// FanOut as the transpose of FanIn over the axis-swapped base (see
// sample.NewFanOut), and is distinct from any value-function-level transpose collaborator,
// which remains out of scope (spec.md §6).
type Transpose struct {
	Inner Mask
}

// NewTranspose wraps inner, swapping its axes.
func NewTranspose(inner Mask) *Transpose {
	return &Transpose{Inner: inner}
}

// Bounds implements Finite. Like maskDifference, it panics with
// errors.InfiniteEnumeration if Inner is not Finite.
func (m *Transpose) Bounds() (low0, high0, low1, high1 Index) {
	f, ok := IsFinite(m.Inner)
	if !ok {
		panic(errors.E(errors.InfiniteEnumeration, "Bounds called on a transpose of an infinite mask"))
	}
	il0, ih0, il1, ih1 := f.Bounds()
	return il1, ih1, il0, ih0
}

// StartIteration implements Mask.
func (m *Transpose) StartIteration(state *State) Snapshot {
	return &transposeSnapshot{inner: m.Inner.StartIteration(transposeState(state))}
}

// transposeState swaps a state's partitions axes so the inner mask sees
// its own (pre-swap) coordinate system.
func transposeState(state *State) *State {
	if state == nil {
		return nil
	}
	swapped := &State{Selected: state.Selected, Seed: state.Seed}
	for _, p := range state.Partitions {
		swapped.Partitions = append(swapped.Partitions, Partition{S0: p.S1, S1: p.S0})
	}
	return swapped
}

type transposeSnapshot struct{ inner Snapshot }

func (s *transposeSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	inner := s.inner.Iterate(low1, high1, low0, high0, transposeState(state))
	var pairs []Pair
	for inner.Next() {
		p := inner.Pair()
		pairs = append(pairs, Pair{I: p.J, J: p.I})
	}
	sort.Slice(pairs, func(a, b int) bool { return less(pairs[a], pairs[b]) })
	return &transposeIterator{pairs: pairs, i: -1}
}

// transposeIterator walks the pairs Iterate has already swapped. The inner
// stream is sorted by its own (j, i) = (our i, our j), so restoring strict
// (j, i) post-order in the swapped coordinate system requires Iterate to
// materialize and re-sort the inner stream on every call.
type transposeIterator struct {
	pairs []Pair
	i     int
}

func (it *transposeIterator) Next() bool {
	it.i++
	return it.i < len(it.pairs)
}

func (it *transposeIterator) Pair() Pair { return it.pairs[it.i] }
