// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package mask implements the connection-set algebra's relation layer
// (spec components B, D, F): the polymorphic Mask/Snapshot two-phase
// iteration contract, the algebraic combinators over masks (intersection,
// multiset sum, difference, complement), and the primitive mask variants
// (IntervalSetMask, ExplicitMask, ISetBoundedMask, OneToOne).
//
// Dynamic dispatch over mask variants is expressed with interfaces rather
// than a tagged sum type, following the teacher's preference for small
// capability interfaces (log.Outputter, errorreporter's implicit error
// interface) over enums-with-switches.
package mask

import (
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/interval"
)

// Index is the element type of both axes of a connection set.
type Index = interval.Index

// Pair is an (i, j) element of a relation: i is the source index, j the
// target index.
type Pair struct {
	I, J Index
}

// Partition describes one worker's slice of a sampler's support, as the
// Cartesian product of the partition's source and target IntervalSets.
type Partition struct {
	S0, S1 *interval.Set
}

// State is the optional iteration-time record threaded through
// StartIteration: it carries the partition-allocation agreement that makes
// the random samplers in package sample partition-safe (spec.md §4.5).
type State struct {
	// Partitions, if non-nil, is the list of disjoint partitions whose
	// union (intersected with a sampler's support) is the full support.
	Partitions []Partition
	// Selected is the index into Partitions this caller is responsible
	// for.
	Selected int
	// Seed is a stable identifier all callers agree on; it seeds the
	// partition-allocation RNG. If empty, a package-default seed is used.
	Seed string
}

// PairIterator is a pull-based, lazy cursor over a stream of Pairs in
// post-order (sorted by J then by I). It is the Go expression of
// spec.md's "snapshot.iterate(window) -> lazy sequence of (i,j)".
type PairIterator interface {
	// Next advances the cursor, returning false once the stream is
	// exhausted. Next must be called before the first call to Pair.
	Next() bool
	// Pair returns the pair at the cursor's current position. It is only
	// valid after a call to Next that returned true.
	Pair() Pair
}

// Snapshot is the mutable per-iteration state produced by
// Mask.StartIteration. A snapshot may be iterated once per window; for
// finite masks, a whole-set iteration equals Iterate(Bounds()).
type Snapshot interface {
	// Iterate restricts enumeration to the window
	// [low0,high0) x [low1,high1) and returns a lazy post-order stream of
	// pairs within it.
	Iterate(low0, high0, low1, high1 Index, state *State) PairIterator
}

// Mask is a (possibly infinite) relation on Z x Z.
type Mask interface {
	// StartIteration returns a fresh Snapshot holding this iteration's
	// mutable state (sampler RNGs, cached source lists, partition
	// selection). Combinator snapshots recursively start their children.
	StartIteration(state *State) Snapshot
}

// Finite is the capability a Mask implements when it has a computable
// bounding rectangle. Combinators propagate finiteness by explicit rules:
// intersection is finite if either operand is finite; sum is finite only if
// both are (spec.md §3).
type Finite interface {
	Mask
	// Bounds returns the tightest rectangle [low0,high0) x [low1,high1)
	// containing every pair this mask can emit.
	Bounds() (low0, high0, low1, high1 Index)
}

// IsFinite reports whether m implements Finite.
func IsFinite(m Mask) (Finite, bool) {
	f, ok := m.(Finite)
	return f, ok
}

// EnumerateAll iterates every pair of a Finite mask over its own bounds. It
// is the "convenience whole-set iteration" spec.md §4.6 names.
func EnumerateAll(m Finite, state *State) PairIterator {
	low0, high0, low1, high1 := m.Bounds()
	return m.StartIteration(state).Iterate(low0, high0, low1, high1, state)
}

// RequireWindow fails with errors.InfiniteEnumeration if m is not Finite and
// no explicit window was supplied; it is the guard every top-level
// enumeration entry point applies before iterating an unbounded mask.
func RequireWindow(m Mask, haveWindow bool) error {
	if haveWindow {
		return nil
	}
	if _, ok := IsFinite(m); ok {
		return nil
	}
	return errors.E(errors.InfiniteEnumeration, "cannot iterate an unbounded mask without a window")
}

// sliceIterator adapts a pre-sorted, materialized []Pair into a
// PairIterator. It backs ExplicitMask and the small intermediate lists the
// samplers in package sample build per target.
type sliceIterator struct {
	pairs []Pair
	i     int
}

func newSliceIterator(pairs []Pair) *sliceIterator {
	return &sliceIterator{pairs: pairs, i: -1}
}

func (it *sliceIterator) Next() bool {
	it.i++
	return it.i < len(it.pairs)
}

func (it *sliceIterator) Pair() Pair { return it.pairs[it.i] }

// emptyIterator is the PairIterator of a mask with no elements in the
// requested window.
type emptyIterator struct{}

func (emptyIterator) Next() bool { return false }
func (emptyIterator) Pair() Pair { return Pair{} }
