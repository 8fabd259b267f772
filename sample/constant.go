// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/writehash"
)

// ConstantRandomMask connects each (i, j) pair of Base independently with
// probability P (spec.md §4.5's "random connection rule"). Unlike
// SampleNRandomMask and its relatives, a pair's inclusion has no global
// count to allocate, so it needs no partition-allocation RNG: each pair's
// outcome is instead the deterministic Bernoulli(P) decision of a hash of
// (seed, i, j), which makes membership invariant to iteration order,
// window boundaries, and how the caller partitions the support, without
// any coordination at all.
type ConstantRandomMask struct {
	P    float64
	Base *mask.IntervalSetMask
	seed string
}

// NewConstantRandomMask builds a ConstantRandomMask over base with
// inclusion probability p. seed distinguishes independently-constructed
// ConstantRandomMasks that would otherwise make identical draws; it is
// overridden by a non-empty mask.State.Seed at iteration time so that
// multiple partitioned callers of the same logical sampler agree.
func NewConstantRandomMask(p float64, base *mask.IntervalSetMask, seed string) *ConstantRandomMask {
	return &ConstantRandomMask{P: p, Base: base, seed: seed}
}

// Bounds implements mask.Finite.
func (m *ConstantRandomMask) Bounds() (low0, high0, low1, high1 mask.Index) {
	return m.Base.Bounds()
}

// StartIteration implements mask.Mask.
func (m *ConstantRandomMask) StartIteration(state *mask.State) mask.Snapshot {
	seed := m.seed
	if state != nil && state.Seed != "" {
		seed = state.Seed
	}
	if seed == "" {
		seed = defaultSeed
	}
	return &constantSnapshot{base: m.Base.StartIteration(nil), p: m.P, seed: seed}
}

type constantSnapshot struct {
	base mask.Snapshot
	p    float64
	seed string
}

func (s *constantSnapshot) Iterate(low0, high0, low1, high1 mask.Index, state *mask.State) mask.PairIterator {
	return &bernoulliFilterIterator{
		inner: s.base.Iterate(low0, high0, low1, high1, nil),
		p:     s.p,
		seed:  s.seed,
	}
}

// bernoulliFilterIterator wraps a candidate-pair stream, keeping only
// pairs whose hash(seed, i, j) falls below p.
type bernoulliFilterIterator struct {
	inner mask.PairIterator
	p     float64
	seed  string
	cur   mask.Pair
}

func (it *bernoulliFilterIterator) Next() bool {
	for it.inner.Next() {
		p := it.inner.Pair()
		if pairIncluded(it.seed, p, it.p) {
			it.cur = p
			return true
		}
	}
	return false
}

func (it *bernoulliFilterIterator) Pair() mask.Pair { return it.cur }

// pairIncluded is the Bernoulli(p) decision for a single (i, j) pair,
// derived from a hash of seed, i, and j rather than an RNG stream, so that
// the same pair always resolves the same way no matter which window or
// partition it is observed through.
func pairIncluded(seed string, pair mask.Pair, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	h := xxhash.New()
	writehash.String(h, seed)
	writehash.Int64(h, pair.I)
	writehash.Int64(h, pair.J)
	return float64(h.Sum64())/float64(math.MaxUint64) < p
}
