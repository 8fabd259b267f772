// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"math/rand"

	"github.com/Guardianofgotham/csa/mask"
)

// SampleNMask draws exactly N (source, target) pairs from Base, with
// replacement on the source axis within each target, distributed
// uniformly at random over Base's targets (spec.md §4.5's sample-N
// operator). Partitioned callers agree on which N_k of the N draws belong
// to their own partition via the shared partition-allocation RNG; within
// a partition, a second RNG captured at construction time decides how
// that share splits across targets and, per target, which source indices
// are drawn.
type SampleNMask struct {
	N                int
	Base             *mask.IntervalSetMask
	constructionSeed int64
}

// NewSampleN builds a sampler drawing exactly n pairs from base.
// constructionSeed fixes the per-target-allocation RNG: every StartIteration
// of this *SampleNMask value reseeds that RNG from the same constructionSeed,
// so repeated iterations of the same sampler (e.g. across separate windows)
// agree, while two independently constructed SampleNMasks do not collide.
func NewSampleN(n int, base *mask.IntervalSetMask, constructionSeed int64) *SampleNMask {
	return &SampleNMask{N: n, Base: base, constructionSeed: constructionSeed}
}

// Bounds implements mask.Finite.
func (m *SampleNMask) Bounds() (low0, high0, low1, high1 mask.Index) {
	return m.Base.Bounds()
}

// StartIteration implements mask.Mask. All of this sampler's randomness is
// consumed here, independent of any window a later Iterate call supplies,
// so that repeated restricted iterations of the same snapshot are
// consistent with each other (spec.md §4's Snapshot contract).
func (m *SampleNMask) StartIteration(state *mask.State) mask.Snapshot {
	partitions := effectivePartitions(state, m.Base)
	bSelected, nSelected := allocate(m.N, partitions, state)

	targets := bSelected.S1.Elements()
	perTargetRNG := rand.New(rand.NewSource(m.constructionSeed))
	mCounts := multinomial(perTargetRNG, nSelected, uniform(len(targets)))

	s0Card := bSelected.S0.Cardinality()
	var pairs []mask.Pair
	for t, j := range targets {
		rowCount := mCounts[t]
		if rowCount == 0 || s0Card == 0 {
			continue
		}
		row := rowRand(perTargetRNG, t)
		for d := 0; d < rowCount; d++ {
			pos := row.Int63n(s0Card)
			i := bSelected.S0.ElementAt(pos)
			pairs = append(pairs, mask.Pair{I: i, J: j})
		}
	}
	sortPostOrder(pairs)
	return &sampleNSnapshot{pairs: pairs}
}

type sampleNSnapshot struct{ pairs []mask.Pair }

func (s *sampleNSnapshot) Iterate(low0, high0, low1, high1 mask.Index, state *mask.State) mask.PairIterator {
	return newPairSliceIterator(windowFilter(s.pairs, low0, high0, low1, high1))
}
