// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"math/rand"
	"strconv"

	"github.com/Guardianofgotham/csa/mask"
)

// FanInMask connects exactly K sources (drawn with replacement, uniformly)
// to every target of Base (spec.md §4.5's fan-in operator). A target's K
// draws are allocated across whichever partitions contain that target,
// proportional to each partition's share of sources, via a
// per-target partition-allocation stream seeded independently for every
// target (so which targets a partition happens to enumerate first never
// affects the outcome).
type FanInMask struct {
	K                int
	Base             *mask.IntervalSetMask
	constructionSeed int64
}

// NewFanIn builds a sampler connecting exactly k sources to every target
// of base. See NewSampleN for constructionSeed's role.
func NewFanIn(k int, base *mask.IntervalSetMask, constructionSeed int64) *FanInMask {
	return &FanInMask{K: k, Base: base, constructionSeed: constructionSeed}
}

// Bounds implements mask.Finite.
func (m *FanInMask) Bounds() (low0, high0, low1, high1 mask.Index) {
	return m.Base.Bounds()
}

// StartIteration implements mask.Mask.
func (m *FanInMask) StartIteration(state *mask.State) mask.Snapshot {
	partitions := effectivePartitions(state, m.Base)
	selected := selectedIndex(state)
	bSelected := partitions[selected]
	seed := seedString(state)

	perTargetRNG := rand.New(rand.NewSource(m.constructionSeed))
	targets := bSelected.S1.Elements()
	s0Card := bSelected.S0.Cardinality()

	var pairs []mask.Pair
	for t, j := range targets {
		k := targetFanInShare(m.K, j, selected, partitions, seed)
		if k == 0 || s0Card == 0 {
			continue
		}
		row := rowRand(perTargetRNG, t)
		for d := 0; d < k; d++ {
			pos := row.Int63n(s0Card)
			i := bSelected.S0.ElementAt(pos)
			pairs = append(pairs, mask.Pair{I: i, J: j})
		}
	}
	sortPostOrder(pairs)
	return &sampleNSnapshot{pairs: pairs}
}

// targetFanInShare allocates k draws for target j across every partition
// whose S1 contains j, weighted by each such partition's source count, and
// returns the share assigned to the selected partition. The allocation
// stream is seeded from (seed, j) alone, so it is reproducible by any
// caller regardless of which other targets it has or hasn't processed.
func targetFanInShare(k int, j mask.Index, selected int, partitions []mask.Partition, seed string) int {
	weights := make([]float64, len(partitions))
	for i, p := range partitions {
		if p.S1.Contains(j) {
			weights[i] = float64(p.S0.Cardinality())
		}
	}
	rng := seedRand(seed + "/" + strconv.FormatInt(j, 10))
	counts := multinomial(rng, k, weights)
	return counts[selected]
}
