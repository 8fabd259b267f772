// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"math/rand"

	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/log"
	"github.com/Guardianofgotham/csa/mask"
)

// effectivePartitions intersects every partition in state with base,
// producing each worker's local support. A nil state, or one with no
// partitions, means "single, unpartitioned caller": base is its own sole
// partition.
func effectivePartitions(state *mask.State, base *mask.IntervalSetMask) []mask.Partition {
	if state == nil || len(state.Partitions) == 0 {
		return []mask.Partition{{S0: base.S0, S1: base.S1}}
	}
	out := make([]mask.Partition, len(state.Partitions))
	for i, p := range state.Partitions {
		out[i] = mask.Partition{
			S0: interval.Intersection(base.S0, p.S0),
			S1: interval.Intersection(base.S1, p.S1),
		}
	}
	return out
}

func selectedIndex(state *mask.State) int {
	if state == nil {
		return 0
	}
	return state.Selected
}

func seedString(state *mask.State) string {
	if state != nil && state.Seed != "" {
		return state.Seed
	}
	return defaultSeed
}

// allocate runs the partition-allocation RNG (independently reconstructed
// by every caller from the same seed) to split n draws across partitions
// in proportion to each partition's |S0|*|S1|, and returns the count
// assigned to the selected partition.
func allocate(n int, partitions []mask.Partition, state *mask.State) (selected mask.Partition, nSelected int) {
	weights := make([]float64, len(partitions))
	for i, p := range partitions {
		weights[i] = float64(p.S0.Cardinality() * p.S1.Cardinality())
	}
	rng := seedRand(seedString(state))
	counts := multinomial(rng, n, weights)
	sel := selectedIndex(state)
	log.Debug.Printf("sample: allocated %v across %d partitions by weights %v, selected partition %d gets %d", counts, len(partitions), weights, sel, counts[sel])
	return partitions[sel], counts[sel]
}
