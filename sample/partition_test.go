// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample_test

import (
	"testing"

	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/sample"
)

// TestSampleNPartitionInvarianceOfTotalCount checks invariant 7's count
// property: splitting a SampleN(N) call across any number of
// agreeing partitions still yields exactly N pairs in total.
func TestSampleNPartitionInvarianceOfTotalCount(t *testing.T) {
	base := mask.NewIntervalSetMask(
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4}),
	)
	const n = 50
	m := sample.NewSampleN(n, base, 13)

	partitions := []mask.Partition{
		{S0: interval.FromElements([]interval.Index{0, 1, 2, 3, 4}), S1: base.S1},
		{S0: interval.FromElements([]interval.Index{5, 6, 7, 8, 9}), S1: base.S1},
	}
	seed := "shared-partition-seed"

	total := 0
	for i := range partitions {
		state := &mask.State{Partitions: partitions, Selected: i, Seed: seed}
		got := drain(t, mask.EnumerateAll(m, state))
		total += len(got)
	}
	if total != n {
		t.Errorf("partitioned total = %d, want %d", total, n)
	}
}

// TestFanInPartitionInvarianceOfTotalCount checks the analogous property
// for FanIn: summing a target's incoming connections across every
// partition that can supply it always totals exactly k.
func TestFanInPartitionInvarianceOfTotalCount(t *testing.T) {
	base := mask.NewIntervalSetMask(
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4, 5, 6, 7}),
		interval.FromElements([]interval.Index{0, 1, 2}),
	)
	const k = 9
	m := sample.NewFanIn(k, base, 77)

	partitions := []mask.Partition{
		{S0: interval.FromElements([]interval.Index{0, 1, 2, 3}), S1: base.S1},
		{S0: interval.FromElements([]interval.Index{4, 5, 6, 7}), S1: base.S1},
	}
	seed := "shared-fanin-seed"

	counts := map[interval.Index]int{}
	for i := range partitions {
		state := &mask.State{Partitions: partitions, Selected: i, Seed: seed}
		got := drain(t, mask.EnumerateAll(m, state))
		for _, p := range got {
			counts[p.J]++
		}
	}
	for _, j := range []interval.Index{0, 1, 2} {
		if counts[j] != k {
			t.Errorf("target %d total incoming = %d across partitions, want %d", j, counts[j], k)
		}
	}
}
