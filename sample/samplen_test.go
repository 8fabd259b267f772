// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/sample"
)

// TestSampleNExactCount checks invariant 8: SampleN(N) * base emits
// exactly N pairs when enumerated over its full bounds, unpartitioned.
func TestSampleNExactCount(t *testing.T) {
	base := mask.NewIntervalSetMask(
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4}),
	)
	m := sample.NewSampleN(17, base, 42)
	got := drain(t, mask.EnumerateAll(m, nil))
	require.Len(t, got, 17)
	for _, p := range got {
		if !base.S0.Contains(p.I) || !base.S1.Contains(p.J) {
			t.Errorf("pair %v outside base support", p)
		}
	}
}

func TestSampleNDeterministicAcrossSnapshots(t *testing.T) {
	base := mask.NewIntervalSetMask(
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4}),
		interval.FromElements([]interval.Index{0, 1}),
	)
	m := sample.NewSampleN(6, base, 7)
	got1 := drain(t, mask.EnumerateAll(m, nil))
	got2 := drain(t, mask.EnumerateAll(m, nil))
	require.Equal(t, got1, got2)
}

func TestSampleNWindowRestrictionConsistentWithFull(t *testing.T) {
	base := mask.NewIntervalSetMask(
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}),
		interval.FromElements([]interval.Index{0, 1, 2, 3, 4}),
	)
	m := sample.NewSampleN(30, base, 99)
	snap := m.StartIteration(nil)
	full := drain(t, snap.Iterate(0, 10, 0, 5, nil))

	var want []mask.Pair
	for _, p := range full {
		if p.J >= 1 && p.J < 3 {
			want = append(want, p)
		}
	}
	got := drain(t, snap.Iterate(0, 10, 1, 3, nil))
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("pair %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
