// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cset_test

import (
	"testing"

	"github.com/Guardianofgotham/csa/cset"
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
)

func iset(xs ...interval.Index) *interval.Set { return interval.FromElements(xs) }

func TestIntersectMaskInheritsValues(t *testing.T) {
	base := mask.NewIntervalSetMask(iset(0, 1, 2, 3), iset(0, 1))
	weight := cset.ValueFunc(func(i, j mask.Index) float64 { return float64(i) * 10 })
	c := cset.New(base, weight)

	restriction := mask.NewExplicitMask([]mask.Pair{{I: 1, J: 0}, {I: 2, J: 1}})
	restricted := cset.IntersectMask(c, restriction)

	got := drainCSet(t, cset.EnumerateAll(restricted, nil))
	want := map[mask.Pair]float64{{I: 1, J: 0}: 10, {I: 2, J: 1}: 20}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for _, e := range got {
		if e.Values[0] != want[e.Pair] {
			t.Errorf("entry %v: got %v, want %v", e.Pair, e.Values[0], want[e.Pair])
		}
	}
}

func TestMultisetSumArityMismatch(t *testing.T) {
	a := cset.New(mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}}), cset.ValueFunc(func(i, j mask.Index) float64 { return 1 }))
	b := cset.New(mask.NewExplicitMask([]mask.Pair{{I: 1, J: 1}}))
	_, err := cset.MultisetSum(a, b)
	if !errors.Is(errors.ArityMismatch, err) {
		t.Errorf("got %v, want ArityMismatch", err)
	}
}

func TestMultisetSumPreservesOriginatingValues(t *testing.T) {
	a := cset.New(
		mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}}),
		cset.ValueFunc(func(i, j mask.Index) float64 { return 1 }),
	)
	b := cset.New(
		mask.NewExplicitMask([]mask.Pair{{I: 2, J: 1}}),
		cset.ValueFunc(func(i, j mask.Index) float64 { return 2 }),
	)
	sum, err := cset.MultisetSum(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got := drainCSet(t, cset.EnumerateAll(sum, nil))
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	for _, e := range got {
		if e.Pair.J == 0 && e.Values[0] != 1 {
			t.Errorf("entry %v: got value %v, want 1 (from a)", e.Pair, e.Values[0])
		}
		if e.Pair.J == 1 && e.Values[0] != 2 {
			t.Errorf("entry %v: got value %v, want 2 (from b)", e.Pair, e.Values[0])
		}
	}
}

func TestScalarAddAndMul(t *testing.T) {
	m := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}})
	c := cset.New(m, cset.ValueFunc(func(i, j mask.Index) float64 { return 5 }))
	added := cset.ScalarAdd(c, 3)
	mulled := cset.ScalarMul(c, 2)

	gotAdd := drainCSet(t, cset.EnumerateAll(added, nil))
	if gotAdd[0].Values[0] != 8 {
		t.Errorf("add: got %v, want 8", gotAdd[0].Values[0])
	}
	gotMul := drainCSet(t, cset.EnumerateAll(mulled, nil))
	if gotMul[0].Values[0] != 10 {
		t.Errorf("mul: got %v, want 10", gotMul[0].Values[0])
	}
}
