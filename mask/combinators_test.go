// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
)

func iset(xs ...interval.Index) *interval.Set { return interval.FromElements(xs) }

func multiset(pairs []mask.Pair) map[mask.Pair]int {
	m := make(map[mask.Pair]int, len(pairs))
	for _, p := range pairs {
		m[p]++
	}
	return m
}

func TestIntersectionCommutative(t *testing.T) {
	a := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 1}})
	b := mask.NewExplicitMask([]mask.Pair{{I: 1, J: 0}, {I: 2, J: 1}, {I: 9, J: 9}})
	ab := mask.Intersection(a, b).(mask.Finite)
	ba := mask.Intersection(b, a).(mask.Finite)
	gotAB := multiset(drain(t, mask.EnumerateAll(ab, nil)))
	gotBA := multiset(drain(t, mask.EnumerateAll(ba, nil)))
	if diff := deep.Equal(gotAB, gotBA); diff != nil {
		t.Errorf("%v", diff)
	}
	want := multiset([]mask.Pair{{I: 1, J: 0}, {I: 2, J: 1}})
	if diff := deep.Equal(gotAB, want); diff != nil {
		t.Errorf("%v", diff)
	}
}

func TestMultisetSumCommutativeAndCardinality(t *testing.T) {
	a := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}})
	b := mask.NewExplicitMask([]mask.Pair{{I: 2, J: 1}, {I: 3, J: 1}, {I: 4, J: 1}})
	ab, err := mask.MultisetSum(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := mask.MultisetSum(b, a)
	if err != nil {
		t.Fatal(err)
	}
	gotAB := drain(t, mask.EnumerateAll(ab.(mask.Finite), nil))
	gotBA := drain(t, mask.EnumerateAll(ba.(mask.Finite), nil))
	if diff := deep.Equal(multiset(gotAB), multiset(gotBA)); diff != nil {
		t.Errorf("not commutative: %v", diff)
	}
	if got, want := len(gotAB), 5; got != want {
		t.Errorf("|A+B| = %d, want %d", got, want)
	}
}

func TestMultisetSumDisjointIntervalSetMasks(t *testing.T) {
	a := mask.NewIntervalSetMask(iset(0, 1), iset(0))
	b := mask.NewIntervalSetMask(iset(5), iset(7))
	sum, err := mask.MultisetSum(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got := drain(t, mask.EnumerateAll(sum.(mask.Finite), nil))
	want := []mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 5, J: 7}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("%v", diff)
	}
}

func TestMultisetSumOverlappingIntervalSetMasksRejected(t *testing.T) {
	a := mask.NewIntervalSetMask(iset(0, 1, 2), iset(0, 1))
	b := mask.NewIntervalSetMask(iset(1, 2, 3), iset(1, 2))
	_, err := mask.MultisetSum(a, b)
	if !errors.Is(errors.UnsupportedOverlap, err) {
		t.Errorf("got %v, want UnsupportedOverlap", err)
	}
}

func TestDifference(t *testing.T) {
	a := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 1}})
	b := mask.NewExplicitMask([]mask.Pair{{I: 1, J: 0}})
	d := mask.Difference(a, b).(mask.Finite)
	got := drain(t, mask.EnumerateAll(d, nil))
	want := []mask.Pair{{I: 0, J: 0}, {I: 2, J: 1}}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("%v", diff)
	}
}

// TestDifferencePlusIntersectionEqualsOriginal checks invariant 6:
// (A \ B) ⊎ (A ∩ B) == A.
func TestDifferencePlusIntersectionEqualsOriginal(t *testing.T) {
	a := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 1}, {I: 3, J: 2}})
	b := mask.NewExplicitMask([]mask.Pair{{I: 1, J: 0}, {I: 3, J: 2}, {I: 9, J: 9}})

	diff := mask.Difference(a, b).(mask.Finite)
	inter := mask.Intersection(a, b).(mask.Finite)
	sum, err := mask.MultisetSum(diff, inter)
	if err != nil {
		t.Fatal(err)
	}

	gotA := multiset(drain(t, mask.EnumerateAll(a, nil)))
	gotSum := multiset(drain(t, mask.EnumerateAll(sum.(mask.Finite), nil)))
	if d := deep.Equal(gotA, gotSum); d != nil {
		t.Errorf("%v", d)
	}

	for _, p := range drain(t, mask.EnumerateAll(diff, nil)) {
		for _, q := range drain(t, mask.EnumerateAll(b, nil)) {
			if p == q {
				t.Errorf("difference contains pair %v present in B", p)
			}
		}
	}
}

func TestComplementViaIntersection(t *testing.T) {
	s0, s1 := iset(0, 1, 2, 3), iset(0, 1)
	hole := mask.NewExplicitMask([]mask.Pair{{I: 1, J: 0}, {I: 2, J: 1}})
	complement := mask.Complement(hole)
	bounded := mask.Intersection(mask.NewIntervalSetMask(s0, s1), complement).(mask.Finite)
	got := drain(t, mask.EnumerateAll(bounded, nil))
	want := []mask.Pair{
		{I: 0, J: 0}, {I: 2, J: 0}, {I: 3, J: 0},
		{I: 0, J: 1}, {I: 1, J: 1}, {I: 3, J: 1},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("%v", diff)
	}
}
