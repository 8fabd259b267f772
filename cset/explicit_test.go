// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cset_test

import (
	"testing"

	"github.com/Guardianofgotham/csa/cset"
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/mask"
)

func TestExplicitFlatValueArray(t *testing.T) {
	m := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 1, J: 0}, {I: 5, J: 7}})
	c, err := cset.Explicit(m, []float64{1.5, 2.5, 3.5})
	if err != nil {
		t.Fatal(err)
	}
	got := drainCSet(t, cset.EnumerateAll(c, nil))
	want := []float64{1.5, 2.5, 3.5}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Values[0] != want[i] {
			t.Errorf("entry %d: got %v, want %v", i, e.Values[0], want[i])
		}
	}
}

func TestExplicitValueFunc(t *testing.T) {
	m := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}, {I: 2, J: 1}})
	c, err := cset.Explicit(m, cset.ValueFunc(func(i, j mask.Index) float64 { return float64(i - j) }))
	if err != nil {
		t.Fatal(err)
	}
	got := drainCSet(t, cset.EnumerateAll(c, nil))
	for _, e := range got {
		if e.Values[0] != float64(e.Pair.I-e.Pair.J) {
			t.Errorf("entry %v: got %v", e.Pair, e.Values[0])
		}
	}
}

func TestExplicitUnsupportedValueType(t *testing.T) {
	m := mask.NewExplicitMask([]mask.Pair{{I: 0, J: 0}})
	_, err := cset.Explicit(m, "not a value func")
	if !errors.Is(errors.Invalid, err) {
		t.Errorf("got %v, want Invalid", err)
	}
}
