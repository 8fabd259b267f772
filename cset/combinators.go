// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cset

import (
	"fmt"

	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/log"
	"github.com/Guardianofgotham/csa/mask"
)

// IntersectMask returns C ∩ M (spec.md §4.7): c's mask intersected with m,
// values inherited unchanged.
func IntersectMask(c *CSet, m mask.Mask) *CSet {
	return New(mask.Intersection(c.Mask, m), c.Values...)
}

// DifferenceMask returns C \ M (spec.md §4.7): c's mask differenced with
// m, values inherited unchanged.
func DifferenceMask(c *CSet, m mask.Mask) *CSet {
	return New(mask.Difference(c.Mask, m), c.Values...)
}

// MultisetSum returns C1 ⊎ C2 (spec.md §4.7): requires equal arity, fails
// with errors.ArityMismatch otherwise. The underlying masks are summed via
// mask.MultisetSum (propagating errors.UnsupportedOverlap for overlapping
// IntervalSetMask operands unchanged); each surviving pair's values come
// from whichever operand actually contains it, so a pair originating from
// b still reports b's values even though both operands share a combined
// value-function list.
func MultisetSum(a, b *CSet) (*CSet, error) {
	if a.Arity() != b.Arity() {
		return nil, errors.E(errors.ArityMismatch, fmt.Sprintf("multiset sum: arity %d vs %d", a.Arity(), b.Arity()))
	}
	summed, err := mask.MultisetSum(a.Mask, b.Mask)
	if err != nil {
		return nil, err
	}
	log.Debug.Printf("cset.MultisetSum: combining arity-%d operands, attributing each surviving pair's values via membership probe", a.Arity())
	values := make([]ValueFunc, a.Arity())
	for k := range values {
		k := k
		values[k] = func(i, j mask.Index) float64 {
			if pairInMask(a.Mask, i, j) {
				return a.Values[k](i, j)
			}
			return b.Values[k](i, j)
		}
	}
	return New(summed, values...), nil
}

// pairInMask reports whether m emits the single pair (i, j), by iterating
// m over the 1x1 window containing only that pair.
func pairInMask(m mask.Mask, i, j mask.Index) bool {
	it := m.StartIteration(nil).Iterate(i, i+1, j, j+1, nil)
	return it.Next()
}

// ScalarAdd returns a CSet whose k-th value function is c's k-th value
// function plus the constant x, lifted pointwise (spec.md §4.7's "scalar
// add/mul lift through each value function").
func ScalarAdd(c *CSet, x float64) *CSet {
	return New(c.Mask, liftScalar(c.Values, func(v float64) float64 { return v + x })...)
}

// ScalarMul returns a CSet whose k-th value function is c's k-th value
// function times the constant x.
func ScalarMul(c *CSet, x float64) *CSet {
	return New(c.Mask, liftScalar(c.Values, func(v float64) float64 { return v * x })...)
}

func liftScalar(values []ValueFunc, op func(float64) float64) []ValueFunc {
	lifted := make([]ValueFunc, len(values))
	for k, v := range values {
		v := v
		lifted[k] = func(i, j mask.Index) float64 { return op(v(i, j)) }
	}
	return lifted
}
