// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package cset

import (
	"fmt"
	"sync"

	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/must"
)

// Explicit builds a CSet over m whose values are given either as
// ValueFuncs or as flat []float64 arrays, mirroring
// original_source/csa/connset.py's ExplicitCSet/coerceValueSet: a
// []float64 is coerced into a (i,j) -> value table lookup, materialized
// lazily (and once) on first access, indexed by each pair's ordinal
// position in m's post-order enumeration. A value argument of any other
// type fails with errors.Invalid.
func Explicit(m mask.Mask, values ...interface{}) (*CSet, error) {
	funcs := make([]ValueFunc, len(values))
	for k, v := range values {
		switch vv := v.(type) {
		case ValueFunc:
			funcs[k] = vv
		case func(i, j mask.Index) float64:
			funcs[k] = ValueFunc(vv)
		case []float64:
			funcs[k] = tableLookup(m, vv)
		default:
			return nil, errors.E(errors.Invalid, fmt.Sprintf("cset.Explicit: unsupported value argument type %T", v))
		}
	}
	return New(m, funcs...), nil
}

// tableLookup returns a ValueFunc backed by a (i,j) -> value table built
// once, lazily, by zipping vals against m's post-order enumeration: the
// n-th pair m emits is assigned vals[n].
func tableLookup(m mask.Mask, vals []float64) ValueFunc {
	var (
		once  sync.Once
		table map[mask.Pair]float64
	)
	build := func() {
		f, ok := m.(mask.Finite)
		must.True(ok, "cset.Explicit: a flat value array requires a Finite mask to materialize against")
		table = make(map[mask.Pair]float64, len(vals))
		idx := 0
		it := mask.EnumerateAll(f, nil)
		for it.Next() {
			if idx < len(vals) {
				table[it.Pair()] = vals[idx]
			}
			idx++
		}
	}
	return func(i, j mask.Index) float64 {
		once.Do(build)
		return table[mask.Pair{I: i, J: j}]
	}
}
