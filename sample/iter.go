// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"sort"

	"github.com/Guardianofgotham/csa/mask"
)

// pairSliceIterator adapts a pre-sorted, materialized []mask.Pair into a
// mask.PairIterator, mirroring package mask's own (unexported)
// sliceIterator: SampleNMask and FanInMask draw their pairs once per
// StartIteration and then only filter by window, so a simple slice
// cursor is all they need.
type pairSliceIterator struct {
	pairs []mask.Pair
	i     int
}

func newPairSliceIterator(pairs []mask.Pair) *pairSliceIterator {
	return &pairSliceIterator{pairs: pairs, i: -1}
}

func (it *pairSliceIterator) Next() bool {
	it.i++
	return it.i < len(it.pairs)
}

func (it *pairSliceIterator) Pair() mask.Pair { return it.pairs[it.i] }

// sortPostOrder sorts pairs by (J, I), the post-order every Snapshot must
// produce.
func sortPostOrder(pairs []mask.Pair) {
	sort.Slice(pairs, func(a, b int) bool {
		p, q := pairs[a], pairs[b]
		return p.J < q.J || (p.J == q.J && p.I < q.I)
	})
}

// windowFilter returns the subsequence of pairs (assumed already in
// post-order) lying within [low0,high0) x [low1,high1).
func windowFilter(pairs []mask.Pair, low0, high0, low1, high1 mask.Index) []mask.Pair {
	out := pairs[:0:0]
	for _, p := range pairs {
		if p.I >= low0 && p.I < high0 && p.J >= low1 && p.J < high1 {
			out = append(out, p)
		}
	}
	return out
}
