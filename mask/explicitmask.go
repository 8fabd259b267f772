// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

import "sort"

// ExplicitMask wraps an explicitly-listed finite relation, stored
// post-order sorted (spec.md §4.4).
type ExplicitMask struct {
	pairs                     []Pair
	low0, high0, low1, high1 Index
	empty                    bool
}

// NewExplicitMask builds an ExplicitMask from an arbitrary list of pairs,
// sorting them into post-order ((j, i) lexicographic) and computing the
// tightest bounding rectangle. An empty pair list has zero bounds.
func NewExplicitMask(pairs []Pair) *ExplicitMask {
	sorted := append([]Pair(nil), pairs...)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].J != sorted[b].J {
			return sorted[a].J < sorted[b].J
		}
		return sorted[a].I < sorted[b].I
	})
	m := &ExplicitMask{pairs: sorted}
	if len(sorted) == 0 {
		m.empty = true
		return m
	}
	m.low0, m.high0 = sorted[0].I, sorted[0].I
	m.low1, m.high1 = sorted[0].J, sorted[0].J
	for _, p := range sorted {
		if p.I < m.low0 {
			m.low0 = p.I
		}
		if p.I > m.high0 {
			m.high0 = p.I
		}
		if p.J < m.low1 {
			m.low1 = p.J
		}
		if p.J > m.high1 {
			m.high1 = p.J
		}
	}
	m.high0++
	m.high1++
	return m
}

// Bounds implements Finite.
func (m *ExplicitMask) Bounds() (low0, high0, low1, high1 Index) {
	if m.empty {
		return 0, 0, 0, 0
	}
	return m.low0, m.high0, m.low1, m.high1
}

// StartIteration implements Mask.
func (m *ExplicitMask) StartIteration(state *State) Snapshot {
	return explicitSnapshot{m}
}

type explicitSnapshot struct{ m *ExplicitMask }

// Iterate returns the full list if the window is a superset of m's bounds;
// otherwise a bounded sub-iterator that filters by the window.
func (s explicitSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	bl0, bh0, bl1, bh1 := s.m.Bounds()
	if low0 <= bl0 && high0 >= bh0 && low1 <= bl1 && high1 >= bh1 {
		return newSliceIterator(s.m.pairs)
	}
	var filtered []Pair
	for _, p := range s.m.pairs {
		if p.J >= low1 && p.J < high1 && p.I >= low0 && p.I < high0 {
			filtered = append(filtered, p)
		}
	}
	return newSliceIterator(filtered)
}
