// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

import "github.com/Guardianofgotham/csa/interval"

// ISetBoundedMask restricts an arbitrary (possibly infinite) mask to
// S0 x S1: it delegates iteration to inner but clips every window to the
// S0 x S1 slice and filters emitted pairs against the interval sets
// (spec.md §4.3). It is what IntervalSetMask's intersection with a
// non-IntervalSetMask produces.
type ISetBoundedMask struct {
	S0, S1 *interval.Set
	Inner  Mask
}

// NewISetBoundedMask builds the mask {(i,j) in inner : i in s0, j in s1}.
func NewISetBoundedMask(s0, s1 *interval.Set, inner Mask) *ISetBoundedMask {
	return &ISetBoundedMask{S0: s0, S1: s1, Inner: inner}
}

// Bounds implements Finite; ISetBoundedMask is always finite since S0 and S1
// are.
func (m *ISetBoundedMask) Bounds() (low0, high0, low1, high1 Index) {
	b0, b1 := m.S0.Bounds(), m.S1.Bounds()
	if b0.Empty() || b1.Empty() {
		return 0, 0, 0, 0
	}
	low0, high0 = b0.Low, b0.High+1
	low1, high1 = b1.Low, b1.High+1
	if inner, ok := IsFinite(m.Inner); ok {
		il0, ih0, il1, ih1 := inner.Bounds()
		low0, high0 = maxIdx(low0, il0), minIdx(high0, ih0)
		low1, high1 = maxIdx(low1, il1), minIdx(high1, ih1)
	}
	return low0, high0, low1, high1
}

func minIdx(a, b Index) Index {
	if a < b {
		return a
	}
	return b
}

func maxIdx(a, b Index) Index {
	if a > b {
		return a
	}
	return b
}

// StartIteration implements Mask.
func (m *ISetBoundedMask) StartIteration(state *State) Snapshot {
	return &isetBoundedSnapshot{m: m, inner: m.Inner.StartIteration(state)}
}

type isetBoundedSnapshot struct {
	m     *ISetBoundedMask
	inner Snapshot
}

func (s *isetBoundedSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	b0, b1 := s.m.S0.Bounds(), s.m.S1.Bounds()
	if !b0.Empty() {
		low0, high0 = maxIdx(low0, b0.Low), minIdx(high0, b0.High+1)
	}
	if !b1.Empty() {
		low1, high1 = maxIdx(low1, b1.Low), minIdx(high1, b1.High+1)
	}
	if low0 >= high0 || low1 >= high1 {
		return emptyIterator{}
	}
	return &isetBoundedIterator{
		s0: s.m.S0, s1: s.m.S1,
		inner: s.inner.Iterate(low0, high0, low1, high1, state),
	}
}

// isetBoundedIterator filters the inner snapshot's pairs against S0 and S1,
// preserving the inner stream's post-order.
type isetBoundedIterator struct {
	s0, s1 *interval.Set
	inner  PairIterator
}

func (it *isetBoundedIterator) Next() bool {
	for it.inner.Next() {
		p := it.inner.Pair()
		if it.s0.Contains(p.I) && it.s1.Contains(p.J) {
			return true
		}
	}
	return false
}

func (it *isetBoundedIterator) Pair() Pair { return it.inner.Pair() }
