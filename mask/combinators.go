// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

import (
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/log"
)

// Intersection returns a ∩ b: a mask emitting pairs present in both
// operands (spec.md §4.2). If either operand is an *IntervalSetMask, the
// intersection specializes to avoid enumerating an infinite side.
func Intersection(a, b Mask) Mask {
	ia, aIsISet := a.(*IntervalSetMask)
	ib, bIsISet := b.(*IntervalSetMask)
	switch {
	case aIsISet && bIsISet:
		return NewIntervalSetMask(interval.Intersection(ia.S0, ib.S0), interval.Intersection(ia.S1, ib.S1))
	case aIsISet:
		return NewISetBoundedMask(ia.S0, ia.S1, b)
	case bIsISet:
		return NewISetBoundedMask(ib.S0, ib.S1, a)
	default:
		log.Debug.Printf("mask.Intersection: neither operand is an IntervalSetMask, falling back to generic co-sweep")
		return &maskIntersection{a: a, b: b}
	}
}

// maskIntersection is the generic co-sweep intersection of two arbitrary
// masks.
type maskIntersection struct{ a, b Mask }

func (m *maskIntersection) Bounds() (low0, high0, low1, high1 Index) {
	fa, aFinite := IsFinite(m.a)
	fb, bFinite := IsFinite(m.b)
	switch {
	case aFinite && bFinite:
		al0, ah0, al1, ah1 := fa.Bounds()
		bl0, bh0, bl1, bh1 := fb.Bounds()
		return maxIdx(al0, bl0), minIdx(ah0, bh0), maxIdx(al1, bl1), minIdx(ah1, bh1)
	case aFinite:
		return fa.Bounds()
	default:
		return fb.Bounds()
	}
}

func (m *maskIntersection) StartIteration(state *State) Snapshot {
	return &intersectionSnapshot{a: m.a.StartIteration(state), b: m.b.StartIteration(state)}
}

type intersectionSnapshot struct{ a, b Snapshot }

func (s *intersectionSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	return &coSweepIterator{
		a: s.a.Iterate(low0, high0, low1, high1, state),
		b: s.b.Iterate(low0, high0, low1, high1, state),
		mode: sweepIntersect,
	}
}

// MultisetSum returns a ⊎ b: a mask emitting every pair of a and every pair
// of b, preserving duplicates (spec.md §4.2). Summing two overlapping
// IntervalSetMasks has no defined union semantics (spec.md §9, open
// question) and fails with errors.UnsupportedOverlap; summing any other pair
// of masks always succeeds. Two IntervalSetMasks with disjoint supports are
// summed like any other operands, so the result holds exactly the pairs of
// a followed, in post-order, by the pairs of b.
func MultisetSum(a, b Mask) (Mask, error) {
	ia, aIsISet := a.(*IntervalSetMask)
	ib, bIsISet := b.(*IntervalSetMask)
	if aIsISet && bIsISet && overlaps(ia, ib) {
		log.Debug.Printf("mask.MultisetSum: overlapping interval-set mask operands %v, %v", ia, ib)
		return nil, errors.E(errors.UnsupportedOverlap, "multiset sum of overlapping interval-set masks")
	}
	return &maskMultisetSum{a: a, b: b}, nil
}

// overlaps reports whether the products S0 x S1 of a and b share a pair,
// which holds exactly when both their S0 sets and their S1 sets intersect.
func overlaps(a, b *IntervalSetMask) bool {
	return interval.Intersection(a.S0, b.S0).Cardinality() > 0 &&
		interval.Intersection(a.S1, b.S1).Cardinality() > 0
}

type maskMultisetSum struct{ a, b Mask }

// Bounds implements Finite. Per spec.md §3, a multiset sum is only
// actually finite if both operands are; unlike maskIntersection (where
// either operand being finite suffices), there is no sound bounding
// rectangle to fall back to with just one finite side, since the other
// side could contribute pairs anywhere. Bounds still declares itself
// unconditionally (so *maskMultisetSum always satisfies Finite
// syntactically, matching maskDifference and Transpose's style) but
// panics with errors.InfiniteEnumeration rather than silently reporting
// an incomplete rectangle when that's not actually true.
func (m *maskMultisetSum) Bounds() (low0, high0, low1, high1 Index) {
	fa, aFinite := IsFinite(m.a)
	fb, bFinite := IsFinite(m.b)
	if !aFinite || !bFinite {
		panic(errors.E(errors.InfiniteEnumeration, "Bounds called on a multiset sum with a non-finite operand"))
	}
	al0, ah0, al1, ah1 := fa.Bounds()
	bl0, bh0, bl1, bh1 := fb.Bounds()
	return minIdx(al0, bl0), maxIdx(ah0, bh0), minIdx(al1, bl1), maxIdx(ah1, bh1)
}

func (m *maskMultisetSum) StartIteration(state *State) Snapshot {
	return &multisetSumSnapshot{a: m.a.StartIteration(state), b: m.b.StartIteration(state)}
}

type multisetSumSnapshot struct{ a, b Snapshot }

func (s *multisetSumSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	return &coSweepIterator{
		a:    s.a.Iterate(low0, high0, low1, high1, state),
		b:    s.b.Iterate(low0, high0, low1, high1, state),
		mode: sweepSum,
	}
}

// Difference returns a \ b: the pairs of a with no counterpart in b
// (spec.md §4.2).
func Difference(a, b Mask) Mask {
	return &maskDifference{a: a, b: b}
}

type maskDifference struct{ a, b Mask }

func (m *maskDifference) Bounds() (low0, high0, low1, high1 Index) {
	fa, ok := IsFinite(m.a)
	if !ok {
		panic(errors.E(errors.InfiniteEnumeration, "Bounds called on an infinite mask"))
	}
	return fa.Bounds()
}

func (m *maskDifference) StartIteration(state *State) Snapshot {
	return &differenceSnapshot{a: m.a.StartIteration(state), b: m.b.StartIteration(state)}
}

type differenceSnapshot struct{ a, b Snapshot }

func (s *differenceSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	return &coSweepIterator{
		a:    s.a.Iterate(low0, high0, low1, high1, state),
		b:    s.b.Iterate(low0, high0, low1, high1, state),
		mode: sweepDifference,
	}
}

// Complement returns the infinite mask ~a: it is never iterated directly
// (spec.md §4.2, "combines only through intersection with a finite mask");
// attempting to enumerate it without first intersecting with a Finite mask
// fails with InfiniteEnumeration.
func Complement(a Mask) Mask {
	return &maskComplement{a: a}
}

type maskComplement struct{ a Mask }

func (m *maskComplement) StartIteration(state *State) Snapshot {
	return &complementSnapshot{a: m.a.StartIteration(state)}
}

type complementSnapshot struct{ a Snapshot }

func (s *complementSnapshot) Iterate(low0, high0, low1, high1 Index, state *State) PairIterator {
	inner := s.a.Iterate(low0, high0, low1, high1, state)
	var aPairs []Pair
	for inner.Next() {
		aPairs = append(aPairs, inner.Pair())
	}
	if low0 >= high0 || low1 >= high1 {
		return emptyIterator{}
	}
	return &complementIterator{
		aPairs: aPairs,
		low0:   low0, high0: high0, low1: low1, high1: high1,
		curI: low0, curJ: low1,
	}
}

// complementIterator emits every pair of the window not present in the
// (already fully consumed) list of a's pairs, walking the window in
// post-order. The window is always finite here: Complement only ever
// participates in an enumeration by way of an ISetBoundedMask, which clips
// every window to a finite S0 x S1 slice (spec.md §4.2).
type complementIterator struct {
	aPairs     []Pair
	idx        int
	low0, high0, low1, high1 Index
	curI, curJ Index
	cur        Pair
}

func (it *complementIterator) Next() bool {
	for it.curJ < it.high1 {
		for it.idx < len(it.aPairs) && less(it.aPairs[it.idx], Pair{I: it.curI, J: it.curJ}) {
			it.idx++
		}
		matched := it.idx < len(it.aPairs) && it.aPairs[it.idx] == Pair{I: it.curI, J: it.curJ}
		cur := Pair{I: it.curI, J: it.curJ}
		it.curI++
		if it.curI >= it.high0 {
			it.curI = it.low0
			it.curJ++
		}
		if !matched {
			it.cur = cur
			return true
		}
	}
	return false
}

func (it *complementIterator) Pair() Pair { return it.cur }
