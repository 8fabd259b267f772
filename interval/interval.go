// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package interval implements IntervalSet (spec component A): the canonical
// sorted, disjoint-interval representation of a finite subset of the
// non-negative integers, together with its set algebra (union, intersection,
// difference) and element/interval iterators.
//
// An IntervalSet backs every finite index space a mask is defined over; the
// random samplers in package sample and the Cartesian-product masks in
// package mask are both built directly on top of Set.
package interval

import (
	"sort"

	"github.com/Guardianofgotham/csa/errors"
)

// Index identifies an element of one of the two index spaces a connection
// set relates. Index spaces are described as "typically large, possibly
// unbounded" (spec.md §3), so indices are carried as int64 rather than the
// machine int.
type Index = int64

// Interval is a closed interval [Low, High] of indices, Low <= High.
type Interval struct {
	Low, High Index
}

// Empty reports whether i contains no elements.
func (i Interval) Empty() bool { return i.Low > i.High }

// Cardinality is the number of elements in i.
func (i Interval) Cardinality() Index {
	if i.Empty() {
		return 0
	}
	return i.High - i.Low + 1
}

// Contains reports whether x lies within i.
func (i Interval) Contains(x Index) bool { return x >= i.Low && x <= i.High }

// Intersects reports whether i and j share any element.
func (i Interval) Intersects(j Interval) bool {
	return i.Low <= j.High && j.Low <= i.High
}

// Intersect computes i ∩ j. The result is Empty if the intervals do not
// overlap.
func (i Interval) Intersect(j Interval) Interval {
	return Interval{maxIndex(i.Low, j.Low), minIndex(i.High, j.High)}
}

// adjacentOrOverlapping reports whether i and j should be coalesced into a
// single interval by from_elements: they overlap, or they are separated by
// no gap (c == b+1).
func (i Interval) adjacentOrOverlapping(j Interval) bool {
	return i.Low <= j.High+1 && j.Low <= i.High+1
}

func minIndex(a, b Index) Index {
	if a < b {
		return a
	}
	return b
}

func maxIndex(a, b Index) Index {
	if a > b {
		return a
	}
	return b
}

// Set is a canonical sorted sequence of disjoint, non-adjacent closed
// intervals representing a finite subset of the non-negative integers.
// Invariants (spec.md §3): intervals sorted ascending; for consecutive
// intervals [a,b], [c,d], c > b+1; a <= b for every interval. Sets are
// immutable once constructed.
type Set struct {
	ivs []Interval
}

// Empty is the canonical empty Set.
var Empty = &Set{}

// New builds a Set from a list of intervals, normalizing them exactly as
// FromElements does: sort, then coalesce overlapping or adjacent intervals.
func New(ivs ...Interval) *Set {
	filtered := ivs[:0:0]
	for _, iv := range ivs {
		if !iv.Empty() {
			filtered = append(filtered, iv)
		}
	}
	sort.Slice(filtered, func(a, b int) bool { return filtered[a].Low < filtered[b].Low })
	var out []Interval
	for _, iv := range filtered {
		if n := len(out); n > 0 && out[n-1].adjacentOrOverlapping(iv) {
			out[n-1].High = maxIndex(out[n-1].High, iv.High)
			continue
		}
		out = append(out, iv)
	}
	return &Set{ivs: out}
}

// FromElements builds the Set containing exactly the given elements,
// deduplicated and coalesced into runs: from_elements([3,1,2,5,4,10]) yields
// intervals [[1,5],[10,10]].
func FromElements(xs []Index) *Set {
	if len(xs) == 0 {
		return Empty
	}
	sorted := append([]Index(nil), xs...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
	var ivs []Interval
	start, prev := sorted[0], sorted[0]
	for _, x := range sorted[1:] {
		switch {
		case x == prev:
			continue
		case x == prev+1:
			prev = x
		default:
			ivs = append(ivs, Interval{start, prev})
			start, prev = x, x
		}
	}
	ivs = append(ivs, Interval{start, prev})
	return &Set{ivs: ivs}
}

// Intervals returns the Set's normalized intervals. The returned slice must
// not be mutated.
func (s *Set) Intervals() []Interval { return s.ivs }

// Cardinality returns the number of elements in s.
func (s *Set) Cardinality() Index {
	var n Index
	for _, iv := range s.ivs {
		n += iv.Cardinality()
	}
	return n
}

// Contains reports whether x is a member of s, via binary search over the
// disjoint interval list.
func (s *Set) Contains(x Index) bool {
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].High >= x })
	return i < len(s.ivs) && s.ivs[i].Low <= x
}

// Min returns the smallest element of s. It fails with errors.EmptySet if s
// is empty.
func (s *Set) Min() (Index, error) {
	if len(s.ivs) == 0 {
		return 0, errors.E(errors.EmptySet, "min")
	}
	return s.ivs[0].Low, nil
}

// Max returns the largest element of s. It fails with errors.EmptySet if s
// is empty.
func (s *Set) Max() (Index, error) {
	if len(s.ivs) == 0 {
		return 0, errors.E(errors.EmptySet, "max")
	}
	return s.ivs[len(s.ivs)-1].High, nil
}

// Count returns the number of elements x in s with lo <= x < hi.
func (s *Set) Count(lo, hi Index) Index {
	if lo >= hi {
		return 0
	}
	var n Index
	for _, iv := range s.ivs {
		clipped := iv.Intersect(Interval{lo, hi - 1})
		n += clipped.Cardinality()
	}
	return n
}

// ElementAt returns the element at ordinal position pos (0-based) in s's
// ascending enumeration. It panics if pos is out of range; callers are
// expected to have checked pos < s.Cardinality().
func (s *Set) ElementAt(pos Index) Index {
	for _, iv := range s.ivs {
		n := iv.Cardinality()
		if pos < n {
			return iv.Low + pos
		}
		pos -= n
	}
	panic("interval.Set.ElementAt: position out of range")
}

// Elements materializes every element of s in ascending order. It is meant
// for small, already-bounded sets (e.g. a sampler's per-partition target
// list), not for iterating a potentially large IntervalSet.
func (s *Set) Elements() []Index {
	out := make([]Index, 0, s.Cardinality())
	for it := s.ElementIter(); it.Next(); {
		out = append(out, it.Value())
	}
	return out
}

// Bounds returns the tightest interval spanning every element of s. It is
// Empty if s is empty.
func (s *Set) Bounds() Interval {
	if len(s.ivs) == 0 {
		return Interval{1, 0}
	}
	return Interval{s.ivs[0].Low, s.ivs[len(s.ivs)-1].High}
}
