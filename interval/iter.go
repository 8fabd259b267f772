// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package interval

// ElementIter is a pull-based cursor over the elements of a Set, in
// ascending order. It follows the same Next()/Value() idiom as
// mask.PairIterator: call Next() to advance, and it is false once the
// stream is exhausted.
type ElementIter struct {
	ivs     []Interval
	idx     int
	cur     Index
	started bool
}

// ElementIter returns an iterator over every element of s in ascending
// order.
func (s *Set) ElementIter() *ElementIter {
	return &ElementIter{ivs: s.ivs}
}

// BoundedIter returns an iterator over the elements x of s with
// lo <= x < hi, in ascending order.
func (s *Set) BoundedIter(lo, hi Index) *ElementIter {
	var ivs []Interval
	for _, iv := range s.ivs {
		clipped := iv.Intersect(Interval{lo, hi - 1})
		if !clipped.Empty() {
			ivs = append(ivs, clipped)
		}
	}
	return &ElementIter{ivs: ivs}
}

// Next advances the iterator, returning false once it is exhausted.
func (it *ElementIter) Next() bool {
	if !it.started {
		it.started = true
		if len(it.ivs) == 0 {
			return false
		}
		it.cur = it.ivs[0].Low
		return true
	}
	it.cur++
	if it.idx < len(it.ivs) && it.cur > it.ivs[it.idx].High {
		it.idx++
		if it.idx >= len(it.ivs) {
			return false
		}
		it.cur = it.ivs[it.idx].Low
	}
	return it.idx < len(it.ivs)
}

// Value returns the element at the iterator's current position. It is only
// valid after a call to Next that returned true.
func (it *ElementIter) Value() Index { return it.cur }

// IntervalIter is a pull-based cursor over the intervals of a Set.
type IntervalIter struct {
	ivs []Interval
	i   int
}

// IntervalIter returns an iterator over s's normalized intervals, in
// ascending order.
func (s *Set) IntervalIter() *IntervalIter {
	return &IntervalIter{ivs: s.ivs, i: -1}
}

// Next advances the iterator, returning false once it is exhausted.
func (it *IntervalIter) Next() bool {
	it.i++
	return it.i < len(it.ivs)
}

// Value returns the interval at the iterator's current position. It is only
// valid after a call to Next that returned true.
func (it *IntervalIter) Value() Interval { return it.ivs[it.i] }
