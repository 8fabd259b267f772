// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package mask

// sweepMode selects which of the three binary co-sweep combinators
// coSweepIterator implements.
type sweepMode int

const (
	sweepIntersect sweepMode = iota
	sweepSum
	sweepDifference
)

// less reports whether p sorts strictly before q in post-order (j, i).
func less(p, q Pair) bool {
	if p.J != q.J {
		return p.J < q.J
	}
	return p.I < q.I
}

// coSweepIterator merges two post-ordered PairIterators with explicit
// peekable cursors, following the reimplementation note in spec.md §9:
// "implementations should use explicit optional-next semantics (peekable
// iterators) and fall-through loops that yield the remainder of the
// non-exhausted side," replacing the original's exception-driven
// StopIteration. Stream exhaustion on either side is a private condition
// handled entirely within this loop, matching spec.md §7's policy that it
// is "caught locally in combinators."
type coSweepIterator struct {
	a, b         PairIterator
	mode         sweepMode
	aHas, bHas   bool
	aPair, bPair Pair
	started      bool
	cur          Pair
	// pending holds a second pair to emit on the next Next() call, used by
	// MultisetSum to emit both operands' copies of an equal pair.
	pending    Pair
	hasPending bool
}

func (it *coSweepIterator) advanceA() {
	it.aHas = it.a.Next()
	if it.aHas {
		it.aPair = it.a.Pair()
	}
}

func (it *coSweepIterator) advanceB() {
	it.bHas = it.b.Next()
	if it.bHas {
		it.bPair = it.b.Pair()
	}
}

func (it *coSweepIterator) Next() bool {
	if it.hasPending {
		it.cur = it.pending
		it.hasPending = false
		return true
	}
	if !it.started {
		it.started = true
		it.advanceA()
		it.advanceB()
	}
	for {
		switch {
		case !it.aHas && !it.bHas:
			return false
		case !it.aHas:
			// a is exhausted.
			if it.mode == sweepSum {
				it.cur = it.bPair
				it.advanceB()
				return true
			}
			// Intersection and difference have nothing left from a.
			return false
		case !it.bHas:
			if it.mode == sweepDifference || it.mode == sweepSum {
				it.cur = it.aPair
				it.advanceA()
				return true
			}
			return false
		case less(it.aPair, it.bPair):
			if it.mode == sweepDifference || it.mode == sweepSum {
				it.cur = it.aPair
				it.advanceA()
				return true
			}
			it.advanceA()
		case less(it.bPair, it.aPair):
			if it.mode == sweepSum {
				it.cur = it.bPair
				it.advanceB()
				return true
			}
			it.advanceB()
		default:
			// Equal pairs.
			switch it.mode {
			case sweepIntersect:
				it.cur = it.aPair
				it.advanceA()
				it.advanceB()
				return true
			case sweepSum:
				it.cur = it.aPair
				it.pending = it.bPair
				it.hasPending = true
				it.advanceA()
				it.advanceB()
				return true
			case sweepDifference:
				it.advanceA()
				it.advanceB()
			}
		}
	}
}

func (it *coSweepIterator) Pair() Pair { return it.cur }
