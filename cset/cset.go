// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package cset implements the ConnectionSet algebra (spec component C): a
// CSet pairs a mask.Mask with zero or more value functions and lifts the
// mask algebra (intersection, multiset sum, difference) to value-carrying
// relations.
package cset

import (
	"github.com/Guardianofgotham/csa/mask"
)

// ValueFunc computes one scalar value for a pair (i, j). Out-of-scope
// geometric collaborators (disc, gaussian, block, ...) and any
// application-specific weight/delay function are both ValueFuncs; cset
// itself is agnostic to what they compute.
type ValueFunc func(i, j mask.Index) float64

// CSet is a mask decorated with an ordered list of value functions. Arity
// is len(Values): spec.md §4.7 allows 0-3, but cset itself does not
// enforce an upper bound, since a variadic []ValueFunc generalizes the
// Cset0|Cset1|Cset2|Cset3 sum type spec.md's design note offers as an
// alternative representation.
type CSet struct {
	Mask   mask.Mask
	Values []ValueFunc
}

// New builds a CSet over m with the given value functions.
func New(m mask.Mask, values ...ValueFunc) *CSet {
	return &CSet{Mask: m, Values: values}
}

// Arity returns the number of value functions c carries.
func (c *CSet) Arity() int { return len(c.Values) }

// Bounds implements mask.Finite, if c.Mask does.
func (c *CSet) Bounds() (low0, high0, low1, high1 mask.Index) {
	f := c.Mask.(mask.Finite)
	return f.Bounds()
}

// Entry is one element of a CSet's relation: a pair together with its
// arity-many values, v_0(i,j) ... v_{arity-1}(i,j).
type Entry struct {
	Pair   mask.Pair
	Values []float64
}

// Iterator is a CSet's analogue of mask.PairIterator: a pull-based,
// post-order cursor that additionally computes each pair's values.
type Iterator interface {
	Next() bool
	Entry() Entry
}

// Snapshot is a CSet's analogue of mask.Snapshot.
type Snapshot interface {
	Iterate(low0, high0, low1, high1 mask.Index, state *mask.State) Iterator
}

// StartIteration begins an iteration of c, mirroring mask.Mask's contract.
func (c *CSet) StartIteration(state *mask.State) Snapshot {
	return &csetSnapshot{maskSnap: c.Mask.StartIteration(state), values: c.Values}
}

type csetSnapshot struct {
	maskSnap mask.Snapshot
	values   []ValueFunc
}

func (s *csetSnapshot) Iterate(low0, high0, low1, high1 mask.Index, state *mask.State) Iterator {
	return &valueIterator{inner: s.maskSnap.Iterate(low0, high0, low1, high1, state), values: s.values}
}

// EnumerateAll is the Finite convenience iteration spec.md §4.6 also grants
// CSets: enumerate over c's own bounds.
func EnumerateAll(c *CSet, state *mask.State) Iterator {
	low0, high0, low1, high1 := c.Bounds()
	return c.StartIteration(state).Iterate(low0, high0, low1, high1, state)
}

// valueIterator decorates a mask.PairIterator with per-pair value
// computation, applying every one of a CSet's value functions to each
// emitted pair.
type valueIterator struct {
	inner  mask.PairIterator
	values []ValueFunc
	cur    Entry
}

func (it *valueIterator) Next() bool {
	if !it.inner.Next() {
		return false
	}
	p := it.inner.Pair()
	vals := make([]float64, len(it.values))
	for k, v := range it.values {
		vals[k] = v(p.I, p.J)
	}
	it.cur = Entry{Pair: p, Values: vals}
	return true
}

func (it *valueIterator) Entry() Entry { return it.cur }
