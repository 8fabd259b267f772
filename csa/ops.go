// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package csa

import (
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/sample"
)

// Mask wraps a mask.Mask to carry the binary-operator methods spec.md §6
// exposes (Go has no operator overloading, so `+`, `-`, `*`, `~` become
// Plus, Minus, Times, Complement). Wrap any mask.Mask value into one with
// Wrap to chain these.
type Mask struct {
	mask.Mask
}

// Wrap adapts an existing mask.Mask (e.g. one returned directly by
// package mask or package sample) into a Mask with operator methods.
func Wrap(m mask.Mask) Mask { return Mask{m} }

// Bounds implements mask.Finite. Like mask.Difference and mask.Transpose,
// Mask always declares Bounds; it panics with errors.InfiniteEnumeration
// if the wrapped value turns out not to actually be Finite, rather than
// making Finite-ness undiscoverable through the wrapper.
func (m Mask) Bounds() (low0, high0, low1, high1 mask.Index) {
	f, ok := m.Mask.(mask.Finite)
	if !ok {
		panic(errors.E(errors.InfiniteEnumeration, "Bounds called on an infinite mask"))
	}
	return f.Bounds()
}

// Plus returns m ⊎ other (spec.md's `+`, multiset sum).
func (m Mask) Plus(other Mask) (Mask, error) {
	sum, err := mask.MultisetSum(m.Mask, other.Mask)
	if err != nil {
		return Mask{}, err
	}
	return Wrap(sum), nil
}

// Minus returns m \ other (spec.md's `-`, difference).
func (m Mask) Minus(other Mask) Mask {
	return Wrap(mask.Difference(m.Mask, other.Mask))
}

// Times returns m ∩ other (spec.md's `*`, intersection) — or, when either
// operand is a curried sampler operator (sample.Operator: random(p),
// sampleN(N), fanIn(k), fanOut(k)), binds that operator to the other
// operand as its base (spec.md §6's `sampleN(N) * M`). Binding requires the
// base to be an *mask.IntervalSetMask; any other operand fails with
// errors.TypeMismatch, since a sampler operator has no way to draw from an
// arbitrary mask's pairs without one.
func (m Mask) Times(other Mask) (Mask, error) {
	if op, ok := m.Mask.(sample.Operator); ok {
		return bindOperator(op, other.Mask)
	}
	if op, ok := other.Mask.(sample.Operator); ok {
		return bindOperator(op, m.Mask)
	}
	return Wrap(mask.Intersection(m.Mask, other.Mask)), nil
}

func bindOperator(op sample.Operator, base mask.Mask) (Mask, error) {
	iset, ok := base.(*mask.IntervalSetMask)
	if !ok {
		return Mask{}, errors.E(errors.TypeMismatch, "sampler operator applied to a non-IntervalSetMask base")
	}
	return Wrap(op.Bind(iset)), nil
}

// Complement returns ~m (spec.md's `~`).
func (m Mask) Complement() Mask {
	return Wrap(mask.Complement(m.Mask))
}
