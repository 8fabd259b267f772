// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/Guardianofgotham/csa/errors"
	"github.com/Guardianofgotham/csa/mask"
)

// Operator is spec.md §6's curried, base-less sampler operator:
// `random(p)`, `sampleN(N)`, `fanIn(k)`, `fanOut(k)`. None of these carry a
// base at construction; each becomes the concrete, iterable sampler mask
// spec.md's `sampleN(N) * M` denotes only once Bind is called with one
// (csa.Mask.Times does this for the `*` operator when either side of a
// multiplication is an Operator).
type Operator interface {
	// Bind combines the operator with base, producing the sampler mask.Mask
	// that `operator * base` denotes.
	Bind(base *mask.IntervalSetMask) mask.Mask
}

// unbound panics when an Operator's StartIteration is called directly,
// before it has been combined with a base via Times: an Operator
// implements mask.Mask only so it can be wrapped and passed to Times in
// the first place (mirroring csa.Mask's own "declare the method, panic if
// misused" style for Bounds), not because it is itself iterable.
func unbound(name string) mask.Snapshot {
	panic(errors.E(errors.TypeMismatch, name+": a sampler operator has no base of its own; bind it to an *mask.IntervalSetMask via Times first"))
}

// RandomOperator is the curried `random(p)` operator (spec.md §6).
type RandomOperator struct {
	P    float64
	Seed string
}

// Bind implements Operator.
func (op RandomOperator) Bind(base *mask.IntervalSetMask) mask.Mask {
	return NewConstantRandomMask(op.P, base, op.Seed)
}

// StartIteration implements mask.Mask; see unbound.
func (op RandomOperator) StartIteration(*mask.State) mask.Snapshot { return unbound("random(p)") }

// SampleNOperator is the curried `sampleN(N)` operator (spec.md §6).
type SampleNOperator struct {
	N                int
	ConstructionSeed int64
}

// Bind implements Operator.
func (op SampleNOperator) Bind(base *mask.IntervalSetMask) mask.Mask {
	return NewSampleN(op.N, base, op.ConstructionSeed)
}

// StartIteration implements mask.Mask; see unbound.
func (op SampleNOperator) StartIteration(*mask.State) mask.Snapshot { return unbound("sampleN(N)") }

// FanInOperator is the curried `fanIn(k)` operator (spec.md §6).
type FanInOperator struct {
	K                int
	ConstructionSeed int64
}

// Bind implements Operator.
func (op FanInOperator) Bind(base *mask.IntervalSetMask) mask.Mask {
	return NewFanIn(op.K, base, op.ConstructionSeed)
}

// StartIteration implements mask.Mask; see unbound.
func (op FanInOperator) StartIteration(*mask.State) mask.Snapshot { return unbound("fanIn(k)") }

// FanOutOperator is the curried `fanOut(k)` operator (spec.md §6).
type FanOutOperator struct {
	K                int
	ConstructionSeed int64
}

// Bind implements Operator.
func (op FanOutOperator) Bind(base *mask.IntervalSetMask) mask.Mask {
	return NewFanOut(op.K, base, op.ConstructionSeed)
}

// StartIteration implements mask.Mask; see unbound.
func (op FanOutOperator) StartIteration(*mask.State) mask.Snapshot { return unbound("fanOut(k)") }
