// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package csa is the connection-set algebra's external interface
// (spec.md §6): the library surface a collaborator embedding this module
// actually calls — top-level constructors for every primitive mask and
// sampler, binary-operator methods named after the algebra's reading
// rather than Go operator overloads (which don't exist), and the single
// top-level iteration entry point, Enumerate.
package csa

import (
	"github.com/Guardianofgotham/csa/cset"
	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
	"github.com/Guardianofgotham/csa/sample"
)

// OneToOne returns the identity mask {(i, i) : i ∈ Z}.
func OneToOne() mask.Mask {
	return mask.NewOneToOne()
}

// ExplicitMask returns the finite mask containing exactly the given
// pairs.
func ExplicitMask(pairs []mask.Pair) mask.Mask {
	return mask.NewExplicitMask(pairs)
}

// IntervalSetMask returns the Cartesian product mask s0 x s1.
func IntervalSetMask(s0, s1 *interval.Set) *mask.IntervalSetMask {
	return mask.NewIntervalSetMask(s0, s1)
}

// CSet wraps m with the given value functions.
func CSet(m mask.Mask, values ...cset.ValueFunc) *cset.CSet {
	return cset.New(m, values...)
}

// Random returns random(p), the curried Bernoulli(p) operator (spec.md
// §6). It carries no base of its own: `csa.Wrap(csa.Random(p, seed)).Times`
// applied to a finite operand is what yields ConstantRandomMask's
// independent per-pair connection rule, matching sampleN/fanIn/fanOut's
// shape rather than taking a base upfront.
func Random(p float64, seed string) sample.RandomOperator {
	return sample.RandomOperator{P: p, Seed: seed}
}

// SampleN returns sampleN(n), the curried operator that, multiplied by a
// finite base via Times, yields the n-pair sampler (spec.md §6's
// `sampleN(N) * M`).
func SampleN(n int, constructionSeed int64) sample.SampleNOperator {
	return sample.SampleNOperator{N: n, ConstructionSeed: constructionSeed}
}

// FanIn returns fanIn(k), the curried operator that, multiplied by a base,
// connects exactly k sources to every target of that base.
func FanIn(k int, constructionSeed int64) sample.FanInOperator {
	return sample.FanInOperator{K: k, ConstructionSeed: constructionSeed}
}

// FanOut returns fanOut(k), the curried operator that, multiplied by a
// base, connects every source of that base to exactly k targets.
func FanOut(k int, constructionSeed int64) sample.FanOutOperator {
	return sample.FanOutOperator{K: k, ConstructionSeed: constructionSeed}
}
