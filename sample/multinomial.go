// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import "math/rand"

// binomial draws the number of successes in n independent Bernoulli(p)
// trials. There is no binomial sampler among the pack's dependencies
// (xxhash, gofuzz, testify, and x/sync cover hashing, fuzzing, assertions,
// and bounded concurrency, none of them distributions); the direct
// trial-counting definition is cheap enough at the partition and
// per-target fan-outs these samplers are used at, so it is implemented
// directly against math/rand rather than reached for a dependency that
// isn't in the pack.
func binomial(rng *rand.Rand, n int, p float64) int {
	switch {
	case n <= 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}
	k := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			k++
		}
	}
	return k
}

// multinomial splits n draws among len(probs) outcomes according to probs
// (which need not be pre-normalized to a total of exactly 1, only
// non-negative), via the standard sequential-conditional-binomial
// construction: outcome i gets Binomial(remaining, probs[i]/remainingMass)
// successes, then both remaining and remainingMass shrink accordingly. The
// last outcome absorbs whatever draws remain, so the returned counts
// always sum to exactly n regardless of floating-point rounding.
func multinomial(rng *rand.Rand, n int, probs []float64) []int {
	counts := make([]int, len(probs))
	if len(probs) == 0 {
		return counts
	}
	remaining := n
	var total float64
	for _, p := range probs {
		total += p
	}
	remainingMass := total
	for i := 0; i < len(probs)-1; i++ {
		if remaining <= 0 || remainingMass <= 0 {
			break
		}
		p := probs[i] / remainingMass
		k := binomial(rng, remaining, p)
		counts[i] = k
		remaining -= k
		remainingMass -= probs[i]
	}
	counts[len(probs)-1] = remaining
	return counts
}

// uniform returns n equal weights summing to 1 (or nil if n <= 0).
func uniform(n int) []float64 {
	if n <= 0 {
		return nil
	}
	probs := make([]float64, n)
	w := 1.0 / float64(n)
	for i := range probs {
		probs[i] = w
	}
	return probs
}
