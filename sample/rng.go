// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package sample implements the random samplers (spec component E):
// ConstantRandomMask, SampleNMask, FanInMask, and the fan-out sampler
// NewFanOut builds on FanInMask, plus the partition model that makes their
// output invariant to how a caller splits a mask's support across workers
// (spec.md §4.5).
//
// SampleNMask and FanInMask draw from two independent random streams. A
// partition-allocation stream, reseeded from scratch on every
// StartIteration by hashing the iteration's agreed-upon seed, decides how
// many draws each partition owns; since every partition's snapshot hashes
// the same seed, they all compute the same allocation independently, with
// no coordination required. A per-target-allocation stream, built from a
// seed fixed at construction, decides how a partition's share is
// distributed across its targets and which sources each target draws;
// because that seed is fixed at construction time rather than at
// iteration time, it is consistent across repeated iterations of the same
// sampler. ConstantRandomMask uses neither stream: it decides each pair
// from a hash of the seed and the pair.
package sample

import (
	"hash"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/Guardianofgotham/csa/writehash"
)

// defaultSeed is used when a caller's mask.State is nil or carries an empty
// Seed: every un-partitioned use of a sampler, and every partitioned use
// that doesn't bother to assign an explicit Seed, still agrees.
const defaultSeed = "csa/sample"

// seedRand returns a *rand.Rand seeded with the int64 that hash(seed) folds
// to, by writing seed through writehash.String into an xxhash digest and
// taking its Sum64.
// xxhash.Digest implements hash.Hash (and hash.Hash64), matching
// writehash's signature directly.
func seedRand(seed string) *rand.Rand {
	var h hash.Hash = xxhash.New()
	writehash.String(h, seed)
	sum := h.(*xxhash.Digest).Sum64()
	return rand.New(rand.NewSource(int64(sum)))
}

// rowRand derives the per-row draw stream for target ordinal t, by
// drawing a fresh int64 from stream and mixing in t. Spec.md §4.5 requires
// each target row to re-seed its own draw stream on entry so ordering
// effects within a row are confined to a single target's worth of draws.
func rowRand(stream *rand.Rand, t int) *rand.Rand {
	draw := stream.Int63()
	return rand.New(rand.NewSource(draw + int64(t)))
}
