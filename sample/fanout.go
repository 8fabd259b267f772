// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/Guardianofgotham/csa/mask"
)

// NewFanOut builds a sampler connecting every source of base to exactly k
// targets (with replacement, uniformly), via spec.md §4.5's identity
// FanOut(k) * base == transpose(FanIn(k) * transpose(base)): fan-out on
// base is fan-in on base's axis-swapped Cartesian product, transposed
// back. This reuses FanInMask and mask.Transpose rather than duplicating
// the allocation logic under swapped axis names.
func NewFanOut(k int, base *mask.IntervalSetMask, constructionSeed int64) mask.Mask {
	swapped := mask.NewIntervalSetMask(base.S1, base.S0)
	fanIn := NewFanIn(k, swapped, constructionSeed)
	return mask.NewTranspose(fanIn)
}
