// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package csa

import (
	"github.com/Guardianofgotham/csa/interval"
	"github.com/Guardianofgotham/csa/mask"
)

// Enumerate is the single top-level iteration entry point spec.md §6
// names: it restricts expr to the window
// [low0,high0) x [low1,high1) and returns a lazy post-order cursor over
// it. The returned cursor is exactly the mask.PairIterator any
// Snapshot.Iterate call already produces; there is no separate Cursor
// type to wrap it in.
func Enumerate(expr mask.Mask, low0, high0, low1, high1 interval.Index, state *mask.State) (mask.PairIterator, error) {
	return expr.StartIteration(state).Iterate(low0, high0, low1, high1, state), nil
}

// EnumerateAll enumerates expr over its own bounds, failing with
// errors.InfiniteEnumeration if expr is not Finite (mask.RequireWindow's
// guard, applied here since this is the entry point callers reach for
// when they have no window of their own to supply).
func EnumerateAll(expr mask.Mask, state *mask.State) (mask.PairIterator, error) {
	if err := mask.RequireWindow(expr, false); err != nil {
		return nil, err
	}
	f := expr.(mask.Finite)
	return mask.EnumerateAll(f, state), nil
}
