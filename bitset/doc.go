// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitset provides support for treating a []uintptr as a bitset.  It's
// essentially a less-abstracted variant of github.com/willf/bitset.
package bitset
