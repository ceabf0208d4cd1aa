// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package assembly allocates and fills the per-stage constraint blocks
// (A[i], lA[i], hA[i], l[i], h[i]) and shared (H, g) by stacking the
// contributions of a heterogeneous set of constraint.Constraint values.
package assembly

// Numeric constants shared with the qp and topp packages.
const (
	SuperTiny = 1e-10
	Tiny      = 1e-8
	Small     = 1e-5
	Infty     = 1e8
	MaxU      = 100.0
	MaxX      = 100.0
	// Nop is the number of reserved operational rows at the top of every
	// per-stage constraint block.
	Nop = 3
)
