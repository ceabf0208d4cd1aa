// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements path-dependent constraints contributed to
// the TOPP-RA decision vector z = (u, x, v_1, v_2, ...)
package constraint

// Counts holds the number of rows/columns a Constraint contributes to the
// combined per-stage decision vector and constraint block.
//
//	Nm   -- canonical inequality rows:   a*u + b*x + c <= 0
//	Neq  -- non-canonical equality rows: abar*u + bbar*x + cbar = D*v
//	Niq  -- non-canonical inequality rows on slack: lG <= G*v <= hG
//	Nv   -- slack variables owned by this constraint
type Counts struct {
	Nm, Neq, Niq, Nv int
}

// Constraint defines what every path-dependent constraint must implement.
// Implementations contribute rows/columns at grid points 0..N; the
// assembly layer calls Counts at construction time (to size the blocks and
// again to compute offsets) and then dispatches each Fill* method exactly
// once, at a fixed offset.
type Constraint interface {

	// Counts returns the row/column contribution of this constraint.
	Counts() Counts

	// FillCanonical writes a[i], b[i], c[i] for all stages into the
	// caller-provided column slices (length N+1 each).
	FillCanonical(a, b, c [][]float64)

	// FillEquality writes abar[i], bbar[i], cbar[i], D[i] (shape (N+1,
	// neq, nv)) for the non-canonical equality block.
	FillEquality(abar, bbar, cbar [][]float64, D [][][]float64)

	// FillInequality writes G[i] (shape (N+1, niq, nv)), lG[i], hG[i] for
	// the non-canonical inequality-on-slack block.
	FillInequality(G [][][]float64, lG, hG [][]float64)

	// FillSlackBounds writes l[i], h[i] (shape (N+1, nv)) hard bounds on
	// this constraint's own slack variables.
	FillSlackBounds(l, h [][]float64)
}

// Grid is the shared path discretization: s[0..N] and its spacings. Every
// constraint in a set must agree on N and on the underlying s[0..N].
// assembly.Build sizes every block from the grid it is given and does not
// compare it with the grids the constraints were built on; a constraint
// built on a shorter grid fails with an index panic while filling, and one
// built on a different s of the same length is not detected.
type Grid struct {
	S  []float64 // s[0..N], strictly monotone
	Ds []float64 // Ds[i] = s[i+1]-s[i], length N
	N  int       // number of intervals
}

// NewGrid builds a Grid from a strictly monotone discretization.
func NewGrid(s []float64) (g Grid, err error) {
	if len(s) < 2 {
		return g, errGrid("grid must have at least 2 points, got %d", len(s))
	}
	n := len(s) - 1
	ds := make([]float64, n)
	for i := 0; i < n; i++ {
		d := s[i+1] - s[i]
		if d <= 0 {
			return g, errGrid("grid must be strictly monotone: s[%d]=%v >= s[%d]=%v", i, s[i], i+1, s[i+1])
		}
		ds[i] = d
	}
	g.S = s
	g.Ds = ds
	g.N = n
	return g, nil
}
