// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/toppra-go/constraint"
)

// Matrices holds the per-stage QP data shared by every set-projection
// primitive. It is allocated once at construction from (N, constraint
// set), filled once, and mutated only in the operational rows, the
// objective (H, g), and the output buffers thereafter.
type Matrices struct {
	Grid constraint.Grid

	// dimensions
	Nm, Neq, Niq, Nv int // summed constraint contributions
	NV, NC           int // combined decision-vector size, stacked row count

	// shared objective
	H [][]float64 // (NV, NV)
	G []float64   // (NV)

	// per-stage box bounds on z = (u, x, v_1, v_2, ...)
	L, Hh [][]float64 // (N+1, NV)

	// per-stage stacked constraint rows
	A        [][][]float64 // (N+1, NC, NV)
	LA, HA   [][]float64   // (N+1, NC)

	// scratch primal/dual buffers; allocated by Build, not used by the
	// topp primitives or the qp backends, which keep their own
	Z []float64 // (NV)
	Y []float64 // (NC)

	constraints []constraint.Constraint
}

// Build allocates and fills a Matrices instance for the given grid and
// constraint set.
func Build(grid constraint.Grid, constraints []constraint.Constraint) (*Matrices, error) {
	m := &Matrices{Grid: grid, constraints: constraints}

	// step 1: sum contributions
	for _, c := range constraints {
		cnt := c.Counts()
		m.Nm += cnt.Nm
		m.Neq += cnt.Neq
		m.Niq += cnt.Niq
		m.Nv += cnt.Nv
	}
	m.NV = 2 + m.Nv
	m.NC = Nop + m.Nm + m.Neq + m.Niq

	n1 := grid.N + 1

	// step 2: allocate
	m.H = la.MatAlloc(m.NV, m.NV)
	m.G = make([]float64, m.NV)
	m.L = la.MatAlloc(n1, m.NV)
	m.Hh = la.MatAlloc(n1, m.NV)
	m.LA = la.MatAlloc(n1, m.NC)
	m.HA = la.MatAlloc(n1, m.NC)
	m.A = make([][][]float64, n1)
	for i := 0; i < n1; i++ {
		m.A[i] = la.MatAlloc(m.NC, m.NV)
	}
	m.Z = make([]float64, m.NV)
	m.Y = make([]float64, m.NC)

	if err := m.fill(); err != nil {
		return nil, err
	}
	return m, nil
}

// fill assembles the canonical/equality/inequality blocks and box bounds
// after every constraint has written its own rows and columns.
func (m *Matrices) fill() error {
	n1 := m.Grid.N + 1

	// step 3: operational rows already zero from allocation; nothing to do.

	// per-row/column views indexed [stage][row] to hand to Fill* methods
	// without requiring constraints to know about NC/NV strides directly.
	a := sliceView(n1, m.Nm)
	b := sliceView(n1, m.Nm)
	c := sliceView(n1, m.Nm)

	abar := sliceView(n1, m.Neq)
	bbar := sliceView(n1, m.Neq)
	cbar := sliceView(n1, m.Neq)

	lG := sliceView(n1, m.Niq)
	hG := sliceView(n1, m.Niq)

	lv := sliceView(n1, m.Nv)
	hv := sliceView(n1, m.Nv)

	D := make([][][]float64, n1)
	G := make([][][]float64, n1)
	for i := 0; i < n1; i++ {
		D[i] = la.MatAlloc(m.Neq, m.Nv)
		G[i] = la.MatAlloc(m.Niq, m.Nv)
	}

	rowM, rowEq, rowIq, colV := 0, 0, 0, 0
	for _, cons := range m.constraints {
		cnt := cons.Counts()

		cons.FillCanonical(subCols(a, rowM, cnt.Nm), subCols(b, rowM, cnt.Nm), subCols(c, rowM, cnt.Nm))
		rowM += cnt.Nm

		cons.FillEquality(subCols(abar, rowEq, cnt.Neq), subCols(bbar, rowEq, cnt.Neq), subCols(cbar, rowEq, cnt.Neq), subCube(D, rowEq, cnt.Neq, colV, cnt.Nv))
		rowEq += cnt.Neq

		cons.FillInequality(subCube(G, rowIq, cnt.Niq, colV, cnt.Nv), subCols(lG, rowIq, cnt.Niq), subCols(hG, rowIq, cnt.Niq))
		rowIq += cnt.Niq

		cons.FillSlackBounds(subCols(lv, colV, cnt.Nv), subCols(hv, colV, cnt.Nv))
		colV += cnt.Nv
	}
	if rowM != m.Nm || rowEq != m.Neq || rowIq != m.Niq || colV != m.Nv {
		chk.Panic("assembly: internal offset mismatch while filling matrices")
	}

	// step 4: canonical block
	row := Nop
	for i := 0; i < n1; i++ {
		for k := 0; k < m.Nm; k++ {
			m.A[i][row+k][0] = a[i][k]
			m.A[i][row+k][1] = b[i][k]
			m.LA[i][row+k] = -Infty
			m.HA[i][row+k] = -c[i][k]
		}
	}

	// step 5: equality block
	rowEqBase := Nop + m.Nm
	colBase := 2
	for i := 0; i < n1; i++ {
		for k := 0; k < m.Neq; k++ {
			r := rowEqBase + k
			m.A[i][r][0] = abar[i][k]
			m.A[i][r][1] = bbar[i][k]
			for v := 0; v < m.Nv; v++ {
				m.A[i][r][colBase+v] = -D[i][k][v]
			}
			m.LA[i][r] = -cbar[i][k]
			m.HA[i][r] = -cbar[i][k]
		}
	}

	// step 6: inequality block
	rowIqBase := Nop + m.Nm + m.Neq
	for i := 0; i < n1; i++ {
		for k := 0; k < m.Niq; k++ {
			r := rowIqBase + k
			for v := 0; v < m.Nv; v++ {
				m.A[i][r][colBase+v] = G[i][k][v]
			}
			m.LA[i][r] = lG[i][k]
			m.HA[i][r] = hG[i][k]
		}
	}

	// step 7: box bounds
	for i := 0; i < n1; i++ {
		m.L[i][0], m.Hh[i][0] = -MaxU, MaxU
		m.L[i][1], m.Hh[i][1] = 0, MaxX
		for v := 0; v < m.Nv; v++ {
			m.L[i][colBase+v] = lv[i][v]
			m.Hh[i][colBase+v] = hv[i][v]
		}
	}

	return nil
}

// ResetOperationalRows zeros rows [0, Nop) of A, lA, hA, plus the whole of
// H and g. Callers must invoke this between primitives of different kinds.
func (m *Matrices) ResetOperationalRows() {
	for i := range m.A {
		for r := 0; r < Nop; r++ {
			for v := range m.A[i][r] {
				m.A[i][r][v] = 0
			}
			m.LA[i][r] = 0
			m.HA[i][r] = 0
		}
	}
	for r := range m.H {
		for v := range m.H[r] {
			m.H[r][v] = 0
		}
	}
	for v := range m.G {
		m.G[v] = 0
	}
}

// sliceView allocates an (n1, cols) nested slice.
func sliceView(n1, cols int) [][]float64 {
	return la.MatAlloc(n1, cols)
}

// subCols returns, per stage, the [start:start+n] window of a (n1, cols)
// matrix, so a constraint writes only into its assigned column range.
func subCols(m [][]float64, start, n int) [][]float64 {
	if n == 0 {
		return nil
	}
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = m[i][start : start+n]
	}
	return out
}

// subCube returns, per stage, the [rowStart:rowStart+nrow][colStart:colStart+ncol]
// window of a (n1, rows, cols) cube.
func subCube(m [][][]float64, rowStart, nrow, colStart, ncol int) [][][]float64 {
	if nrow == 0 || ncol == 0 {
		return nil
	}
	out := make([][][]float64, len(m))
	for i := range m {
		out[i] = make([][]float64, nrow)
		for r := 0; r < nrow; r++ {
			out[i][r] = m[i][rowStart+r][colStart : colStart+ncol]
		}
	}
	return out
}
