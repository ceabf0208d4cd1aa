// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qp

import (
	"gonum.org/v1/gonum/mat"
)

// boundState records which side of its box bound a variable is pinned to.
type boundState int

const (
	free boundState = iota
	atLower
	atUpper
)

// ActiveSetBackend is a primal active-set QP solver over dense box +
// two-sided linear-inequality constraints, using gonum/mat to factor the
// reduced KKT system at each working-set iteration.
//
// It is not reentrant: a single instance must not be called concurrently
// from multiple goroutines.
type ActiveSetBackend struct {
	nV, nC int

	// working set, persisted across Hotstart calls
	varSt []boundState
	rowSt []boundState

	// last solved primal/objective
	z      []float64
	objVal float64

	// tolerances
	feasTol float64
	dualTol float64
}

// NewActiveSetBackend allocates a backend for a fixed (nV, nC) sparsity
// pattern.
func NewActiveSetBackend(nV, nC int) *ActiveSetBackend {
	return &ActiveSetBackend{
		nV:      nV,
		nC:      nC,
		varSt:   make([]boundState, nV),
		rowSt:   make([]boundState, nC),
		z:       make([]float64, nV),
		feasTol: 1e-9,
		dualTol: 1e-7,
	}
}

// Init cold-starts from the vertex z = l (every variable pinned to its
// lower bound), discarding any prior working set.
func (o *ActiveSetBackend) Init(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64, maxIter int) Status {
	for j := 0; j < o.nV; j++ {
		if l[j] > h[j]+o.feasTol {
			return StatusInitFailed
		}
		o.varSt[j] = atLower
	}
	for r := 0; r < o.nC; r++ {
		o.rowSt[r] = free
	}
	return o.solve(H, g, A, l, h, lA, hA, maxIter)
}

// Hotstart re-solves reusing the working set left by the previous
// Init/Hotstart call on this instance.
func (o *ActiveSetBackend) Hotstart(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64, maxIter int) Status {
	return o.solve(H, g, A, l, h, lA, hA, maxIter)
}

// GetPrimal returns the last primal solution.
func (o *ActiveSetBackend) GetPrimal() []float64 { return o.z }

// GetObjectiveValue returns the last objective value.
func (o *ActiveSetBackend) GetObjectiveValue() float64 { return o.objVal }

// solve runs the bounded active-set iteration, starting from the backend's
// current working set (o.varSt, o.rowSt).
func (o *ActiveSetBackend) solve(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64, maxIter int) Status {
	nV := o.nV
	for iter := 0; iter < maxIter; iter++ {

		z, lambdaVar, lambdaRow, status := o.solveKKT(H, g, A, l, h, lA, hA)
		if status != StatusSuccess {
			return status
		}

		// primal feasibility check over inactive bounds/rows: add the
		// most-violated one to the working set.
		worst := -1
		worstAmt := o.feasTol
		worstIsRow := false
		worstSide := atLower

		for j := 0; j < nV; j++ {
			if o.varSt[j] != free {
				continue
			}
			if v := l[j] - z[j]; v > worstAmt {
				worst, worstAmt, worstIsRow, worstSide = j, v, false, atLower
			}
			if v := z[j] - h[j]; v > worstAmt {
				worst, worstAmt, worstIsRow, worstSide = j, v, false, atUpper
			}
		}
		for r := 0; r < o.nC; r++ {
			if o.rowSt[r] != free {
				continue
			}
			av := dot(A[r], z)
			if v := lA[r] - av; v > worstAmt {
				worst, worstAmt, worstIsRow, worstSide = r, v, true, atLower
			}
			if v := av - hA[r]; v > worstAmt {
				worst, worstAmt, worstIsRow, worstSide = r, v, true, atUpper
			}
		}
		if worst >= 0 {
			if worstIsRow {
				o.rowSt[worst] = worstSide
			} else {
				o.varSt[worst] = worstSide
			}
			continue
		}

		// primal-feasible: check dual feasibility of the active set.
		dropIdx, dropIsRow, worstLambda := -1, false, o.dualTol
		for j := 0; j < nV; j++ {
			if o.varSt[j] == free {
				continue
			}
			lam := lambdaVar[j]
			if o.varSt[j] == atLower && lam > worstLambda {
				dropIdx, dropIsRow, worstLambda = j, false, lam
			}
			if o.varSt[j] == atUpper && -lam > worstLambda {
				dropIdx, dropIsRow, worstLambda = j, false, -lam
			}
		}
		for r := 0; r < o.nC; r++ {
			if o.rowSt[r] == free {
				continue
			}
			lam := lambdaRow[r]
			if o.rowSt[r] == atLower && lam > worstLambda {
				dropIdx, dropIsRow, worstLambda = r, true, lam
			}
			if o.rowSt[r] == atUpper && -lam > worstLambda {
				dropIdx, dropIsRow, worstLambda = r, true, -lam
			}
		}
		if dropIdx >= 0 {
			if dropIsRow {
				o.rowSt[dropIdx] = free
			} else {
				o.varSt[dropIdx] = free
			}
			continue
		}

		// optimal: both primal- and dual-feasible.
		o.z = z
		o.objVal = objective(H, g, z)
		return StatusSuccess
	}
	return StatusMaxIter
}

// solveKKT assembles and factors the reduced KKT system for the current
// working set:
//
//	[H  C^T] [z]   [-g]
//	[C   0 ] [λ] = [d]
//
// where C stacks one row per active bound/row and d the corresponding
// target value. Solved as a general dense system via mat.LU; the
// conditioning check in denseSolve rejects a singular or near-singular
// working set rather than return a bogus solution.
func (o *ActiveSetBackend) solveKKT(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64) (z, lambdaVar []float64, lambdaRow []float64, status Status) {
	nV := o.nV
	type cRow struct {
		coeffs []float64
		target float64
		isRow  bool
		idx    int
	}
	var rows []cRow
	for j := 0; j < nV; j++ {
		if o.varSt[j] == free {
			continue
		}
		e := make([]float64, nV)
		e[j] = 1
		target := l[j]
		if o.varSt[j] == atUpper {
			target = h[j]
		}
		rows = append(rows, cRow{e, target, false, j})
	}
	for r := 0; r < o.nC; r++ {
		if o.rowSt[r] == free {
			continue
		}
		target := lA[r]
		if o.rowSt[r] == atUpper {
			target = hA[r]
		}
		rows = append(rows, cRow{A[r], target, true, r})
	}
	m := len(rows)
	n := nV + m

	K := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < nV; i++ {
		for j := 0; j < nV; j++ {
			K.Set(i, j, H[i][j])
		}
		rhs.SetVec(i, -g[i])
	}
	for k, cr := range rows {
		for j := 0; j < nV; j++ {
			K.Set(nV+k, j, cr.coeffs[j])
			K.Set(j, nV+k, cr.coeffs[j])
		}
		rhs.SetVec(nV+k, cr.target)
	}

	sol, ok := denseSolve(K, rhs)
	if !ok {
		return nil, nil, nil, StatusCholeskyFailed
	}

	z = make([]float64, nV)
	lambdaVar = make([]float64, nV)
	lambdaRow = make([]float64, o.nC)
	for i := 0; i < nV; i++ {
		z[i] = sol.AtVec(i)
	}
	for k, cr := range rows {
		lam := sol.AtVec(nV + k)
		if cr.isRow {
			lambdaRow[cr.idx] = lam
		} else {
			lambdaVar[cr.idx] = lam
		}
	}
	return z, lambdaVar, lambdaRow, StatusSuccess
}

// denseSolve solves K x = b, returning false if K is numerically singular.
func denseSolve(K *mat.Dense, b *mat.VecDense) (x *mat.VecDense, ok bool) {
	n, _ := K.Dims()
	x = mat.NewVecDense(n, nil)
	var lu mat.LU
	lu.Factorize(K)
	if c := lu.Cond(); c > 1e14 {
		return nil, false
	}
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, false
	}
	return x, true
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func objective(H [][]float64, g []float64, z []float64) float64 {
	var quad float64
	for i := range z {
		var hz float64
		for j := range z {
			hz += H[i][j] * z[j]
		}
		quad += z[i] * hz
	}
	var lin float64
	for i := range z {
		lin += g[i] * z[i]
	}
	return 0.5*quad + lin
}
