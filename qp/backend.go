// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package qp implements a thin, stateful adapter over a dense QP solver
// supporting cold init and hotstart against a fixed sparsity pattern. Two
// independent Backend instances ("up", "down") are maintained per
// topp.Solver so each can preserve its own active set between consecutive
// calls.
package qp

// Status reports the outcome of an Init/Hotstart call.
type Status int

const (
	// StatusSuccess indicates the QP was solved to optimality.
	StatusSuccess Status = iota
	// StatusInfeasible indicates the constraints admit no feasible point.
	StatusInfeasible
	// StatusMaxIter indicates the working-set iteration budget (nWSR) was
	// exhausted before optimality was reached.
	StatusMaxIter
	// StatusInitFailed indicates the cold start could not produce a
	// usable starting vertex (e.g. inconsistent box bounds).
	StatusInitFailed
	// StatusCholeskyFailed indicates the reduced KKT system was singular
	// to working precision.
	StatusCholeskyFailed
)

// String implements fmt.Stringer for structured log messages.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInfeasible:
		return "infeasible"
	case StatusMaxIter:
		return "max_iter_exceeded"
	case StatusInitFailed:
		return "init_failed"
	case StatusCholeskyFailed:
		return "cholesky_failed"
	default:
		return "unknown"
	}
}

// Ok reports whether the status represents a successful solve.
func (s Status) Ok() bool { return s == StatusSuccess }

// Backend is a stateful dense QP solver over
//
//	min  0.5 z^T H z + g^T z
//	s.t. lA <= A z <= hA,  l <= z <= h
//
// with a fixed (nV, nC) sparsity structure. Failure is non-fatal at this
// layer: Init/Hotstart return a Status and it is the caller's
// responsibility to decide how to react.
type Backend interface {
	// Init cold-starts the solver, discarding any prior working set.
	Init(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64, maxIter int) Status

	// Hotstart re-solves reusing the current working set. Cheap when the
	// successive problem differs only slightly from the previous one.
	Hotstart(H [][]float64, g []float64, A [][]float64, l, h, lA, hA []float64, maxIter int) Status

	// GetPrimal returns the last primal solution (length nV).
	GetPrimal() []float64

	// GetObjectiveValue returns the last objective value 0.5 z^T H z + g^T z.
	GetObjectiveValue() float64
}
