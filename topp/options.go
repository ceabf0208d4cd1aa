// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topp implements the reachability-analysis solver: the backward
// sweep computing controllable sets, the forward sweep computing reachable
// sets, and the combined greedy forward pass that produces the
// time-optimal control sequence.
package topp

// Options holds the solver's configuration knobs.
type Options struct {
	Verbose       bool    // solver print level
	Eps           float64 // controllable-set margin applied by SolveControllableSets
	Reg           float64 // greedy-step slack regularizer
	SaveSolutions bool    // record full primal vector at each forward step
}

// DefaultOptions returns sane defaults a caller may override selectively.
func DefaultOptions() Options {
	return Options{
		Verbose:       false,
		Eps:           1e-14,
		Reg:           0,
		SaveSolutions: false,
	}
}

// NWSRConst bounds the number of working-set recalculations per QP solve.
const NWSRConst = 1000
