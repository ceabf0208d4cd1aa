// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topp

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// SolveControllableSets runs the backward sweep computing the controllable
// sets K[0..N]. Returns false, logging a warning, at the
// first infeasible stage.
func (o *Solver) SolveControllableSets() bool {
	o.ResetOperationalRows()
	N := o.M.Grid.N

	lo, hi, ok := o.ProjXAdmissible(N, o.IN.Lo, o.IN.Hi, true)
	if !ok {
		o.logWarn("SolveControllableSets: failed to project IN to feasibility")
		return false
	}
	o.K[N] = setEntry{Interval{lo, hi}, true}

	init := true
	for i := N - 1; i >= 0; i-- {
		lo, hi, ok := o.OneStep(i, o.K[i+1].Lo, o.K[i+1].Hi, init)
		init = false
		if !ok {
			o.logWarn("SolveControllableSets: K(%d) infeasible", i)
			return false
		}
		o.K[i] = setEntry{Interval{math.Max(lo, 0), hi - o.Opts.Eps}, true}
	}
	return true
}

// SolveReachableSets runs the forward sweep computing the reachable sets
// L[0..N].
func (o *Solver) SolveReachableSets() bool {
	o.ResetOperationalRows()
	N := o.M.Grid.N

	lo, hi, ok := o.ProjXAdmissible(0, o.I0.Lo, o.I0.Hi, true)
	if !ok {
		o.logWarn("SolveReachableSets: failed to project I0 to feasibility")
		return false
	}
	o.L[0] = setEntry{Interval{lo, hi}, true}

	for i := 0; i < N; i++ {
		init := i <= 1
		loNx, hiNx, ok := o.Reach(i, o.L[i].Lo, o.L[i].Hi, init)
		if !ok {
			o.logWarn("SolveReachableSets: forward propagation from L(%d) failed", i)
			return false
		}
		loPr, hiPr, ok := o.ProjXAdmissible(i+1, loNx, hiNx, init)
		if !ok {
			o.logWarn("SolveReachableSets: projection for L(%d) failed", i+1)
			return false
		}
		o.L[i+1] = setEntry{Interval{loPr, hiPr}, true}
	}
	return true
}

// Profile is the time-optimal path-parameterization output:
// path accelerations U[0..N-1] and squared path velocities X[0..N].
type Profile struct {
	U []float64
	X []float64

	// FullPrimals[i] is the combined decision vector (u, x, v...) at
	// forward step i, recorded only when Options.SaveSolutions is set.
	FullPrimals [][]float64
}

// SolveTopp composes the backward controllability sweep with the forward
// greedy pass to produce the time-optimal profile. Returns
// an *InfeasibleError when the path cannot be parameterized.
func (o *Solver) SolveTopp() (*Profile, error) {
	N := o.M.Grid.N

	var prof Profile
	if o.Opts.SaveSolutions {
		prof.FullPrimals = make([][]float64, N)
	}

	controllable := o.SolveControllableSets()
	infeasible := o.K[0].Hi < o.I0.Lo || o.K[0].Lo > o.I0.Hi
	if !controllable {
		return nil, &InfeasibleError{Reason: "K(0) is empty"}
	}
	if infeasible {
		return nil, &InfeasibleError{Reason: "start interval does not intersect K(0)"}
	}

	prof.U = make([]float64, N)
	prof.X = make([]float64, N+1)
	prof.X[0] = math.Min(o.K[0].Hi, o.I0.Hi)

	// warm-start the greedy pass; its result is discarded.
	if _, _, ok := o.GreedyStep(0, prof.X[0], o.K[1].Lo, o.K[1].Hi, true, o.Opts.Reg); !ok {
		return nil, &InfeasibleError{Reason: "greedy warm-start at stage 0 failed"}
	}

	for i := 0; i < N; i++ {
		u, x, ok := o.GreedyStep(i, prof.X[i], o.K[i+1].Lo, o.K[i+1].Hi, false, o.Opts.Reg)
		if !ok {
			return nil, &InfeasibleError{Reason: io.Sf("greedy step failed at stage %d", i)}
		}
		prof.U[i] = u
		prof.X[i+1] = x
		if o.Opts.SaveSolutions {
			full := make([]float64, o.M.NV)
			copy(full, o.Up.GetPrimal())
			prof.FullPrimals[i] = full
		}
	}
	return &prof, nil
}
