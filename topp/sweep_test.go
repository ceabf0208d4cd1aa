// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/toppra-go/constraint"
)

func newTestSolver(tst *testing.T, vmax, amax float64, n int) *Solver {
	s := make([]float64, n+1)
	for i := range s {
		s[i] = float64(i) / float64(n)
	}
	grid, err := constraint.NewGrid(s)
	if err != nil {
		tst.Fatalf("NewGrid failed: %v\n", err)
	}
	vel, err := constraint.NewJointVelocity(grid, vmax)
	if err != nil {
		tst.Fatalf("NewJointVelocity failed: %v\n", err)
	}
	acc, err := constraint.NewJointAcceleration(grid, amax)
	if err != nil {
		tst.Fatalf("NewJointAcceleration failed: %v\n", err)
	}
	solver, err := NewSolver(grid, []constraint.Constraint{vel, acc}, DefaultOptions())
	if err != nil {
		tst.Fatalf("NewSolver failed: %v\n", err)
	}
	return solver
}

// Test_solveTopp01 checks that a simple velocity+acceleration-bounded path
// with zero start and goal intervals produces a profile of the right length
// in which every x[i] respects 0 <= x[i] <= vmax^2.
func Test_solveTopp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveTopp01")

	solver := newTestSolver(tst, 2.0, 1.0, 10)
	if err := SetStartInterval(solver, 0); err != nil {
		tst.Errorf("SetStartInterval failed: %v\n", err)
	}
	if err := SetGoalInterval(solver, 0); err != nil {
		tst.Errorf("SetGoalInterval failed: %v\n", err)
	}

	profile, err := solver.SolveTopp()
	if err != nil {
		tst.Errorf("SolveTopp failed: %v\n", err)
		return
	}
	N := solver.M.Grid.N
	chk.IntAssert(len(profile.U), N)
	chk.IntAssert(len(profile.X), N+1)

	vmax2 := 2.0 * 2.0
	for i := 0; i <= N; i++ {
		if profile.X[i] < -1e-6 || profile.X[i] > vmax2+1e-6 {
			tst.Errorf("x[%d]=%v violates [0, %v]\n", i, profile.X[i], vmax2)
		}
	}
}

// Test_solveTopp02_determinism asserts that two independently-built solvers
// from identical input data produce bit-for-bit-tolerant equal profiles.
func Test_solveTopp02_determinism(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveTopp02_determinism")

	s1 := newTestSolver(tst, 1.5, 0.8, 6)
	s2 := newTestSolver(tst, 1.5, 0.8, 6)

	p1, err := s1.SolveTopp()
	if err != nil {
		tst.Errorf("SolveTopp (1) failed: %v\n", err)
		return
	}
	p2, err := s2.SolveTopp()
	if err != nil {
		tst.Errorf("SolveTopp (2) failed: %v\n", err)
		return
	}
	for i := range p1.U {
		chk.Scalar(tst, "u", 1e-10, p1.U[i], p2.U[i])
	}
	for i := range p1.X {
		chk.Scalar(tst, "x", 1e-10, p1.X[i], p2.X[i])
	}
}

// Test_solveTopp03_infeasibleGoal checks that an unreachable goal interval
// is reported as a typed InfeasibleError, not a panic.
func Test_solveTopp03_infeasibleGoal(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solveTopp03_infeasibleGoal")

	solver := newTestSolver(tst, 1.0, 1.0, 4)
	// a goal interval entirely above vmax^2 cannot be reached.
	if err := SetGoalInterval(solver, 50.0, 60.0); err != nil {
		tst.Errorf("SetGoalInterval failed: %v\n", err)
	}

	_, err := solver.SolveTopp()
	if err == nil {
		tst.Errorf("expected an infeasibility error\n")
		return
	}
	if _, ok := err.(*InfeasibleError); !ok {
		tst.Errorf("expected *InfeasibleError, got %T\n", err)
	}
}

// Test_intervals01 exercises the scalar/pair validation in SetStartInterval.
func Test_intervals01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("intervals01")

	solver := newTestSolver(tst, 1.0, 1.0, 2)

	if err := SetStartInterval(solver, -1.0); err == nil {
		tst.Errorf("expected error for a negative lower end-point\n")
	}
	if err := SetStartInterval(solver, 2.0, 1.0); err == nil {
		tst.Errorf("expected error for a non-increasing pair\n")
	}
	if err := SetStartInterval(solver, 1.0, 2.0, 3.0); err == nil {
		tst.Errorf("expected error for more than two values\n")
	}
	if err := SetStartInterval(solver, 0.5); err != nil {
		tst.Errorf("scalar interval should succeed: %v\n", err)
	}
	chk.Scalar(tst, "I0.Lo", 1e-15, solver.I0.Lo, 0.5)
	chk.Scalar(tst, "I0.Hi", 1e-15, solver.I0.Hi, 0.5)
}

// Test_reachableSets01 exercises the forward sweep directly: every L[i]
// must be marked valid and non-empty, and L[0] must equal the (projected)
// start interval [0, 0].
func Test_reachableSets01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reachableSets01")

	solver := newTestSolver(tst, 2.0, 1.0, 8)
	if err := SetStartInterval(solver, 0); err != nil {
		tst.Errorf("SetStartInterval failed: %v\n", err)
	}

	if ok := solver.SolveReachableSets(); !ok {
		tst.Errorf("SolveReachableSets failed\n")
		return
	}
	N := solver.M.Grid.N
	for i := 0; i <= N; i++ {
		if !solver.L[i].Valid {
			tst.Errorf("L[%d] not marked valid\n", i)
		}
		if solver.L[i].Lo > solver.L[i].Hi+1e-9 {
			tst.Errorf("L[%d] empty: lo=%v hi=%v\n", i, solver.L[i].Lo, solver.L[i].Hi)
		}
	}
	chk.Scalar(tst, "L[0].Lo", 1e-9, solver.L[0].Lo, 0)
	chk.Scalar(tst, "L[0].Hi", 1e-9, solver.L[0].Hi, 0)
}

// Test_greedyStepRegularization01 checks that Opts.Reg changes the greedy
// objective: with a ContactStability constraint contributing a slack
// variable, regularizing the slack block of H should move the optimal u
// away from the unregularized solution whenever the slack is not pinned
// to a bound by the other constraints.
func Test_greedyStepRegularization01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("greedyStepRegularization01")

	n := 6
	s := make([]float64, n+1)
	for i := range s {
		s[i] = float64(i) / float64(n)
	}
	grid, err := constraint.NewGrid(s)
	if err != nil {
		tst.Fatalf("NewGrid failed: %v\n", err)
	}
	vel, err := constraint.NewJointVelocity(grid, 2.0)
	if err != nil {
		tst.Fatalf("NewJointVelocity failed: %v\n", err)
	}
	acc, err := constraint.NewJointAcceleration(grid, 1.0)
	if err != nil {
		tst.Fatalf("NewJointAcceleration failed: %v\n", err)
	}
	contact, err := constraint.NewContactStability(grid, 1.0, 0.5, 0.1, 10.0)
	if err != nil {
		tst.Fatalf("NewContactStability failed: %v\n", err)
	}

	buildSolver := func(reg float64) *Solver {
		opts := DefaultOptions()
		opts.Reg = reg
		solver, err := NewSolver(grid, []constraint.Constraint{vel, acc, contact}, opts)
		if err != nil {
			tst.Fatalf("NewSolver failed: %v\n", err)
		}
		return solver
	}

	unregularized := buildSolver(0)
	regularized := buildSolver(1e3)

	u0, x0, ok := unregularized.GreedyStep(0, 0, 0, 4.0, true, unregularized.Opts.Reg)
	if !ok {
		tst.Errorf("GreedyStep (reg=0) failed\n")
		return
	}
	u1, x1, ok := regularized.GreedyStep(0, 0, 0, 4.0, true, regularized.Opts.Reg)
	if !ok {
		tst.Errorf("GreedyStep (reg=1e3) failed\n")
		return
	}

	if u0 == u1 && x0 == x1 {
		tst.Errorf("regularization had no effect on the greedy step: u=%v x=%v in both cases\n", u0, x0)
	}
}
