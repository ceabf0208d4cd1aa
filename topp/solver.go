// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/toppra-go/assembly"
	"github.com/cpmech/toppra-go/constraint"
	"github.com/cpmech/toppra-go/qp"
)

// Interval is an ordered [lo, hi] pair of squared path velocities.
type Interval struct{ Lo, Hi float64 }

// Solver holds all data needed to run the reachability-analysis sweeps:
// the assembled constraint matrices, the up/down QP backend pair, the
// endpoint intervals, and the computed controllable/reachable sets. A
// Solver is single-threaded and not reentrant; allocate one instance per
// path to parameterize.
type Solver struct {
	M   *assembly.Matrices
	Up  qp.Backend
	Dwn qp.Backend

	Opts Options

	I0, IN Interval

	// K[i], L[i]: empty (Valid=false) until the corresponding sweep has
	// run and succeeded at stage i.
	K, L []setEntry

	// not read or written by the primitives, which pass NWSRConst to
	// every QP solve
	nWSRUp, nWSRDown int
}

type setEntry struct {
	Interval
	Valid bool
}

// defaultInterval is the solver's default I0 = IN = [0, 1e-4] before a
// caller narrows either endpoint.
func defaultInterval() Interval { return Interval{0, 1e-4} }

// NewSolver builds a Solver for the given grid and constraint set,
// allocating the assembly matrices and QP backends.
func NewSolver(grid constraint.Grid, constraints []constraint.Constraint, opts Options) (*Solver, error) {
	m, err := assembly.Build(grid, constraints)
	if err != nil {
		return nil, chk.Err("topp: cannot assemble matrices: %v", err)
	}
	o := &Solver{
		M:    m,
		Up:   qp.NewActiveSetBackend(m.NV, m.NC),
		Dwn:  qp.NewActiveSetBackend(m.NV, m.NC),
		Opts: opts,
		I0:   defaultInterval(),
		IN:   defaultInterval(),
		K:    make([]setEntry, grid.N+1),
		L:    make([]setEntry, grid.N+1),
	}
	return o, nil
}

// SetStartInterval sets the start squared-velocity interval I0. Accepts a
// scalar (both endpoints equal) or an ordered pair.
func SetStartInterval(o *Solver, v ...float64) error {
	iv, err := toInterval(v)
	if err != nil {
		return chk.Err("SetStartInterval: %v", err)
	}
	o.I0 = iv
	return nil
}

// SetGoalInterval sets the goal squared-velocity interval IN.
func SetGoalInterval(o *Solver, v ...float64) error {
	iv, err := toInterval(v)
	if err != nil {
		return chk.Err("SetGoalInterval: %v", err)
	}
	o.IN = iv
	return nil
}

func toInterval(v []float64) (Interval, error) {
	switch len(v) {
	case 1:
		if v[0] < 0 {
			return Interval{}, chk.Err("negative lower end-point: %v", v[0])
		}
		return Interval{v[0], v[0]}, nil
	case 2:
		if v[0] < 0 {
			return Interval{}, chk.Err("negative lower end-point: %v", v[0])
		}
		if v[1] < v[0] {
			return Interval{}, chk.Err("non-increasing end-points: [%v, %v]", v[0], v[1])
		}
		return Interval{v[0], v[1]}, nil
	default:
		return Interval{}, chk.Err("expected 1 or 2 values, got %d", len(v))
	}
}

// logWarn writes a structured warning through gosl/io when verbose
// diagnostics are enabled.
func (o *Solver) logWarn(format string, args ...interface{}) {
	if o.Opts.Verbose {
		io.PfRed("toppra: "+format+"\n", args...)
	}
}

func (o *Solver) logInfo(format string, args ...interface{}) {
	if o.Opts.Verbose {
		io.Pf("toppra: "+format+"\n", args...)
	}
}
