// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/toppra-go/assembly"
	"github.com/cpmech/toppra-go/qp"
)

// ResetOperationalRows clears rows [0, Nop) of A, lA, hA and zeroes H, g.
// Must be called between primitives of different kinds.
func (o *Solver) ResetOperationalRows() { o.M.ResetOperationalRows() }

// OneStep computes the one-step set at stage i: the range of x from which
// one admissible control u drives the next state into [xmin, xmax].
func (o *Solver) OneStep(i int, xmin, xmax float64, init bool) (lo, hi float64, ok bool) {
	o.ResetOperationalRows()
	ds := o.M.Grid.Ds[i]
	o.M.A[i][0][1] = 1
	o.M.A[i][0][0] = 2 * ds
	o.M.LA[i][0] = xmin
	o.M.HA[i][0] = xmax

	H, A, l, h, lA, hA := o.M.H, o.M.A[i], o.M.L[i], o.M.Hh[i], o.M.LA[i], o.M.HA[i]

	o.M.G[1] = -1
	var upStatus, downStatus qp.Status
	if init {
		upStatus = o.Up.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		upStatus = o.Up.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	o.M.G[1] = 1
	if init {
		downStatus = o.Dwn.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		downStatus = o.Dwn.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	if !upStatus.Ok() || !downStatus.Ok() {
		o.logWarn("OneStep failed: i=%d xmin=%v xmax=%v init=%v up=%v down=%v", i, xmin, xmax, init, upStatus, downStatus)
		return 0, 0, false
	}
	hi = o.Up.GetPrimal()[1]
	lo = o.Dwn.GetPrimal()[1]
	return lo, hi, true
}

// Reach computes the range of x + 2*Ds[i]*u over admissible (u, x, v) with
// x restricted to [xmin, xmax]. Unlike the other primitives, the result is
// read from the objective values, not the primal vectors.
func (o *Solver) Reach(i int, xmin, xmax float64, init bool) (lo, hi float64, ok bool) {
	ds := o.M.Grid.Ds[i]
	o.M.A[i][0][1] = 1
	o.M.A[i][0][0] = 0
	o.M.LA[i][0] = xmin
	o.M.HA[i][0] = xmax

	H, A, l, h, lA, hA := o.M.H, o.M.A[i], o.M.L[i], o.M.Hh[i], o.M.LA[i], o.M.HA[i]

	o.M.G[0] = -2 * ds
	o.M.G[1] = -1
	var upStatus, downStatus qp.Status
	if init {
		upStatus = o.Up.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		upStatus = o.Up.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	o.M.G[0] = 2 * ds
	o.M.G[1] = 1
	if init {
		downStatus = o.Dwn.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		downStatus = o.Dwn.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	if !upStatus.Ok() || !downStatus.Ok() {
		o.logWarn("Reach failed: i=%d xmin=%v xmax=%v init=%v up=%v down=%v", i, xmin, xmax, init, upStatus, downStatus)
		return 0, 0, false
	}
	hi = -o.Up.GetObjectiveValue()
	lo = o.Dwn.GetObjectiveValue()
	return lo, hi, true
}

// ProjXAdmissible intersects [xmin, xmax] with the set of feasible x at
// stage i.
func (o *Solver) ProjXAdmissible(i int, xmin, xmax float64, init bool) (lo, hi float64, ok bool) {
	o.M.A[i][0][1] = 1
	o.M.A[i][0][0] = 0
	o.M.LA[i][0] = xmin
	o.M.HA[i][0] = xmax

	H, A, l, h, lA, hA := o.M.H, o.M.A[i], o.M.L[i], o.M.Hh[i], o.M.LA[i], o.M.HA[i]

	o.M.G[0] = 0
	o.M.G[1] = -1
	var upStatus, downStatus qp.Status
	if init {
		upStatus = o.Up.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		upStatus = o.Up.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	o.M.G[0] = 0
	o.M.G[1] = 1
	if init {
		downStatus = o.Dwn.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		downStatus = o.Dwn.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}

	if !upStatus.Ok() || !downStatus.Ok() {
		o.logWarn("ProjXAdmissible failed: i=%d xmin=%v xmax=%v init=%v up=%v down=%v", i, xmin, xmax, init, upStatus, downStatus)
		return 0, 0, false
	}
	hi = o.Up.GetPrimal()[1]
	lo = o.Dwn.GetPrimal()[1]
	if lo > hi+assembly.SuperTiny {
		o.logWarn("ProjXAdmissible postcondition violated: i=%d lo=%v hi=%v", i, lo, hi)
	}
	if lo > hi {
		hi = lo
	}
	return lo, hi, true
}

// greedyObjective sets g[0] = sign (use -1 for max-u, +1 for min-u) and
// regularizes the slack block of H by reg*I.
func (o *Solver) greedyObjective(sign, reg float64) {
	o.M.G[0] = sign
	if o.M.Nv != 0 {
		for v := 2; v < o.M.NV; v++ {
			o.M.H[v][v] += reg
		}
	}
}

// GreedyStep picks the maximum admissible u at stage i with the current
// state pinned to x and the next state constrained to [xmin, xmax].
func (o *Solver) GreedyStep(i int, x, xmin, xmax float64, init bool, reg float64) (u, xNext float64, ok bool) {
	o.ResetOperationalRows()
	ds := o.M.Grid.Ds[i]

	o.M.A[i][0][1] = 1
	o.M.A[i][0][0] = 0
	o.M.LA[i][0] = x
	o.M.HA[i][0] = x

	o.M.A[i][1][1] = 1
	o.M.A[i][1][0] = 2 * ds
	o.M.LA[i][1] = xmin
	o.M.HA[i][1] = xmax

	o.greedyObjective(-1, reg)

	H, A, l, h, lA, hA := o.M.H, o.M.A[i], o.M.L[i], o.M.Hh[i], o.M.LA[i], o.M.HA[i]
	var status qp.Status
	if init {
		status = o.Up.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		status = o.Up.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}
	if !status.Ok() {
		o.logWarn("GreedyStep non-optimal at i=%d: status=%v", i, status)
		return 0, 0, false
	}
	u = o.Up.GetPrimal()[0]
	xNext = x + 2*ds*u
	if xNext < 0 {
		if xNext+assembly.SuperTiny < 0 {
			chk.Panic("GreedyStep: gross negative state at i=%d: %v", i, xNext)
		}
		xNext += assembly.SuperTiny
	}
	return u, xNext, true
}

// LeastGreedyStep finds the minimum admissible u at stage i.
func (o *Solver) LeastGreedyStep(i int, x, xmin, xmax float64, init bool, reg float64) (u, xNext float64, ok bool) {
	o.ResetOperationalRows()
	ds := o.M.Grid.Ds[i]

	o.M.A[i][0][1] = 1
	o.M.A[i][0][0] = 0
	o.M.LA[i][0] = x
	o.M.HA[i][0] = x

	o.M.A[i][1][1] = 1
	o.M.A[i][1][0] = 2 * ds
	o.M.LA[i][1] = xmin
	o.M.HA[i][1] = xmax

	o.greedyObjective(1, reg)

	H, A, l, h, lA, hA := o.M.H, o.M.A[i], o.M.L[i], o.M.Hh[i], o.M.LA[i], o.M.HA[i]
	var status qp.Status
	if init {
		status = o.Up.Init(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	} else {
		status = o.Up.Hotstart(H, o.M.G, A, l, h, lA, hA, NWSRConst)
	}
	if !status.Ok() {
		o.logWarn("LeastGreedyStep non-optimal at i=%d: status=%v", i, status)
		return 0, 0, false
	}
	u = o.Up.GetPrimal()[0]
	xNext = x + 2*ds*u
	if xNext < 0 {
		if xNext+assembly.SuperTiny < 0 {
			chk.Panic("LeastGreedyStep: gross negative state at i=%d: %v", i, xNext)
		}
		xNext += assembly.SuperTiny
	}
	return u, xNext, true
}
