// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/gosl/chk"

// ContactStability is a non-canonical constraint coupling (u, x) to a
// single slack variable v representing a linearized contact-stability
// margin (e.g. how far the required normal contact force sits from its
// lower bound). It contributes one equality row, one inequality row on the
// slack, and a hard bound on the slack itself, exercising the full
// non-canonical path (abar, bbar, cbar, D, G, lG, hG, l, h).
//
// The margin is modeled as the equality
//
//	massCoef*u + dampCoef*x + offset = -v
//
// so that v == -(massCoef*u + dampCoef*x + offset), bounded by
// 0 <= v <= vmargin_max.
type ContactStability struct {
	grid                       Grid
	massCoef, dampCoef, offset float64
	vmarginMax                 float64
}

// NewContactStability builds a ContactStability constraint. vmarginMax must
// be positive.
func NewContactStability(grid Grid, massCoef, dampCoef, offset, vmarginMax float64) (*ContactStability, error) {
	if vmarginMax <= 0 {
		return nil, chk.Err("contact_stability: vmarginMax must be positive, got %v", vmarginMax)
	}
	return &ContactStability{grid: grid, massCoef: massCoef, dampCoef: dampCoef, offset: offset, vmarginMax: vmarginMax}, nil
}

func newContactStability(grid Grid, params map[string]float64) (Constraint, error) {
	return NewContactStability(grid, params["mass_coef"], params["damp_coef"], params["offset"], params["vmargin_max"])
}

func (o *ContactStability) Counts() Counts { return Counts{Neq: 1, Niq: 1, Nv: 1} }

func (o *ContactStability) FillCanonical(a, b, c [][]float64) {}

func (o *ContactStability) FillEquality(abar, bbar, cbar [][]float64, D [][][]float64) {
	for i := 0; i <= o.grid.N; i++ {
		abar[i][0] = o.massCoef
		bbar[i][0] = o.dampCoef
		cbar[i][0] = o.offset
		D[i][0][0] = -1
	}
}

func (o *ContactStability) FillInequality(G [][][]float64, lG, hG [][]float64) {
	for i := 0; i <= o.grid.N; i++ {
		G[i][0][0] = 1
		lG[i][0] = 0
		hG[i][0] = o.vmarginMax
	}
}

func (o *ContactStability) FillSlackBounds(l, h [][]float64) {
	for i := 0; i <= o.grid.N; i++ {
		l[i][0] = 0
		h[i][0] = o.vmarginMax
	}
}
