// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/gosl/chk"

// JointVelocity is a canonical constraint bounding the path state directly:
// x <= vmax^2, i.e. a=0, b=1, c=-vmax^2, one row per stage.
type JointVelocity struct {
	grid Grid
	vmax float64
}

// NewJointVelocity builds a JointVelocity constraint for the given grid and
// maximum path velocity vmax (> 0).
func NewJointVelocity(grid Grid, vmax float64) (*JointVelocity, error) {
	if vmax <= 0 {
		return nil, chk.Err("joint_velocity: vmax must be positive, got %v", vmax)
	}
	return &JointVelocity{grid: grid, vmax: vmax}, nil
}

func newJointVelocity(grid Grid, params map[string]float64) (Constraint, error) {
	return NewJointVelocity(grid, params["vmax"])
}

func (o *JointVelocity) Counts() Counts { return Counts{Nm: 1} }

func (o *JointVelocity) FillCanonical(a, b, c [][]float64) {
	vmax2 := o.vmax * o.vmax
	for i := 0; i <= o.grid.N; i++ {
		a[i][0] = 0
		b[i][0] = 1
		c[i][0] = -vmax2
	}
}

func (o *JointVelocity) FillEquality(abar, bbar, cbar [][]float64, D [][][]float64)   {}
func (o *JointVelocity) FillInequality(G [][][]float64, lG, hG [][]float64)           {}
func (o *JointVelocity) FillSlackBounds(l, h [][]float64)                             {}
