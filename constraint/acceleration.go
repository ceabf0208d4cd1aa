// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/gosl/chk"

// JointAcceleration is a canonical constraint bounding the path control:
// -amax <= u <= amax, expressed as two canonical rows
//
//	u - amax <= 0      (a=1, b=0, c=-amax)
//	-u - amax <= 0     (a=-1, b=0, c=-amax)
type JointAcceleration struct {
	grid Grid
	amax float64
}

// NewJointAcceleration builds a JointAcceleration constraint for amax > 0.
func NewJointAcceleration(grid Grid, amax float64) (*JointAcceleration, error) {
	if amax <= 0 {
		return nil, chk.Err("joint_acceleration: amax must be positive, got %v", amax)
	}
	return &JointAcceleration{grid: grid, amax: amax}, nil
}

func newJointAcceleration(grid Grid, params map[string]float64) (Constraint, error) {
	return NewJointAcceleration(grid, params["amax"])
}

func (o *JointAcceleration) Counts() Counts { return Counts{Nm: 2} }

func (o *JointAcceleration) FillCanonical(a, b, c [][]float64) {
	for i := 0; i <= o.grid.N; i++ {
		a[i][0], b[i][0], c[i][0] = 1, 0, -o.amax
		a[i][1], b[i][1], c[i][1] = -1, 0, -o.amax
	}
}

func (o *JointAcceleration) FillEquality(abar, bbar, cbar [][]float64, D [][][]float64) {}
func (o *JointAcceleration) FillInequality(G [][][]float64, lG, hG [][]float64)         {}
func (o *JointAcceleration) FillSlackBounds(l, h [][]float64)                           {}
