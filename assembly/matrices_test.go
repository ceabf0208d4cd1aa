// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/toppra-go/constraint"
)

func Test_build01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build01")

	grid, _ := constraint.NewGrid([]float64{0, 1, 2})
	vel, _ := constraint.NewJointVelocity(grid, 2.0)
	acc, _ := constraint.NewJointAcceleration(grid, 1.0)

	m, err := Build(grid, []constraint.Constraint{vel, acc})
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}

	chk.IntAssert(m.Nm, 3) // 1 from velocity + 2 from acceleration
	chk.IntAssert(m.Neq, 0)
	chk.IntAssert(m.Niq, 0)
	chk.IntAssert(m.Nv, 0)
	chk.IntAssert(m.NV, 2)
	chk.IntAssert(m.NC, Nop+3)

	for i := 0; i <= grid.N; i++ {
		chk.Scalar(tst, "Lo(u)", 1e-15, m.L[i][0], -MaxU)
		chk.Scalar(tst, "Hi(u)", 1e-15, m.Hh[i][0], MaxU)
		chk.Scalar(tst, "Lo(x)", 1e-15, m.L[i][1], 0)
		chk.Scalar(tst, "Hi(x)", 1e-15, m.Hh[i][1], MaxX)

		// the velocity row: a=0, b=1, c=-4 => lA=-Infty, hA=4
		row := Nop
		chk.Scalar(tst, "A[row][0]", 1e-15, m.A[i][row][0], 0)
		chk.Scalar(tst, "A[row][1]", 1e-15, m.A[i][row][1], 1)
		chk.Scalar(tst, "hA[row]", 1e-15, m.HA[i][row], 4.0)
	}
}

func Test_build02_contactStability(tst *testing.T) {

	//verbose()
	chk.PrintTitle("build02_contactStability")

	grid, _ := constraint.NewGrid([]float64{0, 1})
	cs, _ := constraint.NewContactStability(grid, 1.0, 0.5, 0.0, 3.0)

	m, err := Build(grid, []constraint.Constraint{cs})
	if err != nil {
		tst.Errorf("Build failed: %v\n", err)
		return
	}
	chk.IntAssert(m.Neq, 1)
	chk.IntAssert(m.Niq, 1)
	chk.IntAssert(m.Nv, 1)
	chk.IntAssert(m.NV, 3) // u, x, v

	for i := 0; i <= grid.N; i++ {
		chk.Scalar(tst, "Lo(v)", 1e-15, m.L[i][2], 0)
		chk.Scalar(tst, "Hi(v)", 1e-15, m.Hh[i][2], 3.0)
	}
}

func Test_resetOperationalRows01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("resetOperationalRows01")

	grid, _ := constraint.NewGrid([]float64{0, 1})
	vel, _ := constraint.NewJointVelocity(grid, 2.0)
	m, _ := Build(grid, []constraint.Constraint{vel})

	for i := range m.A {
		for r := 0; r < Nop; r++ {
			m.A[i][r][0] = 99
		}
	}
	m.H[0][0] = 5
	m.G[0] = 7

	m.ResetOperationalRows()

	for i := range m.A {
		for r := 0; r < Nop; r++ {
			chk.Scalar(tst, "A reset", 1e-15, m.A[i][r][0], 0)
		}
	}
	chk.Scalar(tst, "H reset", 1e-15, m.H[0][0], 0)
	chk.Scalar(tst, "G reset", 1e-15, m.G[0], 0)
}
