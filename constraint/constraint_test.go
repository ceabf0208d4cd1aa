// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01")

	g, err := NewGrid([]float64{0, 0.5, 1.0, 2.0})
	if err != nil {
		tst.Errorf("NewGrid failed: %v\n", err)
		return
	}
	chk.IntAssert(g.N, 3)
	chk.Scalar(tst, "Ds[0]", 1e-15, g.Ds[0], 0.5)
	chk.Scalar(tst, "Ds[1]", 1e-15, g.Ds[1], 0.5)
	chk.Scalar(tst, "Ds[2]", 1e-15, g.Ds[2], 1.0)

	_, err = NewGrid([]float64{0, 1, 0.5})
	if err == nil {
		tst.Errorf("NewGrid should have failed on a non-monotone grid\n")
	}

	_, err = NewGrid([]float64{0})
	if err == nil {
		tst.Errorf("NewGrid should have failed on a too-short grid\n")
	}
}

func Test_jointVelocity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jointVelocity01")

	g, _ := NewGrid([]float64{0, 1, 2})
	c, err := NewJointVelocity(g, 2.0)
	if err != nil {
		tst.Errorf("NewJointVelocity failed: %v\n", err)
		return
	}
	cnt := c.Counts()
	chk.IntAssert(cnt.Nm, 1)
	chk.IntAssert(cnt.Neq, 0)
	chk.IntAssert(cnt.Niq, 0)
	chk.IntAssert(cnt.Nv, 0)

	a := make([][]float64, g.N+1)
	b := make([][]float64, g.N+1)
	cc := make([][]float64, g.N+1)
	for i := range a {
		a[i] = make([]float64, 1)
		b[i] = make([]float64, 1)
		cc[i] = make([]float64, 1)
	}
	c.FillCanonical(a, b, cc)
	for i := 0; i <= g.N; i++ {
		chk.Scalar(tst, "a", 1e-15, a[i][0], 0)
		chk.Scalar(tst, "b", 1e-15, b[i][0], 1)
		chk.Scalar(tst, "c", 1e-15, cc[i][0], -4.0)
	}

	if _, err := NewJointVelocity(g, 0); err == nil {
		tst.Errorf("NewJointVelocity should reject vmax<=0\n")
	}
}

func Test_passthrough01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("passthrough01")

	c, err := New("passthrough", Grid{}, nil)
	if err != nil {
		tst.Errorf("New(passthrough) failed: %v\n", err)
		return
	}
	cnt := c.Counts()
	chk.IntAssert(cnt.Nm, 0)
	chk.IntAssert(cnt.Neq, 0)
	chk.IntAssert(cnt.Niq, 0)
	chk.IntAssert(cnt.Nv, 0)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	g, _ := NewGrid([]float64{0, 1})
	_, err := New("joint_velocity", g, map[string]float64{"vmax": 3.0})
	if err != nil {
		tst.Errorf("New(joint_velocity) failed: %v\n", err)
	}

	_, err = New("does-not-exist", g, nil)
	if err == nil {
		tst.Errorf("New should fail for an unregistered type\n")
	}
}
