// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/toppra-go/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\ntoppra-go -- Time-Optimal Path Parameterization via Reachability Analysis\n\n")

	// problem filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a problem filename. Ex.: path.json")
	}

	// read and build
	prob, err := inp.ReadProblem(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	solver, err := prob.Build()
	if err != nil {
		chk.Panic("%v", err)
	}

	// solve
	profile, err := solver.SolveTopp()
	if err != nil {
		chk.Panic("%v", err)
	}

	// report
	io.Pf("\nu = %v\n", profile.U)
	io.Pf("x = %v\n", profile.X)
}
