// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the JSON problem description consumed by the topp
// solver: the path grid, the constraint declarations, the endpoint
// intervals and the solver options.
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/toppra-go/constraint"
	"github.com/cpmech/toppra-go/topp"
)

// Endpoints decodes either a bare JSON number (both endpoints equal) or a
// two-element JSON array (lo, hi) for a start/goal velocity interval.
type Endpoints []float64

// UnmarshalJSON implements json.Unmarshaler.
func (e *Endpoints) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		*e = Endpoints{scalar}
		return nil
	}
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return chk.Err("endpoint must be a number or an array of numbers: %v", err)
	}
	*e = arr
	return nil
}

// ConstraintSpec names a constraint type and its numeric parameters, fed
// to constraint.New by Problem.Build.
type ConstraintSpec struct {
	Type   string             `json:"type"`
	Params map[string]float64 `json:"params"`
}

// OptionsSpec is the JSON-tagged mirror of topp.Options.
type OptionsSpec struct {
	Verbose       bool    `json:"verbose"`
	Eps           float64 `json:"eps"`
	Reg           float64 `json:"reg"`
	SaveSolutions bool    `json:"saveSolutions"`
}

// Problem is the JSON root document describing one path-parameterization
// run: the grid, its constraints, the endpoint velocity intervals and the
// solver options.
type Problem struct {
	Grid        []float64        `json:"grid"`
	Constraints []ConstraintSpec `json:"constraints"`
	I0          Endpoints        `json:"i0"`
	IN          Endpoints        `json:"iN"`
	Options     OptionsSpec      `json:"options"`
}

// ReadProblem reads and validates a JSON problem file. It returns a
// wrapped error on malformed input rather than panicking: this is
// caller-supplied data, not a programmer-error invariant violation.
func ReadProblem(path string) (*Problem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("ReadProblem: cannot read file %q: %v", path, err)
	}

	var p Problem
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, chk.Err("ReadProblem: cannot unmarshal file %q: %v", path, err)
	}

	if len(p.Grid) < 2 {
		return nil, chk.Err("ReadProblem: grid must have at least two points, got %d", len(p.Grid))
	}
	if len(p.I0) == 0 {
		p.I0 = Endpoints{0, 1e-4}
	}
	if len(p.IN) == 0 {
		p.IN = Endpoints{0, 1e-4}
	}
	return &p, nil
}

// Build constructs the constraint set and a ready-to-use topp.Solver from
// the validated problem data, in the order p.Constraints declares them.
func (p *Problem) Build() (*topp.Solver, error) {
	grid, err := constraint.NewGrid(p.Grid)
	if err != nil {
		return nil, chk.Err("Problem.Build: invalid grid: %v", err)
	}

	cons := make([]constraint.Constraint, len(p.Constraints))
	for i, spec := range p.Constraints {
		c, err := constraint.New(spec.Type, grid, spec.Params)
		if err != nil {
			return nil, chk.Err("Problem.Build: constraint #%d (%s): %v", i, spec.Type, err)
		}
		cons[i] = c
	}

	opts := topp.Options{
		Verbose:       p.Options.Verbose,
		Eps:           p.Options.Eps,
		Reg:           p.Options.Reg,
		SaveSolutions: p.Options.SaveSolutions,
	}
	if opts.Eps == 0 {
		opts.Eps = topp.DefaultOptions().Eps
	}

	solver, err := topp.NewSolver(grid, cons, opts)
	if err != nil {
		return nil, chk.Err("Problem.Build: %v", err)
	}

	if err := topp.SetStartInterval(solver, p.I0...); err != nil {
		return nil, chk.Err("Problem.Build: start interval: %v", err)
	}
	if err := topp.SetGoalInterval(solver, p.IN...); err != nil {
		return nil, chk.Err("Problem.Build: goal interval: %v", err)
	}

	if opts.Verbose {
		io.Pf("toppra: loaded problem: %d stages, %d constraints\n", grid.N, len(cons))
	}
	return solver, nil
}
