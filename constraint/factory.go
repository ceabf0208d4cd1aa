// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/gosl/chk"

// AllocatorType defines a function that allocates a Constraint from a grid
// and named parameters (e.g. read from an inp.Problem JSON file).
type AllocatorType func(grid Grid, params map[string]float64) (Constraint, error)

// allocators holds all registered constraint allocators, keyed by type name
var allocators = make(map[string]AllocatorType)

// Register sets a new callback function to allocate constraints of a given
// type name. Registering the same name twice is a programmer error, not a
// runtime one.
func Register(typeName string, fcn AllocatorType) {
	if _, ok := allocators[typeName]; ok {
		chk.Panic("cannot register constraint allocator for %q because it is registered already", typeName)
	}
	allocators[typeName] = fcn
}

// New returns a new Constraint from the factory.
func New(typeName string, grid Grid, params map[string]float64) (c Constraint, err error) {
	fcn, ok := allocators[typeName]
	if !ok {
		return nil, chk.Err("cannot get allocator for constraint type %q", typeName)
	}
	c, err = fcn(grid, params)
	if err != nil {
		return nil, chk.Err("constraint %q: %v", typeName, err)
	}
	if c == nil {
		return nil, chk.Err("constraint %q allocator returned nil", typeName)
	}
	return c, nil
}

func init() {
	Register("joint_velocity", newJointVelocity)
	Register("joint_acceleration", newJointAcceleration)
	Register("contact_stability", newContactStability)
	Register("passthrough", newPassthrough)
}
