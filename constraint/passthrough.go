// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

// Passthrough is the nm=neq=niq=nv=0 no-op constraint: useful as a
// placeholder, or to verify assembly degrades gracefully when a
// constraint contributes nothing.
type Passthrough struct{}

func newPassthrough(grid Grid, params map[string]float64) (Constraint, error) {
	return &Passthrough{}, nil
}

func (o *Passthrough) Counts() Counts                                            { return Counts{} }
func (o *Passthrough) FillCanonical(a, b, c [][]float64)                          {}
func (o *Passthrough) FillEquality(abar, bbar, cbar [][]float64, D [][][]float64) {}
func (o *Passthrough) FillInequality(G [][][]float64, lG, hG [][]float64)         {}
func (o *Passthrough) FillSlackBounds(l, h [][]float64)                          {}
