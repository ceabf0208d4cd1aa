// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topp

import "github.com/cpmech/gosl/io"

// InfeasibleError names which set was found empty when SolveTopp cannot
// produce a time-optimal profile.
type InfeasibleError struct {
	Reason string // e.g. "K(0) is empty", "start interval does not intersect K(0)"
}

func (e *InfeasibleError) Error() string {
	return io.Sf("toppra: unable to parameterize path: %s", e.Reason)
}
