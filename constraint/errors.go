// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import "github.com/cpmech/gosl/chk"

// errGrid builds a validation error for malformed grids; never panics since
// the grid comes from caller-supplied input.
func errGrid(msg string, args ...interface{}) error {
	return chk.Err(msg, args...)
}
