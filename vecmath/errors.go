// SPDX-License-Identifier: MIT

package vecmath

import "github.com/katalvlaran/tabview/errs"

var (
	// ErrType indicates a string (or otherwise non-numeric) operand.
	ErrType = errs.ErrType

	// ErrArity indicates too few arguments for an N-ary function.
	ErrArity = errs.ErrArity
)
