// SPDX-License-Identifier: MIT
// Package matrix: error classes.
// Every class aliases the shared errs taxonomy so callers can match with
// errors.Is against either package. Messages produced here are prefixed
// with "matrix:" through the context tags of each operation.

package matrix

import "github.com/katalvlaran/tabview/errs"

var (
	// ErrNotFound is returned when the host knows no matrix by that name or
	// reports a zero dimension for it.
	ErrNotFound = errs.ErrNotFound

	// ErrOutOfRange indicates a row or column position outside the view.
	ErrOutOfRange = errs.ErrOutOfRange

	// ErrShape reports a value whose rows or columns do not match the
	// selected block.
	ErrShape = errs.ErrShape

	// ErrType reports a string written into a matrix.
	ErrType = errs.ErrType

	// ErrValue reports a malformed or non-numeric display format.
	ErrValue = errs.ErrValue
)
