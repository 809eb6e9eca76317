// SPDX-License-Identifier: MIT

package value

import "github.com/katalvlaran/tabview/errs"

// Package-level aliases of the shared error classes. Callers may test against
// either name with errors.Is.
var (
	// ErrDomain is returned by SentinelOf for codes outside 0..26.
	ErrDomain = errs.ErrDomain

	// ErrType is returned when an operand kind does not support an operation
	// (string arithmetic other than concatenation, unsupported Go types in From).
	ErrType = errs.ErrType

	// ErrValue is returned by ParseSentinel for names that are not ".", ".a".."z".
	ErrValue = errs.ErrValue
)
