// SPDX-License-Identifier: MIT

package view

import "github.com/katalvlaran/tabview/errs"

// Error classes returned by this package; match them with errors.Is.
var (
	ErrType       = errs.ErrType
	ErrOutOfRange = errs.ErrOutOfRange
	ErrShape      = errs.ErrShape
	ErrValue      = errs.ErrValue
)
