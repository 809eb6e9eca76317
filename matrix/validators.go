// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Keep the checks New, Format and Set share in one place.
//   - Return tagged errors wrapping the package classes so call sites can
//     add their own context uniformly.
//
// Note:
//   - Validators never touch matrix elements; they only ask the host for
//     dimensions.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/host"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFormat ensures f is a legal display format of a numeric class.
// Returns the parsed format on success.
func ValidateFormat(f string) (format.Spec, error) {
	spec, err := format.Parse(f)
	if err != nil {
		return format.Spec{}, validatorErrorf("ValidateFormat", err)
	}
	if spec.Class == format.ClassString {
		return format.Spec{}, validatorErrorf("ValidateFormat", fmt.Errorf("%q is a string format: %w", f, ErrValue))
	}

	return spec, nil
}

// ValidateDims asks h for the dimensions of name. An unknown matrix, or
// one the host reports with a zero dimension, is ErrNotFound.
func ValidateDims(h host.Matrices, name string) (rows, cols int, err error) {
	rows, cols = h.MatrixRows(name), h.MatrixCols(name)
	if rows <= 0 || cols <= 0 {
		return 0, 0, validatorErrorf("ValidateDims", fmt.Errorf("cannot find matrix %q: %w", name, ErrNotFound))
	}

	return rows, cols, nil
}
