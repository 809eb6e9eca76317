// SPDX-License-Identifier: MIT
// Package errs: error classes shared by every tabview package.
//
// Purpose:
//   - Give callers one stable taxonomy to classify failures with errors.Is,
//     regardless of which package detected the problem.
//   - Package-level sentinels elsewhere either alias these classes or wrap
//     them with %w, so errors.Is(err, errs.ErrShape) holds for every shape
//     failure in the module.
//
// ERROR PRIORITY (enforced by the views, tested there):
// type -> bounds -> shape -> setter errors. Every check runs before the first
// host write, so a failed multi-cell write leaves the store untouched.

package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrType reports a wrong argument kind: non-integer index element,
	// string written into a numeric column, non-numeric matrix value.
	ErrType = errors.New("tabview: type error")

	// ErrOutOfRange reports a position or coordinate outside the valid range
	// of an index list or of the backing store.
	ErrOutOfRange = errors.New("tabview: index out of range")

	// ErrShape reports a rows×cols mismatch between a selection and the
	// value being written into it.
	ErrShape = errors.New("tabview: shape mismatch")

	// ErrValue reports a well-typed but unacceptable value: malformed display
	// format, format/column type mismatch, ambiguous or malformed name,
	// zero slice step.
	ErrValue = errors.New("tabview: invalid value")

	// ErrDomain reports a request for a sentinel code outside 0..26.
	// Numeric functions never return it; they degrade to missing instead.
	ErrDomain = errors.New("tabview: domain error")

	// ErrArity reports a wrong number of arguments to a variadic function.
	ErrArity = errors.New("tabview: wrong number of arguments")

	// ErrNotFound reports an unknown column or matrix name.
	ErrNotFound = errors.New("tabview: not found")
)

// Errorf wraps class with a call-site tag and a formatted detail message.
// The result satisfies errors.Is(err, class).
func Errorf(class error, tag, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), class)
}
