// SPDX-License-Identifier: MIT

// Package vecmath is a missing-aware numeric function catalogue.
//
// Every function accepts a bare scalar (Go number, nil, value.Scalar,
// value.Sentinel) or a value.Vector and, for binary functions, any mix of the
// two: a vector operand makes the result a vector and scalars broadcast.
//
// Shared contract:
//   - inputs that are missing, or outside the function's domain, yield the
//     canonical sentinel; functions never return NaN and never panic;
//   - results whose magnitude would exceed value.MaxNonMissing (the start of
//     the missing band) are clamped to the canonical sentinel;
//   - string operands fail with ErrType; Max and Min need at least two
//     arguments (ErrArity). No other error is ever returned.
//
// Ceil, Floor, Int and Round keep a sentinel operand as-is and decode raw
// doubles that sit inside the missing band.
package vecmath
