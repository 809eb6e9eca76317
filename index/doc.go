// SPDX-License-Identifier: MIT

// Package index resolves row/column specifiers against an ordered list of
// absolute coordinates.
//
// A Spec is one of:
//   - All:       keep the prior list unchanged;
//   - Slice:     start:stop:step over len(prior), with the usual clamping of
//                out-of-range bounds and negative bounds counted from the end;
//   - Positions: explicit positions within prior (negative from the end,
//                duplicates and any order allowed, each must satisfy
//                -len ≤ p < len).
//
// Every resolved position is mapped through prior, so composing N levels of
// sub-indexing always yields coordinates of the backing store, never of an
// intermediate view. Resolve is the only way views derive sub-views.
package index
