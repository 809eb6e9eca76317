// SPDX-License-Identifier: MIT

// Package shape normalises bulk-assignment input into a rows×cols grid.
//
// Rules, applied in order:
//   - a Gridder (view, matrix) is replaced by its own ToGrid result;
//   - an atomic value (anything that is not a slice, array or iter.Seq[any],
//     and always a string) becomes a 1×1 grid, valid only for 1×1 targets;
//   - every element of a sequence becomes a row: atomic elements wrap as
//     one-cell rows, nested sequences are consumed as-is;
//   - if the target has one row and the sequence holds exactly nCols
//     one-cell rows, those cells form the single row instead;
//   - finally the outer length must equal nRows and every row nCols.
//
// The fourth rule is the single-row/single-column disambiguation: [a b c]
// fills a 1×3 target as one row and a 3×1 target as three one-cell rows.
package shape
