// SPDX-License-Identifier: MIT

// Package host declares the primitives tabview consumes from the program
// that owns the data. Views never hold data; every read and write goes
// through these interfaces using absolute coordinates.
//
// Contract:
//   - numeric getters return raw doubles; values inside the missing band
//     encode sentinels and are classified by the caller (value.Classify);
//   - each call is atomic at single-cell granularity and nothing more;
//   - name resolution (abbreviation, ambiguity, existence) is entirely the
//     host's concern and reported with errs.ErrValue / errs.ErrNotFound.
package host

// Data is a row×column store with typed columns (numeric or string).
type Data interface {
	RowCount() int
	ColumnCount() int
	ColumnIsString(col int) (bool, error)

	Numeric(row, col int) (float64, error)
	SetNumeric(row, col int, v float64) error
	String(row, col int) (string, error)
	SetString(row, col int, s string) error

	// ColumnIndex resolves a name; abbrev permits unique prefixes.
	ColumnIndex(name string, abbrev bool) (int, error)
	ColumnName(col int) (string, error)
}

// Matrices exposes named numeric matrices.
// MatrixRows/MatrixCols report -1 for an unknown name.
type Matrices interface {
	MatrixRows(name string) int
	MatrixCols(name string) int
	MatrixElement(name string, row, col int) (float64, error)
	SetMatrixElement(name string, row, col int, v float64) error
}
