// SPDX-License-Identifier: MIT

// Package view - Table: a no-copy, write-through window onto host.Data.
//
// Purpose:
//   - Translate view-local positions into absolute host coordinates through
//     two bound coordinate lists.
//   - Derive sub-tables by resolving index specifiers against those lists.
//   - Write rectangular blocks with every check done before the first write.
//
// Determinism:
//   - Reads and writes walk rows then columns, in list order.
//
// Complexity quicksheet:
//   - Get: O(1); Sub: O(r'+c'); Set/ToGrid/Equal: O(r*c) host calls.

package view

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/logging"
	"github.com/katalvlaran/tabview/shape"
	"github.com/katalvlaran/tabview/value"
)

// ---------- error context tags ----------

const (
	ctxNew    = "view.New"
	ctxGet    = "Table.Get"
	ctxSub    = "Table.Sub"
	ctxSet    = "Table.Set"
	ctxFormat = "Table.Format"
	ctxGrid   = "Table.ToGrid"
)

// Table is a live view of selected rows and columns of a host dataset.
type Table struct {
	h       host.Data
	rows    []int         // absolute row numbers, in view order
	cols    []int         // absolute column numbers, in view order
	nobs    int           // distinct rows
	nvar    int           // distinct columns
	access  []*cellAccess // one per view column
	formats []string      // display format per view column
	log     *slog.Logger
}

var _ shape.Gridder = (*Table)(nil)

// New MAIN DESCRIPTION:
//   - Build a Table over h. Without options it spans every row and column.
//
// Implementation:
//   - Stage 1: resolve explicit rows and columns (positions or names).
//   - Stage 2: filter rows by a selection column or by complete cases.
//   - Stage 3: bind one accessor and one default format per column.
//
// Errors:
//   - ErrOutOfRange for explicit rows/columns outside the dataset.
//   - ErrType when the selection column holds strings.
//   - Host name-resolution errors (errs.ErrValue, errs.ErrNotFound).
//
// Notes:
//   - The dataset's extent is read once; later growth is not seen.
func New(h host.Data, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)
	nobs, nvar := h.RowCount(), h.ColumnCount()

	rows := index.Full(nobs)
	if o.rowsSet {
		var err error
		if rows, err = absolute(o.rows, nobs); err != nil {
			return nil, fmt.Errorf("%s: rows: %w", ctxNew, err)
		}
	}

	cols := index.Full(nvar)
	switch {
	case o.colNames != nil:
		cols = make([]int, len(o.colNames))
		for k, name := range o.colNames {
			j, err := h.ColumnIndex(name, true)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxNew, err)
			}
			cols[k] = j
		}
	case o.colsSet:
		var err error
		if cols, err = absolute(o.cols, nvar); err != nil {
			return nil, fmt.Errorf("%s: columns: %w", ctxNew, err)
		}
	}

	access := make([]*cellAccess, len(cols))
	for k, c := range cols {
		isStr, err := h.ColumnIsString(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNew, err)
		}
		access[k] = accessFor(isStr)
	}

	var err error
	switch {
	case o.selectSet:
		rows, err = selectNonZero(h, rows, o.selectCol, o.selectName, nvar)
	case o.complete:
		rows, err = completeCases(h, rows, cols, access)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	formats := make([]string, len(cols))
	for k, a := range access {
		formats[k] = o.numFmt
		if a.isString {
			formats[k] = o.strFmt
		}
	}

	return newTable(h, rows, cols, access, formats, logging.OrDiscard(o.log)), nil
}

// newTable assembles a Table; the slices are owned by the result.
func newTable(h host.Data, rows, cols []int, access []*cellAccess, formats []string, log *slog.Logger) *Table {
	return &Table{
		h:       h,
		rows:    rows,
		cols:    cols,
		nobs:    index.Distinct(rows),
		nvar:    index.Distinct(cols),
		access:  access,
		formats: formats,
		log:     log,
	}
}

// absolute normalises explicit coordinates: -n ≤ p < n, negatives wrap.
func absolute(pos []int, n int) ([]int, error) {
	return index.Resolve(index.Full(n), index.Positions(pos...))
}

// NRows returns the number of rows in the view (duplicates counted).
func (t *Table) NRows() int { return len(t.rows) }

// NCols returns the number of columns in the view (duplicates counted).
func (t *Table) NCols() int { return len(t.cols) }

// NObs returns the number of distinct host rows in the view.
func (t *Table) NObs() int { return t.nobs }

// NVar returns the number of distinct host columns in the view.
func (t *Table) NVar() int { return t.nvar }

// Rows returns a copy of the absolute row numbers.
func (t *Table) Rows() []int { return slices.Clone(t.rows) }

// Cols returns a copy of the absolute column numbers.
func (t *Table) Cols() []int { return slices.Clone(t.cols) }

// Formats returns a copy of the per-column display formats.
func (t *Table) Formats() []string { return slices.Clone(t.formats) }

// IsString reports whether view column c is a string column.
func (t *Table) IsString(c int) (bool, error) {
	j, err := index.Wrap(c, len(t.cols), "column")
	if err != nil {
		return false, fmt.Errorf("Table.IsString: %w", err)
	}

	return t.access[j].isString, nil
}

// Get reads the cell at view position (r, c); negatives count from the end.
// Numeric cells decode the missing band into sentinels.
func (t *Table) Get(r, c int) (value.Scalar, error) {
	i, err := index.Wrap(r, len(t.rows), "row")
	if err != nil {
		return value.Null, fmt.Errorf("%s(%d,%d): %w", ctxGet, r, c, err)
	}
	j, err := index.Wrap(c, len(t.cols), "column")
	if err != nil {
		return value.Null, fmt.Errorf("%s(%d,%d): %w", ctxGet, r, c, err)
	}

	return t.access[j].get(t.h, t.rows[i], t.cols[j])
}

// resolve maps row and column specifiers onto the view. Rows come back
// absolute; columns come back as view positions so accessors and formats
// can follow them.
func (t *Table) resolve(rs, cs index.Spec) (rows, colPos []int, err error) {
	if rows, err = index.Resolve(t.rows, rs); err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	if colPos, err = index.Resolve(index.Full(len(t.cols)), cs); err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}

	return rows, colPos, nil
}

// Sub derives a table over the rows and columns selected by rs and cs.
// The result shares the host binding and carries the selected columns'
// display formats; no data is copied.
func (t *Table) Sub(rs, cs index.Spec) (*Table, error) {
	rows, colPos, err := t.resolve(rs, cs)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", ctxSub, rs, cs, err)
	}
	cols := make([]int, len(colPos))
	access := make([]*cellAccess, len(colPos))
	formats := make([]string, len(colPos))
	for k, p := range colPos {
		cols[k], access[k], formats[k] = t.cols[p], t.access[p], t.formats[p]
	}
	t.log.Debug("view: sub-table", "rows", len(rows), "cols", len(cols))

	return newTable(t.h, rows, cols, access, formats, t.log), nil
}

// Set MAIN DESCRIPTION:
//   - Write v into the block selected by rs and cs.
//
// Implementation:
//   - Stage 1: resolve both specifiers; an empty block returns nil at once,
//     whatever v holds.
//   - Stage 2: shape v into rows×cols (see package shape).
//   - Stage 3: convert every cell for its column's type.
//   - Stage 4: write row-major through the bound setters.
//
// Errors:
//   - Specifier errors (ErrValue, ErrOutOfRange), ErrShape, ErrType from
//     conversion; none of these writes anything.
//   - Host setter errors, returned as they come; cells written before the
//     failing one stay written.
func (t *Table) Set(rs, cs index.Spec, v any) error {
	rows, colPos, err := t.resolve(rs, cs)
	if err != nil {
		return fmt.Errorf("%s(%s, %s): %w", ctxSet, rs, cs, err)
	}
	if len(rows) == 0 || len(colPos) == 0 {
		return nil
	}

	grid, err := shape.Shape(v, len(rows), len(colPos))
	if err != nil {
		return fmt.Errorf("%s(%s, %s): %w", ctxSet, rs, cs, err)
	}
	for i, row := range grid {
		for j, cell := range row {
			if row[j], err = t.access[colPos[j]].conv(cell); err != nil {
				return fmt.Errorf("%s: cell (%d,%d): %w", ctxSet, i, j, err)
			}
		}
	}

	for i, r := range rows {
		for j, p := range colPos {
			if err = t.access[p].put(t.h, r, t.cols[p], grid[i][j]); err != nil {
				return fmt.Errorf("%s: host (%d,%d): %w", ctxSet, r, t.cols[p], err)
			}
		}
	}
	t.log.Debug("view: block write", "rows", len(rows), "cols", len(colPos), "cells", len(rows)*len(colPos))

	return nil
}

// ToGrid materialises the view as rows of value.Scalar.
func (t *Table) ToGrid() (shape.Grid, error) {
	g := make(shape.Grid, len(t.rows))
	for i, r := range t.rows {
		row := make([]any, len(t.cols))
		for j, c := range t.cols {
			s, err := t.access[j].get(t.h, r, c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxGrid, err)
			}
			row[j] = s
		}
		g[i] = row
	}

	return g, nil
}

// Row reads view row r as a vector.
func (t *Table) Row(r int) (value.Vector, error) {
	i, err := index.Wrap(r, len(t.rows), "row")
	if err != nil {
		return nil, fmt.Errorf("Table.Row(%d): %w", r, err)
	}

	return t.row(t.rows[i])
}

func (t *Table) row(abs int) (value.Vector, error) {
	out := make(value.Vector, len(t.cols))
	for j, c := range t.cols {
		s, err := t.access[j].get(t.h, abs, c)
		if err != nil {
			return nil, err
		}
		out[j] = s
	}

	return out, nil
}

// Iter yields the view's rows lazily, reading the host on demand.
// The sequence is restartable. It stops after yielding the first error.
// Mutating the host while iterating is visible and not guarded.
func (t *Table) Iter() iter.Seq2[value.Vector, error] {
	return func(yield func(value.Vector, error) bool) {
		for _, r := range t.rows {
			row, err := t.row(r)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Equal reports whether t and o have the same shape and, position by
// position, the same column types and cell values. The coordinate lists
// themselves are not compared.
func (t *Table) Equal(o *Table) (bool, error) {
	if o == nil || len(t.rows) != len(o.rows) || len(t.cols) != len(o.cols) {
		return false, nil
	}
	for j := range t.cols {
		if t.access[j].isString != o.access[j].isString {
			return false, nil
		}
		for i := range t.rows {
			a, err := t.access[j].get(t.h, t.rows[i], t.cols[j])
			if err != nil {
				return false, fmt.Errorf("Table.Equal: %w", err)
			}
			b, err := o.access[j].get(o.h, o.rows[i], o.cols[j])
			if err != nil {
				return false, fmt.Errorf("Table.Equal: %w", err)
			}
			if !a.Equal(b) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Format sets the display format of view column c. Only display changes.
// Errors: ErrOutOfRange for c, ErrValue for an illegal format or one whose
// string/numeric class does not match the column.
func (t *Table) Format(c int, f string) error {
	j, err := index.Wrap(c, len(t.cols), "column")
	if err != nil {
		return fmt.Errorf("%s(%d): %w", ctxFormat, c, err)
	}
	spec, err := format.Parse(f)
	if err != nil {
		return fmt.Errorf("%s(%d): %w", ctxFormat, c, err)
	}
	if (spec.Class == format.ClassString) != t.access[j].isString {
		return fmt.Errorf("%s(%d): %q does not match the column type: %w", ctxFormat, c, f, ErrValue)
	}
	t.formats[j] = spec.Raw

	return nil
}
