// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/katalvlaran/tabview/errs"
)

var (
	// ErrShape reports a rows or columns mismatch.
	ErrShape = errs.ErrShape
	// ErrType reports a string cell in numeric-only input.
	ErrType = errs.ErrType
)

// Grid is a row-major rectangular block of cells.
type Grid [][]any

// Gridder is implemented by views and matrices used as assignment sources.
type Gridder interface {
	ToGrid() (Grid, error)
}

// stringish is satisfied by value.Scalar without importing it.
type stringish interface {
	IsString() bool
}

// Dims returns (rows, cols) of g; cols is taken from the first row.
func (g Grid) Dims() (rows, cols int) {
	if len(g) == 0 {
		return 0, 0
	}

	return len(g), len(g[0])
}

// Shape MAIN DESCRIPTION:
//   - Normalise v into an nRows×nCols grid (see package doc for the rules).
//
// Errors:
//   - ErrShape naming "rows" or "columns" on any mismatch.
//   - Errors returned by a Gridder source.
//
// Notes:
//   - Lazy sequences are drained once; the returned grid never aliases v.
func Shape(v any, nRows, nCols int) (Grid, error) {
	if g, ok := v.(Gridder); ok {
		grid, err := g.ToGrid()
		if err != nil {
			return nil, fmt.Errorf("shape: source grid: %w", err)
		}
		v = [][]any(grid)
	}

	items, isSeq := elems(v)
	if !isSeq {
		if nRows == 1 && nCols == 1 {
			return Grid{{v}}, nil
		}
		return nil, fmt.Errorf("shape: single value for a %d×%d selection: rows: %w", nRows, nCols, ErrShape)
	}

	rows := make(Grid, len(items))
	allSingle := true
	for i, it := range items {
		inner, ok := elems(it)
		if !ok {
			inner = []any{it}
		}
		rows[i] = inner
		if len(inner) != 1 {
			allSingle = false
		}
	}
	if nRows == 1 && len(rows) == nCols && allSingle {
		row := make([]any, nCols)
		for j, r := range rows {
			row[j] = r[0]
		}
		rows = Grid{row}
	}

	if len(rows) != nRows {
		return nil, fmt.Errorf("shape: value has %d rows, selection has %d: rows: %w", len(rows), nRows, ErrShape)
	}
	for i, r := range rows {
		if len(r) != nCols {
			return nil, fmt.Errorf("shape: row %d has %d columns, selection has %d: columns: %w", i, len(r), nCols, ErrShape)
		}
	}

	return rows, nil
}

// ShapeNumeric is Shape followed by a check that no cell is a string.
func ShapeNumeric(v any, nRows, nCols int) (Grid, error) {
	g, err := Shape(v, nRows, nCols)
	if err != nil {
		return nil, err
	}
	for i, row := range g {
		for j, c := range row {
			if isString(c) {
				return nil, fmt.Errorf("shape: cell (%d,%d) is a string in numeric input: %w", i, j, ErrType)
			}
		}
	}

	return g, nil
}

func isString(c any) bool {
	switch x := c.(type) {
	case string:
		return true
	case stringish:
		return x.IsString()
	}

	return false
}

// elems returns the elements of a sequence value; ok is false for atoms.
// Strings and byte slices are atoms.
func elems(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil, string, []byte:
		return nil, false
	case []any:
		out := make([]any, len(x))
		copy(out, x)
		return out, true
	case iter.Seq[any]:
		var out []any
		for e := range x {
			out = append(out, e)
		}
		if out == nil {
			out = []any{}
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}

	return nil, false
}
