// SPDX-License-Identifier: MIT

// Package view - direct block access without building a Table.
//
// Rows are any specifier index.FromAny accepts (an int, []int, []any of
// ints, iter.Seq[int], an index.Spec or nil for every row), resolved
// against the whole dataset. Columns are an int, a string, or a slice
// mixing both; each string may hold several whitespace-separated names,
// resolved with abbreviation.

package view

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/shape"
	"github.com/katalvlaran/tabview/value"
)

// Data reads numeric cells, one vector per row.
// Errors: ErrType when a selected column holds strings.
func Data(h host.Data, rows, cols any) ([]value.Vector, error) {
	t, err := block(h, rows, cols, false)
	if err != nil {
		return nil, fmt.Errorf("view.Data: %w", err)
	}
	out := make([]value.Vector, 0, t.NRows())
	for row, err := range t.Iter() {
		if err != nil {
			return nil, fmt.Errorf("view.Data: %w", err)
		}
		out = append(out, row)
	}

	return out, nil
}

// SData reads string cells, one slice per row.
// Errors: ErrType when a selected column is numeric.
func SData(h host.Data, rows, cols any) ([][]string, error) {
	t, err := block(h, rows, cols, true)
	if err != nil {
		return nil, fmt.Errorf("view.SData: %w", err)
	}
	out := make([][]string, 0, t.NRows())
	for row, err := range t.Iter() {
		if err != nil {
			return nil, fmt.Errorf("view.SData: %w", err)
		}
		txt := make([]string, len(row))
		for j, s := range row {
			txt[j], _ = s.Text()
		}
		out = append(out, txt)
	}

	return out, nil
}

// Store writes numeric cells; vals is shaped like a Table.Set value.
// Errors: ErrType when a selected column holds strings or a value is not
// numeric, ErrShape on a shape mismatch. Nothing is written on error
// except what a failing host setter leaves behind.
func Store(h host.Data, rows, cols, vals any) error {
	t, err := block(h, rows, cols, false)
	if err != nil {
		return fmt.Errorf("view.Store: %w", err)
	}
	if err = storeAll(t, vals); err != nil {
		return fmt.Errorf("view.Store: %w", err)
	}

	return nil
}

// SStore writes string cells; vals is shaped like a Table.Set value.
// Errors: ErrType when a selected column is numeric or a value is not a
// string, ErrShape on a shape mismatch.
func SStore(h host.Data, rows, cols, vals any) error {
	t, err := block(h, rows, cols, true)
	if err != nil {
		return fmt.Errorf("view.SStore: %w", err)
	}
	if err = storeAll(t, vals); err != nil {
		return fmt.Errorf("view.SStore: %w", err)
	}

	return nil
}

// storeAll writes vals over the whole of t. Unlike Table.Set on an empty
// selection, the shape check still runs, so an empty block accepts only an
// empty value.
func storeAll(t *Table, vals any) error {
	if t.NRows() == 0 || t.NCols() == 0 {
		_, err := shape.Shape(vals, t.NRows(), t.NCols())
		return err
	}

	return t.Set(index.All(), index.All(), vals)
}

// block builds the table behind the bulk helpers and checks column types.
func block(h host.Data, rows, cols any, wantString bool) (*Table, error) {
	rs, err := index.FromAny(rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	rowIdx, err := index.Resolve(index.Full(h.RowCount()), rs)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	colIdx, err := columns(h, cols)
	if err != nil {
		return nil, err
	}

	t, err := New(h, WithRows(rowIdx...), WithCols(colIdx...))
	if err != nil {
		return nil, err
	}
	for j, a := range t.access {
		if a.isString != wantString {
			kind := "numeric"
			if a.isString {
				kind = "string"
			}
			return nil, fmt.Errorf("column %d is %s: %w", t.cols[j], kind, ErrType)
		}
	}

	return t, nil
}

// columns flattens an int / string / mixed slice column selector.
func columns(h host.Data, cols any) ([]int, error) {
	var items []any
	switch x := cols.(type) {
	case int, string:
		items = []any{x}
	case []int:
		for _, c := range x {
			items = append(items, c)
		}
	case []string:
		for _, c := range x {
			items = append(items, c)
		}
	case []any:
		items = x
	default:
		return nil, fmt.Errorf("columns: %T is not an int, string or slice of them: %w", cols, ErrType)
	}

	var out []int
	for k, it := range items {
		switch c := it.(type) {
		case int:
			out = append(out, c)
		case string:
			for _, name := range strings.Fields(c) {
				j, err := h.ColumnIndex(name, true)
				if err != nil {
					return nil, fmt.Errorf("columns: %w", err)
				}
				out = append(out, j)
			}
		default:
			return nil, fmt.Errorf("columns: element %d is %T: %w", k, it, ErrType)
		}
	}

	return out, nil
}
