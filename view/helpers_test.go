// SPDX-License-Identifier: MIT
// Package view_test contains fixtures shared by the table tests.
//
// Purpose:
//   - Build small deterministic memhost stores.
//   - Flatten grids into plain Go values for require.Equal.

package view_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabview/host/memhost"
	"github.com/katalvlaran/tabview/shape"
	"github.com/katalvlaran/tabview/value"
	"github.com/katalvlaran/tabview/view"
)

// MustStore builds a store with one numeric column per entry of cols.
// Columns are named x0, x1, ...
func MustStore(t *testing.T, rows int, cols ...[]float64) *memhost.Store {
	t.Helper()
	s := memhost.New(rows)
	for j, c := range cols {
		require.NoError(t, s.AddNumeric("x"+string(rune('0'+j)), c))
	}

	return s
}

// scenario is the 3×2 store [[1,2],[3,4],[5,6]].
func scenario(t *testing.T) *memhost.Store {
	t.Helper()

	return MustStore(t, 3, []float64{1, 3, 5}, []float64{2, 4, 6})
}

// mixed has a numeric column with missing values, a string column and a
// 0/1 flag: price, make, foreign.
func mixed(t *testing.T) *memhost.Store {
	t.Helper()
	s := memhost.New(4)
	require.NoError(t, s.AddNumeric("price", []float64{4099, value.Missing.Float64(), 3799, 4816}))
	require.NoError(t, s.AddString("make", []string{"AMC Concord", "AMC Pacer", "Buick", "Chev"}))
	require.NoError(t, s.AddNumeric("foreign", []float64{0, 1, 1, 0}))

	return s
}

// MustTable wraps view.New.
func MustTable(t *testing.T, s *memhost.Store, opts ...view.Option) *view.Table {
	t.Helper()
	tb, err := view.New(s, opts...)
	require.NoError(t, err)

	return tb
}

// floats flattens a numeric table into raw doubles.
func floats(t *testing.T, tb *view.Table) [][]float64 {
	t.Helper()
	g, err := tb.ToGrid()
	require.NoError(t, err)

	return rawGrid(t, g)
}

func rawGrid(t *testing.T, g shape.Grid) [][]float64 {
	t.Helper()
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = make([]float64, len(row))
		for j, c := range row {
			raw, ok := c.(value.Scalar).Raw()
			require.True(t, ok, "cell (%d,%d) is not numeric", i, j)
			out[i][j] = raw
		}
	}

	return out
}

var errBoom = errors.New("boom")

// failing rejects numeric writes to one row.
type failing struct {
	*memhost.Store
	failRow int
}

func (f failing) SetNumeric(row, col int, v float64) error {
	if row == f.failRow {
		return errBoom
	}

	return f.Store.SetNumeric(row, col, v)
}
