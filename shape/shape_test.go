// SPDX-License-Identifier: MIT
package shape_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/tabview/shape"
	"github.com/stretchr/testify/require"
)

type fixedGrid shape.Grid

func (g fixedGrid) ToGrid() (shape.Grid, error) { return shape.Grid(g), nil }

// TestDisambiguation: a flat list fills 1×3 as a row and 3×1 as a column.
func TestDisambiguation(t *testing.T) {
	flat := []int{10, 20, 30}

	g, err := shape.Shape(flat, 1, 3)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{10, 20, 30}}, g)

	g, err = shape.Shape(flat, 3, 1)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{10}, {20}, {30}}, g)

	_, err = shape.Shape(flat, 2, 2)
	require.ErrorIs(t, err, shape.ErrShape)
	require.Contains(t, err.Error(), "rows")
}

// TestScalar broadcasts only into 1×1.
func TestScalar(t *testing.T) {
	g, err := shape.Shape(4.5, 1, 1)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{4.5}}, g)

	g, err = shape.Shape("abc", 1, 1) // strings stay atomic
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{"abc"}}, g)

	_, err = shape.Shape("abc", 1, 3)
	require.ErrorIs(t, err, shape.ErrShape)
	_, err = shape.Shape(1, 2, 1)
	require.ErrorIs(t, err, shape.ErrShape)
}

// TestNested uses sequences of rows as-is and names the failing dimension.
func TestNested(t *testing.T) {
	in := [][]float64{{1, 2}, {3, 4}}
	g, err := shape.Shape(in, 2, 2)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{1.0, 2.0}, {3.0, 4.0}}, g)

	_, err = shape.Shape([][]any{{1, 2}, {3}}, 2, 2)
	require.ErrorIs(t, err, shape.ErrShape)
	require.Contains(t, err.Error(), "columns")

	g, err = shape.Shape([]any{[]any{"a", "b"}}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{"a", "b"}}, g)

	g, err = shape.Shape([]string{"ab", "cd"}, 2, 1) // not split into characters
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{"ab"}, {"cd"}}, g)
}

// TestLazyAndGridder drains iterators and converts Gridder sources.
func TestLazyAndGridder(t *testing.T) {
	seq := slices.Values([]any{1, 2, 3})
	g, err := shape.Shape(seq, 1, 3)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{1, 2, 3}}, g)

	src := fixedGrid{{1.0}, {2.0}}
	g, err = shape.Shape(src, 2, 1)
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{1.0}, {2.0}}, g)

	g, err = shape.Shape(src, 1, 2) // a 2×1 source can fill a 1×2 target
	require.NoError(t, err)
	require.Equal(t, shape.Grid{{1.0, 2.0}}, g)
}

// TestShapeNumeric rejects string cells.
func TestShapeNumeric(t *testing.T) {
	_, err := shape.ShapeNumeric([]any{1, "x"}, 1, 2)
	require.ErrorIs(t, err, shape.ErrType)

	g, err := shape.ShapeNumeric([]any{1, nil}, 1, 2)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
}
