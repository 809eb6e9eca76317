// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/matrix"
	"github.com/katalvlaran/tabview/value"
)

// TestNew covers default extent, explicit coordinates and lookup errors.
func TestNew(t *testing.T) {
	s := scenario(t)

	v := MustView(t, s, "A")
	require.Equal(t, "A", v.Name())
	require.Equal(t, []int{0, 1, 2}, v.Rows())
	require.Equal(t, []int{0, 1}, v.Cols())
	require.Equal(t, matrix.DefaultFormat, v.DisplayFormat())

	w := MustView(t, s, "A", matrix.WithRows(-1, 0, 0), matrix.WithCols(1))
	require.Equal(t, []int{2, 0, 0}, w.Rows()) // negatives wrap, duplicates kept
	require.Equal(t, 3, w.NRows())
	require.Equal(t, 1, w.NCols())

	empty := MustView(t, s, "A", matrix.WithRows())
	require.Equal(t, 0, empty.NRows())

	cases := []struct {
		name string
		host func() (*matrix.View, error)
		want error
	}{
		{"unknown", func() (*matrix.View, error) { return matrix.New(s, "B") }, matrix.ErrNotFound},
		{"zero dimension", func() (*matrix.View, error) { return matrix.New(flatHost{s}, "A") }, matrix.ErrNotFound},
		{"row out of range", func() (*matrix.View, error) { return matrix.New(s, "A", matrix.WithRows(3)) }, matrix.ErrOutOfRange},
		{"column out of range", func() (*matrix.View, error) { return matrix.New(s, "A", matrix.WithCols(-3)) }, matrix.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.host()
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestWithFormatPanics rejects string and malformed formats at option time.
func TestWithFormatPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithFormat("%9s") })
	require.Panics(t, func() { matrix.WithFormat("9.2f") })
	require.NotPanics(t, func() { matrix.WithFormat("%6.2f") })
}

// TestConcreteScenario walks reads, a sub-view and writes on a 3×2 matrix.
func TestConcreteScenario(t *testing.T) {
	s := scenario(t)
	v := MustView(t, s, "A")

	got, err := v.Get(1, 1)
	require.NoError(t, err)
	require.Equal(t, value.Num(4), got)

	last, err := v.Get(-1, -2)
	require.NoError(t, err)
	require.Equal(t, value.Num(5), last)

	sub, err := v.Sub(index.Range(0, 2), index.At(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, sub.Rows())
	require.Equal(t, []int{1}, sub.Cols())

	require.NoError(t, v.Set(index.All(), index.At(0), []int{10, 30, 50}))
	require.NoError(t, sub.Set(index.All(), index.All(), []int{7, 8})) // 2 rows of 1
	require.Equal(t, [][]float64{{10, 7}, {30, 8}, {50, 6}}, raw(t, s, "A"))

	_, err = v.Get(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.Sub(index.Slice(0, 2, 0), index.All())
	require.ErrorIs(t, err, index.ErrValue)
}

// TestSubComposition resolves nested sub-views against their parents.
func TestSubComposition(t *testing.T) {
	s := MustStore(t, "M", 4, 4,
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
		12, 13, 14, 15)
	v := MustView(t, s, "M")

	a, err := v.Sub(index.Positions(3, 1, 2), index.Slice(index.Unbounded, index.Unbounded, -1))
	require.NoError(t, err)
	b, err := a.Sub(index.Positions(-1, 0), index.Range(1, 3))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, b.Rows())
	require.Equal(t, []int{2, 1}, b.Cols())

	got, err := b.Get(1, 0)
	require.NoError(t, err)
	require.Equal(t, value.Num(14), got)
	require.Equal(t, a.DisplayFormat(), b.DisplayFormat()) // format carried
}

// TestSetShapes checks the one-row / one-column disambiguation and errors.
func TestSetShapes(t *testing.T) {
	s := MustStore(t, "M", 3, 3, make([]float64, 9)...)
	v := MustView(t, s, "M")

	require.NoError(t, v.Set(index.At(0), index.All(), []int{1, 2, 3}))    // 1×3
	require.NoError(t, v.Set(index.All(), index.At(2), []int{4, 5, 6}))    // 3×1
	require.NoError(t, v.Set(index.At(1), index.At(0), 9))                 // 1×1 scalar
	require.NoError(t, v.Set(index.To(0), index.All(), "anything at all")) // empty, no-op
	require.Equal(t, [][]float64{{1, 2, 4}, {9, 0, 5}, {0, 0, 6}}, raw(t, s, "M"))

	require.ErrorIs(t, v.Set(index.All(), index.All(), []int{1, 2, 3}), matrix.ErrShape)
	require.ErrorIs(t, v.Set(index.At(0), index.All(), [][]int{{1, 2}}), matrix.ErrShape)
	require.ErrorIs(t, v.Set(index.At(0), index.At(0), "x"), matrix.ErrType)
	require.ErrorIs(t, v.Set(index.At(0), index.Range(0, 2), []any{1, value.Str("x")}), matrix.ErrType)
	require.ErrorIs(t, v.Set(index.At(0), index.At(0), struct{}{}), matrix.ErrType)
	require.Equal(t, [][]float64{{1, 2, 4}, {9, 0, 5}, {0, 0, 6}}, raw(t, s, "M")) // untouched
}

// TestSetMissing encodes sentinels and maps unusable numbers to ".".
func TestSetMissing(t *testing.T) {
	s := MustStore(t, "M", 1, 5, 0, 0, 0, 0, 0)
	v := MustView(t, s, "M")
	dotB := sentinel(t, ".b")

	require.NoError(t, v.Set(index.All(), index.All(), []any{nil, math.NaN(), math.Inf(-1), dotB, value.Num(2)}))
	row, err := v.Row(0)
	require.NoError(t, err)
	require.Equal(t, "[. . . .b 2]", row.String())

	canonical := value.Missing.Float64()
	require.Equal(t, [][]float64{{canonical, canonical, canonical, dotB.Float64(), 2}}, raw(t, s, "M"))
}

// TestSetterErrorsPropagate stops at the failing cell and keeps earlier writes.
func TestSetterErrorsPropagate(t *testing.T) {
	s := scenario(t)
	v, err := matrix.New(failing{Store: s, failRow: 1}, "A")
	require.NoError(t, err)

	err = v.Set(index.All(), index.All(), [][]int{{0, 0}, {0, 0}, {0, 0}})
	require.ErrorIs(t, err, errBoom)
	require.Equal(t, [][]float64{{0, 0}, {3, 4}, {5, 6}}, raw(t, s, "A"))
}

// TestSetFromViewAndDense copies between views and from gonum matrices.
func TestSetFromViewAndDense(t *testing.T) {
	s := scenario(t)
	require.NoError(t, s.AddMatrix("B", 2, 2, []float64{0, 0, 0, 0}))
	a := MustView(t, s, "A")
	b := MustView(t, s, "B")

	top, err := a.Sub(index.To(2), index.All())
	require.NoError(t, err)
	require.NoError(t, b.Set(index.All(), index.All(), top))
	eq, err := b.Equal(top)
	require.NoError(t, err)
	require.True(t, eq)

	require.NoError(t, b.Set(index.All(), index.All(), mat.NewDense(2, 2, []float64{9, 8, 7, 6})))
	require.Equal(t, [][]float64{{9, 8}, {7, 6}}, raw(t, s, "B"))
	require.ErrorIs(t, b.Set(index.All(), index.All(), mat.NewDense(1, 2, nil)), matrix.ErrShape)
}

// TestDense exports raw doubles, missing encodings included.
func TestDense(t *testing.T) {
	dotA := sentinel(t, ".a")
	s := MustStore(t, "A", 2, 2, 1, dotA.Float64(), 3, 4)
	v := MustView(t, s, "A", matrix.WithRows(1, 0))

	d, err := v.Dense()
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 1, dotA.Float64()}, d.RawMatrix().Data)

	got, ok := value.Classify(d.At(1, 1))
	require.True(t, ok)
	require.Equal(t, dotA, got)

	empty := MustView(t, s, "A", matrix.WithCols())
	_, err = empty.Dense()
	require.ErrorIs(t, err, matrix.ErrShape)
}

// TestEqual compares values by position, not names or coordinates.
func TestEqual(t *testing.T) {
	s := MustStore(t, "A", 2, 2, 1, 2, 1, 2)
	require.NoError(t, s.AddMatrix("B", 1, 2, []float64{1, 2}))
	a := MustView(t, s, "A")

	r0, err := a.Sub(index.At(0), index.All())
	require.NoError(t, err)
	r1, err := a.Sub(index.At(1), index.All())
	require.NoError(t, err)
	b := MustView(t, s, "B")

	for _, other := range []*matrix.View{r1, b} {
		eq, err := r0.Equal(other)
		require.NoError(t, err)
		require.True(t, eq)
	}

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.False(t, eq) // shape differs
	eq, err = a.Equal(nil)
	require.NoError(t, err)
	require.False(t, eq)

	require.NoError(t, b.Set(index.All(), index.At(1), nil))
	eq, err = r0.Equal(b)
	require.NoError(t, err)
	require.False(t, eq)
}

// TestIter yields rows lazily and can be restarted.
func TestIter(t *testing.T) {
	v := MustView(t, scenario(t), "A")

	for range 2 {
		var seen []string
		for row, err := range v.Iter() {
			require.NoError(t, err)
			seen = append(seen, row.String())
		}
		require.Equal(t, []string{"[1 2]", "[3 4]", "[5 6]"}, seen)
	}

	grid, err := v.ToGrid()
	require.NoError(t, err)
	rows, cols := grid.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, value.Num(6), grid[2][1])
}

// TestFormat accepts numeric formats only.
func TestFormat(t *testing.T) {
	v := MustView(t, scenario(t), "A")

	require.NoError(t, v.Format("%6.2f"))
	require.Equal(t, "%6.2f", v.DisplayFormat())
	require.ErrorIs(t, v.Format("%10s"), matrix.ErrValue)
	require.ErrorIs(t, v.Format("%"), matrix.ErrValue)
	require.Equal(t, "%6.2f", v.DisplayFormat()) // unchanged on error
}
