// SPDX-License-Identifier: MIT
// Package matrix - View: a no-copy, write-through window onto a named
// host matrix.
//
// Purpose:
//   - Bind a host matrix name to two lists of absolute coordinates.
//   - Derive sub-views by resolving index specifiers against those lists.
//   - Write rectangular numeric blocks, checked before the first write.
//
// Determinism:
//   - Reads and writes walk rows then columns, in list order.
//
// Complexity quicksheet:
//   - Get: O(1); Sub: O(r'+c'); Set/ToGrid/Equal/Dense: O(r*c) host calls.

package matrix

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/logging"
	"github.com/katalvlaran/tabview/shape"
	"github.com/katalvlaran/tabview/value"
)

// ---------- error context tags ----------

const (
	ctxNew    = "matrix.New"
	ctxGet    = "View.Get"
	ctxSub    = "View.Sub"
	ctxSet    = "View.Set"
	ctxGrid   = "View.ToGrid"
	ctxFormat = "View.Format"
	ctxDense  = "View.Dense"
)

// View is a live view of selected rows and columns of one host matrix.
// All elements share one display format.
type View struct {
	h      host.Matrices
	name   string
	rows   []int // absolute matrix rows, in view order
	cols   []int // absolute matrix columns, in view order
	format string
	log    *slog.Logger
}

var _ shape.Gridder = (*View)(nil)

// New MAIN DESCRIPTION:
//   - Build a View of the host matrix called name. Without options it spans
//     the whole matrix.
//
// Implementation:
//   - Stage 1: ask the host for the dimensions (ValidateDims).
//   - Stage 2: normalise explicit rows and columns; negatives wrap.
//
// Errors:
//   - ErrNotFound when the host has no such matrix or reports a zero
//     dimension for it.
//   - ErrOutOfRange for explicit positions outside the matrix.
func New(h host.Matrices, name string, opts ...Option) (*View, error) {
	o := gatherOptions(opts)
	nr, nc, err := ValidateDims(h, name)
	if err != nil {
		return nil, fmt.Errorf("%s(%q): %w", ctxNew, name, err)
	}

	rows, cols := index.Full(nr), index.Full(nc)
	if o.rowsSet {
		if rows, err = index.Resolve(rows, index.Positions(o.rows...)); err != nil {
			return nil, fmt.Errorf("%s(%q): rows: %w", ctxNew, name, err)
		}
	}
	if o.colsSet {
		if cols, err = index.Resolve(cols, index.Positions(o.cols...)); err != nil {
			return nil, fmt.Errorf("%s(%q): columns: %w", ctxNew, name, err)
		}
	}

	return &View{
		h:      h,
		name:   name,
		rows:   rows,
		cols:   cols,
		format: o.format,
		log:    logging.OrDiscard(o.log),
	}, nil
}

// Name returns the host name of the matrix.
func (v *View) Name() string { return v.name }

// NRows returns the number of rows in the view (duplicates counted).
func (v *View) NRows() int { return len(v.rows) }

// NCols returns the number of columns in the view (duplicates counted).
func (v *View) NCols() int { return len(v.cols) }

// Rows returns a copy of the absolute row numbers.
func (v *View) Rows() []int { return slices.Clone(v.rows) }

// Cols returns a copy of the absolute column numbers.
func (v *View) Cols() []int { return slices.Clone(v.cols) }

// DisplayFormat returns the shared display format.
func (v *View) DisplayFormat() string { return v.format }

// Format sets the shared display format. Only display changes.
// Errors: ErrValue for an illegal format or a string format.
func (v *View) Format(f string) error {
	spec, err := ValidateFormat(f)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxFormat, err)
	}
	v.format = spec.Raw

	return nil
}

func (v *View) element(r, c int) (value.Scalar, error) {
	raw, err := v.h.MatrixElement(v.name, r, c)
	if err != nil {
		return value.Null, err
	}

	return value.FromFloat(raw), nil
}

// Get reads the element at view position (r, c); negatives count from the
// end. Raw values inside the missing band decode into sentinels.
func (v *View) Get(r, c int) (value.Scalar, error) {
	i, err := index.Wrap(r, len(v.rows), "row")
	if err != nil {
		return value.Null, fmt.Errorf("%s(%d,%d): %w", ctxGet, r, c, err)
	}
	j, err := index.Wrap(c, len(v.cols), "column")
	if err != nil {
		return value.Null, fmt.Errorf("%s(%d,%d): %w", ctxGet, r, c, err)
	}

	return v.element(v.rows[i], v.cols[j])
}

func (v *View) resolve(rs, cs index.Spec) (rows, cols []int, err error) {
	if rows, err = index.Resolve(v.rows, rs); err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	if cols, err = index.Resolve(v.cols, cs); err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}

	return rows, cols, nil
}

// Sub derives a view over the rows and columns selected by rs and cs.
// The result shares the host binding and keeps the display format.
func (v *View) Sub(rs, cs index.Spec) (*View, error) {
	rows, cols, err := v.resolve(rs, cs)
	if err != nil {
		return nil, fmt.Errorf("%s(%s, %s): %w", ctxSub, rs, cs, err)
	}
	v.log.Debug("matrix: sub-view", "name", v.name, "rows", len(rows), "cols", len(cols))

	return &View{h: v.h, name: v.name, rows: rows, cols: cols, format: v.format, log: v.log}, nil
}

// Set MAIN DESCRIPTION:
//   - Write val into the block selected by rs and cs.
//
// Implementation:
//   - Stage 1: resolve both specifiers; an empty block returns nil at once.
//   - Stage 2: shape val (a gonum mat.Matrix is read as its rows) and
//     reject string cells.
//   - Stage 3: convert every cell to a raw double. nil and sentinels keep
//     their missing encoding; NaN, ±Inf and magnitudes beyond the
//     representable range become the canonical missing value.
//   - Stage 4: write row-major through the host setter.
//
// Errors:
//   - Specifier errors, ErrShape and ErrType; none of these writes anything.
//   - Host setter errors, returned as they come; earlier cells stay written.
func (v *View) Set(rs, cs index.Spec, val any) error {
	rows, cols, err := v.resolve(rs, cs)
	if err != nil {
		return fmt.Errorf("%s(%s, %s): %w", ctxSet, rs, cs, err)
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil
	}

	if m, ok := val.(mat.Matrix); ok {
		val = denseRows(m)
	}
	grid, err := shape.ShapeNumeric(val, len(rows), len(cols))
	if err != nil {
		return fmt.Errorf("%s(%s, %s): %w", ctxSet, rs, cs, err)
	}
	raws := make([][]float64, len(grid))
	for i, row := range grid {
		raws[i] = make([]float64, len(row))
		for j, cell := range row {
			if raws[i][j], err = toRaw(cell); err != nil {
				return fmt.Errorf("%s: cell (%d,%d): %w", ctxSet, i, j, err)
			}
		}
	}

	for i, r := range rows {
		for j, c := range cols {
			if err = v.h.SetMatrixElement(v.name, r, c, raws[i][j]); err != nil {
				return fmt.Errorf("%s: host (%d,%d): %w", ctxSet, r, c, err)
			}
		}
	}
	v.log.Debug("matrix: block write", "name", v.name, "rows", len(rows), "cols", len(cols))

	return nil
}

func toRaw(cell any) (float64, error) {
	s, err := value.From(cell)
	if err != nil {
		return 0, err
	}
	if s.IsString() {
		return 0, fmt.Errorf("string %q for a matrix: %w", s.String(), ErrType)
	}
	if f, ok := s.Float64(); ok {
		s = value.Clamp(f)
	}
	raw, _ := s.Raw()

	return raw, nil
}

// denseRows reads a gonum matrix as rows of float64.
func denseRows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}

	return out
}

// ToGrid materialises the view as rows of value.Scalar.
func (v *View) ToGrid() (shape.Grid, error) {
	g := make(shape.Grid, len(v.rows))
	for i, r := range v.rows {
		row := make([]any, len(v.cols))
		for j, c := range v.cols {
			s, err := v.element(r, c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxGrid, err)
			}
			row[j] = s
		}
		g[i] = row
	}

	return g, nil
}

// Dense copies the view into a gonum matrix of raw doubles. Missing
// elements keep their encoding, so they read as very large finite values;
// classify them with value.Classify before doing arithmetic.
// An empty view has no gonum form and returns ErrShape.
func (v *View) Dense() (*mat.Dense, error) {
	if len(v.rows) == 0 || len(v.cols) == 0 {
		return nil, fmt.Errorf("%s: %d×%d view: %w", ctxDense, len(v.rows), len(v.cols), ErrShape)
	}
	d := mat.NewDense(len(v.rows), len(v.cols), nil)
	for i, r := range v.rows {
		for j, c := range v.cols {
			raw, err := v.h.MatrixElement(v.name, r, c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxDense, err)
			}
			d.Set(i, j, raw)
		}
	}

	return d, nil
}

// Row reads view row r as a vector.
func (v *View) Row(r int) (value.Vector, error) {
	i, err := index.Wrap(r, len(v.rows), "row")
	if err != nil {
		return nil, fmt.Errorf("View.Row(%d): %w", r, err)
	}

	return v.row(v.rows[i])
}

func (v *View) row(abs int) (value.Vector, error) {
	out := make(value.Vector, len(v.cols))
	for j, c := range v.cols {
		s, err := v.element(abs, c)
		if err != nil {
			return nil, err
		}
		out[j] = s
	}

	return out, nil
}

// Iter yields the view's rows lazily. The sequence is restartable and
// stops after yielding the first error.
func (v *View) Iter() iter.Seq2[value.Vector, error] {
	return func(yield func(value.Vector, error) bool) {
		for _, r := range v.rows {
			row, err := v.row(r)
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Equal reports whether v and o have the same shape and the same element
// values position by position. Names and coordinate lists are not compared.
func (v *View) Equal(o *View) (bool, error) {
	if o == nil || len(v.rows) != len(o.rows) || len(v.cols) != len(o.cols) {
		return false, nil
	}
	for i := range v.rows {
		for j := range v.cols {
			a, err := v.element(v.rows[i], v.cols[j])
			if err != nil {
				return false, fmt.Errorf("View.Equal: %w", err)
			}
			b, err := o.element(o.rows[i], o.cols[j])
			if err != nil {
				return false, fmt.Errorf("View.Equal: %w", err)
			}
			if !a.Equal(b) {
				return false, nil
			}
		}
	}

	return true, nil
}
