// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for New.
//
// Purpose:
//   - Restrict a View to explicit host rows and columns.
//   - Choose the shared display format.
//   - Inject a logger.
//
// Policy:
//   - WithX constructors panic on programmer error only (a malformed or
//     string format literal). Positions outside the matrix are reported by
//     New as errors, since they depend on the host.

package matrix

import (
	"log/slog"

	"github.com/katalvlaran/tabview/format"
)

// DefaultFormat is the display format a View starts with.
const DefaultFormat = "%10.0g"

const panicFormat = "matrix: WithFormat: not a numeric display format"

// Option configures New.
type Option func(*Options)

// Options holds the resolved configuration of New.
type Options struct {
	rows    []int
	rowsSet bool
	cols    []int
	colsSet bool
	format  string
	log     *slog.Logger
}

func gatherOptions(opts []Option) Options {
	o := Options{format: DefaultFormat}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRows restricts the view to host rows, negatives counting from the end.
// WithRows() with no arguments selects no rows.
func WithRows(rows ...int) Option {
	cp := append(make([]int, 0, len(rows)), rows...)
	return func(o *Options) { o.rows, o.rowsSet = cp, true }
}

// WithCols restricts the view to host columns, negatives counting from the end.
func WithCols(cols ...int) Option {
	cp := append(make([]int, 0, len(cols)), cols...)
	return func(o *Options) { o.cols, o.colsSet = cp, true }
}

// WithFormat sets the display format. Panics unless f is a numeric format.
func WithFormat(f string) Option {
	if !format.IsNumFmt(f) {
		panic(panicFormat)
	}
	return func(o *Options) { o.format = f }
}

// WithLogger routes debug logging to l. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.log = l }
}
