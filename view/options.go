// SPDX-License-Identifier: MIT

// Package view: functional configuration for New.
//
// Purpose:
//   - Choose the rows and columns a Table starts from (explicit positions,
//     names, a selection column, complete cases).
//   - Choose default display formats per column type.
//   - Inject a logger.
//
// Policy:
//   - WithX constructors panic only on nonsensical arguments (programmer
//     error such as a malformed format literal).
//   - Problems that depend on the host's contents (unknown names, rows out
//     of range, a string selection column) are reported by New as errors.
package view

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/tabview/format"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNumericFormat is the display format of numeric columns.
	DefaultNumericFormat = format.DefaultNumeric

	// DefaultStringFormat is the display format of string columns.
	DefaultStringFormat = format.DefaultString
)

// ---------- Internal panic messages ----------

const (
	panicNumericFormat = "view: WithNumericFormat: not a numeric display format"
	panicStringFormat  = "view: WithStringFormat: not a string display format"
	panicSelectBoth    = "view: WithSelectColumn and WithCompleteCases are mutually exclusive"
)

// Option configures New.
type Option func(*Options)

// Options holds the resolved configuration of New. Fields are unexported;
// callers build it through Option values only.
type Options struct {
	rows     []int    // explicit rows; nil with rowsSet=false means all
	rowsSet  bool     // distinguishes "no rows" from "all rows"
	cols     []int    // explicit columns
	colNames []string // column names, resolved with abbreviation
	colsSet  bool

	selectCol  int    // numeric column whose non-zero rows are kept
	selectName string // same, by name
	selectSet  bool
	complete   bool // drop rows with a missing value in any selected numeric column

	numFmt string
	strFmt string
	log    *slog.Logger
}

func defaultOptions() Options {
	return Options{
		numFmt: DefaultNumericFormat,
		strFmt: DefaultStringFormat,
	}
}

// gatherOptions applies opts over the defaults and checks cross-option
// invariants.
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.complete && o.selectSet {
		panic(panicSelectBoth)
	}

	return o
}

// WithRows selects host rows by absolute number. Negative numbers count
// from the end of the dataset; duplicates and any order are kept.
// Calling WithRows() with no arguments selects no rows.
func WithRows(rows ...int) Option {
	cp := append(make([]int, 0, len(rows)), rows...)
	return func(o *Options) { o.rows, o.rowsSet = cp, true }
}

// WithCols selects host columns by absolute number (negatives from the end).
func WithCols(cols ...int) Option {
	cp := append(make([]int, 0, len(cols)), cols...)
	return func(o *Options) { o.cols, o.colNames, o.colsSet = cp, nil, true }
}

// WithColumnNames selects columns by name. Each argument may hold several
// whitespace-separated names; unique abbreviations resolve.
func WithColumnNames(names ...string) Option {
	var flat []string
	for _, n := range names {
		flat = append(flat, strings.Fields(n)...)
	}
	return func(o *Options) { o.cols, o.colNames, o.colsSet = nil, flat, true }
}

// WithSelectColumn keeps only rows whose value in the numeric column col
// is non-zero. Missing values are non-zero and are kept. Negative col
// counts from the last column.
func WithSelectColumn(col int) Option {
	return func(o *Options) { o.selectCol, o.selectName, o.selectSet = col, "", true }
}

// WithSelectName is WithSelectColumn with the column given by name.
func WithSelectName(name string) Option {
	return func(o *Options) { o.selectCol, o.selectName, o.selectSet = 0, name, true }
}

// WithCompleteCases keeps only rows with no missing value in any of the
// selected numeric columns. String columns never disqualify a row.
func WithCompleteCases() Option {
	return func(o *Options) { o.complete = true }
}

// WithNumericFormat sets the initial display format of numeric columns.
// Panics if f is not a numeric display format.
func WithNumericFormat(f string) Option {
	if !format.IsFmt(f) || format.IsStrFmt(f) {
		panic(panicNumericFormat)
	}
	return func(o *Options) { o.numFmt = f }
}

// WithStringFormat sets the initial display format of string columns.
// Panics if f is not a string display format.
func WithStringFormat(f string) Option {
	if !format.IsStrFmt(f) {
		panic(panicStringFormat)
	}
	return func(o *Options) { o.strFmt = f }
}

// WithLogger routes debug logging to l. A nil logger discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.log = l }
}
