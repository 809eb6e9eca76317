// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/logging"
	"github.com/katalvlaran/tabview/value"
	"github.com/katalvlaran/tabview/variable"
)

// Mirror is a full-extent view whose extent is read from the host on every
// call, so it follows a dataset that grows or shrinks. Coordinates are
// absolute. Mirror is the variable.Source behind named column proxies.
type Mirror struct {
	h   host.Data
	log *slog.Logger
}

var _ variable.Source = (*Mirror)(nil)

// NewMirror returns a mirror of h. A nil logger discards.
func NewMirror(h host.Data, log *slog.Logger) *Mirror {
	return &Mirror{h: h, log: logging.OrDiscard(log)}
}

// Len returns the current row count.
func (m *Mirror) Len() int { return m.h.RowCount() }

// NCols returns the current column count.
func (m *Mirror) NCols() int { return m.h.ColumnCount() }

// Index resolves a column name or unique abbreviation.
func (m *Mirror) Index(name string) (int, error) {
	c, err := m.h.ColumnIndex(name, true)
	if err != nil {
		return 0, fmt.Errorf("Mirror.Index(%q): %w", name, err)
	}

	return c, nil
}

// Get reads the cell at absolute (row, col).
func (m *Mirror) Get(row, col int) (value.Scalar, error) {
	isStr, err := m.h.ColumnIsString(col)
	if err != nil {
		return value.Null, fmt.Errorf("Mirror.Get(%d,%d): %w", row, col, err)
	}
	s, err := accessFor(isStr).get(m.h, row, col)
	if err != nil {
		return value.Null, fmt.Errorf("Mirror.Get(%d,%d): %w", row, col, err)
	}

	return s, nil
}

// Table returns a Table over the current full extent.
func (m *Mirror) Table() (*Table, error) {
	return New(m.h, WithLogger(m.log))
}

// Sub returns a Table over the rows and columns selected from the current
// full extent.
func (m *Mirror) Sub(rows, cols index.Spec) (*Table, error) {
	t, err := m.Table()
	if err != nil {
		return nil, err
	}

	return t.Sub(rows, cols)
}

// Set writes a block, with Table.Set semantics, over the current extent.
func (m *Mirror) Set(rows, cols index.Spec, v any) error {
	t, err := m.Table()
	if err != nil {
		return err
	}

	return t.Set(rows, cols, v)
}

// Variable returns a live proxy for the named column. Abbreviations are
// expanded to the full name once, here.
func (m *Mirror) Variable(name string) (*variable.Proxy, error) {
	c, err := m.Index(name)
	if err != nil {
		return nil, err
	}
	full, err := m.h.ColumnName(c)
	if err != nil {
		return nil, fmt.Errorf("Mirror.Variable(%q): %w", name, err)
	}

	return variable.New(m, full), nil
}

// SetVariable replaces every value of the named column. values must hold
// exactly Len values (a lone value is accepted when Len is 1).
// Errors: host name errors, ErrShape for a length mismatch, ErrType for
// values of the wrong kind.
func (m *Mirror) SetVariable(name string, values any) error {
	c, err := m.Index(name)
	if err != nil {
		return err
	}
	if err = m.Set(index.All(), index.At(c), values); err != nil {
		return fmt.Errorf("Mirror.SetVariable(%q): %w", name, err)
	}
	m.log.Debug("view: variable replaced", "name", name, "col", c, "rows", m.Len())

	return nil
}
