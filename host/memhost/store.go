// SPDX-License-Identifier: MIT
// Package memhost - in-memory implementation of host.Data and host.Matrices.
//
// Purpose:
//   - Reference host for tests, examples and the CLI.
//   - Numeric columns hold raw doubles (sentinels stored by encoding),
//     string columns hold Go strings, matrices are gonum *mat.Dense.
//
// Concurrency:
//   - Every accessor takes the store's RWMutex for exactly one cell,
//     the single-cell atomicity a host promises. Multi-cell consistency is
//     the caller's business.

package memhost

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tabview/errs"
	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/host"
)

type column struct {
	name     string
	isString bool
	num      []float64
	str      []string
}

// Store is an in-memory dataset plus named matrices.
type Store struct {
	mu   sync.RWMutex
	rows int
	cols []column
	mats map[string]*mat.Dense
}

var (
	_ host.Data     = (*Store)(nil)
	_ host.Matrices = (*Store)(nil)
)

// New returns an empty store with a fixed row count.
func New(rows int) *Store {
	if rows < 0 {
		panic("memhost: New: negative row count")
	}

	return &Store{rows: rows, mats: make(map[string]*mat.Dense)}
}

func (s *Store) checkNewColumn(name string, n int) error {
	if !format.IsVarName(name) {
		return fmt.Errorf("memhost: %q is not a valid column name: %w", name, errs.ErrValue)
	}
	for _, c := range s.cols {
		if c.name == name {
			return fmt.Errorf("memhost: column %q already defined: %w", name, errs.ErrValue)
		}
	}
	if n != s.rows {
		return fmt.Errorf("memhost: column %q has %d values, store has %d rows: %w", name, n, s.rows, errs.ErrShape)
	}

	return nil
}

// AddNumeric appends a numeric column holding raw doubles (copied).
func (s *Store) AddNumeric(name string, vals []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkNewColumn(name, len(vals)); err != nil {
		return err
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	s.cols = append(s.cols, column{name: name, num: cp})

	return nil
}

// AddString appends a string column (copied).
func (s *Store) AddString(name string, vals []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkNewColumn(name, len(vals)); err != nil {
		return err
	}
	cp := make([]string, len(vals))
	copy(cp, vals)
	s.cols = append(s.cols, column{name: name, isString: true, str: cp})

	return nil
}

// AddMatrix registers (or replaces) an r×c matrix from row-major data.
func (s *Store) AddMatrix(name string, r, c int, data []float64) error {
	if !format.IsName(name) {
		return fmt.Errorf("memhost: %q is not a valid matrix name: %w", name, errs.ErrValue)
	}
	if r <= 0 || c <= 0 || len(data) != r*c {
		return fmt.Errorf("memhost: matrix %q wants %d×%d = %d values, got %d: %w", name, r, c, r*c, len(data), errs.ErrShape)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	s.mu.Lock()
	s.mats[name] = mat.NewDense(r, c, cp)
	s.mu.Unlock()

	return nil
}

// Matrix returns a copy of the named matrix.
func (s *Store) Matrix(name string) (*mat.Dense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mats[name]
	if !ok {
		return nil, false
	}

	return mat.DenseCopyOf(m), true
}

// MatrixNames lists matrix names in sorted order.
func (s *Store) MatrixNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.mats))
	for n := range s.mats {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// RowCount implements host.Data.
func (s *Store) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rows
}

// ColumnCount implements host.Data.
func (s *Store) ColumnCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cols)
}

// col returns column j; caller holds the lock.
func (s *Store) col(j int) (*column, error) {
	if j < 0 || j >= len(s.cols) {
		return nil, fmt.Errorf("memhost: column %d outside [0, %d): %w", j, len(s.cols), errs.ErrOutOfRange)
	}

	return &s.cols[j], nil
}

// cell validates (i, j); caller holds the lock.
func (s *Store) cell(i, j int) (*column, error) {
	c, err := s.col(j)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= s.rows {
		return nil, fmt.Errorf("memhost: row %d outside [0, %d): %w", i, s.rows, errs.ErrOutOfRange)
	}

	return c, nil
}

// ColumnIsString implements host.Data.
func (s *Store) ColumnIsString(j int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.col(j)
	if err != nil {
		return false, err
	}

	return c.isString, nil
}

// Numeric implements host.Data.
func (s *Store) Numeric(i, j int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.cell(i, j)
	if err != nil {
		return 0, err
	}
	if c.isString {
		return 0, fmt.Errorf("memhost: column %q is a string column: %w", c.name, errs.ErrType)
	}

	return c.num[i], nil
}

// SetNumeric implements host.Data.
func (s *Store) SetNumeric(i, j int, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cell(i, j)
	if err != nil {
		return err
	}
	if c.isString {
		return fmt.Errorf("memhost: column %q is a string column: %w", c.name, errs.ErrType)
	}
	c.num[i] = v

	return nil
}

// String implements host.Data.
func (s *Store) String(i, j int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.cell(i, j)
	if err != nil {
		return "", err
	}
	if !c.isString {
		return "", fmt.Errorf("memhost: column %q is numeric: %w", c.name, errs.ErrType)
	}

	return c.str[i], nil
}

// SetString implements host.Data.
func (s *Store) SetString(i, j int, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cell(i, j)
	if err != nil {
		return err
	}
	if !c.isString {
		return fmt.Errorf("memhost: column %q is numeric: %w", c.name, errs.ErrType)
	}
	c.str[i] = v

	return nil
}

// ColumnIndex implements host.Data. An exact name always wins; with abbrev
// a unique prefix also resolves.
// Errors: errs.ErrValue for an ambiguous prefix, errs.ErrNotFound otherwise.
func (s *Store) ColumnIndex(name string, abbrev bool) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for j, c := range s.cols {
		if c.name == name {
			return j, nil
		}
	}
	if abbrev && name != "" {
		var hits []int
		for j, c := range s.cols {
			if strings.HasPrefix(c.name, name) {
				hits = append(hits, j)
			}
		}
		switch len(hits) {
		case 1:
			return hits[0], nil
		case 0:
		default:
			names := make([]string, len(hits))
			for k, j := range hits {
				names[k] = s.cols[j].name
			}
			return -1, fmt.Errorf("memhost: %q is ambiguous (%s): %w", name, strings.Join(names, ", "), errs.ErrValue)
		}
	}

	return -1, fmt.Errorf("memhost: column %q not found: %w", name, errs.ErrNotFound)
}

// ColumnName implements host.Data.
func (s *Store) ColumnName(j int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.col(j)
	if err != nil {
		return "", err
	}

	return c.name, nil
}

// MatrixRows implements host.Matrices.
func (s *Store) MatrixRows(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mats[name]
	if !ok {
		return -1
	}
	r, _ := m.Dims()

	return r
}

// MatrixCols implements host.Matrices.
func (s *Store) MatrixCols(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mats[name]
	if !ok {
		return -1
	}
	_, c := m.Dims()

	return c
}

// element validates (name, i, j); caller holds the lock.
func (s *Store) element(name string, i, j int) (*mat.Dense, error) {
	m, ok := s.mats[name]
	if !ok {
		return nil, fmt.Errorf("memhost: matrix %q not found: %w", name, errs.ErrNotFound)
	}
	r, c := m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return nil, fmt.Errorf("memhost: %s[%d,%d] outside %d×%d: %w", name, i, j, r, c, errs.ErrOutOfRange)
	}

	return m, nil
}

// MatrixElement implements host.Matrices.
func (s *Store) MatrixElement(name string, i, j int) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, err := s.element(name, i, j)
	if err != nil {
		return 0, err
	}

	return m.At(i, j), nil
}

// SetMatrixElement implements host.Matrices.
func (s *Store) SetMatrixElement(name string, i, j int, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.element(name, i, j)
	if err != nil {
		return err
	}
	m.Set(i, j, v)

	return nil
}
