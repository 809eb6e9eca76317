// SPDX-License-Identifier: MIT
// Package matrix_test - shared fixtures for View tests.
//
// Purpose:
//   - Build small in-memory hosts with one or more named matrices.
//   - Provide host wrappers that misbehave on purpose (zero dimensions,
//     failing setters) so error paths can be driven deterministically.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabview/host/memhost"
	"github.com/katalvlaran/tabview/matrix"
	"github.com/katalvlaran/tabview/value"
)

// errBoom is returned by failing hosts.
var errBoom = errors.New("boom")

// MustStore returns a store holding the r×c matrix name with row-major data.
func MustStore(t *testing.T, name string, r, c int, data ...float64) *memhost.Store {
	t.Helper()
	s := memhost.New(0)
	require.NoError(t, s.AddMatrix(name, r, c, data))

	return s
}

// MustView builds a View or fails the test.
func MustView(t *testing.T, s *memhost.Store, name string, opts ...matrix.Option) *matrix.View {
	t.Helper()
	v, err := matrix.New(s, name, opts...)
	require.NoError(t, err)

	return v
}

// scenario is the 3×2 matrix [[1,2],[3,4],[5,6]] named A.
func scenario(t *testing.T) *memhost.Store {
	t.Helper()
	return MustStore(t, "A", 3, 2, 1, 2, 3, 4, 5, 6)
}

// raw reads the whole host matrix back as raw doubles.
func raw(t *testing.T, s *memhost.Store, name string) [][]float64 {
	t.Helper()
	d, ok := s.Matrix(name)
	require.True(t, ok)
	r, c := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = d.At(i, j)
		}
	}

	return out
}

// sentinel parses a missing-value name or fails the test.
func sentinel(t *testing.T, name string) value.Sentinel {
	t.Helper()
	m, err := value.ParseSentinel(name)
	require.NoError(t, err)

	return m
}

// flatHost reports a zero dimension for every matrix.
type flatHost struct{ *memhost.Store }

func (flatHost) MatrixCols(string) int { return 0 }

// failing rejects writes to one matrix row.
type failing struct {
	*memhost.Store
	failRow int
}

func (f failing) SetMatrixElement(name string, i, j int, v float64) error {
	if i == f.failRow {
		return errBoom
	}
	return f.Store.SetMatrixElement(name, i, j, v)
}
