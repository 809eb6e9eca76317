// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabview/matrix"
)

// TestValidateFormat accepts every numeric class and rejects the rest.
func TestValidateFormat(t *testing.T) {
	cases := []struct {
		f    string
		want error
	}{
		{"%10.0g", nil},
		{"%12.2fc", nil},
		{"%td", nil},
		{"%-12s", matrix.ErrValue},
		{"10.0g", matrix.ErrValue},
		{"", matrix.ErrValue},
	}
	for _, tc := range cases {
		t.Run(tc.f, func(t *testing.T) {
			spec, err := matrix.ValidateFormat(tc.f)
			if tc.want == nil {
				require.NoError(t, err)
				require.Equal(t, tc.f, spec.Raw)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateDims reports unknown and degenerate matrices as not found.
func TestValidateDims(t *testing.T) {
	s := scenario(t)

	r, c, err := matrix.ValidateDims(s, "A")
	require.NoError(t, err)
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	_, _, err = matrix.ValidateDims(s, "nope")
	require.ErrorIs(t, err, matrix.ErrNotFound)
	_, _, err = matrix.ValidateDims(flatHost{s}, "A")
	require.ErrorIs(t, err, matrix.ErrNotFound)
	require.Contains(t, err.Error(), "cannot find matrix")
}
