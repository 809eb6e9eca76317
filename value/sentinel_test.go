// SPDX-License-Identifier: MIT
// Package value_test covers the sentinel registry: encoding, decoding and order.
package value_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tabview/value"
	"github.com/stretchr/testify/require"
)

// TestSentinelTable checks names, codes and raw encodings of all 27 entries.
func TestSentinelTable(t *testing.T) {
	all := value.Sentinels()
	require.Len(t, all, value.NumSentinels)

	require.Equal(t, ".", all[0].Name())                         // canonical
	require.Equal(t, ".a", all[1].Name())                        // first extended code
	require.Equal(t, ".z", all[26].Name())                       // last extended code
	require.Equal(t, 0x1.0p+1023, all[0].Float64())              // canonical raw encoding
	require.Equal(t, 9.045521364627034e+307, all[26].Float64())  // top of the band
	require.Equal(t, value.Missing, all[0])                      // zero value is canonical

	for i, s := range all {
		require.Equal(t, i, s.Code())
		got, ok := value.Classify(s.Float64()) // every raw encoding decodes back to itself
		require.True(t, ok)
		require.Equal(t, s, got)
		require.True(t, s.Truthy())
	}
}

// TestSentinelOfDomain ensures codes outside 0..26 fail with ErrDomain.
func TestSentinelOfDomain(t *testing.T) {
	s, err := value.SentinelOf(3)
	require.NoError(t, err)
	require.Equal(t, ".c", s.Name())

	_, err = value.SentinelOf(27)
	require.ErrorIs(t, err, value.ErrDomain)
	_, err = value.SentinelOf(-1)
	require.ErrorIs(t, err, value.ErrDomain)
}

// TestParseSentinel maps names back to sentinels.
func TestParseSentinel(t *testing.T) {
	s, err := value.ParseSentinel(".q")
	require.NoError(t, err)
	require.Equal(t, 17, s.Code())

	_, err = value.ParseSentinel("q")
	require.ErrorIs(t, err, value.ErrValue)
}

// TestClassify walks the band edges.
func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		miss bool
		code int
	}{
		{"zero", 0, false, 0},
		{"max non-missing", value.MaxNonMissing, false, 0},
		{"negative extreme", -math.MaxFloat64, false, 0},
		{"-inf", math.Inf(-1), false, 0},
		{"canonical", 0x1.0p+1023, true, 0},
		{"dot b", 0x1.002p+1023, true, 2},
		{"above .z", 0x1.01bp+1023, true, 0},
		{"max float", math.MaxFloat64, true, 0},
		{"+inf", math.Inf(1), true, 0},
		{"nan", math.NaN(), true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := value.Classify(tc.raw)
			require.Equal(t, tc.miss, ok)
			require.Equal(t, tc.code, s.Code())
		})
	}
}

// TestSentinelOrdering checks sentinel > number and order by code.
func TestSentinelOrdering(t *testing.T) {
	all := value.Sentinels()
	for i := range all {
		require.Equal(t, 1, all[i].CompareFloat(value.MaxNonMissing)) // greater than every finite number
		require.Equal(t, 1, all[i].CompareFloat(-1e300))
		for j := range all {
			want := 0
			if i > j {
				want = 1
			} else if i < j {
				want = -1
			}
			require.Equal(t, want, all[i].Compare(all[j]))
		}
	}
}

// TestSentinelEquality accepts the exact raw encoding only.
func TestSentinelEquality(t *testing.T) {
	b, _ := value.SentinelOf(2)
	require.True(t, b.EqualFloat(b.Float64()))
	require.False(t, b.EqualFloat(value.Missing.Float64()))
	require.True(t, value.Miss(b).Equal(value.Num(b.Float64()))) // scalar equality honours raw encodings
	require.False(t, value.Miss(b).Equal(value.Miss(value.Missing)))
}

// TestOutOfRange flags NaN and both tails beyond MaxNonMissing.
func TestOutOfRange(t *testing.T) {
	require.False(t, value.OutOfRange(value.MaxNonMissing))
	require.False(t, value.OutOfRange(-value.MaxNonMissing))
	require.True(t, value.OutOfRange(math.MaxFloat64))
	require.True(t, value.OutOfRange(-math.MaxFloat64))
	require.True(t, value.OutOfRange(math.NaN()))
	require.Equal(t, value.Missing, value.Decode(1.5)) // ordinary numbers decode to canonical
}
