// SPDX-License-Identifier: MIT
package value_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tabview/value"
	"github.com/stretchr/testify/require"
)

var allOps = []value.Op{
	value.OpAdd, value.OpSub, value.OpMul, value.OpDiv,
	value.OpFloorDiv, value.OpMod, value.OpPow,
}

// TestSentinelAbsorption: every operator with any sentinel operand yields ".".
func TestSentinelAbsorption(t *testing.T) {
	others := []value.NumericLike{
		value.Num(0), value.Num(-3.5), value.Num(1e300), value.Null,
		value.Str("x"), value.Missing,
	}
	for _, s := range value.Sentinels() {
		for _, op := range allOps {
			for _, o := range others {
				r, err := value.Binary(op, s, o)
				require.NoError(t, err)
				require.Equal(t, value.Miss(value.Missing), r, "%s %s %v", s, op, o)

				r, err = value.Binary(op, o, s)
				require.NoError(t, err)
				require.Equal(t, value.Miss(value.Missing), r, "%v %s %s", o, op, s)
			}
		}
		neg, err := value.Neg(s)
		require.NoError(t, err)
		require.Equal(t, value.Miss(value.Missing), neg)

		abs, err := value.Abs(s) // abs and round keep the sentinel
		require.NoError(t, err)
		require.Equal(t, value.Miss(s), abs)
		rnd, err := value.Round(s)
		require.NoError(t, err)
		require.Equal(t, value.Miss(s), rnd)

		q, r, err := value.DivMod(s, value.Num(2))
		require.NoError(t, err)
		require.Equal(t, value.Miss(value.Missing), q)
		require.Equal(t, value.Miss(value.Missing), r)
	}
}

// TestNumericOps covers plain arithmetic, zero division and range clamp.
func TestNumericOps(t *testing.T) {
	cases := []struct {
		op   value.Op
		a, b float64
		want value.Scalar
	}{
		{value.OpAdd, 1, 2, value.Num(3)},
		{value.OpSub, 1, 2, value.Num(-1)},
		{value.OpMul, 3, 4, value.Num(12)},
		{value.OpDiv, 1, 4, value.Num(0.25)},
		{value.OpDiv, 1, 0, value.Miss(value.Missing)},
		{value.OpFloorDiv, -7, 2, value.Num(-4)},
		{value.OpMod, -7, 3, value.Num(2)},
		{value.OpMod, 7, -3, value.Num(-2)},
		{value.OpMod, 7, 0, value.Miss(value.Missing)},
		{value.OpPow, 2, 10, value.Num(1024)},
		{value.OpPow, -8, 1.0 / 3, value.Miss(value.Missing)},          // NaN
		{value.OpMul, 1e200, 1e200, value.Miss(value.Missing)},         // overflow
		{value.OpAdd, value.MaxNonMissing, value.MaxNonMissing, value.Miss(value.Missing)},
	}
	for _, tc := range cases {
		got, err := value.Binary(tc.op, value.Num(tc.a), value.Num(tc.b))
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%v %s %v", tc.a, tc.op, tc.b)
	}
}

// TestStringOps: concatenation is the only string arithmetic.
func TestStringOps(t *testing.T) {
	r, err := value.Add(value.Str("ab"), value.Str("cd"))
	require.NoError(t, err)
	require.Equal(t, value.Str("abcd"), r)

	_, err = value.Sub(value.Str("ab"), value.Str("cd"))
	require.ErrorIs(t, err, value.ErrType)
	_, err = value.Add(value.Str("ab"), value.Num(1))
	require.ErrorIs(t, err, value.ErrType)
	_, err = value.Neg(value.Str("ab"))
	require.ErrorIs(t, err, value.ErrType)
}

// TestVectorBroadcast covers zip truncation and scalar broadcast on both sides.
func TestVectorBroadcast(t *testing.T) {
	x := value.Floats(1, 2, 3)
	y := value.Floats(10, 20)

	r, err := value.Add(x, y)
	require.NoError(t, err)
	require.Equal(t, value.Floats(11, 22), r) // truncated to shorter

	r, err = value.Sub(x, value.Num(1))
	require.NoError(t, err)
	require.Equal(t, value.Floats(0, 1, 2), r)

	r, err = value.Sub(value.Num(10), x)
	require.NoError(t, err)
	require.Equal(t, value.Floats(9, 8, 7), r)

	withMissing := value.Vector{value.Num(1), value.Miss(value.Missing), value.Null}
	r, err = value.Mul(withMissing, value.Num(2))
	require.NoError(t, err)
	require.Equal(t, value.Vector{value.Num(2), value.Miss(value.Missing), value.Miss(value.Missing)}, r)

	_, err = value.Add(value.Vector{value.Str("a")}, value.Num(1))
	require.ErrorIs(t, err, value.ErrType)
}

// TestCompare orders numbers below sentinels and rejects mixed strings.
func TestCompare(t *testing.T) {
	a, _ := value.SentinelOf(1)
	c, err := value.Compare(value.Miss(a), value.Num(math.MaxFloat64/2))
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = value.Compare(value.Num(1), value.Null)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = value.Compare(value.Miss(value.Missing), value.Miss(a))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = value.Compare(value.Str("a"), value.Str("b"))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	_, err = value.Compare(value.Str("a"), value.Num(1))
	require.ErrorIs(t, err, value.ErrType)
}

// TestCmpVector yields 0/1 numbers element-wise.
func TestCmpVector(t *testing.T) {
	x := value.Vector{value.Num(1), value.Num(5), value.Miss(value.Missing)}
	r, err := value.Cmp(value.CmpGt, x, value.Num(2))
	require.NoError(t, err)
	require.Equal(t, value.Floats(0, 1, 1), r) // missing > every number

	r, err = value.Cmp(value.CmpEq, x, value.Vector{value.Num(1), value.Num(4)})
	require.NoError(t, err)
	require.Equal(t, value.Floats(1, 0), r)
}

// TestFrom converts Go values and rejects the rest.
func TestFrom(t *testing.T) {
	s, err := value.From(int64(4))
	require.NoError(t, err)
	require.Equal(t, value.Num(4), s)

	s, err = value.From(value.Missing.Float64())
	require.NoError(t, err)
	require.Equal(t, value.Miss(value.Missing), s) // raw encodings decode

	s, err = value.From(nil)
	require.NoError(t, err)
	require.True(t, s.IsNull())

	_, err = value.From(struct{}{})
	require.ErrorIs(t, err, value.ErrType)

	v, err := value.VectorOf(1, "a", nil)
	require.NoError(t, err)
	require.Equal(t, "[1 \"a\" <null>]", v.String())
}
