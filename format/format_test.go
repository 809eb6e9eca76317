// SPDX-License-Identifier: MIT
package format_test

import (
	"testing"

	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/value"
	"github.com/stretchr/testify/require"
)

// TestGrammar walks the fixed validation table.
func TestGrammar(t *testing.T) {
	valid := []string{
		"%9.0g", "%10.0g", "%-9.2f", "%09.2f", "%12,3e", "%12.2fc", "%244.0g",
		"%11s", "%-20s", "%~15s", "%244s",
		"%td", "%-tc", "%tdDD/NN/CCYY", "%tcHH:MM:SS", "%tq", "%tbmycal", "%tbmycal:DD.NN",
		"%8H", "%16L", "%-16H", "%21x", "%-12x",
	}
	for _, f := range valid {
		require.True(t, format.IsFmt(f), f)
	}

	invalid := []string{
		"", "9.0g", "%0.0g", "%9.9g", "%245.0g", "%9.0d", "%0s", "%245s", "%s",
		"%tz", "%tdQQ", "%4H", "%20x", "%9g", "%-~9s",
	}
	for _, f := range invalid {
		require.False(t, format.IsFmt(f), f)
	}

	_, err := format.Parse("%9.9g")
	require.ErrorIs(t, err, format.ErrValue)
}

// TestClassPredicates separates string formats from the rest.
func TestClassPredicates(t *testing.T) {
	require.True(t, format.IsStrFmt("%11s"))
	require.False(t, format.IsStrFmt("%9.0g"))
	require.True(t, format.IsNumFmt("%9.0g"))
	require.True(t, format.IsNumFmt("%td"))
	require.False(t, format.IsNumFmt("%11s"))
	require.False(t, format.IsNumFmt("%bogus"))
}

// TestRenderNumeric covers the g/f/e verbs and flags.
func TestRenderNumeric(t *testing.T) {
	cases := []struct {
		f    string
		v    any
		want string
	}{
		{"%9.0g", 1, "        1"},
		{"%9.0g", 0.5, "       .5"},
		{"%9.0g", -0.5, "      -.5"},
		{"%9.0g", 3.25, "     3.25"},
		{"%10.0g", 0, "         0"},
		{"%-9.0g", 12, "12       "},
		{"%9.2f", 0.5, "     0.50"},
		{"%09.2f", -1.5, "-00001.50"},
		{"%12.2e", 1234.5, "    1.23e+03"},
		{"%12.1fc", 1234567.3, " 1,234,567.3"},
		{"%9,2f", 2.5, "     2,50"},
		{"%9.0g", value.Missing, "        ."},
		{"%-9.0g", nil, ".        "},
		{"%21x", 1.0, "              0x1p+00"},
		{"%16H", 1.0, "3ff0000000000000"},
		{"%8L", 1.0, "0000803f"},
	}
	for _, tc := range cases {
		got, err := format.Render(tc.f, tc.v)
		require.NoError(t, err, tc.f)
		require.Equal(t, tc.want, got, "%s of %v", tc.f, tc.v)
	}

	b, _ := value.SentinelOf(2)
	got, err := format.Render("%9.0g", b.Float64()) // raw encodings render by name
	require.NoError(t, err)
	require.Equal(t, "       .b", got)
}

// TestRenderString covers alignment, centering and truncation.
func TestRenderString(t *testing.T) {
	got, err := format.Render("%5s", "ab")
	require.NoError(t, err)
	require.Equal(t, "   ab", got)

	got, err = format.Render("%-5s", "ab")
	require.NoError(t, err)
	require.Equal(t, "ab   ", got)

	got, err = format.Render("%~6s", "ab")
	require.NoError(t, err)
	require.Equal(t, "  ab  ", got)

	got, err = format.Render("%3s", "abcdef")
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	_, err = format.Render("%5s", 1.0)
	require.ErrorIs(t, err, format.ErrType)
	_, err = format.Render("%9.0g", "x")
	require.ErrorIs(t, err, format.ErrType)
}

// TestRenderDate uses the 1960 epoch.
func TestRenderDate(t *testing.T) {
	cases := map[string]string{
		"%td": "01jan1960",
		"%tm": "1960m1",
		"%tq": "1960q1",
		"%ty": "0",
	}
	for f, want := range cases {
		got, err := format.Render(f, 0)
		require.NoError(t, err)
		require.Equal(t, want, got, f)
	}
	got, err := format.Render("%td", 366)
	require.NoError(t, err)
	require.Equal(t, "01jan1961", got) // 1960 is a leap year

	got, err = format.Render("%tm", -1)
	require.NoError(t, err)
	require.Equal(t, "1959m12", got)

	got, err = format.Render("%tc", 1000)
	require.NoError(t, err)
	require.Equal(t, "01jan1960 00:00:01", got)

	// clock values past the ±292 years a time.Duration can hold
	clock := map[float64]string{
		1e13:  "19nov2276 17:46:40",
		-1e13: "10feb1643 06:13:20",
		1e16:  "20may318847 17:46:40",
	}
	for x, want := range clock {
		got, err := format.Render("%tc", x)
		require.NoError(t, err)
		require.Equal(t, want, got, x)
	}
}

// TestNames covers the identifier validators.
func TestNames(t *testing.T) {
	require.True(t, format.IsName("_x1"))
	require.False(t, format.IsName("1x"))
	require.False(t, format.IsName("a234567890123456789012345678901234"))
	require.True(t, format.IsVarName("price"))
	require.False(t, format.IsVarName("_cons"))
	require.False(t, format.IsVarName("str20"))
	require.True(t, format.IsLMName("1abc"))
	require.False(t, format.IsLMName("a b"))
}
