// SPDX-License-Identifier: MIT

package view_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabview/display"
	"github.com/katalvlaran/tabview/host/memhost"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/value"
	"github.com/katalvlaran/tabview/view"
)

// TestRenderLayout pins the listing layout of a plain numeric table.
func TestRenderLayout(t *testing.T) {
	v := MustTable(t, scenario(t))

	want := "\n  {txt}obs: 3\n vars: 2\n\n" +
		"{txt}          c0        c1\n" +
		"{txt}r0{res}         1         2\n" +
		"{txt}r1{res}         3         4\n" +
		"{txt}r2{res}         5         6"
	got, err := v.Render()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, want, v.String())
}

// TestRenderDuplicates reports positional counts next to distinct counts.
func TestRenderDuplicates(t *testing.T) {
	v := MustTable(t, scenario(t))
	d, err := v.Sub(index.Positions(0, 0), index.At(1))
	require.NoError(t, err)

	want := "\n  {txt}obs: 1 (2 rows)\n vars: 1\n\n" +
		"{txt}          c1\n" +
		"{txt}r0{res}         2\n" +
		"{txt}r0{res}         2"
	require.Equal(t, want, d.String())
}

// TestRenderStringsAndMissing truncates strings and names missing values.
func TestRenderStringsAndMissing(t *testing.T) {
	s := memhost.New(2)
	dotA, err := value.ParseSentinel(".a")
	require.NoError(t, err)
	require.NoError(t, s.AddNumeric("price", []float64{1, dotA.Float64()}))
	require.NoError(t, s.AddString("make", []string{"AMC", "Buick Skylark"}))
	v := MustTable(t, s)

	want := "\n  {txt}obs: 2\n vars: 2\n\n" +
		"{txt}          c0          c1\n" +
		"{txt}r0{res}         1         AMC\n" +
		"{txt}r1{res}        .a Buick Skyla"
	require.Equal(t, want, v.String())

	require.NoError(t, v.Format(1, "%-5s"))
	want = "\n  {txt}obs: 2\n vars: 2\n\n" +
		"{txt}          c0    c1\n" +
		"{txt}r0{res}         1 AMC  \n" +
		"{txt}r1{res}        .a Buick"
	require.Equal(t, want, v.String())
}

// TestRenderEmpty prints only the header.
func TestRenderEmpty(t *testing.T) {
	v := MustTable(t, scenario(t), view.WithRows())
	require.Equal(t, "\n  {txt}obs: 0\n vars: 2\n\n", v.String())

	wide := MustStore(t, 12, make([]float64, 12))
	w := MustTable(t, wide, view.WithCols())
	require.Equal(t, "\n  {txt}obs: 12\n vars:  0\n\n", w.String())
}

// TestRenderWideLabels right-aligns row labels to the largest row number.
func TestRenderWideLabels(t *testing.T) {
	s := MustStore(t, 12, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11})
	v := MustTable(t, s, view.WithRows(11, 2), view.WithNumericFormat("%4.0f"))

	want := "\n  {txt}obs: 2\n vars: 1\n\n" +
		"{txt}      c0\n" +
		"{txt}r11{res}   11\n" +
		"{txt} r2{res}    2"
	require.Equal(t, want, v.String())
}

// TestList writes through a display.Writer.
func TestList(t *testing.T) {
	v := MustTable(t, scenario(t))
	var plain, smcl bytes.Buffer

	require.NoError(t, v.List(display.NewWriter(&plain, nil)))
	require.Equal(t, display.StripSMCL(v.String())+"\n", plain.String())

	require.NoError(t, v.List(display.NewWriter(&smcl, nil, display.WithSMCL())))
	require.Equal(t, v.String()+"\n", smcl.String())
}
