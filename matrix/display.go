// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/tabview/display"
	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/index"
)

// Render lays the view out with the shared format:
//
//	{txt}A[2,3]
//	{txt}           c0         c1         c2
//	{txt}r0{res}          1          2          3
//
// Column labels are right-aligned to the width the format gives a zero;
// row labels to the digits of the largest row number plus one.
func (v *View) Render() (string, error) { return v.render(v.format) }

// render MAIN DESCRIPTION:
//   - Produce the listing of Render using f in place of the view's format.
//
// Notes:
//   - With no rows the listing ends after the column header line.
func (v *View) render(f string) (string, error) {
	zero, err := format.Render(f, 0)
	if err != nil {
		return "", fmt.Errorf("View.Render: %w", err)
	}
	width := utf8.RuneCountInString(zero)

	ndigits := 1
	if top := index.Max(v.rows); top > 0 {
		ndigits = len(strconv.Itoa(top))
	}
	rowLabel := func(label string) string { return "{txt}" + display.PadLeft(label, ndigits+1) }

	var b strings.Builder
	fmt.Fprintf(&b, "\n{txt}%s[%d,%d]\n", v.name, len(v.rows), len(v.cols))
	b.WriteString(rowLabel(""))
	b.WriteString(" ")
	for j, c := range v.cols {
		if j > 0 {
			b.WriteString(" ")
		}
		b.WriteString(display.PadLeft("c"+strconv.Itoa(c), width))
	}
	b.WriteString("\n")

	for i, r := range v.rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rowLabel("r" + strconv.Itoa(r)))
		b.WriteString("{res} ")
		for j, c := range v.cols {
			s, err := v.element(r, c)
			if err != nil {
				return "", fmt.Errorf("View.Render: %w", err)
			}
			cell, err := format.Render(f, s)
			if err != nil {
				return "", fmt.Errorf("View.Render: %w", err)
			}
			if j > 0 {
				b.WriteString(" ")
			}
			b.WriteString(cell)
		}
	}

	return b.String(), nil
}

// String implements fmt.Stringer; read errors are rendered inline.
func (v *View) String() string {
	s, err := v.Render()
	if err != nil {
		return "{err}" + err.Error()
	}

	return s
}

// List writes the listing to w.
func (v *View) List(w display.Writer) error { return v.ListFormat(w, "") }

// ListFormat writes the listing to w using f for this call only. An empty
// f means the view's own format.
// Errors: ErrValue when f is not a numeric format.
func (v *View) ListFormat(w display.Writer, f string) error {
	if f == "" {
		f = v.format
	} else if _, err := ValidateFormat(f); err != nil {
		return fmt.Errorf("View.ListFormat: %w", err)
	}
	s, err := v.render(f)
	if err != nil {
		return err
	}

	return w.Display(s + "\n")
}
