// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/tabview/display"
	"github.com/katalvlaran/tabview/format"
	"github.com/katalvlaran/tabview/index"
)

// Render lays the view out as a labelled listing:
//
//	  {txt}obs: 3
//	 vars: 2
//
//	{txt}          c0        c1
//	{txt}r0{res}         1         2
//
// The header gives distinct rows and columns, adding the positional
// counts when duplicates make them differ. Labels are absolute host
// coordinates; row labels are right-aligned to the widest one and each
// column label to the width of that column's first rendered cell.
func (t *Table) Render() (string, error) {
	nobs, nvar := strconv.Itoa(t.nobs), strconv.Itoa(t.nvar)
	m := max(len(nobs), len(nvar))
	var b strings.Builder
	b.WriteString("\n  {txt}obs: ")
	b.WriteString(display.PadLeft(nobs, m))
	if len(t.rows) != t.nobs {
		fmt.Fprintf(&b, " (%d rows)", len(t.rows))
	}
	b.WriteString("\n vars: ")
	b.WriteString(display.PadLeft(nvar, m))
	if len(t.cols) != t.nvar {
		fmt.Fprintf(&b, " (%d columns)", len(t.cols))
	}
	b.WriteString("\n\n")
	if len(t.rows) == 0 || len(t.cols) == 0 {
		return b.String(), nil
	}

	cells := make([][]string, len(t.rows))
	for i, r := range t.rows {
		cells[i] = make([]string, len(t.cols))
		for j, c := range t.cols {
			s, err := t.access[j].get(t.h, r, c)
			if err != nil {
				return "", fmt.Errorf("Table.Render: %w", err)
			}
			if cells[i][j], err = format.Render(t.formats[j], s); err != nil {
				return "", fmt.Errorf("Table.Render: column %d: %w", c, err)
			}
		}
	}

	labelWidth := len(strconv.Itoa(index.Max(t.rows))) + 1
	rowLabel := func(label string) string { return "{txt}" + display.PadLeft(label, labelWidth) }

	head := make([]string, 0, len(t.cols)+1)
	head = append(head, rowLabel(""))
	for j, c := range t.cols {
		head = append(head, display.PadLeft("c"+strconv.Itoa(c), utf8.RuneCountInString(cells[0][j])))
	}
	b.WriteString(strings.Join(head, " "))
	for i, r := range t.rows {
		b.WriteString("\n")
		b.WriteString(rowLabel("r"+strconv.Itoa(r)) + "{res}")
		for _, cell := range cells[i] {
			b.WriteString(" ")
			b.WriteString(cell)
		}
	}

	return b.String(), nil
}

// String implements fmt.Stringer; read errors are rendered inline.
func (t *Table) String() string {
	s, err := t.Render()
	if err != nil {
		return "{err}" + err.Error()
	}

	return s
}

// List writes the listing to w.
func (t *Table) List(w display.Writer) error {
	s, err := t.Render()
	if err != nil {
		return err
	}

	return w.Display(s + "\n")
}
