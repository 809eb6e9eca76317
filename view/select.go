// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/value"
)

// selectNonZero keeps rows whose value in the selection column is not 0.
// The column is given by name when name is non-empty, else by number.
func selectNonZero(h host.Data, rows []int, col int, name string, nvar int) ([]int, error) {
	var err error
	if name != "" {
		if col, err = h.ColumnIndex(name, true); err != nil {
			return nil, err
		}
	} else if col, err = index.Wrap(col, nvar, "selection column"); err != nil {
		return nil, err
	}
	isStr, err := h.ColumnIsString(col)
	if err != nil {
		return nil, err
	}
	if isStr {
		return nil, fmt.Errorf("selection column %d holds strings: %w", col, ErrType)
	}

	kept := make([]int, 0, len(rows))
	for _, r := range rows {
		raw, err := h.Numeric(r, col)
		if err != nil {
			return nil, err
		}
		if raw != 0 {
			kept = append(kept, r)
		}
	}

	return kept, nil
}

// completeCases keeps rows with no missing value in any numeric column of cols.
func completeCases(h host.Data, rows, cols []int, access []*cellAccess) ([]int, error) {
	numeric := make([]int, 0, len(cols))
	for k, c := range cols {
		if !access[k].isString {
			numeric = append(numeric, c)
		}
	}

	kept := make([]int, 0, len(rows))
next:
	for _, r := range rows {
		for _, c := range numeric {
			raw, err := h.Numeric(r, c)
			if err != nil {
				return nil, err
			}
			if _, missing := value.Classify(raw); missing {
				continue next
			}
		}
		kept = append(kept, r)
	}

	return kept, nil
}
