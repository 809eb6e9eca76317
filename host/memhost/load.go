// SPDX-License-Identifier: MIT

package memhost

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabview/errs"
	"github.com/katalvlaran/tabview/value"
)

// Column kinds accepted by the dataset file.
const (
	KindNumeric = "numeric"
	KindString  = "string"
)

// Dataset is the YAML document read by LoadYAML:
//
//	rows: 3
//	columns:
//	  - {name: price, type: numeric, values: [1, ".", ".a"]}
//	  - {name: make,  type: string,  values: [a, b, c]}
//	matrices:
//	  - {name: A, rows: 2, cols: 2, values: [1, 2, 3, 4]}
//
// Numeric cells accept numbers, null (the canonical missing value) and the
// quoted missing names "." and ".a" .. ".z". Rows may be omitted when at
// least one column is present.
type Dataset struct {
	Rows     *int         `yaml:"rows,omitempty"`
	Columns  []ColumnSpec `yaml:"columns"`
	Matrices []MatrixSpec `yaml:"matrices,omitempty"`
}

// ColumnSpec is one column of a Dataset.
type ColumnSpec struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Values []any  `yaml:"values"`
}

// MatrixSpec is one matrix of a Dataset (row-major values).
type MatrixSpec struct {
	Name   string `yaml:"name"`
	Rows   int    `yaml:"rows"`
	Cols   int    `yaml:"cols"`
	Values []any  `yaml:"values"`
}

// LoadYAML decodes a Dataset and builds a Store from it.
// Errors: decoding failures, errs.ErrValue for unknown column types,
// errs.ErrType for cells of the wrong kind, errs.ErrShape for length mismatches.
func LoadYAML(r io.Reader) (*Store, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("memhost: decode dataset: %w", err)
	}

	return FromDataset(ds)
}

// FromDataset builds a Store from an already decoded Dataset.
func FromDataset(ds Dataset) (*Store, error) {
	rows := 0
	switch {
	case ds.Rows != nil:
		rows = *ds.Rows
	case len(ds.Columns) > 0:
		rows = len(ds.Columns[0].Values)
	}
	if rows < 0 {
		return nil, fmt.Errorf("memhost: negative row count %d: %w", rows, errs.ErrShape)
	}

	s := New(rows)
	for _, c := range ds.Columns {
		var err error
		switch c.Type {
		case KindNumeric, "":
			var vals []float64
			if vals, err = rawCells(c.Name, c.Values); err == nil {
				err = s.AddNumeric(c.Name, vals)
			}
		case KindString:
			vals := make([]string, len(c.Values))
			for i, v := range c.Values {
				txt, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("memhost: column %q cell %d is %T, want string: %w", c.Name, i, v, errs.ErrType)
				}
				vals[i] = txt
			}
			err = s.AddString(c.Name, vals)
		default:
			err = fmt.Errorf("memhost: column %q has unknown type %q: %w", c.Name, c.Type, errs.ErrValue)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, m := range ds.Matrices {
		vals, err := rawCells(m.Name, m.Values)
		if err != nil {
			return nil, err
		}
		if err = s.AddMatrix(m.Name, m.Rows, m.Cols, vals); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// rawCells converts decoded YAML cells into raw host doubles.
func rawCells(name string, cells []any) ([]float64, error) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		if txt, ok := c.(string); ok {
			m, err := value.ParseSentinel(txt)
			if err != nil {
				return nil, fmt.Errorf("memhost: %q cell %d: %q is neither a number nor a missing code: %w", name, i, txt, errs.ErrType)
			}
			out[i] = m.Float64()
			continue
		}
		s, err := value.From(c)
		if err != nil {
			return nil, fmt.Errorf("memhost: %q cell %d: %w", name, i, err)
		}
		raw, _ := s.Raw()
		out[i] = raw
	}

	return out, nil
}
