// SPDX-License-Identifier: MIT

// Package variable binds one named column of a live source to a small
// façade that reads and writes it.
//
// A Proxy stores nothing but the column name. Every call looks the name up
// again through the source, so a proxy keeps working when columns are
// reordered, and every read walks rows 0..Len-1 of the source afresh.
//
// Values returns a value.Vector, which plugs directly into the arithmetic
// of package value:
//
//	in1, _ := src.Variable("input1")
//	in2, _ := src.Variable("input2")
//	a, _ := in1.Values()
//	b, _ := in2.Values()
//	twice, _ := value.Mul(value.Num(2), b)
//	diff, _ := value.Sub(a, twice)
//	_ = target.SetValues(diff)
package variable

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tabview/index"
	"github.com/katalvlaran/tabview/value"
)

// Source is the live full-extent dataset a proxy reads through.
// Coordinates passed to Get are absolute.
type Source interface {
	Len() int
	Index(name string) (int, error)
	Get(row, col int) (value.Scalar, error)
	Set(rows, cols index.Spec, v any) error
}

// Proxy is a live handle on one column of a Source.
type Proxy struct {
	src  Source
	name string
}

// New binds name on src. The name is not checked until first use.
func New(src Source, name string) *Proxy {
	return &Proxy{src: src, name: name}
}

// Name returns the bound column name.
func (p *Proxy) Name() string { return p.name }

// Len returns the source's current row count.
func (p *Proxy) Len() int { return p.src.Len() }

// String implements fmt.Stringer.
func (p *Proxy) String() string { return "variable " + p.name }

func (p *Proxy) col() (int, error) {
	c, err := p.src.Index(p.name)
	if err != nil {
		return 0, fmt.Errorf("variable %s: %w", p.name, err)
	}

	return c, nil
}

// Values reads the whole column.
func (p *Proxy) Values() (value.Vector, error) {
	c, err := p.col()
	if err != nil {
		return nil, err
	}
	n := p.src.Len()
	out := make(value.Vector, n)
	for r := range n {
		if out[r], err = p.src.Get(r, c); err != nil {
			return nil, fmt.Errorf("variable %s: %w", p.name, err)
		}
	}

	return out, nil
}

// SetValues replaces the whole column. v is shaped like a single-column
// block of Len rows: a flat sequence of Len values, or a lone value when
// Len is 1.
func (p *Proxy) SetValues(v any) error {
	return p.SetAt(index.All(), v)
}

// At reads row i; negative i counts from the end.
func (p *Proxy) At(i int) (value.Scalar, error) {
	vals, err := p.Slice(index.At(i))
	if err != nil {
		return value.Null, err
	}

	return vals[0], nil
}

// Slice reads the rows selected by spec, in spec order.
func (p *Proxy) Slice(spec index.Spec) (value.Vector, error) {
	c, err := p.col()
	if err != nil {
		return nil, err
	}
	rows, err := index.Resolve(index.Full(p.src.Len()), spec)
	if err != nil {
		return nil, fmt.Errorf("variable %s: %w", p.name, err)
	}
	out := make(value.Vector, len(rows))
	for k, r := range rows {
		if out[k], err = p.src.Get(r, c); err != nil {
			return nil, fmt.Errorf("variable %s: %w", p.name, err)
		}
	}

	return out, nil
}

// SetAt writes v into the rows selected by spec.
func (p *Proxy) SetAt(spec index.Spec, v any) error {
	c, err := p.col()
	if err != nil {
		return err
	}
	if err = p.src.Set(spec, index.At(c), v); err != nil {
		return fmt.Errorf("variable %s: %w", p.name, err)
	}

	return nil
}

// All yields the column's values lazily. It stops after the first error.
func (p *Proxy) All() iter.Seq2[value.Scalar, error] {
	return func(yield func(value.Scalar, error) bool) {
		c, err := p.col()
		if err != nil {
			yield(value.Null, err)
			return
		}
		for r := range p.src.Len() {
			s, err := p.src.Get(r, c)
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}
