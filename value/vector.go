// SPDX-License-Identifier: MIT

package value

import (
	"fmt"
	"strings"
)

// Vector is an ordered, fixed-length run of scalars, typically one column's
// worth of values pulled from a view. Vectors never alias host storage.
type Vector []Scalar

// VectorOf converts each element with From.
func VectorOf(elems ...any) (Vector, error) {
	out := make(Vector, len(elems))
	for i, e := range elems {
		s, err := From(e)
		if err != nil {
			return nil, fmt.Errorf("value.VectorOf: element %d: %w", i, err)
		}
		out[i] = s
	}

	return out, nil
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports element-wise Scalar.Equal over equal lengths.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Raw returns host doubles for every element (sentinels encoded).
// Errors: ErrType if any element is a string.
func (v Vector) Raw() ([]float64, error) {
	out := make([]float64, len(v))
	for i, s := range v {
		f, ok := s.Raw()
		if !ok {
			return nil, fmt.Errorf("value.Vector.Raw: element %d is a string: %w", i, ErrType)
		}
		out[i] = f
	}

	return out, nil
}

// Any converts to []any holding Scalars; handy for the shaper.
func (v Vector) Any() []any {
	out := make([]any, len(v))
	for i, s := range v {
		out[i] = s
	}

	return out
}

// String renders "[a b c]".
func (v Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.GoString())
	}
	b.WriteByte(']')

	return b.String()
}
