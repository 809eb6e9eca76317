// SPDX-License-Identifier: MIT

package view

import (
	"fmt"

	"github.com/katalvlaran/tabview/host"
	"github.com/katalvlaran/tabview/value"
)

// cellAccess is the getter/setter pair bound to a column by its type.
// conv turns a caller value into what put expects; put never sees an
// unconverted value.
type cellAccess struct {
	isString bool
	get      func(h host.Data, row, col int) (value.Scalar, error)
	conv     func(v any) (any, error)
	put      func(h host.Data, row, col int, v any) error
}

var (
	numericAccess = &cellAccess{
		get: func(h host.Data, row, col int) (value.Scalar, error) {
			raw, err := h.Numeric(row, col)
			if err != nil {
				return value.Null, err
			}
			return value.FromFloat(raw), nil
		},
		conv: toRaw,
		put: func(h host.Data, row, col int, v any) error {
			return h.SetNumeric(row, col, v.(float64))
		},
	}

	stringAccess = &cellAccess{
		isString: true,
		get: func(h host.Data, row, col int) (value.Scalar, error) {
			s, err := h.String(row, col)
			if err != nil {
				return value.Null, err
			}
			return value.Str(s), nil
		},
		conv: toText,
		put: func(h host.Data, row, col int, v any) error {
			return h.SetString(row, col, v.(string))
		},
	}
)

func accessFor(isString bool) *cellAccess {
	if isString {
		return stringAccess
	}

	return numericAccess
}

// toRaw converts v into the double a numeric column stores. Null becomes
// the canonical missing value; numbers outside the finite range or NaN
// become the canonical missing value too.
func toRaw(v any) (any, error) {
	s, err := value.From(v)
	if err != nil {
		return nil, err
	}
	if s.IsString() {
		return nil, fmt.Errorf("string %q for a numeric column: %w", s.String(), ErrType)
	}
	if f, ok := s.Float64(); ok {
		s = value.Clamp(f)
	}
	raw, _ := s.Raw()

	return raw, nil
}

// toText accepts Go strings and string scalars only.
func toText(v any) (any, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case value.Scalar:
		if txt, ok := x.Text(); ok {
			return txt, nil
		}
	}

	return nil, fmt.Errorf("%T for a string column: %w", v, ErrType)
}
