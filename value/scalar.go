// SPDX-License-Identifier: MIT

package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Scalar.
type Kind uint8

const (
	KindNull    Kind = iota // no value (a host "None"); treated as missing by arithmetic
	KindNumber              // finite or raw double
	KindMissing             // one of the 27 sentinels
	KindString              // text cell
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Scalar is a tagged union of {null, number, sentinel, string}.
// The zero value is Null.
type Scalar struct {
	kind Kind
	num  float64
	miss Sentinel
	str  string
}

// Null is the empty scalar.
var Null = Scalar{}

// Num wraps a number as-is. Use FromFloat for raw host values that may
// encode a sentinel.
func Num(f float64) Scalar { return Scalar{kind: KindNumber, num: f} }

// Str wraps a string; strings are always atomic.
func Str(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Miss wraps a sentinel.
func Miss(s Sentinel) Scalar { return Scalar{kind: KindMissing, miss: s} }

// FromFloat converts a raw host double, decoding the missing band.
func FromFloat(raw float64) Scalar {
	if s, ok := Classify(raw); ok {
		return Miss(s)
	}

	return Num(raw)
}

// Floats converts raw doubles into a Vector via FromFloat.
func Floats(raw ...float64) Vector {
	out := make(Vector, len(raw))
	for i, f := range raw {
		out[i] = FromFloat(f)
	}

	return out
}

// From converts a Go value into a Scalar.
// Accepts Scalar, Sentinel, nil, bool, string, every int/uint/float kind.
// Floats go through FromFloat, so raw sentinel encodings decode.
func From(v any) (Scalar, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Scalar:
		return x, nil
	case Sentinel:
		return Miss(x), nil
	case string:
		return Str(x), nil
	case bool:
		if x {
			return Num(1), nil
		}
		return Num(0), nil
	case float64:
		return FromFloat(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case int:
		return Num(float64(x)), nil
	case int8:
		return Num(float64(x)), nil
	case int16:
		return Num(float64(x)), nil
	case int32:
		return Num(float64(x)), nil
	case int64:
		return Num(float64(x)), nil
	case uint:
		return Num(float64(x)), nil
	case uint8:
		return Num(float64(x)), nil
	case uint16:
		return Num(float64(x)), nil
	case uint32:
		return Num(float64(x)), nil
	case uint64:
		return Num(float64(x)), nil
	}

	return Null, fmt.Errorf("value.From(%T): %w", v, ErrType)
}

// Kind returns the variant tag.
func (s Scalar) Kind() Kind { return s.kind }

// IsNull reports KindNull.
func (s Scalar) IsNull() bool { return s.kind == KindNull }

// IsString reports KindString.
func (s Scalar) IsString() bool { return s.kind == KindString }

// IsMissing reports a sentinel or null value.
func (s Scalar) IsMissing() bool { return s.kind == KindMissing || s.kind == KindNull }

// IsNumber reports KindNumber.
func (s Scalar) IsNumber() bool { return s.kind == KindNumber }

// Float64 returns the number held by s; ok is false for other kinds.
func (s Scalar) Float64() (f float64, ok bool) { return s.num, s.kind == KindNumber }

// Sentinel returns the sentinel held by s; null reports the canonical sentinel.
func (s Scalar) Sentinel() (Sentinel, bool) {
	switch s.kind {
	case KindMissing:
		return s.miss, true
	case KindNull:
		return Missing, true
	}

	return Missing, false
}

// Text returns the string held by s; ok is false for other kinds.
func (s Scalar) Text() (string, bool) { return s.str, s.kind == KindString }

// Raw returns the double a host should store for s: numbers as-is, sentinels
// by their encoding, null as the canonical encoding. Strings report ok=false.
func (s Scalar) Raw() (float64, bool) {
	switch s.kind {
	case KindNumber:
		return s.num, true
	case KindMissing:
		return s.miss.Float64(), true
	case KindNull:
		return Missing.Float64(), true
	}

	return 0, false
}

// Truthy follows the host convention: sentinels are true, numbers are true
// when non-zero, strings when non-empty, null is false.
func (s Scalar) Truthy() bool {
	switch s.kind {
	case KindNumber:
		return s.num != 0
	case KindMissing:
		return true
	case KindString:
		return s.str != ""
	}

	return false
}

// Equal compares two scalars. A sentinel equals the same sentinel or the
// exact raw double that encodes it; numbers compare with ==; strings with ==;
// null equals only null.
func (s Scalar) Equal(o Scalar) bool {
	switch s.kind {
	case KindNull:
		return o.kind == KindNull
	case KindString:
		return o.kind == KindString && s.str == o.str
	case KindMissing:
		switch o.kind {
		case KindMissing:
			return s.miss == o.miss
		case KindNumber:
			return s.miss.EqualFloat(o.num)
		}
		return false
	case KindNumber:
		switch o.kind {
		case KindNumber:
			return s.num == o.num
		case KindMissing:
			return o.miss.EqualFloat(s.num)
		}
	}

	return false
}

// String renders numbers with the shortest round-trip form, sentinels by
// name, strings verbatim and null as "<null>".
func (s Scalar) String() string {
	switch s.kind {
	case KindNumber:
		if math.IsInf(s.num, 0) || math.IsNaN(s.num) {
			return strings.ToLower(strconv.FormatFloat(s.num, 'g', -1, 64))
		}
		return strconv.FormatFloat(s.num, 'g', -1, 64)
	case KindMissing:
		return s.miss.Name()
	case KindString:
		return s.str
	}

	return "<null>"
}

// GoString makes test failures readable.
func (s Scalar) GoString() string {
	if s.kind == KindString {
		return strconv.Quote(s.str)
	}

	return s.String()
}
