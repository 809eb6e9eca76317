// SPDX-License-Identifier: MIT
// Package vecmath - operand lifting and broadcast kernels.
//
// Determinism:
//   - Vector results keep input order; zipped operands truncate to the
//     shortest vector, scalars repeat for every position.

package vecmath

import (
	"fmt"

	"github.com/katalvlaran/tabview/value"
)

var mv = value.Miss(value.Missing)

// elemFn maps one non-string scalar to its result.
type elemFn func(value.Scalar) value.Scalar

// pairFn maps a pair of non-string scalars to their result.
type pairFn func(a, b value.Scalar) value.Scalar

// number returns x when s is a usable number (present and within
// ±MaxNonMissing); ok is false otherwise.
func number(s value.Scalar) (x float64, ok bool) {
	x, ok = s.Float64()
	if !ok || value.OutOfRange(x) {
		return 0, false
	}

	return x, true
}

// std builds the common element kernel: missing or out-of-domain → ".",
// otherwise the clamped result of f.
func std(dom func(float64) bool, f func(float64) float64) elemFn {
	return func(s value.Scalar) value.Scalar {
		x, ok := number(s)
		if !ok || (dom != nil && !dom(x)) {
			return mv
		}

		return value.Clamp(f(x))
	}
}

func lift(name string, x any) (value.NumericLike, error) {
	v, err := value.Lift(x)
	if err != nil {
		return nil, fmt.Errorf("vecmath.%s: %w", name, err)
	}

	return v, nil
}

func typeErr(name string, pos int) error {
	if pos < 0 {
		return fmt.Errorf("vecmath.%s: string operand: %w", name, ErrType)
	}

	return fmt.Errorf("vecmath.%s: element %d is a string: %w", name, pos, ErrType)
}

// mapUnary applies f to a scalar or to every element of a vector.
func mapUnary(name string, x any, f elemFn) (value.NumericLike, error) {
	v, err := lift(name, x)
	if err != nil {
		return nil, err
	}
	if vec, ok := v.(value.Vector); ok {
		out := make(value.Vector, len(vec))
		for i, s := range vec {
			if s.IsString() {
				return nil, typeErr(name, i)
			}
			out[i] = f(s)
		}
		return out, nil
	}
	s, _ := value.ScalarOf(v)
	if s.IsString() {
		return nil, typeErr(name, -1)
	}

	return f(s), nil
}

// mapBinary applies f with vector-wins broadcasting.
func mapBinary(name string, x, y any, f pairFn) (value.NumericLike, error) {
	a, err := lift(name, x)
	if err != nil {
		return nil, err
	}
	b, err := lift(name, y)
	if err != nil {
		return nil, err
	}
	va, aVec := a.(value.Vector)
	vb, bVec := b.(value.Vector)
	sa, _ := value.ScalarOf(a)
	sb, _ := value.ScalarOf(b)
	if (!aVec && sa.IsString()) || (!bVec && sb.IsString()) {
		return nil, typeErr(name, -1)
	}

	n := 0
	switch {
	case aVec && bVec:
		n = min(len(va), len(vb))
	case aVec:
		n = len(va)
	case bVec:
		n = len(vb)
	default:
		return f(sa, sb), nil
	}
	out := make(value.Vector, n)
	for i := 0; i < n; i++ {
		ea, eb := sa, sb
		if aVec {
			ea = va[i]
		}
		if bVec {
			eb = vb[i]
		}
		if ea.IsString() || eb.IsString() {
			return nil, typeErr(name, i)
		}
		out[i] = f(ea, eb)
	}

	return out, nil
}
