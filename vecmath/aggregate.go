// SPDX-License-Identifier: MIT
// Package vecmath - N-ary aggregates (Sum, SumN, Max, Min).
//
// Missing operands are skipped. Vectors zip (shortest wins); the scalar
// operands are folded once and joined to every position.

package vecmath

import (
	"fmt"

	"github.com/katalvlaran/tabview/value"
)

// Sum adds the non-missing elements of a vector (0 when none are left) or
// returns a scalar unchanged (0 when missing). The result is clamped.
func Sum(x any) (value.NumericLike, error) {
	v, err := lift("Sum", x)
	if err != nil {
		return nil, err
	}
	vec, ok := v.(value.Vector)
	if !ok {
		s, _ := value.ScalarOf(v)
		vec = value.Vector{s}
	}
	total := 0.0
	for i, s := range vec {
		if s.IsString() {
			return nil, typeErr("Sum", i)
		}
		if f, ok := number(s); ok {
			total += f
		}
	}

	return value.Clamp(total), nil
}

type fold struct {
	name string
	// better reports whether candidate should replace the current pick.
	better func(candidate, current float64) bool
	// empty is the result when every operand is missing.
	empty value.Scalar
	// accumulate replaces pick-by-comparison (used by SumN).
	accumulate bool
}

func (f fold) reduce(xs []float64) value.Scalar {
	if len(xs) == 0 {
		return f.empty
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		switch {
		case f.accumulate:
			acc += x
		case f.better(x, acc):
			acc = x
		}
	}

	return value.Clamp(acc)
}

// apply MAIN DESCRIPTION:
//   - Stage 1: lift every argument; strings fail with ErrType.
//   - Stage 2: collect usable scalars once.
//   - Stage 3: without vectors reduce the scalars; otherwise reduce each
//     zipped position together with the scalars.
func (f fold) apply(args []any) (value.NumericLike, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("vecmath.%s: need at least 2 arguments, got %d: %w", f.name, len(args), ErrArity)
	}
	var (
		vectors []value.Vector
		scalars []float64
	)
	for i, a := range args {
		v, err := lift(f.name, a)
		if err != nil {
			return nil, err
		}
		if vec, ok := v.(value.Vector); ok {
			for _, s := range vec {
				if s.IsString() {
					return nil, fmt.Errorf("vecmath.%s: argument %d holds a string: %w", f.name, i, ErrType)
				}
			}
			vectors = append(vectors, vec)
			continue
		}
		s, _ := value.ScalarOf(v)
		if s.IsString() {
			return nil, fmt.Errorf("vecmath.%s: argument %d is a string: %w", f.name, i, ErrType)
		}
		if x, ok := number(s); ok {
			scalars = append(scalars, x)
		}
	}
	if len(vectors) == 0 {
		return f.reduce(scalars), nil
	}

	n := len(vectors[0])
	for _, vec := range vectors[1:] {
		n = min(n, len(vec))
	}
	out := make(value.Vector, n)
	buf := make([]float64, 0, len(vectors)+len(scalars))
	for i := 0; i < n; i++ {
		buf = append(buf[:0], scalars...)
		for _, vec := range vectors {
			if x, ok := number(vec[i]); ok {
				buf = append(buf, x)
			}
		}
		out[i] = f.reduce(buf)
	}

	return out, nil
}

var (
	maxFold  = fold{name: "Max", better: func(c, cur float64) bool { return c > cur }, empty: mv}
	minFold  = fold{name: "Min", better: func(c, cur float64) bool { return c < cur }, empty: mv}
	sumNFold = fold{name: "SumN", accumulate: true, empty: value.Num(0)}
)

// Max returns the largest non-missing argument (element-wise with vectors).
// All missing → ".". Errors: ErrArity for fewer than 2 arguments.
func Max(args ...any) (value.NumericLike, error) { return maxFold.apply(args) }

// Min returns the smallest non-missing argument (element-wise with vectors).
// All missing → ".". Errors: ErrArity for fewer than 2 arguments.
func Min(args ...any) (value.NumericLike, error) { return minFold.apply(args) }

// SumN adds two or more arguments position-wise, skipping missing ones.
// All missing → 0.
func SumN(args ...any) (value.NumericLike, error) { return sumNFold.apply(args) }
