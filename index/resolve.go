// SPDX-License-Identifier: MIT
// Package index - resolution of a Spec against a prior index list.
//
// Determinism:
//   - Result order is the slice order or the positions order; never sorted.
//
// Complexity:
//   - Resolve: O(len(result)); Distinct: O(n) with a set.

package index

import (
	"fmt"
	"iter"
	"math"
)

// Full returns [0, 1, ..., n-1].
func Full(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Resolve MAIN DESCRIPTION:
//   - Map spec onto prior and return absolute coordinates.
//
// Implementation:
//   - All:       copy prior.
//   - Slice:     normalise bounds against len(prior), walk by step.
//   - Positions: check -len ≤ p < len, wrap negatives, look up prior[p].
//
// Errors:
//   - ErrValue for a zero step.
//   - ErrOutOfRange for a position outside the prior list; nothing is
//     returned partially.
//
// Notes:
//   - The result never aliases prior.
func Resolve(prior []int, spec Spec) ([]int, error) {
	n := len(prior)
	switch spec.kind {
	case KindSlice:
		positions, err := slicePositions(n, spec.start, spec.stop, spec.step)
		if err != nil {
			return nil, err
		}
		out := make([]int, len(positions))
		for i, p := range positions {
			out[i] = prior[p]
		}
		return out, nil
	case KindPositions:
		out := make([]int, len(spec.pos))
		for i, p := range spec.pos {
			p, err := Wrap(p, n, "position")
			if err != nil {
				return nil, fmt.Errorf("index.Resolve: %w", err)
			}
			out[i] = prior[p]
		}
		return out, nil
	}

	out := make([]int, n)
	copy(out, prior)

	return out, nil
}

// slicePositions applies slice-bound normalisation over a sequence of length n.
func slicePositions(n, start, stop, step int) ([]int, error) {
	if step == 0 {
		return nil, fmt.Errorf("index.Resolve: slice step cannot be zero: %w", ErrValue)
	}
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	norm := func(b, def int) int {
		if b == Unbounded {
			return def
		}
		if b < 0 {
			b += n
			if b < lower {
				b = lower
			}
			return b
		}
		if b > upper {
			b = upper
		}
		return b
	}
	if step > 0 {
		start, stop = norm(start, lower), norm(stop, upper)
	} else {
		start, stop = norm(start, upper), norm(stop, lower)
	}

	// The walk stops before i+step is formed once it would pass stop, so
	// steps near the int limits cannot overflow.
	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
			if step >= stop-i {
				break
			}
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
			if step <= stop-i {
				break
			}
		}
	}
	if out == nil {
		out = []int{}
	}

	return out, nil
}

// FromAny converts a dynamic specifier into a Spec.
// Accepts nil (All), Spec, any signed or unsigned integer (At), []int,
// []any of integers, and iter.Seq[int] (Positions).
// Errors: ErrType for any non-integer element; ErrOutOfRange for an
// unsigned value above math.MaxInt.
func FromAny(v any) (Spec, error) {
	switch x := v.(type) {
	case nil:
		return All(), nil
	case Spec:
		return x, nil
	case []int:
		return Positions(x...), nil
	case iter.Seq[int]:
		var pos []int
		for p := range x {
			pos = append(pos, p)
		}
		return Positions(pos...), nil
	case []any:
		pos := make([]int, len(x))
		for i, e := range x {
			p, err := asInt(e)
			if err != nil {
				return Spec{}, fmt.Errorf("index.FromAny: element %d: %w", i, err)
			}
			pos[i] = p
		}
		return Positions(pos...), nil
	}
	p, err := asInt(v)
	if err != nil {
		return Spec{}, fmt.Errorf("index.FromAny: %w", err)
	}

	return At(p), nil
}

// asInt converts any integer kind to int. Unsigned values above
// math.MaxInt are ErrOutOfRange rather than wrapping negative.
func asInt(v any) (int, error) {
	var u uint64
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		if x < math.MinInt || x > math.MaxInt {
			return 0, fmt.Errorf("%d does not fit an int: %w", x, ErrOutOfRange)
		}
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint:
		u = uint64(x)
	case uint32:
		u = uint64(x)
	case uint64:
		u = x
	default:
		return 0, fmt.Errorf("%T is not an integer: %w", v, ErrType)
	}
	if u > math.MaxInt {
		return 0, fmt.Errorf("%d does not fit an int: %w", u, ErrOutOfRange)
	}

	return int(u), nil
}

// Wrap normalises one position p against a list of length n: -n ≤ p < n,
// negatives count from the end. what names the axis in the error.
func Wrap(p, n int, what string) (int, error) {
	if p < -n || p >= n {
		return 0, fmt.Errorf("%s %d outside [-%d, %d): %w", what, p, n, n, ErrOutOfRange)
	}
	if p < 0 {
		p += n
	}

	return p, nil
}

// Validate checks that every absolute coordinate lies in [0, extent).
func Validate(idx []int, extent int, what string) error {
	for i, v := range idx {
		if v < 0 || v >= extent {
			return fmt.Errorf("index.Validate: %s[%d] = %d outside [0, %d): %w", what, i, v, extent, ErrOutOfRange)
		}
	}

	return nil
}

// Distinct counts distinct values in idx.
func Distinct(idx []int) int {
	seen := make(map[int]struct{}, len(idx))
	for _, v := range idx {
		seen[v] = struct{}{}
	}

	return len(seen)
}

// Max returns the largest coordinate in idx, or -1 when idx is empty.
func Max(idx []int) int {
	m := -1
	for _, v := range idx {
		m = max(m, v)
	}

	return m
}
