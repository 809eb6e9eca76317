// SPDX-License-Identifier: MIT

package vecmath

import (
	"math"

	"github.com/katalvlaran/tabview/value"
)

func atan2Pair(a, b value.Scalar) value.Scalar {
	y, ok1 := number(a)
	x, ok2 := number(b)
	if !ok1 || !ok2 {
		return mv
	}

	return value.Clamp(math.Atan2(y, x))
}

func combPair(a, b value.Scalar) value.Scalar {
	n, ok1 := number(a)
	k, ok2 := number(b)
	if !ok1 || !ok2 {
		return mv
	}

	return value.Clamp(comb(n, k))
}

func modPair(a, b value.Scalar) value.Scalar {
	x, ok1 := number(a)
	y, ok2 := number(b)
	if !ok1 || !ok2 || y <= 0 {
		return mv
	}

	return value.Clamp(value.FloorMod(x, y))
}

// asSentinel reports the sentinel s stands for: itself, null as ".", or a
// raw out-of-range number decoded. ok is false for usable numbers.
func asSentinel(s value.Scalar) (value.Sentinel, bool) {
	if m, ok := s.Sentinel(); ok {
		return m, true
	}
	x, _ := s.Float64()
	if value.OutOfRange(x) {
		return value.Decode(x), true
	}

	return value.Missing, false
}

func reldifPair(a, b value.Scalar) value.Scalar {
	ma, aMiss := asSentinel(a)
	mb, bMiss := asSentinel(b)
	switch {
	case aMiss && bMiss:
		if ma == mb {
			return value.Num(0)
		}
		return mv
	case aMiss || bMiss:
		return mv
	}
	x, _ := a.Float64()
	y, _ := b.Float64()
	if x == y {
		return value.Num(0)
	}

	return value.Clamp(math.Abs(x-y) / (math.Abs(y) + 1))
}

// roundPair MAIN DESCRIPTION:
//   - unit missing            → ".".
//   - unit == 0               → x (raw out-of-range x decoded).
//   - x missing               → x's sentinel.
//   - otherwise               → RoundToEven(x/unit) * unit, clamped.
func roundPair(a, b value.Scalar) value.Scalar {
	unit, ok := number(b)
	if !ok {
		return mv
	}
	if m, miss := asSentinel(a); miss {
		if a.IsNull() {
			return mv
		}
		return value.Miss(m)
	}
	x, _ := a.Float64()
	if unit == 0 {
		return value.Num(x)
	}

	return value.Clamp(math.RoundToEven(x/unit) * unit)
}

// Atan2 returns the angle of (x, y) in radians, honouring both signs.
func Atan2(y, x any) (value.NumericLike, error) { return mapBinary("Atan2", y, x, atan2Pair) }

// Comb returns n choose k for integers 1 ≤ n ≤ 1e305 and 0 ≤ k ≤ n.
func Comb(n, k any) (value.NumericLike, error) { return mapBinary("Comb", n, k, combPair) }

// Mod returns x - y*floor(x/y) for y > 0; y ≤ 0 is missing.
func Mod(x, y any) (value.NumericLike, error) { return mapBinary("Mod", x, y, modPair) }

// Reldif returns |x-y| / (|y|+1). Two identical sentinels give 0;
// exactly one missing side gives ".".
func Reldif(x, y any) (value.NumericLike, error) { return mapBinary("Reldif", x, y, reldifPair) }

// Round rounds x to the nearest multiple of unit, half to even.
// A zero unit returns x; a missing unit returns ".".
func Round(x, unit any) (value.NumericLike, error) { return mapBinary("Round", x, unit, roundPair) }
