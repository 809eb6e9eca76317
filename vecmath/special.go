// SPDX-License-Identifier: MIT
// Package vecmath - special functions.
//
// Digamma follows Bernardo (1976), AS 103; trigamma follows Schneider (1978),
// AS 121. Both extend to negative non-integers with the reflection formulas
//   ψ(x)  = ψ(1-x) - π/tan(πx)
//   ψ₁(x) = π²/sin²(πx) - ψ₁(1-x)
// and return NaN at poles (mapped to "." by the caller).

package vecmath

import "math"

// digamma MAIN DESCRIPTION:
//   - Reflect x ≤ 0 into x > 0; poles at non-positive integers.
//   - Recurrence ψ(x) = ψ(x+1) - 1/x until x ≥ 8.
//   - Asymptotic series in y = 1/x² (skipped past 1e10 where it vanishes).
func digamma(x float64) float64 {
	v := 0.0
	if x <= 0 {
		fl := math.Floor(x)
		if x == fl {
			return math.NaN()
		}
		if x-fl != 0.5 { // tan(π/2) term is exactly zero
			v -= math.Pi / math.Tan(math.Pi*x)
		}
		x = 1 - x
	}
	for x < 8 {
		v -= 1 / x
		x++
	}
	v += math.Log(x) - 0.5/x
	if x < 1e10 {
		y := 1 / (x * x)
		v -= y * (1.0/12 - y*(1.0/120-y*(1.0/252-y*(1.0/240-
			y*(5.0/660-y*(691.0/32760-y/12))))))
	}

	return v
}

// trigamma MAIN DESCRIPTION:
//   - Reflect x ≤ 0; poles at non-positive integers.
//   - Recurrence ψ₁(x) = ψ₁(x+1) + 1/x² until x ≥ 15.
//   - Asymptotic series with Bernoulli coefficients.
func trigamma(x float64) float64 {
	v := 0.0
	flip := false
	if x <= 0 {
		if x == math.Floor(x) {
			return math.NaN()
		}
		s := math.Sin(math.Pi * x)
		v -= math.Pi * math.Pi / (s * s)
		x = 1 - x
		flip = true
	}
	for x < 15 {
		v += 1 / (x * x)
		x++
	}
	y := 1 / (x * x)
	v += 0.5*y + (1+y*(1.0/6+y*(-1.0/30+y*(1.0/42+y*(-1.0/30+y*5.0/66)))))/x
	if flip {
		return -v
	}

	return v
}

const combLimit = 1e305

// comb returns n choose k by the multiplicative formula over
// min(k, n-k) terms; NaN outside 1 ≤ n ≤ 1e305, 0 ≤ k ≤ n, integers.
func comb(n, k float64) float64 {
	if n < 1 || n > combLimit || n != math.Floor(n) || k < 0 || k > n || k != math.Floor(k) {
		return math.NaN()
	}
	numer, denom := 1.0, 1.0
	steps := math.Min(k, n-k)
	for t := 1.0; t <= steps; t++ {
		numer *= n
		denom *= t
		n--
		if math.IsInf(numer, 0) || math.IsInf(denom, 0) {
			return math.NaN()
		}
	}

	return numer / denom
}
