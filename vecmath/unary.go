// SPDX-License-Identifier: MIT

package vecmath

import (
	"math"

	"github.com/katalvlaran/tabview/value"
)

// Domain and saturation limits.
const (
	trigLimit      = 1e18      // |x| above this loses all angular precision
	hyperLimit     = 709.8     // cosh/sinh overflow bound
	expLimit       = 709.09    // exp(x) enters the missing band above this
	lnGammaLimit   = 1.282e305 // lngamma/lnfactorial results enter the band at this input
	invLogitHigh   = 40.0      // invlogit(x) == 1 in double precision
	invLogitLow    = -750.0    // invlogit(x) == 0 in double precision
	invCloglogHigh = 5.0
	invCloglogLow  = -40.0
)

func within(lo, hi float64) func(float64) bool {
	return func(x float64) bool { return lo <= x && x <= hi }
}

func open01(x float64) bool { return 0 < x && x < 1 }

var (
	absFn   = std(nil, math.Abs)
	acosFn  = std(within(-1, 1), math.Acos)
	acoshFn = std(func(x float64) bool { return x >= 1 }, math.Acosh)
	asinFn  = std(within(-1, 1), math.Asin)
	asinhFn = std(nil, math.Asinh)
	atanFn  = std(nil, math.Atan)
	atanhFn = std(func(x float64) bool { return -1 < x && x < 1 }, math.Atanh)
	cosFn   = std(within(-trigLimit, trigLimit), math.Cos)
	sinFn   = std(within(-trigLimit, trigLimit), math.Sin)
	tanFn   = std(within(-trigLimit, trigLimit), math.Tan)
	coshFn  = std(within(-hyperLimit, hyperLimit), math.Cosh)
	sinhFn  = std(within(-hyperLimit, hyperLimit), math.Sinh)
	tanhFn  = std(nil, math.Tanh)
	expFn   = std(func(x float64) bool { return x <= expLimit }, math.Exp)
	lnFn    = std(func(x float64) bool { return x > 0 }, math.Log)
	log10Fn = std(func(x float64) bool { return x > 0 }, math.Log10)
	sqrtFn  = std(func(x float64) bool { return x >= 0 }, math.Sqrt)
	logitFn = std(open01, func(x float64) float64 { return math.Log(x / (1 - x)) })

	cloglogFn = std(open01, func(x float64) float64 { return math.Log(-math.Log(1 - x)) })

	signFn = std(nil, func(x float64) float64 {
		switch {
		case x < 0:
			return -1
		case x > 0:
			return 1
		}
		return 0
	})

	invLogitFn = std(nil, func(x float64) float64 {
		switch {
		case x >= invLogitHigh:
			return 1
		case x <= invLogitLow:
			return 0
		}
		return math.Exp(x) / (1 + math.Exp(x))
	})

	invCloglogFn = std(nil, func(x float64) float64 {
		switch {
		case x > invCloglogHigh:
			return 1
		case x < invCloglogLow:
			return 0
		}
		return 1 - math.Exp(-math.Exp(x))
	})

	lnGammaFn = std(func(x float64) bool {
		return !(x <= 0 && x == math.Floor(x)) && x < lnGammaLimit
	}, func(x float64) float64 {
		v, _ := math.Lgamma(x)
		return v
	})

	lnFactorialFn = std(func(x float64) bool {
		return x >= 0 && x == math.Floor(x) && x < lnGammaLimit
	}, func(x float64) float64 {
		v, _ := math.Lgamma(x + 1)
		return v
	})

	digammaFn  = std(nil, digamma)
	trigammaFn = std(nil, trigamma)
)

// integral keeps sentinels, decodes raw in-band numbers and otherwise
// applies f (ceil, floor, trunc).
func integral(f func(float64) float64) elemFn {
	return func(s value.Scalar) value.Scalar {
		switch s.Kind() {
		case value.KindMissing:
			return s
		case value.KindNull:
			return mv
		}
		x, _ := s.Float64()
		if value.OutOfRange(x) {
			return value.Miss(value.Decode(x))
		}

		return value.Num(f(x))
	}
}

// Abs returns |x|.
func Abs(x any) (value.NumericLike, error) { return mapUnary("Abs", x, absFn) }

// Acos returns the inverse cosine in radians; domain [-1, 1].
func Acos(x any) (value.NumericLike, error) { return mapUnary("Acos", x, acosFn) }

// Acosh returns the inverse hyperbolic cosine; domain x ≥ 1.
func Acosh(x any) (value.NumericLike, error) { return mapUnary("Acosh", x, acoshFn) }

// Asin returns the inverse sine in radians; domain [-1, 1].
func Asin(x any) (value.NumericLike, error) { return mapUnary("Asin", x, asinFn) }

// Asinh returns the inverse hyperbolic sine.
func Asinh(x any) (value.NumericLike, error) { return mapUnary("Asinh", x, asinhFn) }

// Atan returns the inverse tangent in radians.
func Atan(x any) (value.NumericLike, error) { return mapUnary("Atan", x, atanFn) }

// Atanh returns the inverse hyperbolic tangent; domain (-1, 1).
func Atanh(x any) (value.NumericLike, error) { return mapUnary("Atanh", x, atanhFn) }

// Ceil returns the least integer ≥ x. Sentinels pass through.
func Ceil(x any) (value.NumericLike, error) { return mapUnary("Ceil", x, integral(math.Ceil)) }

// Cloglog returns log(-log(1-x)); domain (0, 1).
func Cloglog(x any) (value.NumericLike, error) { return mapUnary("Cloglog", x, cloglogFn) }

// Cos returns the cosine; domain |x| ≤ 1e18.
func Cos(x any) (value.NumericLike, error) { return mapUnary("Cos", x, cosFn) }

// Cosh returns the hyperbolic cosine; domain |x| ≤ 709.8.
func Cosh(x any) (value.NumericLike, error) { return mapUnary("Cosh", x, coshFn) }

// Digamma returns ψ(x); zero and negative integers are missing.
func Digamma(x any) (value.NumericLike, error) { return mapUnary("Digamma", x, digammaFn) }

// Exp returns e^x; x > 709.09 is missing.
func Exp(x any) (value.NumericLike, error) { return mapUnary("Exp", x, expFn) }

// Floor returns the greatest integer ≤ x. Sentinels pass through.
func Floor(x any) (value.NumericLike, error) { return mapUnary("Floor", x, integral(math.Floor)) }

// Int truncates toward zero. Sentinels pass through.
func Int(x any) (value.NumericLike, error) { return mapUnary("Int", x, integral(math.Trunc)) }

// Trunc is Int.
func Trunc(x any) (value.NumericLike, error) { return Int(x) }

// InvCloglog returns 1 - exp(-exp(x)).
func InvCloglog(x any) (value.NumericLike, error) {
	return mapUnary("InvCloglog", x, invCloglogFn)
}

// InvLogit returns exp(x) / (1 + exp(x)).
func InvLogit(x any) (value.NumericLike, error) { return mapUnary("InvLogit", x, invLogitFn) }

// Ln returns the natural log; domain x > 0.
func Ln(x any) (value.NumericLike, error) { return mapUnary("Ln", x, lnFn) }

// Log is Ln.
func Log(x any) (value.NumericLike, error) { return Ln(x) }

// LnFactorial returns log(x!) for integer x ≥ 0.
func LnFactorial(x any) (value.NumericLike, error) {
	return mapUnary("LnFactorial", x, lnFactorialFn)
}

// LnGamma returns log|Γ(x)|; zero and negative integers are missing.
func LnGamma(x any) (value.NumericLike, error) { return mapUnary("LnGamma", x, lnGammaFn) }

// Log10 returns the base-10 log; domain x > 0.
func Log10(x any) (value.NumericLike, error) { return mapUnary("Log10", x, log10Fn) }

// Logit returns log(x / (1-x)); domain (0, 1).
func Logit(x any) (value.NumericLike, error) { return mapUnary("Logit", x, logitFn) }

// Sign returns -1, 0 or 1.
func Sign(x any) (value.NumericLike, error) { return mapUnary("Sign", x, signFn) }

// Sin returns the sine; domain |x| ≤ 1e18.
func Sin(x any) (value.NumericLike, error) { return mapUnary("Sin", x, sinFn) }

// Sinh returns the hyperbolic sine; domain |x| ≤ 709.8.
func Sinh(x any) (value.NumericLike, error) { return mapUnary("Sinh", x, sinhFn) }

// Sqrt returns the square root; domain x ≥ 0.
func Sqrt(x any) (value.NumericLike, error) { return mapUnary("Sqrt", x, sqrtFn) }

// Tan returns the tangent; domain |x| ≤ 1e18.
func Tan(x any) (value.NumericLike, error) { return mapUnary("Tan", x, tanFn) }

// Tanh returns the hyperbolic tangent.
func Tanh(x any) (value.NumericLike, error) { return mapUnary("Tanh", x, tanhFn) }

// Trigamma returns ψ₁(x); zero and negative integers are missing.
func Trigamma(x any) (value.NumericLike, error) { return mapUnary("Trigamma", x, trigammaFn) }
