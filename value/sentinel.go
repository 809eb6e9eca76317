// SPDX-License-Identifier: MIT
// Package value - missing-value sentinel registry.
//
// Purpose:
//   - Own the fixed table of 27 sentinels (built once, never mutated).
//   - Decode raw host doubles into sentinels (Classify / Decode).
//   - Define sentinel ordering and equality against raw doubles.
//
// Limits:
//   - MaxNonMissing is the largest double a host treats as an ordinary number.
//   - Anything in (MaxNonMissing, raw(".z")] decodes by its code bits; anything
//     above raw(".z"), +Inf and NaN degrade to the canonical sentinel.

package value

import (
	"fmt"
	"math"
)

// NumSentinels is the number of distinct missing codes (".", ".a" .. ".z").
const NumSentinels = 27

// MaxNonMissing is the largest finite value that is not a missing code
// (0x1.fffffffffffffp+1022 ≈ 8.988465674311579e+307).
const MaxNonMissing = 0x1.fffffffffffffp+1022

const (
	sentinelExpBits  = uint64(0x7FE) << 52 // exponent of 2^1023
	sentinelCodeLow  = 40                  // code lives in mantissa bits 40..51
	sentinelCodeMask = uint64(0xFFF)
)

// Sentinel is one of the 27 missing codes. The zero value is the canonical
// missing ".". Sentinels are comparable with ==.
type Sentinel struct {
	code uint8
}

// Missing is the canonical sentinel (code 0, displayed as ".").
var Missing = Sentinel{}

// registry holds raw encodings and names; filled once in init and read-only after.
var registry struct {
	raw   [NumSentinels]float64
	names [NumSentinels]string
}

func init() {
	for i := 0; i < NumSentinels; i++ {
		registry.raw[i] = math.Float64frombits(sentinelExpBits | uint64(i)<<sentinelCodeLow)
		if i == 0 {
			registry.names[i] = "."
		} else {
			registry.names[i] = "." + string(rune('a'+i-1))
		}
	}
}

// upperBand is the raw encoding of ".z", the largest decodable sentinel.
func upperBand() float64 { return registry.raw[NumSentinels-1] }

// SentinelOf returns the sentinel for code 0..26.
// Errors: ErrDomain (wrapped) for any other code.
func SentinelOf(code int) (Sentinel, error) {
	if code < 0 || code >= NumSentinels {
		return Missing, fmt.Errorf("value.SentinelOf(%d): %w", code, ErrDomain)
	}

	return Sentinel{code: uint8(code)}, nil
}

// Sentinels returns the full table in code order.
func Sentinels() []Sentinel {
	out := make([]Sentinel, NumSentinels)
	for i := range out {
		out[i] = Sentinel{code: uint8(i)}
	}

	return out
}

// ParseSentinel maps ".", ".a" .. ".z" to their sentinels.
func ParseSentinel(name string) (Sentinel, error) {
	for i, n := range registry.names {
		if n == name {
			return Sentinel{code: uint8(i)}, nil
		}
	}

	return Missing, fmt.Errorf("value.ParseSentinel(%q): %w", name, ErrValue)
}

// Code returns the sentinel index 0..26.
func (s Sentinel) Code() int { return int(s.code) }

// Name returns "." or ".a" .. ".z".
func (s Sentinel) Name() string { return registry.names[s.code] }

// String implements fmt.Stringer.
func (s Sentinel) String() string { return s.Name() }

// Float64 returns the raw double a host uses to store s.
func (s Sentinel) Float64() float64 { return registry.raw[s.code] }

// Truthy reports true; every sentinel is truthy.
func (s Sentinel) Truthy() bool { return true }

// Compare orders sentinels by raw encoding, which is monotonic in Code.
func (s Sentinel) Compare(o Sentinel) int {
	switch {
	case s.code < o.code:
		return -1
	case s.code > o.code:
		return 1
	}

	return 0
}

// CompareFloat orders s against a raw double. Finite numbers are always
// smaller; raw values inside the band compare by their encoding.
func (s Sentinel) CompareFloat(f float64) int {
	r := s.Float64()
	switch {
	case math.IsNaN(f):
		return 1
	case r < f:
		return -1
	case r > f:
		return 1
	}

	return 0
}

// EqualFloat reports whether f is exactly the raw encoding of s.
func (s Sentinel) EqualFloat(f float64) bool { return s.Float64() == f }

// Classify decides whether raw lies in the reserved missing band.
// Returns (sentinel, true) when it does and (Missing, false) for ordinary
// numbers, including legitimate extremes and every negative value.
//
// Decoding:
//   - raw ≤ MaxNonMissing            → ordinary number.
//   - MaxNonMissing < raw ≤ raw(".z") → code from mantissa bits 40..51.
//   - raw > raw(".z"), +Inf, NaN      → canonical sentinel.
//   - decoded code > 26               → canonical sentinel.
func Classify(raw float64) (Sentinel, bool) {
	if raw <= MaxNonMissing {
		return Missing, false
	}
	if raw > upperBand() {
		return Missing, true
	}
	code := (math.Float64bits(raw) >> sentinelCodeLow) & sentinelCodeMask
	if code >= NumSentinels {
		return Missing, true // NaN lands here as well
	}

	return Sentinel{code: uint8(code)}, true
}

// Decode is Classify without the flag: ordinary numbers also map to the
// canonical sentinel. Use it only for raw values already known to be
// out of the finite range.
func Decode(raw float64) Sentinel {
	s, _ := Classify(raw)

	return s
}

// OutOfRange reports whether x is unusable as a number by the numeric
// library: NaN, or |x| > MaxNonMissing (both signs).
func OutOfRange(x float64) bool {
	return math.IsNaN(x) || x < -MaxNonMissing || x > MaxNonMissing
}
