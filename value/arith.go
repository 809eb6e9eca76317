// SPDX-License-Identifier: MIT
// Package value - absorbing arithmetic over Scalar, Sentinel and Vector.
//
// Dispatch:
//   - Binary(op, a, b) matches on the concrete operand pair
//     (scalar∘scalar, vector∘scalar, scalar∘vector, vector∘vector).
//   - Vector∘vector zips and truncates to the shorter length.
//   - Scalar operands broadcast across the vector.
//
// Absorption:
//   - any sentinel or null operand yields the canonical sentinel,
//     whatever the other operand is (strings included);
//   - numeric results outside ±MaxNonMissing (or NaN) are clamped to the
//     canonical sentinel so they never alias a missing encoding;
//   - division, floor division and modulo by zero yield the canonical sentinel.

package value

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// NumericLike is the closed operand set of the arithmetic functions.
// Implemented by Scalar, Sentinel and Vector only.
type NumericLike interface {
	numericLike()
}

func (Scalar) numericLike()   {}
func (Sentinel) numericLike() {}
func (Vector) numericLike()   {}

// Op enumerates binary arithmetic operators.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
)

var opNames = [...]string{"+", "-", "*", "/", "//", "%", "^"}

// String implements fmt.Stringer.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Lift converts a Go value into a NumericLike operand.
// Accepts NumericLike as-is, []float64 (raw, decoded), []Scalar, []any,
// and anything From accepts.
func Lift(v any) (NumericLike, error) {
	switch x := v.(type) {
	case NumericLike:
		return x, nil
	case []Scalar:
		return Vector(x), nil
	case []float64:
		return Floats(x...), nil
	case []any:
		return VectorOf(x...)
	}
	s, err := From(v)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ScalarOf flattens a non-vector operand. ok is false for vectors.
func ScalarOf(x NumericLike) (Scalar, bool) {
	switch t := x.(type) {
	case Scalar:
		return t, true
	case Sentinel:
		return Miss(t), true
	}

	return Null, false
}

// Binary applies op with vector-wins broadcasting.
// Errors: ErrType for string operands other than string+string.
func Binary(op Op, a, b NumericLike) (NumericLike, error) {
	va, aVec := a.(Vector)
	vb, bVec := b.(Vector)
	switch {
	case aVec && bVec:
		n := min(len(va), len(vb))
		out := make(Vector, n)
		for i := 0; i < n; i++ {
			r, err := binaryScalar(op, va[i], vb[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	case aVec:
		sb, _ := ScalarOf(b)
		return mapVector(va, func(s Scalar) (Scalar, error) { return binaryScalar(op, s, sb) })
	case bVec:
		sa, _ := ScalarOf(a)
		return mapVector(vb, func(s Scalar) (Scalar, error) { return binaryScalar(op, sa, s) })
	}
	sa, _ := ScalarOf(a)
	sb, _ := ScalarOf(b)

	return binaryScalar(op, sa, sb)
}

// Add returns a + b.
func Add(a, b NumericLike) (NumericLike, error) { return Binary(OpAdd, a, b) }

// Sub returns a - b.
func Sub(a, b NumericLike) (NumericLike, error) { return Binary(OpSub, a, b) }

// Mul returns a * b.
func Mul(a, b NumericLike) (NumericLike, error) { return Binary(OpMul, a, b) }

// Div returns a / b.
func Div(a, b NumericLike) (NumericLike, error) { return Binary(OpDiv, a, b) }

// FloorDiv returns floor(a / b).
func FloorDiv(a, b NumericLike) (NumericLike, error) { return Binary(OpFloorDiv, a, b) }

// Mod returns a mod b with the sign of b.
func Mod(a, b NumericLike) (NumericLike, error) { return Binary(OpMod, a, b) }

// Pow returns a ^ b.
func Pow(a, b NumericLike) (NumericLike, error) { return Binary(OpPow, a, b) }

// DivMod returns (FloorDiv(a,b), Mod(a,b)).
func DivMod(a, b NumericLike) (q, r NumericLike, err error) {
	if q, err = FloorDiv(a, b); err != nil {
		return nil, nil, err
	}
	if r, err = Mod(a, b); err != nil {
		return nil, nil, err
	}

	return q, r, nil
}

// Neg returns -a; sentinels absorb into the canonical sentinel.
func Neg(a NumericLike) (NumericLike, error) {
	return unary(a, "Neg", func(f float64) float64 { return -f }, false)
}

// Abs returns |a|; a sentinel operand is returned unchanged.
func Abs(a NumericLike) (NumericLike, error) {
	return unary(a, "Abs", math.Abs, true)
}

// Round rounds half to even; a sentinel operand is returned unchanged.
func Round(a NumericLike) (NumericLike, error) {
	return unary(a, "Round", math.RoundToEven, true)
}

func unary(a NumericLike, name string, f func(float64) float64, keepSentinel bool) (NumericLike, error) {
	apply := func(s Scalar) (Scalar, error) {
		switch s.kind {
		case KindString:
			return Null, fmt.Errorf("value.%s(%q): %w", name, s.str, ErrType)
		case KindMissing:
			if keepSentinel {
				return s, nil
			}
			return Miss(Missing), nil
		case KindNull:
			return Miss(Missing), nil
		}
		return Clamp(f(s.num)), nil
	}
	if v, ok := a.(Vector); ok {
		return mapVector(v, apply)
	}
	s, _ := ScalarOf(a)

	return apply(s)
}

func mapVector(v Vector, f func(Scalar) (Scalar, error)) (Vector, error) {
	out := make(Vector, len(v))
	for i, s := range v {
		r, err := f(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = r
	}

	return out, nil
}

// Clamp maps NaN, ±Inf and anything beyond ±MaxNonMissing to the canonical sentinel.
func Clamp(f float64) Scalar {
	if OutOfRange(f) {
		return Miss(Missing)
	}

	return Num(f)
}

func binaryScalar(op Op, a, b Scalar) (Scalar, error) {
	if a.IsMissing() || b.IsMissing() {
		return Miss(Missing), nil
	}
	if a.kind == KindString || b.kind == KindString {
		if op == OpAdd && a.kind == KindString && b.kind == KindString {
			return Str(a.str + b.str), nil
		}
		return Null, fmt.Errorf("value: %s %s %s: %w", a.GoString(), op, b.GoString(), ErrType)
	}
	x, y := a.num, b.num
	if OutOfRange(x) || OutOfRange(y) {
		return Miss(Missing), nil
	}
	switch op {
	case OpAdd:
		return Clamp(x + y), nil
	case OpSub:
		return Clamp(x - y), nil
	case OpMul:
		return Clamp(x * y), nil
	case OpDiv:
		if y == 0 {
			return Miss(Missing), nil
		}
		return Clamp(x / y), nil
	case OpFloorDiv:
		if y == 0 {
			return Miss(Missing), nil
		}
		return Clamp(math.Floor(x / y)), nil
	case OpMod:
		if y == 0 {
			return Miss(Missing), nil
		}
		return Clamp(FloorMod(x, y)), nil
	case OpPow:
		return Clamp(math.Pow(x, y)), nil
	}

	return Null, fmt.Errorf("value: unknown operator %s: %w", op, ErrValue)
}

// FloorMod is the modulo whose result takes the sign of y (floored division).
func FloorMod(x, y float64) float64 {
	r := math.Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

// Compare orders two scalars: numbers < sentinels (ordered by code),
// null orders as the canonical sentinel, strings compare lexically.
// Errors: ErrType when exactly one side is a string.
func Compare(a, b Scalar) (int, error) {
	if a.kind == KindString || b.kind == KindString {
		if a.kind == KindString && b.kind == KindString {
			return strings.Compare(a.str, b.str), nil
		}
		return 0, fmt.Errorf("value.Compare(%s, %s): %w", a.GoString(), b.GoString(), ErrType)
	}
	am, aMiss := a.Sentinel()
	bm, bMiss := b.Sentinel()
	switch {
	case aMiss && bMiss:
		return am.Compare(bm), nil
	case aMiss:
		return am.CompareFloat(b.num), nil
	case bMiss:
		return -bm.CompareFloat(a.num), nil
	}

	return cmp.Compare(a.num, b.num), nil
}

// CmpOp enumerates element-wise comparisons.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpNe
	CmpLt
	CmpLe
	CmpGt
	CmpGe
)

// Cmp compares element-wise with the same broadcasting as Binary and
// returns 1 for true and 0 for false. Equality never fails; ordering a
// string against a non-string fails with ErrType.
func Cmp(op CmpOp, a, b NumericLike) (NumericLike, error) {
	one := func(x, y Scalar) (Scalar, error) {
		switch op {
		case CmpEq:
			return boolNum(x.Equal(y)), nil
		case CmpNe:
			return boolNum(!x.Equal(y)), nil
		}
		c, err := Compare(x, y)
		if err != nil {
			return Null, err
		}
		switch op {
		case CmpLt:
			return boolNum(c < 0), nil
		case CmpLe:
			return boolNum(c <= 0), nil
		case CmpGt:
			return boolNum(c > 0), nil
		}
		return boolNum(c >= 0), nil
	}
	va, aVec := a.(Vector)
	vb, bVec := b.(Vector)
	switch {
	case aVec && bVec:
		n := min(len(va), len(vb))
		out := make(Vector, n)
		for i := 0; i < n; i++ {
			r, err := one(va[i], vb[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	case aVec:
		sb, _ := ScalarOf(b)
		return mapVector(va, func(s Scalar) (Scalar, error) { return one(s, sb) })
	case bVec:
		sa, _ := ScalarOf(a)
		return mapVector(vb, func(s Scalar) (Scalar, error) { return one(sa, s) })
	}
	sa, _ := ScalarOf(a)
	sb, _ := ScalarOf(b)

	return one(sa, sb)
}

func boolNum(b bool) Scalar {
	if b {
		return Num(1)
	}

	return Num(0)
}
