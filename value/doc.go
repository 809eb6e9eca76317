// Package value defines the scalar model shared by every tabview package:
// the 27 missing-value sentinels, the Scalar tagged union that carries one
// cell's worth of data (null, number, sentinel or string), the Vector of
// scalars that holds one column's worth of values, and the absorbing
// arithmetic that ties them together.
//
// Missing values:
//
//	A host encodes "missing" as a band of the largest positive doubles.
//	Code 0 is the canonical missing "." and codes 1..26 are the extended
//	codes ".a".."z". Each code's raw encoding is 0x1.0XXp+1023 where XX is
//	the code in hex, so ordering by raw value equals ordering by code, and
//	every sentinel is greater than every representable finite number.
//
// Arithmetic:
//
//	Binary and unary operations are explicit functions (Add, Sub, Mul, ...)
//	dispatched over the closed NumericLike interface. Any sentinel or null
//	operand absorbs the operation into the canonical sentinel. Numeric
//	results that fall outside the finite range are reported as the canonical
//	sentinel too, since the raw value would be indistinguishable from a code.
//
// Vectors zip element-wise and truncate to the shorter length; scalars
// broadcast over vectors.
package value
