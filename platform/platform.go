package platform

import "math"

// Size is a pointer-width signed size type. It is the Go rendering of
// ssize_t: wide enough to hold any in-memory object size or a negative
// error marker. SizeMax is defined per target width in platform_32.go
// and platform_64.go.
type Size int

// Fixed-width aliases kept for call sites ported from the C headers.
type (
	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64

	I8  = int8
	I16 = int16
	I32 = int32
	I64 = int64

	// UMax and IMax are the widest native integer types.
	UMax = uint64
	IMax = int64
)

// nan32Bits is the bit pattern the original shim used for hosts whose
// libm defined no NAN: an all-ones mantissa quiet NaN.
const nan32Bits = 0x7FFFFFFF

// NaN32 returns a float32 quiet NaN with a fixed, reproducible bit
// pattern.
func NaN32() float32 {
	return math.Float32frombits(nan32Bits)
}

// IsNaN32 reports whether f is an IEEE 754 not-a-number value.
func IsNaN32(f float32) bool {
	return f != f
}
