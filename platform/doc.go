// Package platform normalizes the handful of machine-dependent types and
// constants the rest of the module relies on.
//
// # Overview
//
// Go's toolchain always supplies fixed-width integers, so unlike the C
// shims this package descends from there is nothing to conditionally
// define. What remains genuinely target-dependent:
//
//   - Size: a pointer-width signed size type. Its maximum, SizeMax, is
//     selected at build time per target pointer width (platform_32.go vs
//     platform_64.go).
//   - NaN32: a float32 quiet NaN built from a fixed bit pattern, for
//     call sites that need a bit-stable sentinel rather than whatever
//     the runtime's math package produces.
//
// The width aliases (U8..U64, I8..I64, UMax, IMax) exist so code ported
// from the original C headers keeps its vocabulary. They are aliases,
// not distinct types - they never shadow or redefine a builtin.
package platform
