// Package wide provides 8-lane types for the batched escape-time kernel.
//
// The types are fixed-size arrays. Operations write into their receiver,
// in the style of math/big, so a kernel keeps its lanes in a handful of
// locals and no operation copies an array. Every method is a single loop
// small enough to inline. No unsafe and no assembly is used.
//
// # Lane Types
//
// F32x8: 8 float32 lanes for the complex-plane arithmetic.
// I32x8: 8 int32 lanes for per-lane iteration counters.
// Mask8: 8 lane masks using the SIMD comparison convention, where a set lane
// holds all ones (0xFFFFFFFF) and a clear lane holds zero.
//
// # Branchless Lanes
//
// Comparisons narrow a Mask8 instead of returning a bool. Masks zero out
// float lanes with F32x8.And and advance counters with I32x8.SubMask (a set
// lane is -1 when read as int32). This mirrors the cmp/and/sub sequence of
// a hardware vector unit, so per-lane control flow never needs a branch.
//
// # Usage Example
//
//	var x, r2 wide.F32x8
//	limit := wide.SplatF32(4)
//	active := wide.FirstN(8)
//	r2.Mul(&x, &x)
//	active.AndLess(&r2, &limit)
//	var count wide.I32x8
//	count.SubMask(&active)
//	if !active.Any() {
//		// every lane escaped
//	}
package wide
