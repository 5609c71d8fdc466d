// Package escape implements the escape-time iteration z ← z² + c.
//
// Three kernels compute the same integer for every point:
//
//   - Scalar: the reference, one point per call.
//   - Batched: eight points in lockstep on wide lane types, with per-lane
//     early exit emulated by mask arithmetic.
//   - Grouped: the portable form of Batched, driving plain float32 lanes with
//     an explicit bitmask.
//
// The count for a point is the smallest step i with |z_i|² ≥ r2Max, where
// z_0 = 0, or maxIter when no such step exists below the cap.
//
// All arithmetic is float32. Every product is rounded to float32 explicitly
// so no kernel is compiled with a fused multiply-add the others lack; this
// keeps counts identical across kernels on every architecture.
package escape
