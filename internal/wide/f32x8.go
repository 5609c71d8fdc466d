package wide

import "math"

// Lanes is the number of lanes in every wide type of this package.
const Lanes = 8

// F32x8 represents 8 float32 values for SIMD-style operations.
type F32x8 [Lanes]float32

// SplatF32 creates F32x8 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add sets v to a + b element-wise.
func (v *F32x8) Add(a, b *F32x8) {
	for i := range v {
		v[i] = a[i] + b[i]
	}
}

// Sub sets v to a - b element-wise.
func (v *F32x8) Sub(a, b *F32x8) {
	for i := range v {
		v[i] = a[i] - b[i]
	}
}

// Mul sets v to a * b element-wise.
// Each product is rounded to float32 before it is stored, so a later Add
// is never contracted into a fused multiply-add.
func (v *F32x8) Mul(a, b *F32x8) {
	for i := range v {
		v[i] = float32(a[i] * b[i])
	}
}

// And sets v to a with the lanes not selected by m zeroed.
// The selection is a bitwise AND on the IEEE 754 representation, exactly
// like an and_ps with a comparison mask.
func (v *F32x8) And(a *F32x8, m *Mask8) {
	for i := range v {
		v[i] = math.Float32frombits(math.Float32bits(a[i]) & m[i])
	}
}
