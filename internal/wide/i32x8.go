package wide

// I32x8 represents 8 int32 values, used for per-lane counters.
type I32x8 [Lanes]int32

// SubMask subtracts m reinterpreted as int32 lanes from v.
// A set lane reads as -1, so the lane is incremented; a clear lane is
// unchanged. This is the sub_epi32 counting idiom.
func (v *I32x8) SubMask(m *Mask8) {
	for i := range v {
		v[i] -= int32(m[i]) //nolint:gosec // G115: reinterpretation of the all-ones lane is intended
	}
}
