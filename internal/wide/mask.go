package wide

const laneSet = ^uint32(0)

// Mask8 holds one comparison result per lane.
// Set lanes are all ones, clear lanes are zero.
type Mask8 [Lanes]uint32

// FirstN returns a mask with lanes [0, n) set.
// n is clamped to [0, Lanes].
func FirstN(n int) Mask8 {
	var result Mask8
	for i := range result {
		if i < n {
			result[i] = laneSet
		}
	}
	return result
}

// AndLess clears every lane of m where a[i] < b[i] does not hold.
// The comparison is ordered: NaN lanes compare false and are cleared.
// A clear lane is never set again.
func (m *Mask8) AndLess(a, b *F32x8) {
	for i := range m {
		var lt uint32
		if a[i] < b[i] {
			lt = laneSet
		}
		m[i] &= lt
	}
}

// Any reports whether at least one lane is set (OR-reduction).
func (m *Mask8) Any() bool {
	var acc uint32
	for i := range m {
		acc |= m[i]
	}
	return acc != 0
}
