package escape

// Grouped is the portable form of Batched.
//
// It keeps the same per-step rule (test, clear, count, update, zero) but
// walks the lanes with a loop over an 8-bit active mask instead of wide
// values. Counts match Batched and Scalar exactly.
func Grouped(g *PointGroup, maxIter int, r2Max float32) {
	var x, y [Lanes]float32
	var count [Lanes]int32

	active := uint8(1)<<g.n - 1
	if g.n == Lanes {
		active = 0xFF
	}

	for step := 0; step < maxIter && active != 0; step++ {
		for lane := 0; lane < Lanes; lane++ {
			bit := uint8(1) << lane
			if active&bit == 0 {
				continue
			}

			x2 := float32(x[lane] * x[lane])
			y2 := float32(y[lane] * y[lane])
			if !(x2+y2 < r2Max) {
				active &^= bit
				x[lane], y[lane] = 0, 0
				continue
			}
			count[lane]++

			xy := float32(x[lane] * y[lane])
			x[lane] = x2 - y2 + g.X[lane]
			y[lane] = xy + xy + g.Y[lane]
		}
	}

	for lane := range count {
		g.Iter[lane] = count[lane]
	}
}
