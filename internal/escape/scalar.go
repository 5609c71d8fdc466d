package escape

// Scalar returns the escape count for c = (x0, y0).
//
// The escape test runs before the update, so a point whose orbit is already
// outside the radius at step i reports i. With z_0 = 0 the smallest possible
// result for maxIter > 0 is 1.
func Scalar(x0, y0 float32, maxIter int, r2Max float32) int {
	var x, y float32

	i := 0
	for ; i < maxIter; i++ {
		x2 := float32(x * x)
		y2 := float32(y * y)

		// NaN fails the comparison and escapes, like the lane compare.
		if !(x2+y2 < r2Max) {
			break
		}

		xy := float32(x * y)
		x = x2 - y2 + x0
		y = xy + xy + y0
	}
	return i
}

// ScalarGroup runs Scalar on every live lane of g.
// It satisfies Func so the reference kernel can drive the same frame loop as
// the lane kernels.
func ScalarGroup(g *PointGroup, maxIter int, r2Max float32) {
	for lane := 0; lane < g.n; lane++ {
		g.Iter[lane] = int32(Scalar(g.X[lane], g.Y[lane], maxIter, r2Max)) //nolint:gosec // G115: count <= maxIter, validated int32 range
	}
}
