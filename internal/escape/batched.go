package escape

import "github.com/gogpu/mandelbrot/internal/wide"

// Batched computes escape counts for all live lanes of g in lockstep.
//
// Each step squares every lane, ANDs the still-inside comparison into the
// active mask, and advances the counters by that mask. Lanes whose mask
// clears stop counting and have their next z forced to zero, so an escaped
// orbit never grows into Inf or NaN beside live lanes. The loop leaves as
// soon as no lane is active; lanes still active at maxIter hold maxIter.
func Batched(g *PointGroup, maxIter int, r2Max float32) {
	iterate(g, maxIter, r2Max, true, nil)
}

// stepFunc observes the active mask after each step. Used by tests.
type stepFunc func(step int, active wide.Mask8)

// iterate runs the lane loop and returns the number of steps executed.
// With earlyExit false it always runs maxIter steps.
func iterate(g *PointGroup, maxIter int, r2Max float32, earlyExit bool, observe stepFunc) int {
	escape := wide.SplatF32(r2Max)

	var x, y, x2, y2, r2, xy wide.F32x8
	var count wide.I32x8
	active := g.live()

	if earlyExit && !active.Any() {
		g.Iter = count
		return 0
	}

	step := 0
	for step < maxIter {
		x2.Mul(&x, &x)
		y2.Mul(&y, &y)
		r2.Add(&x2, &y2)

		// Monotonic: a lane is only ever cleared.
		active.AndLess(&r2, &escape)
		count.SubMask(&active)

		if observe != nil {
			observe(step, active)
		}

		xy.Mul(&x, &y)
		x.Sub(&x2, &y2)
		x.Add(&x, &g.X)
		x.And(&x, &active)
		y.Add(&xy, &xy)
		y.Add(&y, &g.Y)
		y.And(&y, &active)
		step++

		if earlyExit && !active.Any() {
			break
		}
	}

	g.Iter = count
	return step
}
