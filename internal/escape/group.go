package escape

import (
	"fmt"

	"github.com/gogpu/mandelbrot/internal/wide"
)

// Lanes is the number of points in a PointGroup.
const Lanes = wide.Lanes

// Func computes escape counts for every live lane of a group and stores
// them in g.Iter. Lanes at or past g.Len() are left unspecified.
type Func func(g *PointGroup, maxIter int, r2Max float32)

// PointGroup holds up to Lanes sample points and their escape counts.
//
// Layout is Structure-of-Arrays so each coordinate loads as one wide value:
//
//	X:    [x0, x1, ..., x7]
//	Y:    [y0, y1, ..., y7]
//	Iter: [n0, n1, ..., n7]
//
// A group is reused across the scanline loop: Reset, Set each live lane,
// run a kernel, read Count. The lane count is fixed by the array types, so
// no kernel needs a per-call size check.
type PointGroup struct {
	X, Y wide.F32x8
	Iter wide.I32x8

	// n is the number of live lanes; lanes [n, Lanes) are tail padding.
	n int
}

// Reset prepares the group for n live lanes.
// Every coordinate is set to the neutral point (0, 0) and every count to 0.
// Reset panics if n is outside [0, Lanes]; that is a caller bug.
func (g *PointGroup) Reset(n int) {
	if n < 0 || n > Lanes {
		panic(fmt.Sprintf("escape: live lane count %d outside [0, %d]", n, Lanes))
	}
	g.X = wide.F32x8{}
	g.Y = wide.F32x8{}
	g.Iter = wide.I32x8{}
	g.n = n
}

// Set stores the sample point for a live lane.
func (g *PointGroup) Set(lane int, x, y float32) {
	if lane >= g.n {
		panic(fmt.Sprintf("escape: lane %d is not live (group has %d)", lane, g.n))
	}
	g.X[lane] = x
	g.Y[lane] = y
}

// Len returns the number of live lanes.
func (g *PointGroup) Len() int {
	return g.n
}

// Count returns the escape count stored for lane.
func (g *PointGroup) Count(lane int) int {
	return int(g.Iter[lane])
}

// live returns the initial active mask: live lanes set, tail lanes clear.
func (g *PointGroup) live() wide.Mask8 {
	return wide.FirstN(g.n)
}

// GroupsPerRow returns how many groups cover a row of width pixels.
func GroupsPerRow(width int) int {
	return (width + Lanes - 1) / Lanes
}

// LiveLanes returns how many lanes of the group starting at column px map to
// real columns of a width-pixel row.
func LiveLanes(width, px int) int {
	return max(0, min(Lanes, width-px))
}
