package mandelbrot

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Default view bounds: the whole set with a margin, 4:3 like the default
// frame.
const (
	DefaultXMin float32 = -2.5
	DefaultXMax float32 = 1.5
	DefaultYMin float32 = -1.5
	DefaultYMax float32 = 1.5
)

const (
	// MoveStep is the pan distance per key press, as a fraction of the
	// visible extent.
	MoveStep float32 = 0.2

	// ZoomFactor is the magnification per zoom key press.
	ZoomFactor float32 = 1.5
)

// View holds the visible region of the complex plane.
// Row 0 of a frame maps to YMin.
//
// The renderer only reads a View; pan, zoom and reset are driven by the
// surrounding application.
type View struct {
	XMin, XMax float32
	YMin, YMax float32
}

// DefaultView returns the initial view.
func DefaultView() View {
	return View{XMin: DefaultXMin, XMax: DefaultXMax, YMin: DefaultYMin, YMax: DefaultYMax}
}

// Validate checks that the bounds are finite and strictly increasing.
func (v View) Validate() error {
	for _, b := range [4]float32{v.XMin, v.XMax, v.YMin, v.YMax} {
		f := float64(b)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite bound in %v", ErrInvalidView, v)
		}
	}
	if !(v.XMin < v.XMax) || !(v.YMin < v.YMax) {
		return fmt.Errorf("%w: %v", ErrInvalidView, v)
	}
	return nil
}

// Center returns the center of the view.
func (v View) Center() mgl32.Vec2 {
	return mgl32.Vec2{(v.XMin + v.XMax) / 2, (v.YMin + v.YMax) / 2}
}

// Extent returns the width and height of the view.
func (v View) Extent() mgl32.Vec2 {
	return mgl32.Vec2{v.XMax - v.XMin, v.YMax - v.YMin}
}

// Reset restores the default bounds.
func (v *View) Reset() {
	*v = DefaultView()
}

// Zoom magnifies the view by factor around its center.
// factor > 1 zooms in, factor < 1 zooms out.
func (v *View) Zoom(factor float32) {
	half := v.Extent().Mul(1 / factor).Mul(0.5)
	v.setCorners(v.Center().Sub(half), v.Center().Add(half))
}

// Move pans the view by dx widths and dy heights.
func (v *View) Move(dx, dy float32) {
	ext := v.Extent()
	offset := mgl32.Vec2{dx * ext.X(), dy * ext.Y()}
	v.setCorners(mgl32.Vec2{v.XMin, v.YMin}.Add(offset), mgl32.Vec2{v.XMax, v.YMax}.Add(offset))
}

func (v *View) setCorners(lo, hi mgl32.Vec2) {
	v.XMin, v.YMin = lo.X(), lo.Y()
	v.XMax, v.YMax = hi.X(), hi.Y()
}

// String formats the bounds the way the overlay shows them.
func (v View) String() string {
	return fmt.Sprintf("X: [%.5f, %.5f] Y: [%.5f, %.5f]", v.XMin, v.XMax, v.YMin, v.YMax)
}

// Action is a view change requested by the user.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionZoomIn
	ActionZoomOut
	ActionReset
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// Apply performs a and reports whether the view needs a redraw.
func (v *View) Apply(a Action) bool {
	switch a {
	case ActionLeft:
		v.Move(-MoveStep, 0)
	case ActionRight:
		v.Move(MoveStep, 0)
	case ActionUp:
		v.Move(0, -MoveStep)
	case ActionDown:
		v.Move(0, MoveStep)
	case ActionZoomIn:
		v.Zoom(ZoomFactor)
	case ActionZoomOut:
		v.Zoom(1 / ZoomFactor)
	case ActionReset:
		v.Reset()
	default:
		return false
	}
	return true
}
