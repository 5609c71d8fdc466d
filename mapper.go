package mandelbrot

// Point is a sample point on the complex plane.
type Point struct {
	X, Y float32
}

// Mapper converts pixel coordinates to complex-plane points for one frame.
// The per-pixel scale is computed once, so columns of one row and rows of
// one frame share identical spacing.
type Mapper struct {
	xMin, yMin     float32
	xScale, yScale float32
}

// NewMapper returns the mapping of view onto a width x height frame.
// Pixel (0, 0) maps to (XMin, YMin).
func NewMapper(view View, width, height int) Mapper {
	return Mapper{
		xMin:   view.XMin,
		yMin:   view.YMin,
		xScale: (view.XMax - view.XMin) / float32(width),
		yScale: (view.YMax - view.YMin) / float32(height),
	}
}

// X returns the real part for column px.
func (m Mapper) X(px int) float32 {
	return m.xMin + float32(float32(px)*m.xScale)
}

// Y returns the imaginary part for row py.
func (m Mapper) Y(py int) float32 {
	return m.yMin + float32(float32(py)*m.yScale)
}

// Point returns the sample point for pixel (px, py).
func (m Mapper) Point(px, py int) Point {
	return Point{X: m.X(px), Y: m.Y(py)}
}
