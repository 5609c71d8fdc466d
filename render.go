package mandelbrot

import (
	"fmt"

	"github.com/gogpu/mandelbrot/internal/escape"
)

// Lanes is the number of pixels the lane kernels process per group.
const Lanes = escape.Lanes

// Stats summarizes one rendered frame.
type Stats struct {
	// Groups is the number of kernel invocations.
	Groups int

	// Pixels is the number of colors written; always width*height.
	Pixels int

	// InSet counts pixels that reached the iteration cap.
	InSet int
}

// Renderer computes escape-time frames.
//
// A Renderer holds only immutable configuration and may be shared, but each
// Render call is sequential: rows top to bottom, groups left to right.
type Renderer struct {
	cfg     config
	kernel  Kernel
	group   escape.Func
	palette Palette
}

// NewRenderer creates a renderer.
//
// Example:
//
//	r, err := mandelbrot.NewRenderer(mandelbrot.WithMaxIter(450))
//	if err != nil {
//	    return err
//	}
//	frame, err := mandelbrot.NewFrame(r.Width(), r.Height())
//	if err != nil {
//	    return err
//	}
//	stats, err := r.Render(frame, mandelbrot.DefaultView())
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	kernel := cfg.kernel.resolve()
	return &Renderer{
		cfg:     cfg,
		kernel:  kernel,
		group:   kernel.groupFunc(),
		palette: NewPalette(cfg.maxIter, cfg.mults),
	}, nil
}

// Width returns the configured frame width.
func (r *Renderer) Width() int { return r.cfg.width }

// Height returns the configured frame height.
func (r *Renderer) Height() int { return r.cfg.height }

// MaxIter returns the iteration cap.
func (r *Renderer) MaxIter() int { return r.cfg.maxIter }

// Kernel returns the concrete kernel in use (never KernelAuto).
func (r *Renderer) Kernel() Kernel { return r.kernel }

// Palette returns the palette used to color counts.
func (r *Renderer) Palette() Palette { return r.palette }

// Render fills dst with the frame for view.
//
// Each row is split into groups of Lanes columns. The last group of a row
// may have fewer live lanes; its tail lanes sit at the neutral point, start
// inactive, and are never written, so exactly width colors land per row.
//
// dst must match the configured size. On error nothing is written.
func (r *Renderer) Render(dst Target, view View) (Stats, error) {
	w, h := r.cfg.width, r.cfg.height
	if dst.Width() != w || dst.Height() != h {
		return Stats{}, fmt.Errorf("%w: target %dx%d, renderer %dx%d",
			ErrFrameMismatch, dst.Width(), dst.Height(), w, h)
	}
	if err := view.Validate(); err != nil {
		return Stats{}, err
	}

	m := NewMapper(view, w, h)
	maxIter, r2Max := r.cfg.maxIter, r.cfg.r2Max

	var stats Stats
	var g escape.PointGroup
	for py := 0; py < h; py++ {
		y := m.Y(py)
		row := py * w

		for px := 0; px < w; px += Lanes {
			n := escape.LiveLanes(w, px)
			g.Reset(n)
			for lane := 0; lane < n; lane++ {
				g.Set(lane, m.X(px+lane), y)
			}

			r.group(&g, maxIter, r2Max)
			stats.Groups++

			for lane := 0; lane < n; lane++ {
				iter := g.Count(lane)
				if iter == maxIter {
					stats.InSet++
				}
				dst.SetIndex(row+px+lane, r.palette.Color(iter))
				stats.Pixels++
			}
		}
	}

	Logger().Debug("mandelbrot: frame rendered",
		"kernel", r.kernel,
		"size", fmt.Sprintf("%dx%d", w, h),
		"max_iter", maxIter,
		"groups", stats.Groups,
		"in_set", stats.InSet)
	return stats, nil
}

// Iterations returns the escape count of a single pixel for view, using the
// scalar reference kernel. It is the per-pixel ground truth for Render.
func (r *Renderer) Iterations(view View, px, py int) int {
	p := NewMapper(view, r.cfg.width, r.cfg.height).Point(px, py)
	return escape.Scalar(p.X, p.Y, r.cfg.maxIter, r.cfg.r2Max)
}
