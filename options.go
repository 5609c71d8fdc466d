package mandelbrot

import (
	"fmt"
	"math"
)

const (
	// DefaultWidth is the frame width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the frame height in pixels.
	DefaultHeight = 600

	// DefaultMaxIter is the iteration cap. A point still bounded after this
	// many steps is treated as inside the set and drawn black.
	DefaultMaxIter = 256

	// MaxIter450 is the deeper cap used by the grouped and scalar demo
	// builds. Pass it to WithMaxIter to reproduce their images.
	MaxIter450 = 450

	// MaxIterLimit bounds WithMaxIter so every count fits a lane counter.
	MaxIterLimit = 1 << 24

	// DefaultEscapeRadius is the escape threshold on |z|², i.e. |z| ≥ 2.
	DefaultEscapeRadius float32 = 4.0

	// MaxFramePixels bounds frame allocation.
	MaxFramePixels = 1 << 26
)

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Defaults: 800x600, cap 256, radius² 4, best kernel for this CPU
//	r, err := mandelbrot.NewRenderer()
//
//	// Deeper cap, reference kernel
//	r, err := mandelbrot.NewRenderer(
//	    mandelbrot.WithMaxIter(mandelbrot.MaxIter450),
//	    mandelbrot.WithKernel(mandelbrot.KernelScalar),
//	)
type Option func(*config)

// config holds the renderer configuration.
type config struct {
	width   int
	height  int
	maxIter int
	r2Max   float32
	kernel  Kernel
	mults   Multipliers
}

// defaultConfig returns the default renderer configuration.
func defaultConfig() config {
	return config{
		width:   DefaultWidth,
		height:  DefaultHeight,
		maxIter: DefaultMaxIter,
		r2Max:   DefaultEscapeRadius,
		kernel:  KernelAuto,
		mults:   DefaultMultipliers,
	}
}

// WithSize sets the frame size in pixels.
// Widths that are not a multiple of the lane count are allowed; the last
// group of each row runs with fewer live lanes.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithMaxIter sets the iteration cap.
func WithMaxIter(n int) Option {
	return func(c *config) {
		c.maxIter = n
	}
}

// WithEscapeRadius sets the escape threshold on |z|² (not |z|).
func WithEscapeRadius(r2 float32) Option {
	return func(c *config) {
		c.r2Max = r2
	}
}

// WithKernel selects the escape-time kernel.
// KernelAuto (the default) picks the best kernel for the running CPU.
func WithKernel(k Kernel) Option {
	return func(c *config) {
		c.kernel = k
	}
}

// WithMultipliers sets the per-channel palette multipliers.
func WithMultipliers(m Multipliers) Option {
	return func(c *config) {
		c.mults = m
	}
}

// validate checks the configuration and returns a wrapped sentinel error.
func (c *config) validate() error {
	if err := checkSize(c.width, c.height); err != nil {
		return err
	}
	if c.maxIter < 1 || c.maxIter > MaxIterLimit {
		return fmt.Errorf("%w: %d", ErrInvalidMaxIter, c.maxIter)
	}
	r := float64(c.r2Max)
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, c.r2Max)
	}
	if !c.kernel.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKernel, int(c.kernel))
	}
	return nil
}

// checkSize rejects frames that cannot be allocated.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxFramePixels/height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrFrameTooLarge, width, height, MaxFramePixels)
	}
	return nil
}
