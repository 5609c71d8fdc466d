package mandelbrot

import "errors"

var (
	// ErrInvalidSize is returned for non-positive frame dimensions.
	ErrInvalidSize = errors.New("mandelbrot: invalid frame size")

	// ErrFrameTooLarge is returned when a frame would exceed MaxFramePixels.
	// The frame is not allocated.
	ErrFrameTooLarge = errors.New("mandelbrot: frame too large")

	// ErrFrameMismatch is returned when a render target does not match the
	// renderer's configured size.
	ErrFrameMismatch = errors.New("mandelbrot: frame size mismatch")

	// ErrInvalidView is returned for bounds that are not finite or not
	// strictly increasing.
	ErrInvalidView = errors.New("mandelbrot: invalid view bounds")

	// ErrInvalidMaxIter is returned for an iteration cap outside [1, MaxIterLimit].
	ErrInvalidMaxIter = errors.New("mandelbrot: invalid iteration cap")

	// ErrInvalidRadius is returned for a non-positive or non-finite escape
	// radius.
	ErrInvalidRadius = errors.New("mandelbrot: invalid escape radius")

	// ErrUnknownKernel is returned for a Kernel value outside the declared set.
	ErrUnknownKernel = errors.New("mandelbrot: unknown kernel")
)
