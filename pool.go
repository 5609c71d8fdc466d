package mandelbrot

import "sync"

// FramePool manages reusable frames of one size.
// Each redraw acquires a frame and releases it on every exit path:
//
//	pool, err := mandelbrot.NewFramePool(800, 600)
//	frame := pool.Get()
//	defer pool.Put(frame)
//	// render into frame, present it...
type FramePool struct {
	width  int
	height int
	pool   sync.Pool
}

// NewFramePool creates a pool of width x height frames.
func NewFramePool(width, height int) (*FramePool, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	p := &FramePool{width: width, height: height}
	p.pool.New = func() any {
		return &Frame{
			width:  width,
			height: height,
			data:   make([]uint8, width*height*4),
		}
	}
	return p, nil
}

// Get retrieves a frame from the pool.
// The frame is cleared to black and ready for use.
func (p *FramePool) Get() *Frame {
	f := p.pool.Get().(*Frame)
	f.Clear()
	return f
}

// Put returns a frame to the pool for reuse.
// Frames of another size and nil are ignored.
func (p *FramePool) Put(f *Frame) {
	if f == nil || f.width != p.width || f.height != p.height {
		return
	}
	p.pool.Put(f)
}
