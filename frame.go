package mandelbrot

import (
	"image"
	"image/color"
)

// Target receives the colors of a frame.
// Index i addresses pixel (i % Width, i / Width) in row-major order.
type Target interface {
	Width() int
	Height() int
	SetIndex(i int, c RGB)
}

// Frame is a row-major pixel buffer with one entry per pixel.
// Entries are stored as RGBA bytes with alpha fixed at 255, the layout
// image.RGBA and pixel upload APIs expect.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFrame creates a black frame with the given dimensions.
// It returns ErrInvalidSize or ErrFrameTooLarge instead of allocating a
// buffer that cannot exist.
func NewFrame(width, height int) (*Frame, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	f := &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	f.Clear()
	return f, nil
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return f.width * f.height
}

// Data returns the raw pixel data (RGBA format).
func (f *Frame) Data() []uint8 {
	return f.data
}

// SetIndex sets the color of pixel i (row-major).
func (f *Frame) SetIndex(i int, c RGB) {
	o := i * 4
	p := f.data[o : o+4 : o+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = 0xFF
}

// Index returns the color of pixel i (row-major).
func (f *Frame) Index(i int) RGB {
	o := i * 4
	return RGB{R: f.data[o], G: f.data[o+1], B: f.data[o+2]}
}

// RGBAt returns the color of pixel (x, y), or black outside the frame.
func (f *Frame) RGBAt(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.Index(y*f.width + x)
}

// Clear fills the frame with opaque black.
func (f *Frame) Clear() {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = 0
		f.data[i+1] = 0
		f.data[i+2] = 0
		f.data[i+3] = 0xFF
	}
}

// ToImage copies the frame into a new image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.RGBAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Set implements the draw.Image interface so overlays can draw on a frame.
// The frame stays opaque: colors are composited by the caller's draw op and
// stored with alpha 255.
func (f *Frame) Set(x, y int, c color.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	f.SetIndex(y*f.width+x, RGB{R: rgba.R, G: rgba.G, B: rgba.B})
}
