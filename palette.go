package mandelbrot

import "image/color"

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of points inside the set.
var Black = RGB{}

// Color converts c to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Multipliers are the per-channel factors of the periodic palette.
// Channel = (iter * factor) mod 256.
type Multipliers struct {
	R, G, B int
}

// DefaultMultipliers give the banded blue/green palette.
var DefaultMultipliers = Multipliers{R: 197, G: 237, B: 255}

// ColorFor maps an escape count to a color.
// maxIter (did not escape) maps to black; every other count maps to
// ((iter * m.R) mod 256, (iter * m.G) mod 256, (iter * m.B) mod 256).
func ColorFor(iter, maxIter int, m Multipliers) RGB {
	if iter == maxIter {
		return Black
	}
	return RGB{
		R: uint8(iter * m.R & 0xFF), //nolint:gosec // G115: masked to a byte
		G: uint8(iter * m.G & 0xFF), //nolint:gosec // G115: masked to a byte
		B: uint8(iter * m.B & 0xFF), //nolint:gosec // G115: masked to a byte
	}
}

// paletteLUTLimit caps the lookup table at 4096 entries (12KB).
// Larger caps fall back to ColorFor per pixel.
const paletteLUTLimit = 4096

// Palette maps escape counts to colors for a fixed iteration cap.
//
// For caps up to 4096 the colors are precomputed into a lookup table, so a
// pixel costs one slice index instead of three multiplies.
type Palette struct {
	maxIter int
	mults   Multipliers
	lut     []RGB
}

// NewPalette builds the palette for maxIter.
func NewPalette(maxIter int, m Multipliers) Palette {
	p := Palette{maxIter: maxIter, mults: m}
	if maxIter >= 0 && maxIter < paletteLUTLimit {
		p.lut = make([]RGB, maxIter+1)
		for i := range p.lut {
			p.lut[i] = ColorFor(i, maxIter, m)
		}
	}
	return p
}

// MaxIter returns the cap the palette was built for.
func (p Palette) MaxIter() int {
	return p.maxIter
}

// Color returns the color for an escape count.
func (p Palette) Color(iter int) RGB {
	if uint(iter) < uint(len(p.lut)) {
		return p.lut[iter]
	}
	return ColorFor(iter, p.maxIter, p.mults)
}
