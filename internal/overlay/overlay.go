// Package overlay draws the view-bounds caption on top of a rendered frame.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultSize is the caption size in points at 72 DPI.
	DefaultSize = 14

	// padding around the caption inside its backdrop, in pixels.
	padding = 4
)

// Origin is the top-left corner of the caption.
var Origin = image.Point{X: 10, Y: 10}

// Overlay renders single-line captions in Go Regular.
//
// Glyphs are rasterized with golang.org/x/image; the caption width used for
// the backdrop comes from HarfBuzz shaping via go-text/typesetting, so
// kerning is accounted for.
//
// Overlay is not safe for concurrent use.
type Overlay struct {
	size float64

	face    font.Face
	metrics font.Metrics

	shaper *shaping.HarfbuzzShaper
	shaped *gtfont.Face

	// Text is the caption color, Backdrop the box behind it.
	Text     color.Color
	Backdrop color.Color
}

// New parses the embedded Go Regular font at size points.
func New(size float64) (*Overlay, error) {
	otFont, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("overlay: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("overlay: failed to create face: %w", err)
	}

	shaped, err := gtfont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		_ = face.Close()
		return nil, fmt.Errorf("overlay: failed to parse font for shaping: %w", err)
	}

	return &Overlay{
		size:     size,
		face:     face,
		metrics:  face.Metrics(),
		shaper:   &shaping.HarfbuzzShaper{},
		shaped:   shaped,
		Text:     color.White,
		Backdrop: color.RGBA{A: 0x99},
	}, nil
}

// Close releases the rasterizer face.
func (o *Overlay) Close() error {
	return o.face.Close()
}

// Advance returns the shaped width of s in pixels, rounded up.
func (o *Overlay) Advance(s string) int {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	out := o.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      o.shaped,
		Size:      fixed.Int26_6(o.size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	})

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return adv.Ceil()
}

// Bounds returns the backdrop rectangle of s drawn at at.
func (o *Overlay) Bounds(at image.Point, s string) image.Rectangle {
	h := (o.metrics.Ascent + o.metrics.Descent).Ceil()
	return image.Rect(at.X, at.Y, at.X+o.Advance(s)+2*padding, at.Y+h+2*padding)
}

// Draw paints s with its top-left corner at at.
// The backdrop is composited over dst, then the glyphs over the backdrop.
func (o *Overlay) Draw(dst draw.Image, at image.Point, s string) {
	if s == "" {
		return
	}

	box := o.Bounds(at, s).Intersect(dst.Bounds())
	if !box.Empty() {
		xdraw.Draw(dst, box, image.NewUniform(o.Backdrop), image.Point{}, xdraw.Over)
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(o.Text),
		Face: o.face,
		Dot:  fixed.P(at.X+padding, at.Y+padding+o.metrics.Ascent.Ceil()),
	}
	d.DrawString(s)
}
