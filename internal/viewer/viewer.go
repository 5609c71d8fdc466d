// Package viewer shows frames in a window and maps keys to view changes.
//
// Rendering happens in Update, and only after the view changed; Draw just
// blits the last good frame. A frame that fails to render is skipped and
// the previous image stays on screen.
package viewer

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/overlay"
)

// Title is the window title.
const Title = "Mandelbrot"

// Viewer is an ebiten.Game presenting a Renderer's frames.
type Viewer struct {
	renderer *mandelbrot.Renderer
	frames   *mandelbrot.FramePool
	caption  *overlay.Overlay

	view  mandelbrot.View
	dirty bool

	canvas *ebiten.Image
}

// New creates a viewer for r, starting at the default view.
func New(r *mandelbrot.Renderer) (*Viewer, error) {
	frames, err := mandelbrot.NewFramePool(r.Width(), r.Height())
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	caption, err := overlay.New(overlay.DefaultSize)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	return &Viewer{
		renderer: r,
		frames:   frames,
		caption:  caption,
		view:     mandelbrot.DefaultView(),
		dirty:    true,
		canvas:   ebiten.NewImage(r.Width(), r.Height()),
	}, nil
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (v *Viewer) Run() error {
	defer func() {
		_ = v.caption.Close()
	}()

	ebiten.SetWindowSize(v.renderer.Width(), v.renderer.Height())
	ebiten.SetWindowTitle(Title)

	mandelbrot.Logger().Info("viewer: window opened",
		"width", v.renderer.Width(),
		"height", v.renderer.Height(),
		"kernel", v.renderer.Kernel())

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, a := range pollActions() {
		if v.view.Apply(a) {
			v.dirty = true
		}
	}

	if v.dirty {
		v.redraw()
		v.dirty = false
	}
	return nil
}

// redraw renders the current view into a pooled frame and uploads it.
func (v *Viewer) redraw() {
	frame := v.frames.Get()
	defer v.frames.Put(frame)

	if _, err := v.renderer.Render(frame, v.view); err != nil {
		mandelbrot.Logger().Warn("viewer: frame skipped", "view", v.view.String(), "err", err)
		return
	}

	v.caption.Draw(frame, overlay.Origin, v.view.String())
	v.canvas.WritePixels(frame.Data())
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.canvas, nil)
}

// Layout implements ebiten.Game. The logical screen is the frame size.
func (v *Viewer) Layout(int, int) (int, int) {
	return v.renderer.Width(), v.renderer.Height()
}
