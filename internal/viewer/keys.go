package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/mandelbrot"
)

// Held keys repeat after repeatDelay ticks, every repeatInterval ticks.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

type binding struct {
	keys   []ebiten.Key
	action mandelbrot.Action
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowLeft}, mandelbrot.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight}, mandelbrot.ActionRight},
	{[]ebiten.Key{ebiten.KeyArrowUp}, mandelbrot.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown}, mandelbrot.ActionDown},
	{[]ebiten.Key{ebiten.KeyNumpadAdd, ebiten.KeyEqual}, mandelbrot.ActionZoomIn},
	{[]ebiten.Key{ebiten.KeyNumpadSubtract, ebiten.KeyMinus}, mandelbrot.ActionZoomOut},
	{[]ebiten.Key{ebiten.KeySpace}, mandelbrot.ActionReset},
}

// pollActions returns the actions triggered on this tick, in binding order.
func pollActions() []mandelbrot.Action {
	var actions []mandelbrot.Action
	for _, b := range bindings {
		for _, k := range b.keys {
			if fires(inpututil.KeyPressDuration(k)) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

// fires reports whether a key held for ticks ticks triggers on this tick:
// once on press, then at the repeat rate.
func fires(ticks int) bool {
	switch {
	case ticks == 1:
		return true
	case ticks > repeatDelay:
		return (ticks-repeatDelay)%repeatInterval == 0
	default:
		return false
	}
}
