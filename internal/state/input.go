package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"silicogenesis/internal/config"
	"silicogenesis/internal/ui"
	"silicogenesis/pkg/hexmap"
)

// PollInput collects this frame's input from ebiten. Wheel notches are
// converted to pixels.
func PollInput() ui.Input {
	x, y := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return ui.Input{
		Mouse:        hexmap.RenderCoord{X: float64(x), Y: float64(y)},
		ScrollX:      wx * config.ScrollSpeed,
		ScrollY:      wy * config.ScrollSpeed,
		LeftReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Key:          boundKey(inpututil.AppendJustPressedKeys(nil)),
	}
}

// boundKey picks the first key the interface has a binding for, or
// KeyOther when only unbound keys were pressed.
func boundKey(keys []ebiten.Key) ui.Key {
	if len(keys) == 0 {
		return ui.KeyNone
	}
	for _, k := range keys {
		if key := keyFromEbiten(k); key != ui.KeyOther {
			return key
		}
	}
	return ui.KeyOther
}

func keyFromEbiten(k ebiten.Key) ui.Key {
	switch k {
	case ebiten.KeyEscape:
		return ui.KeyEscape
	case ebiten.KeyP:
		return ui.KeyP
	default:
		return ui.KeyOther
	}
}
