// pkg/palette/palette.go
// Package palette maps map and facility state to colours. It does not
// depend on a drawing library, so every front end can share it.
package palette

import (
	"image/color"

	"silicogenesis/internal/config"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
)

// ColorAdd adds d to c channel by channel, saturating at 0xff.
func ColorAdd(c, d color.RGBA) color.RGBA {
	add := func(a, b uint8) uint8 {
		return uint8(min(255, int(a)+int(b)))
	}
	return color.RGBA{
		R: add(c.R, d.R),
		G: add(c.G, d.G),
		B: add(c.B, d.B),
		A: add(c.A, d.A),
	}
}

// ResourceColor returns the fill of a hex and whether it is filled at all.
// Empty hexes are only filled while hovered.
func ResourceColor(r hexmap.ResourceType, hovered bool) (color.RGBA, bool) {
	var c color.RGBA
	switch r {
	case hexmap.ResourceMetal:
		c = config.MetalColor
	case hexmap.ResourceOil:
		c = config.OilColor
	default:
		if !hovered {
			return color.RGBA{}, false
		}
		c = config.MapBackgroundColor
	}
	if hovered {
		c = ColorAdd(c, config.HoverDiff)
	}
	return c, true
}

// FacilityColor is the label colour for a facility in state s.
func FacilityColor(s world.FacilityState) color.RGBA {
	switch s {
	case world.Placing:
		return config.FacilityPlacingColor
	case world.Destroyed:
		return config.FacilityDestroyedColor
	default:
		return config.FacilityOperatingColor
	}
}

// PlayerColors tint the hexes inside a player's influence.
var PlayerColors = []color.RGBA{
	{0x44, 0x0e, 0x62, 0xff},
	{0x00, 0x4b, 0x80, 0xff},
	{0x9e, 0x0b, 0x0f, 0xff},
	{0x3c, 0x7a, 0x2e, 0xff},
}

// PlayerColor returns the tint of player id. Colours repeat when there
// are more players than colours.
func PlayerColor(id uint8) color.RGBA {
	return PlayerColors[int(id)%len(PlayerColors)]
}

// Mix blends c towards d by t in [0, 1]. Alpha is taken from c.
func Mix(c, d color.RGBA, t float64) color.RGBA {
	t = max(0, min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return color.RGBA{R: mix(c.R, d.R), G: mix(c.G, d.G), B: mix(c.B, d.B), A: c.A}
}
