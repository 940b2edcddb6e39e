package palette

import (
	"image/color"
	"testing"

	"silicogenesis/internal/config"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
)

func TestColorAdd(t *testing.T) {
	tests := map[string]struct {
		c, d, want color.RGBA
	}{
		"plain":     {color.RGBA{0x10, 0x20, 0x30, 0x40}, color.RGBA{1, 2, 3, 0}, color.RGBA{0x11, 0x22, 0x33, 0x40}},
		"saturates": {color.RGBA{0xf8, 0x00, 0xff, 0xff}, color.RGBA{0x10, 0x10, 0x10, 0x10}, color.RGBA{0xff, 0x10, 0xff, 0xff}},
		"zero":      {color.RGBA{}, color.RGBA{}, color.RGBA{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ColorAdd(tt.c, tt.d); got != tt.want {
				t.Fatalf("ColorAdd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResourceColor(t *testing.T) {
	tests := map[string]struct {
		resource hexmap.ResourceType
		hovered  bool
		want     color.RGBA
		filled   bool
	}{
		"empty":         {hexmap.ResourceNone, false, color.RGBA{}, false},
		"empty hovered": {hexmap.ResourceNone, true, ColorAdd(config.MapBackgroundColor, config.HoverDiff), true},
		"metal":         {hexmap.ResourceMetal, false, config.MetalColor, true},
		"oil hovered":   {hexmap.ResourceOil, true, ColorAdd(config.OilColor, config.HoverDiff), true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, filled := ResourceColor(tt.resource, tt.hovered)
			if filled != tt.filled || got != tt.want {
				t.Fatalf("ResourceColor() = %v, %v, want %v, %v", got, filled, tt.want, tt.filled)
			}
		})
	}
}

func TestFacilityColor(t *testing.T) {
	if FacilityColor(world.Operating) != config.FacilityOperatingColor ||
		FacilityColor(world.Placing) != config.FacilityPlacingColor ||
		FacilityColor(world.Destroyed) != config.FacilityDestroyedColor {
		t.Fatal("facility colours do not follow the state")
	}
}

func TestMix(t *testing.T) {
	black := color.RGBA{0, 0, 0, 0xff}
	white := color.RGBA{0xff, 0xff, 0xff, 0x80}
	tests := map[string]struct {
		t    float64
		want color.RGBA
	}{
		"start":   {0, black},
		"end":     {1, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		"half":    {0.5, color.RGBA{0x80, 0x80, 0x80, 0xff}},
		"clamped": {2, color.RGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Mix(black, white, tt.t); got != tt.want {
				t.Fatalf("Mix(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestPlayerColorRepeats(t *testing.T) {
	n := uint8(len(PlayerColors))
	if PlayerColor(n) != PlayerColor(0) || PlayerColor(1) == PlayerColor(0) {
		t.Fatal("player colours do not cycle")
	}
}
