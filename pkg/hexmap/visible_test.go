package hexmap

import "testing"

func TestVisibleCount(t *testing.T) {
	tests := map[string]struct {
		origin        MapCoord
		width, height float64
		want          int
	}{
		"display at origin": {MapCoord{0, 0}, 1600, 900, 32 * 22},
		"display wrapped":   {MapCoord{MapWidthPixels - 1, MapHeightPixels - 1}, 1600, 900, 32 * 22},
		"tiny window":       {MapCoord{100, 100}, 1, 1, 4 * 4},
		"larger than map":   {MapCoord{0, 0}, 10000, 10000, HexCount},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			coords := VisibleCoords(tt.origin, tt.width, tt.height)
			if len(coords) != tt.want {
				t.Fatalf("visited %d hexes, want %d", len(coords), tt.want)
			}
			seen := make(map[HexCoord]bool, len(coords))
			for _, c := range coords {
				if !c.Valid() {
					t.Fatalf("visited %v outside the grid", c)
				}
				if seen[c] {
					t.Fatalf("visited %v twice", c)
				}
				seen[c] = true
			}
		})
	}
}

func TestVisibleStartsUpAndLeftOfOrigin(t *testing.T) {
	coords := VisibleCoords(MapCoord{0, 0}, 1600, 900)
	if coords[0] != (HexCoord{63, 63}) {
		t.Fatalf("first visited hex = %v, want (63, 63)", coords[0])
	}
}

// Every pixel of the window must land in a hex that was visited.
func TestVisibleCoversWindow(t *testing.T) {
	const width, height = 1600.0, 900.0
	origins := []MapCoord{
		{0, 0},
		{123.4, 77.7},
		{MapWidthPixels - 10, MapHeightPixels - 10},
		{MapWidthPixels / 2, 20},
	}
	for _, origin := range origins {
		seen := make(map[HexCoord]bool)
		Visible(origin, width, height, func(c HexCoord, _ RenderCoord) {
			seen[c] = true
		})
		for y := 0.0; y < height; y += 5 {
			for x := 0.0; x < width; x += 5 {
				c := RenderCoord{x, y}.ContainingHex(origin)
				if !seen[c] {
					t.Fatalf("origin %+v: pixel (%v, %v) in %v was not visited", origin, x, y, c)
				}
			}
		}
	}
}

// Render positions handed to the callback must place the hex under its pixels.
func TestVisibleRenderCoords(t *testing.T) {
	origin := MapCoord{MapWidthPixels - 300, MapHeightPixels - 200}
	Visible(origin, 1600, 900, func(c HexCoord, at RenderCoord) {
		if at.X < -HexWidth/2-1e-9 || at.Y < -HexRadius-1e-9 {
			t.Fatalf("%v rendered at %+v, left of or above the window", c, at)
		}
		if at.X < 0 || at.Y < 0 || at.X >= 1600 || at.Y >= 900 {
			return
		}
		if got := at.ContainingHex(origin); got != c {
			t.Fatalf("%v rendered at %+v which lies in %v", c, at, got)
		}
	})
}
