package hexmap

import "silicogenesis/pkg/utils"

// visibleMargin is the number of extra rows and columns walked beyond the
// ones the window spans, covering the partial hexes on every edge.
const visibleMargin = 3

// Visible calls fn for every hex that can appear in a width x height window
// whose top-left corner sits at origin. The walk starts one hex up and left
// of the origin hex and wraps around the grid; no hex is visited twice, even
// when the window is larger than the map.
func Visible(origin MapCoord, width, height float64, fn func(c HexCoord, at RenderCoord)) {
	origin = origin.Wrapped()
	start := origin.HexCoordRect()
	cols := min(HexCountWidth(width)+visibleMargin, HexCountSqrt)
	rows := min(HexCountHeight(height)+visibleMargin, HexCountSqrt)

	for dj := 0; dj < rows; dj++ {
		j := utils.Mod(start.J-1+dj, HexCountSqrt)
		for di := 0; di < cols; di++ {
			c := HexCoord{I: utils.Mod(start.I-1+di, HexCountSqrt), J: j}
			fn(c, c.MapCoord().RenderCoord(origin))
		}
	}
}

// VisibleCoords collects the hexes Visible would walk, in walk order.
func VisibleCoords(origin MapCoord, width, height float64) []HexCoord {
	var out []HexCoord
	Visible(origin, width, height, func(c HexCoord, _ RenderCoord) {
		out = append(out, c)
	})
	return out
}
