// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"math"

	"silicogenesis/pkg/utils"
)

// Sqrt3 is the ratio between a hex's flat-to-flat width and its radius.
const Sqrt3 = 1.7320508075688772

// Grid geometry. Hexes are pointy-top; odd rows are shifted right by half a
// hex width, and both axes wrap around after HexCountSqrt hexes.
const (
	HexCountSqrt  = 64
	HexCount      = HexCountSqrt * HexCountSqrt
	HexSides      = 6
	HexRadius     = 32.0
	HexSideLength = HexRadius
	HexWidth      = Sqrt3 * HexRadius
	RowPitch      = HexRadius + HexSideLength/2

	MapWidthPixels  = HexCountSqrt * HexWidth
	MapHeightPixels = HexCountSqrt * RowPitch
)

// HexCoord addresses a hex by column I and row J.
type HexCoord struct {
	I, J int
}

func (c HexCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.I, c.J)
}

// EvenRow reports whether the hex sits in an unshifted row.
func (c HexCoord) EvenRow() bool {
	return c.J&1 == 0
}

// Wrapped folds both indices into [0, HexCountSqrt).
func (c HexCoord) Wrapped() HexCoord {
	return HexCoord{
		I: utils.Mod(c.I, HexCountSqrt),
		J: utils.Mod(c.J, HexCountSqrt),
	}
}

// Valid reports whether both indices already lie inside the grid.
func (c HexCoord) Valid() bool {
	return c.I >= 0 && c.I < HexCountSqrt && c.J >= 0 && c.J < HexCountSqrt
}

// Index returns the position of the hex in the map arena.
func (c HexCoord) Index() int {
	return c.I + c.J*HexCountSqrt
}

// HexCoordFromIndex is the inverse of Index.
func HexCoordFromIndex(index int) HexCoord {
	return HexCoord{I: index % HexCountSqrt, J: index / HexCountSqrt}
}

// MapCoord returns the pixel position of the hex centre on the map plane.
func (c HexCoord) MapCoord() MapCoord {
	x := float64(c.I) * HexWidth
	if !c.EvenRow() {
		x += HexWidth / 2
	}
	return MapCoord{X: x, Y: float64(c.J) * RowPitch}
}

// MapCoord is a pixel position on the map plane.
type MapCoord struct {
	X, Y float64
}

// Add returns m shifted by d.
func (m MapCoord) Add(d MapCoord) MapCoord {
	return MapCoord{X: m.X + d.X, Y: m.Y + d.Y}
}

// Sub returns m minus d.
func (m MapCoord) Sub(d MapCoord) MapCoord {
	return MapCoord{X: m.X - d.X, Y: m.Y - d.Y}
}

// Wrapped folds the position into [0, MapWidthPixels) x [0, MapHeightPixels).
func (m MapCoord) Wrapped() MapCoord {
	return MapCoord{
		X: utils.ModFloat(m.X, MapWidthPixels),
		Y: utils.ModFloat(m.Y, MapHeightPixels),
	}
}

// HexCoordRect finds the hex whose centre rectangle (one hex width by one
// row pitch) contains the position. The result is always wrapped into the
// grid, so centres round-trip exactly. It is only an estimate of the
// containing hex near slanted edges; see ContainingHex.
func (m MapCoord) HexCoordRect() HexCoord {
	j := int(math.Floor((m.Y + RowPitch/2) / RowPitch))
	x := m.X
	if j&1 == 1 {
		x -= HexWidth / 2
	}
	i := int(math.Floor((x + HexWidth/2) / HexWidth))
	return HexCoord{I: i, J: j}.Wrapped()
}

// ContainingHex returns the hex whose hexagon contains the position.
func (m MapCoord) ContainingHex() HexCoord {
	p := m.Wrapped()
	best := p.HexCoordRect()
	bestDist := toroidalDistSq(p, best.MapCoord())
	for _, n := range best.Neighbors() {
		if d := toroidalDistSq(p, n.MapCoord()); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// RenderCoord converts a map position into window space for a camera at
// origin. Positions whose hex would lie entirely left of or above the window
// are moved one map period forward so the far side of the torus shows up on
// the right and bottom.
func (m MapCoord) RenderCoord(origin MapCoord) RenderCoord {
	x := m.X - origin.X
	y := m.Y - origin.Y
	if x < -HexWidth/2 {
		x += MapWidthPixels
	}
	if y < -HexRadius {
		y += MapHeightPixels
	}
	return RenderCoord{X: x, Y: y}
}

// RenderCoord is a pixel position relative to the top-left corner of the window.
type RenderCoord struct {
	X, Y float64
}

// MapCoord converts a window position back onto the map.
func (r RenderCoord) MapCoord(origin MapCoord) MapCoord {
	return MapCoord{X: r.X + origin.X, Y: r.Y + origin.Y}.Wrapped()
}

// ContainingHex returns the hex under a window position.
func (r RenderCoord) ContainingHex(origin MapCoord) HexCoord {
	return r.MapCoord(origin).ContainingHex()
}

// toroidalDelta returns the shortest signed difference b-a on a ring of the given period.
func toroidalDelta(a, b, period float64) float64 {
	return utils.ModFloat(b-a+period/2, period) - period/2
}

func toroidalDistSq(a, b MapCoord) float64 {
	dx := toroidalDelta(a.X, b.X, MapWidthPixels)
	dy := toroidalDelta(a.Y, b.Y, MapHeightPixels)
	return dx*dx + dy*dy
}

// HexCountWidth returns how many hex columns span the given pixel width.
func HexCountWidth(pixels float64) int {
	return int(math.Ceil(pixels / HexWidth))
}

// HexCountHeight returns how many hex rows span the given pixel height.
func HexCountHeight(pixels float64) int {
	return int(math.Ceil(pixels / RowPitch))
}

// HexWidthPixels returns the pixel width covered by n hex columns.
func HexWidthPixels(n int) float64 {
	w := float64(n) * HexWidth
	if n%2 == 1 {
		w -= HexWidth / 2
	}
	return w
}

// HexHeightPixels returns the pixel height covered by n hex rows.
func HexHeightPixels(n int) float64 {
	return float64(n) * RowPitch
}
