package hexmap

// Neighbour offsets per row parity. The first two entries are the diagonal
// neighbours that differ in both I and J.
var (
	neighborDiffEven = [HexSides]HexCoord{
		{I: -1, J: -1}, {I: -1, J: 1}, {I: -1, J: 0},
		{I: 1, J: 0}, {I: 0, J: -1}, {I: 0, J: 1},
	}
	neighborDiffOdd = [HexSides]HexCoord{
		{I: 1, J: 1}, {I: 1, J: -1}, {I: -1, J: 0},
		{I: 0, J: -1}, {I: 0, J: 1}, {I: 1, J: 0},
	}
)

// vertexDiff lists the corner offsets from a hex centre, clockwise from the top.
var vertexDiff = [HexSides]MapCoord{
	{X: 0, Y: -HexRadius},
	{X: HexWidth / 2, Y: -HexRadius / 2},
	{X: HexWidth / 2, Y: HexRadius / 2},
	{X: 0, Y: HexRadius},
	{X: -HexWidth / 2, Y: HexRadius / 2},
	{X: -HexWidth / 2, Y: -HexRadius / 2},
}

// Neighbors returns the six adjacent hexes, wrapped into the grid.
func (c HexCoord) Neighbors() [HexSides]HexCoord {
	diffs := &neighborDiffEven
	if !c.EvenRow() {
		diffs = &neighborDiffOdd
	}
	var out [HexSides]HexCoord
	for k, d := range diffs {
		out[k] = HexCoord{I: c.I + d.I, J: c.J + d.J}.Wrapped()
	}
	return out
}

// IsNeighbor reports whether other is adjacent to c, across the wrap seam included.
func (c HexCoord) IsNeighbor(other HexCoord) bool {
	other = other.Wrapped()
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// StepDistance returns the number of hex steps between c and other, taking
// the shortest path around the torus.
func (c HexCoord) StepDistance(other HexCoord) int {
	a := c.Wrapped()
	b := other.Wrapped()
	q1, r1 := offsetToAxial(a.I, a.J)
	best := -1
	// HexCountSqrt is even, so shifting a row by a full period keeps its parity.
	for _, dj := range [3]int{-HexCountSqrt, 0, HexCountSqrt} {
		for _, di := range [3]int{-HexCountSqrt, 0, HexCountSqrt} {
			q2, r2 := offsetToAxial(b.I+di, b.J+dj)
			if d := axialDistance(q1, r1, q2, r2); best < 0 || d < best {
				best = d
			}
		}
	}
	return best
}

// StepDistanceLE reports whether other is at most k steps away from c.
func (c HexCoord) StepDistanceLE(other HexCoord, k int) bool {
	if k < 0 {
		return false
	}
	return c.StepDistance(other) <= k
}

// Vertices returns the six corners of the hex on the map plane.
func (c HexCoord) Vertices() [HexSides]MapCoord {
	center := c.MapCoord()
	var out [HexSides]MapCoord
	for k, d := range vertexDiff {
		out[k] = center.Add(d)
	}
	return out
}

// SharedVertices returns the two corners c shares with other, in c's frame.
// ok is false iff the hexes are not adjacent.
func (c HexCoord) SharedVertices(other HexCoord) (a, b MapCoord, ok bool) {
	if !c.IsNeighbor(other) {
		return MapCoord{}, MapCoord{}, false
	}
	center := c.MapCoord()
	o := other.Wrapped().MapCoord()
	// Place the neighbour next to c even when it sits across the seam.
	oc := MapCoord{
		X: center.X + toroidalDelta(center.X, o.X, MapWidthPixels),
		Y: center.Y + toroidalDelta(center.Y, o.Y, MapHeightPixels),
	}

	var shared [2]MapCoord
	n := 0
	for _, v := range c.Vertices() {
		for _, d := range vertexDiff {
			w := oc.Add(d)
			if nearlyEqual(v.X, w.X) && nearlyEqual(v.Y, w.Y) {
				shared[n] = v
				n++
				if n == len(shared) {
					return shared[0], shared[1], true
				}
			}
		}
	}
	return MapCoord{}, MapCoord{}, false
}
