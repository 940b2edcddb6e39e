// pkg/hexmap/map.go
package hexmap

// ResourceType is the deposit found on a hex.
type ResourceType int

const (
	ResourceNone ResourceType = iota
	ResourceMetal
	ResourceOil
)

func (r ResourceType) String() string {
	switch r {
	case ResourceMetal:
		return "METAL"
	case ResourceOil:
		return "OIL"
	default:
		return "NONE"
	}
}

// Hex is a single map tile.
type Hex struct {
	Coord    HexCoord
	Resource ResourceType
}

// Map holds every hex of the grid, indexed by HexCoord.Index.
// It is built once and not modified afterwards.
type Map struct {
	Hexes [HexCount]Hex
}

// NewMap builds the full grid, asking layout for the resource of each hex.
// A nil layout falls back to the fixed placeholder pattern.
func NewMap(layout ResourceLayout) *Map {
	if layout == nil {
		layout = PlaceholderLayout{}
	}
	m := &Map{}
	for idx := range m.Hexes {
		c := HexCoordFromIndex(idx)
		m.Hexes[idx] = Hex{Coord: c, Resource: layout.ResourceAt(c)}
	}
	return m
}

// At returns the hex at c. Coordinates outside the grid panic.
func (m *Map) At(c HexCoord) Hex {
	if !c.Valid() {
		panic("hexmap: coordinate out of range: " + c.String())
	}
	return m.Hexes[c.Index()]
}

// Lookup returns the hex at c, or false when c lies outside the grid.
func (m *Map) Lookup(c HexCoord) (Hex, bool) {
	if !c.Valid() {
		return Hex{}, false
	}
	return m.Hexes[c.Index()], true
}

// ResourceCounts tallies hexes per resource type.
func (m *Map) ResourceCounts() map[ResourceType]int {
	counts := make(map[ResourceType]int)
	for _, h := range m.Hexes {
		counts[h.Resource]++
	}
	return counts
}
