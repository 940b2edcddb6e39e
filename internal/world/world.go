// Package world holds the state of one game session. All state lives on
// World and is handed explicitly to the code that updates and draws it.
package world

import (
	"github.com/google/uuid"

	"silicogenesis/pkg/hexmap"
)

// DefaultPlayers is the number of players seeded when none is configured.
const DefaultPlayers = 4

// Options configures a new world.
type Options struct {
	Players int
	Layout  hexmap.ResourceLayout
}

// World is the map, its players and the camera looking at them.
type World struct {
	ID      uuid.UUID
	Map     *hexmap.Map
	Players []*Player

	// Origin is the map position drawn at the top-left corner of the window.
	Origin hexmap.MapCoord
	Frame  uint64

	hovered    hexmap.HexCoord
	hasHovered bool
}

// New builds the map and seeds the players.
func New(opts Options) *World {
	return &World{
		ID:      uuid.New(),
		Map:     hexmap.NewMap(opts.Layout),
		Players: InitPlayers(opts.Players),
	}
}

// Scroll moves the camera against the wheel direction and keeps the origin
// inside the map.
func (w *World) Scroll(dx, dy float64) {
	w.Origin = w.Origin.Sub(hexmap.MapCoord{X: dx, Y: dy}).Wrapped()
}

// Tick advances the frame counter and returns the new value.
func (w *World) Tick() uint64 {
	w.Frame++
	return w.Frame
}

// Hovered returns the hex under the cursor, if any.
func (w *World) Hovered() (hexmap.HexCoord, bool) {
	return w.hovered, w.hasHovered
}

// SetHovered records the hex under the cursor.
func (w *World) SetHovered(c hexmap.HexCoord) {
	w.hovered = c.Wrapped()
	w.hasHovered = true
}

// ClearHovered forgets the hovered hex.
func (w *World) ClearHovered() {
	w.hasHovered = false
}

// HexUnder returns the hex under a window position.
func (w *World) HexUnder(p hexmap.RenderCoord) hexmap.Hex {
	return w.Map.At(p.ContainingHex(w.Origin))
}

// FacilityAt returns the first facility located on c and its owner.
func (w *World) FacilityAt(c hexmap.HexCoord) (Facility, *Player, bool) {
	c = c.Wrapped()
	for _, p := range w.Players {
		for _, f := range p.Facilities {
			if f.Location == c {
				return f, p, true
			}
		}
	}
	return Facility{}, nil, false
}

// Influencers returns the players whose control centers reach c.
func (w *World) Influencers(c hexmap.HexCoord) []*Player {
	var out []*Player
	for _, p := range w.Players {
		for _, f := range p.Facilities {
			if f.Influences(c) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
