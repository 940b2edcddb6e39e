package world

import "silicogenesis/pkg/hexmap"

// FacilityType identifies what a facility does.
type FacilityType int

const (
	ControlCenter FacilityType = iota
	MetalExtractor
	OilExtractor
)

// ControlCenterInfluenceRadius is how many steps a control center reaches.
const ControlCenterInfluenceRadius = 4

// DisplayName is the human readable name shown in the hex window.
func (t FacilityType) DisplayName() string {
	switch t {
	case MetalExtractor:
		return "Metal Extractor"
	case OilExtractor:
		return "Oil Extractor"
	default:
		return "Control Center"
	}
}

// Label is the short tag drawn on the map.
func (t FacilityType) Label() string {
	switch t {
	case MetalExtractor:
		return "ME"
	case OilExtractor:
		return "OE"
	default:
		return "CC"
	}
}

// FacilityState is the lifecycle stage of a facility.
type FacilityState int

const (
	Operating FacilityState = iota
	Placing
	Destroyed
)

func (s FacilityState) String() string {
	switch s {
	case Placing:
		return "placing"
	case Destroyed:
		return "destroyed"
	default:
		return "operating"
	}
}

// Facility is a building owned by a player.
type Facility struct {
	Location hexmap.HexCoord
	Type     FacilityType
	State    FacilityState
}

// Influences reports whether the facility projects influence onto c.
// Only operating control centers have influence.
func (f Facility) Influences(c hexmap.HexCoord) bool {
	if f.Type != ControlCenter || f.State != Operating {
		return false
	}
	return f.Location.StepDistanceLE(c, ControlCenterInfluenceRadius)
}

// Player owns an ordered list of facilities.
type Player struct {
	ID         uint8
	Facilities []Facility
}

// InitPlayers creates n players. Player p starts with one operating control
// center on the diagonal at (64/n*p, 64/n*p).
func InitPlayers(n int) []*Player {
	if n <= 0 {
		return nil
	}
	step := hexmap.HexCountSqrt / n
	players := make([]*Player, 0, n)
	for p := 0; p < n; p++ {
		loc := hexmap.HexCoord{I: step * p, J: step * p}.Wrapped()
		players = append(players, &Player{
			ID: uint8(p),
			Facilities: []Facility{{
				Location: loc,
				Type:     ControlCenter,
				State:    Operating,
			}},
		})
	}
	return players
}
