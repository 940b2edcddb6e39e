// internal/event/types.go
package event

const (
	// StageChangeRequested carries the Stage to switch to.
	StageChangeRequested EventType = "StageChangeRequested"
	// HexSelected carries the hexmap.HexCoord that was clicked.
	HexSelected EventType = "HexSelected"
	// PauseToggled carries true when the pause window opened.
	PauseToggled EventType = "PauseToggled"
	// ErrorReported carries a message for the error window.
	ErrorReported EventType = "ErrorReported"
)

// Stage is a top-level screen of the client.
type Stage int

const (
	StageLoading Stage = iota
	StageTitle
	StageGame
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageTitle:
		return "title"
	case StageGame:
		return "game"
	default:
		return "unknown"
	}
}
