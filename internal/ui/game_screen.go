package ui

import (
	"log/slog"

	"silicogenesis/internal/event"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
)

// GameScreen routes input in the game stage: popup windows first, in
// layer order, then the map.
type GameScreen struct {
	World  *world.World
	Screen Size

	Error *ErrorWindow
	Pause *PauseWindow
	Hex   *HexWindow

	events *event.Dispatcher
}

// NewGameScreen wires the windows of the game stage. events may be nil.
func NewGameScreen(w *world.World, screen Size, events *event.Dispatcher) *GameScreen {
	g := &GameScreen{
		World:  w,
		Screen: screen,
		Error:  NewErrorWindow(),
		Hex:    NewHexWindow(),
		events: events,
	}
	g.Pause = NewPauseWindow(func() {
		g.dispatch(event.StageChangeRequested, event.StageTitle)
	})
	return g
}

// Windows returns the popups in layer order.
func (g *GameScreen) Windows() []Window {
	return []Window{g.Error, g.Pause, g.Hex}
}

// AnyWindowOpen reports whether a popup is showing.
func (g *GameScreen) AnyWindowOpen() bool {
	for _, w := range g.Windows() {
		if w.Frame().IsOpen() {
			return true
		}
	}
	return false
}

// HandleInput applies one frame of input.
func (g *GameScreen) HandleInput(in Input) {
	if in.ScrollX != 0 || in.ScrollY != 0 {
		g.Scroll(in.ScrollX, in.ScrollY)
	}
	g.Hover(in.Mouse)
	if in.LeftReleased {
		g.Click(in.Mouse)
	}
	if in.Key != KeyNone {
		g.KeyPress(in.Key)
	}
}

// Scroll moves the camera unless an open window takes the scroll.
func (g *GameScreen) Scroll(dx, dy float64) Result {
	for _, w := range g.Windows() {
		if ScrollWindow(w, dx, dy) == Consume {
			return Consume
		}
	}
	g.World.Scroll(dx, dy)
	return Consume
}

// Hover tracks the hex under the cursor while no window is open.
func (g *GameScreen) Hover(p hexmap.RenderCoord) Result {
	for _, w := range g.Windows() {
		if HoverWindow(w, p) == Consume {
			return Consume
		}
	}
	if g.AnyWindowOpen() {
		return Pass
	}
	g.World.SetHovered(p.ContainingHex(g.World.Origin))
	return Consume
}

// Click lets the windows react first and otherwise opens the hex window
// for the clicked hex.
func (g *GameScreen) Click(p hexmap.RenderCoord) Result {
	for _, w := range g.Windows() {
		if ClickWindow(w, p) == Consume {
			return Consume
		}
	}
	hex := g.World.HexUnder(p)
	facility := ""
	if f, _, ok := g.World.FacilityAt(hex.Coord); ok {
		facility = f.Type.DisplayName()
	}
	g.Hex.Open(p, g.Screen, hex, facility)
	g.dispatch(event.HexSelected, hex.Coord)
	return Consume
}

// KeyPress lets the windows react first. An open window closes on Escape,
// so Escape reaching the map always opens the pause window.
func (g *GameScreen) KeyPress(k Key) Result {
	for _, w := range g.Windows() {
		if KeyWindow(w, k) == Consume {
			return Consume
		}
	}
	if k != KeyEscape {
		return Pass
	}
	g.Pause.Open(g.Screen)
	g.dispatch(event.PauseToggled, true)
	return Consume
}

// Paused reports whether the pause window is open.
func (g *GameScreen) Paused() bool {
	return g.Pause.Frame().IsOpen()
}

// ReportError shows message in the error window.
func (g *GameScreen) ReportError(message string) {
	slog.Warn("reporting error to player", "message", message)
	g.Error.Open(message, g.Screen)
}

// Resize records a new screen size. Open windows keep their position.
func (g *GameScreen) Resize(screen Size) {
	g.Screen = screen
}

func (g *GameScreen) dispatch(t event.EventType, data any) {
	if g.events != nil {
		g.events.Dispatch(event.Event{Type: t, Data: data})
	}
}
