package ui

import (
	"testing"

	"silicogenesis/internal/event"
	"silicogenesis/internal/world"
	"silicogenesis/pkg/hexmap"
)

var display = Size{W: 1600, H: 900}

type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * size / 2, size
}

func pt(x, y float64) hexmap.RenderCoord {
	return hexmap.RenderCoord{X: x, Y: y}
}

func newTestScreen(t *testing.T) (*GameScreen, *[]event.Event) {
	t.Helper()
	d := event.NewDispatcher()
	var got []event.Event
	record := func(e event.Event) { got = append(got, e) }
	d.SubscribeFunc(event.StageChangeRequested, record)
	d.SubscribeFunc(event.HexSelected, record)
	d.SubscribeFunc(event.PauseToggled, record)
	return NewGameScreen(world.New(world.Options{Players: world.DefaultPlayers}), display, d), &got
}

func TestRectButton(t *testing.T) {
	clicks := 0
	b := NewRectButton(Rect{X: 10, Y: 10, W: 20, H: 20}, "ok", func() Result {
		clicks++
		return Consume
	})
	if b.Click(pt(5, 5)) != Pass || clicks != 0 {
		t.Fatal("click outside fired the button")
	}
	if b.Click(pt(15, 15)) != Consume || clicks != 1 {
		t.Fatal("click inside did not fire the button")
	}
	if b.Click(pt(30, 15)) != Pass {
		t.Fatal("right edge is inside the button")
	}

	b.Hover(pt(15, 15))
	if !b.Hovered() {
		t.Fatal("hover not recorded")
	}
	b.Hover(pt(50, 50))
	if b.Hovered() {
		t.Fatal("hover not cleared after leaving")
	}
}

func TestBoundedOrigin(t *testing.T) {
	tests := map[string]struct {
		at, want hexmap.RenderCoord
	}{
		"fits":         {pt(100, 100), pt(100, 100)},
		"right edge":   {pt(1500, 100), pt(1300, 100)},
		"bottom edge":  {pt(100, 850), pt(100, 700)},
		"corner":       {pt(1599, 899), pt(1300, 700)},
		"exactly fits": {pt(1300, 700), pt(1300, 700)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := BoundedOrigin(tt.at, HexWindowSize, display); got != tt.want {
				t.Fatalf("BoundedOrigin(%+v) = %+v, want %+v", tt.at, got, tt.want)
			}
		})
	}
}

func TestHexWindowTitle(t *testing.T) {
	tests := map[string]struct {
		hex      hexmap.Hex
		facility string
		want     string
	}{
		"empty":          {hexmap.Hex{}, "", "Empty"},
		"metal":          {hexmap.Hex{Resource: hexmap.ResourceMetal}, "", "Resource: METAL"},
		"oil":            {hexmap.Hex{Resource: hexmap.ResourceOil}, "", "Resource: OIL"},
		"facility":       {hexmap.Hex{}, "Control Center", "Control Center"},
		"metal facility": {hexmap.Hex{Resource: hexmap.ResourceMetal}, "Metal Extractor", "Resource: METAL\nMetal Extractor"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := NewHexWindow()
			w.Open(pt(0, 0), display, tt.hex, tt.facility)
			if got := w.Title(); got != tt.want {
				t.Fatalf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindowClickRouting(t *testing.T) {
	w := NewHexWindow()
	if ClickWindow(w, pt(10, 10)) != Pass {
		t.Fatal("closed window consumed a click")
	}

	w.Open(pt(100, 100), display, hexmap.Hex{Coord: hexmap.HexCoord{I: 3, J: 7}}, "")
	if w.Footer() != "(3, 7)" {
		t.Fatalf("Footer() = %q", w.Footer())
	}
	if ClickWindow(w, pt(150, 250)) != Consume || !w.Frame().IsOpen() {
		t.Fatal("click inside the window should be consumed and keep it open")
	}

	closeAt := w.Frame().SideButtonRect(0).Center()
	if ClickWindow(w, closeAt) != Consume || w.Frame().IsOpen() {
		t.Fatal("close button did not close the window")
	}

	w.Open(pt(100, 100), display, hexmap.Hex{}, "")
	if ClickWindow(w, pt(1000, 800)) != Consume || w.Frame().IsOpen() {
		t.Fatal("click outside did not close the window")
	}
}

func TestSideButtonRect(t *testing.T) {
	p := NewPauseWindow(nil)
	p.Open(display)
	if got, want := p.Frame().Origin(), pt(625, 250); got != want {
		t.Fatalf("pause origin = %+v, want %+v", got, want)
	}
	want := Rect{X: 923, Y: 302, W: SideButtonWidth, H: SideButtonWidth}
	if got := p.Frame().SideButtonRect(1); got != want {
		t.Fatalf("SideButtonRect(1) = %+v, want %+v", got, want)
	}
}

func TestGameScreenClickOpensHexWindow(t *testing.T) {
	g, events := newTestScreen(t)
	metal := hexmap.HexCoord{I: 10, J: 4}
	at := metal.MapCoord()

	g.HandleInput(Input{Mouse: pt(at.X, at.Y), LeftReleased: true})
	hex, open := g.Hex.Hex()
	if !open || hex.Coord != metal {
		t.Fatalf("hex window shows %v (open %v), want %v", hex.Coord, open, metal)
	}
	if g.Hex.Title() != "Resource: METAL" {
		t.Fatalf("title = %q", g.Hex.Title())
	}
	if len(*events) != 1 || (*events)[0].Type != event.HexSelected || (*events)[0].Data != metal {
		t.Fatalf("events = %+v", *events)
	}

	// A click outside the open window only closes it.
	g.Click(pt(1500, 800))
	if g.Hex.Frame().IsOpen() {
		t.Fatal("hex window still open")
	}

	g.Click(pt(1500, 800))
	if got := g.Hex.Frame().Origin(); got != pt(1300, 700) {
		t.Fatalf("hex window origin = %+v, want bounded to (1300, 700)", got)
	}
}

func TestGameScreenClickOnFacility(t *testing.T) {
	g, _ := newTestScreen(t)
	cc := hexmap.HexCoord{I: 16, J: 16}.MapCoord()
	g.Click(pt(cc.X, cc.Y))
	if g.Hex.Title() != "Control Center" {
		t.Fatalf("title = %q, want Control Center", g.Hex.Title())
	}
}

func TestGameScreenPause(t *testing.T) {
	g, events := newTestScreen(t)

	g.KeyPress(KeyEscape)
	if !g.Paused() {
		t.Fatal("escape did not open the pause window")
	}
	if last := (*events)[len(*events)-1]; last.Type != event.PauseToggled || last.Data != true {
		t.Fatalf("last event = %+v", last)
	}

	// Paused: scrolling is swallowed and other keys do nothing.
	g.Scroll(0, -40)
	if g.World.Origin != (hexmap.MapCoord{}) {
		t.Fatalf("origin moved to %+v while paused", g.World.Origin)
	}
	if g.KeyPress(KeyOther) != Consume || !g.Paused() {
		t.Fatal("pause window let a key through")
	}

	g.KeyPress(KeyEscape)
	if g.Paused() {
		t.Fatal("escape did not close the pause window")
	}

	g.KeyPress(KeyEscape)
	g.KeyPress(KeyP)
	if g.Paused() {
		t.Fatal("P did not close the pause window")
	}
}

func TestGameScreenPauseExit(t *testing.T) {
	g, events := newTestScreen(t)
	g.KeyPress(KeyEscape)
	*events = nil

	g.Click(g.Pause.ExitButton().Rect.Center())
	if len(*events) != 1 || (*events)[0].Type != event.StageChangeRequested || (*events)[0].Data != event.StageTitle {
		t.Fatalf("events = %+v", *events)
	}
}

func TestGameScreenScroll(t *testing.T) {
	g, _ := newTestScreen(t)
	g.HandleInput(Input{ScrollY: -48})
	if g.World.Origin.Y != 48 {
		t.Fatalf("origin y = %v, want 48", g.World.Origin.Y)
	}

	// The hex window lets the map scroll underneath it.
	g.Click(pt(200, 200))
	g.Scroll(0, -48)
	if g.World.Origin.Y != 96 {
		t.Fatalf("origin y = %v, want 96", g.World.Origin.Y)
	}
}

func TestGameScreenHover(t *testing.T) {
	g, _ := newTestScreen(t)
	c := hexmap.HexCoord{I: 3, J: 3}.MapCoord()
	g.Hover(pt(c.X, c.Y))
	if got, ok := g.World.Hovered(); !ok || got != (hexmap.HexCoord{I: 3, J: 3}) {
		t.Fatalf("hovered = %v, %v", got, ok)
	}

	g.KeyPress(KeyEscape)
	g.Hover(pt(10, 10))
	if got, _ := g.World.Hovered(); got != (hexmap.HexCoord{I: 3, J: 3}) {
		t.Fatalf("hover changed to %v behind an open window", got)
	}
}

func TestGameScreenErrorLayerFirst(t *testing.T) {
	g, _ := newTestScreen(t)
	g.ReportError("font missing")
	if !g.Error.Frame().IsOpen() || g.Error.Message() != "font missing" {
		t.Fatal("error window not shown")
	}

	g.KeyPress(KeyEscape)
	if g.Error.Frame().IsOpen() {
		t.Fatal("escape did not close the error window")
	}
	if g.Paused() {
		t.Fatal("escape opened the pause window while closing the error window")
	}
}

func TestTitleScreen(t *testing.T) {
	played, account := 0, 0
	actions := TitleActions{
		Play:    func() { played++ },
		Account: func() { account++ },
	}

	ts := NewTitleScreen("Silicogenesis", display, fixedMeasurer{}, true, actions)
	if ts.Debug == nil || len(ts.AllButtons()) != 3 {
		t.Fatal("debug button missing")
	}
	// Widest label is "Account": 7 * 9 + 2 * 8.
	if ts.Buttons[0].Rect.W != 79 {
		t.Fatalf("button width = %v, want 79", ts.Buttons[0].Rect.W)
	}

	ts.HandleInput(Input{Mouse: ts.Debug.Rect.Center(), LeftReleased: true})
	ts.Click(ts.Buttons[0].Rect.Center())
	ts.Click(ts.Buttons[1].Rect.Center())
	if played != 2 || account != 1 {
		t.Fatalf("played %d, account %d", played, account)
	}

	ts.Hover(ts.Buttons[1].Rect.Center())
	if !ts.Buttons[1].Hovered() || ts.Buttons[0].Hovered() {
		t.Fatal("hover highlights the wrong button")
	}
	if ts.Click(pt(1, 899)) != Pass {
		t.Fatal("click on empty space consumed")
	}

	hidden := NewTitleScreen("Silicogenesis", display, fixedMeasurer{}, false, actions)
	if hidden.Debug != nil || len(hidden.AllButtons()) != 2 {
		t.Fatal("debug button shown outside local builds")
	}
}
