package ui

import "silicogenesis/pkg/hexmap"

// Title stage layout.
const (
	TitleFontSize       = 40.0
	TitleButtonFontSize = 18.0
	TitleButtonMargin   = 8.0
	TitleScreenMargin   = 20.0
	TitleVerticalMargin = 120.0
	TitleButtonSpacing  = 12.0
	GamesButtonText     = "Games"
	AccountButtonText   = "Account"
	DebugButtonText     = "Debug"
)

// TitleScreen is the landing stage with its centred main buttons and, in
// local builds, a debug shortcut in the top-right corner.
type TitleScreen struct {
	Title string
	// Debug is nil unless the debug shortcut is enabled.
	Debug   *RectButton
	Buttons []*RectButton

	screen Size
}

// TitleActions are the callbacks behind the title buttons.
type TitleActions struct {
	Play    func()
	Account func()
}

// NewTitleScreen lays the buttons out for screen. All buttons share the
// size of the widest label.
func NewTitleScreen(title string, screen Size, m TextMeasurer, showDebug bool, actions TitleActions) *TitleScreen {
	size := titleButtonSize(m)
	play := func() Result {
		if actions.Play != nil {
			actions.Play()
		}
		return Consume
	}
	account := func() Result {
		if actions.Account != nil {
			actions.Account()
		}
		return Consume
	}

	x := screen.W/2 - size.W/2
	y := screen.H/2 - size.H/2 + TitleVerticalMargin/2
	t := &TitleScreen{
		Title:  title,
		screen: screen,
		Buttons: []*RectButton{
			NewRectButton(Rect{X: x, Y: y, W: size.W, H: size.H}, GamesButtonText, play),
			NewRectButton(Rect{X: x, Y: y + size.H + TitleButtonSpacing, W: size.W, H: size.H}, AccountButtonText, account),
		},
	}
	if showDebug {
		t.Debug = NewRectButton(Rect{
			X: screen.W - TitleScreenMargin - size.W,
			Y: TitleScreenMargin,
			W: size.W,
			H: size.H,
		}, DebugButtonText, play)
	}
	return t
}

func titleButtonSize(m TextMeasurer) Size {
	var widest Size
	for _, text := range []string{GamesButtonText, AccountButtonText, DebugButtonText} {
		w, h := m.MeasureText(text, TitleButtonFontSize)
		if w > widest.W {
			widest = Size{W: w, H: h}
		}
	}
	return Size{W: widest.W + TitleButtonMargin*2, H: widest.H + TitleButtonMargin*2}
}

// TitleCenter is where the title text is centred.
func (t *TitleScreen) TitleCenter() hexmap.RenderCoord {
	return hexmap.RenderCoord{X: t.screen.W / 2, Y: t.screen.H/2 - TitleVerticalMargin/2}
}

// Screen is the screen size the buttons were laid out for.
func (t *TitleScreen) Screen() Size {
	return t.screen
}

// AllButtons returns the debug button, when present, followed by the main buttons.
func (t *TitleScreen) AllButtons() []*RectButton {
	if t.Debug == nil {
		return t.Buttons
	}
	return append([]*RectButton{t.Debug}, t.Buttons...)
}

// HandleInput applies one frame of input.
func (t *TitleScreen) HandleInput(in Input) {
	t.Hover(in.Mouse)
	if in.LeftReleased {
		t.Click(in.Mouse)
	}
}

func (t *TitleScreen) Click(p hexmap.RenderCoord) Result {
	for _, b := range t.AllButtons() {
		if b.Click(p) == Consume {
			return Consume
		}
	}
	return Pass
}

// Hover refreshes every button so a button the cursor left loses its highlight.
func (t *TitleScreen) Hover(p hexmap.RenderCoord) Result {
	result := Pass
	for _, b := range t.AllButtons() {
		if b.Hover(p) == Consume {
			result = Consume
		}
	}
	return result
}
