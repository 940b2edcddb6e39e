package ui

import "silicogenesis/pkg/hexmap"

// PauseWindowSize is the fixed size of the pause window.
var PauseWindowSize = Size{W: 350, H: 400}

// PauseWindowTitle is drawn at the top of the pause window.
const PauseWindowTitle = "Paused"

// PauseWindow blocks the game and offers a way back to the title stage.
type PauseWindow struct {
	frame  Frame
	exit   *RectButton
	onExit func()
}

// NewPauseWindow creates a closed pause window. onExit runs when the exit
// button is clicked.
func NewPauseWindow(onExit func()) *PauseWindow {
	return &PauseWindow{frame: Frame{size: PauseWindowSize}, onExit: onExit}
}

func (w *PauseWindow) Frame() *Frame { return &w.frame }
func (w *PauseWindow) Layer() Layer  { return LayerPause }

// Open centres the window on the screen.
func (w *PauseWindow) Open(screen Size) {
	w.frame.openAt(CenteredOrigin(w.frame.size, screen))
	w.exit = NewRectButton(w.frame.SideButtonRect(1), "", func() Result {
		if w.onExit != nil {
			w.onExit()
		}
		return Consume
	})
}

func (w *PauseWindow) Close() {
	w.frame.shut()
	w.exit = nil
}

// ExitButton returns the exit button of the open window, or nil.
func (w *PauseWindow) ExitButton() *RectButton {
	return w.exit
}

func (w *PauseWindow) handleClick(p hexmap.RenderCoord) Result {
	return w.exit.Click(p)
}

func (w *PauseWindow) handleHover(p hexmap.RenderCoord) Result {
	w.exit.Hover(p)
	return Consume
}

// P closes the window; every other key is swallowed while paused.
func (w *PauseWindow) handleKey(k Key) Result {
	if k == KeyP {
		w.Close()
	}
	return Consume
}

func (w *PauseWindow) handleScroll(float64, float64) Result { return Consume }
