package ui

import "silicogenesis/pkg/hexmap"

var ErrorWindowSize = Size{W: 480, H: 160}

const ErrorWindowTitle = "Error"

// ErrorWindow reports a problem that did not stop the game.
type ErrorWindow struct {
	frame   Frame
	message string
}

func NewErrorWindow() *ErrorWindow {
	return &ErrorWindow{frame: Frame{size: ErrorWindowSize}}
}

func (w *ErrorWindow) Frame() *Frame { return &w.frame }
func (w *ErrorWindow) Layer() Layer  { return LayerError }

func (w *ErrorWindow) Open(message string, screen Size) {
	w.message = message
	w.frame.openAt(CenteredOrigin(w.frame.size, screen))
}

func (w *ErrorWindow) Close() {
	w.frame.shut()
	w.message = ""
}

func (w *ErrorWindow) Message() string { return w.message }

func (w *ErrorWindow) handleClick(hexmap.RenderCoord) Result { return Consume }
func (w *ErrorWindow) handleHover(hexmap.RenderCoord) Result { return Consume }
func (w *ErrorWindow) handleKey(Key) Result                  { return Pass }
func (w *ErrorWindow) handleScroll(float64, float64) Result  { return Consume }
