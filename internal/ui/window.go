package ui

import "silicogenesis/pkg/hexmap"

const (
	SideButtonWidth = 42.0
	BorderGap       = 10.0
	BorderThickness = 1.0
)

// Layer orders windows for input; lower layers are offered input first
// and drawn last.
type Layer int

const (
	LayerError Layer = iota
	LayerPause
	LayerHex
)

// Frame is the state every popup window shares: where it is, whether it
// is open and its close button.
type Frame struct {
	size   Size
	origin hexmap.RenderCoord
	open   bool
	close  *RectButton
}

func (f *Frame) IsOpen() bool               { return f.open }
func (f *Frame) Origin() hexmap.RenderCoord { return f.origin }
func (f *Frame) Size() Size                 { return f.size }

// Rect returns the window rectangle.
func (f *Frame) Rect() Rect {
	return Rect{X: f.origin.X, Y: f.origin.Y, W: f.size.W, H: f.size.H}
}

// Contains reports whether p is inside an open window.
func (f *Frame) Contains(p hexmap.RenderCoord) bool {
	return f.open && f.Rect().Contains(p)
}

// SideButtonRect returns the square for the k-th button stacked down the
// right edge. Button 0 is the close button.
func (f *Frame) SideButtonRect(k int) Rect {
	return Rect{
		X: f.origin.X + f.size.W - SideButtonWidth - BorderGap,
		Y: f.origin.Y + BorderGap + float64(k)*SideButtonWidth,
		W: SideButtonWidth,
		H: SideButtonWidth,
	}
}

// CloseButton returns the close button of an open window, or nil.
func (f *Frame) CloseButton() *RectButton {
	if !f.open {
		return nil
	}
	return f.close
}

func (f *Frame) openAt(origin hexmap.RenderCoord) {
	f.origin = origin
	f.open = true
	f.close = NewRectButton(f.SideButtonRect(0), "", nil)
}

func (f *Frame) shut() {
	f.open = false
	f.close = nil
}

// BoundedOrigin shifts origin left and up so a window of the given size
// keeps its right and bottom edges on screen.
func BoundedOrigin(origin hexmap.RenderCoord, size, screen Size) hexmap.RenderCoord {
	if over := origin.X + size.W - screen.W; over > 0 {
		origin.X -= over
	}
	if over := origin.Y + size.H - screen.H; over > 0 {
		origin.Y -= over
	}
	return origin
}

// CenteredOrigin places a window of the given size in the middle of the screen.
func CenteredOrigin(size, screen Size) hexmap.RenderCoord {
	return hexmap.RenderCoord{X: (screen.W - size.W) / 2, Y: (screen.H - size.H) / 2}
}

// Window is a popup in the game stage.
type Window interface {
	Frame() *Frame
	Layer() Layer
	Close()

	// Window specific reactions, called by the routing functions below
	// only while the window is open.
	handleClick(p hexmap.RenderCoord) Result
	handleHover(p hexmap.RenderCoord) Result
	handleKey(k Key) Result
	handleScroll(dx, dy float64) Result
}

// ClickWindow routes a click to w. A click outside an open window closes it.
func ClickWindow(w Window, p hexmap.RenderCoord) Result {
	f := w.Frame()
	if !f.Contains(p) {
		if f.IsOpen() {
			w.Close()
			return Consume
		}
		return Pass
	}
	if f.close.Click(p) == Consume {
		w.Close()
		return Consume
	}
	w.handleClick(p)
	return Consume
}

// HoverWindow refreshes the hover state of w's buttons and consumes the
// event when the cursor is over the window.
func HoverWindow(w Window, p hexmap.RenderCoord) Result {
	f := w.Frame()
	if !f.IsOpen() {
		return Pass
	}
	f.close.Hover(p)
	if !f.Rect().Contains(p) {
		w.handleHover(p)
		return Pass
	}
	return w.handleHover(p)
}

// KeyWindow routes a key press to w. Escape closes any open window.
func KeyWindow(w Window, k Key) Result {
	if !w.Frame().IsOpen() {
		return Pass
	}
	if k == KeyEscape {
		w.Close()
		return Consume
	}
	return w.handleKey(k)
}

// ScrollWindow routes a scroll to w.
func ScrollWindow(w Window, dx, dy float64) Result {
	if !w.Frame().IsOpen() {
		return Pass
	}
	return w.handleScroll(dx, dy)
}
