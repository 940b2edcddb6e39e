package ui

import (
	"fmt"
	"strings"

	"silicogenesis/pkg/hexmap"
)

// HexWindowSize is the fixed size of the hex details window.
var HexWindowSize = Size{W: 300, H: 200}

// HexWindow shows what sits on a clicked hex.
type HexWindow struct {
	frame    Frame
	hex      hexmap.Hex
	facility string
}

func NewHexWindow() *HexWindow {
	return &HexWindow{frame: Frame{size: HexWindowSize}}
}

func (w *HexWindow) Frame() *Frame { return &w.frame }
func (w *HexWindow) Layer() Layer  { return LayerHex }

// Open shows hex at the cursor position, pulled back onto the screen.
// facility is the display name of the facility on the hex, or empty.
func (w *HexWindow) Open(at hexmap.RenderCoord, screen Size, hex hexmap.Hex, facility string) {
	w.hex = hex
	w.facility = facility
	w.frame.openAt(BoundedOrigin(at, w.frame.size, screen))
}

func (w *HexWindow) Close() {
	w.frame.shut()
	w.hex = hexmap.Hex{}
	w.facility = ""
}

// Hex returns the hex being shown.
func (w *HexWindow) Hex() (hexmap.Hex, bool) {
	return w.hex, w.frame.IsOpen()
}

// Title lists the resource and the facility of the hex, one per line, or
// "Empty" when it has neither.
func (w *HexWindow) Title() string {
	var lines []string
	switch w.hex.Resource {
	case hexmap.ResourceMetal, hexmap.ResourceOil:
		lines = append(lines, "Resource: "+w.hex.Resource.String())
	}
	if w.facility != "" {
		lines = append(lines, w.facility)
	}
	if len(lines) == 0 {
		return "Empty"
	}
	return strings.Join(lines, "\n")
}

// Footer is the coordinate label shown in the bottom right.
func (w *HexWindow) Footer() string {
	return fmt.Sprintf("(%d, %d)", w.hex.Coord.I, w.hex.Coord.J)
}

func (w *HexWindow) handleClick(hexmap.RenderCoord) Result { return Consume }
func (w *HexWindow) handleHover(hexmap.RenderCoord) Result { return Consume }
func (w *HexWindow) handleKey(Key) Result                  { return Pass }

// Scrolling moves the map underneath the window.
func (w *HexWindow) handleScroll(float64, float64) Result { return Pass }
