package ui

import "silicogenesis/pkg/hexmap"

// RectButton is a clickable rectangle with optional text.
type RectButton struct {
	Rect Rect
	Text string
	// OnClick runs when the button is clicked. A nil OnClick still consumes the click.
	OnClick func() Result

	hovered bool
}

// NewRectButton creates a button.
func NewRectButton(rect Rect, text string, onClick func() Result) *RectButton {
	return &RectButton{Rect: rect, Text: text, OnClick: onClick}
}

// Click fires the button when p lies inside it.
func (b *RectButton) Click(p hexmap.RenderCoord) Result {
	if !b.Rect.Contains(p) {
		return Pass
	}
	if b.OnClick == nil {
		return Consume
	}
	return b.OnClick()
}

// Hover updates the hovered flag for the cursor at p.
func (b *RectButton) Hover(p hexmap.RenderCoord) Result {
	b.hovered = b.Rect.Contains(p)
	if b.hovered {
		return Consume
	}
	return Pass
}

// Hovered reports whether the cursor was over the button at the last Hover.
func (b *RectButton) Hovered() bool {
	return b.hovered
}
