// Package ui holds the interface logic shared by every front end: buttons,
// popup windows and the per-stage input routing. Nothing here draws.
package ui

import "silicogenesis/pkg/hexmap"

// Key is a keyboard key the interface reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyP
	// KeyOther is any key without a binding.
	KeyOther
)

// Input is everything a front end polled during one frame.
type Input struct {
	Mouse            hexmap.RenderCoord
	ScrollX, ScrollY float64
	LeftReleased     bool
	// Key is the first key pressed this frame, if any.
	Key Key
}

// Result tells the caller whether a handler used up an input event.
type Result int

const (
	Pass Result = iota
	Consume
)

// Size is a width and height in pixels.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in window space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p hexmap.RenderCoord) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the middle of r.
func (r Rect) Center() hexmap.RenderCoord {
	return hexmap.RenderCoord{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// TextMeasurer reports the pixel extent of text drawn at a font size.
type TextMeasurer interface {
	MeasureText(text string, size float64) (w, h float64)
}
