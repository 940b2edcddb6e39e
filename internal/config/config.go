// internal/config/config.go
package config

import "image/color"

const (
	ApplicationName  = "silicogenesis"
	ApplicationTitle = "Silicogenesis"

	ScreenWidth  = 1600
	ScreenHeight = 900
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	// FrameLogInterval is how often frame timings are logged, in frames.
	FrameLogInterval = 1000

	// ScrollSpeed converts one wheel notch into map pixels.
	ScrollSpeed = 32.0

	StrokeWidth       = 1.0
	HexLabelFontSize  = 10
	FacilityFontSize  = 10
	FacilityOffset    = 10
	FPSOffsetX        = 10
	FPSOffsetY        = 10
	LoadingFontSize   = 20
	LoadingOffsetX    = 16
	LoadingOffsetY    = 30
	WindowFontSize    = 20
	WindowFooterSize  = 12
	WindowBorderWidth = 2.0
)

var (
	MapBackgroundColor        = color.RGBA{0x1d, 0x1d, 0x1d, 0xff}
	HexOutlineColor           = color.RGBA{0xff, 0xff, 0xff, 0x80}
	MetalColor                = color.RGBA{0x60, 0x50, 0x70, 0xff}
	OilColor                  = color.RGBA{0x58, 0x58, 0x58, 0xff}
	HoverDiff                 = color.RGBA{0x10, 0x10, 0x10, 0x00}
	FacilityOperatingColor    = color.RGBA{0xb4, 0xb4, 0xb4, 0xff}
	FacilityPlacingColor      = color.RGBA{0xb4, 0xb4, 0xb4, 0x80}
	FacilityDestroyedColor    = color.RGBA{0xb4, 0xb4, 0xb4, 0xf0}
	TextColor                 = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	WindowBorderColor         = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
	WindowInteriorBorderColor = color.RGBA{0x80, 0x80, 0x80, 0xff}
	WindowBackgroundColor     = color.RGBA{0x28, 0x2a, 0x2f, 0xff}
	ButtonHoverColor          = color.RGBA{0x3a, 0x3d, 0x44, 0xff}
	PauseOverlayColor         = color.RGBA{0x00, 0x00, 0x00, 0x80}
)
