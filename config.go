package main

import "image/color"

const (
	// --- Camera ---
	DefaultZoomMin         = 0.25
	DefaultZoomMax         = 500.0
	DefaultPositionRangeX  = 1.0
	DefaultSmoothingLength = 0.25 // seconds
	DefaultSmoothingRate   = 1.5  // orders of magnitude per smoothing length
	ButtonZoomStep         = 1.25

	// --- Highlighter ---
	DefaultHighlighterRadius = 50.0
	HighlightBrighten        = 0.035
	HighlightDarken          = 0.55

	// --- Window ---
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
	WindowTitle         = "screen-zoomer"

	// --- Capture ---
	// MaxTextureSize bounds image files; larger ones are scaled down to fit.
	MaxTextureSize = 8192
	// RecaptureDelayTicks is how long the window stays minimized before a recapture,
	// giving the compositor time to repaint what was underneath.
	RecaptureDelayTicks = 10

	// --- Files ---
	DefaultConfigPath = "zoomer.yaml"
	UIFontPath        = "fonts/Roboto-Regular.ttf"
	UIFontSize        = 14
	ConfigDebounce    = 100 // ms
)

var (
	// --- Colors ---
	ColorBackground = color.RGBA{64, 64, 71, 255}
)
