package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// DrawTextFunc draws s with its top-left corner at (x, y).
type DrawTextFunc func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)

const (
	ButtonSize   = 30.0
	ButtonMargin = 10.0
)

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      DrawTextFunc
	Debug         *DebugPanel
}

// NewUISystem lays out the zoom buttons along the top-right edge of the window.
func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), onZoomIn, onZoomOut, onToggleHighlighter func(), drawText DrawTextFunc) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	// right to left
	ui.buttons = []*Button{
		{Label: "+", W: ButtonSize, H: ButtonSize, OnClick: onZoomIn},
		{Label: "-", W: ButtonSize, H: ButtonSize, OnClick: onZoomOut},
		{Label: "o", W: ButtonSize, H: ButtonSize, OnClick: onToggleHighlighter},
	}
	ui.layout()
	return ui
}

func (ui *UISystem) layout() {
	w, _ := ui.getScreenSize()
	x := float32(w)
	for _, b := range ui.buttons {
		x -= b.W + ButtonMargin
		b.X = x
		b.Y = ButtonMargin
	}
}

func (ui *UISystem) Buttons() []*Button { return ui.buttons }

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.layout()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
}

// Click fires the button under (mx, my), if any, and reports whether one was hit.
func (ui *UISystem) Click(mx, my int) bool {
	ui.layout()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.layout()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getFontFace, ui.drawText)
	}
}
