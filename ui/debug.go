package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	DebugBackground = color.RGBA{40, 40, 40, 220}
	DebugText       = color.RGBA{220, 220, 220, 255}
	DebugError      = color.RGBA{255, 200, 50, 255}
)

// DebugPanel is the F2 overlay. Lines are replaced every frame by the owner; Error sticks
// until cleared and is shown even while the panel is hidden.
type DebugPanel struct {
	Visible bool
	Lines   []string
	Error   string
}

func (d *DebugPanel) Toggle() {
	d.Visible = !d.Visible
}

func (d *DebugPanel) SetLines(lines ...string) {
	d.Lines = lines
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

// Text is what the panel would currently print.
func (d *DebugPanel) Text() string {
	var lines []string
	if d.Visible {
		lines = append(lines, d.Lines...)
	}
	if d.Error != "" {
		lines = append(lines, d.Error)
	}
	return strings.Join(lines, "\n")
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getFace func() font.Face, drawText DrawTextFunc) {
	if d == nil {
		return
	}
	s := d.Text()
	if s == "" || getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}

	lineHeight := (face.Metrics().Ascent + face.Metrics().Descent).Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
	}
	n := strings.Count(s, "\n") + 1
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := font.MeasureString(face, line).Ceil(); w > widest {
			widest = w
		}
	}

	const pad = 8
	x, y := 10, 10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(widest+2*pad), float32(n*lineHeight+2*pad), DebugBackground, false)

	clr := color.Color(DebugText)
	if !d.Visible {
		clr = DebugError
	}
	drawText(screen, face, s, x+pad, y+pad, clr)
}
