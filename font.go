package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadUIFont loads a TrueType font for the overlay, falling back to basicfont.Face7x13.
func LoadUIFont(logger *log.Logger, path string, size float64) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Printf("font %s not found, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		logger.Printf("font %s: parse error, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Printf("font %s: new face error, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws multiline text with (x, y) as the top-left of the first line.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()
	if lineHeight <= 0 {
		lineHeight = 16
		ascent = 12
	}
	// text.Draw positions by baseline
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, baseY+i*lineHeight, clr)
	}
}
