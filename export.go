package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// snapshot copies the rendered frame back from the GPU.
func snapshot(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func screenshotName(t time.Time) string {
	return t.Format("zoomer-20060102-150405.png")
}

// savePNG writes img to a timestamped file in dir and returns its path.
func savePNG(img image.Image, dir string, now time.Time) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	path := filepath.Join(dir, screenshotName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save screenshot: %w", err)
	}
	return path, nil
}

// copyPNG places img on the system clipboard as a PNG.
func copyPNG(img image.Image) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode clipboard image: %w", err)
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
