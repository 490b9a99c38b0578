package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{200, 10, 20, 255})

	dir := t.TempDir()
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	path, err := savePNG(img, dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "zoomer-20260304-050607.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), decoded.Bounds())

	r, g, b, a := decoded.At(1, 1).RGBA()
	assert.Equal(t, []uint32{200, 10, 20, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestSavePNGMissingDir(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	_, err := savePNG(img, filepath.Join(t.TempDir(), "missing"), time.Now())
	assert.Error(t, err)
}
