// Package capture takes screenshots of the desktop, or loads an image that stands in for
// one, as tightly packed RGBA.
package capture

import (
	"errors"
	"fmt"
	"image"
	"math/bits"
)

// BytesPerPixel of every Screenshot.
const BytesPerPixel = 4

// ErrUnsupported is returned by NewDesktop on platforms without a screen grabber.
var ErrUnsupported = errors.New("capture: screen capture is not supported on this platform")

// Screenshot is an RGBA image. Stride is the width of a row in bytes and may include padding.
type Screenshot struct {
	Width, Height int
	Stride        int
	Pix           []byte
}

// Image returns an image.RGBA sharing the screenshot's pixels.
func (s *Screenshot) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pix,
		Stride: s.Stride,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

func (s *Screenshot) AspectRatio() float32 {
	if s.Height == 0 {
		return 1
	}
	return float32(s.Width) / float32(s.Height)
}

// FromImage copies any image into a Screenshot.
func FromImage(img image.Image) *Screenshot {
	b := img.Bounds()
	out := &Screenshot{Width: b.Dx(), Height: b.Dy(), Stride: b.Dx() * BytesPerPixel}
	out.Pix = make([]byte, out.Stride*out.Height)
	dst := out.Image()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// Source produces screenshots of a region of the virtual desktop.
type Source interface {
	Capture(bounds image.Rectangle) (*Screenshot, error)
}

// Desktop is a Source backed by the real screen.
type Desktop interface {
	Source
	// Bounds is the virtual desktop, spanning every monitor.
	Bounds() image.Rectangle
	Monitors() ([]Monitor, error)
}

// Monitor is a display's rectangle on the virtual desktop.
type Monitor struct {
	X, Y          int
	Width, Height int
}

func (m Monitor) Rect() image.Rectangle {
	return image.Rect(m.X, m.Y, m.X+m.Width, m.Y+m.Height)
}

// VirtualBounds is the smallest rectangle covering every monitor.
func VirtualBounds(monitors []Monitor) image.Rectangle {
	var r image.Rectangle
	for _, m := range monitors {
		r = r.Union(m.Rect())
	}
	return r
}

// BGRAToRGBA swaps the red and blue channels of width x height pixels in place, skipping
// row padding. Alpha is forced to opaque since desktop captures leave it undefined.
func BGRAToRGBA(pix []byte, width, height, stride int) {
	if stride < width*BytesPerPixel || len(pix) < stride*height {
		panic(fmt.Sprintf("capture: %d bytes with stride %d cannot hold %dx%d pixels", len(pix), stride, width, height))
	}
	for y := 0; y < height; y++ {
		row := pix[y*stride : y*stride+width*BytesPerPixel]
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+2] = row[i+2], row[i]
			row[i+3] = 0xff
		}
	}
}

// RoundUpToPowerOf2 rounds value up to a multiple of power, which must be a power of two.
func RoundUpToPowerOf2(value, power int) int {
	if power <= 0 || bits.OnesCount(uint(power)) != 1 {
		panic(fmt.Sprintf("capture: %d is not a power of two", power))
	}
	return (value + power - 1) &^ (power - 1)
}
