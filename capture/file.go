package capture

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FileSource serves an image file instead of the desktop. Images larger than the
// requested bounds are scaled down to fit them, keeping their aspect ratio.
type FileSource struct {
	Path string
}

func (f FileSource) Capture(bounds image.Rectangle) (*Screenshot, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", f.Path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("capture: decode %s: %w", f.Path, err)
	}
	size := fitInside(img.Bounds().Size(), bounds.Size())
	if size == img.Bounds().Size() {
		return FromImage(img), nil
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return &Screenshot{Width: size.X, Height: size.Y, Stride: dst.Stride, Pix: dst.Pix}, nil
}

func fitInside(size, limit image.Point) image.Point {
	if limit.X <= 0 || limit.Y <= 0 || (size.X <= limit.X && size.Y <= limit.Y) {
		return size
	}
	scale := min(float64(limit.X)/float64(size.X), float64(limit.Y)/float64(size.Y))
	return image.Pt(max(1, int(float64(size.X)*scale)), max(1, int(float64(size.Y)*scale)))
}
