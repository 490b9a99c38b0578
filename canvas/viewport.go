package canvas

import "github.com/go-gl/mathgl/mgl32"

// Viewport maps between window pixels, NDC and screenshot UV coordinates.
type Viewport struct {
	Width, Height int
	// ImageAspect is the width/height ratio of the displayed screenshot.
	ImageAspect float32
}

// PixelToScreen converts window pixels ([0, Width] x [0, Height], y down) to NDC.
func (v Viewport) PixelToScreen(px mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		px.X()/float32(v.Width)*2 - 1,
		-(px.Y()/float32(v.Height)*2 - 1),
	}
}

// ScreenToPixel is the inverse of PixelToScreen.
func (v Viewport) ScreenToPixel(ndc mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(ndc.X() + 1) / 2 * float32(v.Width),
		(1 - ndc.Y()) / 2 * float32(v.Height),
	}
}

// AspectRatioRatio is the window aspect ratio divided by the screenshot aspect ratio.
func (v Viewport) AspectRatioRatio() float32 {
	if v.Height == 0 || v.ImageAspect == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height) / v.ImageAspect
}

// PixelToUV returns the screenshot texture coordinate under a window pixel.
func (v Viewport) PixelToUV(cam *Camera, px mgl32.Vec2) mgl32.Vec2 {
	uv := cam.ScreenToWorldSpace(v.PixelToScreen(px))
	uv[1] *= -1 / v.AspectRatioRatio()
	uv = uv.Add(mgl32.Vec2{1, 1})
	return uv.Mul(0.5)
}

// ViewMatrix is the camera transform followed by the aspect-ratio correction that keeps
// the screenshot undistorted.
func (v Viewport) ViewMatrix(cam *Camera) mgl32.Mat4 {
	return cam.ToHomogenous().Mul4(mgl32.Scale3D(1, v.AspectRatioRatio(), 1))
}

// Project maps a world-space point through the view matrix to window pixels.
func (v Viewport) Project(cam *Camera, world mgl32.Vec2) mgl32.Vec2 {
	ndc := v.ViewMatrix(cam).Mul4x1(mgl32.Vec4{world.X(), world.Y(), 0, 1})
	return v.ScreenToPixel(ndc.Vec2())
}
