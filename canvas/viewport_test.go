package canvas

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPixelToScreen(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, ImageAspect: 4.0 / 3.0}

	cases := []struct {
		px, ndc mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
		{mgl32.Vec2{800, 600}, mgl32.Vec2{1, -1}},
		{mgl32.Vec2{400, 300}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{200, 450}, mgl32.Vec2{-0.5, -0.5}},
	}
	for _, c := range cases {
		assert.Equal(t, c.ndc, v.PixelToScreen(c.px))
		assert.Equal(t, c.px, v.ScreenToPixel(c.ndc))
	}
}

func TestAspectRatioRatio(t *testing.T) {
	assert.InDelta(t, 1, Viewport{Width: 1920, Height: 1080, ImageAspect: 16.0 / 9.0}.AspectRatioRatio(), 1e-6)
	assert.InDelta(t, 2, Viewport{Width: 2000, Height: 500, ImageAspect: 2}.AspectRatioRatio(), 1e-6)
	assert.Equal(t, float32(1), Viewport{}.AspectRatioRatio())
}

func TestPixelToUV(t *testing.T) {
	v := Viewport{Width: 1000, Height: 500, ImageAspect: 2}
	cam := NewCamera(testConfig())

	assertVecInDelta(t, mgl32.Vec2{0, 0}, v.PixelToUV(cam, mgl32.Vec2{0, 0}), 1e-6)
	assertVecInDelta(t, mgl32.Vec2{0.5, 0.5}, v.PixelToUV(cam, mgl32.Vec2{500, 250}), 1e-6)
	assertVecInDelta(t, mgl32.Vec2{1, 1}, v.PixelToUV(cam, mgl32.Vec2{1000, 500}), 1e-6)

	// zoomed 2x around the centre, the window corner shows the quarter point
	cam.Zoom(2, mgl32.Vec2{})
	cam.Snap()
	assertVecInDelta(t, mgl32.Vec2{0.25, 0.25}, v.PixelToUV(cam, mgl32.Vec2{0, 0}), 1e-6)
}

func TestProjectMatchesPixelToUV(t *testing.T) {
	v := Viewport{Width: 1280, Height: 720, ImageAspect: 16.0 / 10.0}
	cam := NewCamera(testConfig())
	cam.Translate(mgl32.Vec2{0.2, -0.1})
	cam.Zoom(3, mgl32.Vec2{0.5, 0.5})
	cam.Snap()

	// the top-left quad corner is UV (0, 0)
	px := v.Project(cam, mgl32.Vec2{-1, 1})
	assertVecInDelta(t, mgl32.Vec2{0, 0}, v.PixelToUV(cam, px), 1e-4)

	px = v.Project(cam, mgl32.Vec2{1, -1})
	assertVecInDelta(t, mgl32.Vec2{1, 1}, v.PixelToUV(cam, px), 1e-4)
}
