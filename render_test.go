package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"screen-zoomer/canvas"
)

func TestQuadVerticesFillWindowAtRest(t *testing.T) {
	cam := canvas.NewCamera(DefaultConfig().CameraConfig(1))
	vp := canvas.Viewport{Width: 200, Height: 100, ImageAspect: 2}

	vs := quadVertices(vp, cam, 64, 32)
	want := [][4]float32{
		{0, 0, 0, 0},
		{200, 0, 64, 0},
		{0, 100, 0, 32},
		{200, 100, 64, 32},
	}
	for i, v := range vs {
		assert.InDelta(t, want[i][0], v.DstX, 1e-3, "vertex %d", i)
		assert.InDelta(t, want[i][1], v.DstY, 1e-3, "vertex %d", i)
		assert.Equal(t, want[i][2], v.SrcX, "vertex %d", i)
		assert.Equal(t, want[i][3], v.SrcY, "vertex %d", i)
		assert.Equal(t, float32(1), v.ColorA)
	}
}

func TestQuadVerticesFollowCamera(t *testing.T) {
	cam := canvas.NewCamera(DefaultConfig().CameraConfig(1))
	cam.Zoom(2, mgl32.Vec2{})
	cam.Snap()
	vp := canvas.Viewport{Width: 200, Height: 100, ImageAspect: 2}

	vs := quadVertices(vp, cam, 64, 32)
	// the top-left corner lands a full window off-screen
	assert.InDelta(t, -100, vs[0].DstX, 1e-3)
	assert.InDelta(t, -50, vs[0].DstY, 1e-3)
}

func TestHighlightUniforms(t *testing.T) {
	hl := canvas.NewHighlighter(40, DefaultConfig().Highlighter.Smoothing)

	u := highlightUniforms(hl, mgl32.Vec2{3, 4})
	assert.Equal(t, float32(0), u["HighlighterOn"])
	assert.Equal(t, float32(1), u["HighlighterRadius"], "radius stays finite while off")
	assert.Equal(t, []float32{3, 4}, u["MousePosition"])

	hl.Toggle()
	u = highlightUniforms(hl, mgl32.Vec2{3, 4})
	assert.Equal(t, float32(1), u["HighlighterOn"])
	assert.Equal(t, float32(40), u["HighlighterRadius"])
}
