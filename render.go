package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"screen-zoomer/canvas"
)

// highlightShader darkens the screenshot outside a circle around the cursor and
// slightly brightens it inside. Positions and radius are in window pixels.
var highlightShader = []byte(`//kage:unit pixels

package main

var MousePosition vec2
var HighlighterRadius float
var HighlighterOn float
var Brighten float
var Darken float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	if HighlighterOn == 0 {
		return c
	}
	d := (dstPos.xy - MousePosition) / HighlighterRadius
	if dot(d, d) < 1 {
		return vec4(mix(c.rgb, vec3(c.a), Brighten), c.a)
	}
	return vec4(mix(c.rgb, vec3(0), Darken), c.a)
}
`)

// quadCorners are the screenshot's corners in world space, with the texture corner
// each maps to.
var quadCorners = [4]struct{ world, uv mgl32.Vec2 }{
	{mgl32.Vec2{-1, 1}, mgl32.Vec2{0, 0}},
	{mgl32.Vec2{1, 1}, mgl32.Vec2{1, 0}},
	{mgl32.Vec2{-1, -1}, mgl32.Vec2{0, 1}},
	{mgl32.Vec2{1, -1}, mgl32.Vec2{1, 1}},
}

var quadIndices = []uint16{0, 1, 2, 1, 3, 2}

// quadVertices projects the screenshot quad through the camera into window pixels.
func quadVertices(vp canvas.Viewport, cam *canvas.Camera, texW, texH int) []ebiten.Vertex {
	vs := make([]ebiten.Vertex, len(quadCorners))
	for i, c := range quadCorners {
		dst := vp.Project(cam, c.world)
		vs[i] = ebiten.Vertex{
			DstX:   dst.X(),
			DstY:   dst.Y(),
			SrcX:   c.uv.X() * float32(texW),
			SrcY:   c.uv.Y() * float32(texH),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	return vs
}

// highlightUniforms feeds the highlighter state to highlightShader.
func highlightUniforms(hl *canvas.Highlighter, cursor mgl32.Vec2) map[string]any {
	on, radius := float32(0), float32(1)
	if hl.Enabled() {
		on, radius = 1, hl.Radius()
	}
	return map[string]any{
		"MousePosition":     []float32{cursor.X(), cursor.Y()},
		"HighlighterRadius": radius,
		"HighlighterOn":     on,
		"Brighten":          float32(HighlightBrighten),
		"Darken":            float32(HighlightDarken),
	}
}

func (z *Zoomer) drawScreenshot(screen *ebiten.Image) {
	s := z.session
	w, h := s.texture.Bounds().Dx(), s.texture.Bounds().Dy()
	mx, my := ebiten.CursorPosition()

	op := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: highlightUniforms(z.highlighter, mgl32.Vec2{float32(mx), float32(my)}),
	}
	op.Images[0] = s.texture
	screen.DrawTrianglesShader(quadVertices(z.viewport(), s.camera, w, h), quadIndices, z.shader, op)
}
