package canvas

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"screen-zoomer/interpolation"
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Valid reports whether r is a non-empty range of positive, finite values.
func (r Range) Valid() bool {
	return r.Min > 0 && r.Min <= r.Max && !math32.IsInf(r.Max, 0)
}

func (r Range) Clamp(v float32) float32 {
	return mgl32.Clamp(v, r.Min, r.Max)
}

// Smoothing parameterises exponential smoothing.
type Smoothing struct {
	LengthSec float32 `yaml:"length_sec"`
	ExpRate   float32 `yaml:"exp_rate"`
}

type CameraConfig struct {
	ZoomRange     Range
	// PositionRange is the symmetric world-space bound on the camera position.
	PositionRange mgl32.Vec2
	Smoothing     Smoothing
}

// Camera is a smoothed 2D pan/zoom camera over NDC.
//
// Translate and Zoom only move the targets; Update makes the displayed position and
// zoom factor chase them. Position lives in camera space, which is world space scaled
// by the zoom factor.
type Camera struct {
	position   *interpolation.InterpolatedVector[mgl32.Vec2]
	zoomFactor *interpolation.InterpolatedScalar

	zoomRange     Range
	positionRange mgl32.Vec2
}

func NewCamera(cfg CameraConfig) *Camera {
	return NewCameraWith(cfg,
		interpolation.NewExponentialSmoothing[mgl32.Vec2](cfg.Smoothing.LengthSec, cfg.Smoothing.ExpRate),
		interpolation.NewExponentialSmoothing[interpolation.Vec1](cfg.Smoothing.LengthSec, cfg.Smoothing.ExpRate),
	)
}

// NewCameraWith builds a camera whose position and zoom factor are driven by the given
// interpolators. cfg.Smoothing is ignored.
func NewCameraWith(cfg CameraConfig, position interpolation.Interpolator[mgl32.Vec2], zoom interpolation.Interpolator[interpolation.Vec1]) *Camera {
	if !cfg.ZoomRange.Valid() {
		panic(fmt.Sprintf("canvas: invalid zoom range %v..%v", cfg.ZoomRange.Min, cfg.ZoomRange.Max))
	}
	if cfg.PositionRange.X() < 0 || cfg.PositionRange.Y() < 0 {
		panic(fmt.Sprintf("canvas: negative position range %v", cfg.PositionRange))
	}

	return &Camera{
		position:      interpolation.NewZeroedInterpolatedVector(position),
		zoomFactor:    interpolation.NewInterpolatedScalar(1, zoom),
		zoomRange:     cfg.ZoomRange,
		positionRange: cfg.PositionRange,
	}
}

// Translate moves the target position by delta, in camera space. It does not clamp.
func (c *Camera) Translate(delta mgl32.Vec2) {
	c.position.SetTarget(c.position.Target().Add(delta))
}

// ClampMeDaddy pulls the target position back inside the position range. The range is
// converted to camera space with the current zoom factor. Call it when a drag ends.
func (c *Camera) ClampMeDaddy() {
	bound := c.positionRange.Mul(c.zoomFactor.Current())
	target := c.position.Target()
	c.position.SetTarget(mgl32.Vec2{
		mgl32.Clamp(target.X(), -bound.X(), bound.X()),
		mgl32.Clamp(target.Y(), -bound.Y(), bound.Y()),
	})
}

// Zoom scales the target zoom factor by multiplier, clamped to the zoom range, keeping
// screenPoint (NDC) over the same world point.
func (c *Camera) Zoom(multiplier float32, screenPoint mgl32.Vec2) {
	old := c.zoomFactor.Target()
	next := c.zoomRange.Clamp(old * multiplier)
	// the clamp may have eaten part of the request
	multiplier = next / old
	c.zoomFactor.SetTarget(next)

	point := screenPoint.Sub(c.position.Target())
	c.Translate(point.Sub(point.Mul(multiplier)))
}

// Update advances the smoothed zoom factor and position. Call once per frame, after
// all input for the frame has been applied.
func (c *Camera) Update(dt float32) {
	c.zoomFactor.Update(dt)
	c.position.Update(dt)
}

// Snap drops any pending smoothing.
func (c *Camera) Snap() {
	c.zoomFactor.Snap()
	c.position.Snap()
}

func (c *Camera) ScreenToCameraSpace(p mgl32.Vec2) mgl32.Vec2 {
	return p.Sub(c.position.Current())
}

func (c *Camera) ScreenToWorldSpace(p mgl32.Vec2) mgl32.Vec2 {
	return div(c.ScreenToCameraSpace(p), c.zoomFactor.Current())
}

// WorldToScreenSpace is the inverse of ScreenToWorldSpace.
func (c *Camera) WorldToScreenSpace(p mgl32.Vec2) mgl32.Vec2 {
	return p.Mul(c.zoomFactor.Current()).Add(c.position.Current())
}

// ToHomogenous returns translation * scale for the current position and zoom factor.
func (c *Camera) ToHomogenous() mgl32.Mat4 {
	pos := c.position.Current()
	z := c.zoomFactor.Current()
	return mgl32.Translate3D(pos.X(), pos.Y(), 0).Mul4(mgl32.Scale3D(z, z, z))
}

// Position returns the current camera position in world space.
func (c *Camera) Position() mgl32.Vec2 {
	return div(c.position.Current(), c.zoomFactor.Current())
}

func (c *Camera) ZoomFactor() float32        { return c.zoomFactor.Current() }
func (c *Camera) TargetZoomFactor() float32  { return c.zoomFactor.Target() }
func (c *Camera) TargetPosition() mgl32.Vec2 { return c.position.Target() }
func (c *Camera) CameraPosition() mgl32.Vec2 { return c.position.Current() }
func (c *Camera) ZoomRange() Range           { return c.zoomRange }
func (c *Camera) PositionRange() mgl32.Vec2  { return c.positionRange }

func div(v mgl32.Vec2, s float32) mgl32.Vec2 {
	return mgl32.Vec2{v[0] / s, v[1] / s}
}
