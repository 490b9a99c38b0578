package canvas

import (
	"github.com/chewxy/math32"

	"screen-zoomer/interpolation"
)

const (
	DefaultHighlighterRadius = 50.0
	// MinHighlighterRadius keeps the spotlight from collapsing to nothing.
	MinHighlighterRadius = 1.0
)

// Highlighter is a spotlight around the cursor whose radius, in pixels, is smoothed.
type Highlighter struct {
	radius  *interpolation.InterpolatedScalar
	enabled bool
}

func NewHighlighter(radius float32, smoothing Smoothing) *Highlighter {
	return &Highlighter{
		radius: interpolation.NewInterpolatedScalar(
			math32.Max(radius, MinHighlighterRadius),
			interpolation.NewExponentialSmoothing[interpolation.Vec1](smoothing.LengthSec, smoothing.ExpRate),
		),
	}
}

func (h *Highlighter) Update(dt float32) {
	h.radius.Update(dt)
}

func (h *Highlighter) SetRadius(r float32) {
	h.radius.SetTarget(math32.Max(r, MinHighlighterRadius))
}

func (h *Highlighter) SetEnabled(enabled bool) { h.enabled = enabled }
func (h *Highlighter) Toggle()                 { h.enabled = !h.enabled }
func (h *Highlighter) Enabled() bool           { return h.enabled }

// Radius is the current smoothed radius, or +Inf while the highlighter is off so
// that everything counts as inside it.
func (h *Highlighter) Radius() float32 {
	if !h.enabled {
		return math32.Inf(1)
	}
	return h.radius.Current()
}

// TargetRadius is the radius the highlighter is growing or shrinking towards.
func (h *Highlighter) TargetRadius() float32 {
	return h.radius.Target()
}
