// Package interpolation smooths values over time. An InterpolatedVector keeps the value
// the caller asked for (the target) apart from the value that is displayed (the current
// one), and a pluggable Interpolator decides how quickly the latter chases the former.
package interpolation

// InterpolatedVector is a vector whose current value chases its target once per Update.
type InterpolatedVector[V Vector] struct {
	current      V
	target       V
	interpolator Interpolator[V]
}

func NewInterpolatedVector[V Vector](initial V, interpolator Interpolator[V]) *InterpolatedVector[V] {
	return &InterpolatedVector[V]{
		current:      initial,
		target:       initial,
		interpolator: interpolator,
	}
}

func NewZeroedInterpolatedVector[V Vector](interpolator Interpolator[V]) *InterpolatedVector[V] {
	var zero V
	return NewInterpolatedVector(zero, interpolator)
}

func (v *InterpolatedVector[V]) SetTarget(target V) {
	v.target = target
}

// Update advances current by dt seconds and returns it. dt must be finite and >= 0.
func (v *InterpolatedVector[V]) Update(dt float32) V {
	checkDelta(dt)
	v.current = v.interpolator.Interpolate(v.current, v.target, dt)
	return v.current
}

// Snap jumps current to the target without interpolating.
func (v *InterpolatedVector[V]) Snap() {
	v.current = v.target
}

func (v *InterpolatedVector[V]) Current() V { return v.current }
func (v *InterpolatedVector[V]) Target() V  { return v.target }

// InterpolatedScalar is the one-dimensional InterpolatedVector.
type InterpolatedScalar struct {
	v *InterpolatedVector[Vec1]
}

func NewInterpolatedScalar(initial float32, interpolator Interpolator[Vec1]) *InterpolatedScalar {
	return &InterpolatedScalar{v: NewInterpolatedVector(Vec1{initial}, interpolator)}
}

func NewZeroedInterpolatedScalar(interpolator Interpolator[Vec1]) *InterpolatedScalar {
	return NewInterpolatedScalar(0, interpolator)
}

func (s *InterpolatedScalar) SetTarget(target float32) {
	s.v.SetTarget(Vec1{target})
}

func (s *InterpolatedScalar) Update(dt float32) float32 {
	return s.v.Update(dt)[0]
}

func (s *InterpolatedScalar) Snap() { s.v.Snap() }

func (s *InterpolatedScalar) Current() float32 { return s.v.Current()[0] }
func (s *InterpolatedScalar) Target() float32  { return s.v.Target()[0] }
