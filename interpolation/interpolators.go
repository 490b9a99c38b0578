package interpolation

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Interpolator decides how far current moves towards target in dt seconds.
type Interpolator[V Vector] interface {
	Interpolate(current, target V, dt float32) V
}

// ExponentialSmoothing approaches the target by a constant fraction per unit of time,
// so the result does not depend on the frame rate.
// After lengthSec seconds the remaining distance has shrunk by a factor of 10^expRate.
type ExponentialSmoothing[V Vector] struct {
	lengthSec float32
	expRate   float32
}

func NewExponentialSmoothing[V Vector](lengthSec, expRate float32) *ExponentialSmoothing[V] {
	if !(lengthSec > 0) || !(expRate > 0) {
		panic(fmt.Sprintf("interpolation: exponential smoothing needs positive parameters, got length %v rate %v", lengthSec, expRate))
	}
	return &ExponentialSmoothing[V]{lengthSec: lengthSec, expRate: expRate}
}

func (e *ExponentialSmoothing[V]) Interpolate(current, target V, dt float32) V {
	remaining := math32.Pow(1/math32.Pow(10, e.expRate), dt/e.lengthSec)
	return Lerp(current, target, 1-remaining)
}

// LinearInterpolation moves at a constant rate, reaching the target lengthSec seconds
// after the first update. The elapsed time keeps accumulating, so calling it past that
// point overshoots.
type LinearInterpolation[V Vector] struct {
	k    float32
	time float32
}

func NewLinearInterpolation[V Vector](lengthSec float32) *LinearInterpolation[V] {
	if !(lengthSec > 0) {
		panic(fmt.Sprintf("interpolation: linear interpolation needs a positive length, got %v", lengthSec))
	}
	return &LinearInterpolation[V]{k: 1 / lengthSec}
}

func (l *LinearInterpolation[V]) Interpolate(current, target V, dt float32) V {
	l.time += dt
	return Lerp(current, target, l.k*l.time)
}

// Elapsed returns the accumulated time in seconds.
func (l *LinearInterpolation[V]) Elapsed() float32 { return l.time }

// Reset restarts the interpolation clock.
func (l *LinearInterpolation[V]) Reset() { l.time = 0 }
