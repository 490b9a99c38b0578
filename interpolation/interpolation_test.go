package interpolation

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolation(t *testing.T) {
	v := NewZeroedInterpolatedScalar(NewLinearInterpolation[Vec1](1))
	v.SetTarget(10)

	v.Update(0.5)

	if v.Current() != 5 {
		t.Fatalf("expected 5, got %v", v.Current())
	}
}

func TestLinearInterpolation10Seconds(t *testing.T) {
	v := NewZeroedInterpolatedScalar(NewLinearInterpolation[Vec1](10))
	v.SetTarget(10)

	v.Update(5)

	if v.Current() != 5 {
		t.Fatalf("expected 5, got %v", v.Current())
	}
}

func TestLinearInterpolationVec(t *testing.T) {
	v := NewZeroedInterpolatedVector[mgl32.Vec2](NewLinearInterpolation[mgl32.Vec2](1))
	v.SetTarget(mgl32.Vec2{10, 5})

	got := v.Update(0.5)

	if got != (mgl32.Vec2{5, 2.5}) {
		t.Fatalf("expected (5, 2.5), got %v", got)
	}
	if v.Current() != got {
		t.Fatalf("Update returned %v but Current is %v", got, v.Current())
	}
}

func TestLinearInterpolationKeepsAccumulating(t *testing.T) {
	lin := NewLinearInterpolation[Vec1](1)
	v := NewZeroedInterpolatedScalar(lin)
	v.SetTarget(10)

	v.Update(0.5)
	v.Update(0.25)

	// second step lerps from 5 with t = 0.75
	assert.InDelta(t, 8.75, v.Current(), 1e-6)
	assert.InDelta(t, 0.75, lin.Elapsed(), 1e-6)

	lin.Reset()
	assert.Zero(t, lin.Elapsed())
}

func TestExponentialSmoothingWithInitialValue(t *testing.T) {
	v := NewInterpolatedVector(mgl32.Vec2{1, 2}, Interpolator[mgl32.Vec2](NewExponentialSmoothing[mgl32.Vec2](1, 5)))
	v.SetTarget(mgl32.Vec2{10, 5})

	v.Update(1)

	assert.InDelta(t, 10, v.Current()[0], 1e-3)
	assert.InDelta(t, 5, v.Current()[1], 1e-3)
}

func TestExponentialSmoothingConverges(t *testing.T) {
	v := NewZeroedInterpolatedScalar(NewExponentialSmoothing[Vec1](0.25, 1.5))
	v.SetTarget(100)

	prev := v.Current()
	for i := 0; i < 600; i++ {
		cur := v.Update(1.0 / 60)
		require.GreaterOrEqual(t, cur, prev, "frame %d moved away from target", i)
		require.LessOrEqual(t, cur, float32(100), "frame %d overshot", i)
		prev = cur
	}
	assert.InDelta(t, 100, v.Current(), 1e-3)
}

func TestExponentialSmoothingFrameRateIndependent(t *testing.T) {
	coarse := NewZeroedInterpolatedScalar(NewExponentialSmoothing[Vec1](0.5, 2))
	fine := NewZeroedInterpolatedScalar(NewExponentialSmoothing[Vec1](0.5, 2))
	coarse.SetTarget(1)
	fine.SetTarget(1)

	for i := 0; i < 30; i++ {
		coarse.Update(1.0 / 30)
	}
	for i := 0; i < 240; i++ {
		fine.Update(1.0 / 240)
	}

	assert.InDelta(t, coarse.Current(), fine.Current(), 1e-4)
}

func TestUpdateWithZeroDeltaIsNoop(t *testing.T) {
	interpolators := map[string]Interpolator[mgl32.Vec2]{
		"exponential": NewExponentialSmoothing[mgl32.Vec2](0.25, 1.5),
		"linear":      NewLinearInterpolation[mgl32.Vec2](1),
	}

	for name, interp := range interpolators {
		t.Run(name, func(t *testing.T) {
			v := NewInterpolatedVector(mgl32.Vec2{3, -4}, interp)
			v.SetTarget(mgl32.Vec2{10, 10})

			v.Update(0)

			if v.Current() != (mgl32.Vec2{3, -4}) {
				t.Fatalf("expected current unchanged, got %v", v.Current())
			}
		})
	}
}

func TestSetTargetDoesNotTouchCurrent(t *testing.T) {
	v := NewInterpolatedScalar(2, NewExponentialSmoothing[Vec1](1, 1))
	v.SetTarget(7)

	assert.Equal(t, float32(2), v.Current())
	assert.Equal(t, float32(7), v.Target())

	v.Snap()
	assert.Equal(t, float32(7), v.Current())
}

func TestUpdateRejectsBadDelta(t *testing.T) {
	v := NewZeroedInterpolatedScalar(NewLinearInterpolation[Vec1](1))

	assert.Panics(t, func() { v.Update(-0.1) })
	assert.Panics(t, func() { v.Update(math32.Inf(1)) })
}

func TestInterpolatorConstructorsRejectBadParameters(t *testing.T) {
	assert.Panics(t, func() { NewExponentialSmoothing[Vec1](0, 1) })
	assert.Panics(t, func() { NewExponentialSmoothing[Vec1](1, -1) })
	assert.Panics(t, func() { NewLinearInterpolation[Vec1](0) })
}

func TestLerp(t *testing.T) {
	got := Lerp(mgl32.Vec4{0, 1, 2, 3}, mgl32.Vec4{4, 5, 6, 7}, 0.5)
	assert.Equal(t, mgl32.Vec4{2, 3, 4, 5}, got)
}
