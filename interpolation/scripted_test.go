package interpolation

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const halfwayScript = `
def interpolate(current, target, dt):
    return [c + (t - c) * 0.5 for c, t in zip(current, target)]
`

func TestScriptedInterpolation(t *testing.T) {
	interp, err := NewScriptedInterpolation[mgl32.Vec2]("halfway.star", halfwayScript)
	require.NoError(t, err)

	v := NewZeroedInterpolatedVector[mgl32.Vec2](interp)
	v.SetTarget(mgl32.Vec2{8, -4})

	v.Update(1.0 / 60)
	assert.Equal(t, mgl32.Vec2{4, -2}, v.Current())

	v.Update(1.0 / 60)
	assert.Equal(t, mgl32.Vec2{6, -3}, v.Current())
	assert.NoError(t, interp.Err())
}

func TestScriptedInterpolationSeesDelta(t *testing.T) {
	src := `
def interpolate(current, target, dt):
    return [dt for _ in current]
`
	interp, err := NewScriptedInterpolation[Vec1]("dt.star", src)
	require.NoError(t, err)

	v := NewZeroedInterpolatedScalar(interp)
	v.Update(0.25)

	assert.Equal(t, float32(0.25), v.Current())
}

func TestScriptedInterpolationRejectsBadScripts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "def interpolate(:\n"},
		{"missing_func", "x = 1\n"},
		{"wrong_length", "def interpolate(current, target, dt):\n    return [1.0]\n"},
		{"not_a_list", "def interpolate(current, target, dt):\n    return 1.0\n"},
		{"not_numbers", "def interpolate(current, target, dt):\n    return ['a', 'b']\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewScriptedInterpolation[mgl32.Vec2](c.name+".star", c.src)
			assert.Error(t, err)
		})
	}
}

func TestScriptedInterpolationRuntimeErrorFreezesValue(t *testing.T) {
	src := `
def interpolate(current, target, dt):
    if dt > 1.0:
        fail("step too large")
    return target
`
	interp, err := NewScriptedInterpolation[Vec1]("fail.star", src)
	require.NoError(t, err)

	v := NewInterpolatedScalar(3, interp)
	v.SetTarget(9)

	v.Update(2)
	assert.Equal(t, float32(3), v.Current())
	require.Error(t, interp.Err())
	assert.Contains(t, interp.Err().Error(), "step too large")

	v.Update(0.5)
	assert.Equal(t, float32(9), v.Current())
}
