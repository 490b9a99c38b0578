package interpolation

import (
	"fmt"

	"go.starlark.net/starlark"
)

// ScriptFunc is the name of the function a smoothing script must define:
//
//	def interpolate(current, target, dt):
//	    return [c + (t - c) * min(dt * 8.0, 1.0) for c, t in zip(current, target)]
const ScriptFunc = "interpolate"

// ScriptedInterpolation delegates to a Starlark function so the smoothing curve can be
// tuned without rebuilding. Script errors at runtime freeze the value and are kept in Err.
type ScriptedInterpolation[V Vector] struct {
	thread *starlark.Thread
	fn     starlark.Callable
	err    error
}

// NewScriptedInterpolation compiles src and checks that it defines ScriptFunc and that a
// zero-length step returns a vector of the right size.
func NewScriptedInterpolation[V Vector](name, src string) (*ScriptedInterpolation[V], error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	globals, err := starlark.ExecFile(thread, name, src, nil)
	if err != nil {
		return nil, fmt.Errorf("interpolation script %s: %w", name, err)
	}
	fn, ok := globals[ScriptFunc].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("interpolation script %s: no %s(current, target, dt) function", name, ScriptFunc)
	}

	s := &ScriptedInterpolation[V]{thread: thread, fn: fn}
	var zero V
	if _, err := s.call(zero, zero, 0); err != nil {
		return nil, fmt.Errorf("interpolation script %s: %w", name, err)
	}
	return s, nil
}

func (s *ScriptedInterpolation[V]) Interpolate(current, target V, dt float32) V {
	next, err := s.call(current, target, dt)
	if err != nil {
		s.err = err
		return current
	}
	return next
}

// Err returns the last runtime error raised by the script, if any.
func (s *ScriptedInterpolation[V]) Err() error { return s.err }

func (s *ScriptedInterpolation[V]) call(current, target V, dt float32) (V, error) {
	var out V
	args := starlark.Tuple{toStarlarkList(current), toStarlarkList(target), starlark.Float(dt)}
	res, err := starlark.Call(s.thread, s.fn, args, nil)
	if err != nil {
		return out, err
	}

	seq, ok := res.(starlark.Indexable)
	if !ok {
		return out, fmt.Errorf("%s returned %s, want a list", ScriptFunc, res.Type())
	}
	if seq.Len() != len(out) {
		return out, fmt.Errorf("%s returned %d values, want %d", ScriptFunc, seq.Len(), len(out))
	}
	for i := 0; i < len(out); i++ {
		f, ok := starlark.AsFloat(seq.Index(i))
		if !ok {
			return out, fmt.Errorf("%s returned non-number %s at index %d", ScriptFunc, seq.Index(i).Type(), i)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func toStarlarkList[V Vector](v V) *starlark.List {
	elems := make([]starlark.Value, len(v))
	for i := 0; i < len(v); i++ {
		elems[i] = starlark.Float(v[i])
	}
	return starlark.NewList(elems)
}
