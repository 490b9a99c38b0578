package interpolation

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector is any fixed-size float32 array. mgl32.Vec2..Vec4 satisfy it.
type Vector interface {
	~[1]float32 | ~[2]float32 | ~[3]float32 | ~[4]float32
}

// Vec1 carries a single scalar through the vector machinery.
type Vec1 [1]float32

// Lerp blends a towards b by t component-wise. t is not clamped.
func Lerp[V Vector](a, b V, t float32) V {
	var out V
	for i := 0; i < len(out); i++ {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

func checkDelta(dt float32) {
	if dt < 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		panic(fmt.Sprintf("interpolation: dt must be finite and non-negative, got %v", dt))
	}
}
