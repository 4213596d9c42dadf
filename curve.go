package plotsurf

import (
	"iter"
	"math"
)

// Curve describes a curve parametrized by a scalar.
//
// Eval maps t ∈ [0, 1] onto the full curve. The curves in this package are
// pure functions of their control points; evaluating one never mutates it.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Start returns the curve's start point, Eval(0).
	Start() Point
	// End returns the curve's end point, Eval(1).
	End() Point
}

// Samples evaluates c at n+1 uniformly spaced parameters, from t = 0 to
// t = 1 inclusive. Values of n below 1 are treated as 1.
//
// Uniform parameter spacing is generally not uniform in distance traveled;
// for samples evenly spaced by arc length, see [ArcLengths.EvenParams].
func Samples(c Curve, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			n = 1
		}
		for i := 0; i <= n; i++ {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// splitParameter remaps t ∈ [0, 1] onto a chain of segments and splits it
// into a segment index and the parameter within that segment. Values outside
// [0, 1] clamp to the ends of the first and last segment rather than
// extrapolating.
func splitParameter(t float64, segments int) (int, float64) {
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return segments - 1, 1
	}
	s := t * float64(segments)
	i := int(math.Floor(s))
	if i > segments-1 {
		i = segments - 1
	}
	return i, s - float64(i)
}
