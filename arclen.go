package plotsurf

import (
	"iter"
	"sort"
)

// DefaultArcLengthSteps is a table resolution suitable for interactive use.
const DefaultArcLengthSteps = 256

// ArcLengths is a cumulative arc-length table over a curve, approximated by
// chords between uniformly spaced parameter samples. It answers "at which
// parameter have I traveled s units along the curve" queries, which is what
// uniform-speed sampling needs.
//
// The table is immutable. It is a snapshot of the curve it was built from;
// after changing control points, build a new table.
type ArcLengths struct {
	// lengths[i] is the distance traveled from the start of the curve to
	// parameter i/steps. lengths[0] is 0 and the slice is non-decreasing.
	lengths []float64
}

// NewArcLengths builds a table of steps chords over c. Values of steps below
// 1 are treated as 1. Higher step counts track curved geometry more closely;
// [DefaultArcLengthSteps] is a reasonable pick.
func NewArcLengths(c Curve, steps int) ArcLengths {
	if steps < 1 {
		steps = 1
	}
	lengths := make([]float64, steps+1)
	prev := c.Eval(0)
	for i := 1; i <= steps; i++ {
		pt := c.Eval(float64(i) / float64(steps))
		lengths[i] = lengths[i-1] + pt.Distance(prev)
		prev = pt
	}
	return ArcLengths{lengths: lengths}
}

// Steps returns the number of chords in the table.
func (al ArcLengths) Steps() int {
	return len(al.lengths) - 1
}

// Total returns the approximate total arc length of the curve.
func (al ArcLengths) Total() float64 {
	return al.lengths[len(al.lengths)-1]
}

// SolveForArclen returns the parameter at which the distance traveled along
// the curve reaches arclen. The answer is found by binary search over the
// table and linear interpolation within the bracketing chord. Out-of-range
// distances clamp: arclen ≤ 0 returns 0 and arclen ≥ Total returns 1.
func (al ArcLengths) SolveForArclen(arclen float64) float64 {
	if arclen <= 0 {
		return 0
	}
	if arclen >= al.Total() {
		return 1
	}
	steps := al.Steps()
	i := sort.SearchFloat64s(al.lengths, arclen)
	// lengths[i-1] < arclen <= lengths[i], so the bracket has positive
	// length even when other parts of the table are flat.
	t0 := float64(i-1) / float64(steps)
	t1 := float64(i) / float64(steps)
	l0 := al.lengths[i-1]
	l1 := al.lengths[i]
	return t0 + (t1-t0)*(arclen-l0)/(l1-l0)
}

// EvenParams returns n+1 parameters whose curve positions are evenly spaced
// by distance traveled, from t = 0 to t = 1 inclusive. Values of n below 1
// are treated as 1.
func (al ArcLengths) EvenParams(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if n < 1 {
			n = 1
		}
		total := al.Total()
		for i := 0; i <= n; i++ {
			if !yield(al.SolveForArclen(total * float64(i) / float64(n))) {
				return
			}
		}
	}
}
