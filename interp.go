package plotsurf

import (
	"fmt"
	"slices"
)

// CurveKind selects a curve interpolator for [NewCurve].
type CurveKind int

const (
	// KindSegments chains straight segments through all control points.
	KindSegments CurveKind = iota + 1
	// KindQuadratic passes a parabola through three control points.
	KindQuadratic
	// KindCubic passes a cubic through four control points.
	KindCubic
	// KindHermite spans a cubic between the first and last control points,
	// with the inner two acting as tangent handles.
	KindHermite
)

func (k CurveKind) String() string {
	switch k {
	case KindSegments:
		return "segments"
	case KindQuadratic:
		return "quadratic"
	case KindCubic:
		return "cubic"
	case KindHermite:
		return "hermite"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// A PointCountError reports a control-point slice whose length doesn't match
// the arity of the curve kind passed to [NewCurve].
type PointCountError struct {
	Kind CurveKind
	Want int
	Got  int
}

func (err *PointCountError) Error() string {
	if err.Kind == KindSegments {
		return fmt.Sprintf("%v curve needs at least %d control points, got %d", err.Kind, err.Want, err.Got)
	}
	return fmt.Sprintf("%v curve needs exactly %d control points, got %d", err.Kind, err.Want, err.Got)
}

// NewCurve returns the curve of the given kind through the given control
// points. [KindSegments] accepts two or more points; the other kinds need an
// exact count and reject anything else with a *[PointCountError]. The point
// slice is copied where it is retained, so callers may reuse it.
func NewCurve(kind CurveKind, points []Point) (Curve, error) {
	switch kind {
	case KindSegments:
		if len(points) < 2 {
			return nil, &PointCountError{Kind: kind, Want: 2, Got: len(points)}
		}
		if len(points) == 2 {
			return Line{points[0], points[1]}, nil
		}
		return Polyline(slices.Clone(points)), nil
	case KindQuadratic:
		if len(points) != 3 {
			return nil, &PointCountError{Kind: kind, Want: 3, Got: len(points)}
		}
		return QuadInterp{points[0], points[1], points[2]}, nil
	case KindCubic:
		if len(points) != 4 {
			return nil, &PointCountError{Kind: kind, Want: 4, Got: len(points)}
		}
		return CubicInterp{points[0], points[1], points[2], points[3]}, nil
	case KindHermite:
		if len(points) != 4 {
			return nil, &PointCountError{Kind: kind, Want: 4, Got: len(points)}
		}
		return Hermite{points[0], points[1], points[2], points[3]}, nil
	default:
		return nil, fmt.Errorf("unknown curve kind %v", kind)
	}
}

// Polyline chains straight segments through its points. The curve parameter
// is split uniformly across the len(p)−1 segments, so t = 0.5 on a
// two-segment polyline lands exactly on the middle point. Parameters outside
// [0, 1] clamp to the endpoints; the chain never extrapolates beyond its
// control polygon.
type Polyline []Point

var _ Curve = Polyline{}

func (p Polyline) Eval(t float64) Point {
	switch len(p) {
	case 0:
		return Point{}
	case 1:
		return p[0]
	}
	i, u := splitParameter(t, len(p)-1)
	return p[i].Lerp(p[i+1], u)
}

func (p Polyline) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0]
}

func (p Polyline) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1]
}

// Length returns the total length of the control polygon.
func (p Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(p); i++ {
		sum += p[i].Distance(p[i-1])
	}
	return sum
}

func (p Polyline) Transform(aff Affine) Polyline {
	out := make(Polyline, len(p))
	for i, pt := range p {
		out[i] = pt.Transform(aff)
	}
	return out
}

// QuadInterp is the unique parabola through three points: it evaluates to P0
// at t = 0, to P1 at t = 0.5, and to P2 at t = 1. Unlike a quadratic
// Bézier's middle control point, P1 lies on the curve.
type QuadInterp struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ Curve = QuadInterp{}

// Eval evaluates the parabola via its monomial coefficients,
//
//	(2a − 4b + 2c)t² + (−3a + 4b − c)t + a
//
// where a, b, c are the control points. The coefficients follow from solving
// the interpolation constraints at t = 0, ½, 1.
func (q QuadInterp) Eval(t float64) Point {
	a := Vec2(q.P0)
	b := Vec2(q.P1)
	c := Vec2(q.P2)
	c2 := Combine(Term{2, a}, Term{-4, b}, Term{2, c})
	c1 := Combine(Term{-3, a}, Term{4, b}, Term{-1, c})
	return Point(c2.Mul(t).Add(c1).Mul(t).Add(a))
}

func (q QuadInterp) Start() Point { return q.P0 }
func (q QuadInterp) End() Point   { return q.P2 }

func (q QuadInterp) Transform(aff Affine) QuadInterp {
	return QuadInterp{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// CubicInterp is the unique cubic through four points at uniformly spaced
// parameters: it evaluates to P0, P1, P2, P3 at t = 0, ⅓, ⅔, 1. All four
// control points lie on the curve, unlike a cubic Bézier's hull.
type CubicInterp struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Curve = CubicInterp{}

// Eval evaluates the cubic via the Lagrange basis for the nodes 0, ⅓, ⅔, 1,
// collected into monomial coefficients and applied with Horner's scheme.
func (c CubicInterp) Eval(t float64) Point {
	p0 := Vec2(c.P0)
	p1 := Vec2(c.P1)
	p2 := Vec2(c.P2)
	p3 := Vec2(c.P3)
	c3 := Combine(Term{-4.5, p0}, Term{13.5, p1}, Term{-13.5, p2}, Term{4.5, p3})
	c2 := Combine(Term{9, p0}, Term{-22.5, p1}, Term{18, p2}, Term{-4.5, p3})
	c1 := Combine(Term{-5.5, p0}, Term{9, p1}, Term{-4.5, p2}, Term{1, p3})
	return Point(c3.Mul(t).Add(c2).Mul(t).Add(c1).Mul(t).Add(p0))
}

func (c CubicInterp) Start() Point { return c.P0 }
func (c CubicInterp) End() Point   { return c.P3 }

func (c CubicInterp) Transform(aff Affine) CubicInterp {
	return CubicInterp{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Hermite is a cubic Hermite segment. P0 and P3 are the curve's endpoints.
// P1 and P2 are off-curve handles: the displacements P1−P0 and P3−P2 are the
// start and end tangents.
type Hermite struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ Curve = Hermite{}

// Eval evaluates the segment using the Hermite basis functions
// h₀₀ = 2t³−3t²+1, h₁₀ = t³−2t²+t, h₀₁ = −2t³+3t², h₁₁ = t³−t².
func (h Hermite) Eval(t float64) Point {
	m0 := h.P1.Sub(h.P0)
	m1 := h.P3.Sub(h.P2)
	t2 := t * t
	t3 := t2 * t
	return Point(Combine(
		Term{2*t3 - 3*t2 + 1, Vec2(h.P0)},
		Term{t3 - 2*t2 + t, m0},
		Term{-2*t3 + 3*t2, Vec2(h.P3)},
		Term{t3 - t2, m1},
	))
}

func (h Hermite) Start() Point { return h.P0 }
func (h Hermite) End() Point   { return h.P3 }

func (h Hermite) Transform(aff Affine) Hermite {
	return Hermite{
		P0: h.P0.Transform(aff),
		P1: h.P1.Transform(aff),
		P2: h.P2.Transform(aff),
		P3: h.P3.Transform(aff),
	}
}
