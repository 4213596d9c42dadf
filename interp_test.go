package plotsurf

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPolylineEval(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1), Pt(4, 0)}

	diff(t, Pt(0, 0), p.Eval(0))
	diff(t, Pt(4, 0), p.Eval(1))
	// With an even number of segments, t = 0.5 lands exactly on the middle
	// control point.
	diff(t, Pt(2, 0), p.Eval(0.5))
	// Halfway along the first of four segments.
	diff(t, Pt(0.5, 0.5), p.Eval(0.125))

	three := Polyline{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, Pt(1, 2), three.Eval(0.5))
}

func TestPolylineClamp(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	// Out-of-range parameters clamp instead of extrapolating.
	diff(t, p.Start(), p.Eval(-1))
	diff(t, p.End(), p.Eval(2))
	diff(t, p.Start(), p.Eval(math.Inf(-1)))
	diff(t, p.End(), p.Eval(math.Inf(1)))
}

func TestPolylineLength(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(3, 4), Pt(3, 10)}
	if got := p.Length(); got != 11 {
		t.Errorf("got length %v, want 11", got)
	}
}

func TestQuadInterpConstraints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	q := QuadInterp{Pt(-1, 2), Pt(0.5, -3), Pt(4, 1)}
	// The curve passes through all three control points.
	diff(t, q.P0, q.Eval(0), approx)
	diff(t, q.P1, q.Eval(0.5), approx)
	diff(t, q.P2, q.Eval(1), approx)
	diff(t, q.P0, q.Start())
	diff(t, q.P2, q.End())
}

func TestQuadInterpClosedForm(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	q := QuadInterp{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	// (2a−4b+2c)t² + (−3a+4b−c)t + a at t = 0.25:
	// x: 0·0.0625 + 2·0.25 + 0 = 0.5
	// y: −8·0.0625 + 8·0.25 + 0 = 1.5
	diff(t, Pt(0.5, 1.5), q.Eval(0.25), approx)
}

func TestCubicInterpConstraints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	c := CubicInterp{Pt(0, 0), Pt(1, 3), Pt(2, -1), Pt(4, 2)}
	// The curve passes through all four control points at t = 0, ⅓, ⅔, 1.
	diff(t, c.P0, c.Eval(0), approx)
	diff(t, c.P1, c.Eval(1.0/3.0), approx)
	diff(t, c.P2, c.Eval(2.0/3.0), approx)
	diff(t, c.P3, c.Eval(1), approx)
}

func TestHermiteConstraints(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	h := Hermite{Pt(0, 0), Pt(1, 2), Pt(3, -1), Pt(4, 1)}
	// Only the outer control points are on the curve.
	diff(t, h.P0, h.Eval(0), approx)
	diff(t, h.P3, h.Eval(1), approx)

	// The inner points define the tangents: f'(0) = P1−P0, f'(1) = P3−P2.
	// Check against central differences.
	deriv := func(t float64) Vec2 {
		const dt = 1e-6
		return h.Eval(t + dt).Sub(h.Eval(t - dt)).Div(2 * dt)
	}
	nearish := cmpopts.EquateApprox(0, 1e-5)
	diff(t, h.P1.Sub(h.P0), deriv(1e-6), nearish)
	diff(t, h.P3.Sub(h.P2), deriv(1-1e-6), nearish)
}

func TestInterpTransformCommutes(t *testing.T) {
	// Interpolation through control points commutes with affine maps:
	// transforming the control points transforms the curve.
	approx := cmpopts.EquateApprox(0, 1e-9)
	aff := Rotate(0.7).ThenScale(2, 3).ThenTranslate(Vec(5, -1))
	q := QuadInterp{Pt(-1, 2), Pt(0.5, -3), Pt(4, 1)}
	qt := q.Transform(aff)
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		diff(t, q.Eval(u).Transform(aff), qt.Eval(u), approx)
	}
}

func TestNewCurve(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}

	c, err := NewCurve(KindCubic, pts)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(CubicInterp); !ok {
		t.Fatalf("got %T, want CubicInterp", c)
	}

	c, err = NewCurve(KindSegments, pts[:2])
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(Line); !ok {
		t.Fatalf("got %T, want Line", c)
	}

	c, err = NewCurve(KindSegments, pts)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(Polyline); !ok {
		t.Fatalf("got %T, want Polyline", c)
	}

	if _, err := NewCurve(KindHermite, pts); err != nil {
		t.Fatal(err)
	}
}

func TestNewCurveArity(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 1)}
	tests := []struct {
		kind CurveKind
		pts  []Point
		want int
	}{
		{KindSegments, pts[:1], 2},
		{KindSegments, nil, 2},
		{KindQuadratic, pts, 3},
		{KindQuadratic, pts[:2], 3},
		{KindCubic, pts[:3], 4},
		{KindHermite, pts[:3], 4},
	}
	for _, tt := range tests {
		_, err := NewCurve(tt.kind, tt.pts)
		var cntErr *PointCountError
		if !errors.As(err, &cntErr) {
			t.Fatalf("NewCurve(%v, %d points): got error %v, want *PointCountError", tt.kind, len(tt.pts), err)
		}
		if cntErr.Want != tt.want || cntErr.Got != len(tt.pts) || cntErr.Kind != tt.kind {
			t.Errorf("NewCurve(%v, %d points): got %+v", tt.kind, len(tt.pts), cntErr)
		}
	}

	if _, err := NewCurve(CurveKind(99), pts); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}

func TestNewCurveCopiesPoints(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	c, err := NewCurve(KindSegments, pts)
	if err != nil {
		t.Fatal(err)
	}
	want := c.Eval(0.5)
	pts[1] = Pt(100, 100)
	diff(t, want, c.Eval(0.5))
}

func TestSamples(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 0)}
	var got []Point
	for pt := range Samples(l, 4) {
		got = append(got, pt)
	}
	diff(t, []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}, got)

	// n below 1 still yields both endpoints.
	got = got[:0]
	for pt := range Samples(l, 0) {
		got = append(got, pt)
	}
	diff(t, []Point{Pt(0, 0), Pt(4, 0)}, got)
}
