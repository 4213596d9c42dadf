package plotsurf

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	want := Rect{0, 0, 10, 20}
	// All four corner orderings canonicalize to the same rectangle.
	diff(t, want, NewRectFromPoints(Pt(0, 0), Pt(10, 20)))
	diff(t, want, NewRectFromPoints(Pt(10, 20), Pt(0, 0)))
	diff(t, want, NewRectFromPoints(Pt(0, 20), Pt(10, 0)))
	diff(t, want, NewRectFromPoints(Pt(10, 0), Pt(0, 20)))
}

func TestRectFromUnit(t *testing.T) {
	r := Rect{2, 3, 12, 23}
	diff(t, Pt(2, 3), r.FromUnit(Pt(0, 0)))
	diff(t, Pt(12, 23), r.FromUnit(Pt(1, 1)))
	diff(t, r.Center(), r.FromUnit(Pt(0.5, 0.5)))
	diff(t, r.FarCorner(), r.FromUnit(Pt(1, 1)))
	// Inputs outside the unit square land outside the rectangle.
	diff(t, Pt(22, 3), r.FromUnit(Pt(2, 0)))

	// A flipped rectangle maps the unit square onto itself, flipped.
	flipped := Rect{0, 10, 10, 0}
	diff(t, Pt(0, 10), flipped.FromUnit(Pt(0, 0)))
	diff(t, Pt(10, 0), flipped.FromUnit(Pt(1, 1)))
}

func TestRectInset(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	diff(t, Rect{1, 2, 7, 16}, r.Inset(1, 2, 3, 4))

	// Crossing insets collapse the axis to its midpoint.
	diff(t, Rect{5, 2, 5, 16}, r.Inset(6, 2, 6, 4))
	diff(t, Rect{1, 10, 7, 10}, r.Inset(1, 11, 3, 11))
	diff(t, Rect{5, 10, 5, 10}, r.Inset(100, 100, 100, 100))
}

func TestRectInflate(t *testing.T) {
	r := Rect{2, 3, 10, 20}
	diff(t, Rect{1, 1, 11, 22}, r.Inflate(1, 2))
	// Negative amounts shrink.
	diff(t, Rect{3, 4, 9, 19}, r.Inflate(-1, -1))
}

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{2, 2, 8, 6}
	diff(t, Rect{2, 2, 4, 4}, a.Intersect(b))
	diff(t, a.Intersect(b), b.Intersect(a))
	diff(t, a, a.Intersect(a))

	// Disjoint rectangles intersect to a zero-area rectangle, never a
	// negative-extent one.
	got := a.Intersect(Rect{10, 10, 12, 12})
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("got %v, want a zero-area rectangle", got)
	}
}

func TestRectSize(t *testing.T) {
	r := Rect{2, 3, 12, 23}
	diff(t, Sz(10, 20), r.Size())
	diff(t, Vec(10, 20), r.Size().AsVec2())
}

func TestRectUnionContains(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{2, 2, 8, 6}
	diff(t, Rect{0, 0, 8, 6}, a.Union(b))

	if !a.Contains(Pt(0, 0)) {
		t.Error("expected rect to contain its origin")
	}
	if a.Contains(Pt(4, 4)) {
		t.Error("expected the far corner to be excluded")
	}

	var bbox Rect
	pts := []Point{Pt(3, 1), Pt(-2, 5), Pt(0, 0), Pt(4, -1)}
	bbox = NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	diff(t, Rect{-2, -1, 4, 5}, bbox)
}

func TestAspectRatio(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	if ratio := r.AspectRatio(); math.Abs(ratio-1) > 1e-6 {
		t.Errorf("got ratio %v, want 1.0", ratio)
	}
}

func TestContainedRectWithAspectRatio(t *testing.T) {
	f := func(outer Rect, aspectRatio float64, want Rect) {
		if got := outer.ContainedRectWithAspectRatio(aspectRatio); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	// squares (different point orderings)
	f(Rect{0.0, 0.0, 10.0, 20.0}, 1.0, Rect{0.0, 5.0, 10.0, 15.0})
	f(Rect{0.0, 20.0, 10.0, 0.0}, 1.0, Rect{0.0, 5.0, 10.0, 15.0})
	f(Rect{10.0, 0.0, 0.0, 20.0}, 1.0, Rect{10.0, 15.0, 0.0, 5.0})
	f(Rect{10.0, 20.0, 0.0, 0.0}, 1.0, Rect{10.0, 15.0, 0.0, 5.0})
	// non-square
	f(Rect{0.0, 0.0, 10.0, 20.0}, 0.5, Rect{0.0, 7.5, 10.0, 12.5})
	// same aspect ratio
	f(Rect{0.0, 0.0, 10.0, 20.0}, 2.0, Rect{0.0, 0.0, 10.0, 20.0})
	// infinite aspect ratio
	f(Rect{0.0, 0.0, 10.0, 20.0}, math.Inf(1), Rect{5.0, 0.0, 5.0, 20.0})
	// zero aspect ratio
	f(Rect{0.0, 0.0, 10.0, 20.0}, 0.0, Rect{0.0, 10.0, 10.0, 10.0})
}
