package plotsurf

import (
	"math"
)

// Rect is an axis-aligned rectangle, given by two corners. The same type
// serves as a world-space viewport and as a device-space canvas region; only
// the pipeline stage holding it distinguishes the two.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Origin returns the origin of the rectangle, the corner (X0, Y0).
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// FarCorner returns the corner (X1, Y1), diagonally opposite the origin.
func (r Rect) FarCorner() Point {
	return Point{
		X: r.X1,
		Y: r.Y1,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// FromUnit maps a unit-space coordinate into the rectangle: (0, 0) maps to
// the origin, (1, 1) to the far corner. The input is not clamped; values
// outside [0, 1] land outside the rectangle.
func (r Rect) FromUnit(pt Point) Point {
	return Point{
		X: r.X0 + r.Width()*pt.X,
		Y: r.Y0 + r.Height()*pt.Y,
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the intersection of two rectangles.
//
// The result is zero-area if either input has negative width or
// height. The result always has non-negative width and height.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X0, o.X0)
	y0 := max(r.Y0, o.Y0)
	x1 := min(r.X1, o.X1)
	y1 := min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Inset shrinks the rectangle by the given amount on each edge: x0Inset
// moves the X0 edge inward, and so on. If the two insets of an axis cross,
// that axis collapses to its midpoint rather than producing a negative
// extent.
func (r Rect) Inset(x0Inset, y0Inset, x1Inset, y1Inset float64) Rect {
	x0 := r.X0 + x0Inset
	x1 := r.X1 - x1Inset
	if x0 > x1 {
		x0 = 0.5 * (r.X0 + r.X1)
		x1 = x0
	}
	y0 := r.Y0 + y0Inset
	y1 := r.Y1 - y1Inset
	if y0 > y1 {
		y0 = 0.5 * (r.Y0 + r.Y1)
		y1 = y0
	}
	return Rect{
		X0: x0,
		Y0: y0,
		X1: x1,
		Y1: y1,
	}
}

// Round returns a new rectangle with each coordinate value rounded to the nearest
// integer.
func (r Rect) Round() Rect {
	return Rect{
		X0: math.Round(r.X0),
		Y0: math.Round(r.Y0),
		X1: math.Round(r.X1),
		Y1: math.Round(r.Y1),
	}
}

// AspectRatio returns the aspect ratio of the rectangle.
//
// This is defined as the height divided by the width. It measures the
// "squareness" of the rectangle (a value of 1 is square).
//
// If the width is 0 the output will be "sign(y1 - y0) * infinity".
//
// If the width and height are 0, the result will be NaN.
func (r Rect) AspectRatio() float64 {
	return r.Size().AspectRatio()
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

// ContainedRectWithAspectRatio returns the largest possible rectangle that is
// fully contained in this rectangle, with the given aspect ratio.
//
// The aspect ratio is specified fractionally, as height / width.
//
// The resulting rectangle will be centered if it is smaller than the input
// rectangle.
func (r Rect) ContainedRectWithAspectRatio(aspectRatio float64) Rect {
	width, height := r.Width(), r.Height()
	rAspect := height / width

	// TODO the parameter 1e-9 was chosen quickly and may not be optimal.
	if math.Abs(rAspect-aspectRatio) < 1e-9 {
		return r
	} else if math.Abs(rAspect) < math.Abs(aspectRatio) {
		// shrink x to fit
		newWidth := height / aspectRatio
		gap := (width - newWidth) * 0.5
		x0 := r.X0 + gap
		x1 := r.X1 - gap
		return Rect{x0, r.Y0, x1, r.Y1}
	} else {
		// shrink y to fit
		newHeight := width * aspectRatio
		gap := (height - newHeight) * 0.5
		y0 := r.Y0 + gap
		y1 := r.Y1 - gap
		return Rect{r.X0, y0, r.X1, y1}
	}
}
