package plotsurf

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector, used to represent displacements, sizes, and
// polynomial coefficients. See [Point] for positions.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o, i.e. the signed area of the
// parallelogram the two vectors span.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Perp returns v rotated by 90° towards the positive y direction, i.e. the
// cross product of the out-of-plane axis with v.
func (v Vec2) Perp() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between two vectors.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two vectors.
func (v Vec2) DistanceSquared(o Vec2) float64 {
	return v.Sub(o).Hypot2()
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
//
// Thus, in a y-down coordinate system (as is common for graphics),
// it is a clockwise rotation, and in y-up (traditional for math), it
// is anti-clockwise.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// VecFromPolar returns the vector of the given angle and magnitude. The angle
// convention is that of [VecFromAngle].
func VecFromPolar(th, r float64) Vec2 {
	return VecFromAngle(th).Mul(r)
}

// Rotate returns v rotated by th radians, following the angle convention of
// [VecFromAngle]. The magnitude is preserved.
func (v Vec2) Rotate(th float64) Vec2 {
	return VecFromPolar(v.Angle()+th, v.Hypot())
}

// Lerp linearly interpolates between two vectors. The parameter is not
// clamped; values outside [0, 1] extrapolate.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v. The
// zero vector has no angle and normalizes to itself, not to a NaN vector.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Hypot())
}

// Round returns a new vector with x and y rounded to the nearest integers.
func (v Vec2) Round() Vec2 {
	return Vec2{
		X: math.Round(v.X),
		Y: math.Round(v.Y),
	}
}

// Ceil returns a new vector with x and y rounded up to the nearest integers.
func (v Vec2) Ceil() Vec2 {
	return Vec2{
		X: math.Ceil(v.X),
		Y: math.Ceil(v.Y),
	}
}

// Floor returns a new vector with x and y rounded down to the nearest integers.
func (v Vec2) Floor() Vec2 {
	return Vec2{
		X: math.Floor(v.X),
		Y: math.Floor(v.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul returns the vector scaled by f.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Div returns the vector scaled by 1/f. Dividing by zero returns the zero
// vector, not an infinite one.
func (v Vec2) Div(f float64) Vec2 {
	if f == 0 {
		return Vec2{}
	}
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// MulComponents returns the component-wise product of v and o.
func (v Vec2) MulComponents(o Vec2) Vec2 {
	return Vec2{
		X: v.X * o.X,
		Y: v.Y * o.Y,
	}
}

// DivComponents returns the component-wise quotient of v and o. A component
// with a zero divisor yields 0, not an infinity.
func (v Vec2) DivComponents(o Vec2) Vec2 {
	var out Vec2
	if o.X != 0 {
		out.X = v.X / o.X
	}
	if o.Y != 0 {
		out.Y = v.Y / o.Y
	}
	return out
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// A Term is a scalar-weighted vector, for use with [Combine].
type Term struct {
	Coeff float64
	V     Vec2
}

// Combine returns the weighted sum of the given terms. It is the building
// block for evaluating curves expressed in a polynomial basis.
func Combine(terms ...Term) Vec2 {
	var out Vec2
	for _, term := range terms {
		out = out.Add(term.V.Mul(term.Coeff))
	}
	return out
}
