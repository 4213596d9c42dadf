// Package plotsurf provides the geometry core of an interactive 2D plotting
// surface: coordinate transforms and parametric curve evaluation, mapping
// mathematical objects onto pixels.
//
// # Coordinate spaces
//
// Three coordinate spaces appear in a plotting pipeline. World space is the
// mathematical coordinate range being plotted, described by a viewport [Rect].
// Device space is the pixel grid of a canvas, described by a canvas-region
// [Rect]. Unit space is the square [0, 1]², relative to either rectangle's
// origin and size (see [Rect.FromUnit]).
//
// [ViewportTransform] derives the affine map between any two rectangles, and
// [DeviceTransform] derives the world-to-pixel map for a canvas, including
// the y-axis flip between mathematical (y-up) and device (y-down)
// conventions. Both return 3×3 matrices; [Matrix] is a general
// runtime-dimensioned matrix type, and [Affine] is the compact 6-coefficient
// form used when applying transforms in bulk.
//
// # Curves
//
// [Curve] describes curves parametrized by t ∈ [0, 1], driven by small sets
// of control points. [Line] and [Polyline] chain straight segments.
// [QuadInterp] and [CubicInterp] pass polynomial curves through all of their
// control points, unlike Bézier curves, whose inner control points are
// off-curve. [Hermite] spans a cubic between its outer control points, with
// the inner points acting as tangent handles. [NewCurve] constructs any of
// them from a [CurveKind] and a point slice.
//
// All geometry types are immutable values; every operation returns a new
// value, and nothing in this package performs I/O, logging, or
// synchronization.
//
// # Arc length
//
// Polynomial curve parameters are not uniform in distance traveled.
// [ArcLengths] tabulates cumulative chord length along a curve and inverts
// the table, so that curves can be sampled evenly by arc length, for
// uniform-speed animation or even marker density. See
// [ArcLengths.EvenParams].
//
// # Rendering
//
// This package produces coordinates and transform matrices only. The raster
// subpackage provides a software drawing surface that consumes them, and
// cmd/plotdemo wires both into an interactive viewer.
//
// # Iterators
//
// Functions that produce sequences of points or parameters return iterators
// ([Samples], [ArcLengths.EvenParams]) rather than slices, so that samples
// can flow into a renderer without intermediate allocation. Use
// [slices.Collect] to materialize them and [slices.Values] to go the other
// way.
package plotsurf
