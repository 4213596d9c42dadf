package plotsurf

import "fmt"

// An InvalidGeometryError reports a source rectangle that cannot anchor a
// coordinate transform because one of its axes has zero extent. Scaling away
// from a zero-extent axis would require an infinite scale factor, so the
// transform constructors reject the rectangle up front instead of returning a
// matrix full of infinities.
type InvalidGeometryError struct {
	Source Rect
}

func (err *InvalidGeometryError) Error() string {
	return fmt.Sprintf("source rectangle (%g, %g)-(%g, %g) has a zero-extent axis",
		err.Source.X0, err.Source.Y0, err.Source.X1, err.Source.Y1)
}

// ViewportTransform returns the affine transform, as a 3×3 matrix, that maps
// src's origin onto dst's origin and src's far corner onto dst's far corner.
// Each axis is scaled independently, then translated; the result is the
// unique axis-aligned map between the two rectangles.
//
// Both rectangles may be in any coordinate space: mapping a world-space
// viewport onto a device-space canvas region and mapping one world rectangle
// onto another use the same construction. A dst axis may have zero or
// negative extent (a negative extent flips that axis); a src axis of zero
// extent returns an *[InvalidGeometryError].
func ViewportTransform(src, dst Rect) (Matrix, error) {
	if src.Width() == 0 || src.Height() == 0 {
		return Matrix{}, &InvalidGeometryError{Source: src}
	}
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	tx := dst.X0 - sx*src.X0
	ty := dst.Y0 - sy*src.Y0
	return MatrixFromAffine(Affine{sx, 0, 0, sy, tx, ty}), nil
}

// DeviceTransform returns the world→device-pixel transform for a canvas, as
// a 3×3 matrix. canvasSize is the canvas size in logical pixels and
// pixelDensity is the ratio of device pixels to logical pixels; both are
// explicit parameters rather than ambient state, so the same viewport can be
// rendered for several canvases at once.
//
// World-space y increases upward while device-pixel y increases downward, so
// the y axis is flipped: the viewport's (X0, Y0) corner lands on device
// position (0, canvasSize.Y·pixelDensity) and its far corner on
// (canvasSize.X·pixelDensity, 0).
func DeviceTransform(canvasSize Vec2, viewport Rect, pixelDensity float64) (Matrix, error) {
	device := Rect{
		X0: 0,
		Y0: canvasSize.Y * pixelDensity,
		X1: canvasSize.X * pixelDensity,
		Y1: 0,
	}
	return ViewportTransform(viewport, device)
}
