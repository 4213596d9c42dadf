// Package raster is a software drawing surface for plotsurf. It consumes the
// transform matrices and sample streams produced by the geometry core and
// turns them into pixels, by wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"slices"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/plotsurf/plotsurf"
)

// Canvas rasterizes into an RGBA image. Drawing methods take device-pixel
// coordinates; the World* variants transform whole batches from world space
// first, so callers hand them the output of
// [github.com/plotsurf/plotsurf.DeviceTransform].
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img    *image.RGBA
	filler *rasterx.Filler // for area fills
	dasher *rasterx.Dasher // separate instance, carries stroke state
}

// NewCanvas returns a canvas of the given size in device pixels.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	c := &Canvas{
		img:    img,
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
	}
	Logger().Debug("canvas allocated", "width", width, "height", height)
	return c
}

// Image returns the backing image. The canvas keeps drawing into it, so a
// caller that wants a stable snapshot must copy it.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas size in device pixels.
func (c *Canvas) Size() plotsurf.Vec2 {
	b := c.img.Bounds()
	return plotsurf.Vec(float64(b.Dx()), float64(b.Dy()))
}

// Clear fills the whole canvas with a single color.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// rect returns the canvas extent as a device-space rectangle.
func (c *Canvas) rect() plotsurf.Rect {
	b := c.img.Bounds()
	return plotsurf.Rect{X1: float64(b.Dx()), Y1: float64(b.Dy())}
}

// FillRect fills an axis-aligned device-space rectangle. The rectangle is
// clipped to the canvas before it reaches the rasterizer.
func (c *Canvas) FillRect(r plotsurf.Rect, col color.Color) {
	r = r.Abs().Intersect(c.rect())
	if r.Width() == 0 || r.Height() == 0 {
		return
	}
	c.filler.Scanner.SetColor(col)
	rasterx.AddRect(r.X0, r.Y0, r.X1, r.Y1, 0, c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

// FillCircle fills a circle given in device-space coordinates. Circles that
// lie entirely off the canvas are skipped without touching the rasterizer.
func (c *Canvas) FillCircle(center plotsurf.Point, radius float64, col color.Color) {
	if !c.rect().Inflate(radius, radius).Contains(center) {
		return
	}
	c.filler.Scanner.SetColor(col)
	rasterx.AddCircle(center.X, center.Y, radius, c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

// StrokePath strokes the open path through the given device-space points
// with round caps and joins.
func (c *Canvas) StrokePath(points iter.Seq[plotsurf.Point], width float64, col color.Color) {
	c.dasher.Scanner.SetColor(col)
	c.dasher.SetStroke(toFixed(width), toFixed(4), rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	first := true
	for pt := range points {
		p := toFixedPoint(pt)
		if first {
			c.dasher.Start(p)
			first = false
		} else {
			c.dasher.Line(p)
		}
	}
	if first {
		// Empty path, nothing was started.
		return
	}
	c.dasher.Stop(false)
	c.dasher.Draw()
	c.dasher.Clear()
}

// StrokeLine strokes a single device-space segment.
func (c *Canvas) StrokeLine(l plotsurf.Line, width float64, col color.Color) {
	c.StrokePath(slices.Values([]plotsurf.Point{l.P0, l.P1}), width, col)
}

// StrokeWorldPath transforms a world-space sample stream by aff and strokes
// the result. The stream typically comes from plotsurf.Samples or from
// evaluating evenly spaced arc-length parameters.
func (c *Canvas) StrokeWorldPath(points iter.Seq[plotsurf.Point], aff plotsurf.Affine, width float64, col color.Color) {
	c.StrokePath(plotsurf.Transform(points, aff), width, col)
}

// FillWorldCircle fills a circle centered on a world-space point. The radius
// stays in device pixels, so markers keep their apparent size across zoom
// levels.
func (c *Canvas) FillWorldCircle(center plotsurf.Point, aff plotsurf.Affine, radius float64, col color.Color) {
	c.FillCircle(center.Transform(aff), radius, col)
}

// EncodePNG writes the canvas content to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	b := c.img.Bounds()
	Logger().Debug("encoding canvas", "width", b.Dx(), "height", b.Dy())
	return png.Encode(w, c.img)
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

func toFixedPoint(pt plotsurf.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(pt.X), Y: toFixed(pt.Y)}
}
