package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/plotsurf/plotsurf"
)

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r < 0x4000 && g < 0x4000 && b < 0x4000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestCanvasStrokePath(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(color.White)
	c.StrokeLine(plotsurf.Line{P0: plotsurf.Pt(10, 50), P1: plotsurf.Pt(90, 50)}, 3, color.Black)

	if got := c.Image().At(50, 50); !isDark(got) {
		t.Errorf("got %v on the stroke, want a dark pixel", got)
	}
	if got := c.Image().At(50, 10); !isWhite(got) {
		t.Errorf("got %v off the stroke, want white", got)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(color.White)
	c.FillCircle(plotsurf.Pt(50, 50), 10, color.Black)

	if got := c.Image().At(50, 50); !isDark(got) {
		t.Errorf("got %v at the circle center, want a dark pixel", got)
	}
	if got := c.Image().At(80, 80); !isWhite(got) {
		t.Errorf("got %v outside the circle, want white", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(color.White)
	c.FillRect(plotsurf.Rect{X0: 20, Y0: 20, X1: 40, Y1: 40}, color.Black)

	if got := c.Image().At(30, 30); !isDark(got) {
		t.Errorf("got %v inside the rect, want a dark pixel", got)
	}
	if got := c.Image().At(50, 30); !isWhite(got) {
		t.Errorf("got %v outside the rect, want white", got)
	}
}

func TestCanvasFillRectClipped(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(color.White)

	// A rectangle larger than the canvas still fills the visible part.
	c.FillRect(plotsurf.Rect{X0: -50, Y0: -50, X1: 150, Y1: 10}, color.Black)
	if got := c.Image().At(50, 5); !isDark(got) {
		t.Errorf("got %v inside the clipped rect, want a dark pixel", got)
	}
	if got := c.Image().At(50, 50); !isWhite(got) {
		t.Errorf("got %v below the clipped rect, want white", got)
	}

	// A rectangle entirely off the canvas draws nothing.
	c.Clear(color.White)
	c.FillRect(plotsurf.Rect{X0: -50, Y0: -50, X1: -10, Y1: -10}, color.Black)
	if got := c.Image().At(0, 0); !isWhite(got) {
		t.Errorf("got %v, want an untouched canvas", got)
	}
}

func TestCanvasFillCircleOffCanvas(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(color.White)

	// A circle overlapping the canvas edge still draws its visible part.
	c.FillCircle(plotsurf.Pt(-5, 50), 10, color.Black)
	if got := c.Image().At(2, 50); !isDark(got) {
		t.Errorf("got %v inside the partially visible circle, want a dark pixel", got)
	}

	// A circle entirely off the canvas draws nothing.
	c.Clear(color.White)
	c.FillCircle(plotsurf.Pt(-50, 50), 10, color.Black)
	if got := c.Image().At(0, 50); !isWhite(got) {
		t.Errorf("got %v, want an untouched canvas", got)
	}
}

func TestCanvasWorldPipeline(t *testing.T) {
	// World viewport (0,0)-(10,10) on a 100×100 canvas: world (5, 5) is the
	// canvas center, world (0, 0) the bottom-left corner.
	c := NewCanvas(100, 100)
	c.Clear(color.White)

	m, err := plotsurf.DeviceTransform(c.Size(), plotsurf.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, 1)
	if err != nil {
		t.Fatal(err)
	}
	aff := m.Affine()

	c.FillWorldCircle(plotsurf.Pt(5, 5), aff, 5, color.Black)
	if got := c.Image().At(50, 50); !isDark(got) {
		t.Errorf("got %v at the canvas center, want a dark pixel", got)
	}

	c.FillWorldCircle(plotsurf.Pt(1, 1), aff, 5, color.Black)
	// y flips: world (1, 1) is near the bottom of the image.
	if got := c.Image().At(10, 90); !isDark(got) {
		t.Errorf("got %v near the bottom-left, want a dark pixel", got)
	}
	if got := c.Image().At(10, 10); !isWhite(got) {
		t.Errorf("got %v near the top-left, want white", got)
	}

	line, err := plotsurf.NewCurve(plotsurf.KindSegments, []plotsurf.Point{
		plotsurf.Pt(0, 5), plotsurf.Pt(10, 5),
	})
	if err != nil {
		t.Fatal(err)
	}
	c.StrokeWorldPath(plotsurf.Samples(line, 16), aff, 2, color.Black)
	if got := c.Image().At(75, 50); !isDark(got) {
		t.Errorf("got %v on the stroked curve, want a dark pixel", got)
	}
}

func TestCanvasEmptyPath(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(color.White)
	// An empty sample stream draws nothing and doesn't panic.
	c.StrokePath(func(yield func(plotsurf.Point) bool) {}, 1, color.Black)
	if got := c.Image().At(5, 5); !isWhite(got) {
		t.Errorf("got %v, want an untouched canvas", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(64, 32)
	c.Clear(color.White)

	buf := &bytes.Buffer{}
	if err := c.EncodePNG(buf); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("got %d×%d, want 64×32", cfg.Width, cfg.Height)
	}
}
