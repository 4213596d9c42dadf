// Command plotdemo is an interactive viewer for the plotsurf curve
// interpolators. Control points can be dragged with the mouse, the number
// keys 1-4 switch the curve kind, and R resets the control points. The
// orange markers along the curve are spaced evenly by arc length, which
// makes the non-uniform speed of the raw parametrization visible.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plotsurf/plotsurf"
	"github.com/plotsurf/plotsurf/raster"
)

// hitRadiusPx is the pick radius for grabbing a control point, in pixels.
const hitRadiusPx = 12

const arcLengthMarkers = 16

var (
	colorGrid    = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	colorAxis    = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	colorPolygon = color.RGBA{0xbb, 0xbb, 0xbb, 0xff}
	colorCurve   = color.RGBA{0x1f, 0x4f, 0xcf, 0xff}
	colorMarker  = color.RGBA{0xcf, 0x6f, 0x1f, 0xff}
	colorControl = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

type game struct {
	width  int
	height int
	steps  int

	viewport plotsurf.Rect
	toDevice plotsurf.Affine
	toWorld  plotsurf.Affine

	kind     plotsurf.CurveKind
	points   []plotsurf.Point
	dragging int

	canvas *raster.Canvas
	frame  *ebiten.Image
}

func newGame(width, height, steps int, kind plotsurf.CurveKind) (*game, error) {
	g := &game{
		width:    width,
		height:   height,
		steps:    steps,
		kind:     kind,
		points:   defaultPoints(kind),
		dragging: -1,
		canvas:   raster.NewCanvas(width, height),
		frame:    ebiten.NewImage(width, height),
	}

	// World x spans -5..5; y follows the window's aspect ratio so that
	// world units stay square on screen.
	aspect := float64(height) / float64(width)
	g.viewport = plotsurf.Rect{X0: -5, Y0: -5 * aspect, X1: 5, Y1: 5 * aspect}
	m, err := plotsurf.DeviceTransform(plotsurf.Vec(float64(width), float64(height)), g.viewport, 1)
	if err != nil {
		return nil, err
	}
	g.toDevice = m.Affine()
	g.toWorld = g.toDevice.Invert()
	return g, nil
}

func defaultPoints(kind plotsurf.CurveKind) []plotsurf.Point {
	switch kind {
	case plotsurf.KindQuadratic:
		return []plotsurf.Point{
			plotsurf.Pt(-4, -2),
			plotsurf.Pt(0, 3),
			plotsurf.Pt(4, -2),
		}
	default:
		return []plotsurf.Point{
			plotsurf.Pt(-4, -2),
			plotsurf.Pt(-1.5, 3),
			plotsurf.Pt(1.5, -3),
			plotsurf.Pt(4, 2),
		}
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.setKind(plotsurf.KindSegments)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.setKind(plotsurf.KindQuadratic)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.setKind(plotsurf.KindCubic)
	case inpututil.IsKeyJustPressed(ebiten.Key4):
		g.setKind(plotsurf.KindHermite)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.points = defaultPoints(g.kind)
		g.dragging = -1
	}

	x, y := ebiten.CursorPosition()
	cursor := plotsurf.Pt(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = g.pick(cursor)
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = -1
	}
	if g.dragging >= 0 {
		g.points[g.dragging] = cursor.Transform(g.toWorld)
	}
	return nil
}

func (g *game) setKind(kind plotsurf.CurveKind) {
	if kind == g.kind {
		return
	}
	g.kind = kind
	g.points = defaultPoints(kind)
	g.dragging = -1
}

// pick returns the index of the control point within hitRadiusPx of the
// cursor, preferring the closest one, or -1.
func (g *game) pick(cursor plotsurf.Point) int {
	best := -1
	bestDist := float64(hitRadiusPx * hitRadiusPx)
	for i, pt := range g.points {
		if d := pt.Transform(g.toDevice).DistanceSquared(cursor); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (g *game) Draw(screen *ebiten.Image) {
	g.render()
	g.frame.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *game) render() {
	c := g.canvas
	c.Clear(color.White)
	g.drawGrid()

	c.StrokeWorldPath(slices.Values(g.points), g.toDevice, 1, colorPolygon)

	curve, err := plotsurf.NewCurve(g.kind, g.points)
	if err != nil {
		// Unreachable as long as setKind and defaultPoints agree on arity.
		raster.Logger().Warn("building curve", "kind", g.kind, "err", err)
		return
	}
	c.StrokeWorldPath(plotsurf.Samples(curve, g.steps), g.toDevice, 2, colorCurve)

	table := plotsurf.NewArcLengths(curve, g.steps)
	for t := range table.EvenParams(arcLengthMarkers) {
		c.FillWorldCircle(curve.Eval(t), g.toDevice, 3, colorMarker)
	}
	for _, pt := range g.points {
		c.FillWorldCircle(pt, g.toDevice, 5, colorControl)
	}
}

func (g *game) drawGrid() {
	for x := math.Ceil(g.viewport.MinX()); x <= g.viewport.MaxX(); x++ {
		col := colorGrid
		if x == 0 {
			col = colorAxis
		}
		g.canvas.StrokeWorldPath(slices.Values([]plotsurf.Point{
			plotsurf.Pt(x, g.viewport.MinY()),
			plotsurf.Pt(x, g.viewport.MaxY()),
		}), g.toDevice, 1, col)
	}
	for y := math.Ceil(g.viewport.MinY()); y <= g.viewport.MaxY(); y++ {
		col := colorGrid
		if y == 0 {
			col = colorAxis
		}
		g.canvas.StrokeWorldPath(slices.Values([]plotsurf.Point{
			plotsurf.Pt(g.viewport.MinX(), y),
			plotsurf.Pt(g.viewport.MaxX(), y),
		}), g.toDevice, 1, col)
	}
}

func parseKind(s string) (plotsurf.CurveKind, error) {
	switch s {
	case "segments":
		return plotsurf.KindSegments, nil
	case "quadratic":
		return plotsurf.KindQuadratic, nil
	case "cubic":
		return plotsurf.KindCubic, nil
	case "hermite":
		return plotsurf.KindHermite, nil
	default:
		return 0, fmt.Errorf("unknown curve kind %q", s)
	}
}

func main() {
	var (
		width   = flag.Int("width", 960, "Window width in pixels.")
		height  = flag.Int("height", 640, "Window height in pixels.")
		steps   = flag.Int("steps", plotsurf.DefaultArcLengthSteps, "Curve samples per frame; higher is smoother and slower.")
		kind    = flag.String("kind", "cubic", "Initial curve kind: segments, quadratic, cubic, or hermite.")
		verbose = flag.Bool("v", false, "Log rendering diagnostics to stderr.")
	)
	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	k, err := parseKind(*kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	g, err := newGame(*width, *height, *steps, k)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("plotsurf demo")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
