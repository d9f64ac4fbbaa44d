// Package render draws two polygons and the points where their edges cross.
package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/intersections/advanced"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the shapes, in pixels
const padding = 40

// Largest drawing area, in pixels, not counting padding. The scale is reduced
// to fit when the shapes would be bigger than this.
const MaxCanvasSize = 4096

type Options struct {
	// Pixels per unit
	Scale float64
	// Radius of the intersection markers, in pixels
	MarkerRadius float64
	// Draw polygon names next to their first vertex
	Labels bool
}

func DefaultOptions() Options {
	return Options{Scale: 100, MarkerRadius: 4, Labels: true}
}

// Draw the polygons in different colors, with a marker at every intersection
// point. The y axis points up, so the picture matches the coordinates rather
// than screen convention. Shapes larger than MaxCanvasSize at the requested
// scale are scaled down to fit.
func Draw(a, b advanced.Polygon, points advanced.IntersectionList, opts Options) (image.Image, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	minX, minY, maxX, maxY := bounds(a, b)

	extent := math.Max(maxX-minX, maxY-minY)
	if math.IsInf(extent, 0) || math.IsNaN(extent) {
		return nil, errors.Errorf("cannot draw shapes spanning %v to %v", advanced.Point{X: minX, Y: minY}, advanced.Point{X: maxX, Y: maxY})
	}
	if extent*opts.Scale > MaxCanvasSize {
		opts.Scale = MaxCanvasSize / extent
	}

	width := int(math.Round(math.Min(opts.Scale*(maxX-minX), MaxCanvasSize))) + padding*2
	height := int(math.Round(math.Min(opts.Scale*(maxY-minY), MaxCanvasSize))) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Maps polygon coordinates to pixels: flip so the origin is at the bottom
	// left, pad, scale, and translate to min.
	toPixel := gg.Identity().
		Translate(0, float64(height)).
		Scale(1, -1).
		Translate(padding, padding).
		Scale(opts.Scale, opts.Scale).
		Translate(-minX, -minY)

	c.SetLineWidth(2)
	drawPolygon(c, toPixel, a)
	c.SetRGBA(0, 0.5, 0, 0.4)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	drawPolygon(c, toPixel, b)
	c.SetRGBA(0.5, 0, 0.5, 0.4)
	c.FillPreserve()
	c.SetRGB(1, 0.5, 1)
	c.Stroke()

	c.SetRGB(1, 1, 0)
	for _, p := range points {
		x, y := toPixel.TransformPoint(p.X, p.Y)
		c.DrawCircle(x, y, opts.MarkerRadius)
		c.Fill()
	}

	if opts.Labels {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		for _, poly := range []advanced.Polygon{a, b} {
			if poly.Name == "" || len(poly.Points) == 0 {
				continue
			}
			x, y := toPixel.TransformPoint(poly.Points[0].X, poly.Points[0].Y)
			c.DrawStringAnchored(poly.Name, x, y, 1.1, 1.1)
		}
	}

	return c.Image(), nil
}

func drawPolygon(c *gg.Context, toPixel gg.Matrix, poly advanced.Polygon) {
	c.NewSubPath()
	for _, p := range poly.Points {
		x, y := toPixel.TransformPoint(p.X, p.Y)
		c.LineTo(x, y)
	}
	c.ClosePath()
}

// Bounding box of both polygons. Empty input gives a unit box at the origin so
// that the canvas is never degenerate.
func bounds(polygons ...advanced.Polygon) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range polygons {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}

// Print the saved image inline, for terminals that support it (iTerm).
func Cat(path string, out io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, out), "printing %s", path)
}
