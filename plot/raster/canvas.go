// Package raster provides an image-backed Canvas for the plot package.
// It renders strokes into an in-memory RGBA image using the
// golang.org/x/image/vector rasterizer and writes the result as PNG.
//
// The raster canvas serves multiple purposes:
//   - Headless rendering for the CLI's offline output
//   - Pixel-level assertions in tests
//   - Reference implementation for other Canvas backends
//
// # Example
//
//	c := raster.New(900, 500)
//	p := plot.New(900, 500)
//	_ = p.Render(c, profile, params)
//	_ = c.SavePNG("section.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/foilplot/foil/plot"
)

// segment is one straight piece of the pending path.
type segment struct {
	x1, y1, x2, y2 float64
}

// Canvas draws stroked polylines into an RGBA image. Each segment is
// expanded to a filled quad around the line, with square caps so that
// consecutive segments of a polyline join without gaps, and rasterized
// with anti-aliasing.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer

	segments []segment
	current  struct{ x, y float64 }
	start    struct{ x, y float64 }
	hasPoint bool

	strokeWidth float64
	strokeColor color.Color
}

var _ plot.Canvas = (*Canvas)(nil)

// New creates a canvas with the given dimensions in pixels.
func New(width, height int) *Canvas {
	return &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:         vector.NewRasterizer(width, height),
		strokeWidth: 1,
		strokeColor: color.Black,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Image returns the underlying image. The canvas keeps drawing into the
// same buffer, so callers that need a stable copy must clone it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear implements plot.Canvas.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.segments = c.segments[:0]
	c.hasPoint = false
}

// MoveTo implements plot.Canvas.
func (c *Canvas) MoveTo(x, y float64) {
	c.current.x, c.current.y = x, y
	c.start = c.current
	c.hasPoint = true
}

// LineTo implements plot.Canvas.
func (c *Canvas) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	c.segments = append(c.segments, segment{c.current.x, c.current.y, x, y})
	c.current.x, c.current.y = x, y
}

// ClosePath implements plot.Canvas.
func (c *Canvas) ClosePath() {
	if !c.hasPoint {
		return
	}
	c.segments = append(c.segments, segment{c.current.x, c.current.y, c.start.x, c.start.y})
	c.current = c.start
}

// SetStroke implements plot.Canvas.
func (c *Canvas) SetStroke(width float64, col color.Color) {
	c.strokeWidth = width
	c.strokeColor = col
}

// Stroke implements plot.Canvas. It rasterizes all pending segments in
// one pass and composites them over the image with the current color.
func (c *Canvas) Stroke() error {
	if len(c.segments) == 0 {
		return nil
	}

	c.ras.Reset(c.img.Rect.Dx(), c.img.Rect.Dy())
	half := c.strokeWidth / 2
	for _, s := range c.segments {
		c.appendQuad(s, half)
	}
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(c.strokeColor), image.Point{})

	c.segments = c.segments[:0]
	c.hasPoint = false
	return nil
}

// appendQuad adds the outline of one stroked segment to the rasterizer:
// the segment extended by half a width at both ends (square caps) and
// offset by half a width to each side.
func (c *Canvas) appendQuad(s segment, half float64) {
	dx := s.x2 - s.x1
	dy := s.y2 - s.y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		// Degenerate segment: draw a small axis-aligned square.
		dx, dy, length = 1, 0, 1
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy*half, ux*half
	ex, ey := ux*half, uy*half

	x1, y1 := s.x1-ex, s.y1-ey
	x2, y2 := s.x2+ex, s.y2+ey

	c.ras.MoveTo(float32(x1+nx), float32(y1+ny))
	c.ras.LineTo(float32(x2+nx), float32(y2+ny))
	c.ras.LineTo(float32(x2-nx), float32(y2-ny))
	c.ras.LineTo(float32(x1-nx), float32(y1-ny))
	c.ras.ClosePath()
}

// EncodePNG writes the image as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the image to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.img)
}
