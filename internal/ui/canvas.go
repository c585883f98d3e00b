package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/foilplot/foil/plot"
)

// segment is one straight piece of the pending path.
type segment struct {
	x1, y1, x2, y2 float64
}

// canvas adapts an *ebiten.Image to the plot.Canvas interface. Paths
// are collected as line segments and stroked with ebiten's vector
// package on Stroke.
type canvas struct {
	dst *ebiten.Image

	segments []segment
	current  struct{ x, y float64 }
	start    struct{ x, y float64 }
	hasPoint bool

	strokeWidth float32
	strokeColor color.Color
}

var _ plot.Canvas = (*canvas)(nil)

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst, strokeWidth: 1, strokeColor: color.Black}
}

func (c *canvas) Clear(col color.Color) {
	c.dst.Fill(col)
	c.segments = c.segments[:0]
	c.hasPoint = false
}

func (c *canvas) MoveTo(x, y float64) {
	c.current.x, c.current.y = x, y
	c.start = c.current
	c.hasPoint = true
}

func (c *canvas) LineTo(x, y float64) {
	if !c.hasPoint {
		c.MoveTo(x, y)
		return
	}
	c.segments = append(c.segments, segment{c.current.x, c.current.y, x, y})
	c.current.x, c.current.y = x, y
}

func (c *canvas) ClosePath() {
	if !c.hasPoint {
		return
	}
	c.segments = append(c.segments, segment{c.current.x, c.current.y, c.start.x, c.start.y})
	c.current = c.start
}

func (c *canvas) SetStroke(width float64, col color.Color) {
	c.strokeWidth = float32(width)
	c.strokeColor = col
}

func (c *canvas) Stroke() error {
	for _, s := range c.segments {
		vector.StrokeLine(c.dst,
			float32(s.x1), float32(s.y1), float32(s.x2), float32(s.y2),
			c.strokeWidth, c.strokeColor, true)
	}
	c.segments = c.segments[:0]
	c.hasPoint = false
	return nil
}
