package plot

import (
	"image/color"

	"github.com/foilplot/foil"
)

// Defaults used by New. Margin is the fixed inset of the drawing area;
// GridSteps is the number of grid intervals in each direction.
const (
	DefaultMargin    = 50.0
	DefaultGridSteps = 10
)

// Default drawing colors.
var (
	DefaultBackground = color.White
	DefaultGridColor  = color.RGBA{R: 0xD8, G: 0xD8, B: 0xD8, A: 0xFF}
	DefaultAxisColor  = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}
	DefaultCurveColor = color.RGBA{R: 0x1A, G: 0x4F, B: 0x8F, A: 0xFF}
)

// Plotter draws an airfoil profile onto a Canvas of fixed dimensions.
// It owns the view transform (airfoil coordinates to device pixels)
// and the reference grid; the profile itself comes from the caller.
//
// Every Render is a full clear-and-redraw. The plotter keeps no state
// between frames, so the same Plotter can serve successive parameter
// changes or be recreated on resize, whichever the caller prefers.
type Plotter struct {
	width, height float64
	margin        float64
	gridSteps     int

	background color.Color
	gridColor  color.Color
	axisColor  color.Color
	curveColor color.Color

	gridWidth  float64
	axisWidth  float64
	curveWidth float64
}

// Option configures a Plotter during creation.
type Option func(*Plotter)

// WithMargin sets the inset of the drawing area in device pixels.
func WithMargin(m float64) Option {
	return func(p *Plotter) { p.margin = m }
}

// WithGridSteps sets the number of grid intervals in each direction.
func WithGridSteps(n int) Option {
	return func(p *Plotter) { p.gridSteps = n }
}

// WithCurveColor sets the profile outline color.
func WithCurveColor(c color.Color) Option {
	return func(p *Plotter) { p.curveColor = c }
}

// WithCurveWidth sets the profile outline width in device pixels.
func WithCurveWidth(w float64) Option {
	return func(p *Plotter) { p.curveWidth = w }
}

// WithBackground sets the clear color.
func WithBackground(c color.Color) Option {
	return func(p *Plotter) { p.background = c }
}

// New creates a plotter for a drawing surface of the given dimensions.
func New(width, height float64, opts ...Option) *Plotter {
	p := &Plotter{
		width:      width,
		height:     height,
		margin:     DefaultMargin,
		gridSteps:  DefaultGridSteps,
		background: DefaultBackground,
		gridColor:  DefaultGridColor,
		axisColor:  DefaultAxisColor,
		curveColor: DefaultCurveColor,
		gridWidth:  1,
		axisWidth:  2,
		curveWidth: 2,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the surface width the plotter was created for.
func (p *Plotter) Width() float64 { return p.width }

// Height returns the surface height the plotter was created for.
func (p *Plotter) Height() float64 { return p.height }

// Margin returns the drawing-area inset.
func (p *Plotter) Margin() float64 { return p.margin }

// View returns the transform from airfoil coordinates to device pixels
// for the given parameters. X maps the chord across the margin-inset
// width; the Y scale also depends on thickness so thick sections stay
// inside the drawing area. The two scales generally differ, so the
// rendered shape is not conformal; that is a deliberate simplification.
//
// The origin lands at (margin, height/2) and Y is negated so positive
// camber renders upward on a y-down surface.
func (p *Plotter) View(params foil.Params) Matrix {
	sx := (p.width - 2*p.margin) / params.Chord
	sy := (p.height - 2*p.margin) /
		(2*params.Thickness*params.Chord + 0.2*params.Chord)
	return Translate(p.margin, p.height/2).Multiply(Scale(sx, -sy))
}

// Render clears the canvas, draws the reference grid, and strokes the
// profile as a single closed path. The profile is drawn in its stored
// order; a degenerate (zero-area) profile simply draws a flat line, and
// no validation is performed.
func (p *Plotter) Render(c Canvas, profile foil.Profile, params foil.Params) error {
	c.Clear(p.background)

	if err := p.drawGrid(c); err != nil {
		return err
	}
	return p.drawProfile(c, profile, params)
}

// drawGrid strokes gridSteps+1 vertical and horizontal lines across the
// margin-inset area, then one bold vertical and one bold horizontal
// axis line through the center.
func (p *Plotter) drawGrid(c Canvas) error {
	left, top := p.margin, p.margin
	right, bottom := p.width-p.margin, p.height-p.margin
	stepX := (right - left) / float64(p.gridSteps)
	stepY := (bottom - top) / float64(p.gridSteps)

	c.SetStroke(p.gridWidth, p.gridColor)
	for i := 0; i <= p.gridSteps; i++ {
		x := left + float64(i)*stepX
		c.MoveTo(x, top)
		c.LineTo(x, bottom)
	}
	for i := 0; i <= p.gridSteps; i++ {
		y := top + float64(i)*stepY
		c.MoveTo(left, y)
		c.LineTo(right, y)
	}
	if err := c.Stroke(); err != nil {
		return err
	}

	c.SetStroke(p.axisWidth, p.axisColor)
	c.MoveTo(p.width/2, top)
	c.LineTo(p.width/2, bottom)
	c.MoveTo(left, p.height/2)
	c.LineTo(right, p.height/2)
	return c.Stroke()
}

// drawProfile strokes the profile points in order as one closed path.
func (p *Plotter) drawProfile(c Canvas, profile foil.Profile, params foil.Params) error {
	if len(profile) == 0 {
		return nil
	}

	view := p.View(params)
	c.SetStroke(p.curveWidth, p.curveColor)
	x, y := view.Apply(profile[0].X, profile[0].Y)
	c.MoveTo(x, y)
	for _, pt := range profile[1:] {
		x, y = view.Apply(pt.X, pt.Y)
		c.LineTo(x, y)
	}
	c.ClosePath()
	return c.Stroke()
}
