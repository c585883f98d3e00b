// Package ui implements the interactive airfoil viewer: an ebiten
// window with four parameter sliders and a live plot that is fully
// redrawn on every frame. All parameter edits go through foil.Session,
// so the geometry and plotting cores stay framework-agnostic.
package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/foilplot/foil"
	"github.com/foilplot/foil/plot"
)

// Layout constants in logical pixels; multiplied by the device scale
// factor at draw time.
const (
	baseWindowW     = 900
	baseWindowH     = 600
	basePanelHeight = 120
	baseMargin      = 50
)

var (
	panelColor = color.RGBA{R: 0x26, G: 0x2B, B: 0x33, A: 0xFF}
	trackColor = color.RGBA{R: 0x55, G: 0x5D, B: 0x6B, A: 0xFF}
	knobColor  = color.RGBA{R: 0xE8, G: 0xEB, B: 0xF0, A: 0xFF}
)

// rect is an axis-aligned rectangle in device pixels.
type rect struct {
	x, y, w, h float64
}

func (r rect) contains(px, py float64) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}

func (r rect) expand(d float64) rect {
	return rect{x: r.x - d, y: r.y - d, w: r.w + 2*d, h: r.h + 2*d}
}

// App is the ebiten game driving the viewer. One instance runs for the
// lifetime of the window; ebiten's update loop is the single logical
// thread, so no locking is needed around the session.
type App struct {
	session *foil.Session
	sliders [4]slider

	// Screen dimensions in device pixels, updated by LayoutF.
	screenW, screenH float64
}

// NewApp creates the viewer state with the given starting parameters
// (clamped by the session).
func NewApp(params foil.Params) (*App, error) {
	session, err := foil.NewSession(params)
	if err != nil {
		return nil, fmt.Errorf("ui: %w", err)
	}
	a := &App{session: session}
	a.sliders = [4]slider{
		{kind: foil.ParamCamber},
		{kind: foil.ParamThickness},
		{kind: foil.ParamChord},
		{kind: foil.ParamResolution},
	}
	return a, nil
}

// Run opens the viewer window and blocks until it closes.
func Run(params foil.Params) error {
	app, err := NewApp(params)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("foilplot " + foil.Version)
	ebiten.SetWindowSize(baseWindowW, baseWindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(app)
}

// Update handles slider dragging. Each value change triggers one
// synchronous regenerate through the session.
func (a *App) Update() error {
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	scale := ebiten.DeviceScaleFactor()

	for i := range a.sliders {
		sl := &a.sliders[i]
		track := a.trackRect(i, scale)

		if justPressed && track.expand(10*scale).contains(px, py) {
			sl.dragging = true
		}
		if !pressed {
			sl.dragging = false
		}
		if !sl.dragging {
			continue
		}

		frac := (px - track.x) / track.w
		v := sliderValue(sl.kind.Range(), frac)
		if v == a.session.Value(sl.kind) {
			continue
		}
		if _, err := a.session.SetParameter(sl.kind, v); err != nil {
			return fmt.Errorf("ui: set %s: %w", sl.kind, err)
		}
	}
	return nil
}

// Draw renders the plot area and the control panel. Everything is
// redrawn from scratch; there is no incremental diffing.
func (a *App) Draw(screen *ebiten.Image) {
	scale := ebiten.DeviceScaleFactor()
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	plotH := h - basePanelHeight*scale
	if plotH < 0 {
		plotH = 0
	}

	plotImg := screen.SubImage(image.Rect(0, 0, int(w), int(plotH))).(*ebiten.Image)
	c := newCanvas(plotImg)
	p := plot.New(w, plotH,
		plot.WithMargin(baseMargin*scale),
		plot.WithCurveWidth(2*scale))
	if err := p.Render(c, a.session.Profile(), a.session.Params()); err != nil {
		foil.Logger().Warn("render failed", "error", err)
	}

	vector.DrawFilledRect(screen, 0, float32(plotH), float32(w),
		float32(basePanelHeight*scale), panelColor, false)
	for i := range a.sliders {
		a.drawSlider(screen, i, scale)
	}
}

// drawSlider draws one control: label, track, and knob.
func (a *App) drawSlider(screen *ebiten.Image, i int, scale float64) {
	sl := &a.sliders[i]
	track := a.trackRect(i, scale)
	midY := track.y + track.h/2

	vector.StrokeLine(screen,
		float32(track.x), float32(midY),
		float32(track.x+track.w), float32(midY),
		float32(3*scale), trackColor, true)

	frac := sliderFrac(sl.kind.Range(), a.session.Value(sl.kind))
	vector.DrawFilledCircle(screen,
		float32(track.x+frac*track.w), float32(midY),
		float32(7*scale), knobColor, true)

	label := fmt.Sprintf("%s: %s", sl.kind, a.session.FormatValue(sl.kind))
	ebitenutil.DebugPrintAt(screen, label, int(track.x), int(track.y-20*scale))
}

// trackRect returns the slider track area for control i. The panel is
// a 2x2 grid at the bottom of the window, laid out from the current
// screen size so resizing reflows the controls.
func (a *App) trackRect(i int, scale float64) rect {
	panelH := basePanelHeight * scale
	panelTop := a.screenH - panelH
	cellW := a.screenW / 2
	cellH := panelH / 2
	pad := 24 * scale

	col := float64(i % 2)
	row := float64(i / 2)
	return rect{
		x: col*cellW + pad,
		y: panelTop + row*cellH + cellH*0.55,
		w: cellW - 2*pad,
		h: 8 * scale,
	}
}

// Layout is unused; LayoutF is the effective implementation.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("ui: Layout is never called when LayoutF is implemented")
}

// LayoutF sizes the offscreen to the window size times the device scale
// factor, so rendering happens at native device resolution and strokes
// stay crisp under fractional DPI scaling.
func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := ebiten.DeviceScaleFactor()
	a.screenW = outsideWidth * scale
	a.screenH = outsideHeight * scale
	return a.screenW, a.screenH
}
