package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/foilplot/foil"
	"github.com/foilplot/foil/plot"
)

// luminance returns an approximate brightness of the pixel at (x, y),
// 0 for black and 255 for white.
func luminance(c *Canvas, x, y int) int {
	r, g, b, _ := c.Image().RGBAAt(x, y).RGBA()
	return int((r>>8 + g>>8 + b>>8) / 3)
}

func TestStrokeDrawsPixels(t *testing.T) {
	c := New(50, 50)
	c.Clear(color.White)
	c.SetStroke(3, color.Black)
	c.MoveTo(10, 25)
	c.LineTo(40, 25)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	if lum := luminance(c, 25, 25); lum > 64 {
		t.Errorf("pixel on the line has luminance %d, want dark", lum)
	}
	if lum := luminance(c, 25, 5); lum < 250 {
		t.Errorf("pixel off the line has luminance %d, want white", lum)
	}
}

func TestClosePathClosesLoop(t *testing.T) {
	c := New(50, 50)
	c.Clear(color.White)
	c.SetStroke(3, color.Black)
	c.MoveTo(5, 5)
	c.LineTo(45, 5)
	c.LineTo(45, 45)
	c.ClosePath()
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	// The closing edge runs from (45,45) back to (5,5); its midpoint
	// must be stroked.
	if lum := luminance(c, 25, 25); lum > 64 {
		t.Errorf("closing edge midpoint has luminance %d, want dark", lum)
	}
}

func TestStrokeClearsPendingPath(t *testing.T) {
	c := New(50, 50)
	c.Clear(color.White)
	c.SetStroke(3, color.Black)
	c.MoveTo(10, 10)
	c.LineTo(40, 10)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	// A second stroke with no new path must not redraw anything.
	c.Clear(color.White)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	if lum := luminance(c, 25, 10); lum < 250 {
		t.Errorf("pixel after empty stroke has luminance %d, want white", lum)
	}
}

func TestEncodePNG(t *testing.T) {
	c := New(64, 32)
	c.Clear(color.White)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decoding the encoded PNG failed: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 32 {
		t.Errorf("decoded size = %dx%d, want 64x32", cfg.Width, cfg.Height)
	}
}

func TestRenderedProfileIsDeterministic(t *testing.T) {
	params := foil.Params{Camber: 0.02, Thickness: 0.12, Chord: 1.0, Resolution: 60}
	profile, err := foil.Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	render := func() *Canvas {
		c := New(300, 200)
		p := plot.New(300, 200, plot.WithMargin(20))
		if err := p.Render(c, profile, params); err != nil {
			t.Fatal(err)
		}
		return c
	}

	a, b := render(), render()
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("two renders of the same profile produced different pixels")
	}
}

func TestRenderedProfileTouchesCurveColor(t *testing.T) {
	params := foil.Params{Camber: 0, Thickness: 0.2, Chord: 1.0, Resolution: 60}
	profile, err := foil.Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	c := New(300, 200)
	p := plot.New(300, 200, plot.WithMargin(20), plot.WithCurveColor(color.Black))
	if err := p.Render(c, profile, params); err != nil {
		t.Fatal(err)
	}

	// The leading edge sits at the left margin on the horizontal
	// center line; the stroked outline must pass through there.
	if lum := luminance(c, 20, 100); lum > 128 {
		t.Errorf("leading edge pixel has luminance %d, want dark", lum)
	}
}
