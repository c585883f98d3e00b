// Package plot maps airfoil profiles into device pixel space and draws
// them against a fixed-step reference grid. It is device independent:
// all drawing goes through the Canvas interface, so the same Plotter
// renders to an image buffer, a window, or a test recorder.
package plot

import "image/color"

// Canvas is the minimal drawing surface the plotter needs: clear the
// surface, build a polyline path, and stroke it with the current width
// and color. Coordinates are device pixels, origin top-left, y down.
//
// Implementations keep the pending path between MoveTo/LineTo calls and
// consume it on Stroke.
type Canvas interface {
	// Clear fills the whole surface with the given color, discarding
	// any pending path.
	Clear(c color.Color)

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line segment from the current point.
	LineTo(x, y float64)

	// ClosePath closes the current subpath back to its starting point.
	ClosePath()

	// SetStroke sets the line width (device pixels) and color used by
	// subsequent Stroke calls.
	SetStroke(width float64, c color.Color)

	// Stroke draws the pending path and clears it.
	Stroke() error
}
