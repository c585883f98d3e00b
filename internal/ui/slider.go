package ui

import (
	"math"

	"github.com/foilplot/foil"
)

// slider is the drag state of one parameter control. The geometry of
// the control is recomputed every frame from the window size, so only
// the parameter binding and drag flag live here.
type slider struct {
	kind     foil.ParamKind
	dragging bool
}

// sliderValue maps a fractional track position to a parameter value:
// clamped to [0,1], scaled into the range, and snapped to the range's
// step so dragging reproduces the discrete values a native input
// control with min/max/step would emit.
func sliderValue(r foil.Range, frac float64) float64 {
	if math.IsNaN(frac) {
		frac = 0
	}
	frac = math.Min(math.Max(frac, 0), 1)
	v := r.Min + (r.Max-r.Min)*frac
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return r.Clamp(v)
}

// sliderFrac is the inverse of sliderValue's scaling: the fractional
// track position of a value within its range.
func sliderFrac(r foil.Range, v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	frac := (v - r.Min) / (r.Max - r.Min)
	return math.Min(math.Max(frac, 0), 1)
}
