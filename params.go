package foil

import (
	"errors"
	"fmt"
	"math"
)

// CamberPosition is the chordwise fraction at which the camber line
// peaks. The 4-digit family fixes it; it is not a free parameter here.
const CamberPosition = 0.4

// Sentinel errors returned by Params.Validate.
var (
	// ErrNonPositiveChord is returned when the chord length is zero or
	// negative. A zero chord divides by zero in the normalized-coordinate
	// computation, so it is rejected up front rather than propagated as NaN.
	ErrNonPositiveChord = errors.New("foil: chord must be positive")

	// ErrResolutionTooLow is returned when fewer than one chordwise
	// station is requested.
	ErrResolutionTooLow = errors.New("foil: resolution must be at least 1")
)

// Range describes the valid interval and step of a parameter, mirroring
// the bounds an input control would enforce.
type Range struct {
	Min, Max, Step float64
}

// Clamp returns v limited to the range [r.Min, r.Max].
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Declared parameter ranges. Generate accepts any Params with a
// positive chord; these ranges are what interactive controls and
// Session clamping enforce.
var (
	CamberRange     = Range{Min: 0, Max: 0.1, Step: 0.001}
	ThicknessRange  = Range{Min: 0, Max: 0.2, Step: 0.001}
	ChordRange      = Range{Min: 0.5, Max: 2.0, Step: 0.1}
	ResolutionRange = Range{Min: 20, Max: 500, Step: 1}
)

// Params holds the four inputs of a 4-digit section. A Params value is
// immutable per invocation: Generate never modifies it and recomputes
// the full profile from scratch each call.
type Params struct {
	// Camber is the maximum camber line height as a fraction of chord.
	Camber float64

	// Thickness is the maximum thickness as a fraction of chord.
	Thickness float64

	// Chord is the chord length in arbitrary length units. Must be positive.
	Chord float64

	// Resolution is the number of chordwise stations n; the generated
	// profile has 2n+2 points.
	Resolution int
}

// DefaultParams returns a moderately cambered 12%-thick section at
// unit chord, the configuration the interactive viewer starts with.
func DefaultParams() Params {
	return Params{Camber: 0.02, Thickness: 0.12, Chord: 1.0, Resolution: 100}
}

// Clamp returns a copy of p with every field limited to its declared Range.
func (p Params) Clamp() Params {
	p.Camber = CamberRange.Clamp(p.Camber)
	p.Thickness = ThicknessRange.Clamp(p.Thickness)
	p.Chord = ChordRange.Clamp(p.Chord)
	p.Resolution = int(math.Round(ResolutionRange.Clamp(float64(p.Resolution))))
	return p
}

// Validate checks the structural invariants Generate depends on.
// It does not enforce the declared ranges; callers that accept
// unconstrained input should clamp first.
func (p Params) Validate() error {
	if p.Chord <= 0 {
		return fmt.Errorf("%w (got %v)", ErrNonPositiveChord, p.Chord)
	}
	if p.Resolution < 1 {
		return fmt.Errorf("%w (got %d)", ErrResolutionTooLow, p.Resolution)
	}
	return nil
}
