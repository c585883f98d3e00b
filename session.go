package foil

import (
	"fmt"
	"math"
)

// ParamKind identifies one of the four adjustable parameters.
type ParamKind int

const (
	ParamCamber ParamKind = iota
	ParamThickness
	ParamChord
	ParamResolution
)

// String returns the parameter name used in labels and logs.
func (k ParamKind) String() string {
	switch k {
	case ParamCamber:
		return "camber"
	case ParamThickness:
		return "thickness"
	case ParamChord:
		return "chord"
	case ParamResolution:
		return "resolution"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Range returns the declared value range of the parameter.
func (k ParamKind) Range() Range {
	switch k {
	case ParamCamber:
		return CamberRange
	case ParamThickness:
		return ThicknessRange
	case ParamChord:
		return ChordRange
	case ParamResolution:
		return ResolutionRange
	default:
		return Range{}
	}
}

// Session holds the current parameter values and the profile generated
// from them. It is the command interface between input controls and the
// geometry core: controls call SetParameter, displays read Profile.
//
// Session is not safe for concurrent use. It is designed for a single
// event loop where one input event is handled at a time; each change
// triggers one synchronous recompute.
type Session struct {
	params  Params
	profile Profile
}

// NewSession creates a session with p clamped to the declared ranges
// and an initial profile generated from it.
func NewSession(p Params) (*Session, error) {
	s := &Session{params: p.Clamp()}
	profile, err := Generate(s.params)
	if err != nil {
		return nil, err
	}
	s.profile = profile
	return s, nil
}

// Params returns the current parameter values.
func (s *Session) Params() Params {
	return s.params
}

// Profile returns the profile generated from the current parameters.
func (s *Session) Profile() Profile {
	return s.profile
}

// SetParameter updates one parameter, clamping the value to the
// parameter's declared range, and regenerates the profile from scratch.
// It returns the new profile.
func (s *Session) SetParameter(kind ParamKind, value float64) (Profile, error) {
	clamped := kind.Range().Clamp(value)
	if clamped != value {
		Logger().Warn("parameter value clamped",
			"param", kind.String(), "value", value, "clamped", clamped)
	}

	next := s.params
	switch kind {
	case ParamCamber:
		next.Camber = clamped
	case ParamThickness:
		next.Thickness = clamped
	case ParamChord:
		next.Chord = clamped
	case ParamResolution:
		next.Resolution = int(math.Round(clamped))
	default:
		return nil, fmt.Errorf("foil: unknown parameter kind %d", int(kind))
	}

	profile, err := Generate(next)
	if err != nil {
		return nil, err
	}
	s.params = next
	s.profile = profile
	return profile, nil
}

// Value returns the current value of the given parameter as a float64.
func (s *Session) Value(kind ParamKind) float64 {
	switch kind {
	case ParamCamber:
		return s.params.Camber
	case ParamThickness:
		return s.params.Thickness
	case ParamChord:
		return s.params.Chord
	case ParamResolution:
		return float64(s.params.Resolution)
	default:
		return 0
	}
}

// FormatValue renders the current value of the given parameter with the
// fixed label precision: three decimals for camber and thickness, one
// for chord, and none for resolution.
func (s *Session) FormatValue(kind ParamKind) string {
	switch kind {
	case ParamCamber:
		return fmt.Sprintf("%.3f", s.params.Camber)
	case ParamThickness:
		return fmt.Sprintf("%.3f", s.params.Thickness)
	case ParamChord:
		return fmt.Sprintf("%.1f", s.params.Chord)
	case ParamResolution:
		return fmt.Sprintf("%d", s.params.Resolution)
	default:
		return ""
	}
}
