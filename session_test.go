package foil

import (
	"testing"
)

func TestNewSessionClampsParams(t *testing.T) {
	s, err := NewSession(Params{Camber: 5, Thickness: -1, Chord: 0, Resolution: 3})
	if err != nil {
		t.Fatal(err)
	}
	want := Params{Camber: 0.1, Thickness: 0, Chord: 0.5, Resolution: 20}
	if got := s.Params(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
	if len(s.Profile()) != 2*want.Resolution+2 {
		t.Errorf("initial profile has %d points, want %d", len(s.Profile()), 2*want.Resolution+2)
	}
}

func TestSetParameter(t *testing.T) {
	tests := []struct {
		name  string
		kind  ParamKind
		value float64
		check func(t *testing.T, s *Session)
	}{
		{
			"camber in range", ParamCamber, 0.05,
			func(t *testing.T, s *Session) {
				if s.Params().Camber != 0.05 {
					t.Errorf("Camber = %v, want 0.05", s.Params().Camber)
				}
			},
		},
		{
			"thickness clamped high", ParamThickness, 0.7,
			func(t *testing.T, s *Session) {
				if s.Params().Thickness != 0.2 {
					t.Errorf("Thickness = %v, want 0.2", s.Params().Thickness)
				}
			},
		},
		{
			"chord clamped low", ParamChord, 0.01,
			func(t *testing.T, s *Session) {
				if s.Params().Chord != 0.5 {
					t.Errorf("Chord = %v, want 0.5 (chord must stay positive)", s.Params().Chord)
				}
			},
		},
		{
			"resolution rounds to integer", ParamResolution, 123.4,
			func(t *testing.T, s *Session) {
				if s.Params().Resolution != 123 {
					t.Errorf("Resolution = %d, want 123", s.Params().Resolution)
				}
				if len(s.Profile()) != 2*123+2 {
					t.Errorf("profile has %d points, want %d", len(s.Profile()), 2*123+2)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(DefaultParams())
			if err != nil {
				t.Fatal(err)
			}
			profile, err := s.SetParameter(tt.kind, tt.value)
			if err != nil {
				t.Fatalf("SetParameter(%s, %v) failed: %v", tt.kind, tt.value, err)
			}
			if len(profile) != len(s.Profile()) {
				t.Errorf("returned profile and stored profile differ in length")
			}
			tt.check(t, s)
		})
	}
}

func TestSetParameterUnknownKind(t *testing.T) {
	s, err := NewSession(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	before := s.Params()
	if _, err := s.SetParameter(ParamKind(99), 1); err == nil {
		t.Error("SetParameter with unknown kind succeeded, want error")
	}
	if s.Params() != before {
		t.Error("failed SetParameter mutated the session")
	}
}

func TestSetParameterRegeneratesFromScratch(t *testing.T) {
	s, err := NewSession(DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	before := s.Profile()
	after, err := s.SetParameter(ParamCamber, 0.08)
	if err != nil {
		t.Fatal(err)
	}
	if &before[0] == &after[0] {
		t.Error("SetParameter reused the previous profile backing array")
	}
}

func TestFormatValue(t *testing.T) {
	s, err := NewSession(Params{Camber: 0.025, Thickness: 0.1, Chord: 1.5, Resolution: 200})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		kind ParamKind
		want string
	}{
		{ParamCamber, "0.025"},
		{ParamThickness, "0.100"},
		{ParamChord, "1.5"},
		{ParamResolution, "200"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := s.FormatValue(tt.kind); got != tt.want {
				t.Errorf("FormatValue(%s) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestSessionValue(t *testing.T) {
	s, err := NewSession(Params{Camber: 0.03, Thickness: 0.14, Chord: 1.2, Resolution: 150})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		kind ParamKind
		want float64
	}{
		{ParamCamber, 0.03},
		{ParamThickness, 0.14},
		{ParamChord, 1.2},
		{ParamResolution, 150},
	}
	for _, tt := range tests {
		if got := s.Value(tt.kind); got != tt.want {
			t.Errorf("Value(%s) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}
