package foil

import (
	"math"
	"testing"
)

func TestPt(t *testing.T) {
	p := Pt(0.25, -0.05)
	if p.X != 0.25 || p.Y != -0.05 {
		t.Errorf("Pt(0.25, -0.05) = %+v", p)
	}
	if p.Upper {
		t.Error("Pt must not tag the point as upper surface")
	}
}

func TestPointSub(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want Point
	}{
		{"zero", Pt(1, 2), Pt(1, 2), Pt(0, 0)},
		{"positive", Pt(3, 5), Pt(1, 2), Pt(2, 3)},
		{"negative", Pt(-1, -2), Pt(2, 1), Pt(-3, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Sub(tt.q)
			if got.X != tt.want.X || got.Y != tt.want.Y {
				t.Errorf("%+v.Sub(%+v) = %+v, want %+v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestPointDistance(t *testing.T) {
	const epsilon = 1e-12

	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"coincident", Pt(0.7, -0.3), Pt(0.7, -0.3), 0},
		{"horizontal", Pt(0, 0), Pt(2, 0), 2},
		{"vertical", Pt(1, 1), Pt(1, -1), 2},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"unit diagonal", Pt(0, 0), Pt(1, 1), math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Distance(tt.q)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("%+v.Distance(%+v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
			if back := tt.q.Distance(tt.p); back != got {
				t.Errorf("distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}
