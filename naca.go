package foil

import "math"

// Coefficients of the NACA 4-digit thickness polynomial. They are fixed
// constants of the formula, normalized for t = 0.2; HalfThickness
// rescales by t/0.2. The polynomial does not reach exactly zero at the
// trailing edge (the sum of the coefficients at xc=1 is 0.0021), which
// is a known property of the classic formula and is reproduced as is.
const (
	thickA0 = 0.2969
	thickA1 = -0.1260
	thickA2 = -0.3516
	thickA3 = 0.2843
	thickA4 = -0.1015
)

// HalfThickness returns the thickness half-profile yt at chordwise
// position x in [0, p.Chord], measured perpendicular to the camber line.
func (p Params) HalfThickness(x float64) float64 {
	xc := x / p.Chord
	return p.Thickness / 0.2 * p.Chord *
		(thickA0*math.Sqrt(xc) + thickA1*xc + thickA2*xc*xc +
			thickA3*xc*xc*xc + thickA4*xc*xc*xc*xc)
}

// CamberY returns the camber line height yc at chordwise position x.
// The line is piecewise quadratic with its peak at CamberPosition.
func (p Params) CamberY(x float64) float64 {
	const pos = CamberPosition
	xc := x / p.Chord
	if xc <= pos {
		return p.Camber / (pos * pos) * (2*pos*xc - xc*xc) * p.Chord
	}
	d := 1 - pos
	return p.Camber / (d * d) * ((1 - 2*pos) + 2*pos*xc - xc*xc) * p.Chord
}

// CamberSlope returns the analytic derivative dyc/dx of the camber line
// at chordwise position x. It is used for the surface-normal angle; a
// finite difference would not match the closed form at the piece boundary.
func (p Params) CamberSlope(x float64) float64 {
	const pos = CamberPosition
	xc := x / p.Chord
	if xc <= pos {
		return 2 * p.Camber / (pos * pos) * (pos - xc)
	}
	d := 1 - pos
	return 2 * p.Camber / (d * d) * (pos - xc)
}

// Generate computes the closed boundary polyline of the section
// described by p. The result has 2n+2 points ordered lower trailing
// edge -> lower leading edge -> upper leading edge -> upper trailing
// edge, so a single pass draws the closed outline without crossing
// strokes. Reversing either half would self-intersect.
//
// Generate is pure and deterministic: identical parameters produce
// identical sequences. The only failure modes are the structural ones
// reported by Validate.
func Generate(p Params) (Profile, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Resolution
	out := make(Profile, 2*n+2)
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n) * p.Chord
		yt := p.HalfThickness(x)
		yc := p.CamberY(x)
		theta := math.Atan(p.CamberSlope(x))
		sin, cos := math.Sincos(theta)

		// Offsets perpendicular to the camber line. At i=0 the square
		// root term vanishes so yt=0 exactly; for cambered sections the
		// two surfaces still meet at slightly different points there
		// (the leading edge of the formula is not perfectly sharp).
		out[n+1+i] = Point{X: x - yt*sin, Y: yc + yt*cos, Upper: true}
		out[n-i] = Point{X: x + yt*sin, Y: yc - yt*cos}
	}

	Logger().Debug("profile generated",
		"camber", p.Camber,
		"thickness", p.Thickness,
		"chord", p.Chord,
		"resolution", n,
		"points", len(out))
	return out, nil
}
