package foil

// Profile is the ordered closed boundary of an airfoil section: the
// lower surface from trailing edge to leading edge followed by the
// upper surface from leading edge to trailing edge. Drawing the points
// in order and closing back to the first yields the section outline.
type Profile []Point

// Bounds returns the axis-aligned bounding box of the profile as
// (min, max) corner points. An empty profile returns zero points.
func (pr Profile) Bounds() (min, max Point) {
	if len(pr) == 0 {
		return Point{}, Point{}
	}
	min = Point{X: pr[0].X, Y: pr[0].Y}
	max = min
	for _, pt := range pr[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// MaxThickness returns the largest half-thickness of the section: the
// maximum vertical half-distance between paired upper and lower
// surface points. It assumes the Generate ordering, where station i
// pairs point n-i (lower) with point n+1+i (upper). Profiles with
// fewer than two points return 0.
func (pr Profile) MaxThickness() float64 {
	n := len(pr)/2 - 1
	peak := 0.0
	for i := 0; i <= n; i++ {
		half := (pr[n+1+i].Y - pr[n-i].Y) / 2
		if half > peak {
			peak = half
		}
	}
	return peak
}

// MaxCamber returns the peak height of the camber line: the maximum of
// the vertical midpoints of paired surface points. The surface offsets
// are symmetric about the camber line, so each midpoint recovers yc
// exactly; for symmetric sections the result is zero. Profiles with
// fewer than two points return 0.
func (pr Profile) MaxCamber() float64 {
	n := len(pr)/2 - 1
	if n < 0 {
		return 0
	}
	peak := (pr[n+1].Y + pr[n].Y) / 2
	for i := 1; i <= n; i++ {
		mid := (pr[n+1+i].Y + pr[n-i].Y) / 2
		if mid > peak {
			peak = mid
		}
	}
	return peak
}

// Upper returns the upper-surface half of the profile, leading edge to
// trailing edge, as a subslice (no copy).
func (pr Profile) Upper() Profile {
	for i, pt := range pr {
		if pt.Upper {
			return pr[i:]
		}
	}
	return nil
}

// Lower returns the lower-surface half of the profile, trailing edge to
// leading edge, as a subslice (no copy).
func (pr Profile) Lower() Profile {
	for i, pt := range pr {
		if pt.Upper {
			return pr[:i]
		}
	}
	return pr
}
