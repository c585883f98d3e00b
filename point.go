package foil

import "math"

// Point represents a single coordinate on the airfoil boundary.
// Upper reports which surface the point belongs to; the leading and
// trailing edge points of the two surfaces coincide (or nearly so)
// but are still tagged with their surface of origin.
type Point struct {
	X, Y  float64
	Upper bool
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}
