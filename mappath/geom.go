package mappath

import "math"

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) Mul(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Lerp interpolates linearly between p (t = 0) and q (t = 1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Length is the distance from the origin of the point
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Intersect returns the intersection of the infinite lines through
// (p1, p2) and (p3, p4). It reports false if one of the segments has
// zero length or if the lines are parallel.
// The result is not restricted to the extent of the segments.
func Intersect(p1, p2, p3, p4 Point) (Point, bool) {
	if p1 == p2 || p3 == p4 {
		return Point{}, false
	}

	denominator := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if denominator == 0 { // parallel
		return Point{}, false
	}

	ua := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denominator

	return Point{
		X: p1.X + ua*(p2.X-p1.X),
		Y: p1.Y + ua*(p2.Y-p1.Y),
	}, true
}

// BearingAngle returns the angle in degrees of the vector from c to e,
// in the range (-180, 180]. 0 points along +x, positive angles turn
// toward +y.
func BearingAngle(c, e Point) float64 {
	theta := math.Atan2(e.Y-c.Y, e.X-c.X) // range (-Pi, Pi]
	return theta * 180 / math.Pi
}
