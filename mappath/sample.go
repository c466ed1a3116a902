package mappath

import (
	"math"
	"sort"
)

// FlattenTolerance is the maximum distance, in user units, between a
// curve and the polyline used to measure it.
const FlattenTolerance = 0.01

// maximum subdivision depth when flattening a bezier curve
const maxFlattenDepth = 16

// Sampleable is a materialized curve supporting arc-length queries.
type Sampleable interface {
	// TotalLength returns the length of the curve.
	TotalLength() float64
	// PointAtLength returns the point at distance l from the start,
	// l being clamped to [0, TotalLength()].
	PointAtLength(l float64) Point
}

var _ Sampleable = (*Curve)(nil) // assert interface conformance

// line piece of a flattened curve
type piece struct {
	a, b Point
}

// Curve is a path flattened into a polyline, with its cumulative
// arc length. It is immutable once built by Measure.
type Curve struct {
	start  Point
	pieces []piece
	cum    []float64 // cum[i] is the length up to the end of pieces[i]
}

// Measure flattens p and returns a handle answering length queries.
func Measure(p Path) *Curve {
	c := new(Curve)
	var current, subpath Point
	started := false
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, subpath = Point(op), Point(op)
			if !started {
				c.start, started = current, true
			}
		case LineTo:
			c.add(current, Point(op))
			current = Point(op)
		case QuadTo:
			flattenQuadratic(current, op[0], op[1], 0, c.add)
			current = op[1]
		case CubicTo:
			flattenCubic(current, op[0], op[1], op[2], 0, c.add)
			current = op[2]
		case Close:
			if current != subpath {
				c.add(current, subpath)
			}
			current = subpath
		}
	}
	return c
}

func (c *Curve) add(a, b Point) {
	total := c.TotalLength()
	c.pieces = append(c.pieces, piece{a, b})
	c.cum = append(c.cum, total+a.Distance(b))
}

// Start returns the first point of the curve.
func (c *Curve) Start() Point { return c.start }

// TotalLength returns the arc length of the curve.
func (c *Curve) TotalLength() float64 {
	if len(c.cum) == 0 {
		return 0
	}
	return c.cum[len(c.cum)-1]
}

// PointAtLength returns the point at distance l along the curve.
func (c *Curve) PointAtLength(l float64) Point {
	total := c.TotalLength()
	if total == 0 || math.IsNaN(l) {
		if len(c.pieces) != 0 {
			return c.pieces[0].a
		}
		return c.start
	}
	l = math.Max(0, math.Min(l, total))
	i := sort.SearchFloat64s(c.cum, l)
	if i == len(c.pieces) { // rounding
		i--
	}
	pc := c.pieces[i]
	before := 0.
	if i > 0 {
		before = c.cum[i-1]
	}
	length := c.cum[i] - before
	if length == 0 {
		return pc.b
	}
	return pc.a.Lerp(pc.b, (l-before)/length)
}

// AngleAtLength estimates the tangent angle, in degrees, at distance l
// along h, by a finite difference around l.
func AngleAtLength(h Sampleable, l float64) float64 {
	a := h.PointAtLength(l * 0.999)
	b := h.PointAtLength(math.Max(l*1.001, 0.001))
	return BearingAngle(a, b)
}

// Sample returns the point at the fraction location of the length of h,
// and the tangent angle in degrees at this point.
// A curve of zero length yields its only point and an angle of 0.
func Sample(h Sampleable, location float64) (Point, float64) {
	total := h.TotalLength()
	if total == 0 {
		return h.PointAtLength(0), 0
	}
	l := total * location
	return h.PointAtLength(l), AngleAtLength(h, l)
}

// distanceToLine returns the distance from p to the line (a, b),
// or to a if a and b coincide.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen == 0 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / abLen
}

// flattenQuadratic recursively subdivides the quadratic bezier (p0, p1, p2)
// and emits its approximating line pieces.
func flattenQuadratic(p0, p1, p2 Point, depth int, emit func(a, b Point)) {
	if depth >= maxFlattenDepth || distanceToLine(p1, p0, p2) < FlattenTolerance {
		emit(p0, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	flattenQuadratic(p0, q0, q2, depth+1, emit)
	flattenQuadratic(q2, q1, p2, depth+1, emit)
}

// flattenCubic subdivides the cubic bezier (p0, p1, p2, p3) using
// de Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 Point, depth int, emit func(a, b Point)) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxFlattenDepth || dist < FlattenTolerance {
		emit(p0, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, s, depth+1, emit)
	flattenCubic(s, r1, q2, p3, depth+1, emit)
}
