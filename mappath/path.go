// Package mappath implements the geometry of transit map lines:
// the compilation of line definitions into drawable paths, and
// arc-length sampling of those paths.
package mappath

import (
	"strconv"
	"strings"
)

// This file defines the basic path structure

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

// QuadTo holds the control point and the end point.
type QuadTo [2]Point

// CubicTo holds the two control points and the end point.
type CubicTo [3]Point

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic drawing operations.
// Higher-level shapes may be reduced to a path.
type Path []Operation

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writePoints(b *strings.Builder, pts ...Point) {
	for _, p := range pts {
		b.WriteByte(' ')
		b.WriteString(formatFloat(p.X))
		b.WriteByte(' ')
		b.WriteString(formatFloat(p.Y))
	}
}

// ToSVGPath returns the path in SVG path data syntax,
// suitable for the "d" attribute of a <path> element.
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			b.WriteByte('M')
			writePoints(&b, Point(op))
		case LineTo:
			b.WriteByte('L')
			writePoints(&b, Point(op))
		case QuadTo:
			b.WriteByte('Q')
			writePoints(&b, op[0], op[1])
		case CubicTo:
			b.WriteByte('C')
			writePoints(&b, op[0], op[1], op[2])
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c Point) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Transform returns a copy of the path with every point mapped by m.
func (p Path) Transform(m Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(m.Apply(Point(op)))
		case LineTo:
			out[i] = LineTo(m.Apply(Point(op)))
		case QuadTo:
			out[i] = QuadTo{m.Apply(op[0]), m.Apply(op[1])}
		case CubicTo:
			out[i] = CubicTo{m.Apply(op[0]), m.Apply(op[1]), m.Apply(op[2])}
		default:
			out[i] = op
		}
	}
	return out
}
