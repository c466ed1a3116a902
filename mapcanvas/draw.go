package mapcanvas

import (
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// Given a scene, implements how to draw it with a backend.
// A driver implements the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any map knowledge.
// Transformations are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path
	SetColor(c color.NRGBA)

	// Draw fills or strokes the accumulated path
	Draw()
}

type Filler interface {
	Drawer

	// SetWinding selects the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetStrokeOptions parametrizes the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// TextDrawer is implemented by drivers able to paint text.
// Drivers without it silently skip labels and chevrons.
type TextDrawer interface {
	DrawText(t Text)
}

// Text is a transformed text element.
type Text struct {
	Content  string
	Pos      mappath.Point
	FontSize float64
	Bold     bool
	Anchor   mapmarker.TextAnchor
	Baseline mapmarker.Baseline
	// Rotation, in degrees, about the horizontal Origin
	// of the text box, vertically centered
	Rotation float64
	Origin   mapmarker.HorizontalOrigin
	Fill     color.NRGBA
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Miter JoinMode = iota // SVG default
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // SVG default
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line
	MiterLimit fixed.Int26_6
	LineJoin   JoinMode
	LineCap    CapMode
}

// DefaultStrokeOptions follows the SVG defaults.
var DefaultStrokeOptions = StrokeOptions{
	LineWidth:  fToFixed(1),
	MiterLimit: fToFixed(4),
	LineJoin:   Miter,
	LineCap:    ButtCap,
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

func pToFixed(p mappath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fToFixed(p.X), Y: fToFixed(p.Y)}
}

// resolvePaint parses s, returning def for an empty string.
// A nil paint disables the operation.
func resolvePaint(s string, def *color.NRGBA) *color.NRGBA {
	if s == "" {
		return def
	}
	c, err := ParseColor(s)
	if err != nil || c.A == 0 {
		return nil
	}
	return &c
}

var black = &color.NRGBA{A: 0xff}

// replay sends the operations of p to d.
func replay(d Drawer, p mappath.Path) {
	started := false
	for _, op := range p {
		switch op := op.(type) {
		case mappath.MoveTo:
			if started {
				d.Stop(false) // implicit close if currently in path.
			}
			d.Start(pToFixed(mappath.Point(op)))
			started = true
		case mappath.LineTo:
			d.Line(pToFixed(mappath.Point(op)))
		case mappath.QuadTo:
			d.QuadBezier(pToFixed(op[0]), pToFixed(op[1]))
		case mappath.CubicTo:
			d.CubeBezier(pToFixed(op[0]), pToFixed(op[1]), pToFixed(op[2]))
		case mappath.Close:
			d.Stop(true)
		}
	}
	d.Stop(false)
}

// drawPath paints p, already transformed, with the given paints.
func drawPath(d Driver, p mappath.Path, fill, stroke *color.NRGBA, opts StrokeOptions, strokeFirst bool) {
	if len(p) == 0 {
		return
	}
	filler, stroker := d.SetupDrawers(fill != nil, stroke != nil)
	doFill := func() {
		if filler == nil { // nil color disables filling
			return
		}
		filler.Clear()
		filler.SetWinding(true)
		filler.SetColor(*fill)
		replay(filler, p)
		filler.Draw()
	}
	doStroke := func() {
		if stroker == nil {
			return
		}
		stroker.Clear()
		stroker.SetStrokeOptions(opts)
		stroker.SetColor(*stroke)
		replay(stroker, p)
		stroker.Draw()
	}
	if strokeFirst {
		doStroke()
		doFill()
	} else {
		doFill()
		doStroke()
	}
}

// kappa is the control point distance of the cubic approximation
// of a quarter circle
const kappa = 0.5522847498307936

// CirclePath returns a closed circle made of four cubic arcs.
func CirclePath(c mappath.Point, r float64) mappath.Path {
	k := r * kappa
	var p mappath.Path
	p.Start(mappath.Pt(c.X+r, c.Y))
	p.CubeBezier(mappath.Pt(c.X+r, c.Y+k), mappath.Pt(c.X+k, c.Y+r), mappath.Pt(c.X, c.Y+r))
	p.CubeBezier(mappath.Pt(c.X-k, c.Y+r), mappath.Pt(c.X-r, c.Y+k), mappath.Pt(c.X-r, c.Y))
	p.CubeBezier(mappath.Pt(c.X-r, c.Y-k), mappath.Pt(c.X-k, c.Y-r), mappath.Pt(c.X, c.Y-r))
	p.CubeBezier(mappath.Pt(c.X+k, c.Y-r), mappath.Pt(c.X+r, c.Y-k), mappath.Pt(c.X+r, c.Y))
	p.Stop(true)
	return p
}

// RectPath returns a closed rectangle.
func RectPath(x, y, w, h float64) mappath.Path {
	var p mappath.Path
	p.Start(mappath.Pt(x, y))
	p.Line(mappath.Pt(x+w, y))
	p.Line(mappath.Pt(x+w, y+h))
	p.Line(mappath.Pt(x, y+h))
	p.Stop(true)
	return p
}

// TickPath returns the filled part of a tick, rotated around its center.
// The gradient of ticks runs from top to bottom, so the first stop color
// covers the top of the rectangle.
func TickPath(t mapmarker.Tick) mappath.Path {
	o := t.Origin()
	filled := t.Height
	if len(t.Gradient.Stops) != 0 {
		filled = t.Height * t.Gradient.Stops[0].Offset
	}
	m := mappath.Identity.RotateAround(t.Rotation, t.Center)
	return RectPath(o.X, o.Y, t.Width, filled).Transform(m)
}

// ChevronPath returns the stroked '>' glyph of a vehicle, pointing
// along +x before rotation about the vehicle center.
func ChevronPath(v mapmarker.VehicleMarker) mappath.Path {
	s := v.Chevron.FontSize / 4
	c := v.Chevron.Pos
	var p mappath.Path
	p.Start(mappath.Pt(c.X-0.6*s, c.Y-1.2*s))
	p.Line(mappath.Pt(c.X+0.6*s, c.Y))
	p.Line(mappath.Pt(c.X-0.6*s, c.Y+1.2*s))
	return p.Transform(mappath.Identity.RotateAround(v.Rotation, v.Center))
}

// Draw paints the scene into the driver `d`, scaled from the
// view box to the output size.
func (s *Scene) Draw(d Driver) {
	t := s.ViewTransform()
	scale := math.Sqrt(math.Abs(t.A*t.D - t.B*t.C))
	td, hasText := d.(TextDrawer)

	strokeOpts := func(width float64) StrokeOptions {
		opts := DefaultStrokeOptions
		if width != 0 {
			opts.LineWidth = fToFixed(width * scale)
		} else {
			opts.LineWidth = fToFixed(scale)
		}
		return opts
	}

	drawPath(d, RectPath(s.Ocean.X, s.Ocean.Y, s.Ocean.W, s.Ocean.H).Transform(t),
		resolvePaint(s.Ocean.Fill, black), nil, DefaultStrokeOptions, false)

	for _, layer := range [...][]Shape{s.Ground, s.Transit} {
		for _, sh := range layer {
			drawPath(d, sh.Path.Transform(t), resolvePaint(sh.Fill, black), resolvePaint(sh.Stroke, nil),
				strokeOpts(sh.StrokeWidth), sh.PaintOrderStroke)
		}
	}

	for _, st := range s.Stations {
		mk := st.Marker
		switch {
		case mk.Tick != nil:
			stop := ""
			if len(mk.Tick.Gradient.Stops) != 0 {
				stop = mk.Tick.Gradient.Stops[0].StopColor
			}
			drawPath(d, TickPath(*mk.Tick).Transform(t), resolvePaint(stop, nil), nil, DefaultStrokeOptions, false)
		case mk.Circle != nil:
			c := mk.Circle
			drawPath(d, CirclePath(c.Center, c.R).Transform(t), resolvePaint(c.Fill, black),
				resolvePaint(c.Stroke, nil), strokeOpts(c.StrokeWidth), false)
		}
		if mk.Label != nil && hasText {
			l := mk.Label
			td.DrawText(Text{
				Content:  l.Text,
				Pos:      t.Apply(l.Pos),
				FontSize: l.FontSize * scale,
				Anchor:   l.Layout.Anchor,
				Baseline: l.Layout.Baseline,
				Rotation: l.Rotation,
				Origin:   l.Layout.OriginOrDefault(),
				Fill:     *black,
			})
		}
	}

	for _, v := range s.Vehicles {
		mk := v.Marker
		drawPath(d, CirclePath(mk.Body.Center, mk.Body.R).Transform(t), resolvePaint(mk.Body.Fill, black),
			resolvePaint(mk.Body.Stroke, nil), strokeOpts(mk.Body.StrokeWidth), false)
		chevron := strokeOpts(mk.Chevron.FontSize / 5)
		chevron.LineJoin, chevron.LineCap = Round, RoundCap
		drawPath(d, ChevronPath(mk).Transform(t), nil, resolvePaint(mk.Chevron.Fill, black), chevron, false)
	}
}
