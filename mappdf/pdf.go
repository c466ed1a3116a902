// Package mappdf implements a PDF backend for map scenes,
// by wrapping github.com/jung-kurt/gofpdf.
package mappdf

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapmarker"
)

// assert interface conformance
var (
	_ mapcanvas.Driver     = Renderer{}
	_ mapcanvas.TextDrawer = Renderer{}
	_ mapcanvas.Filler     = (*filler)(nil)
	_ mapcanvas.Stroker    = stroker{}
)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// NewDocument returns a one page document sized to the scene, in points.
func NewDocument(s *mapcanvas.Scene) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: s.Width, Ht: s.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf
}

// Render draws the scene on a new document and writes it to w.
func Render(s *mapcanvas.Scene, w io.Writer) error {
	pdf := NewDocument(s)
	s.Draw(NewRenderer(pdf))
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (mapcanvas.Filler, mapcanvas.Stroker) {
	var (
		f mapcanvas.Filler
		s mapcanvas.Stroker
	)
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = stroker{pather{pdf: r.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Clear() {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (f *filler) SetColor(c color.NRGBA) {
	f.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	f.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s stroker) SetColor(c color.NRGBA) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (s stroker) Draw() {
	s.pdf.DrawPath("D")
}

var (
	joinToStyle = [...]string{
		mapcanvas.Miter: "miter",
		mapcanvas.Round: "round",
		mapcanvas.Bevel: "bevel",
	}
	capToStyle = [...]string{
		mapcanvas.ButtCap:   "butt",
		mapcanvas.SquareCap: "square",
		mapcanvas.RoundCap:  "round",
	}
)

func (s stroker) SetStrokeOptions(options mapcanvas.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineJoinStyle(joinToStyle[options.LineJoin])
	s.pdf.SetLineCapStyle(capToStyle[options.LineCap])
}

// vertical distance from the baseline to the middle of the
// text box, as a fraction of the font size
const middleRatio = 0.35

// DrawText writes t with the Helvetica core font, rotated about
// its horizontal origin.
func (r Renderer) DrawText(t mapcanvas.Text) {
	style := ""
	if t.Bold {
		style = "B"
	}
	r.pdf.SetFont("Helvetica", style, t.FontSize)
	r.pdf.SetTextColor(int(t.Fill.R), int(t.Fill.G), int(t.Fill.B))
	r.pdf.SetAlpha(float64(t.Fill.A)/255, "Normal")

	width := r.pdf.GetStringWidth(t.Content)
	x := t.Pos.X
	switch t.Anchor {
	case mapmarker.AnchorMiddle:
		x -= width / 2
	case mapmarker.AnchorEnd:
		x -= width
	}
	baseline := t.Pos.Y
	switch t.Baseline {
	case mapmarker.BaselineMiddle:
		baseline += middleRatio * t.FontSize
	case mapmarker.BaselineHanging:
		baseline += 2 * middleRatio * t.FontSize
	}

	ox := x
	if t.Origin == mapmarker.OriginRight {
		ox += width
	}
	oy := baseline - middleRatio*t.FontSize

	r.pdf.TransformBegin()
	// pdf angles are counter clockwise
	r.pdf.TransformRotate(-t.Rotation, ox, oy)
	r.pdf.Text(x, baseline, t.Content)
	r.pdf.TransformEnd()
}
