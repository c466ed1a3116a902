// Package mapraster implements a raster backend for map scenes,
// by wrapping rasterx.
package mapraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapmarker"
)

// assert interface conformance
var (
	_ mapcanvas.Driver     = (*Renderer)(nil)
	_ mapcanvas.TextDrawer = (*Renderer)(nil)
	_ mapcanvas.Filler     = filler{}
	_ mapcanvas.Stroker    = stroker{}
)

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	// Dst receives the text elements. Text is skipped if nil.
	Dst draw.Image
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterScene uses a ScannerGV instance to render the
// scene into an image of its output size, and returns it.
func RasterScene(s *mapcanvas.Scene) *image.RGBA {
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	renderer.Dst = img
	s.Draw(renderer)
	return img
}

// RenderPNG rasterizes s and writes it as PNG.
func RenderPNG(w io.Writer, s *mapcanvas.Scene) error {
	return png.Encode(w, RasterScene(s))
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (mapcanvas.Filler, mapcanvas.Stroker) {
	var (
		f mapcanvas.Filler
		s mapcanvas.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.NRGBA) {
	f.Filler.SetColor(c)
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.NRGBA) {
	s.Dasher.SetColor(c)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		mapcanvas.Miter: rasterx.Miter,
		mapcanvas.Round: rasterx.Round,
		mapcanvas.Bevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		mapcanvas.ButtCap:   rasterx.ButtCap,
		mapcanvas.SquareCap: rasterx.SquareCap,
		mapcanvas.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options mapcanvas.StrokeOptions) {
	capF := capToFunc[options.LineCap]
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, capF, capF,
		rasterx.FlatGap, joinToJoin[options.LineJoin], nil, 0,
	)
}

var face = basicfont.Face7x13

// DrawText paints t with a fixed size bitmap font, without rotation.
func (rd *Renderer) DrawText(t mapcanvas.Text) {
	if rd.Dst == nil {
		return
	}
	d := font.Drawer{
		Dst:  rd.Dst,
		Src:  image.NewUniform(t.Fill),
		Face: face,
	}
	width := d.MeasureString(t.Content)
	x := fToFixed(t.Pos.X) // dot at the start of the text
	switch t.Anchor {
	case mapmarker.AnchorMiddle:
		x -= width / 2
	case mapmarker.AnchorEnd:
		x -= width
	}
	m := face.Metrics()
	y := fToFixed(t.Pos.Y)
	switch t.Baseline {
	case mapmarker.BaselineMiddle:
		y += (m.Ascent - m.Descent) / 2
	case mapmarker.BaselineHanging:
		y += m.Ascent
	}
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(t.Content)
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}
