package mapcanvas

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// recorder logs the painted paths
type recorder struct {
	fills, strokes []paintOp
	texts          []Text
}

type paintOp struct {
	color  color.NRGBA
	points []fixed.Point26_6
	width  fixed.Int26_6
}

type recDrawer struct {
	rec    *recorder
	stroke bool
	cur    paintOp
}

func (d *recDrawer) Clear()                             { d.cur = paintOp{} }
func (d *recDrawer) Start(a fixed.Point26_6)            { d.cur.points = append(d.cur.points, a) }
func (d *recDrawer) Line(b fixed.Point26_6)             { d.cur.points = append(d.cur.points, b) }
func (d *recDrawer) QuadBezier(b, c fixed.Point26_6)    { d.cur.points = append(d.cur.points, b, c) }
func (d *recDrawer) CubeBezier(b, c, e fixed.Point26_6) { d.cur.points = append(d.cur.points, b, c, e) }
func (d *recDrawer) Stop(bool)                          {}
func (d *recDrawer) SetColor(c color.NRGBA)             { d.cur.color = c }
func (d *recDrawer) SetWinding(bool)                    {}
func (d *recDrawer) SetStrokeOptions(o StrokeOptions)   { d.cur.width = o.LineWidth }
func (d *recDrawer) Draw() {
	if d.stroke {
		d.rec.strokes = append(d.rec.strokes, d.cur)
	} else {
		d.rec.fills = append(d.rec.fills, d.cur)
	}
}

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = &recDrawer{rec: r}
	}
	if willStroke {
		s = &recDrawer{rec: r, stroke: true}
	}
	return f, s
}

func (r *recorder) DrawText(t Text) { r.texts = append(r.texts, t) }

func TestSceneDraw(t *testing.T) {
	s, err := New().Render(sampleMap())
	if err != nil {
		t.Fatal(err)
	}
	var rec recorder
	s.Draw(&rec)

	// ocean, ground, 2 ticks, 1 interchange, 1 vehicle body
	if len(rec.fills) != 6 {
		t.Fatalf("expected 6 fills, got %d", len(rec.fills))
	}
	if got := rec.fills[0].color; got != (color.NRGBA{0x9a, 0xc0, 0xf8, 0xff}) {
		t.Errorf("unexpected ocean color %v", got)
	}
	if got := rec.fills[2].color; got != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("tick should be filled with the line color, got %v", got)
	}
	// 2 transit lines, interchange outline, vehicle outline, chevron
	if len(rec.strokes) != 5 {
		t.Fatalf("expected 5 strokes, got %d", len(rec.strokes))
	}
	if w := rec.strokes[0].width; w != fToFixed(3) {
		t.Errorf("unexpected transit width %v", w)
	}
	if len(rec.texts) != 1 || rec.texts[0].Content != "Alpha" || rec.texts[0].Origin != mapmarker.OriginRight {
		t.Errorf("unexpected texts %+v", rec.texts)
	}
}

func TestTickPath(t *testing.T) {
	tick := mapmarker.Tick{Center: mappath.Pt(10, 10), Width: 3, Height: 10, Gradient: mapmarker.TickGradient("red")}
	want := RectPath(8.5, 5, 3, 6.5)
	got := TickPath(tick)
	if got.String() != want.String() {
		t.Errorf("TickPath = %s, expected %s", got, want)
	}

	// a quarter turn puts the filled part on the right
	tick.Rotation = 90
	c := mappath.Measure(TickPath(tick))
	if d := c.Start().Distance(mappath.Pt(15, 8.5)); d > 1e-9 {
		t.Errorf("unexpected rotated start %v", c.Start())
	}
}

func TestCirclePath(t *testing.T) {
	c := mappath.Measure(CirclePath(mappath.Pt(0, 0), 4))
	const perimeter = 25.1327
	if l := c.TotalLength(); l < perimeter-0.05 || l > perimeter+0.05 {
		t.Errorf("unexpected circle perimeter %v", l)
	}
}
