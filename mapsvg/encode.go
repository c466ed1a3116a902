// Package mapsvg writes rendered map scenes as SVG 1.1 documents.
package mapsvg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapmarker"
)

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// encoder remembers the first write error
type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *encoder) text(s string) {
	if e.err != nil {
		return
	}
	e.err = xml.EscapeText(e.w, []byte(s))
}

// attr returns ` name="value"`, or nothing for an empty value.
func attr(name, value string) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(value))
	return " " + name + `="` + b.String() + `"`
}

func numAttr(name string, v float64) string {
	if v == 0 {
		return ""
	}
	return " " + name + `="` + num(v) + `"`
}

func interactive(key string, ok bool) string {
	if !ok {
		return ""
	}
	return attr("data-key", key) + ` cursor="pointer"`
}

// Encode writes the scene s as a standalone SVG document.
func Encode(w io.Writer, s *mapcanvas.Scene) error {
	e := &encoder{w: bufio.NewWriter(w)}
	e.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	e.printf(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(s.CanvasWidth), num(s.CanvasHeight), num(s.Width), num(s.Height))

	o := s.Ocean
	e.printf(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n", num(o.X), num(o.Y), num(o.W), num(o.H), attr("fill", o.Fill))

	for _, sh := range s.Ground {
		e.shape(sh)
	}
	for _, sh := range s.Transit {
		e.shape(sh)
	}

	if len(s.Gradients) != 0 {
		e.printf("<defs>\n")
		for _, g := range s.Gradients {
			e.gradient(g)
		}
		e.printf("</defs>\n")
	}

	for _, st := range s.Stations {
		e.station(st)
	}
	for _, v := range s.Vehicles {
		e.vehicle(v)
	}
	e.printf("</svg>\n")

	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// EncodeToString returns the SVG document of s.
func EncodeToString(s *mapcanvas.Scene) (string, error) {
	var b strings.Builder
	if err := Encode(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *encoder) shape(sh mapcanvas.Shape) {
	paintOrder := ""
	if sh.PaintOrderStroke {
		paintOrder = ` paint-order="stroke"`
	}
	e.printf(`<path%s d="%s"%s%s%s%s/>`+"\n", attr("id", sh.ID), sh.Path.ToSVGPath(),
		attr("fill", sh.Fill), attr("stroke", sh.Stroke), numAttr("stroke-width", sh.StrokeWidth), paintOrder)
}

func (e *encoder) gradient(g mapcanvas.GradientDef) {
	transform := ""
	if g.Rotation != 0 {
		transform = fmt.Sprintf(` gradientTransform="rotate(%s)"`, num(g.Rotation))
	}
	e.printf(`<linearGradient%s%s>`+"\n", attr("id", g.ID), transform)
	for _, stop := range g.Stops {
		e.printf(`<stop offset="%s"%s/>`+"\n", num(stop.Offset), attr("stop-color", stop.StopColor))
	}
	e.printf("</linearGradient>\n")
}

func (e *encoder) circle(c mapmarker.Circle, extra string) {
	e.printf(`<circle cx="%s" cy="%s" r="%s"%s%s%s%s/>`+"\n", num(c.Center.X), num(c.Center.Y), num(c.R),
		attr("fill", c.Fill), attr("stroke", c.Stroke), numAttr("stroke-width", c.StrokeWidth), extra)
}

func (e *encoder) station(st mapcanvas.StationItem) {
	mk := st.Marker
	switch {
	case mk.Circle != nil:
		e.circle(*mk.Circle, interactive(st.Key, st.Interactive))
	case mk.Tick != nil:
		t, o := mk.Tick, mk.Tick.Origin()
		fill := ""
		if st.GradientID != "" {
			fill = "url(#" + st.GradientID + ")"
		}
		e.printf(`<rect x="%s" y="%s" width="%s" height="%s"%s transform="rotate(%s %s %s)"%s/>`+"\n",
			num(o.X), num(o.Y), num(t.Width), num(t.Height), attr("fill", fill),
			num(t.Rotation), num(t.Center.X), num(t.Center.Y), interactive(st.Key, st.Interactive))
	}
	if l := mk.Label; l != nil {
		e.printf(`<text x="%s" y="%s" text-anchor="%s" dominant-baseline="%s" font-size="%s" transform="rotate(%s)" style="transform-box: fill-box; transform-origin: %s center">`,
			num(l.Pos.X), num(l.Pos.Y), l.Layout.Anchor, l.Layout.Baseline, num(l.FontSize), num(l.Rotation), l.Layout.OriginOrDefault())
		e.text(l.Text)
		e.printf("</text>\n")
	}
}

func (e *encoder) vehicle(v mapcanvas.VehicleItem) {
	mk := v.Marker
	e.printf(`<g transform="rotate(%s %s %s)"%s>`+"\n", num(mk.Rotation), num(mk.Center.X), num(mk.Center.Y),
		interactive(v.Key, v.Interactive))
	e.circle(mk.Body, "")
	c := mk.Chevron
	e.printf(`<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="%s" font-weight="%d"%s>`,
		num(c.Pos.X), num(c.Pos.Y), num(c.FontSize), c.FontWeight, attr("fill", c.Fill))
	e.text(c.Text)
	e.printf("</text>\n</g>\n")
}
