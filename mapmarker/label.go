package mapmarker

import (
	"strings"

	"github.com/crederauk/svgmapcanvas/mappath"
)

// LabelPosition indicates on which side of its station a label is drawn.
type LabelPosition string

const (
	Top         LabelPosition = "top"
	TopRight    LabelPosition = "top-right"
	Right       LabelPosition = "right"
	BottomRight LabelPosition = "bottom-right"
	Bottom      LabelPosition = "bottom"
	BottomLeft  LabelPosition = "bottom-left"
	Left        LabelPosition = "left"
	TopLeft     LabelPosition = "top-left"
)

// DefaultLabelPosition is used for stations without an explicit position.
const DefaultLabelPosition = Left

// TextAnchor is the SVG text-anchor of a label.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

// Baseline is the SVG dominant-baseline of a label.
type Baseline string

const (
	BaselineAuto    Baseline = "auto"
	BaselineMiddle  Baseline = "middle"
	BaselineHanging Baseline = "hanging"
)

// HorizontalOrigin is the horizontal component of the point a label
// rotates around, relative to its own bounding box.
type HorizontalOrigin string

const (
	OriginUnset HorizontalOrigin = ""
	OriginLeft  HorizontalOrigin = "left"
	OriginRight HorizontalOrigin = "right"
)

// DefaultLabelOrigin is the rotation origin of labels whose position
// has no horizontal component.
const DefaultLabelOrigin = OriginRight

const (
	// LabelRotation is the angle, in degrees, applied to every label.
	LabelRotation = -25.
	// LabelFontSize is the font size of station labels, in user units.
	LabelFontSize = 6.
)

// LabelLayout is the offset and alignment of a label relative to its station.
type LabelLayout struct {
	DX, DY   float64
	Anchor   TextAnchor
	Baseline Baseline
	Origin   HorizontalOrigin
}

// OriginOrDefault returns the rotation origin, replacing an unset one
// by DefaultLabelOrigin.
func (l LabelLayout) OriginOrDefault() HorizontalOrigin {
	if l.Origin == OriginUnset {
		return DefaultLabelOrigin
	}
	return l.Origin
}

// LayoutLabel computes the label layout for pos. Vertical keywords are
// applied first, then horizontal ones override the anchor and origin.
// Unknown positions are centered on the station.
func LayoutLabel(pos LabelPosition) LabelLayout {
	out := LabelLayout{Anchor: AnchorMiddle, Baseline: BaselineMiddle}
	s := string(pos)
	if strings.Contains(s, "top") {
		out.DY = -5
		out.Baseline = BaselineAuto
		out.Anchor = AnchorStart
		out.Origin = OriginLeft
	} else if strings.Contains(s, "bottom") {
		out.DY = 5
		out.Baseline = BaselineHanging
		out.Anchor = AnchorEnd
		out.Origin = OriginRight
	}

	if strings.Contains(s, "left") {
		out.DX = -7
		out.Anchor = AnchorEnd
		out.Origin = OriginRight
	} else if strings.Contains(s, "right") {
		out.DX = 7
		out.Anchor = AnchorStart
		out.Origin = OriginLeft
	}

	if pos == BottomLeft {
		out.DX, out.DY = -6, 0
	}
	return out
}

// Label is a placed station label.
type Label struct {
	Text     string
	Pos      mappath.Point // anchor point of the text
	Layout   LabelLayout
	Rotation float64
	FontSize float64
}

func placeLabel(text string, pos LabelPosition, pt mappath.Point) Label {
	if pos == "" {
		pos = DefaultLabelPosition
	}
	layout := LayoutLabel(pos)
	return Label{
		Text:     text,
		Pos:      pt.Add(mappath.Pt(layout.DX, layout.DY)),
		Layout:   layout,
		Rotation: LabelRotation,
		FontSize: LabelFontSize,
	}
}
