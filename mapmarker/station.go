// Package mapmarker computes the anchored geometry of the markers
// placed along transit lines: station ticks, interchange circles,
// labels and vehicles.
//
// All functions are pure: they only depend on the sampled point and
// angle, and on the marker configuration.
package mapmarker

import "github.com/crederauk/svgmapcanvas/mappath"

// Station is a stop along a transit path.
type Station struct {
	ID string
	// Location is the fraction of the path length, in [0,1].
	// A nil Location means the station is not placed.
	Location      *float64
	Label         string
	LabelPosition LabelPosition
	Interchange   bool
	Hidden        bool
}

// Transparent is the color of the unfilled part of a station tick.
const Transparent = "transparent"

// GradStop is a stop of a linear gradient
type GradStop struct {
	Offset    float64 // fraction in [0,1]
	StopColor string
}

// Gradient is a linear gradient, drawn along the local horizontal axis
// of the shape, then rotated by Rotation degrees.
type Gradient struct {
	Stops    []GradStop
	Rotation float64
}

// Tick geometry
const (
	TickWidth  = 3.
	TickHeight = 10.
	// TickFill is the fraction of the tick filled with the line color.
	TickFill = 0.65
)

// Tick is the marker of a regular station: a small rectangle centered
// on the line and rotated along its direction.
type Tick struct {
	Center        mappath.Point
	Width, Height float64
	Rotation      float64 // degrees, around Center
	Gradient      Gradient
}

// Origin returns the top left corner of the unrotated tick.
func (t Tick) Origin() mappath.Point {
	return mappath.Pt(t.Center.X-t.Width/2, t.Center.Y-t.Height/2)
}

// Interchange geometry
const (
	InterchangeRadius      = 3.
	InterchangeFill        = "#fff"
	InterchangeStroke      = "#000"
	InterchangeStrokeWidth = 1.2
)

// Circle is a filled and stroked disk.
type Circle struct {
	Center      mappath.Point
	R           float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// StationMarker is the placed geometry of a station.
// Exactly one of Tick and Circle is set; Label is nil for
// stations without text.
type StationMarker struct {
	StationID string
	Location  float64
	Tick      *Tick
	Circle    *Circle
	Label     *Label
}

// PlaceStation computes the marker of st located at pt, where the line
// has the tangent angle (in degrees) and the color lineColor.
// It returns false for hidden stations and stations without location.
func PlaceStation(st Station, pt mappath.Point, angle float64, lineColor string) (StationMarker, bool) {
	if st.Hidden || st.Location == nil {
		return StationMarker{}, false
	}
	out := StationMarker{StationID: st.ID, Location: *st.Location}
	if st.Interchange {
		out.Circle = &Circle{
			Center:      pt,
			R:           InterchangeRadius,
			Fill:        InterchangeFill,
			Stroke:      InterchangeStroke,
			StrokeWidth: InterchangeStrokeWidth,
		}
	} else {
		out.Tick = &Tick{
			Center:   pt,
			Width:    TickWidth,
			Height:   TickHeight,
			Rotation: angle,
			Gradient: TickGradient(lineColor),
		}
	}
	if st.Label != "" {
		l := placeLabel(st.Label, st.LabelPosition, pt)
		out.Label = &l
	}
	return out, true
}

// TickGradient returns the half filled gradient of regular stations.
func TickGradient(lineColor string) Gradient {
	return Gradient{
		Stops: []GradStop{
			{Offset: TickFill, StopColor: lineColor},
			{Offset: TickFill, StopColor: Transparent},
		},
		Rotation: 90,
	}
}
