package mapmarker

import "github.com/crederauk/svgmapcanvas/mappath"

// Direction is the end of the path a vehicle travels toward.
type Direction string

const (
	DirectionStart Direction = "start"
	DirectionEnd   Direction = "end"
)

// Vehicle is a moving marker riding the path PathID.
type Vehicle struct {
	ID        string
	PathID    string
	Location  float64 // fraction of the path length, in [0,1]
	Direction Direction
}

// Vehicle marker geometry
const (
	VehicleRadius      = 4.
	VehicleFill        = "#777"
	VehicleStroke      = "#fff"
	VehicleStrokeWidth = 0.5

	ChevronText       = ">"
	ChevronFontSize   = 4.
	ChevronFontWeight = 900
	ChevronFill       = "#fff"
	chevronOffset     = 0.2
)

// Glyph is a single centered text element.
type Glyph struct {
	Text       string
	Pos        mappath.Point
	FontSize   float64
	FontWeight int
	Fill       string
}

// VehicleMarker is the placed geometry of a vehicle: a disk and a chevron,
// rotated together by Rotation degrees around Center.
type VehicleMarker struct {
	VehicleID string
	PathID    string
	Location  float64
	Center    mappath.Point
	Rotation  float64
	Body      Circle
	Chevron   Glyph
}

// VehicleRotation returns the rotation of a vehicle moving toward dir on
// a line with the given tangent angle. Vehicles heading to the start
// are flipped; the result is not normalized.
func VehicleRotation(angle float64, dir Direction) float64 {
	if dir == DirectionStart {
		return angle + 180
	}
	return angle
}

// PlaceVehicle computes the marker of v located at pt, where the line
// has the tangent angle, in degrees.
func PlaceVehicle(v Vehicle, pt mappath.Point, angle float64) VehicleMarker {
	return VehicleMarker{
		VehicleID: v.ID,
		PathID:    v.PathID,
		Location:  v.Location,
		Center:    pt,
		Rotation:  VehicleRotation(angle, v.Direction),
		Body: Circle{
			Center:      pt,
			R:           VehicleRadius,
			Fill:        VehicleFill,
			Stroke:      VehicleStroke,
			StrokeWidth: VehicleStrokeWidth,
		},
		Chevron: Glyph{
			Text:       ChevronText,
			Pos:        mappath.Pt(pt.X+chevronOffset, pt.Y),
			FontSize:   ChevronFontSize,
			FontWeight: ChevronFontWeight,
			Fill:       ChevronFill,
		},
	}
}
