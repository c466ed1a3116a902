package mapcanvas

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// Rect is an axis aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// Shape is a painted path. An empty Fill paints black and
// an empty Stroke disables stroking, following SVG defaults.
type Shape struct {
	ID          string
	Path        mappath.Path
	Fill        string
	Stroke      string
	StrokeWidth float64 // 0 for the default width
	// PaintOrderStroke paints the stroke before the fill.
	PaintOrderStroke bool
}

// GradientDef is a gradient shared by the station ticks of one transit line.
type GradientDef struct {
	ID string
	mapmarker.Gradient
}

// StationItem is a placed station marker.
type StationItem struct {
	Key         string // pathID-location
	TransitID   string
	PathID      string
	GradientID  string // set for ticks
	Marker      mapmarker.StationMarker
	Interactive bool
}

// VehicleItem is a placed vehicle marker.
type VehicleItem struct {
	Key         string // pathID-location
	TransitID   string
	Marker      mapmarker.VehicleMarker
	Interactive bool
}

// Scene is the display list of a rendered map, in painting order:
// the ocean, the concrete ground, the transit lines, the stations
// and their labels, and the vehicles.
type Scene struct {
	Width, Height             float64
	CanvasWidth, CanvasHeight float64

	Ocean     Rect
	Ground    []Shape
	Transit   []Shape
	Gradients []GradientDef
	Stations  []StationItem
	Vehicles  []VehicleItem

	handlers Handlers
}

// Lookup returns the sampleable curve attached for a path.
type Lookup func(pathID string) (mappath.Sampleable, bool)

// Markers is the result of the placement pass.
type Markers struct {
	Gradients []GradientDef
	Stations  []StationItem
	Vehicles  []VehicleItem
	// Missing lists the paths whose markers were omitted
	// because no curve is attached for them.
	Missing []string
}

func (mk *Markers) missing(pathID string) {
	for _, p := range mk.Missing {
		if p == pathID {
			return
		}
	}
	mk.Missing = append(mk.Missing, pathID)
}

var gradientNamespace = uuid.MustParse("3b4c7e0a-93f1-4d65-a0c1-5e0b1f0d2a47")

// GradientID returns the stable identifier of the station gradient
// of a transit line drawn with stroke.
func GradientID(transitID, stroke string) string {
	return "station-gradient-" + uuid.NewSHA1(gradientNamespace, []byte(transitID+"\x00"+stroke)).String()
}

func markerKey(pathID string, location float64) string {
	return pathID + "-" + strconv.FormatFloat(location, 'f', -1, 64)
}

// PlaceMarkers samples the stations and vehicles of m along the curves
// returned by lookup. Markers whose curve is missing are omitted.
// Stations are visited by sorted path ID.
func PlaceMarkers(m Map, lookup Lookup) Markers {
	var out Markers
	for _, t := range m.Transits {
		stroke := m.transitStroke(t)
		gradID := ""

		pathIDs := make([]string, 0, len(t.Stations))
		for pathID := range t.Stations {
			pathIDs = append(pathIDs, pathID)
		}
		sort.Strings(pathIDs)

		for _, pathID := range pathIDs {
			for _, st := range t.Stations[pathID] {
				if st.Hidden || st.Location == nil {
					continue
				}
				h, ok := lookup(pathID)
				if !ok {
					out.missing(pathID)
					continue
				}
				pt, angle := mappath.Sample(h, *st.Location)
				marker, ok := mapmarker.PlaceStation(st, pt, angle, stroke)
				if !ok {
					continue
				}
				item := StationItem{
					Key:         markerKey(pathID, *st.Location),
					TransitID:   t.ID,
					PathID:      pathID,
					Marker:      marker,
					Interactive: m.Handlers.OnStation != nil,
				}
				if marker.Tick != nil {
					if gradID == "" {
						gradID = GradientID(t.ID, stroke)
						out.Gradients = append(out.Gradients, GradientDef{ID: gradID, Gradient: marker.Tick.Gradient})
					}
					item.GradientID = gradID
				}
				out.Stations = append(out.Stations, item)
			}
		}
	}

	for _, t := range m.Transits {
		for _, v := range t.Vehicles {
			h, ok := lookup(v.PathID)
			if !ok {
				out.missing(v.PathID)
				continue
			}
			pt, angle := mappath.Sample(h, v.Location)
			out.Vehicles = append(out.Vehicles, VehicleItem{
				Key:         markerKey(v.PathID, v.Location),
				TransitID:   t.ID,
				Marker:      mapmarker.PlaceVehicle(v, pt, angle),
				Interactive: m.Handlers.OnVehicle != nil,
			})
		}
	}
	return out
}

// ViewTransform maps the view box of the scene to its output size,
// fitting it with a uniform scale and centring it like the SVG
// default preserveAspectRatio (xMidYMid meet).
func (s *Scene) ViewTransform() mappath.Matrix2D {
	if s.CanvasWidth == 0 || s.CanvasHeight == 0 {
		return mappath.Identity
	}
	k := min(s.Width/s.CanvasWidth, s.Height/s.CanvasHeight)
	tx := (s.Width - k*s.CanvasWidth) / 2
	ty := (s.Height - k*s.CanvasHeight) / 2
	return mappath.Identity.Translate(tx, ty).Scale(k, k)
}

// Gradient returns the gradient definition with the given id.
func (s *Scene) Gradient(id string) (GradientDef, error) {
	for _, g := range s.Gradients {
		if g.ID == id {
			return g, nil
		}
	}
	return GradientDef{}, fmt.Errorf("unknown gradient %q", id)
}
