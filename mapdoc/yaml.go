package mapdoc

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// Segment modes of YAML documents
const (
	modeStraight       = "straight"
	modeQuadraticCurve = "quadraticCurve"
)

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlSegment struct {
	Mode string     `yaml:"mode"`
	From *yamlPoint `yaml:"from"`
	To   *yamlPoint `yaml:"to"`
}

type yamlStation struct {
	ID            string   `yaml:"id"`
	Location      *float64 `yaml:"location"`
	Label         string   `yaml:"label"`
	LabelPosition string   `yaml:"labelPosition"`
	Interchange   bool     `yaml:"interchange"`
	Hidden        bool     `yaml:"hidden"`
}

type yamlVehicle struct {
	ID        string  `yaml:"id"`
	PathID    string  `yaml:"pathId"`
	Location  float64 `yaml:"location"`
	Direction string  `yaml:"direction"`
}

type yamlTransitPath struct {
	ID   string        `yaml:"id"`
	Path []yamlSegment `yaml:"path"`
}

type yamlTransit struct {
	ID       string                   `yaml:"id"`
	Paths    []yamlTransitPath        `yaml:"paths"`
	Stations map[string][]yamlStation `yaml:"stations"`
	Vehicles []yamlVehicle            `yaml:"vehicles"`
	Color    *mapcanvas.ColorDef      `yaml:"color"`
}

type yamlMap struct {
	Width               float64             `yaml:"width"`
	Height              float64             `yaml:"height"`
	CanvasWidth         float64             `yaml:"canvasWidth"`
	CanvasHeight        float64             `yaml:"canvasHeight"`
	Colors              mapcanvas.ColorDefs `yaml:"colors"`
	ConcreteGroundPaths [][]yamlSegment     `yaml:"concreteGroundPaths"`
	Transits            []yamlTransit       `yaml:"transits"`
}

func (def yamlMap) toMap() (*mapcanvas.Map, error) {
	m := &mapcanvas.Map{
		Width:        def.Width,
		Height:       def.Height,
		CanvasWidth:  def.CanvasWidth,
		CanvasHeight: def.CanvasHeight,
		Colors:       def.Colors,
	}
	for i, g := range def.ConcreteGroundPaths {
		line, err := toLineDef(g)
		if err != nil {
			return nil, fmt.Errorf("ground path %d: %w", i, err)
		}
		m.ConcreteGroundPaths = append(m.ConcreteGroundPaths, line)
	}
	for _, t := range def.Transits {
		tl, err := t.toTransit()
		if err != nil {
			return nil, fmt.Errorf("transit %q: %w", t.ID, err)
		}
		m.Transits = append(m.Transits, tl)
	}
	return m, nil
}

func (t yamlTransit) toTransit() (mapcanvas.TransitLine, error) {
	out := mapcanvas.TransitLine{ID: t.ID, Color: t.Color}
	for _, p := range t.Paths {
		line, err := toLineDef(p.Path)
		if err != nil {
			return out, fmt.Errorf("path %q: %w", p.ID, err)
		}
		out.Paths = append(out.Paths, mapcanvas.TransitPath{ID: p.ID, Line: line})
	}
	if len(t.Stations) != 0 {
		out.Stations = make(map[string][]mapmarker.Station, len(t.Stations))
	}
	for pathID, stations := range t.Stations {
		for _, st := range stations {
			out.Stations[pathID] = append(out.Stations[pathID], mapmarker.Station{
				ID:            st.ID,
				Location:      st.Location,
				Label:         st.Label,
				LabelPosition: mapmarker.LabelPosition(st.LabelPosition),
				Interchange:   st.Interchange,
				Hidden:        st.Hidden,
			})
		}
	}
	for _, v := range t.Vehicles {
		dir := mapmarker.Direction(v.Direction)
		switch dir {
		case mapmarker.DirectionStart, mapmarker.DirectionEnd:
		case "":
			dir = mapmarker.DirectionEnd
		default:
			return out, fmt.Errorf("%w: direction %q", errParamMismatch, v.Direction)
		}
		out.Vehicles = append(out.Vehicles, mapmarker.Vehicle{
			ID:        v.ID,
			PathID:    v.PathID,
			Location:  v.Location,
			Direction: dir,
		})
	}
	return out, nil
}

func toLineDef(segs []yamlSegment) (mappath.LineDef, error) {
	line := make(mappath.LineDef, 0, len(segs))
	for i, s := range segs {
		switch s.Mode {
		case modeStraight:
			if s.From == nil || s.To == nil {
				return nil, fmt.Errorf("%w: segment %d needs from and to", errParamMismatch, i)
			}
			line = append(line, mappath.Straight{
				From: mappath.Pt(s.From.X, s.From.Y),
				To:   mappath.Pt(s.To.X, s.To.Y),
			})
		case modeQuadraticCurve:
			line = append(line, mappath.SmoothJoint{})
		default:
			return nil, fmt.Errorf("%w: segment %d has mode %q", errParamMismatch, i, s.Mode)
		}
	}
	return line, nil
}

// ReadYAML reads a YAML (or JSON) map document.
func (r *Reader) ReadYAML(stream io.Reader) (*mapcanvas.Map, error) {
	var def yamlMap
	dec := yaml.NewDecoder(stream)
	dec.KnownFields(r.ErrorMode == StrictErrorMode)
	if err := dec.Decode(&def); err != nil {
		if err == io.EOF {
			return nil, errInvalidDoc
		}
		return nil, err
	}
	return def.toMap()
}

// ReadYAML reads a YAML map document, using a reader without logging.
func ReadYAML(stream io.Reader, errMode ErrorMode) (*mapcanvas.Map, error) {
	return NewReader(errMode).ReadYAML(stream)
}
