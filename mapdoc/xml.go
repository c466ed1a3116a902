package mapdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/crederauk/svgmapcanvas/mapcanvas"
	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// where the segments being read are added
type segmentTarget uint8

const (
	noTarget segmentTarget = iota
	groundTarget
	pathTarget
)

// docCursor is used while parsing XML map documents
type docCursor struct {
	reader *Reader
	m      *mapcanvas.Map

	inMap, inColors bool
	transit         int // index of the current transit, or -1
	target          segmentTarget
	stationsPath    string // set inside a <stations> element
	inStations      bool
}

func (c *docCursor) currentTransit() *mapcanvas.TransitLine {
	if c.transit < 0 {
		return nil
	}
	return &c.m.Transits[c.transit]
}

func (c *docCursor) addSegment(s mappath.Segment) error {
	switch c.target {
	case groundTarget:
		g := &c.m.ConcreteGroundPaths[len(c.m.ConcreteGroundPaths)-1]
		*g = append(*g, s)
	case pathTarget:
		t := c.currentTransit()
		p := &t.Paths[len(t.Paths)-1]
		p.Line = append(p.Line, s)
	default:
		return errMisplaced
	}
	return nil
}

// ReadMapStream reads an XML map document from the given io.Reader.
// The reader ErrorMode determines if the document ignores, errors out, or logs a warning
// if it does not handle an element found in the stream.
func (r *Reader) ReadMapStream(stream io.Reader) (*mapcanvas.Map, error) {
	m := new(mapcanvas.Map)
	cursor := &docCursor{reader: r, m: m, transit: -1}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errInvalidDoc
				}
				break
			}
			return m, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return m, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		}
	}
	return m, nil
}

// ReadMapStream reads an XML map document, using a reader without logging.
func ReadMapStream(stream io.Reader, errMode ErrorMode) (*mapcanvas.Map, error) {
	return NewReader(errMode).ReadMapStream(stream)
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		errStr := "cannot process map element " + se.Name.Local
		if c.reader.ErrorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.reader.ErrorMode == WarnErrorMode {
			c.reader.Logger.Warn().Str("element", se.Name.Local).Msg("cannot process map element")
		}
		return nil
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("<%s>: %w", se.Name.Local, err)
	}
	return nil
}

func (c *docCursor) readEndElement(se xml.EndElement) {
	switch se.Name.Local {
	case "map":
		c.inMap = false
	case "colors":
		c.inColors = false
	case "ground", "path":
		c.target = noTarget
	case "transit":
		c.transit = -1
	case "stations":
		c.inStations, c.stationsPath = false, ""
	}
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

func parseFloat(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errParamMismatch, v)
	}
	return f, nil
}

func parsePoint(v string) (mappath.Point, error) {
	fields := splitOnCommaOrSpace(v)
	if len(fields) != 2 {
		return mappath.Point{}, fmt.Errorf("%w: point %q", errParamMismatch, v)
	}
	x, err := parseFloat(fields[0])
	if err != nil {
		return mappath.Point{}, err
	}
	y, err := parseFloat(fields[1])
	if err != nil {
		return mappath.Point{}, err
	}
	return mappath.Pt(x, y), nil
}

func parseBool(v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %q", errParamMismatch, v)
	}
	return b, nil
}

type elementFunc func(c *docCursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"map":      mapF,
	"colors":   colorsF,
	"scope":    scopeF,
	"ground":   groundF,
	"transit":  transitF,
	"path":     pathF,
	"straight": straightF,
	"smooth":   smoothF,
	"stations": stationsF,
	"station":  stationF,
	"vehicle":  vehicleF,
}

func mapF(c *docCursor, attrs []xml.Attr) error {
	if c.inMap {
		return errMisplaced
	}
	c.inMap = true
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			c.m.Width, err = parseFloat(attr.Value)
		case "height":
			c.m.Height, err = parseFloat(attr.Value)
		case "canvasWidth":
			c.m.CanvasWidth, err = parseFloat(attr.Value)
		case "canvasHeight":
			c.m.CanvasHeight, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func colorsF(c *docCursor, attrs []xml.Attr) error {
	if !c.inMap {
		return errMisplaced
	}
	c.inColors = true
	if c.m.Colors == nil {
		c.m.Colors = make(mapcanvas.ColorDefs)
	}
	return nil
}

func readColorDef(def *mapcanvas.ColorDef, attr xml.Attr) (err error) {
	switch attr.Name.Local {
	case "fill":
		def.Fill = attr.Value
	case "stroke":
		def.Stroke = attr.Value
	case "strokeWidth", "stroke-width":
		def.StrokeWidth, err = parseFloat(attr.Value)
	}
	return err
}

func scopeF(c *docCursor, attrs []xml.Attr) error {
	if !c.inColors {
		return errMisplaced
	}
	var (
		name string
		def  mapcanvas.ColorDef
	)
	for _, attr := range attrs {
		if attr.Name.Local == "name" {
			name = attr.Value
			continue
		}
		if err := readColorDef(&def, attr); err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("%w: missing scope name", errParamMismatch)
	}
	c.m.Colors[mapcanvas.Scope(name)] = def
	return nil
}

func groundF(c *docCursor, attrs []xml.Attr) error {
	if !c.inMap || c.transit >= 0 {
		return errMisplaced
	}
	c.m.ConcreteGroundPaths = append(c.m.ConcreteGroundPaths, mappath.LineDef{})
	c.target = groundTarget
	return nil
}

func transitF(c *docCursor, attrs []xml.Attr) error {
	if !c.inMap || c.transit >= 0 {
		return errMisplaced
	}
	t := mapcanvas.TransitLine{}
	var def mapcanvas.ColorDef
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			t.ID = attr.Value
			continue
		}
		if err := readColorDef(&def, attr); err != nil {
			return err
		}
	}
	if def != (mapcanvas.ColorDef{}) {
		t.Color = &def
	}
	c.m.Transits = append(c.m.Transits, t)
	c.transit = len(c.m.Transits) - 1
	return nil
}

func pathF(c *docCursor, attrs []xml.Attr) error {
	t := c.currentTransit()
	if t == nil || c.target != noTarget {
		return errMisplaced
	}
	p := mapcanvas.TransitPath{}
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			p.ID = attr.Value
		}
	}
	t.Paths = append(t.Paths, p)
	c.target = pathTarget
	return nil
}

func straightF(c *docCursor, attrs []xml.Attr) error {
	var (
		s   mappath.Straight
		err error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "from":
			s.From, err = parsePoint(attr.Value)
		case "to":
			s.To, err = parsePoint(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	return c.addSegment(s)
}

func smoothF(c *docCursor, _ []xml.Attr) error {
	return c.addSegment(mappath.SmoothJoint{})
}

func stationsF(c *docCursor, attrs []xml.Attr) error {
	t := c.currentTransit()
	if t == nil || c.inStations {
		return errMisplaced
	}
	c.inStations = true
	for _, attr := range attrs {
		if attr.Name.Local == "path" {
			c.stationsPath = attr.Value
		}
	}
	if t.Stations == nil {
		t.Stations = make(map[string][]mapmarker.Station)
	}
	return nil
}

func stationF(c *docCursor, attrs []xml.Attr) error {
	if !c.inStations {
		return errMisplaced
	}
	var st mapmarker.Station
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "id":
			st.ID = attr.Value
		case "location":
			var l float64
			l, err = parseFloat(attr.Value)
			st.Location = &l
		case "label":
			st.Label = attr.Value
		case "labelPosition":
			st.LabelPosition = mapmarker.LabelPosition(attr.Value)
		case "interchange":
			st.Interchange, err = parseBool(attr.Value)
		case "hidden":
			st.Hidden, err = parseBool(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	t := c.currentTransit()
	t.Stations[c.stationsPath] = append(t.Stations[c.stationsPath], st)
	return nil
}

func vehicleF(c *docCursor, attrs []xml.Attr) error {
	t := c.currentTransit()
	if t == nil {
		return errMisplaced
	}
	v := mapmarker.Vehicle{Direction: mapmarker.DirectionEnd}
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "id":
			v.ID = attr.Value
		case "path", "pathId":
			v.PathID = attr.Value
		case "location":
			v.Location, err = parseFloat(attr.Value)
		case "direction":
			switch d := mapmarker.Direction(attr.Value); d {
			case mapmarker.DirectionStart, mapmarker.DirectionEnd:
				v.Direction = d
			default:
				err = fmt.Errorf("%w: direction %q", errParamMismatch, attr.Value)
			}
		}
		if err != nil {
			return err
		}
	}
	t.Vehicles = append(t.Vehicles, v)
	return nil
}
