// Package mapcanvas assembles transit maps into a flat display list.
//
// A Canvas renders a Map in two passes: the transit paths are first
// compiled and attached to a Registry, then stations and vehicles are
// sampled along the attached curves. The resulting Scene is consumed
// by the encoders and drivers of the mapsvg, mapraster and mappdf packages.
package mapcanvas

import (
	"errors"
	"fmt"

	"github.com/crederauk/svgmapcanvas/mapmarker"
	"github.com/crederauk/svgmapcanvas/mappath"
)

// Default map size, in user units.
const (
	DefaultWidth  = 1200.
	DefaultHeight = 850.
)

// TransitStrokeWidth is the width of transit lines.
const TransitStrokeWidth = 3.

// ErrNegativeSize is returned when a map has a negative dimension.
var ErrNegativeSize = errors.New("negative size")

// TransitPath is one drawable line of a transit network.
type TransitPath struct {
	ID   string
	Line mappath.LineDef
}

// TransitLine is a transit network: its paths, the stations along
// each path (keyed by path ID), and the vehicles riding them.
type TransitLine struct {
	ID       string
	Paths    []TransitPath
	Stations map[string][]mapmarker.Station
	Vehicles []mapmarker.Vehicle
	Color    *ColorDef // optional override of the transit theme
}

// Map is the input of a render pass.
// Zero Width and Height are replaced by the defaults,
// and a zero canvas size by the map size.
type Map struct {
	Width, Height             float64 // output size
	CanvasWidth, CanvasHeight float64 // size of the view box

	Colors              ColorDefs
	ConcreteGroundPaths []mappath.LineDef
	Transits            []TransitLine

	Handlers Handlers
}

// Validate checks the map dimensions.
func (m Map) Validate() error {
	for _, v := range [...]struct {
		name string
		v    float64
	}{
		{"width", m.Width}, {"height", m.Height},
		{"canvas width", m.CanvasWidth}, {"canvas height", m.CanvasHeight},
	} {
		if v.v < 0 {
			return fmt.Errorf("%s %g: %w", v.name, v.v, ErrNegativeSize)
		}
	}
	return nil
}

// WithDefaults returns a copy of m with its sizes filled.
func (m Map) WithDefaults() Map {
	if m.Width == 0 {
		m.Width = DefaultWidth
	}
	if m.Height == 0 {
		m.Height = DefaultHeight
	}
	if m.CanvasWidth == 0 {
		m.CanvasWidth = m.Width
	}
	if m.CanvasHeight == 0 {
		m.CanvasHeight = m.Height
	}
	return m
}

// transitStroke returns the stroke color of the transit t.
func (m Map) transitStroke(t TransitLine) string {
	if t.Color != nil && t.Color.Stroke != "" {
		return t.Color.Stroke
	}
	c, _ := ResolveColor(ScopeTransit, PropStroke, m.Colors, DefaultColors)
	return c
}
