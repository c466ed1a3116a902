package mapcanvas

import (
	"github.com/rs/zerolog"

	"github.com/crederauk/svgmapcanvas/mappath"
)

// Canvas renders maps, keeping the curves of the transit paths
// between render passes. It is not safe for concurrent use.
type Canvas struct {
	registry *Registry
	logger   zerolog.Logger
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger used for debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Canvas) { c.logger = l }
}

// WithRegistry makes the canvas use (and fill) r.
func WithRegistry(r *Registry) Option {
	return func(c *Canvas) { c.registry = r }
}

// New returns a canvas with an empty registry and a no-op logger.
func New(opts ...Option) *Canvas {
	c := &Canvas{registry: NewRegistry(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the curve registry of the canvas.
func (c *Canvas) Registry() *Registry { return c.registry }

func (c *Canvas) compile(id string, line mappath.LineDef) mappath.Path {
	for _, issue := range mappath.JointIssues(line) {
		c.logger.Debug().
			Str("path", id).
			Int("segment", issue.Index).
			Str("reason", issue.Kind.String()).
			Msg("smoothing joint skipped")
	}
	return mappath.Compile(line)
}

// Materialize compiles the transit paths of m and attaches them to the
// registry. Entries of paths no longer in m are pruned.
// It returns the transit shapes and whether the registry changed.
func (c *Canvas) Materialize(m Map) ([]Shape, bool) {
	var (
		shapes  []Shape
		changed bool
	)
	live := make(map[string]bool)
	for _, t := range m.Transits {
		stroke := m.transitStroke(t)
		for _, tp := range t.Paths {
			p := c.compile(tp.ID, tp.Line)
			if _, ch := c.registry.Attach(tp.ID, p); ch {
				c.logger.Debug().Str("path", tp.ID).Msg("curve attached")
				changed = true
			}
			live[tp.ID] = true
			shapes = append(shapes, Shape{
				ID:          tp.ID,
				Path:        p,
				Fill:        "none",
				Stroke:      stroke,
				StrokeWidth: TransitStrokeWidth,
			})
		}
	}
	if n := c.registry.Prune(live); n > 0 {
		c.logger.Debug().Int("removed", n).Msg("registry pruned")
		changed = true
	}
	return shapes, changed
}

// Render validates m and builds its scene: pass 1 materializes the
// transit curves, pass 2 places the markers along them.
func (c *Canvas) Render(m Map) (*Scene, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	m = m.WithDefaults()

	s := &Scene{
		Width:        m.Width,
		Height:       m.Height,
		CanvasWidth:  m.CanvasWidth,
		CanvasHeight: m.CanvasHeight,
		handlers:     m.Handlers,
	}
	s.Ocean = Rect{W: m.CanvasWidth, H: m.CanvasHeight}
	s.Ocean.Fill, _ = ResolveColor(ScopeOcean, PropFill, m.Colors, DefaultColors)

	fill, _ := ResolveColor(ScopeConcreteGround, PropFill, m.Colors, DefaultColors)
	stroke, _ := ResolveColor(ScopeConcreteGround, PropStroke, m.Colors, DefaultColors)
	width, _ := ResolveStrokeWidth(ScopeConcreteGround, m.Colors, DefaultColors)
	for _, line := range m.ConcreteGroundPaths {
		s.Ground = append(s.Ground, Shape{
			Path:             c.compile("ground", line),
			Fill:             fill,
			Stroke:           stroke,
			StrokeWidth:      width,
			PaintOrderStroke: true,
		})
	}

	var changed bool
	s.Transit, changed = c.Materialize(m)
	if changed {
		c.logger.Debug().Int("curves", c.registry.Len()).Msg("registry changed, placing markers")
	}

	markers := PlaceMarkers(m, c.registry.Lookup)
	for _, pathID := range markers.Missing {
		c.logger.Debug().Str("path", pathID).Msg("markers omitted, no curve attached")
	}
	s.Gradients = markers.Gradients
	s.Stations = markers.Stations
	s.Vehicles = markers.Vehicles
	return s, nil
}
