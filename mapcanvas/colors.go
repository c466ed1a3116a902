package mapcanvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Scope groups the color properties of one kind of map element.
type Scope string

const (
	ScopeOcean          Scope = "ocean"
	ScopeConcreteGround Scope = "concreteGround"
	ScopeTransit        Scope = "transit"
)

// Prop is a color property inside a Scope.
type Prop string

const (
	PropFill        Prop = "fill"
	PropStroke      Prop = "stroke"
	PropStrokeWidth Prop = "strokeWidth"
)

// ColorDef holds the paint of a scope. Empty strings
// and a zero StrokeWidth are undefined values.
type ColorDef struct {
	Fill        string  `yaml:"fill,omitempty" json:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
}

func (c ColorDef) color(prop Prop) string {
	switch prop {
	case PropFill:
		return c.Fill
	case PropStroke:
		return c.Stroke
	}
	return ""
}

// ColorDefs is a color theme.
type ColorDefs map[Scope]ColorDef

// DefaultColors is the built-in theme, used for values
// missing from the caller theme.
var DefaultColors = ColorDefs{
	ScopeOcean:          {Fill: "#9AC0F8"},
	ScopeConcreteGround: {Fill: "#F8F9FA"},
	ScopeTransit:        {Stroke: "#996633"},
}

// ResolveColor looks up the color prop of scope in theme, then in builtin.
// It returns false if neither defines it.
func ResolveColor(scope Scope, prop Prop, theme, builtin ColorDefs) (string, bool) {
	if v := theme[scope].color(prop); v != "" {
		return v, true
	}
	if v := builtin[scope].color(prop); v != "" {
		return v, true
	}
	return "", false
}

// ResolveStrokeWidth is the same as ResolveColor, for the stroke width.
func ResolveStrokeWidth(scope Scope, theme, builtin ColorDefs) (float64, bool) {
	if w := theme[scope].StrokeWidth; w != 0 {
		return w, true
	}
	if w := builtin[scope].StrokeWidth; w != 0 {
		return w, true
	}
	return 0, false
}

var errScopePath = errors.New("invalid color path")

// ParseScopePath splits a dotted color path like "ocean.fill".
func ParseScopePath(path string) (Scope, Prop, error) {
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", "", fmt.Errorf("%w: %q", errScopePath, path)
	}
	switch prop := Prop(parts[1]); prop {
	case PropFill, PropStroke, PropStrokeWidth:
		return Scope(parts[0]), prop, nil
	default:
		return "", "", fmt.Errorf("%w: unknown property %q", errScopePath, parts[1])
	}
}

// ColorAt resolves a dotted color path against theme and DefaultColors.
// Stroke widths are formatted as numbers.
func ColorAt(theme ColorDefs, path string) (string, bool) {
	scope, prop, err := ParseScopePath(path)
	if err != nil {
		return "", false
	}
	if prop == PropStrokeWidth {
		w, ok := ResolveStrokeWidth(scope, theme, DefaultColors)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(w, 'f', -1, 64), true
	}
	return ResolveColor(scope, prop, theme, DefaultColors)
}

var errColor = errors.New("invalid color")

// ParseColor parses a CSS color: #rgb, #rrggbb, #rrggbbaa,
// rgb(r,g,b), rgba(r,g,b,a), named colors, "none" and "transparent".
// "none" and "transparent" return the zero color.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "none", "transparent":
		return color.NRGBA{}, nil
	case "":
		return color.NRGBA{}, fmt.Errorf("%w: empty string", errColor)
	}

	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if strings.HasPrefix(v, "rgb") {
		return parseRGBColor(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", errColor, s)
}

func parseHexColor(h string) (color.NRGBA, error) {
	switch len(h) {
	case 3, 4: // expand each digit
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: #%s", errColor, h)
	}
	if len(h) == 6 {
		h += "ff"
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: #%s", errColor, h)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

func parseRGBColor(v string) (color.NRGBA, error) {
	open, end := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if open < 0 || end < open {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errColor, v)
	}
	fields := strings.FieldsFunc(v[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", errColor, v)
	}
	var out [4]uint8
	out[3] = 0xff
	for i, f := range fields {
		var (
			x   float64
			err error
		)
		if strings.HasSuffix(f, "%") {
			x, err = strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			x = x * 255 / 100
		} else {
			x, err = strconv.ParseFloat(f, 64)
			if i == 3 { // alpha in [0,1]
				x *= 255
			}
		}
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", errColor, v)
		}
		if x < 0 {
			x = 0
		} else if x > 255 {
			x = 255
		}
		out[i] = uint8(x + 0.5)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
