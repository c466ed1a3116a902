package mapcanvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestResolveColor(t *testing.T) {
	theme := ColorDefs{
		ScopeOcean:          {Fill: "#000080"},
		ScopeConcreteGround: {Stroke: "#111", StrokeWidth: 2},
	}
	tests := []struct {
		scope Scope
		prop  Prop
		want  string
		ok    bool
	}{
		{ScopeOcean, PropFill, "#000080", true},          // explicit theme
		{ScopeConcreteGround, PropFill, "#F8F9FA", true}, // built-in
		{ScopeConcreteGround, PropStroke, "#111", true},
		{ScopeTransit, PropStroke, "#996633", true},
		{ScopeTransit, PropFill, "", false}, // undefined
		{"roads", PropFill, "", false},
	}
	for _, tc := range tests {
		got, ok := ResolveColor(tc.scope, tc.prop, theme, DefaultColors)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ResolveColor(%s, %s) = %q, %v; expected %q, %v", tc.scope, tc.prop, got, ok, tc.want, tc.ok)
		}
	}

	if w, ok := ResolveStrokeWidth(ScopeConcreteGround, theme, DefaultColors); !ok || w != 2 {
		t.Errorf("unexpected stroke width %v, %v", w, ok)
	}
	if _, ok := ResolveStrokeWidth(ScopeTransit, theme, DefaultColors); ok {
		t.Error("transit stroke width should be undefined")
	}
	if got, ok := ResolveColor(ScopeOcean, PropFill, nil, DefaultColors); !ok || got != "#9AC0F8" {
		t.Errorf("nil theme: got %q, %v", got, ok)
	}
}

func TestColorAt(t *testing.T) {
	theme := ColorDefs{ScopeConcreteGround: {StrokeWidth: 0.5}}
	for path, want := range map[string]string{
		"ocean.fill":                 "#9AC0F8",
		"transit.stroke":             "#996633",
		"concreteGround.strokeWidth": "0.5",
	} {
		if got, ok := ColorAt(theme, path); !ok || got != want {
			t.Errorf("ColorAt(%q) = %q, %v; expected %q", path, got, ok, want)
		}
	}
	for _, path := range []string{"ocean", "ocean.fill.x", ".fill", "ocean.color", "transit.fill"} {
		if got, ok := ColorAt(theme, path); ok {
			t.Errorf("ColorAt(%q) = %q, expected undefined", path, got)
		}
	}
}

func TestParseScopePath(t *testing.T) {
	scope, prop, err := ParseScopePath("concreteGround.strokeWidth")
	if err != nil || scope != ScopeConcreteGround || prop != PropStrokeWidth {
		t.Errorf("unexpected %s %s %v", scope, prop, err)
	}
	if _, _, err := ParseScopePath("ocean"); !errors.Is(err, errScopePath) {
		t.Errorf("expected errScopePath, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#9AC0F8", color.NRGBA{0x9a, 0xc0, 0xf8, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#00000080", color.NRGBA{0, 0, 0, 0x80}},
		{"#f008", color.NRGBA{0xff, 0, 0, 0x88}},
		{"rgb(255, 0, 10)", color.NRGBA{255, 0, 10, 255}},
		{"rgba(0,0,0,0.5)", color.NRGBA{0, 0, 0, 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"red", color.NRGBA{0xff, 0, 0, 0xff}},
		{" CornflowerBlue ", color.NRGBA{0x64, 0x95, 0xed, 0xff}},
		{"none", color.NRGBA{}},
		{"transparent", color.NRGBA{}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %s", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "rgb(1,2,3", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, errColor) {
			t.Errorf("ParseColor(%q): expected errColor, got %v", in, err)
		}
	}
}
