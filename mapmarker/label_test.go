package mapmarker

import (
	"testing"

	"github.com/crederauk/svgmapcanvas/mappath"
	"github.com/google/go-cmp/cmp"
)

func TestLayoutLabel(t *testing.T) {
	tests := []struct {
		pos  LabelPosition
		want LabelLayout
	}{
		{Top, LabelLayout{DY: -5, Anchor: AnchorStart, Baseline: BaselineAuto, Origin: OriginLeft}},
		{Bottom, LabelLayout{DY: 5, Anchor: AnchorEnd, Baseline: BaselineHanging, Origin: OriginRight}},
		{Left, LabelLayout{DX: -7, Anchor: AnchorEnd, Baseline: BaselineMiddle, Origin: OriginRight}},
		{Right, LabelLayout{DX: 7, Anchor: AnchorStart, Baseline: BaselineMiddle, Origin: OriginLeft}},
		{TopLeft, LabelLayout{DX: -7, DY: -5, Anchor: AnchorEnd, Baseline: BaselineAuto, Origin: OriginRight}},
		{TopRight, LabelLayout{DX: 7, DY: -5, Anchor: AnchorStart, Baseline: BaselineAuto, Origin: OriginLeft}},
		{BottomRight, LabelLayout{DX: 7, DY: 5, Anchor: AnchorStart, Baseline: BaselineHanging, Origin: OriginLeft}},
		{BottomLeft, LabelLayout{DX: -6, DY: 0, Anchor: AnchorEnd, Baseline: BaselineHanging, Origin: OriginRight}},
		{"center", LabelLayout{Anchor: AnchorMiddle, Baseline: BaselineMiddle}},
		{"", LabelLayout{Anchor: AnchorMiddle, Baseline: BaselineMiddle}},
	}
	for _, tc := range tests {
		t.Run(string(tc.pos), func(t *testing.T) {
			if diff := cmp.Diff(tc.want, LayoutLabel(tc.pos)); diff != "" {
				t.Errorf("LayoutLabel(%q) mismatch (-want +got):\n%s", tc.pos, diff)
			}
		})
	}
}

func TestOriginOrDefault(t *testing.T) {
	if got := LayoutLabel("nowhere").OriginOrDefault(); got != DefaultLabelOrigin {
		t.Errorf("expected default origin, got %q", got)
	}
	if got := LayoutLabel(Right).OriginOrDefault(); got != OriginLeft {
		t.Errorf("expected left origin, got %q", got)
	}
}

func TestPlaceLabel(t *testing.T) {
	loc := 0.5
	m, ok := PlaceStation(Station{ID: "s", Location: &loc, Label: "Central"}, mappath.Pt(10, 20), 0, "red")
	if !ok || m.Label == nil {
		t.Fatal("expected a labelled station")
	}
	want := Label{
		Text:     "Central",
		Pos:      mappath.Pt(3, 20),
		Layout:   LayoutLabel(Left),
		Rotation: -25,
		FontSize: 6,
	}
	if diff := cmp.Diff(want, *m.Label); diff != "" {
		t.Errorf("label mismatch (-want +got):\n%s", diff)
	}

	m, _ = PlaceStation(Station{ID: "s", Location: &loc, Label: "Docks", LabelPosition: BottomLeft}, mappath.Pt(10, 20), 0, "red")
	if m.Label.Pos != mappath.Pt(4, 20) {
		t.Errorf("bottom-left label at %v, expected (4,20)", m.Label.Pos)
	}
}
