package mapcanvas

import (
	"testing"

	"github.com/crederauk/svgmapcanvas/mappath"
)

func straight(x0, y0, x1, y1 float64) mappath.Path {
	return mappath.Compile(mappath.LineDef{mappath.Straight{From: mappath.Pt(x0, y0), To: mappath.Pt(x1, y1)}})
}

func TestRegistryAttach(t *testing.T) {
	r := NewRegistry()
	id, changed := r.Attach("a", straight(0, 0, 10, 0))
	if !changed || r.Len() != 1 {
		t.Fatalf("expected a new entry, got changed=%v len=%d", changed, r.Len())
	}
	first := r.Curve(id)

	// unchanged path data keeps the handle and the curve
	id2, changed := r.Attach("a", straight(0, 0, 10, 0))
	if changed || id2 != id || r.Curve(id2) != first {
		t.Errorf("re-attaching an unchanged path should be a no-op")
	}

	id3, changed := r.Attach("a", straight(0, 0, 20, 0))
	if !changed || id3 != id {
		t.Errorf("a modified path should replace the curve in place")
	}
	h, ok := r.Lookup("a")
	if !ok || h.TotalLength() != 20 {
		t.Errorf("unexpected lookup %v %v", h, ok)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("unexpected curve for unknown path")
	}
	if r.Curve(42) != nil || r.Curve(-1) != nil {
		t.Error("out of range handles should return nil")
	}
}

func TestRegistryPrune(t *testing.T) {
	r := NewRegistry()
	idA, _ := r.Attach("a", straight(0, 0, 1, 0))
	r.Attach("b", straight(0, 0, 2, 0))
	r.Attach("c", straight(0, 0, 3, 0))

	if n := r.Prune(map[string]bool{"b": true, "c": true}); n != 1 {
		t.Fatalf("expected 1 pruned entry, got %d", n)
	}
	if _, ok := r.Lookup("a"); ok || r.Len() != 2 {
		t.Errorf("a should be pruned")
	}
	if r.Curve(idA) != nil {
		t.Error("pruned slot should be empty")
	}

	// the free slot is reused
	idD, changed := r.Attach("d", straight(0, 0, 4, 0))
	if !changed || idD != idA {
		t.Errorf("expected slot %d to be reused, got %d", idA, idD)
	}
	if h, _ := r.Lookup("b"); h.TotalLength() != 2 {
		t.Error("other handles must be stable")
	}
}
