package mapcanvas

import "github.com/crederauk/svgmapcanvas/mappath"

// HandleID addresses a curve stored in a Registry.
type HandleID int

// entry is a materialized curve, with the path data
// used to detect changes
type entry struct {
	pathID string
	d      string
	curve  *mappath.Curve // nil for free slots
}

// Registry maps path identities to their sampleable curves.
// Curves are stored in a slice and addressed by HandleID,
// which is stable until the entry is pruned.
// A Registry is not safe for concurrent use.
type Registry struct {
	entries []entry
	index   map[string]HandleID
	free    []HandleID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]HandleID)}
}

// Attach materializes p as the curve of pathID, replacing the previous one.
// An unchanged path keeps its handle. The returned boolean reports whether
// the registry was modified.
func (r *Registry) Attach(pathID string, p mappath.Path) (HandleID, bool) {
	d := p.ToSVGPath()
	if id, ok := r.index[pathID]; ok {
		e := &r.entries[id]
		if e.d == d {
			return id, false
		}
		e.d, e.curve = d, mappath.Measure(p)
		return id, true
	}

	e := entry{pathID: pathID, d: d, curve: mappath.Measure(p)}
	var id HandleID
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
		r.entries[id] = e
	} else {
		id = HandleID(len(r.entries))
		r.entries = append(r.entries, e)
	}
	r.index[pathID] = id
	return id, true
}

// Lookup returns the curve attached for pathID.
func (r *Registry) Lookup(pathID string) (mappath.Sampleable, bool) {
	id, ok := r.index[pathID]
	if !ok {
		return nil, false
	}
	return r.entries[id].curve, true
}

// Curve returns the curve stored at id, or nil.
func (r *Registry) Curve(id HandleID) *mappath.Curve {
	if id < 0 || int(id) >= len(r.entries) {
		return nil
	}
	return r.entries[id].curve
}

// Len returns the number of attached curves.
func (r *Registry) Len() int { return len(r.index) }

// Prune removes the entries whose path identity is not in live,
// and returns the number of removed entries.
func (r *Registry) Prune(live map[string]bool) int {
	removed := 0
	for pathID, id := range r.index {
		if live[pathID] {
			continue
		}
		delete(r.index, pathID)
		r.entries[id] = entry{}
		r.free = append(r.free, id)
		removed++
	}
	return removed
}
