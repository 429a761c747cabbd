package scene

import "github.com/skyfuse/skyfuse/internal/astro"

// Registry owns the scene graph for the session: one marker per loaded
// event plus the correlation edges between them. All loading happens
// before interaction begins; after that the registry is append-only and
// read from the single UI goroutine.
type Registry struct {
	byID    map[string]*Marker
	markers []*Marker // iteration order = load order
	edges   []CorrelationEdge
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Marker),
	}
}

// LoadEvents projects each record onto the marker shell and creates its
// marker. A record whose ID is already present is skipped (first record
// wins); IDs are the identity and must be unique.
func (r *Registry) LoadEvents(events []EventRecord) {
	for i := range events {
		rec := events[i]
		if _, exists := r.byID[rec.ID]; exists {
			continue
		}

		m := &Marker{
			Record:   &rec,
			Position: astro.Project(rec.RAdeg, rec.DecDeg, ShellRadius),
			Style:    StyleFor(rec.Source),
			Scale:    1.0,
		}
		r.byID[rec.ID] = m
		r.markers = append(r.markers, m)
	}
}

// LoadCorrelations creates an edge for each pair whose endpoints both
// resolve to loaded markers. Pairs with an unknown endpoint are
// silently dropped: sparse cross-survey data makes dangling references
// an expected condition, not an error.
func (r *Registry) LoadCorrelations(pairs [][2]string) {
	for _, p := range pairs {
		a, okA := r.byID[p[0]]
		b, okB := r.byID[p[1]]
		if !okA || !okB {
			continue
		}

		r.edges = append(r.edges, CorrelationEdge{
			AID: p[0],
			BID: p[1],
			A:   a.Position,
			B:   b.Position,
		})
	}
}

// AllMarkers returns the markers in load order. The slice is shared;
// callers iterate, they do not modify.
func (r *Registry) AllMarkers() []*Marker {
	return r.markers
}

// Edges returns the correlation edges in load order.
func (r *Registry) Edges() []CorrelationEdge {
	return r.edges
}

// Lookup returns the marker for an event ID, or nil.
func (r *Registry) Lookup(id string) *Marker {
	return r.byID[id]
}

// Contains reports whether a marker instance belongs to this registry.
// Used by the interaction layer to detect stale pick results.
func (r *Registry) Contains(m *Marker) bool {
	if m == nil || m.Record == nil {
		return false
	}
	return r.byID[m.Record.ID] == m
}

// Correlated reports whether an event ID participates in any edge.
func (r *Registry) Correlated(id string) bool {
	for _, e := range r.edges {
		if e.AID == id || e.BID == id {
			return true
		}
	}
	return false
}
