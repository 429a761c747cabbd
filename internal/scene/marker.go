package scene

import (
	"time"

	"github.com/skyfuse/skyfuse/internal/astro"
)

// Shell radii for the layered globe. Markers sit strictly outside the
// planet surface; the star shell is far enough out that background
// stars never occlude anything.
const (
	PlanetRadius    = 10.0
	ShellRadius     = 10.2
	StarShellRadius = 60.0
)

// EventRecord is one transient event as delivered by the data feed.
// Records are immutable once loaded; identity is the ID.
type EventRecord struct {
	ID     string
	Source Source
	Time   time.Time
	RAdeg  float64 // right ascension, degrees [0,360)
	DecDeg float64 // declination, degrees [-90,90]
}

// Marker is the pickable proxy for one EventRecord on the shell. The
// base position is fixed at creation; Scale and Emissive are the two
// independent emphasis channels and are mutated only by the interaction
// state machine.
type Marker struct {
	Record   *EventRecord
	Position astro.Vec3 // base position on the shell, before rotation
	Style    Style

	Scale    float64 // geometric emphasis (hover channel)
	Emissive float64 // glow intensity (selection channel)
}

// WorldPosition returns the marker's position under the shared planet
// rotation.
func (m *Marker) WorldPosition(rotation float64) astro.Vec3 {
	return astro.RotateY(m.Position, rotation)
}

// CorrelationEdge is a line between two correlated markers. Endpoint
// positions are copied by value at creation: markers never move
// independently of the shared rotation, so the copies stay valid.
type CorrelationEdge struct {
	AID, BID string
	A, B     astro.Vec3
}
