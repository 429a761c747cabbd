// Package feed acquires transient-event data: an aggregate JSON feed,
// live ZTF/GWOSC source clients with a mock fallback, and the
// cross-survey correlator.
package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skyfuse/skyfuse/internal/scene"
)

// Event is the wire shape of one event in the aggregate payload.
type Event struct {
	ID     string    `json:"id"`
	Source string    `json:"source"`
	Time   time.Time `json:"time"`
	RA     float64   `json:"ra"`
	Dec    float64   `json:"dec"`
}

// Payload is the aggregate feed document. This schema is the only
// bit-exact contract the application consumes.
type Payload struct {
	AllEvents    []Event     `json:"all_events"`
	Correlations [][2]string `json:"correlations"`
}

// DecodePayload parses an aggregate feed document.
func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode feed payload: %w", err)
	}
	return p, nil
}

// Records converts the wire events to scene records, normalizing the
// source names. Order is preserved.
func (p Payload) Records() []scene.EventRecord {
	records := make([]scene.EventRecord, 0, len(p.AllEvents))
	for _, e := range p.AllEvents {
		records = append(records, scene.EventRecord{
			ID:     e.ID,
			Source: scene.ParseSource(e.Source),
			Time:   e.Time,
			RAdeg:  e.RA,
			DecDeg: e.Dec,
		})
	}
	return records
}
