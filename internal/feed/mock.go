package feed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/skyfuse/skyfuse/internal/scene"
)

// MockEventCount is the size of the fallback dataset.
const MockEventCount = 20

// MockEvents generates a fallback set of fake ZTF events scattered over
// the sphere, timestamped within the last hour. Used when ALERCE is
// unreachable and in demo mode.
func MockEvents(n int) []scene.EventRecord {
	now := time.Now().UTC()
	events := make([]scene.EventRecord, 0, n)

	for i := 0; i < n; i++ {
		age := time.Duration((1 + rand.Float64()*59) * float64(time.Minute))
		events = append(events, scene.EventRecord{
			ID:     fmt.Sprintf("MOCK_ZTF_%d", i),
			Source: scene.SourceZTF,
			Time:   now.Add(-age),
			RAdeg:  rand.Float64() * 360,
			DecDeg: rand.Float64()*180 - 90,
		})
	}

	return events
}

// Demo returns a self-contained dataset: mock events plus a synthetic
// GW counterpart near one of them so a correlation edge is always
// visible.
func Demo() ([]scene.EventRecord, [][2]string) {
	events := MockEvents(MockEventCount)

	counterpart := scene.EventRecord{
		ID:     "GW_DEMO",
		Source: scene.SourceGWOSC,
		Time:   events[0].Time.Add(2 * time.Minute),
		RAdeg:  events[0].RAdeg + 1.5,
		DecDeg: events[0].DecDeg,
	}
	events = append(events, counterpart)

	return events, Correlate(events)
}
