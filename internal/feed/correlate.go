package feed

import (
	"time"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/scene"
)

const (
	// CorrelationWindow is the maximum time difference for two events
	// to count as coincident.
	CorrelationWindow = 600 * time.Second

	// SeparationThresholdDeg is the maximum angular separation for a
	// coincidence. Deliberately generous: GW sky positions are crude.
	SeparationThresholdDeg = 5.0
)

// Correlate finds cross-survey coincidences: every pair of events from
// different sources within the time window and separation threshold.
// Pair order follows input order, matching the aggregate feed contract.
func Correlate(events []scene.EventRecord) [][2]string {
	var pairs [][2]string

	for i, a := range events {
		for _, b := range events[i+1:] {
			if a.Source == b.Source {
				continue
			}

			dt := a.Time.Sub(b.Time)
			if dt < 0 {
				dt = -dt
			}
			if dt >= CorrelationWindow {
				continue
			}

			if astro.Separation(a.RAdeg, a.DecDeg, b.RAdeg, b.DecDeg) < SeparationThresholdDeg {
				pairs = append(pairs, [2]string{a.ID, b.ID})
			}
		}
	}

	return pairs
}
