// Package interact owns hover and selection state for the scene and
// applies visual emphasis to markers. Hover drives the scale channel,
// selection drives the emissive channel; the two are independent and
// may both be active on one marker.
package interact

import (
	"fmt"

	"github.com/skyfuse/skyfuse/internal/scene"
)

// Emphasis levels for the two channels.
const (
	BaseScale  = 1.0
	HoverScale = 1.8

	BaseEmissive     = 0.0
	SelectedEmissive = 0.6
)

// PanelSink receives the record of a newly selected marker. The info
// panel implements this; tests substitute their own.
type PanelSink interface {
	ShowEvent(rec *scene.EventRecord)
}

// Machine is the interaction state machine. At most one marker is
// hovered and at most one is selected at any time; a marker may be
// both. All methods run on the UI goroutine.
type Machine struct {
	registry *scene.Registry
	panel    PanelSink

	hovered  *scene.Marker
	selected *scene.Marker
}

// NewMachine creates a state machine over a loaded registry. panel may
// be nil if no info panel is attached.
func NewMachine(registry *scene.Registry, panel PanelSink) *Machine {
	return &Machine{
		registry: registry,
		panel:    panel,
	}
}

// Hovered returns the currently hovered marker, or nil.
func (s *Machine) Hovered() *scene.Marker {
	return s.hovered
}

// Selected returns the currently selected marker, or nil.
func (s *Machine) Selected() *scene.Marker {
	return s.selected
}

// OnFrame applies the per-frame hover result. The outgoing hovered
// marker's scale always reverts to baseline, selected or not; scale is
// the hover channel and selection owns only the emissive channel.
func (s *Machine) OnFrame(pickResult *scene.Marker) {
	if pickResult == s.hovered {
		return
	}
	s.checkOwned(pickResult)

	if s.hovered != nil {
		s.hovered.Scale = BaseScale
	}
	s.hovered = pickResult
	if s.hovered != nil {
		s.hovered.Scale = HoverScale
	}
}

// OnClick applies a discrete click result. A click on empty space is a
// no-op: deselection happens only through the panel's close signal.
func (s *Machine) OnClick(pickResult *scene.Marker) {
	if pickResult == nil {
		return
	}
	s.checkOwned(pickResult)

	if s.selected != nil {
		s.selected.Emissive = BaseEmissive
	}
	s.selected = pickResult
	s.selected.Emissive = SelectedEmissive

	if s.panel != nil {
		s.panel.ShowEvent(s.selected.Record)
	}
}

// OnPanelClose clears the selection. Hover is unaffected.
func (s *Machine) OnPanelClose() {
	if s.selected == nil {
		return
	}
	s.selected.Emissive = BaseEmissive
	s.selected = nil
}

// checkOwned panics on a pick result that is not in the registry. The
// registry is append-only for the session, so this can only be a
// programming error, never a data condition.
func (s *Machine) checkOwned(m *scene.Marker) {
	if m == nil || s.registry.Contains(m) {
		return
	}
	id := "<no record>"
	if m.Record != nil {
		id = m.Record.ID
	}
	panic(fmt.Sprintf("interact: pick result %q not in registry", id))
}
