package interact

import (
	"strings"
	"testing"
	"time"

	"github.com/skyfuse/skyfuse/internal/scene"
)

type recordingPanel struct {
	shown []*scene.EventRecord
}

func (p *recordingPanel) ShowEvent(rec *scene.EventRecord) {
	p.shown = append(p.shown, rec)
}

func newFixture(t *testing.T) (*scene.Registry, *Machine, *recordingPanel) {
	t.Helper()
	r := scene.NewRegistry()
	r.LoadEvents([]scene.EventRecord{
		{ID: "A", Source: scene.SourceZTF, Time: time.Now(), RAdeg: 10, DecDeg: 0},
		{ID: "B", Source: scene.SourceGWOSC, Time: time.Now(), RAdeg: 50, DecDeg: 20},
		{ID: "C", Source: scene.SourceHEASARC, Time: time.Now(), RAdeg: 200, DecDeg: -30},
	})
	panel := &recordingPanel{}
	return r, NewMachine(r, panel), panel
}

// countEmphasized verifies the exclusivity invariant: at most one
// marker enlarged and at most one emissive at any time.
func countEmphasized(r *scene.Registry) (scaled, emissive int) {
	for _, m := range r.AllMarkers() {
		if m.Scale != BaseScale {
			scaled++
		}
		if m.Emissive != BaseEmissive {
			emissive++
		}
	}
	return scaled, emissive
}

func TestOnFrame_HoverMoves(t *testing.T) {
	r, sm, _ := newFixture(t)
	a, b := r.Lookup("A"), r.Lookup("B")

	sm.OnFrame(a)
	if sm.Hovered() != a || a.Scale != HoverScale {
		t.Fatalf("hover A: hovered=%v scale=%v", sm.Hovered(), a.Scale)
	}

	sm.OnFrame(b)
	if a.Scale != BaseScale {
		t.Errorf("A scale = %v after hover moved, want baseline", a.Scale)
	}
	if b.Scale != HoverScale {
		t.Errorf("B scale = %v, want hover scale", b.Scale)
	}
	if scaled, _ := countEmphasized(r); scaled != 1 {
		t.Errorf("%d markers enlarged, want exactly 1", scaled)
	}
}

func TestOnFrame_SamePickIsStable(t *testing.T) {
	r, sm, _ := newFixture(t)
	a := r.Lookup("A")

	sm.OnFrame(a)
	sm.OnFrame(a)
	sm.OnFrame(a)
	if a.Scale != HoverScale || sm.Hovered() != a {
		t.Errorf("repeated identical pick changed state: scale=%v", a.Scale)
	}
}

func TestOnFrame_HoverOff(t *testing.T) {
	r, sm, _ := newFixture(t)
	a := r.Lookup("A")

	sm.OnFrame(a)
	sm.OnFrame(nil)
	if sm.Hovered() != nil {
		t.Error("hovered not cleared")
	}
	if a.Scale != BaseScale {
		t.Errorf("A scale = %v after hover off, want baseline", a.Scale)
	}
}

func TestOnClick_SelectAndReselect(t *testing.T) {
	r, sm, panel := newFixture(t)
	a, b := r.Lookup("A"), r.Lookup("B")

	sm.OnClick(a)
	if sm.Selected() != a || a.Emissive != SelectedEmissive {
		t.Fatalf("select A: selected=%v emissive=%v", sm.Selected(), a.Emissive)
	}

	sm.OnClick(b)
	if a.Emissive != BaseEmissive {
		t.Errorf("A emissive = %v after reselect, want 0", a.Emissive)
	}
	if b.Emissive != SelectedEmissive {
		t.Errorf("B emissive = %v, want selected level", b.Emissive)
	}
	if _, emissive := countEmphasized(r); emissive != 1 {
		t.Errorf("%d markers emissive, want exactly 1", emissive)
	}

	// Panel saw A then B
	if len(panel.shown) != 2 || panel.shown[0].ID != "A" || panel.shown[1].ID != "B" {
		t.Errorf("panel sequence = %v", panel.shown)
	}
}

func TestOnClick_EmptySpaceIsNoOp(t *testing.T) {
	r, sm, panel := newFixture(t)
	a := r.Lookup("A")

	sm.OnClick(a)
	sm.OnClick(nil)

	if sm.Selected() != a || a.Emissive != SelectedEmissive {
		t.Error("click on empty space changed selection")
	}
	if len(panel.shown) != 1 {
		t.Errorf("panel shown %d times, want 1", len(panel.shown))
	}
}

func TestOnPanelClose(t *testing.T) {
	r, sm, _ := newFixture(t)
	a, b := r.Lookup("A"), r.Lookup("B")

	sm.OnFrame(b) // hover elsewhere
	sm.OnClick(a)
	sm.OnPanelClose()

	if sm.Selected() != nil {
		t.Error("selected not cleared on panel close")
	}
	if a.Emissive != BaseEmissive {
		t.Errorf("A emissive = %v after close, want 0", a.Emissive)
	}
	if sm.Hovered() != b || b.Scale != HoverScale {
		t.Error("panel close disturbed hover state")
	}

	// Closing again is harmless
	sm.OnPanelClose()
	if sm.Selected() != nil {
		t.Error("second close changed state")
	}
}

func TestHoveredAndSelectedSameMarker(t *testing.T) {
	r, sm, _ := newFixture(t)
	a := r.Lookup("A")

	sm.OnFrame(a)
	sm.OnClick(a)
	if a.Scale != HoverScale || a.Emissive != SelectedEmissive {
		t.Fatalf("both channels should be active: scale=%v emissive=%v", a.Scale, a.Emissive)
	}

	// Hover moves away: scale reverts even though A stays selected
	sm.OnFrame(nil)
	if a.Scale != BaseScale {
		t.Errorf("A scale = %v after hover left, want baseline", a.Scale)
	}
	if a.Emissive != SelectedEmissive || sm.Selected() != a {
		t.Error("selection lost when hover moved away")
	}
}

func TestForeignMarkerPanics(t *testing.T) {
	_, sm, _ := newFixture(t)
	foreign := &scene.Marker{Record: &scene.EventRecord{ID: "ghost"}}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for pick result outside the registry")
		}
	}()
	sm.OnFrame(foreign)
}

func TestForeignMarkerWithoutRecordPanicsWithDiagnostic(t *testing.T) {
	_, sm, _ := newFixture(t)
	foreign := &scene.Marker{}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for pick result outside the registry")
		}
		// The diagnostic must survive a marker with no record; a nil
		// dereference here would mask the real inconsistency.
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "not in registry") {
			t.Errorf("panic = %v, want the registry diagnostic", r)
		}
	}()
	sm.OnFrame(foreign)
}
