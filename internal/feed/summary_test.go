package feed

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/skyfuse/skyfuse/internal/scene"
)

func correlateFixture() []scene.EventRecord {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []scene.EventRecord{
		{ID: "ZTF25abc", Source: scene.SourceZTF, Time: base, RAdeg: 100, DecDeg: 10},
		{ID: "GW250301", Source: scene.SourceGWOSC, Time: base.Add(5 * time.Minute), RAdeg: 101, DecDeg: 11},
		{ID: "GW250301b", Source: scene.SourceGWOSC, Time: base, RAdeg: 150, DecDeg: -40},
	}
}

func TestExportCatalog(t *testing.T) {
	events := correlateFixture()
	pairs := Correlate(events)
	fetched := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	export := ExportCatalog(events, pairs, fetched)

	if len(export.Events) != len(events) {
		t.Fatalf("exported %d events, want %d", len(export.Events), len(events))
	}
	if len(export.Correlations) != len(pairs) {
		t.Fatalf("exported %d pairs, want %d", len(export.Correlations), len(pairs))
	}
	if export.Counts["ZTF"] == 0 || export.Counts["GWOSC"] == 0 {
		t.Errorf("per-source counts missing: %v", export.Counts)
	}

	for _, p := range export.Correlations {
		if p.DeltaSeconds < 0 || p.DeltaSeconds >= CorrelationWindow.Seconds() {
			t.Errorf("pair %s/%s delta %v outside window", p.A, p.B, p.DeltaSeconds)
		}
		if p.SeparationDeg >= SeparationThresholdDeg {
			t.Errorf("pair %s/%s separation %v exceeds threshold", p.A, p.B, p.SeparationDeg)
		}
	}

	flagged := 0
	for _, ev := range export.Events {
		if ev.Correlated {
			flagged++
		}
	}
	if flagged != 2*len(pairs) {
		t.Errorf("correlated flags = %d, want %d", flagged, 2*len(pairs))
	}
}

func TestCatalogExport_WriteJSON(t *testing.T) {
	events := correlateFixture()
	export := ExportCatalog(events, Correlate(events), time.Now())

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded CatalogExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded.Events) != len(events) {
		t.Errorf("round trip lost events: %d != %d", len(decoded.Events), len(events))
	}
}

func TestWriteSummaryTable(t *testing.T) {
	events := correlateFixture()
	pairs := Correlate(events)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, events, pairs, time.Now())
	out := buf.String()

	for _, ev := range events {
		if !strings.Contains(out, ev.ID) {
			t.Errorf("summary missing event %s", ev.ID)
		}
	}
	if !strings.Contains(out, "cross-source correlations") {
		t.Error("summary missing correlation total")
	}
}

func TestWriteSummaryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, nil, nil, time.Now())
	if !strings.Contains(buf.String(), "No events") {
		t.Error("empty catalog should say so")
	}
}
