package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/scene"
)

// CatalogExport is the JSON-serializable representation of a fetched
// catalog with its correlations.
type CatalogExport struct {
	FetchedAt    time.Time      `json:"fetched_at"`
	Events       []EventExport  `json:"events"`
	Correlations []PairExport   `json:"correlations"`
	Counts       map[string]int `json:"counts"`
}

// EventExport is a JSON-friendly event representation.
type EventExport struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Time       time.Time `json:"time"`
	RA         float64   `json:"ra"`
	Dec        float64   `json:"dec"`
	Correlated bool      `json:"correlated"`
}

// PairExport is a correlated pair with its derived metrics.
type PairExport struct {
	A             string  `json:"a"`
	B             string  `json:"b"`
	DeltaSeconds  float64 `json:"delta_seconds"`
	SeparationDeg float64 `json:"separation_deg"`
}

// ExportCatalog converts events and correlation pairs to an
// exportable format.
func ExportCatalog(events []scene.EventRecord, pairs [][2]string, fetchedAt time.Time) *CatalogExport {
	export := &CatalogExport{
		FetchedAt: fetchedAt,
		Counts:    make(map[string]int),
	}

	byID := make(map[string]*scene.EventRecord, len(events))
	correlated := make(map[string]bool)
	for _, p := range pairs {
		correlated[p[0]] = true
		correlated[p[1]] = true
	}

	for i := range events {
		ev := &events[i]
		byID[ev.ID] = ev
		export.Counts[string(ev.Source)]++
		export.Events = append(export.Events, EventExport{
			ID:         ev.ID,
			Source:     string(ev.Source),
			Time:       ev.Time,
			RA:         ev.RAdeg,
			Dec:        ev.DecDeg,
			Correlated: correlated[ev.ID],
		})
	}

	for _, p := range pairs {
		a, b := byID[p[0]], byID[p[1]]
		if a == nil || b == nil {
			continue
		}
		export.Correlations = append(export.Correlations, PairExport{
			A:             a.ID,
			B:             b.ID,
			DeltaSeconds:  b.Time.Sub(a.Time).Abs().Seconds(),
			SeparationDeg: astro.Separation(a.RAdeg, a.DecDeg, b.RAdeg, b.DecDeg),
		})
	}

	return export
}

// WriteJSON writes the catalog as JSON to the given writer.
func (c *CatalogExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// WriteSummaryTable writes a text table of events and correlations to
// the given writer.
func WriteSummaryTable(w io.Writer, events []scene.EventRecord, pairs [][2]string, timestamp time.Time) {
	export := ExportCatalog(events, pairs, timestamp)

	fmt.Fprintf(w, "Transient Catalog @ %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if len(export.Events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}

	fmt.Fprintf(w, "%-22s %-8s %-20s %-10s %-10s %-4s\n",
		"Event", "Source", "Time (UTC)", "RA", "Dec", "Corr")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, ev := range export.Events {
		corr := ""
		if ev.Correlated {
			corr = "*"
		}
		fmt.Fprintf(w, "%-22s %-8s %-20s %10.4f %10.4f %-4s\n",
			truncateStr(ev.ID, 22),
			truncateStr(ev.Source, 8),
			ev.Time.UTC().Format("2006-01-02 15:04:05"),
			ev.RA,
			ev.Dec,
			corr,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d events, %d cross-source correlations\n",
		len(export.Events), len(export.Correlations))

	for _, p := range export.Correlations {
		fmt.Fprintf(w, "  %s ↔ %s  Δt %.0fs  sep %.2f°\n",
			p.A, p.B, p.DeltaSeconds, p.SeparationDeg)
	}
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
