package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyfuse/skyfuse/internal/scene"
)

// Styles for the events table
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// EventsViewModel is the tabular catalog of loaded events.
type EventsViewModel struct {
	width    int
	height   int
	cursor   int
	registry *scene.Registry
	lastErr  error
}

// NewEventsViewModel creates the events table over the shared registry.
func NewEventsViewModel(registry *scene.Registry) EventsViewModel {
	return EventsViewModel{registry: registry}
}

// Init implements the Bubble Tea model interface.
func (m EventsViewModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m EventsViewModel) SetSize(width, height int) EventsViewModel {
	m.width = width
	m.height = height
	return m
}

// SetError sets the last fetch error for display.
func (m EventsViewModel) SetError(err error) EventsViewModel {
	m.lastErr = err
	return m
}

// Update handles cursor movement.
func (m EventsViewModel) Update(msg tea.Msg) (EventsViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		count := len(m.registry.AllMarkers())

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < count-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if count > 0 {
				m.cursor = count - 1
			}
		}
	}

	return m, nil
}

// SelectedMarker returns the marker under the cursor, if any.
func (m EventsViewModel) SelectedMarker() *scene.Marker {
	markers := m.registry.AllMarkers()
	if m.cursor < 0 || m.cursor >= len(markers) {
		return nil
	}
	return markers[m.cursor]
}

// View renders the events catalog.
func (m EventsViewModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Feed error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	markers := m.registry.AllMarkers()
	if len(markers) == 0 {
		b.WriteString("Waiting for event data...\n")
		return b.String()
	}

	b.WriteString(m.renderSourceSummary())
	b.WriteString("\n\n")
	b.WriteString(m.renderEventsTable())

	return b.String()
}

func (m EventsViewModel) renderSourceSummary() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Event Sources"))
	b.WriteString("\n")

	counts := make(map[scene.Source]int)
	for _, marker := range m.registry.AllMarkers() {
		counts[marker.Record.Source]++
	}

	sources := []scene.Source{scene.SourceGWOSC, scene.SourceZTF, scene.SourceHEASARC}
	for _, src := range sources {
		style := scene.StyleFor(src)
		name := fmt.Sprintf("%-8s", string(src))

		n, ok := counts[src]
		if !ok || n == 0 {
			b.WriteString("  " + dimStyle.Render(name+" [none]") + "\n")
			continue
		}

		colored := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color))
		b.WriteString(fmt.Sprintf("  %s %s %d events\n",
			colored.Render(name), colored.Render(string(style.Glyph)), n))
	}

	if pairs := len(m.registry.Edges()); pairs > 0 {
		b.WriteString(fmt.Sprintf("  %s\n", dimStyle.Render(
			fmt.Sprintf("%d cross-source correlations", pairs))))
	}

	return b.String()
}

func (m EventsViewModel) renderEventsTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Transient Events"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-20s %-8s %-20s %-10s %-10s %-5s",
		"Event", "Source", "Time (UTC)", "RA", "Dec", "Corr")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	markers := m.registry.AllMarkers()

	// Visible window follows the cursor.
	maxRows := m.height - 12
	if maxRows < 5 {
		maxRows = 5
	}

	startIdx := 0
	if m.cursor >= maxRows {
		startIdx = m.cursor - maxRows + 1
	}
	endIdx := startIdx + maxRows
	if endIdx > len(markers) {
		endIdx = len(markers)
	}

	for i := startIdx; i < endIdx; i++ {
		rec := markers[i].Record

		corr := ""
		if m.registry.Correlated(rec.ID) {
			corr = "✦"
		}

		row := fmt.Sprintf("%-20s %-8s %-20s %-10s %-10s %-5s",
			truncate(rec.ID, 20),
			truncate(string(rec.Source), 8),
			rec.Time.UTC().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.4f", rec.RAdeg),
			fmt.Sprintf("%.4f", rec.DecDeg),
			corr,
		)

		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(markers) > maxRows {
		b.WriteString(fmt.Sprintf("\n  Showing %d-%d of %d events", startIdx+1, endIdx, len(markers)))
	}

	return b.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
