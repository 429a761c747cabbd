// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyfuse/skyfuse/internal/frame"
	"github.com/skyfuse/skyfuse/internal/interact"
	"github.com/skyfuse/skyfuse/internal/scene"
	"github.com/skyfuse/skyfuse/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewGlobe ViewMode = iota
	ViewEvents
)

// headerLines is the number of screen rows above the content area:
// the logo block, tagline, version line, tab bar, and the blank
// separator row View places before the content. Mouse coordinates are
// window-relative, so the globe view subtracts this when mapping the
// pointer onto its canvas.
const headerLines = 12

// Msg types for Bubble Tea
type (
	// AnimTickMsg drives the frame loop: rotation advance plus the
	// frame-coherent hover resolve.
	AnimTickMsg time.Time

	// DataLoadedMsg carries a fetched event catalog into the UI.
	DataLoadedMsg struct {
		Events        []scene.EventRecord
		Correlations  [][2]string
		FetchDuration time.Duration
	}

	// ErrorMsg signals a fetch error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	registry *scene.Registry
	machine  *interact.Machine
	driver   *frame.Driver
	panel    *panelSink

	viewMode ViewMode
	width    int
	height   int
	ready    bool
	loaded   bool
	animTick int

	lastFetch time.Duration
	lastErr   error

	globe  GlobeViewModel
	events EventsViewModel
}

// New creates the root UI model and wires the shared scene registry,
// interaction machine, and frame driver into both views.
func New() Model {
	registry := scene.NewRegistry()
	panel := &panelSink{}
	machine := interact.NewMachine(registry, panel)
	driver := frame.NewDriver()

	return Model{
		registry: registry,
		machine:  machine,
		driver:   driver,
		panel:    panel,
		viewMode: ViewGlobe,
		globe:    NewGlobeViewModel(registry, machine, driver, panel),
		events:   NewEventsViewModel(registry),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return animTickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "g":
			m.viewMode = ViewGlobe
		case "2", "e":
			m.viewMode = ViewEvents

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "enter":
			if m.viewMode == ViewEvents {
				if marker := m.events.SelectedMarker(); marker != nil {
					m.globe = m.globe.SelectMarker(marker)
					m.viewMode = ViewGlobe
				}
			}

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.MouseMsg:
		// Mouse input only drives the globe view.
		if m.viewMode == ViewGlobe {
			m.globe, _ = m.globe.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentHeight := msg.Height - headerLines - 1 // footer takes the last row
		m.globe = m.globe.SetSize(msg.Width, contentHeight, headerLines)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
		// The frame loop runs regardless of which view is showing, so
		// the globe is already rotated when the user switches back.
		m.globe = m.globe.StepFrame()

	case DataLoadedMsg:
		m.registry.LoadEvents(msg.Events)
		m.registry.LoadCorrelations(msg.Correlations)
		m.loaded = true
		m.lastFetch = msg.FetchDuration
		m.lastErr = nil
		m.events = m.events.SetError(nil)

	case ErrorMsg:
		m.lastErr = msg.Error
		m.events = m.events.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewGlobe:
		m.globe, cmd = m.globe.Update(msg)
	case ViewEvents:
		m.events, cmd = m.events.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewGlobe:
		content = m.globe.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ███████╗██╗  ██╗██╗   ██╗███████╗██╗   ██╗███████╗███████╗`,
		`  ██╔════╝██║ ██╔╝╚██╗ ██╔╝██╔════╝██║   ██║██╔════╝██╔════╝`,
		`  ███████╗█████╔╝  ╚████╔╝ █████╗  ██║   ██║███████╗█████╗  `,
		`  ╚════██║██╔═██╗   ╚██╔╝  ██╔══╝  ██║   ██║╚════██║██╔══╝  `,
		`  ███████║██║  ██╗   ██║   ██║     ╚██████╔╝███████║███████╗`,
		`  ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝      ╚═════╝ ╚══════╝╚══════╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Multi-Messenger Transient Sky · Real-time Visualization"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo.
// Horizontal sweep from deep blue through magenta to pink, fading
// toward the bottom rows.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 59 + t*(217-59)
		g = 130 + t*(70-130)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	fade := 1.0 - yRatio*0.5
	return fmt.Sprintf("#%02X%02X%02X",
		clampByte(r*fade), clampByte(g*fade), clampByte(b*fade))
}

func clampByte(v float64) int {
	i := int(v)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Globe", "[2] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dim.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.lastErr != nil:
		status = errStyle.Render("ERROR: " + m.lastErr.Error())
	case m.loaded:
		status = dim.Render(fmt.Sprintf("%d events loaded", len(m.registry.AllMarkers())))
		if m.lastFetch > 0 {
			status += dim.Render(" (" + m.lastFetch.Round(time.Millisecond).String() + ")")
		}
	default:
		status = accent.Render(spinner) + dim.Render(" Fetching event catalogs...")
	}

	var help string
	switch m.viewMode {
	case ViewEvents:
		help = dim.Render("↑↓: navigate | enter: inspect | tab: switch view")
	default:
		help = dim.Render("mouse: hover/select | arrows: orbit | +/-: zoom | esc: close panel")
	}

	return "  " + status + "  " + dim.Render("|") + "  " + help
}

func animTickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataLoaded wraps a fetched catalog as a Bubble Tea command.
func SendDataLoaded(events []scene.EventRecord, correlations [][2]string, dur time.Duration) tea.Cmd {
	return func() tea.Msg {
		return DataLoadedMsg{Events: events, Correlations: correlations, FetchDuration: dur}
	}
}

// SendError wraps a fetch error as a Bubble Tea command.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
