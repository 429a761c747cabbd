package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/frame"
	"github.com/skyfuse/skyfuse/internal/interact"
	"github.com/skyfuse/skyfuse/internal/pick"
	"github.com/skyfuse/skyfuse/internal/scene"
)

const (
	// Camera limits
	minCamDistance = 16.0
	maxCamDistance = 60.0
	maxCamElDeg    = 85.0
	camStepDeg     = 4.0
	zoomStep       = 2.0

	// cellAspect compensates for terminal cells being roughly twice as
	// tall as they are wide.
	cellAspect = 0.5

	// Lines reserved under the canvas for the status line / info panel.
	panelReserve = 7

	// Marker glyphs by emphasis
	glyphMarker        = '✦'
	glyphMarkerHovered = '◉'

	// Edge and planet colors
	colorEdge        = "60"  // muted purple
	colorPlanetDark  = "17"  // deep blue
	colorPlanetMid   = "24"  // ocean teal
	colorPlanetLight = "30"  // lit teal
	colorBackground  = "236" // near-black

	// Star colors by magnitude
	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "240"
)

// panelSink buffers the record the interaction machine wants displayed.
// It implements interact.PanelSink.
type panelSink struct {
	rec *scene.EventRecord
}

func (p *panelSink) ShowEvent(rec *scene.EventRecord) {
	p.rec = rec
}

// GlobeViewModel renders the rotating globe with event markers and
// correlation edges, and owns the camera and pointer state.
type GlobeViewModel struct {
	width  int
	height int
	top    int // rows above the canvas in the full frame, for mouse mapping

	registry *scene.Registry
	machine  *interact.Machine
	driver   *frame.Driver
	panel    *panelSink

	cam           pick.Camera
	pointer       pick.NDC
	pointerActive bool

	stars []astro.Star
}

// NewGlobeViewModel creates the globe view over an already-constructed
// registry, state machine, and frame driver.
func NewGlobeViewModel(registry *scene.Registry, machine *interact.Machine, driver *frame.Driver, panel *panelSink) GlobeViewModel {
	return GlobeViewModel{
		registry: registry,
		machine:  machine,
		driver:   driver,
		panel:    panel,
		cam: pick.Camera{
			AzDeg:    0,
			ElDeg:    15,
			Distance: 30,
			FOVDeg:   50,
			Aspect:   1,
		},
		stars: astro.BrightStars(),
	}
}

// Init implements the Bubble Tea model interface.
func (m GlobeViewModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size and the camera aspect.
func (m GlobeViewModel) SetSize(width, height, top int) GlobeViewModel {
	m.width = width
	m.height = height
	m.top = top

	canvasH := m.canvasHeight()
	if width > 0 && canvasH > 0 {
		m.cam.Aspect = float64(width) * cellAspect / float64(canvasH)
	}
	return m
}

func (m GlobeViewModel) canvasHeight() int {
	h := m.height - panelReserve
	if h < 1 {
		h = 1
	}
	return h
}

// StepFrame runs one frame-driver tick: frame-coherent hover with the
// current pointer and camera, then the rotation advance. Called by the
// root model on every animation tick, before View renders.
func (m GlobeViewModel) StepFrame() GlobeViewModel {
	m.driver.Step(m.pointer, m.pointerActive, m.cam, m.registry, m.machine)
	return m
}

// Update handles key and mouse input.
func (m GlobeViewModel) Update(msg tea.Msg) (GlobeViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left":
			m.cam.AzDeg -= camStepDeg
		case "right":
			m.cam.AzDeg += camStepDeg
		case "up":
			m.cam.ElDeg = clamp(m.cam.ElDeg+camStepDeg, -maxCamElDeg, maxCamElDeg)
		case "down":
			m.cam.ElDeg = clamp(m.cam.ElDeg-camStepDeg, -maxCamElDeg, maxCamElDeg)
		case "+", "=":
			m.cam.Distance = clamp(m.cam.Distance-zoomStep, minCamDistance, maxCamDistance)
		case "-", "_":
			m.cam.Distance = clamp(m.cam.Distance+zoomStep, minCamDistance, maxCamDistance)
		case "esc", "x":
			m.closePanel()
		}

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			m.pointer = m.ndcAt(msg.X, msg.Y)
			m.pointerActive = true
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.pointer = m.ndcAt(msg.X, msg.Y)
				m.pointerActive = true
				m.click()
			}
			if msg.Button == tea.MouseButtonWheelUp {
				m.cam.Distance = clamp(m.cam.Distance-zoomStep, minCamDistance, maxCamDistance)
			}
			if msg.Button == tea.MouseButtonWheelDown {
				m.cam.Distance = clamp(m.cam.Distance+zoomStep, minCamDistance, maxCamDistance)
			}
		}
	}

	return m, nil
}

// click runs a synchronous pick at the recorded pointer, against the
// same rotation the last frame rendered with.
func (m *GlobeViewModel) click() {
	hit := pick.Pick(m.pointer, m.cam, m.driver.PlanetRotation(), m.registry.AllMarkers())
	m.machine.OnClick(hit)
}

// closePanel dismisses the info panel and clears the selection. Hover
// is untouched.
func (m *GlobeViewModel) closePanel() {
	m.panel.rec = nil
	m.machine.OnPanelClose()
}

// SelectMarker selects a marker directly (used by the events view).
func (m GlobeViewModel) SelectMarker(marker *scene.Marker) GlobeViewModel {
	m.machine.OnClick(marker)
	return m
}

// ndcAt converts terminal cell coordinates to normalized device
// coordinates over the canvas area.
func (m GlobeViewModel) ndcAt(x, y int) pick.NDC {
	w := float64(m.width)
	h := float64(m.canvasHeight())
	if w <= 0 || h <= 0 {
		return pick.NDC{}
	}
	return pick.NDC{
		X: 2*(float64(x)+0.5)/w - 1,
		Y: 1 - 2*(float64(y-m.top)+0.5)/h,
	}
}

// View renders the globe canvas plus the status line or info panel.
func (m GlobeViewModel) View() string {
	if m.width < 20 || m.height < 12 {
		return "Globe view requires a larger terminal"
	}

	var b strings.Builder
	b.WriteString(m.renderCanvas(m.width, m.canvasHeight()))
	b.WriteString("\n")
	if m.panel.rec != nil {
		b.WriteString(m.renderInfoPanel())
	} else {
		b.WriteString(m.renderStatus())
	}
	return b.String()
}

func (m GlobeViewModel) renderCanvas(width, height int) string {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorBackground
		}
	}

	m.drawStars(canvas, colors, width, height)
	m.drawPlanet(canvas, colors, width, height)
	m.drawEdges(canvas, colors, width, height)
	m.drawMarkers(canvas, colors, width, height)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// toCell projects a world point onto the canvas. ok is false when the
// point is behind the camera or outside the canvas.
func (m GlobeViewModel) toCell(p astro.Vec3, width, height int) (int, int, bool) {
	ndc, ok := m.cam.ProjectNDC(p)
	if !ok {
		return 0, 0, false
	}
	x := int((ndc.X + 1) / 2 * float64(width))
	y := int((1 - ndc.Y) / 2 * float64(height))
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

// occluded reports whether the planet body hides a world point from the
// camera. Render-only: picking deliberately ignores the planet.
func (m GlobeViewModel) occluded(p astro.Vec3) bool {
	origin := m.cam.Position()
	toPoint := p.Sub(origin)
	dist := toPoint.Norm()
	ray := pick.Ray{Origin: origin, Dir: toPoint.Scale(1 / dist)}

	t, hit := ray.IntersectSphere(astro.Vec3{}, scene.PlanetRadius)
	return hit && t < dist
}

func (m GlobeViewModel) drawStars(canvas [][]rune, colors [][]lipgloss.Color, width, height int) {
	rot := m.driver.StarRotation()
	for _, star := range m.stars {
		world := astro.RotateY(astro.Project(star.RAdeg, star.DecDeg, scene.StarShellRadius), rot)
		if m.occluded(world) {
			continue
		}
		x, y, ok := m.toCell(world, width, height)
		if !ok {
			continue
		}

		glyph, color := starGlyph(star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}
}

func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 0.5:
		return '✶', colorStarBright
	case mag < 1.8:
		return '·', colorStarMedium
	default:
		return '·', colorStarDim
	}
}

// drawPlanet ray-shades the planet body cell by cell. Shading uses a
// light that rides with the camera, so the facing hemisphere is always
// lit, with faint longitude bands that make the rotation visible.
func (m GlobeViewModel) drawPlanet(canvas [][]rune, colors [][]lipgloss.Color, width, height int) {
	rot := m.driver.PlanetRotation()
	lightDir := m.cam.Position().Normalize()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ndc := pick.NDC{
				X: 2*(float64(x)+0.5)/float64(width) - 1,
				Y: 1 - 2*(float64(y)+0.5)/float64(height),
			}
			ray := m.cam.RayThrough(ndc)
			t, hit := ray.IntersectSphere(astro.Vec3{}, scene.PlanetRadius)
			if !hit {
				continue
			}

			surface := ray.Origin.Add(ray.Dir.Scale(t))
			normal := surface.Normalize()
			brightness := normal.Dot(lightDir)
			if brightness < 0 {
				brightness = 0
			}

			// Texture longitude in the planet's own frame
			body := astro.RotateY(surface, -rot)
			lon := int((atan2Deg(body.Z, body.X) + 360) / 15) // 24 bands
			banded := lon%2 == 0

			canvas[y][x], colors[y][x] = planetShade(brightness, banded)
		}
	}
}

func planetShade(brightness float64, banded bool) (rune, lipgloss.Color) {
	switch {
	case brightness > 0.75:
		if banded {
			return '▒', colorPlanetLight
		}
		return '▒', colorPlanetMid
	case brightness > 0.4:
		if banded {
			return '░', colorPlanetMid
		}
		return '░', colorPlanetDark
	default:
		return '░', colorPlanetDark
	}
}

func (m GlobeViewModel) drawEdges(canvas [][]rune, colors [][]lipgloss.Color, width, height int) {
	rot := m.driver.PlanetRotation()
	const samples = 24

	for _, e := range m.registry.Edges() {
		for i := 0; i <= samples; i++ {
			f := float64(i) / samples
			p := astro.RotateY(e.A.Add(e.B.Sub(e.A).Scale(f)), rot)
			if m.occluded(p) {
				continue
			}
			x, y, ok := m.toCell(p, width, height)
			if !ok {
				continue
			}
			canvas[y][x] = '·'
			colors[y][x] = colorEdge
		}
	}
}

func (m GlobeViewModel) drawMarkers(canvas [][]rune, colors [][]lipgloss.Color, width, height int) {
	rot := m.driver.PlanetRotation()

	for _, marker := range m.registry.AllMarkers() {
		world := marker.WorldPosition(rot)
		if m.occluded(world) {
			continue
		}
		x, y, ok := m.toCell(world, width, height)
		if !ok {
			continue
		}

		// Scale channel picks the glyph, emissive channel the color.
		glyph := glyphMarker
		if marker.Scale > interact.BaseScale {
			glyph = glyphMarkerHovered
		}
		color := marker.Style.Color
		if marker.Emissive > interact.BaseEmissive {
			color = marker.Style.BrightColor
		}
		if marker.Style.Glyph == '·' && glyph == glyphMarker {
			glyph = marker.Style.Glyph // unknown sources stay subtle
		}

		canvas[y][x] = glyph
		colors[y][x] = lipgloss.Color(color)

		if marker == m.machine.Hovered() {
			drawLabel(canvas, colors, x+2, y, marker.Record.ID, lipgloss.Color(color))
		}
	}
}

// drawLabel writes a short text label, clipped to the canvas.
func drawLabel(canvas [][]rune, colors [][]lipgloss.Color, x, y int, text string, color lipgloss.Color) {
	if y < 0 || y >= len(canvas) {
		return
	}
	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= len(canvas[y]) {
			return
		}
		canvas[y][cx] = r
		colors[y][cx] = color
	}
}

func (m GlobeViewModel) renderStatus() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	markers := m.registry.AllMarkers()
	line := fmt.Sprintf("%d events · %d correlations", len(markers), len(m.registry.Edges()))

	if h := m.machine.Hovered(); h != nil {
		line += " | " + accent.Render(fmt.Sprintf("%s (%s) — click for details",
			h.Record.ID, h.Record.Source))
	} else if len(markers) == 0 {
		line += " | waiting for data"
	}

	return "  " + dim.Render(line)
}

// renderInfoPanel shows the selected event's details: id, source, UTC
// time, and coordinates to 4 decimal places.
func (m GlobeViewModel) renderInfoPanel() string {
	rec := m.panel.rec
	style := scene.StyleFor(rec.Source)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.Color)).
		Padding(0, 2)
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(style.BrightColor))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	body := fmt.Sprintf("%s\n%s  %s\nRA %s°   Dec %s°\n%s",
		title.Render(rec.ID),
		dim.Render("source"), string(rec.Source),
		fmt.Sprintf("%.4f", rec.RAdeg),
		fmt.Sprintf("%.4f", rec.DecDeg),
		dim.Render(rec.Time.UTC().Format("2006-01-02 15:04:05 UTC")),
	)

	return border.Render(body) + "\n" + dim.Render("  esc/x: close")
}

func atan2Deg(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
