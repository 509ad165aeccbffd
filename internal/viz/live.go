package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/analysis"
	"github.com/kinjalh/Physics-Jet-Simulator-3D/internal/shower"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	maxLayers    = 10
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
)

// panelStyles is the themed style set for the stats panel, derived from
// the current theme at render time so theme cycling restyles the panel.
type panelStyles struct {
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func stylesFor(t Theme) panelStyles {
	return panelStyles{
		stats:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(42),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

type TickMsg time.Time

// Model is the interactive shower viewer: a rotating 3D wireframe of the
// event with a stats panel alongside.
type Model struct {
	p0         shower.Momentum
	theta0     float64
	layers     int
	seed       int64
	backToBack bool

	event    *shower.Event
	frame    *Wireframe
	axes     *Wireframe
	spectrum []float64

	canvas   *Canvas
	camera   *Camera
	spinning bool
	showAxes bool
}

// NewModel builds the initial event and viewer state.
func NewModel(p0 shower.Momentum, theta0 float64, layers int, seed int64, backToBack bool) Model {
	m := Model{
		p0:         p0,
		theta0:     theta0,
		layers:     layers,
		seed:       seed,
		backToBack: backToBack,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		camera:     NewCamera(),
		spinning:   true,
		showAxes:   true,
	}
	m.rebuild()
	return m
}

// rebuild reruns the shower with the current parameters.
func (m *Model) rebuild() {
	b := shower.NewBuilder(shower.NewSampler(m.seed), m.layers)
	m.event = shower.BuildEvent(b, m.p0, m.theta0, m.backToBack)
	segs := m.event.Segments(shower.Point{})
	m.frame = ShowerWireframe(segs)
	m.axes = AxesWireframe(1.2)

	m.spectrum = nil
	for _, jet := range m.event.Jets {
		m.spectrum = append(m.spectrum, analysis.LeafSpectrum(jet)...)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles key input and the spin tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.spinning = !m.spinning
		case "n":
			m.seed++
			m.rebuild()
		case "[":
			if m.layers > 1 {
				m.layers--
				m.rebuild()
			}
		case "]":
			if m.layers < maxLayers {
				m.layers++
				m.rebuild()
			}
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "a":
			m.showAxes = !m.showAxes
		case "r":
			m.camera = NewCamera()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		}
	case TickMsg:
		if m.spinning {
			m.camera.RotateY(0.02)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// View renders the canvas and stats panel.
func (m Model) View() string {
	m.canvas.Clear()
	if m.showAxes {
		Render3D(m.canvas, m.axes, m.camera)
	}
	Render3D(m.canvas, m.frame, m.camera)

	st := stylesFor(CurrentTheme)

	var s strings.Builder
	s.WriteString(st.header.Render("PARTON SHOWER") + "\n")
	status := "SPINNING"
	if !m.spinning {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(st.label.Render("Layers") + st.value.Render(fmt.Sprintf("%d", m.layers)) + "\n")
	s.WriteString(st.label.Render("Seed") + st.value.Render(fmt.Sprintf("%d", m.seed)) + "\n")
	s.WriteString(st.label.Render("Partons") + st.value.Render(fmt.Sprintf("%d", m.event.Count())) + "\n")
	s.WriteString(st.label.Render("Jets") + st.value.Render(fmt.Sprintf("%d", len(m.event.Jets))) + "\n")
	s.WriteString(st.label.Render("|p0|") + st.value.Render(fmt.Sprintf("%.1f", m.p0.Norm())) + "\n")

	if len(m.spectrum) > 1 {
		chart := asciigraph.Plot(m.spectrum,
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("leaf |p|"),
		)
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("─────────────────────\nSP:Spin N:Reseed Q:Quit\n[ ]:Layers xyz:Rotate +-:Zoom\nA:Axes R:Reset T:Theme"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := st.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the interactive viewer.
func Run(p0 shower.Momentum, theta0 float64, layers int, seed int64, backToBack bool) error {
	p := tea.NewProgram(NewModel(p0, theta0, layers, seed, backToBack))
	_, err := p.Run()
	return err
}
