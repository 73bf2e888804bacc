package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Syrthax/gravity-sim/internal/body"
	"github.com/Syrthax/gravity-sim/internal/engine"
)

const (
	canvasW         = 80
	canvasH         = 24
	historyCapacity = 240
	eventCapacity   = 6
)

const (
	smallSpawnMass = 500.0
	largeSpawnMass = 2000.0
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives the engine at a fixed frame rate and exposes spawn and
// delete through a keyboard cursor.
type Model struct {
	eng    *engine.Engine
	canvas *Canvas

	cursor      body.Vec2
	massHistory []float64
	events      []string
	collisions  int
	frameRate   int
}

func NewModel(eng *engine.Engine, frameRate int) Model {
	p := eng.Params()
	return Model{
		eng:         eng,
		canvas:      NewCanvas(canvasW, canvasH),
		cursor:      body.Vec2{X: p.ViewportW / 2, Y: p.ViewportH / 2},
		massHistory: make([]float64, 0, historyCapacity),
		events:      make([]string, 0, eventCapacity),
		frameRate:   frameRate,
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p := m.eng.Params()
		stepX, stepY := p.ViewportW/40, p.ViewportH/40
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.eng.TogglePause()
		case "R", "r":
			m.eng.Reset()
			m.collisions = 0
			m.massHistory = m.massHistory[:0]
			m.pushEvent("simulation reset")
		case "left", "h":
			m.moveCursor(-stepX, 0)
		case "right", "l":
			m.moveCursor(stepX, 0)
		case "up", "k":
			m.moveCursor(0, -stepY)
		case "down", "j":
			m.moveCursor(0, stepY)
		case "a":
			m.spawn(smallSpawnMass)
		case "s":
			m.spawn(largeSpawnMass)
		case "d":
			if idx, err := m.eng.DeleteAt(m.cursor.X, m.cursor.Y); err == nil {
				m.pushEvent(fmt.Sprintf("deleted body %d", idx))
			} else {
				m.pushEvent("no body under cursor")
			}
		}
	case TickMsg:
		out := m.eng.Tick()
		if out.RanPhysics {
			m.collisions += len(out.Collisions)
			for _, c := range out.Collisions {
				m.pushEvent(fmt.Sprintf("body %d absorbed body %d (mass %.1f)", c.Absorber, c.Absorbed, c.NewMass))
			}
		}
		for _, adv := range out.Advisories {
			m.pushEvent(fmt.Sprintf("[%s] body %d: %s", adv.Kind, adv.Body, adv.Detail))
		}
		m.massHistory = append(m.massHistory, m.eng.TotalMass())
		if len(m.massHistory) > historyCapacity {
			m.massHistory = m.massHistory[1:]
		}
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy float64) {
	p := m.eng.Params()
	m.cursor.X += dx
	m.cursor.Y += dy
	if m.cursor.X < 0 {
		m.cursor.X = 0
	}
	if m.cursor.X > p.ViewportW {
		m.cursor.X = p.ViewportW
	}
	if m.cursor.Y < 0 {
		m.cursor.Y = 0
	}
	if m.cursor.Y > p.ViewportH {
		m.cursor.Y = p.ViewportH
	}
}

func (m *Model) spawn(mass float64) {
	idx, err := m.eng.Spawn(m.cursor.X, m.cursor.Y, mass, 0, 0)
	if err != nil {
		m.pushEvent("arena full, spawn ignored")
		return
	}
	m.pushEvent(fmt.Sprintf("spawned body %d (mass %.0f)", idx, mass))
}

func (m *Model) pushEvent(s string) {
	m.events = append(m.events, s)
	if len(m.events) > eventCapacity {
		m.events = m.events[1:]
	}
}

// draw projects world coordinates onto the dot grid.
func (m *Model) draw() {
	p := m.eng.Params()
	m.canvas.Clear()
	dotW, dotH := float64(canvasW*2), float64(canvasH*4)
	sx, sy := dotW/p.ViewportW, dotH/p.ViewportH

	for _, v := range m.eng.Snapshot() {
		if !v.Active {
			continue
		}
		cx, cy := int(v.Pos.X*sx), int(v.Pos.Y*sy)
		r := int(v.Radius * sx)
		m.canvas.FillCircle(cx, cy, r)
		// velocity trail behind each body
		if v.Vel.X != 0 || v.Vel.Y != 0 {
			m.canvas.DrawLine(cx, cy, cx-int(v.Vel.X*5*sx), cy-int(v.Vel.Y*5*sy))
		}
	}

	ux, uy := int(m.cursor.X*sx), int(m.cursor.Y*sy)
	m.canvas.DrawLine(ux-3, uy, ux+3, uy)
	m.canvas.DrawLine(ux, uy-2, ux, uy+2)
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	p := m.eng.Params()
	var s strings.Builder
	s.WriteString(headerStyle.Render("GRAVITY") + "\n")
	status := "RUNNING"
	if m.eng.Paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.massHistory) > 1 {
		chart := asciigraph.Plot(m.massHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Total mass"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", float64(m.eng.Ticks())*p.Dt)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d/%d active", m.eng.ActiveBodies(), m.eng.BodyCount())) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.1f", m.eng.TotalMass())) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f", m.eng.Energy())) + "\n")
	s.WriteString(labelStyle.Render("Merges") + valueStyle.Render(fmt.Sprintf("%d", m.collisions)) + "\n")
	s.WriteString(labelStyle.Render("Cursor") + valueStyle.Render(fmt.Sprintf("(%.0f, %.0f)", m.cursor.X, m.cursor.Y)) + "\n")

	if len(m.events) > 0 {
		s.WriteString("\nEVENTS\n")
		for _, ev := range m.events {
			s.WriteString(alertStyle.Render("  "+ev) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nArrows/HJKL:Cursor\nA:Add S:Add-big D:Delete"))
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live view and blocks until the user quits.
func Run(eng *engine.Engine, frameRate int) error {
	if frameRate <= 0 {
		frameRate = 30
	}
	p := tea.NewProgram(NewModel(eng, frameRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
