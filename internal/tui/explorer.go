// Package tui is an interactive terminal explorer for the power model.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cyclepower/internal/power"
	"github.com/san-kum/cyclepower/internal/report"
	"github.com/san-kum/cyclepower/internal/sweep"
)

const (
	velocityStep = 0.5
	gradientStep = 0.005
	windStep     = 0.5
	sweepHalf    = 6.0
)

type Model struct {
	name    string
	initial power.Input
	input   power.Input

	breakdown power.Breakdown
	points    []sweep.Point
	err       error
	width     int
}

func NewModel(name string, in power.Input) Model {
	m := Model{name: name, initial: in, input: in, width: 80}
	m.evaluate()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.input.GroundVelocity += velocityStep
		case "left", "h":
			m.input.GroundVelocity -= velocityStep
		case "up", "k":
			m.input.RoadGradient += gradientStep
		case "down", "j":
			m.input.RoadGradient -= gradientStep
		case "w":
			m.input.WindVelocity += windStep
		case "W":
			m.input.WindVelocity -= windStep
		case "r":
			m.input = m.initial
		default:
			return m, nil
		}
		m.evaluate()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// evaluate recomputes the current point and a sweep centred on it.
func (m *Model) evaluate() {
	m.breakdown, m.err = power.Compute(m.input)
	if m.err != nil {
		m.points = nil
		return
	}

	lo := m.input.GroundVelocity - sweepHalf
	if lo < 0 {
		lo = 0
	}
	m.points, m.err = sweep.Run(m.input, lo, lo+2*sweepHalf, velocityStep)
}

func (m Model) Input() power.Input         { return m.input }
func (m Model) Breakdown() power.Breakdown { return m.breakdown }
func (m Model) Err() error                 { return m.err }

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(report.HeaderStyle.Render(fmt.Sprintf("cyclepower · %s", m.name)))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(report.ErrorStyle.Render(m.err.Error()))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(report.Breakdown(m.breakdown, m.input))
		sb.WriteString("\n\n")

		chartWidth := m.width - 12
		if chartWidth < 20 {
			chartWidth = 20
		}
		if chart, err := report.Chart(m.points, power.IndexTotal, report.ChartOptions{Width: chartWidth, Height: 10}); err == nil {
			sb.WriteString(chart)
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString(report.Subtle.Render(fmt.Sprintf("wind %.1f m/s", m.input.WindVelocity)))
	sb.WriteString("\n")
	sb.WriteString(report.Subtle.Render("←/→ velocity  ↑/↓ gradient  w/W wind  r reset  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run starts the explorer on the terminal.
func Run(name string, in power.Input) error {
	p := tea.NewProgram(NewModel(name, in), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
