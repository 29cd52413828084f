// Package tui renders a recorded iteration history as a live terminal
// animation: each tick reveals the next iterate and redraws the
// convergence graph.
package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	graphWidth  = 70
	graphHeight = 14
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a fixed sequence of iterates toward a known target.
type Model struct {
	title     string
	estimates []float64
	target    float64
	hasTarget bool
	frameRate int
	shown     int
	running   bool
}

// NewModel builds an animation over the recorded estimates. When the true
// value is known, pass it via target to display the remaining error;
// otherwise pass NaN.
func NewModel(title string, estimates []float64, target float64, frameRate int) Model {
	if frameRate < 1 {
		frameRate = 10
	}
	return Model{
		title:     title,
		estimates: estimates,
		target:    target,
		hasTarget: !math.IsNaN(target),
		frameRate: frameRate,
		shown:     1,
		running:   true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.shown = 1
			m.running = true
		}
	case TickMsg:
		if m.running && m.shown < len(m.estimates) {
			m.shown++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.estimates) == 0 {
		return "no iterates recorded\n"
	}

	visible := m.estimates[:m.shown]
	current := visible[len(visible)-1]

	graph := asciigraph.Plot(visible,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("estimate per iteration"),
	)

	status := fmt.Sprintf("%s%s\n%s%s",
		labelStyle.Render("iteration"),
		valueStyle.Render(fmt.Sprintf("%d / %d", m.shown, len(m.estimates))),
		labelStyle.Render("estimate"),
		valueStyle.Render(fmt.Sprintf("%.12f", current)),
	)
	if m.hasTarget {
		status += fmt.Sprintf("\n%s%s",
			labelStyle.Render("error"),
			valueStyle.Render(fmt.Sprintf("%.3e", math.Abs(current-m.target))),
		)
	}
	if !m.running {
		status += "\n" + valueStyle.Render("paused")
	}

	return headerStyle.Render(m.title) + "\n" +
		graphStyle.Render(graph) + "\n" +
		status + "\n" +
		helpStyle.Render("space pause · r restart · q quit") + "\n"
}

// Run starts the animation and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
