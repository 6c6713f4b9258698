package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"physfit/internal/bounce"
)

const (
	columnHeight = 18
	graphWidth   = 46
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a finished bounce simulation in the terminal.
type Model struct {
	result  bounce.Result
	gravity float64
	t       float64
	dt      float64
	running bool
	done    bool
}

func NewModel(res bounce.Result, gravity float64, fps int) Model {
	return Model{
		result:  res,
		gravity: gravity,
		dt:      1.0 / float64(fps),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(float64(time.Second)*m.dt), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running && !m.done {
				return m, m.tick()
			}
		case "r":
			m.t = 0
			m.done = false
			if m.running {
				return m, m.tick()
			}
		}
	case TickMsg:
		if !m.running || m.done {
			return m, nil
		}
		m.t += m.dt
		if m.t >= m.result.TotalTime {
			m.t = m.result.TotalTime
			m.done = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	h := m.heightAt(m.t)
	peak := m.result.Heights[0]

	var column strings.Builder
	ballRow := columnHeight - 1 - int(math.Round(h/peak*float64(columnHeight-1)))
	for row := 0; row < columnHeight; row++ {
		if row == ballRow {
			column.WriteString("   ●\n")
		} else {
			column.WriteString("   │\n")
		}
	}
	column.WriteString("  ─┴─ ground")

	stats := headerStyle.Render("bouncy ball") + "\n" +
		row("time", fmt.Sprintf("%.2f / %.2f s", m.t, m.result.TotalTime)) +
		row("height", fmt.Sprintf("%.3f m", h)) +
		row("bounce", fmt.Sprintf("%d / %d", m.bounceIndex(), m.result.Bounces)) +
		row("status", m.status())

	trace := graphStyle.Render(asciigraph.Plot(m.result.Heights,
		asciigraph.Height(8),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("peak heights (m)"),
	))

	panel := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(column.String()),
		statsStyle.Render(stats+"\n"+trace),
	)

	return panel + helpStyle.Render("\n  space pause · r restart · q quit\n")
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func (m Model) status() string {
	switch {
	case m.done:
		return "finished"
	case m.running:
		return "running"
	default:
		return "paused"
	}
}

// bounceIndex is how many peaks have been passed at the current time.
func (m Model) bounceIndex() int {
	n := 0
	for i := 1; i < len(m.result.Times); i++ {
		if m.result.Times[i] <= m.t {
			n = i
		}
	}
	return n
}

// heightAt reconstructs the ball height at time t from the recorded peaks:
// a free fall from the current peak followed by a rise to the next one.
func (m Model) heightAt(t float64) float64 {
	times, heights := m.result.Times, m.result.Heights
	for i := 0; i+1 < len(times); i++ {
		if t > times[i+1] {
			continue
		}
		fall := math.Sqrt(2 * heights[i] / m.gravity)
		elapsed := t - times[i]
		if elapsed <= fall {
			h := heights[i] - 0.5*m.gravity*elapsed*elapsed
			return math.Max(h, 0)
		}
		remaining := times[i+1] - t
		h := heights[i+1] - 0.5*m.gravity*remaining*remaining
		return math.Max(h, 0)
	}
	return heights[len(heights)-1]
}
