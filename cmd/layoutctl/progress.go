package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/forcelayout/pkg/forcelayout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2).
			MarginTop(1)

	statsStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#888888"))
)

type stepMsg struct {
	step int
	err  error
}

type doneMsg struct{}

type progressModel struct {
	total     int
	step      int
	bar       progress.Model
	engine    *forcelayout.LayoutEngine
	runStep   func(int) error
	err       error
	finished  bool
}

func newProgressModel(total int, runStep func(int) error, engine *forcelayout.LayoutEngine) progressModel {
	return progressModel{
		total:   total,
		bar:     progress.New(progress.WithDefaultGradient()),
		engine:  engine,
		runStep: runStep,
	}
}

func (m progressModel) Init() tea.Cmd {
	return m.advance()
}

func (m progressModel) advance() tea.Cmd {
	return func() tea.Msg {
		next := m.step + 1
		if next > m.total {
			return doneMsg{}
		}
		if err := m.runStep(next); err != nil {
			return stepMsg{step: next, err: err}
		}
		return stepMsg{step: next}
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}

	case stepMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.step = msg.step
		if m.step >= m.total {
			m.finished = true
			return m, tea.Quit
		}
		return m, m.advance()

	case doneMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) View() string {
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.step) / float64(m.total)
	}

	var s string
	s += titleStyle.Render("force layout") + "\n\n"
	s += "  " + m.bar.ViewAs(pct) + "\n\n"
	s += statsStyle.Render(fmt.Sprintf(
		"step %d/%d  kinetic energy %.4f  temperature %.4f",
		m.step, m.total, m.engine.KineticEnergy(), m.engine.Temperature(),
	))
	return s
}

// runWithProgress drives total steps of runStep through a bubbletea
// program showing a live progress bar instead of per-step log lines.
func runWithProgress(total int, runStep func(int) error, engine *forcelayout.LayoutEngine) error {
	m := newProgressModel(total, runStep, engine)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(progressModel); ok && fm.err != nil {
		return fm.err
	}
	// Give the terminal a moment to settle before the caller prints the
	// summary line.
	time.Sleep(50 * time.Millisecond)
	return nil
}
