// Package tui renders per-plugin installation progress: a Bubble Tea display
// with one animated line per plugin, and a plain line printer for
// non-interactive output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samhoang/strand/internal/install"
)

// stateMsg carries one state transition from a job's channel into the model.
// ok is false once the channel is closed and the job fully drained.
type stateMsg struct {
	index int
	state install.State
	ok    bool
}

func waitForState(index int, states <-chan install.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-states
		return stateMsg{index: index, state: st, ok: ok}
	}
}

type row struct {
	name    string
	state   install.State
	drained bool
}

// Model is the Bubble Tea model showing one progress row per plugin.
type Model struct {
	jobs     []install.Job
	rows     []row
	spinner  spinner.Model
	drained  int
	finished bool
}

func newModel(jobs []install.Job) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	rows := make([]row, len(jobs))
	for i, job := range jobs {
		rows[i] = row{name: job.Name, state: install.State{Kind: install.StateDownloading, Name: job.Name}}
	}

	return Model{jobs: jobs, rows: rows, spinner: s}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for i, job := range m.jobs {
		cmds = append(cmds, waitForState(i, job.States))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stateMsg:
		if !msg.ok {
			if !m.rows[msg.index].drained {
				m.rows[msg.index].drained = true
				m.drained++
			}
			if m.drained == len(m.rows) {
				m.finished = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.rows[msg.index].state = msg.state
		return m, waitForState(msg.index, m.jobs[msg.index].States)
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	for _, r := range m.rows {
		b.WriteString(m.renderRow(r))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRow(r row) string {
	switch r.state.Kind {
	case install.StateInstalled:
		return fmt.Sprintf("%s %s", installedStyle.Render("✓ Installed"), r.name)
	case install.StateFailed:
		return fmt.Sprintf("%s %s: %v", failedStyle.Render("✗ Failed"), r.name, r.state.Err)
	case install.StateRetrying:
		return fmt.Sprintf("%s %s %s %s", m.spinner.View(), installingStyle.Render("Installing"),
			r.name, subtleStyle.Render(fmt.Sprintf("(retry %d)", r.state.Attempt)))
	case install.StateExtracting:
		return fmt.Sprintf("%s %s %s %s", m.spinner.View(), installingStyle.Render("Installing"),
			r.name, subtleStyle.Render("(extracting)"))
	default:
		return fmt.Sprintf("%s %s %s", m.spinner.View(), installingStyle.Render("Installing"), r.name)
	}
}

// Renderer drives the Bubble Tea progress display.
type Renderer struct{}

// New creates the interactive renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render runs the display until every job reaches its terminal state.
func (r *Renderer) Render(jobs []install.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	p := tea.NewProgram(newModel(jobs))
	_, err := p.Run()

	// If the program died early, keep draining so installers never block
	// on their state channels.
	for _, job := range jobs {
		go func(states <-chan install.State) {
			for range states {
			}
		}(job.States)
	}

	return err
}
