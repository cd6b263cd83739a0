// Package tui is the interactive terminal front end. It follows The Elm
// Architecture used by bubbletea: the Model holds a snapshot of the search
// state, Update reacts to keys and state-change signals, View renders.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ersonp/nearby/internal/domain/entities"
	"github.com/ersonp/nearby/internal/domain/ports"
)

// Searcher is the orchestrator surface the TUI needs.
type Searcher interface {
	Submit(ctx context.Context, location string) (entities.Query, error)
	Snapshot() entities.AggregateState
	Changes() <-chan struct{}
}

// stateChangedMsg is delivered whenever the searcher reports a mutation.
type stateChangedMsg struct{}

// Model is the bubbletea model for the search screen.
type Model struct {
	ctx      context.Context
	searcher Searcher

	input   textinput.Model
	spinner spinner.Model
	state   entities.AggregateState
	width   int
}

// NewModel creates the search screen. ctx bounds every query submitted from it.
func NewModel(ctx context.Context, searcher Searcher) *Model {
	input := textinput.New()
	input.Placeholder = "Enter location"
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		ctx:      ctx,
		searcher: searcher,
		input:    input,
		spinner:  sp,
		state:    searcher.Snapshot(),
	}
}

// Init starts the cursor blink, the spinner and the change listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.waitForChange())
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case stateChangedMsg:
		m.state = m.searcher.Snapshot()
		return m, m.waitForChange()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Find coders near you"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.state.Phase == entities.PhaseLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
	}
	b.WriteString(RenderResults(m.state))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: search • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// State returns the snapshot currently on screen.
func (m *Model) State() entities.AggregateState {
	return m.state
}

// submit sends the current input. Blank input is a no-op.
func (m *Model) submit() {
	_, err := m.searcher.Submit(m.ctx, m.input.Value())
	if errors.Is(err, ports.ErrInvalidInput) {
		return
	}
	m.state = m.searcher.Snapshot()
}

func (m *Model) waitForChange() tea.Cmd {
	changes := m.searcher.Changes()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-changes:
			return stateChangedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}
