package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type feedPollDoneMsg struct {
	err error
}

type feedPollSpinnerModel struct {
	spinner spinner.Model
	label   string
	poll    tea.Cmd
	err     error
	done    bool
}

func newFeedPollSpinnerModel(label string, poll tea.Cmd) feedPollSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return feedPollSpinnerModel{
		spinner: s,
		label:   label,
		poll:    poll,
	}
}

func (m feedPollSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.poll)
}

func (m feedPollSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case feedPollDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m feedPollSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runFeedPollSpinner shows a spinner on output while poll runs.
func runFeedPollSpinner(ctx context.Context, output io.Writer, poll func(context.Context) error) error {
	pollCmd := func() tea.Msg {
		return feedPollDoneMsg{err: poll(ctx)}
	}

	p := tea.NewProgram(
		newFeedPollSpinnerModel("Polling lobby feed...", pollCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(feedPollSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
