// Package ui renders save-failure messages for terminal display using lipgloss.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptOutcome reports how the interactive prompt ended.
type PromptOutcome int

const (
	// OutcomeNone means the prompt is still running.
	OutcomeNone PromptOutcome = iota
	// OutcomeClosed means the user says they closed the file and the
	// caller may attempt the save again.
	OutcomeClosed
	// OutcomeGaveUp means the user abandoned the save.
	OutcomeGaveUp
)

// String returns the string representation of a prompt outcome.
func (o PromptOutcome) String() string {
	switch o {
	case OutcomeClosed:
		return "closed"
	case OutcomeGaveUp:
		return "gave-up"
	default:
		return "none"
	}
}

// PromptModel is the Bubbletea model that displays a save-failure alert and
// waits for the user to deal with it. It never retries anything itself; it
// only reports which key ended the prompt.
type PromptModel struct {
	alert   Alert
	spinner spinner.Model
	outcome PromptOutcome
	plain   bool
	width   int
}

// NewPromptModel creates a prompt model for the given alert. With plain set,
// the view skips the styled box.
func NewPromptModel(alert Alert, plain bool) PromptModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner
	return PromptModel{
		alert:   alert,
		spinner: s,
		plain:   plain,
	}
}

// Outcome returns how the prompt ended, or OutcomeNone while running.
func (m PromptModel) Outcome() PromptOutcome {
	return m.outcome
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m PromptModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(message)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m PromptModel) handleKeyPress(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "enter", " ":
		m.outcome = OutcomeClosed
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.outcome = OutcomeGaveUp
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m PromptModel) View() string {
	var b strings.Builder

	if m.plain {
		b.WriteString(m.alert.RenderPlain())
	} else {
		b.WriteString(m.alert.Render())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.plain {
		b.WriteString(fmt.Sprintf("%s waiting for the file to be closed...\n", m.spinner.View()))
		b.WriteString("[enter] I closed it  [q] give up\n")
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(),
			Styles.Muted.Render("waiting for the file to be closed...")))
		b.WriteString(fmt.Sprintf("%s %s\n",
			FormatKeyHint("enter", "I closed it"),
			FormatKeyHint("q", "give up")))
	}

	return b.String()
}

// RunPrompt displays the alert and blocks until the user responds.
func RunPrompt(alert Alert, plain bool) (PromptOutcome, error) {
	p := tea.NewProgram(NewPromptModel(alert, plain))
	final, err := p.Run()
	if err != nil {
		return OutcomeNone, fmt.Errorf("prompt failed: %w", err)
	}

	model, ok := final.(PromptModel)
	if !ok {
		return OutcomeNone, fmt.Errorf("unexpected model type %T", final)
	}
	return model.Outcome(), nil
}
