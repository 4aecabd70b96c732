package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmeurs/savemsg/internal/msg"
)

func promptKey(t *testing.T, m PromptModel, key tea.KeyMsg) PromptModel {
	t.Helper()
	updated, _ := m.Update(key)
	model, ok := updated.(PromptModel)
	if !ok {
		t.Fatalf("Update returned %T, want PromptModel", updated)
	}
	return model
}

func TestPromptModel_EnterMeansClosed(t *testing.T) {
	m := NewPromptModel(NewSaveFailureAlert(msg.KindLocked, "a.txt"), true)
	if m.Outcome() != OutcomeNone {
		t.Fatalf("fresh model outcome = %v, want %v", m.Outcome(), OutcomeNone)
	}

	m = promptKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Outcome() != OutcomeClosed {
		t.Errorf("outcome = %v, want %v", m.Outcome(), OutcomeClosed)
	}
}

func TestPromptModel_QuitKeysMeanGaveUp(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			m := NewPromptModel(NewSaveFailureAlert(msg.KindLocked, "a.txt"), true)
			m = promptKey(t, m, key)
			if m.Outcome() != OutcomeGaveUp {
				t.Errorf("outcome = %v, want %v", m.Outcome(), OutcomeGaveUp)
			}
		})
	}
}

func TestPromptModel_OtherKeysIgnored(t *testing.T) {
	m := NewPromptModel(NewSaveFailureAlert(msg.KindLocked, "a.txt"), true)
	m = promptKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.Outcome() != OutcomeNone {
		t.Errorf("outcome = %v, want %v", m.Outcome(), OutcomeNone)
	}
}

func TestPromptModel_View(t *testing.T) {
	m := NewPromptModel(NewSaveFailureAlert(msg.KindLocked, "a.txt"), true)
	view := m.View()

	if !strings.Contains(view, "File Save Error") {
		t.Errorf("view missing alert, got:\n%s", view)
	}
	if !strings.Contains(view, "waiting for the file to be closed") {
		t.Errorf("view missing wait line, got:\n%s", view)
	}
	if !strings.Contains(view, "enter") {
		t.Errorf("view missing key hints, got:\n%s", view)
	}
}

func TestPromptOutcome_String(t *testing.T) {
	tests := []struct {
		outcome  PromptOutcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeClosed, "closed"},
		{OutcomeGaveUp, "gave-up"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.expected {
				t.Errorf("PromptOutcome.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}
