// Package ui renders save-failure messages for terminal display using lipgloss.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmeurs/savemsg/internal/msg"
)

// AlertLevel represents the severity level of an alert.
type AlertLevel int

const (
	// AlertLevelInfo is for informational messages.
	AlertLevelInfo AlertLevel = iota
	// AlertLevelWarning is for warning messages.
	AlertLevelWarning
	// AlertLevelError is for error messages.
	AlertLevelError
)

// String returns the string representation of an alert level.
func (l AlertLevel) String() string {
	switch l {
	case AlertLevelInfo:
		return "INFO"
	case AlertLevelWarning:
		return "WARNING"
	case AlertLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Icon returns the icon for an alert level.
func (l AlertLevel) Icon() string {
	switch l {
	case AlertLevelInfo:
		return IconInfo
	case AlertLevelWarning:
		return IconWarning
	case AlertLevelError:
		return IconError
	default:
		return ""
	}
}

// Alert represents a save-failure message prepared for display.
type Alert struct {
	Level     AlertLevel
	Title     string
	Message   string
	Path      string
	Actions   []string
	CreatedAt time.Time
}

// NewSaveFailureAlert builds the boxed presentation of a catalog message.
// The plain catalog text from the msg package remains the canonical wording;
// this carries the same lines plus action steps for the interactive views.
func NewSaveFailureAlert(kind msg.Kind, path string) Alert {
	a := Alert{
		Level:     AlertLevelError,
		Title:     "File Save Error",
		Path:      path,
		CreatedAt: time.Now(),
	}

	switch kind {
	case msg.KindPermission:
		a.Message = "The file could not be saved because you do not have permission to write to it."
		a.Actions = []string{
			fmt.Sprintf("Check the permissions for \"%s\"", path),
			"Try saving again",
		}
	case msg.KindReadOnly:
		a.Message = "The file could not be saved because it is marked read-only."
		a.Actions = []string{
			fmt.Sprintf("Remove the read-only attribute from \"%s\"", path),
			"Try saving again",
		}
	case msg.KindDiskFull:
		a.Message = "The file could not be saved because there is not enough space on the disk."
		a.Actions = []string{
			"Free up some disk space",
			fmt.Sprintf("Try saving \"%s\" again", path),
		}
	case msg.KindMissingDirectory:
		a.Message = "The file could not be saved because its folder no longer exists."
		a.Actions = []string{
			fmt.Sprintf("Choose a new location for \"%s\"", path),
			"Try saving again",
		}
	default:
		a.Message = "The file could not be saved because it is currently open in another program."
		a.Actions = []string{
			fmt.Sprintf("Close the file \"%s\" in the other program", path),
			"Try saving again",
		}
	}

	return a
}

// WithActions adds action instructions to the alert.
func (a Alert) WithActions(actions ...string) Alert {
	a.Actions = append(a.Actions, actions...)
	return a
}

// Render renders the alert as a bordered box.
func (a Alert) Render() string {
	borderColor := ColorError
	switch a.Level {
	case AlertLevelWarning:
		borderColor = ColorWarning
	case AlertLevelInfo:
		borderColor = ColorInfo
	}

	boxStyle := Styles.AlertBox.BorderForeground(borderColor)

	var b strings.Builder

	title := fmt.Sprintf("%s %s", a.Level.Icon(), a.Title)
	b.WriteString(Styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(Styles.Body.Render(a.Message))
	b.WriteString("\n")

	if len(a.Actions) > 0 {
		b.WriteString("\n")
		for i, action := range a.Actions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, action))
		}
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderPlain renders the alert without any styling, for pipes and logs.
func (a Alert) RenderPlain() string {
	var b strings.Builder

	b.WriteString(a.Title)
	b.WriteString("\n\n")
	b.WriteString(a.Message)
	b.WriteString("\n")

	if len(a.Actions) > 0 {
		b.WriteString("\n")
		for i, action := range a.Actions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, action))
		}
	}

	return b.String()
}
