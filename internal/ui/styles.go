// Package ui renders save-failure messages for terminal display using lipgloss.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// A restrained scheme that stays readable in most terminals
var (
	ColorError      = lipgloss.Color("#EF4444") // Red
	ColorWarning    = lipgloss.Color("#F59E0B") // Amber
	ColorInfo       = lipgloss.Color("#3B82F6") // Blue
	ColorMuted      = lipgloss.Color("#6B7280") // Gray
	ColorBorder     = lipgloss.Color("#374151") // Dark gray
	ColorBackground = lipgloss.Color("#1F2937") // Very dark gray
	ColorForeground = lipgloss.Color("#F9FAFB") // Almost white
	ColorAccent     = lipgloss.Color("#06B6D4") // Cyan
)

// StyleSet contains the styles used when rendering alerts
type StyleSet struct {
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Path    lipgloss.Style

	Box      lipgloss.Style
	AlertBox lipgloss.Style

	Spinner lipgloss.Style
	KeyHint lipgloss.Style
}

// Styles is the global style set
var Styles = NewStyleSet()

// NewStyleSet creates a style set with default styles
func NewStyleSet() StyleSet {
	return StyleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground),

		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		Path: lipgloss.NewStyle().
			Foreground(ColorAccent),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorError).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorAccent),

		KeyHint: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Background(ColorBackground).
			Padding(0, 1),
	}
}

// Icons and symbols
const (
	IconError   = "✗"
	IconWarning = "⚠"
	IconInfo    = "ℹ"
	IconSuccess = "✓"
)

// FormatKeyHint formats a keyboard shortcut hint
func FormatKeyHint(key, description string) string {
	return Styles.KeyHint.Render(fmt.Sprintf("[%s] %s", key, description))
}
