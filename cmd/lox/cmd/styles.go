package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorAccent  = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles used for terminal output. Without color every style is plain.
type Styles struct {
	Header   lipgloss.Style
	Error    lipgloss.Style
	Location lipgloss.Style
	Source   lipgloss.Style
	Kind     lipgloss.Style
	Literal  lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles returns the output styles
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Header:   plain,
			Error:    plain,
			Location: plain,
			Source:   plain,
			Kind:     plain,
			Literal:  plain,
			Value:    plain,
			Muted:    plain,
		}
	}

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Location: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Source: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Kind: lipgloss.NewStyle().
			Foreground(ColorAccent),
		Literal: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Value: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
	}
}
