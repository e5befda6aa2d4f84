// Package style centralizes the CLI's lipgloss styles so every command
// renders nodes, statuses and headings the same way.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)
)

// Node rendering styles
var (
	KindStyle = lipgloss.NewStyle().
			Foreground(KindColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	IdentifierStyle = lipgloss.NewStyle().
			Foreground(IdentifierColor)

	TraitStyle = lipgloss.NewStyle().
			Foreground(TraitColor)

	// HiddenStyle marks nodes that assistive technologies never see.
	HiddenStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// Result indicators
var (
	FoundIndicator    = SuccessStyle.Render("✓")
	NotFoundIndicator = ErrorStyle.Render("✗")
)

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
