package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors
var (
	SuccessColor = lipgloss.Color("42")
	ErrorColor   = lipgloss.Color("196")
	WarningColor = lipgloss.Color("214")
	InfoColor    = lipgloss.Color("39")
	MutedColor   = lipgloss.Color("245")
	HeadingColor = lipgloss.Color("99")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Outcome indicator glyphs
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	SkippedIndicator = InfoStyle.Render("•")
)

// Colorized reports whether the terminal supports colored output.
func Colorized() bool {
	return termenv.ColorProfile() != termenv.Ascii
}
