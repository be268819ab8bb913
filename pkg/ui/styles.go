// Package ui renders the tool's terminal output: the banner, progress
// lines, and the severity summary table shown after a run.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/nessdoc/nessdoc/pkg/finding"
)

// ANSI escape codes for simple terminal output (usage text)
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Cyan   = "\033[36m"
	Yellow = "\033[33m"
)

// Color palette (severity colors match the report's block colors)
var (
	Primary = lipgloss.Color("#7D56F4")
	Muted   = lipgloss.Color("#6B7280")

	Critical = lipgloss.Color("#FF0000")
	Medium   = lipgloss.Color("#FFA500")
	Low      = lipgloss.Color("#FFFF00")

	Success = lipgloss.Color("#00D26A")
	Error   = lipgloss.Color("#FF3838")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

var severityStyles = map[finding.Severity]lipgloss.Style{
	finding.Critical: lipgloss.NewStyle().Foreground(Critical).Bold(true),
	finding.Medium:   lipgloss.NewStyle().Foreground(Medium).Bold(true),
	finding.Low:      lipgloss.NewStyle().Foreground(Low),
}

// SeverityStyle returns the style for a severity badge. Severities
// outside the fixed set render muted.
func SeverityStyle(s finding.Severity) lipgloss.Style {
	if style, ok := severityStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle().Foreground(Muted)
}

// ColorEnabled reports whether stdout styling should be used.
// Piped or redirected output gets plain text.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
