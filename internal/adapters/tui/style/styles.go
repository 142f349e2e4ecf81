// Package style centralizes the lipgloss color palette and shared
// styles for the browser UI.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette.
var (
	Primary    = lipgloss.Color("#7C3AED") // violet
	Secondary  = lipgloss.Color("#2DD4BF") // teal
	Surface    = lipgloss.Color("#3B3B54")
	Background = lipgloss.Color("#1E1E2E")
	Text       = lipgloss.Color("#CDD6F4")
	TextMuted  = lipgloss.Color("#6C7086")
	Success    = lipgloss.Color("#A6E3A1")
	Warning    = lipgloss.Color("#F9E2AF")
	Danger     = lipgloss.Color("#F38BA8")
)

// Shared styles.
var (
	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Secondary).
			Bold(true)

	RowStyle = lipgloss.NewStyle().Foreground(Text)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMuted)

	BreadcrumbStyle = lipgloss.NewStyle().Foreground(TextMuted)

	BreadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusError = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().Foreground(TextMuted)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)
)

// Truncate shortens s to at most width display cells, appending "..."
// when there is room for it. Cuts on rune boundaries, so multi-byte
// names (CJK topics, accented tenants) never render as mojibake.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads s with spaces to exactly width display cells,
// truncating when it is wider.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		// A wide rune may not split exactly at the boundary; the
		// remainder is filled with spaces below.
		s = runewidth.Truncate(s, width, "")
		w = runewidth.StringWidth(s)
	}
	return s + strings.Repeat(" ", width-w)
}
