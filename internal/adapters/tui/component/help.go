package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
)

// HelpEntry is one key/description pair in the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpPanel is a toggleable overlay listing all keyboard shortcuts.
type HelpPanel struct {
	visible bool
	width   int
	height  int
	entries [][]HelpEntry
}

// NewHelpPanel creates a hidden help panel with the default entries.
func NewHelpPanel() HelpPanel {
	return HelpPanel{entries: defaultHelpEntries()}
}

// defaultHelpEntries groups the shortcuts the way they appear on screen.
func defaultHelpEntries() [][]HelpEntry {
	return [][]HelpEntry{
		{
			{Key: "↑/k ↓/j", Desc: "move cursor"},
			{Key: "g/G", Desc: "first/last item"},
			{Key: "pgup/pgdn", Desc: "page up/down"},
			{Key: "enter", Desc: "drill into selection"},
			{Key: "esc", Desc: "back to parent"},
		},
		{
			{Key: "r", Desc: "refresh current level"},
			{Key: "d", Desc: "delete subscription"},
			{Key: "s", Desc: "skip subscription backlog"},
			{Key: "t", Desc: "seek subscription N hours back"},
		},
		{
			{Key: "?", Desc: "toggle this help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// Toggle flips visibility.
func (h *HelpPanel) Toggle() {
	h.visible = !h.visible
}

// Show makes the panel visible.
func (h *HelpPanel) Show() {
	h.visible = true
}

// Hide makes the panel hidden.
func (h *HelpPanel) Hide() {
	h.visible = false
}

// IsVisible reports whether the panel is on screen.
func (h HelpPanel) IsVisible() bool {
	return h.visible
}

// SetSize records the available screen size.
func (h *HelpPanel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// ShortHelp returns the one-line hint shown in the status bar.
func (h HelpPanel) ShortHelp() string {
	return "↑↓ nav · enter drill · esc back · ? help · q quit"
}

// View renders the full shortcut listing, or nothing when hidden.
func (h HelpPanel) View() string {
	if !h.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, group := range h.entries {
		b.WriteString("\n")
		for _, e := range group {
			b.WriteString(style.HelpKeyStyle.Render(style.PadRight(e.Key, 12)))
			b.WriteString(style.HelpDescStyle.Render(e.Desc))
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Primary).
		Padding(1, 3)
	return box.Render(b.String())
}
