package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
)

// ConfirmResult is emitted when the dialog is resolved, confirmed or not.
type ConfirmResult struct {
	Confirmed bool
	Action    string // action identifier passed to Show
	Data      any    // opaque payload passed to Show
}

// ConfirmDialog is a modal yes/no prompt guarding destructive actions.
// "No" is pre-selected so a reflexive Enter never destroys anything.
type ConfirmDialog struct {
	visible  bool
	selected bool // true = Yes
	title    string
	message  string
	action   string
	data     any
}

// NewConfirmDialog creates a hidden dialog.
func NewConfirmDialog() ConfirmDialog {
	return ConfirmDialog{}
}

// Show makes the dialog visible for the given action and payload.
func (d *ConfirmDialog) Show(title, message, action string, data any) {
	d.visible = true
	d.selected = false
	d.title = title
	d.message = message
	d.action = action
	d.data = data
}

// Hide dismisses the dialog without emitting a result.
func (d *ConfirmDialog) Hide() {
	d.visible = false
}

// IsVisible reports whether the dialog is on screen.
func (d ConfirmDialog) IsVisible() bool {
	return d.visible
}

func (d ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles dialog keys. Resolution emits a ConfirmResult command;
// everything else just moves the Yes/No selection.
func (d ConfirmDialog) Update(msg tea.Msg) (ConfirmDialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc", "n":
		d.visible = false
		return d, d.resolve(false)
	case "y":
		d.visible = false
		return d, d.resolve(true)
	case "left", "h":
		d.selected = true
	case "right", "l":
		d.selected = false
	case "tab":
		d.selected = !d.selected
	case "enter":
		d.visible = false
		return d, d.resolve(d.selected)
	}
	return d, nil
}

func (d ConfirmDialog) resolve(confirmed bool) tea.Cmd {
	result := ConfirmResult{Confirmed: confirmed, Action: d.action, Data: d.data}
	return func() tea.Msg { return result }
}

// View renders the dialog box, or nothing when hidden.
func (d ConfirmDialog) View() string {
	if !d.visible {
		return ""
	}

	yes := " Yes "
	no := " No "
	if d.selected {
		yes = style.CursorStyle.Render(yes)
		no = style.MutedStyle.Render(no)
	} else {
		yes = style.MutedStyle.Render(yes)
		no = style.CursorStyle.Render(no)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, yes, "   ", no)

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		style.TitleStyle.Render(d.title),
		"",
		style.RowStyle.Render(d.message),
		"",
		buttons,
	)
	return style.DialogStyle.Render(body)
}
