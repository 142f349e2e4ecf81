package component

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
	"github.com/bloznelis/lgm/internal/domain/entity"
)

// DetailClosedMsg is emitted when the viewer is dismissed.
type DetailClosedMsg struct{}

// DetailViewer shows the full stats of one subscription, including its
// connected consumers.
type DetailViewer struct {
	visible bool
	width   int
	height  int
	detail  *entity.SubscriptionDetail
}

// NewDetailViewer creates a hidden viewer.
func NewDetailViewer() DetailViewer {
	return DetailViewer{}
}

// Show opens the viewer for the given subscription.
func (v *DetailViewer) Show(detail *entity.SubscriptionDetail) {
	v.visible = true
	v.detail = detail
}

// Hide dismisses the viewer.
func (v *DetailViewer) Hide() {
	v.visible = false
	v.detail = nil
}

// IsVisible reports whether the viewer is on screen.
func (v DetailViewer) IsVisible() bool {
	return v.visible
}

// SetSize records the available screen size.
func (v *DetailViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles viewer keys: Esc or q closes it.
func (v DetailViewer) Update(msg tea.Msg) (DetailViewer, tea.Cmd) {
	if !v.visible {
		return v, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "backspace":
			v.Hide()
			return v, func() tea.Msg { return DetailClosedMsg{} }
		}
	}
	return v, nil
}

// View renders the subscription stats, or nothing when hidden.
func (v DetailViewer) View() string {
	if !v.visible || v.detail == nil {
		return ""
	}
	d := v.detail

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render(d.Name))
	b.WriteString("\n\n")
	b.WriteString(detailRow("Type", d.Type))
	b.WriteString(detailRow("Backlog", fmt.Sprintf("%d msgs", d.BacklogSize)))
	b.WriteString(detailRow("Rate out", fmt.Sprintf("%.2f msg/s", d.MsgRateOut)))
	b.WriteString("\n")
	b.WriteString(style.PanelTitleStyle.Render(fmt.Sprintf("Consumers (%d)", len(d.Consumers))))
	b.WriteString("\n")
	if len(d.Consumers) == 0 {
		b.WriteString(style.MutedStyle.Render("  no connected consumers"))
		b.WriteString("\n")
	}
	for _, c := range d.Consumers {
		line := fmt.Sprintf("  %s  unacked=%d  since=%s",
			style.PadRight(c.Name, 20), c.UnackedMessages, c.ConnectedSince)
		b.WriteString(style.RowStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(style.HelpDescStyle.Render("esc close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Secondary).
		Padding(1, 2)
	return box.Render(b.String())
}

func detailRow(label, value string) string {
	return style.MutedStyle.Render(style.PadRight(label, 10)) +
		style.RowStyle.Render(value) + "\n"
}
