// Package tui implements the interactive Pulsar browser.
// This file contains the main View function that renders the
// application UI.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloznelis/lgm/internal/adapters/tui/style"
	"github.com/bloznelis/lgm/internal/domain/entity"
	"github.com/bloznelis/lgm/internal/navigation"
)

// View renders the current application state to a string.
//
// The rendering order (back to front):
// 1. Main content - Breadcrumb plus the current level's item table
// 2. Status bar - Transient message, or key hints
// 3. Overlays (highest priority, rendered on top):
//   - Confirm dialog (delete/skip confirmation)
//   - Input prompt (seek hours)
//   - Subscription detail viewer
//   - Help panel (keyboard shortcuts)
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if overlay := m.renderOverlay(); overlay != "" {
		return overlay
	}

	contentWidth := m.width - 2   // 2 for border left/right
	contentHeight := m.height - 3 // 2 for border, 1 for status bar

	content := m.renderListing(contentWidth, contentHeight)

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Surface).
		Width(contentWidth).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, boxed, m.renderStatusBar())
}

// renderListing renders the breadcrumb and the item table of the frame
// currently on top of the stack.
func (m *Model) renderListing(width, height int) string {
	frame := m.stack.Current()

	m.breadcrumb.SetItems(append([]string{"tenants"}, frame.Path.Segments()...))

	var b strings.Builder
	b.WriteString(m.breadcrumb.View())
	b.WriteString("\n")
	b.WriteString(style.PanelTitleStyle.Render(levelTitle(frame)))
	b.WriteString("\n")

	if !frame.Loaded && len(frame.Items) == 0 {
		b.WriteString(style.MutedStyle.Render("  " + m.spinner.View() + " loading..."))
		return b.String()
	}
	if len(frame.Items) == 0 {
		b.WriteString(style.MutedStyle.Render("  no " + frame.Level.String()))
		return b.String()
	}

	if frame.Level == entity.LevelSubscriptions {
		b.WriteString(m.renderSubscriptionRows(frame, width, height-2))
	} else {
		b.WriteString(m.renderNameRows(frame, width, height-2))
	}
	return b.String()
}

// levelTitle is the panel heading, e.g. "Topics (12)".
func levelTitle(frame *navigation.Frame) string {
	name := frame.Level.String()
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s (%d)", name, len(frame.Items))
}

// renderNameRows renders simple one-column listings (tenants,
// namespaces, topics). Topics additionally show the fully qualified
// name dimmed.
func (m *Model) renderNameRows(frame *navigation.Frame, width, height int) string {
	var b strings.Builder
	start, end := visibleWindow(len(frame.Items), frame.Cursor, height)
	showFQN := frame.Level == entity.LevelTopics && width > 60

	for i := start; i < end; i++ {
		item := frame.Items[i]

		name := style.Truncate(item.Name, width-4)
		if showFQN {
			name = style.PadRight(style.Truncate(item.Name, 38), 40)
		}

		if i == frame.Cursor {
			b.WriteString(style.CursorStyle.Render("> " + name))
		} else {
			b.WriteString(style.RowStyle.Render("  " + name))
		}
		if showFQN && item.FQN != "" {
			b.WriteString(style.MutedStyle.Render(style.Truncate(item.FQN, width-44)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSubscriptionRows renders the subscriptions table with type,
// backlog and consumer columns when stats are available.
func (m *Model) renderSubscriptionRows(frame *navigation.Frame, width, height int) string {
	var b strings.Builder

	header := "  " + style.PadRight("NAME", 30) + style.PadRight("TYPE", 12) +
		style.PadRight("BACKLOG", 10) + "CONSUMERS"
	b.WriteString(style.TableHeaderStyle.Render(header))
	b.WriteString("\n")

	start, end := visibleWindow(len(frame.Items), frame.Cursor, height-1)
	for i := start; i < end; i++ {
		item := frame.Items[i]

		subType, backlog, consumers := "-", "-", "-"
		if item.HasMeta {
			subType = item.SubType
			backlog = fmt.Sprintf("%d", item.BacklogSize)
			consumers = fmt.Sprintf("%d", item.ConsumerCount)
		}
		line := style.PadRight(style.Truncate(item.Name, 28), 30) +
			style.PadRight(subType, 12) +
			style.PadRight(backlog, 10) +
			consumers

		if i == frame.Cursor {
			b.WriteString(style.CursorStyle.Render("> " + line))
		} else {
			b.WriteString(style.RowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// visibleWindow returns the half-open item range keeping the cursor on
// screen when the list is taller than the viewport.
func visibleWindow(total, cursor, height int) (int, int) {
	if height < 1 {
		height = 1
	}
	if total <= height {
		return 0, total
	}

	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// renderStatusBar renders the transient message when one is active,
// the fetch spinner while a fetch is in flight, or the key hints.
func (m *Model) renderStatusBar() string {
	if m.statusMsg != "" {
		if m.statusKind == messageError {
			return style.StatusError.Render(" " + m.statusMsg)
		}
		return style.StatusInfo.Render(" " + m.statusMsg)
	}

	if m.coordinator.PendingCount() > 0 || m.loadingDetail {
		return style.MutedStyle.Render(" " + m.spinner.View() + " fetching...")
	}
	return style.MutedStyle.Render(" " + m.help.ShortHelp())
}

// renderOverlay checks for and renders any visible overlay component.
// Returns empty string when no overlay is visible.
func (m *Model) renderOverlay() string {
	if m.confirmDialog.IsVisible() {
		return m.placeOverlay(m.confirmDialog.View())
	}
	if m.inputPrompt.IsVisible() {
		return m.placeOverlay(m.inputPrompt.View())
	}
	if m.detail.IsVisible() {
		return m.placeOverlay(m.detail.View())
	}
	if m.help.IsVisible() {
		return m.placeOverlay(m.help.View())
	}
	return ""
}

// placeOverlay centers an overlay on a dimmed background.
func (m *Model) placeOverlay(content string) string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(style.Background),
	)
}
