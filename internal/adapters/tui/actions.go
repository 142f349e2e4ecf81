// Package tui implements the interactive Pulsar browser.
// This file contains the subscription mutation commands: delete, skip
// backlog and seek. Each runs asynchronously and reports back with an
// actionDoneMsg.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

// deleteSubscription removes the subscription from its topic.
func (m *Model) deleteSubscription(path entity.Path, sub string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		err := m.admin.DeleteSubscription(ctx, path.Tenant, path.Namespace, path.Topic, sub)
		return actionDoneMsg{action: "delete", subscription: sub, err: err}
	}
}

// skipAllMessages drops the subscription's entire backlog.
func (m *Model) skipAllMessages(path entity.Path, sub string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		err := m.admin.SkipAllMessages(ctx, path.Tenant, path.Namespace, path.Topic, sub)
		return actionDoneMsg{action: "skip", subscription: sub, err: err}
	}
}

// resetCursor seeks the subscription's cursor back the given number of
// hours.
func (m *Model) resetCursor(path entity.Path, sub string, hoursBack int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		err := m.admin.ResetCursor(ctx, path.Tenant, path.Namespace, path.Topic, sub, hoursBack)
		return actionDoneMsg{action: "seek", subscription: sub, err: err}
	}
}
