// Package tui implements the interactive Pulsar browser.
// This file contains the data loading commands that talk to the Pulsar
// admin API asynchronously using tea.Cmd.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloznelis/lgm/internal/domain/port"
	"github.com/bloznelis/lgm/internal/navigation"
)

// Status message lifetimes. Errors stay visible longer.
const (
	infoStatusDuration  = 2 * time.Second
	errorStatusDuration = 5 * time.Second
)

// loadLevel fetches the items for the frame the intent was issued for.
// The intent travels with the result so the coordinator can detect
// results that arrived for an outdated generation or a popped frame.
func (m *Model) loadLevel(intent navigation.Intent) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		items, err := port.List(ctx, m.admin, intent.Level, intent.Path)
		return itemsLoadedMsg{intent: intent, items: items, err: err}
	}
}

// loadDetail fetches the full stats of the currently selected
// subscription for the detail overlay.
func (m *Model) loadDetail(tenant, namespace, topic, sub string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		detail, err := m.admin.GetSubscriptionDetail(ctx, tenant, namespace, topic, sub)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

// clearStatusAfter schedules dismissal of the status message shown
// under sequence number seq.
func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
