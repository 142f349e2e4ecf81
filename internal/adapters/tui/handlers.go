// Package tui implements the interactive Pulsar browser.
// This file contains the action handlers executed by the Update loop
// after the dispatcher has mapped a key event to an Action.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

// executeAction applies a dispatched action to the session.
func (m *Model) executeAction(action Action) (tea.Model, tea.Cmd) {
	frame := m.stack.Current()

	switch action {
	case ActionQuit:
		return m, tea.Quit

	case ActionDismiss:
		m.dismissMessage()
		return m, nil

	case ActionMoveUp:
		frame.SelectPrevious()
	case ActionMoveDown:
		frame.SelectNext()
	case ActionMoveFirst:
		frame.SelectFirst()
	case ActionMoveLast:
		frame.SelectLast()
	case ActionPageUp:
		frame.Page(-m.pageSize())
	case ActionPageDown:
		frame.Page(m.pageSize())

	case ActionDrill:
		return m.handleDrill()
	case ActionBack:
		return m.handleBack()
	case ActionRefresh:
		return m.handleRefresh()

	case ActionDelete:
		return m.openDeleteDialog()
	case ActionSkip:
		return m.openSkipDialog()
	case ActionSeek:
		return m.openSeekPrompt()

	case ActionHelp:
		m.help.Toggle()
	}

	return m, nil
}

// handleDrill pushes into the selected item, or opens the detail
// overlay when the subscriptions level is already on screen.
func (m *Model) handleDrill() (tea.Model, tea.Cmd) {
	frame := m.stack.Current()
	selected := frame.Selected()
	if selected == nil {
		return m, nil
	}

	if frame.Level.Terminal() {
		m.loadingDetail = true
		path := frame.Path
		return m, m.loadDetail(path.Tenant, path.Namespace, path.Topic, selected.Name)
	}

	if frame.Level == entity.LevelTenants {
		m.config.SetLastTenant(selected.Name)
	}

	child, err := m.stack.Push()
	if err != nil || child == nil {
		return m, nil
	}
	intent := m.coordinator.BeginFetch(child)
	return m, m.loadLevel(intent)
}

// handleBack pops to the parent level. At the root it is a no-op.
func (m *Model) handleBack() (tea.Model, tea.Cmd) {
	if _, err := m.stack.Pop(); err != nil {
		return m, nil
	}
	return m, nil
}

// handleRefresh re-fetches the current level, bumping the frame
// generation so any in-flight fetch is discarded on arrival.
func (m *Model) handleRefresh() (tea.Model, tea.Cmd) {
	intent := m.coordinator.BeginFetch(m.stack.Current())
	return m, m.loadLevel(intent)
}

func (m *Model) openDeleteDialog() (tea.Model, tea.Cmd) {
	frame := m.stack.Current()
	selected := frame.Selected()
	if selected == nil {
		return m, nil
	}
	m.confirmDialog.Show(
		"Delete subscription",
		fmt.Sprintf("Delete %q from topic %s?", selected.Name, frame.Path.Topic),
		"delete",
		selected.Name,
	)
	m.mode = ModeConfirm
	return m, nil
}

func (m *Model) openSkipDialog() (tea.Model, tea.Cmd) {
	frame := m.stack.Current()
	selected := frame.Selected()
	if selected == nil {
		return m, nil
	}
	m.confirmDialog.Show(
		"Skip backlog",
		fmt.Sprintf("Skip all backlog messages of %q?", selected.Name),
		"skip",
		selected.Name,
	)
	m.mode = ModeConfirm
	return m, nil
}

func (m *Model) openSeekPrompt() (tea.Model, tea.Cmd) {
	frame := m.stack.Current()
	selected := frame.Selected()
	if selected == nil {
		return m, nil
	}
	m.inputPrompt.Show("Seek back (hours)", "seek", selected.Name)
	m.mode = ModeInput
	return m, nil
}

// showMessage switches to message mode and schedules auto-dismissal.
func (m *Model) showMessage(kind messageKind, text string) tea.Cmd {
	if m.mode != ModeMessage {
		m.priorMode = m.mode
	}
	m.mode = ModeMessage
	m.statusKind = kind
	m.statusMsg = text
	m.statusSeq++

	d := infoStatusDuration
	if kind == messageError {
		d = errorStatusDuration
	}
	return clearStatusAfter(d, m.statusSeq)
}

// dismissMessage restores the mode that was active before the message.
func (m *Model) dismissMessage() {
	if m.mode != ModeMessage {
		return
	}
	m.mode = m.priorMode
	m.statusMsg = ""
}
