// Package tui implements the interactive Pulsar browser.
// This file contains the key dispatcher: a pure mapping from a key
// event plus the current mode and level to an Action. The Update loop
// executes actions, the dispatcher never mutates state.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloznelis/lgm/internal/adapters/tui/keys"
	"github.com/bloznelis/lgm/internal/domain/entity"
)

// Action is what a key event asks the session to do.
type Action int

// Dispatcher actions.
const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveFirst
	ActionMoveLast
	ActionPageUp
	ActionPageDown
	ActionDrill   // Push into the selected item, or open detail at the last level
	ActionBack    // Pop to the parent level
	ActionRefresh // Re-fetch the current level
	ActionDelete  // Delete the selected subscription (confirm first)
	ActionSkip    // Skip the selected subscription's backlog (confirm first)
	ActionSeek    // Seek the selected subscription's cursor back N hours
	ActionHelp
	ActionQuit
	ActionDismiss // Dismiss the current message
)

// Dispatch maps a key event to an Action given the session mode and
// the level currently on screen.
//
// Modes with their own focused component (confirm, input, detail)
// return ActionNone: their keys are routed to the component by the
// Update loop, not decided here. In message mode any key dismisses
// the message. Ctrl+C is handled globally before dispatch.
func Dispatch(msg tea.KeyMsg, mode SessionMode, level entity.Level, km keys.KeyMap) Action {
	switch mode {
	case ModeMessage:
		return ActionDismiss
	case ModeConfirm, ModeInput, ModeDetail:
		return ActionNone
	}

	if key.Matches(msg, km.Quit) {
		return ActionQuit
	}

	switch {
	case key.Matches(msg, km.Up):
		return ActionMoveUp
	case key.Matches(msg, km.Down):
		return ActionMoveDown
	case key.Matches(msg, km.Home):
		return ActionMoveFirst
	case key.Matches(msg, km.End):
		return ActionMoveLast
	case key.Matches(msg, km.PageUp):
		return ActionPageUp
	case key.Matches(msg, km.PageDown):
		return ActionPageDown
	case key.Matches(msg, km.Enter):
		return ActionDrill
	case key.Matches(msg, km.Back):
		return ActionBack
	case key.Matches(msg, km.Refresh):
		return ActionRefresh
	case key.Matches(msg, km.Help):
		return ActionHelp
	}

	// Subscription mutations only exist at the subscriptions level.
	if level == entity.LevelSubscriptions {
		switch {
		case key.Matches(msg, km.Delete):
			return ActionDelete
		case key.Matches(msg, km.Skip):
			return ActionSkip
		case key.Matches(msg, km.Seek):
			return ActionSeek
		}
	}

	return ActionNone
}
