// Package tui implements the interactive Pulsar browser.
// This file contains all message types used for communication between
// bubbletea commands and the Update loop via the tea.Msg interface.
package tui

import (
	"github.com/bloznelis/lgm/internal/domain/entity"
	"github.com/bloznelis/lgm/internal/navigation"
)

// itemsLoadedMsg is sent when a listing fetch completes. The intent
// identifies which frame and generation the fetch was started for, so
// stale results can be discarded.
type itemsLoadedMsg struct {
	intent navigation.Intent     // Frame identity and generation at fetch time
	items  []entity.ResourceItem // Fetched items, sorted by name (nil on error)
	err    error                 // Error if the fetch failed
}

// detailLoadedMsg is sent when subscription stats are fetched for the
// detail overlay.
type detailLoadedMsg struct {
	detail *entity.SubscriptionDetail // Full subscription stats with consumers
	err    error                      // Error if the fetch failed
}

// actionDoneMsg is sent when a subscription mutation completes.
type actionDoneMsg struct {
	action       string // "delete", "skip" or "seek"
	subscription string // Short name of the affected subscription
	err          error  // Error if the operation failed (nil on success)
}

// clearStatusMsg is sent to dismiss the status message after a delay.
// Carries the sequence number of the message it should clear so a
// newer message is not dismissed by an older timer.
type clearStatusMsg struct {
	seq int
}
