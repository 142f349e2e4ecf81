// Package tui implements the interactive Pulsar browser.
// This file contains the session mode machine: which input mode is
// active and how message dismissal restores the previous one.
package tui

// SessionMode is the top-level input mode of the session. Exactly one
// mode is active at a time and it decides where key events are routed.
type SessionMode int

// Session modes.
const (
	ModeListing SessionMode = iota // Browsing the current level's item list
	ModeDetail                     // Subscription detail overlay
	ModeConfirm                    // Yes/no dialog guarding a destructive action
	ModeInput                      // Numeric prompt (seek hours)
	ModeMessage                    // Transient info/error message, any key dismisses
)

func (m SessionMode) String() string {
	switch m {
	case ModeListing:
		return "listing"
	case ModeDetail:
		return "detail"
	case ModeConfirm:
		return "confirm"
	case ModeInput:
		return "input"
	case ModeMessage:
		return "message"
	default:
		return "unknown"
	}
}

// messageKind distinguishes info from error messages. Errors stay on
// screen longer before auto-dismissing.
type messageKind int

const (
	messageInfo messageKind = iota
	messageError
)
