// Package navigation implements the drill-down state engine behind the
// resource browser: a stack of level frames with per-frame cursor
// memory, and a fetch coordinator that tags every listing request with
// a generation so late responses can never overwrite a newer view.
package navigation

import (
	"errors"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

// Contract violations at the stack boundary. These indicate a bug in
// the caller (the mode state machine never drills past Subscriptions
// or pops the root), not a runtime condition to recover from.
var (
	// ErrEmptyStack is returned when popping would remove the root frame.
	ErrEmptyStack = errors.New("navigation: cannot pop root frame")

	// ErrStackDepth is returned when pushing past the deepest level.
	ErrStackDepth = errors.New("navigation: cannot push past subscriptions")
)

// Frame is one entry of the navigation stack: the cached item list for
// a level plus the cursor position within it. Cursor is -1 exactly when
// Items is empty, otherwise a valid index.
type Frame struct {
	Level      entity.Level
	Path       entity.Path
	Items      []entity.ResourceItem
	Cursor     int
	Loaded     bool
	Generation uint64
}

// Selected returns the item under the cursor, or nil on an empty frame.
func (f *Frame) Selected() *entity.ResourceItem {
	if f.Cursor < 0 || f.Cursor >= len(f.Items) {
		return nil
	}
	return &f.Items[f.Cursor]
}

// SelectNext moves the cursor down one item, clamping at the end.
// No-op on an empty frame.
func (f *Frame) SelectNext() {
	if len(f.Items) == 0 {
		return
	}
	if f.Cursor < len(f.Items)-1 {
		f.Cursor++
	}
}

// SelectPrevious moves the cursor up one item, clamping at the start.
// No-op on an empty frame.
func (f *Frame) SelectPrevious() {
	if len(f.Items) == 0 {
		return
	}
	if f.Cursor > 0 {
		f.Cursor--
	}
}

// SelectFirst jumps the cursor to the first item.
func (f *Frame) SelectFirst() {
	if len(f.Items) > 0 {
		f.Cursor = 0
	}
}

// SelectLast jumps the cursor to the last item.
func (f *Frame) SelectLast() {
	if len(f.Items) > 0 {
		f.Cursor = len(f.Items) - 1
	}
}

// Page moves the cursor by delta rows, clamping at both ends.
func (f *Frame) Page(delta int) {
	if len(f.Items) == 0 {
		return
	}
	f.Cursor += delta
	if f.Cursor < 0 {
		f.Cursor = 0
	}
	if f.Cursor >= len(f.Items) {
		f.Cursor = len(f.Items) - 1
	}
}

// replaceItems installs a fresh item list. When the previously selected
// name survives the refresh the cursor follows it; otherwise the cursor
// is clamped into the new bounds. This is what keeps the selection
// sensible after a delete-then-refresh shrinks the list.
func (f *Frame) replaceItems(items []entity.ResourceItem) {
	var selected string
	if it := f.Selected(); it != nil {
		selected = it.Name
	}

	f.Items = items
	if len(items) == 0 {
		f.Cursor = -1
		return
	}
	if selected != "" {
		for i := range items {
			if items[i].Name == selected {
				f.Cursor = i
				return
			}
		}
	}
	if f.Cursor < 0 {
		f.Cursor = 0
	}
	if f.Cursor >= len(items) {
		f.Cursor = len(items) - 1
	}
}

// cacheKey addresses a previously visited frame by its identity.
type cacheKey struct {
	level entity.Level
	path  entity.Path
}

// Stack is the ordered sequence of frames the user has drilled into,
// root (Tenants) first. It is the single source of truth for cursor
// memory: re-entering a cached frame restores its own cursor, never a
// shared "last position". Popped frames are kept for the session so
// re-entering an item redisplays its items and cursor instantly while
// a background refresh runs.
type Stack struct {
	frames []*Frame
	popped map[cacheKey]*Frame
}

// NewStack returns a stack holding the unloaded root Tenants frame.
func NewStack() *Stack {
	return &Stack{
		frames: []*Frame{{Level: entity.LevelTenants, Cursor: -1}},
		popped: make(map[cacheKey]*Frame),
	}
}

// Depth returns the number of frames on the stack. Never less than 1.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns the top frame. The stack is never empty, so the
// result is always non-nil.
func (s *Stack) Current() *Frame {
	return s.frames[len(s.frames)-1]
}

// Push drills into the current frame's selected item, appending a
// frame for the next level. An item visited earlier in the session
// comes back with its items, cursor and loaded state intact; a first
// visit gets an empty unloaded frame. Returns ErrStackDepth when the
// current level is terminal.
func (s *Stack) Push() (*Frame, error) {
	top := s.Current()
	if top.Level.Terminal() {
		return nil, ErrStackDepth
	}
	sel := top.Selected()
	if sel == nil {
		return nil, nil
	}

	level := top.Level.Next()
	path := top.Path.Child(top.Level, sel.Name)
	frame, ok := s.popped[cacheKey{level: level, path: path}]
	if !ok {
		frame = &Frame{Level: level, Path: path, Cursor: -1}
	}
	s.frames = append(s.frames, frame)
	return frame, nil
}

// Pop removes the top frame, restoring the parent with its cursor
// untouched. The removed frame is retained for re-entry. Returns
// ErrEmptyStack when only the root remains; callers treat backing out
// of root as a no-op, not a user-facing error.
func (s *Stack) Pop() (*Frame, error) {
	if len(s.frames) == 1 {
		return nil, ErrEmptyStack
	}
	top := s.Current()
	s.popped[cacheKey{level: top.Level, path: top.Path}] = top
	s.frames = s.frames[:len(s.frames)-1]
	return s.Current(), nil
}

// Find returns the frame addressing the given level and path, or nil.
// Late fetch results resolve through here: a popped frame is simply no
// longer findable and the result is dropped.
func (s *Stack) Find(level entity.Level, path entity.Path) *Frame {
	for _, f := range s.frames {
		if f.Level == level && f.Path == path {
			return f
		}
	}
	return nil
}

// Frames returns value copies of every frame, root-first, for the
// renderer. The copies share the item slices but the renderer treats
// them as read-only.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	for i, f := range s.frames {
		out[i] = *f
	}
	return out
}
