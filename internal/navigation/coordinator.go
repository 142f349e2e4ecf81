package navigation

import (
	"time"

	"github.com/bloznelis/lgm/internal/domain/entity"
	"github.com/bloznelis/lgm/internal/logging"
)

// Intent identifies one listing request handed to the admin adapter.
// The generation travels with the request and must come back with the
// response for the result to be applied.
type Intent struct {
	Level      entity.Level
	Path       entity.Path
	Generation uint64
}

// Outcome classifies how a resolved fetch was handled.
type Outcome int

const (
	// Applied means the result matched the frame's generation and the
	// item list was installed.
	Applied Outcome = iota

	// StaleDropped means the frame was gone or a newer fetch had
	// superseded this one. Dropped silently, traced for diagnostics.
	StaleDropped

	// Failed means the adapter call errored. The frame keeps its
	// last-good items; the caller surfaces the error as a message.
	Failed
)

// Coordinator issues generation-tagged fetches against stack frames and
// validates the responses. At most one outstanding fetch per frame is
// meaningful: a second BeginFetch stamps a newer generation and the
// earlier response becomes unmatched when it eventually arrives.
//
// The counter is coordinator-global, never per frame. A frame that is
// popped and later re-entered must not restart at a generation an
// abandoned in-flight fetch for the same level and path still carries,
// so every BeginFetch across the whole session draws a fresh number.
type Coordinator struct {
	gen     uint64
	pending map[Intent]time.Time
}

// NewCoordinator returns an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{pending: make(map[Intent]time.Time)}
}

// BeginFetch supersedes any in-flight fetch for the frame by stamping
// it with the next global generation, records the pending request, and
// returns the intent the adapter call must carry. Non-blocking; the
// caller dispatches the actual network call out-of-band.
func (c *Coordinator) BeginFetch(f *Frame) Intent {
	c.gen++
	f.Generation = c.gen
	intent := Intent{Level: f.Level, Path: f.Path, Generation: f.Generation}
	c.pending[intent] = time.Now()
	return intent
}

// Resolve applies a completed fetch against the stack. The result is
// installed only when a frame still addresses the intent's level and
// path and its generation matches; otherwise the response is dropped.
// Errors never mutate the frame, so last-good data stays visible.
func (c *Coordinator) Resolve(s *Stack, intent Intent, items []entity.ResourceItem, err error) Outcome {
	delete(c.pending, intent)

	frame := s.Find(intent.Level, intent.Path)
	if frame == nil || frame.Generation != intent.Generation {
		logging.Trace("fetch.stale_dropped", map[string]interface{}{
			"level":      intent.Level.String(),
			"path":       intent.Path.Segments(),
			"generation": intent.Generation,
		})
		return StaleDropped
	}
	if err != nil {
		logging.Error(err)
		return Failed
	}

	frame.replaceItems(items)
	frame.Loaded = true
	return Applied
}

// PendingCount reports how many fetches have begun but not resolved.
// Superseded fetches still count until their response arrives and is
// dropped.
func (c *Coordinator) PendingCount() int {
	return len(c.pending)
}
