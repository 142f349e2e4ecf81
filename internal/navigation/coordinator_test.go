package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

func TestCoordinator_BeginFetchBumpsGeneration(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	before := s.Current().Generation
	intent := c.BeginFetch(s.Current())

	assert.Equal(t, before+1, s.Current().Generation)
	assert.Equal(t, s.Current().Generation, intent.Generation)
	assert.Equal(t, entity.LevelTenants, intent.Level)
	assert.Equal(t, 1, c.PendingCount())
}

func TestCoordinator_ResolveApplies(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	intent := c.BeginFetch(s.Current())
	outcome := c.Resolve(s, intent, items("t1", "t2"), nil)

	assert.Equal(t, Applied, outcome)
	assert.True(t, s.Current().Loaded)
	assert.Equal(t, 0, s.Current().Cursor, "cursor lands on the first item")
	assert.Equal(t, "t1", s.Current().Selected().Name)
	assert.Equal(t, 0, c.PendingCount())
}

func TestCoordinator_StaleGenerationRejected(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	g1 := c.BeginFetch(s.Current())
	g2 := c.BeginFetch(s.Current())

	// Newer fetch resolves first.
	require.Equal(t, Applied, c.Resolve(s, g2, items("fresh"), nil))

	// The superseded g1 response arrives late and must not change items.
	outcome := c.Resolve(s, g1, items("stale-a", "stale-b"), nil)
	assert.Equal(t, StaleDropped, outcome)
	require.Len(t, s.Current().Items, 1)
	assert.Equal(t, "fresh", s.Current().Items[0].Name)
}

func TestCoordinator_ResolveAfterPopDropped(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	// Root loads with two tenants, user selects t2 and drills in.
	root := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, root, items("t1", "t2"), nil))
	s.Current().SelectNext()

	child, err := s.Push()
	require.NoError(t, err)
	childFetch := c.BeginFetch(child)

	// Back before the namespace fetch resolves.
	_, err = s.Pop()
	require.NoError(t, err)

	outcome := c.Resolve(s, childFetch, items("ns1"), nil)
	assert.Equal(t, StaleDropped, outcome)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, "t2", s.Current().Selected().Name, "parent cursor untouched")
}

func TestCoordinator_FailureKeepsLastGoodItems(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	first := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, first, items("t1", "t2"), nil))
	s.Current().SelectNext()

	retry := c.BeginFetch(s.Current())
	outcome := c.Resolve(s, retry, nil, errors.New("connection refused"))

	assert.Equal(t, Failed, outcome)
	require.Len(t, s.Current().Items, 2)
	assert.Equal(t, "t2", s.Current().Selected().Name)
}

func TestCoordinator_DeleteThenRefresh(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	// Subscriptions frame with two subs, cursor on s1.
	intent := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, intent, items("s1", "s2"), nil))
	require.Equal(t, "s1", s.Current().Selected().Name)

	// s1 deleted on the backend, re-fetch returns the survivor.
	refresh := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, refresh, items("s2"), nil))

	assert.Equal(t, 0, s.Current().Cursor)
	assert.Equal(t, "s2", s.Current().Selected().Name)
}

func TestCoordinator_RedrillSupersededFetchDiscarded(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	root := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, root, items("t1"), nil))

	// Drill in, back out before the fetch resolves, drill into the
	// same tenant again and refetch.
	child, err := s.Push()
	require.NoError(t, err)
	abandoned := c.BeginFetch(child)

	_, err = s.Pop()
	require.NoError(t, err)

	again, err := s.Push()
	require.NoError(t, err)
	refetch := c.BeginFetch(again)
	require.NotEqual(t, abandoned.Generation, refetch.Generation,
		"re-entering the same item must never reuse an in-flight generation")

	// Responses arrive newest-first. The abandoned fetch must not
	// overwrite the fresh items.
	require.Equal(t, Applied, c.Resolve(s, refetch, items("ns-new"), nil))
	outcome := c.Resolve(s, abandoned, items("ns-old-a", "ns-old-b"), nil)

	assert.Equal(t, StaleDropped, outcome)
	require.Len(t, s.Current().Items, 1)
	assert.Equal(t, "ns-new", s.Current().Items[0].Name)
}

func TestCoordinator_EndToEndDrillScenario(t *testing.T) {
	s := NewStack()
	c := NewCoordinator()

	// Root starts empty and unloaded, fetch resolves with two tenants.
	require.False(t, s.Current().Loaded)
	root := c.BeginFetch(s.Current())
	require.Equal(t, Applied, c.Resolve(s, root, items("t1", "t2"), nil))
	assert.Equal(t, "t1", s.Current().Selected().Name)

	// Select t2, drill in: new unloaded frame, fetch issued.
	s.Current().SelectNext()
	child, err := s.Push()
	require.NoError(t, err)
	assert.Equal(t, entity.Path{Tenant: "t2"}, child.Path)
	assert.False(t, child.Loaded)
	pending := c.BeginFetch(child)

	// Back before it resolves, then the response trickles in.
	_, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, StaleDropped, c.Resolve(s, pending, items("ns"), nil))
}
