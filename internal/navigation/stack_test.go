package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloznelis/lgm/internal/domain/entity"
)

func items(names ...string) []entity.ResourceItem {
	out := make([]entity.ResourceItem, len(names))
	for i, n := range names {
		out[i] = entity.ResourceItem{Name: n}
	}
	return out
}

func TestNewStack(t *testing.T) {
	s := NewStack()

	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, entity.LevelTenants, s.Current().Level)
	assert.Equal(t, -1, s.Current().Cursor)
	assert.False(t, s.Current().Loaded)
}

func TestStack_PushToTerminal(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1"))

	for _, want := range []entity.Level{entity.LevelNamespaces, entity.LevelTopics, entity.LevelSubscriptions} {
		f, err := s.Push()
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, want, f.Level)
		f.replaceItems(items("x"))
	}

	// Depth never exceeds the four defined levels.
	assert.Equal(t, 4, s.Depth())
	_, err := s.Push()
	assert.ErrorIs(t, err, ErrStackDepth)
	assert.Equal(t, 4, s.Depth())
}

func TestStack_PushWithoutSelection(t *testing.T) {
	s := NewStack()

	// Nothing selected on the empty root: no frame, no error.
	f, err := s.Push()
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, 1, s.Depth())
}

func TestStack_PushBuildsPath(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("acme"))

	ns, err := s.Push()
	require.NoError(t, err)
	assert.Equal(t, "acme", ns.Path.Tenant)

	ns.replaceItems(items("orders"))
	topics, err := s.Push()
	require.NoError(t, err)
	assert.Equal(t, entity.Path{Tenant: "acme", Namespace: "orders"}, topics.Path)

	topics.replaceItems(items("events"))
	subs, err := s.Push()
	require.NoError(t, err)
	assert.Equal(t, entity.Path{Tenant: "acme", Namespace: "orders", Topic: "events"}, subs.Path)
}

func TestStack_PopRootIsError(t *testing.T) {
	s := NewStack()

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)
	assert.Equal(t, 1, s.Depth())
}

func TestStack_PopRestoresParentCursor(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1", "t2", "t3"))
	s.Current().SelectNext()
	s.Current().SelectNext()

	_, err := s.Push()
	require.NoError(t, err)

	parent, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, parent.Cursor)
	assert.Equal(t, "t3", parent.Selected().Name)
}

func TestFrame_CursorInvariant(t *testing.T) {
	f := &Frame{Cursor: -1}

	// Empty frame: cursor stays -1, movement is a no-op.
	f.SelectNext()
	f.SelectPrevious()
	f.SelectFirst()
	f.SelectLast()
	assert.Equal(t, -1, f.Cursor)
	assert.Nil(t, f.Selected())

	f.replaceItems(items("a", "b"))
	assert.Equal(t, 0, f.Cursor)

	// Emptied again: back to -1.
	f.replaceItems(nil)
	assert.Equal(t, -1, f.Cursor)
}

func TestFrame_SelectClampsAtBounds(t *testing.T) {
	f := &Frame{Cursor: -1}
	f.replaceItems(items("a", "b", "c"))

	f.SelectPrevious()
	assert.Equal(t, 0, f.Cursor, "no wraparound at the top")

	f.SelectNext()
	f.SelectNext()
	f.SelectNext()
	assert.Equal(t, 2, f.Cursor, "no wraparound at the bottom")
}

func TestFrame_Page(t *testing.T) {
	f := &Frame{Cursor: -1}
	f.replaceItems(items("a", "b", "c", "d", "e"))

	f.Page(10)
	assert.Equal(t, 4, f.Cursor)

	f.Page(-3)
	assert.Equal(t, 1, f.Cursor)

	f.Page(-10)
	assert.Equal(t, 0, f.Cursor)
}

func TestFrame_CursorStabilityByName(t *testing.T) {
	f := &Frame{Cursor: -1}
	f.replaceItems(items("a", "b", "c"))
	f.SelectNext()
	require.Equal(t, "b", f.Selected().Name)

	// Refresh keeps b: cursor follows it.
	f.replaceItems(items("a", "b", "d"))
	assert.Equal(t, "b", f.Selected().Name)

	// Refresh drops b: cursor clamps to a valid index.
	f.replaceItems(items("a", "d"))
	require.NotNil(t, f.Selected())
	assert.True(t, f.Cursor >= 0 && f.Cursor < 2)
}

func TestFrame_CursorClampsOnShrink(t *testing.T) {
	f := &Frame{Cursor: -1}
	f.replaceItems(items("s1", "s2", "s3"))
	f.SelectLast()

	f.replaceItems(items("s9"))
	assert.Equal(t, 0, f.Cursor)
	assert.Equal(t, "s9", f.Selected().Name)
}

func TestStack_Find(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1"))
	child, err := s.Push()
	require.NoError(t, err)

	assert.Same(t, child, s.Find(entity.LevelNamespaces, entity.Path{Tenant: "t1"}))
	assert.Nil(t, s.Find(entity.LevelNamespaces, entity.Path{Tenant: "other"}))

	_, err = s.Pop()
	require.NoError(t, err)
	assert.Nil(t, s.Find(entity.LevelNamespaces, entity.Path{Tenant: "t1"}),
		"popped frames must not be findable")
}

func TestStack_RepushRestoresCachedFrame(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1", "t2"))

	child, err := s.Push()
	require.NoError(t, err)
	child.replaceItems(items("ns1", "ns2", "ns3"))
	child.Loaded = true
	child.SelectLast()

	_, err = s.Pop()
	require.NoError(t, err)

	// Re-entering the same tenant redisplays the earlier visit: items,
	// cursor and loaded state all intact.
	again, err := s.Push()
	require.NoError(t, err)
	assert.Same(t, child, again)
	assert.True(t, again.Loaded)
	assert.Equal(t, 2, again.Cursor)
	assert.Equal(t, "ns3", again.Selected().Name)
}

func TestStack_RepushDifferentItemStartsEmpty(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1", "t2"))

	child, err := s.Push()
	require.NoError(t, err)
	child.replaceItems(items("ns1"))
	child.Loaded = true

	_, err = s.Pop()
	require.NoError(t, err)

	// Drilling into a sibling never visited before gets a fresh frame.
	s.Current().SelectNext()
	other, err := s.Push()
	require.NoError(t, err)
	assert.NotSame(t, child, other)
	assert.False(t, other.Loaded)
	assert.Equal(t, -1, other.Cursor)
	assert.Empty(t, other.Items)
}

func TestStack_FramesAreCopies(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t1", "t2"))

	snap := s.Frames()
	require.Len(t, snap, 1)

	snap[0].Cursor = 99
	assert.Equal(t, 0, s.Current().Cursor, "mutating the snapshot must not touch the stack")
}

func TestStack_DepthBoundsUnderRandomWalk(t *testing.T) {
	s := NewStack()
	s.Current().replaceItems(items("t"))

	// Alternating drill-in/back sequences keep depth within [1, 4].
	for i := 0; i < 50; i++ {
		if i%3 == 0 {
			if _, err := s.Pop(); err != nil {
				assert.ErrorIs(t, err, ErrEmptyStack)
			}
			continue
		}
		f, err := s.Push()
		if err != nil {
			assert.ErrorIs(t, err, ErrStackDepth)
			continue
		}
		if f != nil {
			f.replaceItems(items("x"))
		}
		require.GreaterOrEqual(t, s.Depth(), 1)
		require.LessOrEqual(t, s.Depth(), 4)
	}
}
