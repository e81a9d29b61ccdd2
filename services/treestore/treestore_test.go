package treestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertUnknownParent(t *testing.T) {
	s := New("course:1")

	err := s.Insert("module:1", "course:99", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Insert("module:1", "course:1", 1)
	assert.NoError(t, err)
}

func TestChildrenOrderedWithStableTies(t *testing.T) {
	s := New("course:1")

	// Serial numbers [2, 2, 1] inserted in that order must list as
	// serial 1 first, then the two serial-2 nodes in insertion order.
	require.NoError(t, s.Insert("module:10", "course:1", 2))
	require.NoError(t, s.Insert("module:11", "course:1", 2))
	require.NoError(t, s.Insert("module:12", "course:1", 1))

	children := s.Children("course:1")
	require.Len(t, children, 3)
	assert.Equal(t, "module:12", children[0].ID)
	assert.Equal(t, "module:10", children[1].ID)
	assert.Equal(t, "module:11", children[2].ID)
}

func TestRemoveReturnsWholeSubtree(t *testing.T) {
	s := New("course:1")
	require.NoError(t, s.Insert("module:1", "course:1", 1))
	require.NoError(t, s.Insert("module:2", "course:1", 2))
	require.NoError(t, s.Insert("topic:1", "module:1", 1))
	require.NoError(t, s.Insert("topic:2", "module:1", 2))
	require.NoError(t, s.Insert("content:1", "topic:1", 1))

	removed, err := s.Remove("module:1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"module:1", "topic:1", "topic:2", "content:1"}, removed)

	assert.False(t, s.Contains("topic:2"))
	assert.True(t, s.Contains("module:2"))

	children := s.Children("course:1")
	require.Len(t, children, 1)
	assert.Equal(t, "module:2", children[0].ID)
}

func TestRemoveUnknownLeavesTreeUntouched(t *testing.T) {
	s := New("course:1")
	require.NoError(t, s.Insert("module:1", "course:1", 1))

	removed, err := s.Remove("module:42")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, removed)
	assert.True(t, s.Contains("module:1"))
}

func TestRemoveRootRejected(t *testing.T) {
	s := New("course:1")
	_, err := s.Remove("course:1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReorderAllowsDuplicateKeys(t *testing.T) {
	s := New("course:1")
	require.NoError(t, s.Insert("module:1", "course:1", 1))
	require.NoError(t, s.Insert("module:2", "course:1", 2))

	// Moving module:2 onto module:1's key is accepted; insertion order
	// decides the tie.
	require.NoError(t, s.Reorder("module:2", 1))

	children := s.Children("course:1")
	require.Len(t, children, 2)
	assert.Equal(t, "module:1", children[0].ID)
	assert.Equal(t, "module:2", children[1].ID)

	err := s.Reorder("module:99", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
