package stack_test

import (
	"testing"

	"github.com/lestrrat-go/xmlpick/internal/stack"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	s := stack.New()
	require.Equal(t, "/", s.Path(), "empty stack renders as the root path")
	require.Equal(t, 0, s.Len(), "empty stack has no entries")

	s.Push("root")
	s.Push("item")
	require.Equal(t, "/root/item/", s.Path(), "rendered path follows pushes")
	require.Equal(t, 2, s.Len(), "stack length follows pushes")

	require.Equal(t, "item", s.Pop(), "Pop returns the last pushed name")
	require.Equal(t, "/root/", s.Path(), "rendered path follows pops")

	require.Equal(t, "root", s.Pop(), "Pop returns the last pushed name")
	require.Equal(t, "/", s.Path(), "popping everything returns to root")

	require.Equal(t, "", s.Pop(), "popping an empty stack is a no-op")
	require.Equal(t, "/", s.Path(), "path unchanged after popping empty stack")
}

func TestTagsReset(t *testing.T) {
	s := stack.New()
	s.Push("a")
	s.Push("b")
	s.Reset()
	require.Equal(t, "/", s.Path(), "Reset returns to the root path")
	require.Equal(t, 0, s.Len(), "Reset empties the stack")

	s.Push("c")
	require.Equal(t, "/c/", s.Path(), "stack is reusable after Reset")
}
