package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetInstanceCount_IncrementsOnNewAndDecrementsOnFree(t *testing.T) {
	before := GetInstanceCount()

	n := New()
	require.Equal(t, before+1, GetInstanceCount())

	Free(n)
	require.Equal(t, before, GetInstanceCount())
}

func TestGetInstanceCount_FreeRecursiveDecrementsWholeSubtree(t *testing.T) {
	before := GetInstanceCount()

	root := New()
	child1 := New()
	child2 := New()
	InsertChild(root, child1, 0)
	InsertChild(root, child2, 1)
	require.Equal(t, before+3, GetInstanceCount())

	FreeRecursive(root)
	require.Equal(t, before, GetInstanceCount())
}

func TestSetMemoryFuncs_RejectsCallOnceNodesExist(t *testing.T) {
	// This package's other tests allocate nodes without freeing them, so by
	// the time this test runs the instance counter is already nonzero;
	// SetMemoryFuncs refuses to change the allocator at that point no
	// matter which hooks are passed.
	malloc := func() *Node { return &Node{} }
	calloc := func() *Node { return &Node{} }
	realloc := func(n *Node) *Node { return n }
	free := func(*Node) {}
	require.Panics(t, func() { SetMemoryFuncs(malloc, calloc, realloc, free) })
}
