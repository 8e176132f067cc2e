package flex

// Memory allocation is process-wide, matching the engine's single global
// generation/instance counters: there is no
// per-tree allocator handle, only hooks an embedder can install once before
// creating any node. The four-function shape (malloc/calloc/realloc/free)
// mirrors the C allocator contract the engine exposes; Go's Node pointers
// stand in for the raw buffers.

type (
	// MallocFunc returns a new, not-necessarily-zeroed Node.
	MallocFunc func() *Node
	// CallocFunc returns a new, zero-valued Node.
	CallocFunc func() *Node
	// ReallocFunc is given a live Node and returns the Node that should be
	// used in its place (a plain identity function is a valid realloc).
	ReallocFunc func(*Node) *Node
	// FreeFunc releases a Node allocated by Malloc/Calloc/Realloc.
	FreeFunc func(*Node)
)

var (
	instanceCounter int64

	nodeMalloc  MallocFunc  = func() *Node { return &Node{} }
	nodeCalloc  CallocFunc  = func() *Node { return &Node{} }
	nodeRealloc ReallocFunc = func(n *Node) *Node { return n }
	nodeFree    FreeFunc    = func(*Node) {}
)

// SetMemoryFuncs installs custom allocation hooks for Node storage. All
// four must be non-nil, or all four nil to restore the default Go-
// allocator behaviour; it is a contract violation to call this while any
// node is alive (the instance count is nonzero).
func SetMemoryFuncs(malloc MallocFunc, calloc CallocFunc, realloc ReallocFunc, free FreeFunc) {
	assertf(instanceCounter == 0, "SetMemoryFuncs: cannot change allocator once nodes exist")

	allNil := malloc == nil && calloc == nil && realloc == nil && free == nil
	allSet := malloc != nil && calloc != nil && realloc != nil && free != nil
	assertf(allNil || allSet, "SetMemoryFuncs: malloc, calloc, realloc and free must be set together or not at all")

	if allNil {
		nodeMalloc = func() *Node { return &Node{} }
		nodeCalloc = func() *Node { return &Node{} }
		nodeRealloc = func(n *Node) *Node { return n }
		nodeFree = func(*Node) {}
		return
	}
	nodeMalloc, nodeCalloc, nodeRealloc, nodeFree = malloc, calloc, realloc, free
}

// allocNode allocates the zeroed storage a new Node is built on top of.
func allocNode() *Node { return nodeCalloc() }

func freeNode(n *Node) { nodeFree(n) }

func instanceCount() int { return int(instanceCounter) }

func incrementInstanceCount() { instanceCounter++ }

func decrementInstanceCount() {
	assertf(instanceCounter > 0, "decrementInstanceCount: instance count underflow")
	instanceCounter--
}
