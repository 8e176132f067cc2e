package flex

import (
	"github.com/Krispeckt/flexlayout/internal/containers"
	"github.com/Krispeckt/flexlayout/internal/fx"
)

// MeasureMode describes how a measured dimension should be interpreted:
// as a hard fill (Exactly), an upper bound to fit within (AtMost), or an
// unconstrained request for natural/max-content size (Undefined).
type MeasureMode int8

const (
	MeasureUndefined MeasureMode = iota
	MeasureExactly
	MeasureAtMost
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "Exactly"
	case MeasureAtMost:
		return "AtMost"
	default:
		return "Undefined"
	}
}

// MeasureFunc is installed on leaf nodes that know how to measure their own
// content (e.g. text). A node with a MeasureFunc must have zero children.
type MeasureFunc func(node *Node, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) (width2, height2 float64)

// BaselineFunc overrides a node's default baseline computation. It must
// return a finite value.
type BaselineFunc func(node *Node, width, height float64) float64

// PrintFunc is invoked per-node by the debug tree dump.
type PrintFunc func(node *Node)

// cachedMeasurement is one entry of the measurement cache: a request
// (availW, availH, widthMode, heightMode) paired with the size it
// computed.
type cachedMeasurement struct {
	availableWidth  float64
	availableHeight float64
	widthMode       MeasureMode
	heightMode      MeasureMode
	computedWidth   float64
	computedHeight  float64
}

const maxCachedMeasurements = 16

// Layout is the computed output of one layout pass: final position and
// size, resolved box-model edges, and the bookkeeping the measurement
// cache and cache-gate need across calls.
type Layout struct {
	Position [4]float64 // indexed by Edge{Left,Top,Right,Bottom}
	Dimensions,
	MeasuredDimensions [dimCount]float64

	Margin, Border, Padding [6]float64 // indexed by Edge{Left,Top,Right,Bottom,Start,End}

	Direction Direction

	ComputedFlexBasis           float64
	ComputedFlexBasisGeneration uint32

	GenerationCount     uint32
	LastParentDirection Direction

	cachedLayout                cachedMeasurement
	hasCachedLayout             bool
	cachedMeasurements          [maxCachedMeasurements]cachedMeasurement
	nextCachedMeasurementsIndex int
}

func newLayout() Layout {
	var l Layout
	for i := range l.Dimensions {
		l.Dimensions[i] = fx.NaN()
		l.MeasuredDimensions[i] = fx.NaN()
	}
	l.ComputedFlexBasis = fx.NaN()
	return l
}

// Node is one box in the layout tree: a Style the caller mutates, the
// Layout the engine computes, and the tree/callback plumbing that ties
// nodes together.
type Node struct {
	style  Style
	layout Layout

	parent   *Node
	children containers.List[*Node]

	measure  MeasureFunc
	baseline BaselineFunc
	print    PrintFunc

	context any

	isDirty     bool
	hasNewLayout bool

	resolvedDimensions [dimCount]*Value

	lineIndex int

	// nextChild threads a private, single-layout-pass linked list of
	// relative or absolute siblings built fresh inside every LayoutImpl
	// invocation. It is scratch state, not part of the tree shape, and
	// must never be read outside one call to layoutImpl.
	nextChild *Node
}

// New allocates a fresh Node with a deep-copied default Style. It counts
// against the process-wide instance counter.
func New() *Node {
	n := allocNode()
	n.style = defaultStyle()
	n.layout = newLayout()
	n.isDirty = true
	ResolveDimensions(n)
	incrementInstanceCount()
	return n
}

// GetInstanceCount returns the number of live nodes created by New and not
// yet freed.
func GetInstanceCount() int {
	return instanceCount()
}

// Reset restores n to a freshly-allocated state. n must have no parent and
// no children.
func Reset(n *Node) {
	assertf(n.children.Count() == 0, "Reset: node still has children")
	assertf(n.parent == nil, "Reset: node still has a parent")

	*n = Node{}
	n.style = defaultStyle()
	n.layout = newLayout()
	n.isDirty = true
	ResolveDimensions(n)
}

// Free detaches n from its parent (if any) and returns it to the
// allocator, orphaning n's children rather than freeing them.
func Free(n *Node) {
	if n.parent != nil {
		RemoveChild(n.parent, n)
	}
	for i := 0; i < n.children.Count(); i++ {
		n.children.At(i).parent = nil
	}
	freeNode(n)
	decrementInstanceCount()
}

// FreeRecursive frees n's entire subtree, children first.
func FreeRecursive(n *Node) {
	for n.children.Count() > 0 {
		child := n.children.At(0)
		n.children.RemoveAt(0)
		child.parent = nil
		FreeRecursive(child)
	}
	if n.parent != nil {
		RemoveChild(n.parent, n)
	}
	freeNode(n)
	decrementInstanceCount()
}

// GetChildCount returns the number of children directly owned by n.
func GetChildCount(n *Node) int { return n.children.Count() }

// GetChild returns n's child at index, or nil if out of range.
func GetChild(n *Node, index int) *Node {
	if index < 0 || index >= n.children.Count() {
		return nil
	}
	return n.children.At(index)
}

// GetParent returns n's parent, or nil at the root.
func GetParent(n *Node) *Node { return n.parent }

// InsertChild inserts child into parent's child list at index. child must
// not already have a parent, and parent must not have a measure function
// installed.
func InsertChild(parent, child *Node, index int) {
	assertf(child.parent == nil, "InsertChild: child already has a parent")
	assertf(parent.measure == nil, "InsertChild: cannot add a child to a node with a measure function")

	parent.children.InsertAt(index, child)
	child.parent = parent
	markDirtyInternal(parent)
}

// RemoveChild removes child from parent's child list, if present, and
// clears child's parent back-reference.
func RemoveChild(parent, child *Node) {
	if parent.children.DeleteIdentity(child) {
		child.parent = nil
		markDirtyInternal(parent)
	}
}

// SetContext attaches an opaque owner-defined handle to n.
func SetContext(n *Node, context any) { n.context = context }

// Context returns n's opaque owner-defined handle.
func Context(n *Node) any { return n.context }

// SetMeasureFunc installs fn as n's measure callback. n must have no
// children.
func SetMeasureFunc(n *Node, fn MeasureFunc) {
	assertf(fn == nil || n.children.Count() == 0, "SetMeasureFunc: node with children cannot have a measure function")
	n.measure = fn
	markDirtyInternal(n)
}

// HasMeasureFunc reports whether n has a measure callback installed.
func HasMeasureFunc(n *Node) bool { return n.measure != nil }

// SetBaselineFunc installs fn as n's baseline callback.
func SetBaselineFunc(n *Node, fn BaselineFunc) { n.baseline = fn }

// SetPrintFunc installs fn as n's debug-print callback.
func SetPrintFunc(n *Node, fn PrintFunc) { n.print = fn }

// IsDirty reports whether n is marked dirty.
func IsDirty(n *Node) bool { return n.isDirty }

// MarkDirty marks n (and propagates to every ancestor, stopping at the
// first already-dirty one) dirty. Every style setter already does this on
// an effective change; callers only need it directly for measure-function
// nodes whose underlying content changed without a style mutation, which
// is also the only case it allows: n must be a leaf with a measure
// function installed.
func MarkDirty(n *Node) {
	assertf(n.measure != nil, "MarkDirty: only leaf nodes with a measure function may be marked dirty directly")
	markDirtyInternal(n)
}

// markDirtyInternal is the propagate-toward-root implementation shared by
// MarkDirty and every style setter; it stops at the first node that is
// already dirty.
func markDirtyInternal(n *Node) {
	if n.isDirty {
		return
	}
	n.isDirty = true
	n.layout.ComputedFlexBasis = fx.NaN()
	if n.parent != nil {
		markDirtyInternal(n.parent)
	}
}

// HasNewLayout reports whether n received a new computed layout during the
// most recent CalculateLayout call.
func HasNewLayout(n *Node) bool { return n.hasNewLayout }

// SetHasNewLayout clears (or sets) the has-new-layout flag; callers
// typically clear it after consuming a layout.
func SetHasNewLayout(n *Node, has bool) { n.hasNewLayout = has }

// GetStyle returns a pointer to n's mutable style. Prefer the dedicated
// getter/setter pairs in style_setters.go, which maintain the dirty
// contract; this accessor exists for callers that need to inspect the
// whole style at once.
func GetStyle(n *Node) *Style { return &n.style }

// GetLayout returns a pointer to n's computed layout.
func GetLayout(n *Node) *Layout { return &n.layout }

// CopyStyle overwrites dst's whole style with a copy of src's, dirtying
// dst only if the two styles actually differ.
func CopyStyle(dst, src *Node) {
	if !styleEq(&dst.style, &src.style) {
		dst.style = src.style
		markDirtyInternal(dst)
	}
}

// ResolveDimensions points resolvedDimensions[d] at MaxDimensions[d] when
// MaxDimensions[d] is defined and equal to MinDimensions[d], otherwise at
// Dimensions[d].
func ResolveDimensions(n *Node) {
	for d := dimension(0); d < dimCount; d++ {
		max := n.style.MaxDimensions[d]
		min := n.style.MinDimensions[d]
		if !max.IsUndefined() && max.Value == min.Value && max.Unit == min.Unit {
			n.resolvedDimensions[d] = &n.style.MaxDimensions[d]
		} else {
			n.resolvedDimensions[d] = &n.style.Dimensions[d]
		}
	}
}
