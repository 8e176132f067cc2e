package flex

// Edge identifies one of the nine addressable edges/shorthands a Style's
// margin, padding, border and position arrays are keyed by.
type Edge int8

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
	edgeCount
)

// Edges holds one Value per Edge, indexable by the Edge constants.
type Edges [edgeCount]Value

// ComputedEdgeValue resolves a single, physical edge (Left/Top/Right/
// Bottom/Start/End — never a shorthand) against the shorthand fallback
// chain CSS box edges use:
//
//  1. the edge itself, if defined;
//  2. Vertical (for Top/Bottom) or Horizontal (for Left/Right/Start/End),
//     if defined;
//  3. All, if defined;
//  4. for Start/End only: explicit Undefined, never falling through to
//     defaultValue;
//  5. otherwise defaultValue.
//
// Calling ComputedEdgeValue with a shorthand edge (Horizontal, Vertical,
// All) is a programming error.
func ComputedEdgeValue(edges Edges, edge Edge, defaultValue Value) Value {
	assertf(edge != EdgeHorizontal && edge != EdgeVertical && edge != EdgeAll,
		"ComputedEdgeValue: edge must not be a shorthand (got %d)", edge)

	if !edges[edge].IsUndefined() {
		return edges[edge]
	}

	switch edge {
	case EdgeTop, EdgeBottom:
		if !edges[EdgeVertical].IsUndefined() {
			return edges[EdgeVertical]
		}
	case EdgeLeft, EdgeRight, EdgeStart, EdgeEnd:
		if !edges[EdgeHorizontal].IsUndefined() {
			return edges[EdgeHorizontal]
		}
	}

	if !edges[EdgeAll].IsUndefined() {
		return edges[EdgeAll]
	}

	if edge == EdgeStart || edge == EdgeEnd {
		return ValueUndefined
	}

	return defaultValue
}
