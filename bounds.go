package flex

// boundAxisWithinMinMax clamps value to the node's resolved min/max for
// axis, ignoring padding and border.
func boundAxisWithinMinMax(node *Node, axis FlexDirection, value, axisSize float64) float64 {
	var min, max float64
	if isColumn(axis) {
		min = Resolve(node.style.MinDimensions[dimHeight], axisSize)
		max = Resolve(node.style.MaxDimensions[dimHeight], axisSize)
	} else {
		min = Resolve(node.style.MinDimensions[dimWidth], axisSize)
		max = Resolve(node.style.MaxDimensions[dimWidth], axisSize)
	}

	bound := value
	if !Undefined(max) && max >= 0 && bound > max {
		bound = max
	}
	if !Undefined(min) && min >= 0 && bound < min {
		bound = min
	}
	return bound
}

// boundAxis is boundAxisWithinMinMax, additionally floored at the axis's
// padding+border so a node is never sized smaller than its own box model.
func boundAxis(node *Node, axis FlexDirection, value, axisSize, widthSize float64) float64 {
	return fx64Max(boundAxisWithinMinMax(node, axis, value, axisSize), paddingAndBorderForAxis(&node.style, axis, widthSize))
}

func fx64Max(a, b float64) float64 {
	if Undefined(b) {
		return a
	}
	if a > b {
		return a
	}
	return b
}

func fx64Min(a, b float64) float64 {
	if Undefined(b) {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// constrainMaxSizeForMode tightens (size, mode) against maxSize, matching
// the original engine's mode-transition table: an Undefined request with a
// defined max becomes an AtMost request capped at that max.
func constrainMaxSizeForMode(maxSize float64, mode MeasureMode, size float64) (MeasureMode, float64) {
	switch mode {
	case MeasureExactly, MeasureAtMost:
		if !Undefined(maxSize) && size > maxSize {
			size = maxSize
		}
		return mode, size
	default:
		if !Undefined(maxSize) {
			return MeasureAtMost, maxSize
		}
		return mode, size
	}
}

// isStyleDimDefined reports whether node's resolved style dimension along
// axis is usable as a definite size.
func isStyleDimDefined(node *Node, axis FlexDirection, parentSize float64) bool {
	d := node.resolvedDimensions[dimensionOf(axis)]
	if d.Unit == UnitAuto || d.Unit == UnitUndefined {
		return false
	}
	if d.Unit == UnitPoint && d.Value < 0 {
		return false
	}
	if d.Unit == UnitPercent && (d.Value < 0 || Undefined(parentSize)) {
		return false
	}
	return true
}

// isLayoutDimDefined reports whether node's current measured dimension
// along axis is a usable, finite, non-negative size.
func isLayoutDimDefined(node *Node, axis FlexDirection) bool {
	size := node.layout.MeasuredDimensions[dimensionOf(axis)]
	return !Undefined(size) && size >= 0
}

// dimWithMarginForAxis returns a node's measured size on axis plus its
// margins, the size a sibling on the same axis must make room for.
func dimWithMarginForAxis(node *Node, axis FlexDirection, widthSize float64) float64 {
	return node.layout.MeasuredDimensions[dimensionOf(axis)] +
		leadingMargin(&node.style, axis, widthSize) +
		trailingMargin(&node.style, axis, widthSize)
}

func setChildTrailingPosition(node, child *Node, axis FlexDirection) {
	size := child.layout.MeasuredDimensions[dimensionOf(axis)]
	child.layout.Position[trailingEdge(axis)] = node.layout.MeasuredDimensions[dimensionOf(axis)] - size - child.layout.Position[positionEdge(axis)]
}

// positionEdge is the edge Position[4] is read through for axis: the same
// slot as leadingEdge restricted to the Left/Top/Right/Bottom range
// Layout.Position is indexed by.
func positionEdge(axis FlexDirection) Edge { return leadingEdge(axis) }
