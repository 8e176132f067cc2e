package flex

// isRow reports whether axis runs horizontally.
func isRow(axis FlexDirection) bool { return axis == Row || axis == RowReverse }

// isColumn reports whether axis runs vertically.
func isColumn(axis FlexDirection) bool { return !isRow(axis) }

// FlexDirectionResolve flips Row/RowReverse under RTL so that "leading"
// always lands on the writing direction's start.
func FlexDirectionResolve(flexDirection FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		if flexDirection == Row {
			return RowReverse
		}
		if flexDirection == RowReverse {
			return Row
		}
	}
	return flexDirection
}

// FlexDirectionCross returns the axis perpendicular to a resolved main
// axis, itself resolved against direction.
func FlexDirectionCross(flexDirection FlexDirection, direction Direction) FlexDirection {
	if isColumn(flexDirection) {
		return FlexDirectionResolve(Row, direction)
	}
	return Column
}

// dimensionOf maps an axis to the Dimensions/MeasuredDimensions slot it
// measures along.
func dimensionOf(axis FlexDirection) dimension {
	if isRow(axis) {
		return dimWidth
	}
	return dimHeight
}

// leadingEdge and trailingEdge index by FlexDirection (Column,
// ColumnReverse, Row, RowReverse — matching the iota order in style.go).
var leadingEdgeTable = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
var trailingEdgeTable = [4]Edge{EdgeBottom, EdgeTop, EdgeRight, EdgeLeft}

func leadingEdge(axis FlexDirection) Edge  { return leadingEdgeTable[axis] }
func trailingEdge(axis FlexDirection) Edge { return trailingEdgeTable[axis] }

func leadingMargin(style *Style, axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && !style.Margin[EdgeStart].IsUndefined() {
		return ResolveMargin(style.Margin[EdgeStart], widthSize)
	}
	return ResolveMargin(ComputedEdgeValue(style.Margin, leadingEdge(axis), Point(0)), widthSize)
}

func trailingMargin(style *Style, axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && !style.Margin[EdgeEnd].IsUndefined() {
		return ResolveMargin(style.Margin[EdgeEnd], widthSize)
	}
	return ResolveMargin(ComputedEdgeValue(style.Margin, trailingEdge(axis), Point(0)), widthSize)
}

func leadingPadding(style *Style, axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && !style.Padding[EdgeStart].IsUndefined() && Resolve(style.Padding[EdgeStart], widthSize) >= 0 {
		return Resolve(style.Padding[EdgeStart], widthSize)
	}
	v := Resolve(ComputedEdgeValue(style.Padding, leadingEdge(axis), Point(0)), widthSize)
	return fMaxZero(v)
}

func trailingPadding(style *Style, axis FlexDirection, widthSize float64) float64 {
	if isRow(axis) && !style.Padding[EdgeEnd].IsUndefined() && Resolve(style.Padding[EdgeEnd], widthSize) >= 0 {
		return Resolve(style.Padding[EdgeEnd], widthSize)
	}
	v := Resolve(ComputedEdgeValue(style.Padding, trailingEdge(axis), Point(0)), widthSize)
	return fMaxZero(v)
}

func leadingBorder(style *Style, axis FlexDirection) float64 {
	if isRow(axis) && !style.Border[EdgeStart].IsUndefined() && style.Border[EdgeStart].Value >= 0 {
		return style.Border[EdgeStart].Value
	}
	v := ComputedEdgeValue(style.Border, leadingEdge(axis), Point(0)).Value
	return fMaxZero(v)
}

func trailingBorder(style *Style, axis FlexDirection) float64 {
	if isRow(axis) && !style.Border[EdgeEnd].IsUndefined() && style.Border[EdgeEnd].Value >= 0 {
		return style.Border[EdgeEnd].Value
	}
	v := ComputedEdgeValue(style.Border, trailingEdge(axis), Point(0)).Value
	return fMaxZero(v)
}

func leadingPaddingAndBorder(style *Style, axis FlexDirection, widthSize float64) float64 {
	return leadingPadding(style, axis, widthSize) + leadingBorder(style, axis)
}

func trailingPaddingAndBorder(style *Style, axis FlexDirection, widthSize float64) float64 {
	return trailingPadding(style, axis, widthSize) + trailingBorder(style, axis)
}

func marginForAxis(style *Style, axis FlexDirection, widthSize float64) float64 {
	return leadingMargin(style, axis, widthSize) + trailingMargin(style, axis, widthSize)
}

func paddingAndBorderForAxis(style *Style, axis FlexDirection, widthSize float64) float64 {
	return leadingPaddingAndBorder(style, axis, widthSize) + trailingPaddingAndBorder(style, axis, widthSize)
}

func fMaxZero(v float64) float64 {
	if Undefined(v) || v < 0 {
		return 0
	}
	return v
}

// isLeadingPosDefined reports whether axis's leading position is pinned:
// for row axes, a defined Start counts too, and leadingPosition resolves
// Start ahead of leading[axis].
func isLeadingPosDefined(style *Style, axis FlexDirection) bool {
	if isRow(axis) && !ComputedEdgeValue(style.Position, EdgeStart, ValueUndefined).IsUndefined() {
		return true
	}
	return !ComputedEdgeValue(style.Position, leadingEdge(axis), ValueUndefined).IsUndefined()
}

func isTrailingPosDefined(style *Style, axis FlexDirection) bool {
	if isRow(axis) && !ComputedEdgeValue(style.Position, EdgeEnd, ValueUndefined).IsUndefined() {
		return true
	}
	return !ComputedEdgeValue(style.Position, trailingEdge(axis), ValueUndefined).IsUndefined()
}

func leadingPosition(style *Style, axis FlexDirection, axisSize float64) float64 {
	if isRow(axis) {
		if start := ComputedEdgeValue(style.Position, EdgeStart, ValueUndefined); !start.IsUndefined() {
			return Resolve(start, axisSize)
		}
	}
	leading := ComputedEdgeValue(style.Position, leadingEdge(axis), ValueUndefined)
	if leading.IsUndefined() {
		return 0
	}
	return Resolve(leading, axisSize)
}

func trailingPosition(style *Style, axis FlexDirection, axisSize float64) float64 {
	if isRow(axis) {
		if end := ComputedEdgeValue(style.Position, EdgeEnd, ValueUndefined); !end.IsUndefined() {
			return Resolve(end, axisSize)
		}
	}
	trailing := ComputedEdgeValue(style.Position, trailingEdge(axis), ValueUndefined)
	if trailing.IsUndefined() {
		return 0
	}
	return Resolve(trailing, axisSize)
}

// relativePosition computes how far a relatively-positioned node is offset
// from its flow position along axis: the leading edge wins
// over the trailing edge when both are given.
func relativePosition(style *Style, axis FlexDirection, axisSize float64) float64 {
	if isLeadingPosDefined(style, axis) {
		return leadingPosition(style, axis, axisSize)
	}
	return -trailingPosition(style, axis, axisSize)
}
