package flex

// layoutMeasureFuncNode sizes a leaf whose size comes from
// an owner-supplied MeasureFunc rather than from children.
func layoutMeasureFuncNode(node *Node, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) {
	marginRow := marginForAxis(&node.style, Row, parentWidth)
	marginColumn := marginForAxis(&node.style, Column, parentWidth)

	innerWidth := availableWidth - marginRow - paddingAndBorderForAxis(&node.style, Row, parentWidth)
	innerHeight := availableHeight - marginColumn - paddingAndBorderForAxis(&node.style, Column, parentWidth)

	if widthMeasureMode == MeasureExactly && heightMeasureMode == MeasureExactly {
		node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, availableWidth-marginRow, parentWidth, parentWidth)
		node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, availableHeight-marginColumn, parentHeight, parentWidth)
		return
	}

	if innerWidth <= 0 || innerHeight <= 0 {
		node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, 0, availableWidth, availableWidth)
		node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, 0, availableHeight, availableWidth)
		return
	}

	w, h := node.measure(node, innerWidth, widthMeasureMode, innerHeight, heightMeasureMode)

	measuredWidth := w
	if widthMeasureMode == MeasureExactly {
		measuredWidth = availableWidth - marginRow
	} else {
		measuredWidth += paddingAndBorderForAxis(&node.style, Row, parentWidth)
	}
	measuredHeight := h
	if heightMeasureMode == MeasureExactly {
		measuredHeight = availableHeight - marginColumn
	} else {
		measuredHeight += paddingAndBorderForAxis(&node.style, Column, parentWidth)
	}

	node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, measuredWidth, availableWidth, availableWidth)
	node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, measuredHeight, availableHeight, availableWidth)
}

// layoutEmptyContainer sizes a node with zero children,
// sized from its own box model alone.
func layoutEmptyContainer(node *Node, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) {
	marginRow := marginForAxis(&node.style, Row, parentWidth)
	marginColumn := marginForAxis(&node.style, Column, parentWidth)

	width := availableWidth - marginRow
	if widthMeasureMode == MeasureUndefined || widthMeasureMode == MeasureAtMost {
		width = paddingAndBorderForAxis(&node.style, Row, parentWidth)
	}
	height := availableHeight - marginColumn
	if heightMeasureMode == MeasureUndefined || heightMeasureMode == MeasureAtMost {
		height = paddingAndBorderForAxis(&node.style, Column, parentWidth)
	}

	node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, width, availableWidth, availableWidth)
	node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, height, availableHeight, availableWidth)
}

// fixedSizeApplies reports whether a node's size is already fully pinned
// by its available-space request, letting the caller skip straight to
// layoutFixedSize instead of running the full algorithm.
func fixedSizeApplies(availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode) bool {
	if widthMeasureMode == MeasureAtMost && availableWidth <= 0 {
		return true
	}
	if heightMeasureMode == MeasureAtMost && availableHeight <= 0 {
		return true
	}
	return widthMeasureMode == MeasureExactly && heightMeasureMode == MeasureExactly
}

// layoutFixedSize sizes a node whose size is already fully known from
// its available-space request, skipping the full algorithm.
func layoutFixedSize(node *Node, availableWidth, availableHeight float64, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64) {
	marginRow := marginForAxis(&node.style, Row, parentWidth)
	marginColumn := marginForAxis(&node.style, Column, parentWidth)

	width := availableWidth - marginRow
	if Undefined(width) || (widthMeasureMode == MeasureAtMost && width < 0) {
		width = 0
	}
	height := availableHeight - marginColumn
	if Undefined(height) || (heightMeasureMode == MeasureAtMost && height < 0) {
		height = 0
	}

	node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, width, availableWidth, availableWidth)
	node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, height, availableHeight, availableWidth)
}
