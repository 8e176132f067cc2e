package flex

import "github.com/Krispeckt/flexlayout/internal/fx"

// absoluteLayoutChild sizes and positions one
// absolutely-positioned child against node's already-measured box.
func absoluteLayoutChild(node, child *Node, width float64, widthMode MeasureMode, height float64, direction Direction) {
	mainAxis := FlexDirectionResolve(node.style.FlexDirection, direction)
	crossAxis := FlexDirectionCross(mainAxis, direction)
	isMainAxisRow := isRow(mainAxis)

	childWidth, childHeight := fx.NaN(), fx.NaN()
	childWidthMode, childHeightMode := MeasureUndefined, MeasureUndefined

	marginRow := marginForAxis(&child.style, Row, width)
	marginColumn := marginForAxis(&child.style, Column, width)

	if isStyleDimDefined(child, Row, width) {
		childWidth = Resolve(*child.resolvedDimensions[dimWidth], width) + marginRow
	} else if isLeadingPosDefined(&child.style, Row) && isTrailingPosDefined(&child.style, Row) {
		childWidth = node.layout.MeasuredDimensions[dimWidth] -
			(leadingBorder(&node.style, Row) + trailingBorder(&node.style, Row)) -
			(leadingPosition(&child.style, Row, width) + trailingPosition(&child.style, Row, width))
		childWidth = boundAxis(child, Row, childWidth, width, width)
	}

	if isStyleDimDefined(child, Column, height) {
		childHeight = Resolve(*child.resolvedDimensions[dimHeight], height) + marginColumn
	} else if isLeadingPosDefined(&child.style, Column) && isTrailingPosDefined(&child.style, Column) {
		childHeight = node.layout.MeasuredDimensions[dimHeight] -
			(leadingBorder(&node.style, Column) + trailingBorder(&node.style, Column)) -
			(leadingPosition(&child.style, Column, height) + trailingPosition(&child.style, Column, height))
		childHeight = boundAxis(child, Column, childHeight, height, width)
	}

	if Undefined(childWidth) != Undefined(childHeight) && !child.style.AspectRatio.IsUndefined() {
		ratio := child.style.AspectRatio.Value
		if Undefined(childWidth) {
			childWidth = marginRow + fx64Max((childHeight-marginColumn)*ratio, paddingAndBorderForAxis(&child.style, Column, width))
		} else if Undefined(childHeight) {
			childHeight = marginColumn + fx64Max((childWidth-marginRow)/ratio, paddingAndBorderForAxis(&child.style, Row, width))
		}
	}

	if Undefined(childWidth) || Undefined(childHeight) {
		if Undefined(childWidth) {
			childWidthMode = MeasureUndefined
		} else {
			childWidthMode = MeasureExactly
		}
		if Undefined(childHeight) {
			childHeightMode = MeasureUndefined
		} else {
			childHeightMode = MeasureExactly
		}

		if !isMainAxisRow && Undefined(childWidth) && widthMode != MeasureUndefined && width > 0 {
			childWidth = width
			childWidthMode = MeasureAtMost
		}

		LayoutNodeInternal(child, childWidth, childHeight, direction, childWidthMode, childHeightMode, childWidth, childHeight, false, "abs-measure")
		childWidth = child.layout.MeasuredDimensions[dimWidth] + marginForAxis(&child.style, Row, width)
		childHeight = child.layout.MeasuredDimensions[dimHeight] + marginForAxis(&child.style, Column, width)
	}

	LayoutNodeInternal(child, childWidth, childHeight, direction, MeasureExactly, MeasureExactly, childWidth, childHeight, true, "abs-layout")

	switch {
	case isTrailingPosDefined(&child.style, mainAxis) && !isLeadingPosDefined(&child.style, mainAxis):
		child.layout.Position[leadingEdge(mainAxis)] = node.layout.MeasuredDimensions[dimensionOf(mainAxis)] -
			child.layout.MeasuredDimensions[dimensionOf(mainAxis)] -
			trailingBorder(&node.style, mainAxis) -
			trailingPosition(&child.style, mainAxis, width)
	case !isLeadingPosDefined(&child.style, mainAxis) && node.style.JustifyContent == JustifyCenter:
		child.layout.Position[leadingEdge(mainAxis)] = (node.layout.MeasuredDimensions[dimensionOf(mainAxis)] - child.layout.MeasuredDimensions[dimensionOf(mainAxis)]) / 2
	case !isLeadingPosDefined(&child.style, mainAxis) && node.style.JustifyContent == JustifyFlexEnd:
		child.layout.Position[leadingEdge(mainAxis)] = node.layout.MeasuredDimensions[dimensionOf(mainAxis)] - child.layout.MeasuredDimensions[dimensionOf(mainAxis)]
	}

	switch {
	case isTrailingPosDefined(&child.style, crossAxis) && !isLeadingPosDefined(&child.style, crossAxis):
		child.layout.Position[leadingEdge(crossAxis)] = node.layout.MeasuredDimensions[dimensionOf(crossAxis)] -
			child.layout.MeasuredDimensions[dimensionOf(crossAxis)] -
			trailingBorder(&node.style, crossAxis) -
			trailingPosition(&child.style, crossAxis, width)
	case !isLeadingPosDefined(&child.style, crossAxis) && resolveAlignSelf(node, child) == AlignCenter:
		child.layout.Position[leadingEdge(crossAxis)] = (node.layout.MeasuredDimensions[dimensionOf(crossAxis)] - child.layout.MeasuredDimensions[dimensionOf(crossAxis)]) / 2
	case !isLeadingPosDefined(&child.style, crossAxis) && resolveAlignSelf(node, child) == AlignFlexEnd:
		child.layout.Position[leadingEdge(crossAxis)] = node.layout.MeasuredDimensions[dimensionOf(crossAxis)] - child.layout.MeasuredDimensions[dimensionOf(crossAxis)]
	}
}
