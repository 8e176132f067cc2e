package flex

import "github.com/Krispeckt/flexlayout/internal/fx"

// flexGrow returns node's effective flex-grow factor: its own FlexGrow if
// set, else the positive part of the Flex shorthand, else 0.
func flexGrow(node *Node) float64 {
	if !node.style.FlexGrow.IsUndefined() {
		return node.style.FlexGrow.Value
	}
	if !node.style.Flex.IsUndefined() && node.style.Flex.Value > 0 {
		return node.style.Flex.Value
	}
	return 0
}

// flexShrink returns node's effective flex-shrink factor: its own
// FlexShrink if set, else the negated negative part of the Flex shorthand,
// else 0.
func flexShrink(node *Node) float64 {
	if !node.style.FlexShrink.IsUndefined() {
		return node.style.FlexShrink.Value
	}
	if !node.style.Flex.IsUndefined() && node.style.Flex.Value < 0 {
		return -node.style.Flex.Value
	}
	return 0
}

// isFlex reports whether node participates in flexible-length resolution:
// relatively positioned with a nonzero grow or shrink factor.
func isFlex(node *Node) bool {
	return node.style.PositionType == PositionRelative && (flexGrow(node) != 0 || flexShrink(node) != 0)
}

// flexBasisValue returns node's effective flex-basis: its own FlexBasis if
// it names a concrete size, else zero when the Flex shorthand asks to
// grow, else Auto.
func flexBasisValue(node *Node) Value {
	if !node.style.FlexBasis.IsAuto() && !node.style.FlexBasis.IsUndefined() {
		return node.style.FlexBasis
	}
	if !node.style.Flex.IsUndefined() && node.style.Flex.Value > 0 {
		return Point(0)
	}
	return ValueAuto
}

// computeFlexBasisForChild stamps
// child.layout.ComputedFlexBasis, re-using it across calls within the same
// generation unless the web-flex-basis experimental feature demands a
// refresh.
//
// The decision order deliberately does not re-check mainAxisSize once a
// definite style dimension has been found on step 2: if mainAxisSize is
// NaN (no available main-axis size at all) the resolvedFlexBasis branch at
// step 1 is skipped even when a style dimension is present, which can let
// a child's flex basis overflow a parent with an undefined main-axis
// minimum uncaught. This mirrors the upstream engine and is left as-is.
func computeFlexBasisForChild(node, child *Node, width float64, widthMode MeasureMode, height float64, parentWidth, parentHeight float64, heightMode MeasureMode, direction Direction) {
	mainAxis := FlexDirectionResolve(node.style.FlexDirection, direction)
	isMainAxisRow := isRow(mainAxis)

	mainAxisSize := height
	mainAxisParentSize := parentHeight
	if isMainAxisRow {
		mainAxisSize = width
		mainAxisParentSize = parentWidth
	}

	resolvedFlexBasis := Resolve(flexBasisValue(child), mainAxisParentSize)
	isRowStyleDimDefined := isStyleDimDefined(child, Row, parentWidth)
	isColumnStyleDimDefined := isStyleDimDefined(child, Column, parentHeight)

	switch {
	case !Undefined(resolvedFlexBasis) && !Undefined(mainAxisSize):
		if Undefined(child.layout.ComputedFlexBasis) ||
			(IsExperimentalFeatureEnabled(ExperimentalWebFlexBasis) && child.layout.ComputedFlexBasisGeneration != currentGeneration()) {
			child.layout.ComputedFlexBasis = fx64Max(resolvedFlexBasis, paddingAndBorderForAxis(&child.style, mainAxis, parentWidth))
		}

	case isMainAxisRow && isRowStyleDimDefined:
		child.layout.ComputedFlexBasis = fx64Max(
			Resolve(*child.resolvedDimensions[dimWidth], parentWidth),
			paddingAndBorderForAxis(&child.style, Row, parentWidth))

	case !isMainAxisRow && isColumnStyleDimDefined:
		child.layout.ComputedFlexBasis = fx64Max(
			Resolve(*child.resolvedDimensions[dimHeight], parentHeight),
			paddingAndBorderForAxis(&child.style, Column, parentWidth))

	default:
		childWidth, childHeight := fx.NaN(), fx.NaN()
		childWidthMode, childHeightMode := MeasureUndefined, MeasureUndefined

		marginRow := marginForAxis(&child.style, Row, parentWidth)
		marginColumn := marginForAxis(&child.style, Column, parentWidth)

		if isRowStyleDimDefined {
			childWidth = Resolve(*child.resolvedDimensions[dimWidth], parentWidth) + marginRow
			childWidthMode = MeasureExactly
		}
		if isColumnStyleDimDefined {
			childHeight = Resolve(*child.resolvedDimensions[dimHeight], parentHeight) + marginColumn
			childHeightMode = MeasureExactly
		}

		if (!isMainAxisRow && node.style.Overflow == OverflowScroll) || node.style.Overflow != OverflowScroll {
			if Undefined(childWidth) && !Undefined(width) {
				childWidth = width
				childWidthMode = MeasureAtMost
			}
		}
		if (isMainAxisRow && node.style.Overflow == OverflowScroll) || node.style.Overflow != OverflowScroll {
			if Undefined(childHeight) && !Undefined(height) {
				childHeight = height
				childHeightMode = MeasureAtMost
			}
		}

		if !isMainAxisRow && !Undefined(width) && !isRowStyleDimDefined &&
			widthMode == MeasureExactly && resolveAlignSelf(node, child) == AlignStretch {
			childWidth = width
			childWidthMode = MeasureExactly
		}
		if isMainAxisRow && !Undefined(height) && !isColumnStyleDimDefined &&
			heightMode == MeasureExactly && resolveAlignSelf(node, child) == AlignStretch {
			childHeight = height
			childHeightMode = MeasureExactly
		}

		if !child.style.AspectRatio.IsUndefined() {
			ratio := child.style.AspectRatio.Value
			switch {
			case !isMainAxisRow && childWidthMode == MeasureExactly:
				child.layout.ComputedFlexBasis = fx64Max(
					(childWidth-marginRow)/ratio,
					paddingAndBorderForAxis(&child.style, Column, parentWidth))
				child.layout.ComputedFlexBasisGeneration = currentGeneration()
				return
			case isMainAxisRow && childHeightMode == MeasureExactly:
				child.layout.ComputedFlexBasis = fx64Max(
					(childHeight-marginColumn)*ratio,
					paddingAndBorderForAxis(&child.style, Row, parentWidth))
				child.layout.ComputedFlexBasisGeneration = currentGeneration()
				return
			}
		}

		childWidthMode, childWidth = constrainMaxSizeForMode(Resolve(child.style.MaxDimensions[dimWidth], parentWidth), childWidthMode, childWidth)
		childHeightMode, childHeight = constrainMaxSizeForMode(Resolve(child.style.MaxDimensions[dimHeight], parentHeight), childHeightMode, childHeight)

		LayoutNodeInternal(child, childWidth, childHeight, direction, childWidthMode, childHeightMode, parentWidth, parentHeight, false, "measure")

		child.layout.ComputedFlexBasis = fx64Max(child.layout.MeasuredDimensions[dimensionOf(mainAxis)], paddingAndBorderForAxis(&child.style, mainAxis, parentWidth))
	}

	child.layout.ComputedFlexBasisGeneration = currentGeneration()
}
