package flex

// setNodePosition stamps node's four Position edges from its margins plus
// its relative offset along the resolved main and cross axes. This is the
// flow position before any flex/alignment adjustment is layered on top of
// it during layoutImpl.
func setNodePosition(node *Node, direction Direction, mainSize, crossSize, parentWidth float64) {
	mainAxis := FlexDirectionResolve(node.style.FlexDirection, direction)
	crossAxis := FlexDirectionCross(mainAxis, direction)

	relMain := relativePosition(&node.style, mainAxis, mainSize)
	relCross := relativePosition(&node.style, crossAxis, crossSize)

	node.layout.Position[leadingEdge(mainAxis)] = leadingMargin(&node.style, mainAxis, parentWidth) + relMain
	node.layout.Position[trailingEdge(mainAxis)] = trailingMargin(&node.style, mainAxis, parentWidth) + relMain
	node.layout.Position[leadingEdge(crossAxis)] = leadingMargin(&node.style, crossAxis, parentWidth) + relCross
	node.layout.Position[trailingEdge(crossAxis)] = trailingMargin(&node.style, crossAxis, parentWidth) + relCross
}

// zeroOutLayoutRecursively clears a Display:None subtree's measured output
// so a hidden node never contributes stale geometry.
func zeroOutLayoutRecursively(node *Node) {
	node.layout = newLayout()
	node.layout.Dimensions[dimWidth] = 0
	node.layout.Dimensions[dimHeight] = 0
	node.layout.MeasuredDimensions[dimWidth] = 0
	node.layout.MeasuredDimensions[dimHeight] = 0
	for i := 0; i < node.children.Count(); i++ {
		zeroOutLayoutRecursively(node.children.At(i))
	}
}

// layoutImpl is the eleven-step core algorithm that resolves one node's
// size and, when performLayout is true, its children's final positions.
// It is always entered through LayoutNodeInternal, never directly, so that
// the measurement cache stays consistent.
func layoutImpl(node *Node, availableWidth, availableHeight float64, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64, performLayout bool) {
	assertf(!Undefined(availableWidth) || widthMeasureMode == MeasureUndefined, "availableWidth is indefinite so widthMeasureMode must be Undefined")
	assertf(!Undefined(availableHeight) || heightMeasureMode == MeasureUndefined, "availableHeight is indefinite so heightMeasureMode must be Undefined")

	direction := resolveDirection(node, parentDirection)
	node.layout.Direction = direction

	flexRowDirection := FlexDirectionResolve(Row, direction)
	flexColumnDirection := FlexDirectionResolve(Column, direction)

	node.layout.Margin[EdgeStart] = leadingMargin(&node.style, flexRowDirection, parentWidth)
	node.layout.Margin[EdgeEnd] = trailingMargin(&node.style, flexRowDirection, parentWidth)
	node.layout.Margin[EdgeTop] = leadingMargin(&node.style, flexColumnDirection, parentWidth)
	node.layout.Margin[EdgeBottom] = trailingMargin(&node.style, flexColumnDirection, parentWidth)

	node.layout.Border[EdgeStart] = leadingBorder(&node.style, flexRowDirection)
	node.layout.Border[EdgeEnd] = trailingBorder(&node.style, flexRowDirection)
	node.layout.Border[EdgeTop] = leadingBorder(&node.style, flexColumnDirection)
	node.layout.Border[EdgeBottom] = trailingBorder(&node.style, flexColumnDirection)

	node.layout.Padding[EdgeStart] = leadingPadding(&node.style, flexRowDirection, parentWidth)
	node.layout.Padding[EdgeEnd] = trailingPadding(&node.style, flexRowDirection, parentWidth)
	node.layout.Padding[EdgeTop] = leadingPadding(&node.style, flexColumnDirection, parentWidth)
	node.layout.Padding[EdgeBottom] = trailingPadding(&node.style, flexColumnDirection, parentWidth)

	if node.measure != nil {
		layoutMeasureFuncNode(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	childCount := node.children.Count()
	if childCount == 0 {
		layoutEmptyContainer(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	if !performLayout && fixedSizeApplies(availableWidth, availableHeight, widthMeasureMode, heightMeasureMode) {
		layoutFixedSize(node, availableWidth, availableHeight, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight)
		return
	}

	// STEP 1: values needed for the remainder of the algorithm.
	mainAxis := FlexDirectionResolve(node.style.FlexDirection, direction)
	crossAxis := FlexDirectionCross(mainAxis, direction)
	isMainAxisRow := isRow(mainAxis)
	justifyContent := node.style.JustifyContent
	isNodeFlexWrap := node.style.FlexWrap != NoWrap

	mainAxisParentSize := parentHeight
	crossAxisParentSize := parentWidth
	if isMainAxisRow {
		mainAxisParentSize = parentWidth
		crossAxisParentSize = parentHeight
	}

	var firstAbsoluteChild, currentAbsoluteChild *Node

	leadingPaddingAndBorderMain := leadingPaddingAndBorder(&node.style, mainAxis, parentWidth)
	trailingPaddingAndBorderMain := trailingPaddingAndBorder(&node.style, mainAxis, parentWidth)
	leadingPaddingAndBorderCross := leadingPaddingAndBorder(&node.style, crossAxis, parentWidth)
	paddingAndBorderAxisMain := paddingAndBorderForAxis(&node.style, mainAxis, parentWidth)
	paddingAndBorderAxisCross := paddingAndBorderForAxis(&node.style, crossAxis, parentWidth)

	measureModeMainDim := heightMeasureMode
	measureModeCrossDim := widthMeasureMode
	if isMainAxisRow {
		measureModeMainDim = widthMeasureMode
		measureModeCrossDim = heightMeasureMode
	}

	paddingAndBorderAxisRow := paddingAndBorderAxisCross
	paddingAndBorderAxisColumn := paddingAndBorderAxisMain
	if isMainAxisRow {
		paddingAndBorderAxisRow = paddingAndBorderAxisMain
		paddingAndBorderAxisColumn = paddingAndBorderAxisCross
	}

	marginAxisRow := marginForAxis(&node.style, Row, parentWidth)
	marginAxisColumn := marginForAxis(&node.style, Column, parentWidth)

	// STEP 2: available size in main and cross directions.
	minInnerWidth := Resolve(node.style.MinDimensions[dimWidth], parentWidth) - marginAxisRow - paddingAndBorderAxisRow
	maxInnerWidth := Resolve(node.style.MaxDimensions[dimWidth], parentWidth) - marginAxisRow - paddingAndBorderAxisRow
	minInnerHeight := Resolve(node.style.MinDimensions[dimHeight], parentHeight) - marginAxisColumn - paddingAndBorderAxisColumn
	maxInnerHeight := Resolve(node.style.MaxDimensions[dimHeight], parentHeight) - marginAxisColumn - paddingAndBorderAxisColumn

	minInnerMainDim := minInnerHeight
	maxInnerMainDim := maxInnerHeight
	if isMainAxisRow {
		minInnerMainDim = minInnerWidth
		maxInnerMainDim = maxInnerWidth
	}

	availableInnerWidth := availableWidth - marginAxisRow - paddingAndBorderAxisRow
	if !Undefined(availableInnerWidth) {
		availableInnerWidth = fx64Max(fx64Min(availableInnerWidth, maxInnerWidth), minInnerWidth)
	}
	availableInnerHeight := availableHeight - marginAxisColumn - paddingAndBorderAxisColumn
	if !Undefined(availableInnerHeight) {
		availableInnerHeight = fx64Max(fx64Min(availableInnerHeight, maxInnerHeight), minInnerHeight)
	}

	availableInnerMainDim := availableInnerHeight
	availableInnerCrossDim := availableInnerWidth
	if isMainAxisRow {
		availableInnerMainDim = availableInnerWidth
		availableInnerCrossDim = availableInnerHeight
	}

	// A single growable-and-shrinkable child can skip measurement: its basis
	// is simply 0, and the flex step below will size it to fill the line.
	var singleFlexChild *Node
	if (isMainAxisRow && widthMeasureMode == MeasureExactly) || (!isMainAxisRow && heightMeasureMode == MeasureExactly) {
		for i := 0; i < childCount; i++ {
			child := node.children.At(i)
			if singleFlexChild != nil {
				if isFlex(child) {
					singleFlexChild = nil
					break
				}
			} else if flexGrow(child) > 0 && flexShrink(child) > 0 {
				singleFlexChild = child
			}
		}
	}

	totalFlexBasis := 0.0

	// STEP 3: flex basis for each item.
	for i := 0; i < childCount; i++ {
		child := node.children.At(i)
		if child.style.Display == DisplayNone {
			zeroOutLayoutRecursively(child)
			child.hasNewLayout = true
			child.isDirty = false
			continue
		}
		ResolveDimensions(child)
		if performLayout {
			childDirection := resolveDirection(child, direction)
			setNodePosition(child, childDirection, availableInnerMainDim, availableInnerCrossDim, availableInnerWidth)
		}

		if child.style.PositionType == PositionAbsolute {
			if firstAbsoluteChild == nil {
				firstAbsoluteChild = child
			}
			if currentAbsoluteChild != nil {
				currentAbsoluteChild.nextChild = child
			}
			currentAbsoluteChild = child
			child.nextChild = nil
		} else {
			if child == singleFlexChild {
				child.layout.ComputedFlexBasisGeneration = currentGeneration()
				child.layout.ComputedFlexBasis = 0
			} else {
				computeFlexBasisForChild(node, child, availableInnerWidth, widthMeasureMode, availableInnerHeight, availableInnerWidth, availableInnerHeight, heightMeasureMode, direction)
			}
		}

		totalFlexBasis += child.layout.ComputedFlexBasis
	}

	flexBasisOverflows := measureModeMainDim != MeasureUndefined && totalFlexBasis > availableInnerMainDim

	// STEP 4: collect flex items into flex lines.
	startOfLineIndex := 0
	endOfLineIndex := 0
	lineCount := 0
	totalLineCrossDim := 0.0
	maxLineMainDim := 0.0

	for endOfLineIndex < childCount {
		startOfLineIndex = endOfLineIndex

		itemsOnLine := 0
		sizeConsumedOnCurrentLine := 0.0
		totalFlexGrowFactors := 0.0
		totalFlexShrinkScaledFactors := 0.0

		var firstRelativeChild, currentRelativeChild *Node

		i := startOfLineIndex
		for ; i < childCount; i++ {
			child := node.children.At(i)
			endOfLineIndex = i + 1
			if child.style.Display == DisplayNone {
				continue
			}
			child.lineIndex = lineCount

			if child.style.PositionType != PositionAbsolute {
				outerFlexBasis := fx64Max(Resolve(child.style.MinDimensions[dimensionOf(mainAxis)], mainAxisParentSize), child.layout.ComputedFlexBasis) +
					marginForAxis(&child.style, mainAxis, availableInnerWidth)

				if sizeConsumedOnCurrentLine+outerFlexBasis > availableInnerMainDim && isNodeFlexWrap && itemsOnLine > 0 {
					endOfLineIndex = i
					break
				}

				sizeConsumedOnCurrentLine += outerFlexBasis
				itemsOnLine++

				if isFlex(child) {
					totalFlexGrowFactors += flexGrow(child)
					totalFlexShrinkScaledFactors += -flexShrink(child) * child.layout.ComputedFlexBasis
				}

				if firstRelativeChild == nil {
					firstRelativeChild = child
				}
				if currentRelativeChild != nil {
					currentRelativeChild.nextChild = child
				}
				currentRelativeChild = child
				child.nextChild = nil
			}
		}
		if i == childCount {
			endOfLineIndex = childCount
		}

		lineCount++

		canSkipFlex := !performLayout && measureModeCrossDim == MeasureExactly

		leadingMainDim := 0.0
		betweenMainDim := 0.0

		// STEP 5: resolving flexible lengths on the main axis.
		if Undefined(availableInnerMainDim) {
			if !Undefined(minInnerMainDim) && sizeConsumedOnCurrentLine < minInnerMainDim {
				availableInnerMainDim = minInnerMainDim
			} else if !Undefined(maxInnerMainDim) && sizeConsumedOnCurrentLine > maxInnerMainDim {
				availableInnerMainDim = maxInnerMainDim
			}
		}

		remainingFreeSpace := 0.0
		if !Undefined(availableInnerMainDim) {
			remainingFreeSpace = availableInnerMainDim - sizeConsumedOnCurrentLine
		} else if sizeConsumedOnCurrentLine < 0 {
			remainingFreeSpace = -sizeConsumedOnCurrentLine
		}

		originalRemainingFreeSpace := remainingFreeSpace
		deltaFreeSpace := 0.0

		if !canSkipFlex {
			// First pass: freeze items whose min/max constraints trigger.
			deltaFlexShrinkScaledFactors := 0.0
			deltaFlexGrowFactors := 0.0
			currentRelativeChild = firstRelativeChild
			for currentRelativeChild != nil {
				childFlexBasis := currentRelativeChild.layout.ComputedFlexBasis

				if remainingFreeSpace < 0 {
					flexShrinkScaledFactor := -flexShrink(currentRelativeChild) * childFlexBasis
					if flexShrinkScaledFactor != 0 {
						baseMainSize := childFlexBasis + remainingFreeSpace/totalFlexShrinkScaledFactors*flexShrinkScaledFactor
						boundMainSize := boundAxis(currentRelativeChild, mainAxis, baseMainSize, availableInnerMainDim, availableInnerWidth)
						if baseMainSize != boundMainSize {
							deltaFreeSpace -= boundMainSize - childFlexBasis
							deltaFlexShrinkScaledFactors -= flexShrinkScaledFactor
						}
					}
				} else if remainingFreeSpace > 0 {
					flexGrowFactor := flexGrow(currentRelativeChild)
					if flexGrowFactor != 0 {
						baseMainSize := childFlexBasis + remainingFreeSpace/totalFlexGrowFactors*flexGrowFactor
						boundMainSize := boundAxis(currentRelativeChild, mainAxis, baseMainSize, availableInnerMainDim, availableInnerWidth)
						if baseMainSize != boundMainSize {
							deltaFreeSpace -= boundMainSize - childFlexBasis
							deltaFlexGrowFactors -= flexGrowFactor
						}
					}
				}

				currentRelativeChild = currentRelativeChild.nextChild
			}

			totalFlexShrinkScaledFactors += deltaFlexShrinkScaledFactors
			totalFlexGrowFactors += deltaFlexGrowFactors
			remainingFreeSpace += deltaFreeSpace

			// Second pass: resolve each flexible item's final size.
			deltaFreeSpace = 0
			currentRelativeChild = firstRelativeChild
			for currentRelativeChild != nil {
				childFlexBasis := currentRelativeChild.layout.ComputedFlexBasis
				updatedMainSize := childFlexBasis

				if remainingFreeSpace < 0 {
					flexShrinkScaledFactor := -flexShrink(currentRelativeChild) * childFlexBasis
					if flexShrinkScaledFactor != 0 {
						var childSize float64
						if totalFlexShrinkScaledFactors == 0 {
							childSize = childFlexBasis + flexShrinkScaledFactor
						} else {
							childSize = childFlexBasis + (remainingFreeSpace/totalFlexShrinkScaledFactors)*flexShrinkScaledFactor
						}
						updatedMainSize = boundAxis(currentRelativeChild, mainAxis, childSize, availableInnerMainDim, availableInnerWidth)
					}
				} else if remainingFreeSpace > 0 {
					flexGrowFactor := flexGrow(currentRelativeChild)
					if flexGrowFactor != 0 {
						updatedMainSize = boundAxis(currentRelativeChild, mainAxis, childFlexBasis+remainingFreeSpace/totalFlexGrowFactors*flexGrowFactor, availableInnerMainDim, availableInnerWidth)
					}
				}

				deltaFreeSpace -= updatedMainSize - childFlexBasis

				marginMain := marginForAxis(&currentRelativeChild.style, mainAxis, availableInnerWidth)
				marginCross := marginForAxis(&currentRelativeChild.style, crossAxis, availableInnerWidth)

				var childCrossSize float64
				childMainSize := updatedMainSize + marginMain
				var childCrossMeasureMode MeasureMode
				childMainMeasureMode := MeasureExactly

				switch {
				case !Undefined(availableInnerCrossDim) &&
					!isStyleDimDefined(currentRelativeChild, crossAxis, availableInnerCrossDim) &&
					measureModeCrossDim == MeasureExactly &&
					!(isNodeFlexWrap && flexBasisOverflows) &&
					AlignItem(node, currentRelativeChild) == AlignStretch:
					childCrossSize = availableInnerCrossDim
					childCrossMeasureMode = MeasureExactly
				case !isStyleDimDefined(currentRelativeChild, crossAxis, availableInnerCrossDim):
					childCrossSize = availableInnerCrossDim
					if Undefined(childCrossSize) {
						childCrossMeasureMode = MeasureUndefined
					} else {
						childCrossMeasureMode = MeasureAtMost
					}
				default:
					childCrossSize = Resolve(*currentRelativeChild.resolvedDimensions[dimensionOf(crossAxis)], availableInnerCrossDim) + marginCross
					if Undefined(childCrossSize) {
						childCrossMeasureMode = MeasureUndefined
					} else {
						childCrossMeasureMode = MeasureExactly
					}
				}

				if !currentRelativeChild.style.AspectRatio.IsUndefined() {
					ratio := currentRelativeChild.style.AspectRatio.Value
					if isMainAxisRow {
						childCrossSize = fx64Max((childMainSize-marginMain)/ratio, paddingAndBorderForAxis(&currentRelativeChild.style, crossAxis, availableInnerWidth))
					} else {
						childCrossSize = fx64Max((childMainSize-marginMain)*ratio, paddingAndBorderForAxis(&currentRelativeChild.style, crossAxis, availableInnerWidth))
					}
					childCrossMeasureMode = MeasureExactly

					if isFlex(currentRelativeChild) {
						childCrossSize = fx64Min(childCrossSize-marginCross, availableInnerCrossDim)
						if isMainAxisRow {
							childMainSize = marginMain + childCrossSize*ratio
						} else {
							childMainSize = marginMain + childCrossSize/ratio
						}
					}

					childCrossSize += marginCross
				}

				childMainMeasureMode, childMainSize = constrainMaxSizeForMode(Resolve(currentRelativeChild.style.MaxDimensions[dimensionOf(mainAxis)], availableInnerWidth), childMainMeasureMode, childMainSize)
				childCrossMeasureMode, childCrossSize = constrainMaxSizeForMode(Resolve(currentRelativeChild.style.MaxDimensions[dimensionOf(crossAxis)], availableInnerHeight), childCrossMeasureMode, childCrossSize)

				requiresStretchLayout := !isStyleDimDefined(currentRelativeChild, crossAxis, availableInnerCrossDim) && AlignItem(node, currentRelativeChild) == AlignStretch

				childWidth := childCrossSize
				childHeight := childMainSize
				childWidthMeasureMode := childCrossMeasureMode
				childHeightMeasureMode := childMainMeasureMode
				if isMainAxisRow {
					childWidth = childMainSize
					childHeight = childCrossSize
					childWidthMeasureMode = childMainMeasureMode
					childHeightMeasureMode = childCrossMeasureMode
				}

				LayoutNodeInternal(currentRelativeChild, childWidth, childHeight, direction, childWidthMeasureMode, childHeightMeasureMode, availableInnerWidth, availableInnerHeight, performLayout && !requiresStretchLayout, "flex")

				currentRelativeChild = currentRelativeChild.nextChild
			}
		}

		remainingFreeSpace = originalRemainingFreeSpace + deltaFreeSpace

		// STEP 6: main-axis justification and cross-axis size determination.
		if measureModeMainDim == MeasureAtMost && remainingFreeSpace > 0 {
			minMain := node.style.MinDimensions[dimensionOf(mainAxis)]
			if minMain.Unit != UnitUndefined && Resolve(minMain, mainAxisParentSize) >= 0 {
				remainingFreeSpace = fx64Max(0, Resolve(minMain, mainAxisParentSize)-(availableInnerMainDim-remainingFreeSpace))
			} else {
				remainingFreeSpace = 0
			}
		}

		numberOfAutoMarginsOnCurrentLine := 0
		for i := startOfLineIndex; i < endOfLineIndex; i++ {
			child := node.children.At(i)
			if child.style.PositionType == PositionRelative {
				if child.style.Margin[leadingEdge(mainAxis)].Unit == UnitAuto {
					numberOfAutoMarginsOnCurrentLine++
				}
				if child.style.Margin[trailingEdge(mainAxis)].Unit == UnitAuto {
					numberOfAutoMarginsOnCurrentLine++
				}
			}
		}

		if numberOfAutoMarginsOnCurrentLine == 0 {
			switch justifyContent {
			case JustifyCenter:
				leadingMainDim = remainingFreeSpace / 2
			case JustifyFlexEnd:
				leadingMainDim = remainingFreeSpace
			case JustifySpaceBetween:
				if itemsOnLine > 1 {
					betweenMainDim = fx64Max(remainingFreeSpace, 0) / float64(itemsOnLine-1)
				}
			case JustifySpaceAround:
				betweenMainDim = remainingFreeSpace / float64(itemsOnLine)
				leadingMainDim = betweenMainDim / 2
			}
		}

		mainDim := leadingPaddingAndBorderMain + leadingMainDim
		crossDim := 0.0

		for i := startOfLineIndex; i < endOfLineIndex; i++ {
			child := node.children.At(i)
			if child.style.Display == DisplayNone {
				continue
			}
			if child.style.PositionType == PositionAbsolute && isLeadingPosDefined(&child.style, mainAxis) {
				if performLayout {
					child.layout.Position[positionEdge(mainAxis)] = leadingPosition(&child.style, mainAxis, availableInnerMainDim) +
						leadingBorder(&node.style, mainAxis) + leadingMargin(&child.style, mainAxis, availableInnerWidth)
				}
			} else {
				if child.style.PositionType == PositionRelative {
					if child.style.Margin[leadingEdge(mainAxis)].Unit == UnitAuto {
						mainDim += remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
					}
					if performLayout {
						child.layout.Position[positionEdge(mainAxis)] += mainDim
					}
					if child.style.Margin[trailingEdge(mainAxis)].Unit == UnitAuto {
						mainDim += remainingFreeSpace / float64(numberOfAutoMarginsOnCurrentLine)
					}

					if canSkipFlex {
						mainDim += betweenMainDim + marginForAxis(&child.style, mainAxis, availableInnerWidth) + child.layout.ComputedFlexBasis
						crossDim = availableInnerCrossDim
					} else {
						mainDim += betweenMainDim + dimWithMarginForAxis(child, mainAxis, availableInnerWidth)
						crossDim = fx64Max(crossDim, dimWithMarginForAxis(child, crossAxis, availableInnerWidth))
					}
				} else if performLayout {
					child.layout.Position[positionEdge(mainAxis)] += leadingBorder(&node.style, mainAxis) + leadingMainDim
				}
			}
		}

		mainDim += trailingPaddingAndBorderMain

		containerCrossAxis := availableInnerCrossDim
		if measureModeCrossDim == MeasureUndefined || measureModeCrossDim == MeasureAtMost {
			containerCrossAxis = boundAxis(node, crossAxis, crossDim+paddingAndBorderAxisCross, crossAxisParentSize, parentWidth) - paddingAndBorderAxisCross
			if measureModeCrossDim == MeasureAtMost {
				containerCrossAxis = fx64Min(containerCrossAxis, availableInnerCrossDim)
			}
		}

		if !isNodeFlexWrap && measureModeCrossDim == MeasureExactly {
			crossDim = availableInnerCrossDim
		}

		crossDim = boundAxis(node, crossAxis, crossDim+paddingAndBorderAxisCross, crossAxisParentSize, parentWidth) - paddingAndBorderAxisCross

		// STEP 7: cross-axis alignment.
		if performLayout {
			for i := startOfLineIndex; i < endOfLineIndex; i++ {
				child := node.children.At(i)
				if child.style.Display == DisplayNone {
					continue
				}
				if child.style.PositionType == PositionAbsolute {
					if isLeadingPosDefined(&child.style, crossAxis) {
						child.layout.Position[positionEdge(crossAxis)] = leadingPosition(&child.style, crossAxis, availableInnerCrossDim) +
							leadingBorder(&node.style, crossAxis) + leadingMargin(&child.style, crossAxis, availableInnerWidth)
					} else {
						child.layout.Position[positionEdge(crossAxis)] = leadingBorder(&node.style, crossAxis) + leadingMargin(&child.style, crossAxis, availableInnerWidth)
					}
					continue
				}

				leadingCrossDim := leadingPaddingAndBorderCross
				alignItem := AlignItem(node, child)

				if alignItem == AlignStretch &&
					child.style.Margin[leadingEdge(crossAxis)].Unit != UnitAuto &&
					child.style.Margin[trailingEdge(crossAxis)].Unit != UnitAuto {
					if !isStyleDimDefined(child, crossAxis, availableInnerCrossDim) {
						childMainSize := child.layout.MeasuredDimensions[dimensionOf(mainAxis)]
						childCrossSize := crossDim
						if !child.style.AspectRatio.IsUndefined() {
							ratio := child.style.AspectRatio.Value
							if isMainAxisRow {
								childCrossSize = marginForAxis(&child.style, crossAxis, availableInnerWidth) + childMainSize/ratio
							} else {
								childCrossSize = marginForAxis(&child.style, crossAxis, availableInnerWidth) + childMainSize*ratio
							}
						}

						childMainSize += marginForAxis(&child.style, mainAxis, availableInnerWidth)

						childMainMeasureMode := MeasureExactly
						childCrossMeasureMode := MeasureExactly
						childMainMeasureMode, childMainSize = constrainMaxSizeForMode(Resolve(child.style.MaxDimensions[dimensionOf(mainAxis)], availableInnerMainDim), childMainMeasureMode, childMainSize)
						childCrossMeasureMode, childCrossSize = constrainMaxSizeForMode(Resolve(child.style.MaxDimensions[dimensionOf(crossAxis)], availableInnerCrossDim), childCrossMeasureMode, childCrossSize)

						childWidth := childCrossSize
						childHeight := childMainSize
						if isMainAxisRow {
							childWidth = childMainSize
							childHeight = childCrossSize
						}

						childWidthMeasureMode := MeasureExactly
						if Undefined(childWidth) {
							childWidthMeasureMode = MeasureUndefined
						}
						childHeightMeasureMode := MeasureExactly
						if Undefined(childHeight) {
							childHeightMeasureMode = MeasureUndefined
						}

						LayoutNodeInternal(child, childWidth, childHeight, direction, childWidthMeasureMode, childHeightMeasureMode, availableInnerWidth, availableInnerHeight, true, "stretch")
					}
				} else {
					remainingCrossDim := containerCrossAxis - dimWithMarginForAxis(child, crossAxis, availableInnerWidth)

					switch {
					case child.style.Margin[leadingEdge(crossAxis)].Unit == UnitAuto && child.style.Margin[trailingEdge(crossAxis)].Unit == UnitAuto:
						leadingCrossDim += remainingCrossDim / 2
					case child.style.Margin[trailingEdge(crossAxis)].Unit == UnitAuto:
						// no-op: anchored to the leading edge.
					case child.style.Margin[leadingEdge(crossAxis)].Unit == UnitAuto:
						leadingCrossDim += remainingCrossDim
					case alignItem == AlignFlexStart:
						// no-op
					case alignItem == AlignCenter:
						leadingCrossDim += remainingCrossDim / 2
					default:
						leadingCrossDim += remainingCrossDim
					}
				}

				child.layout.Position[positionEdge(crossAxis)] += totalLineCrossDim + leadingCrossDim
			}
		}

		totalLineCrossDim += crossDim
		maxLineMainDim = fx64Max(maxLineMainDim, mainDim)
	}

	// STEP 8: multi-line content alignment.
	if performLayout &&
		(lineCount > 1 || node.style.AlignContent == AlignStretch || IsBaselineLayout(node)) &&
		!Undefined(availableInnerCrossDim) {
		remainingAlignContentDim := availableInnerCrossDim - totalLineCrossDim

		crossDimLead := 0.0
		currentLead := leadingPaddingAndBorderCross

		switch node.style.AlignContent {
		case AlignFlexEnd:
			currentLead += remainingAlignContentDim
		case AlignCenter:
			currentLead += remainingAlignContentDim / 2
		case AlignStretch:
			if availableInnerCrossDim > totalLineCrossDim {
				crossDimLead = remainingAlignContentDim / float64(lineCount)
			}
		case AlignSpaceAround:
			if availableInnerCrossDim > totalLineCrossDim {
				currentLead += remainingAlignContentDim / float64(2*lineCount)
				if lineCount > 1 {
					crossDimLead = remainingAlignContentDim / float64(lineCount)
				}
			} else {
				currentLead += remainingAlignContentDim / 2
			}
		case AlignSpaceBetween:
			if availableInnerCrossDim > totalLineCrossDim && lineCount > 1 {
				crossDimLead = remainingAlignContentDim / float64(lineCount-1)
			}
		}

		endIndex := 0
		for i := 0; i < lineCount; i++ {
			startIndex := endIndex

			lineHeight := 0.0
			maxAscentForCurrentLine := 0.0
			maxDescentForCurrentLine := 0.0

			ii := startIndex
			for ; ii < childCount; ii++ {
				child := node.children.At(ii)
				if child.style.Display == DisplayNone {
					continue
				}
				if child.style.PositionType == PositionRelative {
					if child.lineIndex != i {
						break
					}
					if isLayoutDimDefined(child, crossAxis) {
						lineHeight = fx64Max(lineHeight, child.layout.MeasuredDimensions[dimensionOf(crossAxis)]+marginForAxis(&child.style, crossAxis, availableInnerWidth))
					}
					if AlignItem(node, child) == AlignBaseline {
						ascent := Baseline(child, child.layout.MeasuredDimensions[dimWidth], child.layout.MeasuredDimensions[dimHeight]) + leadingMargin(&child.style, Column, availableInnerWidth)
						descent := child.layout.MeasuredDimensions[dimHeight] + marginForAxis(&child.style, Column, availableInnerWidth) - ascent
						maxAscentForCurrentLine = fx64Max(maxAscentForCurrentLine, ascent)
						maxDescentForCurrentLine = fx64Max(maxDescentForCurrentLine, descent)
						lineHeight = fx64Max(lineHeight, maxAscentForCurrentLine+maxDescentForCurrentLine)
					}
				}
			}
			endIndex = ii
			lineHeight += crossDimLead

			if performLayout {
				for ii := startIndex; ii < endIndex; ii++ {
					child := node.children.At(ii)
					if child.style.Display == DisplayNone {
						continue
					}
					if child.style.PositionType != PositionRelative {
						continue
					}
					switch AlignItem(node, child) {
					case AlignFlexStart:
						child.layout.Position[positionEdge(crossAxis)] = currentLead + leadingMargin(&child.style, crossAxis, availableInnerWidth)
					case AlignFlexEnd:
						child.layout.Position[positionEdge(crossAxis)] = currentLead + lineHeight -
							trailingMargin(&child.style, crossAxis, availableInnerWidth) - child.layout.MeasuredDimensions[dimensionOf(crossAxis)]
					case AlignCenter:
						childHeight := child.layout.MeasuredDimensions[dimensionOf(crossAxis)]
						child.layout.Position[positionEdge(crossAxis)] = currentLead + (lineHeight-childHeight)/2
					case AlignStretch:
						child.layout.Position[positionEdge(crossAxis)] = currentLead + leadingMargin(&child.style, crossAxis, availableInnerWidth)

						if !isStyleDimDefined(child, crossAxis, availableInnerCrossDim) {
							childWidth := lineHeight
							childHeight := lineHeight
							if isMainAxisRow {
								childHeight = child.layout.MeasuredDimensions[dimHeight] + marginForAxis(&child.style, crossAxis, availableInnerWidth)
							} else {
								childWidth = child.layout.MeasuredDimensions[dimWidth] + marginForAxis(&child.style, crossAxis, availableInnerWidth)
							}

							if !(FloatsEqual(childWidth, child.layout.MeasuredDimensions[dimWidth]) && FloatsEqual(childHeight, child.layout.MeasuredDimensions[dimHeight])) {
								LayoutNodeInternal(child, childWidth, childHeight, direction, MeasureExactly, MeasureExactly, availableInnerWidth, availableInnerHeight, true, "stretch")
							}
						}
					case AlignBaseline:
						child.layout.Position[EdgeTop] = currentLead + maxAscentForCurrentLine - Baseline(child, child.layout.MeasuredDimensions[dimWidth], child.layout.MeasuredDimensions[dimHeight]) +
							leadingPosition(&child.style, Column, availableInnerCrossDim)
					}
				}
			}

			currentLead += lineHeight
		}
	}

	// STEP 9: computing final dimensions.
	node.layout.MeasuredDimensions[dimWidth] = boundAxis(node, Row, availableWidth-marginAxisRow, parentWidth, parentWidth)
	node.layout.MeasuredDimensions[dimHeight] = boundAxis(node, Column, availableHeight-marginAxisColumn, parentHeight, parentWidth)

	if measureModeMainDim == MeasureUndefined || (node.style.Overflow != OverflowScroll && measureModeMainDim == MeasureAtMost) {
		node.layout.MeasuredDimensions[dimensionOf(mainAxis)] = boundAxis(node, mainAxis, maxLineMainDim, mainAxisParentSize, parentWidth)
	} else if measureModeMainDim == MeasureAtMost && node.style.Overflow == OverflowScroll {
		node.layout.MeasuredDimensions[dimensionOf(mainAxis)] = fx64Max(
			fx64Min(availableInnerMainDim+paddingAndBorderAxisMain, boundAxisWithinMinMax(node, mainAxis, maxLineMainDim, mainAxisParentSize)),
			paddingAndBorderAxisMain)
	}

	if measureModeCrossDim == MeasureUndefined || (node.style.Overflow != OverflowScroll && measureModeCrossDim == MeasureAtMost) {
		node.layout.MeasuredDimensions[dimensionOf(crossAxis)] = boundAxis(node, crossAxis, totalLineCrossDim+paddingAndBorderAxisCross, crossAxisParentSize, parentWidth)
	} else if measureModeCrossDim == MeasureAtMost && node.style.Overflow == OverflowScroll {
		node.layout.MeasuredDimensions[dimensionOf(crossAxis)] = fx64Max(
			fx64Min(availableInnerCrossDim+paddingAndBorderAxisCross, boundAxisWithinMinMax(node, crossAxis, totalLineCrossDim+paddingAndBorderAxisCross, crossAxisParentSize)),
			paddingAndBorderAxisCross)
	}

	// Lines were built assuming normal flow direction; wrap-reverse mirrors
	// the cross axis now that every line's extent is known.
	if performLayout && node.style.FlexWrap == WrapReverse {
		for i := 0; i < childCount; i++ {
			child := node.children.At(i)
			if child.style.PositionType == PositionRelative {
				child.layout.Position[positionEdge(crossAxis)] = node.layout.MeasuredDimensions[dimensionOf(crossAxis)] -
					child.layout.Position[positionEdge(crossAxis)] - child.layout.MeasuredDimensions[dimensionOf(crossAxis)]
			}
		}
	}

	if performLayout {
		// STEP 10: sizing and positioning absolute children.
		for currentAbsoluteChild = firstAbsoluteChild; currentAbsoluteChild != nil; currentAbsoluteChild = currentAbsoluteChild.nextChild {
			absoluteLayoutChild(node, currentAbsoluteChild, availableInnerWidth, widthMeasureMode, availableInnerHeight, direction)
		}

		// STEP 11: setting trailing positions for children.
		needsMainTrailingPos := mainAxis == RowReverse || mainAxis == ColumnReverse
		needsCrossTrailingPos := crossAxis == RowReverse || crossAxis == ColumnReverse

		if needsMainTrailingPos || needsCrossTrailingPos {
			for i := 0; i < childCount; i++ {
				child := node.children.At(i)
				if child.style.Display == DisplayNone {
					continue
				}
				if needsMainTrailingPos {
					setChildTrailingPosition(node, child, mainAxis)
				}
				if needsCrossTrailingPos {
					setChildTrailingPosition(node, child, crossAxis)
				}
			}
		}
	}
}

// resolveDirection resolves node's writing direction against its parent's,
// falling back to LTR at the root.
func resolveDirection(node *Node, parentDirection Direction) Direction {
	if node.style.Direction == DirectionInherit {
		if parentDirection > DirectionInherit {
			return parentDirection
		}
		return DirectionLTR
	}
	return node.style.Direction
}

// LayoutNodeInternal is the cache-gate wrapper around layoutImpl: it
// decides whether node actually needs visiting at (availableWidth,
// availableHeight, widthMeasureMode, heightMeasureMode), serving a cached
// result instead when a prior pass already answered the same question.
// reason labels the pass that requested the visit; nothing reads it.
func LayoutNodeInternal(node *Node, availableWidth, availableHeight float64, parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode, parentWidth, parentHeight float64, performLayout bool, reason string) bool {
	layout := &node.layout

	needToVisitNode := (node.isDirty && layout.GenerationCount != currentGeneration()) || layout.LastParentDirection != parentDirection

	if needToVisitNode {
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedLayout.widthMode = -1
		layout.cachedLayout.heightMode = -1
		layout.cachedLayout.computedWidth = -1
		layout.cachedLayout.computedHeight = -1
		layout.hasCachedLayout = false
	}

	var cachedResults *cachedMeasurement

	if node.measure != nil {
		marginAxisRow := marginForAxis(&node.style, Row, parentWidth)
		marginAxisColumn := marginForAxis(&node.style, Column, parentWidth)

		if layout.hasCachedLayout && layout.cachedLayout.matches(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight, marginAxisRow, marginAxisColumn) {
			cachedResults = &layout.cachedLayout
		} else {
			for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
				if layout.cachedMeasurements[i].matches(widthMeasureMode, availableWidth, heightMeasureMode, availableHeight, marginAxisRow, marginAxisColumn) {
					cachedResults = &layout.cachedMeasurements[i]
					break
				}
			}
		}
	} else if performLayout {
		if layout.hasCachedLayout &&
			FloatsEqual(layout.cachedLayout.availableWidth, availableWidth) &&
			FloatsEqual(layout.cachedLayout.availableHeight, availableHeight) &&
			layout.cachedLayout.widthMode == widthMeasureMode &&
			layout.cachedLayout.heightMode == heightMeasureMode {
			cachedResults = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
			c := &layout.cachedMeasurements[i]
			if FloatsEqual(c.availableWidth, availableWidth) &&
				FloatsEqual(c.availableHeight, availableHeight) &&
				c.widthMode == widthMeasureMode &&
				c.heightMode == heightMeasureMode {
				cachedResults = c
				break
			}
		}
	}

	if !needToVisitNode && cachedResults != nil {
		layout.MeasuredDimensions[dimWidth] = cachedResults.computedWidth
		layout.MeasuredDimensions[dimHeight] = cachedResults.computedHeight
	} else {
		layoutImpl(node, availableWidth, availableHeight, parentDirection, widthMeasureMode, heightMeasureMode, parentWidth, parentHeight, performLayout)

		layout.LastParentDirection = parentDirection

		if cachedResults == nil {
			if layout.nextCachedMeasurementsIndex == maxCachedMeasurements {
				layout.nextCachedMeasurementsIndex = 0
			}

			var newEntry *cachedMeasurement
			if performLayout {
				newEntry = &layout.cachedLayout
				layout.hasCachedLayout = true
			} else {
				newEntry = &layout.cachedMeasurements[layout.nextCachedMeasurementsIndex]
				layout.nextCachedMeasurementsIndex++
			}

			newEntry.availableWidth = availableWidth
			newEntry.availableHeight = availableHeight
			newEntry.widthMode = widthMeasureMode
			newEntry.heightMode = heightMeasureMode
			newEntry.computedWidth = layout.MeasuredDimensions[dimWidth]
			newEntry.computedHeight = layout.MeasuredDimensions[dimHeight]
		}
	}

	if performLayout {
		node.layout.Dimensions[dimWidth] = node.layout.MeasuredDimensions[dimWidth]
		node.layout.Dimensions[dimHeight] = node.layout.MeasuredDimensions[dimHeight]
		node.hasNewLayout = true
		node.isDirty = false
	}

	layout.GenerationCount = currentGeneration()
	return needToVisitNode || cachedResults == nil
}
