package flex

// valueChanged reports whether assigning b over a would be an effective
// mutation. Like the engine's underlying float comparisons, an undefined
// (NaN) operand always compares unequal to itself; redundantly setting an
// already-undefined property still dirties the node.
func valueChanged(a, b Value) bool {
	return a.Value != b.Value || a.Unit != b.Unit
}

func setStyleValue(n *Node, field *Value, v Value) {
	if valueChanged(*field, v) {
		*field = v
		markDirtyInternal(n)
	}
}

// pointOrUndefined converts a plain float setter argument into a Value,
// matching the C engine's "NaN in, unit reverts to Undefined" rule.
func pointOrUndefined(v float64) Value {
	if Undefined(v) {
		return ValueUndefined
	}
	return Point(v)
}

// pointOrAuto is pointOrUndefined's Auto-reverting counterpart, used by
// properties whose point setter degrades to Auto rather than Undefined
// when handed NaN.
func pointOrAuto(v float64) Value {
	if Undefined(v) {
		return ValueAuto
	}
	return Point(v)
}

// --- enum-valued style properties: plain compare-and-dirty -----------------

// SetDirection sets n's writing direction.
func SetDirection(n *Node, direction Direction) {
	if n.style.Direction != direction {
		n.style.Direction = direction
		markDirtyInternal(n)
	}
}

// GetDirection returns n's writing direction.
func GetDirection(n *Node) Direction { return n.style.Direction }

// SetFlexDirection sets n's main axis.
func SetFlexDirection(n *Node, direction FlexDirection) {
	if n.style.FlexDirection != direction {
		n.style.FlexDirection = direction
		markDirtyInternal(n)
	}
}

// GetFlexDirection returns n's main axis.
func GetFlexDirection(n *Node) FlexDirection { return n.style.FlexDirection }

// SetJustifyContent sets n's main-axis distribution.
func SetJustifyContent(n *Node, justify Justify) {
	if n.style.JustifyContent != justify {
		n.style.JustifyContent = justify
		markDirtyInternal(n)
	}
}

// GetJustifyContent returns n's main-axis distribution.
func GetJustifyContent(n *Node) Justify { return n.style.JustifyContent }

// SetAlignContent sets n's multi-line cross-axis distribution.
func SetAlignContent(n *Node, align Align) {
	if n.style.AlignContent != align {
		n.style.AlignContent = align
		markDirtyInternal(n)
	}
}

// GetAlignContent returns n's multi-line cross-axis distribution.
func GetAlignContent(n *Node) Align { return n.style.AlignContent }

// SetAlignItems sets n's default cross-axis alignment for its children.
func SetAlignItems(n *Node, align Align) {
	if n.style.AlignItems != align {
		n.style.AlignItems = align
		markDirtyInternal(n)
	}
}

// GetAlignItems returns n's default cross-axis alignment for its children.
func GetAlignItems(n *Node) Align { return n.style.AlignItems }

// SetAlignSelf overrides n's own cross-axis alignment within its parent.
func SetAlignSelf(n *Node, align Align) {
	if n.style.AlignSelf != align {
		n.style.AlignSelf = align
		markDirtyInternal(n)
	}
}

// GetAlignSelf returns n's own cross-axis alignment override.
func GetAlignSelf(n *Node) Align { return n.style.AlignSelf }

// SetPositionType selects whether n participates in flex flow.
func SetPositionType(n *Node, positionType PositionType) {
	if n.style.PositionType != positionType {
		n.style.PositionType = positionType
		markDirtyInternal(n)
	}
}

// GetPositionType returns n's position type.
func GetPositionType(n *Node) PositionType { return n.style.PositionType }

// SetFlexWrap controls whether n breaks overflowing children onto new lines.
func SetFlexWrap(n *Node, wrap Wrap) {
	if n.style.FlexWrap != wrap {
		n.style.FlexWrap = wrap
		markDirtyInternal(n)
	}
}

// GetFlexWrap returns n's wrap mode.
func GetFlexWrap(n *Node) Wrap { return n.style.FlexWrap }

// SetOverflow sets how n bounds its main axis in AtMost mode.
func SetOverflow(n *Node, overflow Overflow) {
	if n.style.Overflow != overflow {
		n.style.Overflow = overflow
		markDirtyInternal(n)
	}
}

// GetOverflow returns n's overflow behaviour.
func GetOverflow(n *Node) Overflow { return n.style.Overflow }

// SetDisplay toggles whether n and its subtree participate in layout.
func SetDisplay(n *Node, display Display) {
	if n.style.Display != display {
		n.style.Display = display
		markDirtyInternal(n)
	}
}

// GetDisplay returns n's display mode.
func GetDisplay(n *Node) Display { return n.style.Display }

// --- flex shorthand ---------------------------------------------------------

// SetFlex sets the Flex shorthand, from which grow/shrink/basis are derived
// when the dedicated properties are left unset. Pass math.NaN() to clear
// it.
func SetFlex(n *Node, flex float64) {
	setStyleValue(n, &n.style.Flex, pointOrUndefined(flex))
}

// GetFlex returns n's raw Flex shorthand value (NaN if unset).
func GetFlex(n *Node) float64 { return n.style.Flex.Value }

// SetFlexGrow sets n's explicit flex-grow factor, overriding any positive
// Flex shorthand derivation.
func SetFlexGrow(n *Node, grow float64) {
	setStyleValue(n, &n.style.FlexGrow, pointOrUndefined(grow))
}

// GetFlexGrow returns n's effective flex-grow factor (own value, Flex
// shorthand, or 0).
func GetFlexGrow(n *Node) float64 { return flexGrow(n) }

// SetFlexShrink sets n's explicit flex-shrink factor, overriding any
// negative Flex shorthand derivation.
func SetFlexShrink(n *Node, shrink float64) {
	setStyleValue(n, &n.style.FlexShrink, pointOrUndefined(shrink))
}

// GetFlexShrink returns n's effective flex-shrink factor (own value, Flex
// shorthand, or 0).
func GetFlexShrink(n *Node) float64 { return flexShrink(n) }

// SetFlexBasis pins n's flex basis to a point value.
func SetFlexBasis(n *Node, basis float64) {
	setStyleValue(n, &n.style.FlexBasis, pointOrAuto(basis))
}

// SetFlexBasisPercent pins n's flex basis to a percentage of its parent's
// main-axis size.
func SetFlexBasisPercent(n *Node, basis float64) {
	v := ValueAuto
	if !Undefined(basis) {
		v = Percent(basis)
	}
	setStyleValue(n, &n.style.FlexBasis, v)
}

// SetFlexBasisAuto resets n's flex basis to size-to-content.
func SetFlexBasisAuto(n *Node) {
	setStyleValue(n, &n.style.FlexBasis, ValueAuto)
}

// GetFlexBasis returns n's effective flex basis (own value, a zero basis
// derived from a growing Flex shorthand, or Auto).
func GetFlexBasis(n *Node) Value { return flexBasisValue(n) }

// --- dimensions --------------------------------------------------------------

func setDimension(n *Node, d dimension, v Value) {
	setStyleValue(n, &n.style.Dimensions[d], v)
	ResolveDimensions(n)
}

// SetWidth pins n's width to a point value.
func SetWidth(n *Node, width float64) { setDimension(n, dimWidth, pointOrAuto(width)) }

// SetWidthPercent pins n's width to a percentage of its parent's width.
func SetWidthPercent(n *Node, width float64) {
	v := ValueAuto
	if !Undefined(width) {
		v = Percent(width)
	}
	setDimension(n, dimWidth, v)
}

// SetWidthAuto resets n's width to size-to-content.
func SetWidthAuto(n *Node) { setDimension(n, dimWidth, ValueAuto) }

// GetWidth returns n's raw width style.
func GetWidth(n *Node) Value { return n.style.Dimensions[dimWidth] }

// SetHeight pins n's height to a point value.
func SetHeight(n *Node, height float64) { setDimension(n, dimHeight, pointOrAuto(height)) }

// SetHeightPercent pins n's height to a percentage of its parent's height.
func SetHeightPercent(n *Node, height float64) {
	v := ValueAuto
	if !Undefined(height) {
		v = Percent(height)
	}
	setDimension(n, dimHeight, v)
}

// SetHeightAuto resets n's height to size-to-content.
func SetHeightAuto(n *Node) { setDimension(n, dimHeight, ValueAuto) }

// GetHeight returns n's raw height style.
func GetHeight(n *Node) Value { return n.style.Dimensions[dimHeight] }

func setMinDimension(n *Node, d dimension, v Value) {
	setStyleValue(n, &n.style.MinDimensions[d], v)
	ResolveDimensions(n)
}

// SetMinWidth sets n's minimum width to a point value.
func SetMinWidth(n *Node, width float64) { setMinDimension(n, dimWidth, pointOrUndefined(width)) }

// SetMinWidthPercent sets n's minimum width to a percentage of its
// parent's width.
func SetMinWidthPercent(n *Node, width float64) {
	v := ValueUndefined
	if !Undefined(width) {
		v = Percent(width)
	}
	setMinDimension(n, dimWidth, v)
}

// GetMinWidth returns n's minimum width style.
func GetMinWidth(n *Node) Value { return n.style.MinDimensions[dimWidth] }

// SetMinHeight sets n's minimum height to a point value.
func SetMinHeight(n *Node, height float64) { setMinDimension(n, dimHeight, pointOrUndefined(height)) }

// SetMinHeightPercent sets n's minimum height to a percentage of its
// parent's height.
func SetMinHeightPercent(n *Node, height float64) {
	v := ValueUndefined
	if !Undefined(height) {
		v = Percent(height)
	}
	setMinDimension(n, dimHeight, v)
}

// GetMinHeight returns n's minimum height style.
func GetMinHeight(n *Node) Value { return n.style.MinDimensions[dimHeight] }

func setMaxDimension(n *Node, d dimension, v Value) {
	setStyleValue(n, &n.style.MaxDimensions[d], v)
	ResolveDimensions(n)
}

// SetMaxWidth sets n's maximum width to a point value.
func SetMaxWidth(n *Node, width float64) { setMaxDimension(n, dimWidth, pointOrUndefined(width)) }

// SetMaxWidthPercent sets n's maximum width to a percentage of its
// parent's width.
func SetMaxWidthPercent(n *Node, width float64) {
	v := ValueUndefined
	if !Undefined(width) {
		v = Percent(width)
	}
	setMaxDimension(n, dimWidth, v)
}

// GetMaxWidth returns n's maximum width style.
func GetMaxWidth(n *Node) Value { return n.style.MaxDimensions[dimWidth] }

// SetMaxHeight sets n's maximum height to a point value.
func SetMaxHeight(n *Node, height float64) { setMaxDimension(n, dimHeight, pointOrUndefined(height)) }

// SetMaxHeightPercent sets n's maximum height to a percentage of its
// parent's height.
func SetMaxHeightPercent(n *Node, height float64) {
	v := ValueUndefined
	if !Undefined(height) {
		v = Percent(height)
	}
	setMaxDimension(n, dimHeight, v)
}

// GetMaxHeight returns n's maximum height style.
func GetMaxHeight(n *Node) Value { return n.style.MaxDimensions[dimHeight] }

// SetAspectRatio pins n's width/height ratio, applied when only one of the
// two cross/main dimensions resolves to an exact size.
func SetAspectRatio(n *Node, ratio float64) {
	setStyleValue(n, &n.style.AspectRatio, pointOrUndefined(ratio))
}

// GetAspectRatio returns n's aspect ratio (NaN if unset).
func GetAspectRatio(n *Node) float64 { return n.style.AspectRatio.Value }

// --- box-model edges ---------------------------------------------------------

// SetMargin sets n's margin on edge to a point value.
func SetMargin(n *Node, edge Edge, v float64) {
	setStyleValue(n, &n.style.Margin[edge], pointOrUndefined(v))
}

// SetMarginPercent sets n's margin on edge to a percentage of the relevant
// axis's parent size.
func SetMarginPercent(n *Node, edge Edge, v float64) {
	val := ValueUndefined
	if !Undefined(v) {
		val = Percent(v)
	}
	setStyleValue(n, &n.style.Margin[edge], val)
}

// SetMarginAuto lets the layout algorithm distribute free space into edge's
// margin.
func SetMarginAuto(n *Node, edge Edge) {
	setStyleValue(n, &n.style.Margin[edge], ValueAuto)
}

// GetMargin returns n's raw margin style on edge.
func GetMargin(n *Node, edge Edge) Value { return n.style.Margin[edge] }

// SetPadding sets n's padding on edge to a point value.
func SetPadding(n *Node, edge Edge, v float64) {
	setStyleValue(n, &n.style.Padding[edge], pointOrUndefined(v))
}

// SetPaddingPercent sets n's padding on edge to a percentage of the
// relevant axis's parent size.
func SetPaddingPercent(n *Node, edge Edge, v float64) {
	val := ValueUndefined
	if !Undefined(v) {
		val = Percent(v)
	}
	setStyleValue(n, &n.style.Padding[edge], val)
}

// GetPadding returns n's raw padding style on edge.
func GetPadding(n *Node, edge Edge) Value { return n.style.Padding[edge] }

// SetPosition sets n's offset on edge to a point value, meaningful when
// PositionType is Absolute, or as a relative-flow nudge otherwise.
func SetPosition(n *Node, edge Edge, v float64) {
	setStyleValue(n, &n.style.Position[edge], pointOrUndefined(v))
}

// SetPositionPercent sets n's offset on edge to a percentage of the
// relevant axis's parent size.
func SetPositionPercent(n *Node, edge Edge, v float64) {
	val := ValueUndefined
	if !Undefined(v) {
		val = Percent(v)
	}
	setStyleValue(n, &n.style.Position[edge], val)
}

// GetPositionValue returns n's raw offset style on edge.
func GetPositionValue(n *Node, edge Edge) Value { return n.style.Position[edge] }

// SetBorder sets n's border width on edge. Borders carry no percentage or
// auto variant.
func SetBorder(n *Node, edge Edge, v float64) {
	setStyleValue(n, &n.style.Border[edge], pointOrUndefined(v))
}

// GetBorder returns n's border width on edge (NaN if unset).
func GetBorder(n *Node, edge Edge) float64 { return n.style.Border[edge].Value }

// --- computed layout readback ------------------------------------------------

// GetComputedLeft returns n's computed distance from its parent's left edge.
func GetComputedLeft(n *Node) float64 { return n.layout.Position[EdgeLeft] }

// GetComputedTop returns n's computed distance from its parent's top edge.
func GetComputedTop(n *Node) float64 { return n.layout.Position[EdgeTop] }

// GetComputedRight returns n's computed distance from its parent's right edge.
func GetComputedRight(n *Node) float64 { return n.layout.Position[EdgeRight] }

// GetComputedBottom returns n's computed distance from its parent's bottom edge.
func GetComputedBottom(n *Node) float64 { return n.layout.Position[EdgeBottom] }

// GetComputedWidth returns n's computed width.
func GetComputedWidth(n *Node) float64 { return n.layout.Dimensions[dimWidth] }

// GetComputedHeight returns n's computed height.
func GetComputedHeight(n *Node) float64 { return n.layout.Dimensions[dimHeight] }

// GetComputedDirection returns the writing direction n resolved to during
// its last layout pass.
func GetComputedDirection(n *Node) Direction { return n.layout.Direction }

// resolvedEdge maps Left/Right onto Start/End according to n's resolved
// direction, matching every other edge straight through. Callers must pass
// a physical edge no wider than End; shorthands aren't meaningful here.
func resolvedEdge(n *Node, edge Edge) Edge {
	assertf(edge <= EdgeEnd, "resolvedEdge: edge must not be a multi-edge shorthand")
	switch edge {
	case EdgeLeft:
		if n.layout.Direction == DirectionRTL {
			return EdgeEnd
		}
		return EdgeStart
	case EdgeRight:
		if n.layout.Direction == DirectionRTL {
			return EdgeStart
		}
		return EdgeEnd
	default:
		return edge
	}
}

// GetComputedMargin returns n's resolved margin on edge, mapping Left/Right
// onto Start/End under RTL.
func GetComputedMargin(n *Node, edge Edge) float64 { return n.layout.Margin[resolvedEdge(n, edge)] }

// GetComputedBorder returns n's resolved border width on edge, mapping
// Left/Right onto Start/End under RTL.
func GetComputedBorder(n *Node, edge Edge) float64 { return n.layout.Border[resolvedEdge(n, edge)] }

// GetComputedPadding returns n's resolved padding on edge, mapping
// Left/Right onto Start/End under RTL.
func GetComputedPadding(n *Node, edge Edge) float64 { return n.layout.Padding[resolvedEdge(n, edge)] }
