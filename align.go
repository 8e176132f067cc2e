package flex

// IsBaselineLayout reports whether parent lays its children out along a
// row axis with baseline alignment requested, the only configuration in
// which baseline computation matters.
func IsBaselineLayout(parent *Node) bool {
	if isColumn(parent.style.FlexDirection) {
		return false
	}
	if parent.style.AlignItems == AlignBaseline {
		return true
	}
	for i := 0; i < parent.children.Count(); i++ {
		child := parent.children.At(i)
		if child.style.PositionType == PositionAbsolute {
			continue
		}
		if resolveAlignSelf(parent, child) == AlignBaseline {
			return true
		}
	}
	return false
}

// resolveAlignSelf returns the effective cross-axis alignment for child:
// its own AlignSelf if set, otherwise the parent's AlignItems.
func resolveAlignSelf(parent, child *Node) Align {
	if child.style.AlignSelf != AlignAuto {
		return child.style.AlignSelf
	}
	return parent.style.AlignItems
}

// AlignItem is resolveAlignSelf with one correction applied: a column-flow
// parent never lets a child sit on Baseline, since there's no shared text
// line to baseline-align against across a column's cross axis, so it
// degrades to FlexStart instead.
func AlignItem(parent, child *Node) Align {
	align := resolveAlignSelf(parent, child)
	if align == AlignBaseline && isColumn(parent.style.FlexDirection) {
		return AlignFlexStart
	}
	return align
}

// Baseline returns node's baseline distance from its top edge: the
// owner-supplied BaselineFunc if installed, otherwise the baseline of its
// first baseline-participating line-0 child (recursively), falling back to
// the first non-absolute line-0 child when none of them request baseline
// alignment, and finally to the height argument when it has no
// non-absolute line-0 child.
func Baseline(node *Node, width, height float64) float64 {
	if node.baseline != nil {
		baseline := node.baseline(node, width, height)
		assertf(!Undefined(baseline), "Baseline: baseline function returned an undefined value")
		return baseline
	}
	var fallbackChild *Node
	for i := 0; i < node.children.Count(); i++ {
		child := node.children.At(i)
		if child.lineIndex > 0 {
			break
		}
		if child.style.PositionType == PositionAbsolute {
			continue
		}
		if fallbackChild == nil {
			fallbackChild = child
		}
		if AlignItem(node, child) == AlignBaseline {
			return child.layout.Position[EdgeTop] + Baseline(child, child.layout.MeasuredDimensions[dimWidth], child.layout.MeasuredDimensions[dimHeight])
		}
	}
	if fallbackChild != nil {
		return fallbackChild.layout.Position[EdgeTop] + Baseline(fallbackChild, fallbackChild.layout.MeasuredDimensions[dimWidth], fallbackChild.layout.MeasuredDimensions[dimHeight])
	}
	return height
}
