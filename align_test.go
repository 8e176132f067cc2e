package flex_test

import (
	"testing"

	"github.com/Krispeckt/flexlayout"
	"github.com/stretchr/testify/require"
)

func TestIsBaselineLayout_RequiresRowAxis(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Column)
	flex.SetAlignItems(parent, flex.AlignBaseline)

	require.False(t, flex.IsBaselineLayout(parent))
}

func TestIsBaselineLayout_TrueWhenParentAlignItemsIsBaseline(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Row)
	flex.SetAlignItems(parent, flex.AlignBaseline)

	require.True(t, flex.IsBaselineLayout(parent))
}

func TestIsBaselineLayout_TrueWhenAnyNonAbsoluteChildRequestsBaseline(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Row)
	flex.SetAlignItems(parent, flex.AlignFlexStart)

	absoluteChild := flex.New()
	flex.SetPositionType(absoluteChild, flex.PositionAbsolute)
	flex.SetAlignSelf(absoluteChild, flex.AlignBaseline)
	flex.InsertChild(parent, absoluteChild, 0)

	require.False(t, flex.IsBaselineLayout(parent))

	child := flex.New()
	flex.SetAlignSelf(child, flex.AlignBaseline)
	flex.InsertChild(parent, child, 1)

	require.True(t, flex.IsBaselineLayout(parent))
}

func TestAlignItem_DegradesBaselineToFlexStartInColumnFlow(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Column)
	flex.SetAlignItems(parent, flex.AlignBaseline)

	child := flex.New()
	flex.InsertChild(parent, child, 0)

	require.Equal(t, flex.AlignFlexStart, flex.AlignItem(parent, child))
}

func TestAlignItem_PreservesBaselineInRowFlow(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Row)
	flex.SetAlignItems(parent, flex.AlignBaseline)

	child := flex.New()
	flex.InsertChild(parent, child, 0)

	require.Equal(t, flex.AlignBaseline, flex.AlignItem(parent, child))
}

func TestAlignItem_ChildAlignSelfOverridesParentAlignItems(t *testing.T) {
	parent := flex.New()
	flex.SetAlignItems(parent, flex.AlignFlexStart)

	child := flex.New()
	flex.SetAlignSelf(child, flex.AlignCenter)
	flex.InsertChild(parent, child, 0)

	require.Equal(t, flex.AlignCenter, flex.AlignItem(parent, child))
}

func TestBaseline_FallsBackToOwnMeasuredHeightWithNoChildren(t *testing.T) {
	n := flex.New()
	require.Equal(t, 42.0, flex.Baseline(n, 10, 42))
}

func TestBaseline_FallsBackToFirstNonAbsoluteLine0ChildWhenNoneRequestBaseline(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Row)
	flex.SetWidth(parent, 100)
	flex.SetHeight(parent, 50)

	absoluteChild := flex.New()
	flex.SetPositionType(absoluteChild, flex.PositionAbsolute)
	flex.InsertChild(parent, absoluteChild, 0)

	firstFlowChild := flex.New()
	flex.SetWidth(firstFlowChild, 10)
	flex.SetHeight(firstFlowChild, 15)
	flex.InsertChild(parent, firstFlowChild, 1)

	secondFlowChild := flex.New()
	flex.SetWidth(secondFlowChild, 10)
	flex.SetHeight(secondFlowChild, 20)
	flex.InsertChild(parent, secondFlowChild, 2)

	flex.CalculateLayout(parent, 100, 50, flex.DirectionLTR)

	want := flex.GetComputedTop(firstFlowChild) + flex.GetComputedHeight(firstFlowChild)
	require.Equal(t, want, flex.Baseline(parent, 100, 50))
}

func TestBaseline_ColumnFlowDegradesAlignSelfBaselineSoFallbackWins(t *testing.T) {
	parent := flex.New()
	flex.SetFlexDirection(parent, flex.Column)
	flex.SetWidth(parent, 100)
	flex.SetHeight(parent, 100)

	firstChild := flex.New()
	flex.SetWidth(firstChild, 10)
	flex.SetHeight(firstChild, 20)
	flex.InsertChild(parent, firstChild, 0)

	// In a column-flow parent AlignBaseline degrades to FlexStart (there is
	// no shared text line to baseline-align across a column's cross axis),
	// so this child must never win the baseline match even though it asks
	// for it directly; the first non-absolute child should win by fallback
	// instead.
	secondChild := flex.New()
	flex.SetWidth(secondChild, 10)
	flex.SetHeight(secondChild, 30)
	flex.SetAlignSelf(secondChild, flex.AlignBaseline)
	flex.InsertChild(parent, secondChild, 1)

	flex.CalculateLayout(parent, 100, 100, flex.DirectionLTR)

	want := flex.GetComputedTop(firstChild) + flex.GetComputedHeight(firstChild)
	got := flex.Baseline(parent, 100, 100)
	require.Equal(t, want, got)
	require.NotEqual(t, flex.GetComputedTop(secondChild)+flex.GetComputedHeight(secondChild), got)
}
