package flex_test

import (
	"testing"

	"github.com/Krispeckt/flexlayout"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsAlignItemsToStretch(t *testing.T) {
	n := flex.New()
	require.Equal(t, flex.AlignStretch, flex.GetAlignItems(n))
}

func TestSetWidth_MarksNodeDirtyOnlyOnEffectiveChange(t *testing.T) {
	n := flex.New()
	flex.CalculateLayout(n, 100, 100, flex.DirectionLTR)
	require.False(t, flex.IsDirty(n))

	flex.SetWidth(n, 50)
	require.True(t, flex.IsDirty(n))

	flex.CalculateLayout(n, 100, 100, flex.DirectionLTR)
	require.False(t, flex.IsDirty(n))

	flex.SetWidth(n, 50) // same value again: not an effective change
	require.False(t, flex.IsDirty(n))
}

func TestMarkDirty_PropagatesToAncestorsAndStopsAtFirstDirty(t *testing.T) {
	root := flex.New()
	mid := flex.New()
	leaf := flex.New()
	flex.InsertChild(root, mid, 0)
	flex.InsertChild(mid, leaf, 0)
	flex.SetMeasureFunc(leaf, func(*flex.Node, float64, flex.MeasureMode, float64, flex.MeasureMode) (float64, float64) {
		return 0, 0
	})

	flex.CalculateLayout(root, 100, 100, flex.DirectionLTR)
	require.False(t, flex.IsDirty(root))
	require.False(t, flex.IsDirty(mid))
	require.False(t, flex.IsDirty(leaf))

	flex.MarkDirty(leaf)
	require.True(t, flex.IsDirty(leaf))
	require.True(t, flex.IsDirty(mid))
	require.True(t, flex.IsDirty(root))
}

func TestMarkDirty_RejectsNodeWithoutMeasureFunc(t *testing.T) {
	n := flex.New()
	require.Panics(t, func() { flex.MarkDirty(n) })
}

func TestSetFlexGrow_EffectiveFlexGrowFallsBackToPositiveFlexShorthand(t *testing.T) {
	n := flex.New()
	flex.SetFlex(n, 2)
	require.Equal(t, 2.0, flex.GetFlexGrow(n))
	require.Equal(t, 0.0, flex.GetFlexShrink(n))

	flex.SetFlexGrow(n, 5)
	require.Equal(t, 5.0, flex.GetFlexGrow(n))
}

func TestSetFlexShrink_EffectiveFlexShrinkFallsBackToNegativeFlexShorthand(t *testing.T) {
	n := flex.New()
	flex.SetFlex(n, -3)
	require.Equal(t, 3.0, flex.GetFlexShrink(n))
	require.Equal(t, 0.0, flex.GetFlexGrow(n))
}

func TestSetMarginAuto_AbsorbsFreeSpaceOnThatEdge(t *testing.T) {
	root := flex.New()
	flex.SetFlexDirection(root, flex.Row)
	flex.SetWidth(root, 100)
	flex.SetHeight(root, 50)

	child := flex.New()
	flex.SetWidth(child, 20)
	flex.SetHeight(child, 10)
	flex.SetMarginAuto(child, flex.EdgeLeft)
	flex.InsertChild(root, child, 0)

	flex.CalculateLayout(root, 100, 50, flex.DirectionLTR)

	require.Equal(t, 80.0, flex.GetComputedLeft(child))
}

func TestGetComputedMargin_SwapsLeftAndRightUnderRTL(t *testing.T) {
	n := flex.New()
	flex.SetMargin(n, flex.EdgeStart, 5)
	flex.SetMargin(n, flex.EdgeEnd, 9)

	root := flex.New()
	flex.SetFlexDirection(root, flex.Row)
	flex.SetWidth(root, 100)
	flex.SetHeight(root, 50)
	flex.InsertChild(root, n, 0)

	flex.CalculateLayout(root, 100, 50, flex.DirectionRTL)

	require.Equal(t, 9.0, flex.GetComputedMargin(n, flex.EdgeLeft))
	require.Equal(t, 5.0, flex.GetComputedMargin(n, flex.EdgeRight))
}

func TestResetRequiresDetachedNode(t *testing.T) {
	root := flex.New()
	child := flex.New()
	flex.InsertChild(root, child, 0)

	require.Panics(t, func() { flex.Reset(child) })
}

func TestCopyStyle_CopiesFieldsAndDirtiesOnlyOnActualDifference(t *testing.T) {
	src := flex.New()
	flex.SetWidth(src, 42)
	flex.SetFlexGrow(src, 2)

	dst := flex.New()
	flex.CalculateLayout(dst, 100, 100, flex.DirectionLTR)
	require.False(t, flex.IsDirty(dst))

	flex.CopyStyle(dst, src)
	require.True(t, flex.IsDirty(dst))
	require.Equal(t, flex.GetWidth(src), flex.GetWidth(dst))
	require.Equal(t, 2.0, flex.GetFlexGrow(dst))

	flex.CalculateLayout(dst, 100, 100, flex.DirectionLTR)
	require.False(t, flex.IsDirty(dst))

	flex.CopyStyle(dst, src)
	require.False(t, flex.IsDirty(dst))
}
