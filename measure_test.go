package flex_test

import (
	"math"
	"testing"

	"github.com/Krispeckt/flexlayout"
	"github.com/stretchr/testify/require"
)

func TestCalculateLayout_MeasureFuncSizesALeafFromItsContent(t *testing.T) {
	n := flex.New()
	flex.SetMeasureFunc(n, func(node *flex.Node, width float64, widthMode flex.MeasureMode, height float64, heightMode flex.MeasureMode) (float64, float64) {
		return 37, 11
	})

	flex.CalculateLayout(n, math.NaN(), math.NaN(), flex.DirectionLTR)

	require.Equal(t, 37.0, flex.GetComputedWidth(n))
	require.Equal(t, 11.0, flex.GetComputedHeight(n))
}

func TestSetMeasureFunc_RejectsNodeWithChildren(t *testing.T) {
	parent := flex.New()
	child := flex.New()
	flex.InsertChild(parent, child, 0)

	require.Panics(t, func() {
		flex.SetMeasureFunc(parent, func(*flex.Node, float64, flex.MeasureMode, float64, flex.MeasureMode) (float64, float64) {
			return 0, 0
		})
	})
}

func TestInsertChild_RejectsNodeWithMeasureFunc(t *testing.T) {
	parent := flex.New()
	flex.SetMeasureFunc(parent, func(*flex.Node, float64, flex.MeasureMode, float64, flex.MeasureMode) (float64, float64) {
		return 0, 0
	})
	child := flex.New()

	require.Panics(t, func() { flex.InsertChild(parent, child, 0) })
}

func TestCalculateLayout_EmptyContainerSizesFromPaddingAndBorderAlone(t *testing.T) {
	n := flex.New()
	flex.SetPadding(n, flex.EdgeAll, 8)
	flex.SetBorder(n, flex.EdgeAll, 2)

	flex.CalculateLayout(n, math.NaN(), math.NaN(), flex.DirectionLTR)

	require.Equal(t, 20.0, flex.GetComputedWidth(n))
	require.Equal(t, 20.0, flex.GetComputedHeight(n))
}
