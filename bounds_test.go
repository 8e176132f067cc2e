package flex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundAxisWithinMinMax_ClampsToMaxThenMin(t *testing.T) {
	n := New()
	n.style.MaxDimensions[dimWidth] = Point(50)
	require.Equal(t, 50.0, boundAxisWithinMinMax(n, Row, 100, 200))

	n2 := New()
	n2.style.MinDimensions[dimWidth] = Point(20)
	require.Equal(t, 20.0, boundAxisWithinMinMax(n2, Row, 5, 200))
}

func TestBoundAxisWithinMinMax_PassesThroughWhenUnconstrained(t *testing.T) {
	n := New()
	require.Equal(t, 42.0, boundAxisWithinMinMax(n, Row, 42, 200))
}

func TestBoundAxis_FloorsAtPaddingAndBorder(t *testing.T) {
	n := New()
	SetPadding(n, EdgeAll, 10)
	SetBorder(n, EdgeAll, 5)

	require.Equal(t, 30.0, boundAxis(n, Row, 1, 200, 200))
}

func TestConstrainMaxSizeForMode_UndefinedModeWithDefinedMaxBecomesAtMost(t *testing.T) {
	mode, size := constrainMaxSizeForMode(80, MeasureUndefined, 0)
	require.Equal(t, MeasureAtMost, mode)
	require.Equal(t, 80.0, size)
}

func TestConstrainMaxSizeForMode_ExactlyModeClampsSizeButKeepsMode(t *testing.T) {
	mode, size := constrainMaxSizeForMode(80, MeasureExactly, 100)
	require.Equal(t, MeasureExactly, mode)
	require.Equal(t, 80.0, size)
}

func TestConstrainMaxSizeForMode_NoMaxLeavesModeAndSizeUntouched(t *testing.T) {
	mode, size := constrainMaxSizeForMode(math.NaN(), MeasureAtMost, 30)
	require.Equal(t, MeasureAtMost, mode)
	require.Equal(t, 30.0, size)
}

func TestIsStyleDimDefined_FalseForAutoOrUndefined(t *testing.T) {
	n := New()
	require.False(t, isStyleDimDefined(n, Row, 100))
}

func TestIsStyleDimDefined_TrueForNonNegativePoint(t *testing.T) {
	n := New()
	SetWidth(n, 50)
	require.True(t, isStyleDimDefined(n, Row, 100))
}

func TestIsStyleDimDefined_FalseForPercentWithUndefinedParent(t *testing.T) {
	n := New()
	SetWidthPercent(n, 50)
	require.False(t, isStyleDimDefined(n, Row, math.NaN()))
	require.True(t, isStyleDimDefined(n, Row, 100))
}

func TestIsLayoutDimDefined_FalseForNegativeOrUndefinedMeasuredSize(t *testing.T) {
	n := New()
	require.False(t, isLayoutDimDefined(n, Row))

	n.layout.MeasuredDimensions[dimWidth] = 10
	require.True(t, isLayoutDimDefined(n, Row))

	n.layout.MeasuredDimensions[dimWidth] = -1
	require.False(t, isLayoutDimDefined(n, Row))
}
