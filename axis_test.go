package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlexDirectionResolve_FlipsRowUnderRTL(t *testing.T) {
	require.Equal(t, RowReverse, FlexDirectionResolve(Row, DirectionRTL))
	require.Equal(t, Row, FlexDirectionResolve(RowReverse, DirectionRTL))
	require.Equal(t, Row, FlexDirectionResolve(Row, DirectionLTR))
}

func TestFlexDirectionResolve_LeavesColumnAxisAlone(t *testing.T) {
	require.Equal(t, Column, FlexDirectionResolve(Column, DirectionRTL))
	require.Equal(t, ColumnReverse, FlexDirectionResolve(ColumnReverse, DirectionRTL))
}

func TestFlexDirectionCross_OfColumnMainAxisIsResolvedRow(t *testing.T) {
	require.Equal(t, RowReverse, FlexDirectionCross(Column, DirectionRTL))
	require.Equal(t, Row, FlexDirectionCross(Column, DirectionLTR))
}

func TestFlexDirectionCross_OfRowMainAxisIsColumn(t *testing.T) {
	require.Equal(t, Column, FlexDirectionCross(Row, DirectionLTR))
	require.Equal(t, Column, FlexDirectionCross(RowReverse, DirectionRTL))
}

func TestLeadingTrailingMargin_StartEndOverrideLeftRightForRowAxis(t *testing.T) {
	var s Style
	s.Margin[EdgeStart] = Point(5)
	s.Margin[EdgeLeft] = Point(99)

	require.Equal(t, 5.0, leadingMargin(&s, Row, 100))
}

func TestLeadingTrailingMargin_FallsBackToLeftRightWhenStartEndUnset(t *testing.T) {
	var s Style
	s.Margin[EdgeLeft] = Point(7)

	require.Equal(t, 7.0, leadingMargin(&s, Row, 100))
}

func TestLeadingTrailingMargin_ColumnAxisIgnoresStartEnd(t *testing.T) {
	var s Style
	s.Margin[EdgeStart] = Point(5)
	s.Margin[EdgeTop] = Point(3)

	require.Equal(t, 3.0, leadingMargin(&s, Column, 100))
}

func TestLeadingPadding_NegativeResolvedValueFallsThroughToShorthand(t *testing.T) {
	var s Style
	s.Padding[EdgeStart] = Percent(-10)
	s.Padding[EdgeAll] = Point(4)

	require.Equal(t, 4.0, leadingPadding(&s, Row, 100))
}

func TestLeadingBorder_NegativeValueFallsThroughToShorthand(t *testing.T) {
	var s Style
	s.Border[EdgeStart] = Point(-1)
	s.Border[EdgeAll] = Point(2)

	require.Equal(t, 2.0, leadingBorder(&s, Row))
}

func TestRelativePosition_LeadingWinsOverTrailingWhenBothSet(t *testing.T) {
	var s Style
	s.Position[EdgeLeft] = Point(10)
	s.Position[EdgeRight] = Point(20)

	require.Equal(t, 10.0, relativePosition(&s, Row, 100))
}

func TestRelativePosition_NegatesTrailingWhenOnlyTrailingSet(t *testing.T) {
	var s Style
	s.Position[EdgeRight] = Point(20)

	require.Equal(t, -20.0, relativePosition(&s, Row, 100))
}
