package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanUseCachedMeasurement_ExactMatchIsReusable(t *testing.T) {
	ok := CanUseCachedMeasurement(
		MeasureExactly, 100, MeasureExactly, 50,
		MeasureExactly, 100, MeasureExactly, 50,
		100, 50, 0, 0)
	require.True(t, ok)
}

func TestCanUseCachedMeasurement_NegativeComputedSizeAlwaysMisses(t *testing.T) {
	ok := CanUseCachedMeasurement(
		MeasureExactly, 100, MeasureExactly, 50,
		MeasureExactly, 100, MeasureExactly, 50,
		-1, 50, 0, 0)
	require.False(t, ok)
}

func TestCanUseCachedMeasurement_AtMostNarrowingBoundStillFits(t *testing.T) {
	// previous pass: AtMost 100, computed 60. New request: AtMost 80 (a
	// narrower bound than before, but the previous result already fit
	// within it), so the cached measurement can stand in.
	ok := CanUseCachedMeasurement(
		MeasureAtMost, 80, MeasureExactly, 50,
		MeasureAtMost, 100, MeasureExactly, 50,
		60, 50, 0, 0)
	require.True(t, ok)
}

func TestCanUseCachedMeasurement_AtMostNarrowingBoundMisses(t *testing.T) {
	// previous pass: AtMost 100, computed 60. New request: AtMost 50 (tighter
	// than the computed result), so the cached measurement cannot stand in.
	ok := CanUseCachedMeasurement(
		MeasureAtMost, 50, MeasureExactly, 50,
		MeasureAtMost, 100, MeasureExactly, 50,
		60, 50, 0, 0)
	require.False(t, ok)
}

func TestCanUseCachedMeasurement_UndefinedPreviousPassFitsNewAtMostBound(t *testing.T) {
	ok := CanUseCachedMeasurement(
		MeasureAtMost, 100, MeasureExactly, 50,
		MeasureUndefined, 0, MeasureExactly, 50,
		60, 50, 0, 0)
	require.True(t, ok)
}

func TestCachedMeasurement_MatchesDelegatesToCanUseCachedMeasurement(t *testing.T) {
	cm := cachedMeasurement{
		availableWidth: 100, availableHeight: 50,
		widthMode: MeasureExactly, heightMode: MeasureExactly,
		computedWidth: 100, computedHeight: 50,
	}
	require.True(t, cm.matches(MeasureExactly, 100, MeasureExactly, 50, 0, 0))
	require.False(t, cm.matches(MeasureExactly, 999, MeasureExactly, 50, 0, 0))
}
