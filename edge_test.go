package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputedEdgeValue_FallbackChain(t *testing.T) {
	fallback := func(edges Edges) Edges { return edges }

	t.Run("explicit edge wins", func(t *testing.T) {
		e := fallback(Edges{EdgeLeft: Point(1), EdgeHorizontal: Point(2), EdgeAll: Point(3)})
		require.Equal(t, Point(1), ComputedEdgeValue(e, EdgeLeft, ValueUndefined))
	})

	t.Run("falls back to horizontal for left/right", func(t *testing.T) {
		e := fallback(Edges{EdgeHorizontal: Point(2), EdgeAll: Point(3)})
		require.Equal(t, Point(2), ComputedEdgeValue(e, EdgeLeft, ValueUndefined))
		require.Equal(t, Point(2), ComputedEdgeValue(e, EdgeRight, ValueUndefined))
	})

	t.Run("falls back to vertical for top/bottom", func(t *testing.T) {
		e := fallback(Edges{EdgeVertical: Point(4), EdgeAll: Point(3)})
		require.Equal(t, Point(4), ComputedEdgeValue(e, EdgeTop, ValueUndefined))
		require.Equal(t, Point(4), ComputedEdgeValue(e, EdgeBottom, ValueUndefined))
	})

	t.Run("falls back to all", func(t *testing.T) {
		e := fallback(Edges{EdgeAll: Point(3)})
		require.Equal(t, Point(3), ComputedEdgeValue(e, EdgeTop, ValueUndefined))
	})

	t.Run("start/end never fall back to default", func(t *testing.T) {
		var e Edges
		require.True(t, ComputedEdgeValue(e, EdgeStart, Point(9)).IsUndefined())
		require.True(t, ComputedEdgeValue(e, EdgeEnd, Point(9)).IsUndefined())
	})

	t.Run("unset edge falls through to default", func(t *testing.T) {
		var e Edges
		require.Equal(t, Point(9), ComputedEdgeValue(e, EdgeTop, Point(9)))
	})

	t.Run("shorthand edge is a programming error", func(t *testing.T) {
		var e Edges
		require.Panics(t, func() { ComputedEdgeValue(e, EdgeAll, ValueUndefined) })
	})
}
