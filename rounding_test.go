package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundToPixelGrid_SnapsPositionAndSizeToWholePixels(t *testing.T) {
	defer SetPointScaleFactor(1)
	SetPointScaleFactor(1)

	n := New()
	n.layout.Position[EdgeLeft] = 0
	n.layout.Position[EdgeTop] = 0
	n.layout.Dimensions[dimWidth] = 10.3
	n.layout.Dimensions[dimHeight] = 10.3

	roundToPixelGrid(n)

	require.Equal(t, 0.0, n.layout.Position[EdgeLeft])
	require.Equal(t, 0.0, n.layout.Position[EdgeTop])
	require.Equal(t, 10.0, n.layout.Dimensions[dimWidth])
	require.Equal(t, 10.0, n.layout.Dimensions[dimHeight])
}

func TestRoundToPixelGrid_PreservesAdjoiningWidthAcrossFractionalOffset(t *testing.T) {
	defer SetPointScaleFactor(1)
	SetPointScaleFactor(1)

	// A child starting at a fractional left edge with a fractional width:
	// the rounded width must still land it flush against a sibling
	// starting at the next whole pixel, so it's derived from the rounded
	// right edge minus the rounded left edge, not from rounding the width
	// in isolation.
	n := New()
	n.layout.Position[EdgeLeft] = 0.6
	n.layout.Position[EdgeTop] = 0
	n.layout.Dimensions[dimWidth] = 1.3
	n.layout.Dimensions[dimHeight] = 1

	roundToPixelGrid(n)

	require.Equal(t, 1.0, n.layout.Position[EdgeLeft])
	require.Equal(t, 1.0, n.layout.Dimensions[dimWidth])
}

func TestRoundToPixelGrid_RecursesIntoChildren(t *testing.T) {
	defer SetPointScaleFactor(1)
	SetPointScaleFactor(1)

	root := New()
	child := New()
	InsertChild(root, child, 0)

	child.layout.Position[EdgeLeft] = 0.6
	child.layout.Dimensions[dimWidth] = 2.6

	roundToPixelGrid(root)

	require.Equal(t, 1.0, child.layout.Position[EdgeLeft])
	require.Equal(t, 2.0, child.layout.Dimensions[dimWidth])
}

func TestRoundToPixelGrid_NonPositiveScaleFactorDefaultsToOne(t *testing.T) {
	n := New()
	PointScaleFactor = 0
	n.layout.Position[EdgeLeft] = 0.6
	n.layout.Dimensions[dimWidth] = 1.3

	roundToPixelGrid(n)

	PointScaleFactor = 1
	require.Equal(t, 1.0, n.layout.Position[EdgeLeft])
	require.Equal(t, 1.0, n.layout.Dimensions[dimWidth])
}
