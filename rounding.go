package flex

import "math"

// roundToPixelGrid snaps node's position and size onto the pixel grid
// named by PointScaleFactor, preserving fractional-offset coherence: a
// child's rounded width is derived from the *change* in its rounded
// left/top, not from rounding width independently, so adjoining children
// never develop a seam.
func roundToPixelGrid(node *Node) {
	scale := PointScaleFactor
	if scale <= 0 {
		scale = 1
	}

	left := node.layout.Position[EdgeLeft]
	top := node.layout.Position[EdgeTop]

	fractionalLeft := left - math.Floor(left*scale)/scale
	fractionalTop := top - math.Floor(top*scale)/scale

	node.layout.Dimensions[dimWidth] = roundScaled(fractionalLeft+node.layout.Dimensions[dimWidth], scale) - roundScaled(fractionalLeft, scale)
	node.layout.Dimensions[dimHeight] = roundScaled(fractionalTop+node.layout.Dimensions[dimHeight], scale) - roundScaled(fractionalTop, scale)

	node.layout.Position[EdgeLeft] = roundScaled(left, scale)
	node.layout.Position[EdgeTop] = roundScaled(top, scale)

	for i := 0; i < node.children.Count(); i++ {
		roundToPixelGrid(node.children.At(i))
	}
}

func roundScaled(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
