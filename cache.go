package flex

import "github.com/Krispeckt/flexlayout/internal/fx"

// CanUseCachedMeasurement reports whether a previously computed
// measurement can stand in for a fresh one at (widthMode, width,
// heightMode, height), within the given margin budget. It implements the
// four compatibility rules:
//
//  1. both modes and both sizes match exactly (within epsilon);
//  2. the requested mode is Exactly and the last computed size under the
//     requested mode's math equals the last result;
//  3. the requested mode is AtMost, the last mode was Undefined, and the
//     last result already fits within the new bound;
//  4. both modes are AtMost, the new bound is strictly tighter (smaller)
//     than the last one, and the last result still fits within it.
func CanUseCachedMeasurement(
	widthMode MeasureMode, width float64,
	heightMode MeasureMode, height float64,
	lastWidthMode MeasureMode, lastWidth float64,
	lastHeightMode MeasureMode, lastHeight float64,
	lastComputedWidth, lastComputedHeight float64,
	marginRow, marginColumn float64,
) bool {
	if lastComputedHeight < 0 || lastComputedWidth < 0 {
		return false
	}

	hasSameWidthSpec := lastWidthMode == widthMode && fx.FloatsEqual(lastWidth, width)
	hasSameHeightSpec := lastHeightMode == heightMode && fx.FloatsEqual(lastHeight, height)

	if hasSameWidthSpec && hasSameHeightSpec {
		return true
	}

	widthWithinAvailable := sizeIsExactAndMatches(widthMode, width-marginRow, lastComputedWidth) ||
		sizeIsAtMostAndFits(widthMode, width-marginRow, lastWidthMode, lastComputedWidth) ||
		sizeIsAtMostAndTighter(widthMode, width-marginRow, lastWidthMode, lastWidth, lastComputedWidth)

	heightWithinAvailable := sizeIsExactAndMatches(heightMode, height-marginColumn, lastComputedHeight) ||
		sizeIsAtMostAndFits(heightMode, height-marginColumn, lastHeightMode, lastComputedHeight) ||
		sizeIsAtMostAndTighter(heightMode, height-marginColumn, lastHeightMode, lastHeight, lastComputedHeight)

	return (hasSameWidthSpec || widthWithinAvailable) && (hasSameHeightSpec || heightWithinAvailable)
}

// sizeIsExactAndMatches is rule 2: Exactly mode, last computed size equals
// the newly requested size.
func sizeIsExactAndMatches(mode MeasureMode, size, lastComputedSize float64) bool {
	return mode == MeasureExactly && !fx.IsUndefined(size) && fx.FloatsEqual(size, lastComputedSize)
}

// sizeIsAtMostAndFits is rule 3: AtMost request, previous pass was
// Undefined (no bound at all), and its result already fits the new bound
// (or matches it within epsilon).
func sizeIsAtMostAndFits(mode MeasureMode, size float64, lastMode MeasureMode, lastComputedSize float64) bool {
	return mode == MeasureAtMost && lastMode == MeasureUndefined &&
		(size >= lastComputedSize || fx.FloatsEqual(size, lastComputedSize))
}

// sizeIsAtMostAndTighter is rule 4: both requests are AtMost, the new
// bound is strictly tighter than the previous one, and the previous
// result still fits (or matches the new bound within epsilon).
func sizeIsAtMostAndTighter(mode MeasureMode, size float64, lastMode MeasureMode, lastSize, lastComputedSize float64) bool {
	return mode == MeasureAtMost && lastMode == MeasureAtMost &&
		lastSize > size && (lastComputedSize <= size || fx.FloatsEqual(size, lastComputedSize))
}

func (c cachedMeasurement) matches(widthMode MeasureMode, width float64, heightMode MeasureMode, height float64, marginRow, marginColumn float64) bool {
	return CanUseCachedMeasurement(widthMode, width, heightMode, height, c.widthMode, c.availableWidth, c.heightMode, c.availableHeight, c.computedWidth, c.computedHeight, marginRow, marginColumn)
}
