// Package flex computes pixel positions and sizes for a tree of styled
// boxes by applying a subset of the CSS Flexible Box Layout algorithm:
// direction and flex-direction aware main/cross axis resolution, wrapping,
// growing and shrinking of flexible items, alignment, padding/border/
// margin, absolute positioning, and aspect-ratio constraints.
//
// The engine is a pure computation: it never draws anything and never binds
// to a UI framework. Callers own a Node tree, mutate styles on it, call
// CalculateLayout, and then read the computed Layout back off each node.
package flex

import "github.com/Krispeckt/flexlayout/internal/fx"

// Undefined reports whether a float is the engine's "no value supplied"
// sentinel, which is NaN, so that ordinary arithmetic propagates
// "undefined-ness" without an explicit presence check at every call site.
// Undefined is the predicate, not the sentinel value itself; math.NaN()
// supplies the sentinel.
var Undefined = fx.IsUndefined

// Unit identifies how a Value's scalar should be interpreted.
type Unit int8

const (
	UnitUndefined Unit = iota
	UnitPoint
	UnitPercent
	UnitAuto
)

// Value is a single style measurement: a scalar paired with the unit that
// says how to interpret it. An Undefined or Auto unit carries a NaN
// scalar.
type Value struct {
	Value float64
	Unit  Unit
}

// ValueUndefined is the zero-information Value.
var ValueUndefined = Value{Value: fx.NaN(), Unit: UnitUndefined}

// ValueAuto is a Value whose unit requests automatic sizing.
var ValueAuto = Value{Value: fx.NaN(), Unit: UnitAuto}

// Point constructs a definite point Value.
func Point(v float64) Value { return Value{Value: v, Unit: UnitPoint} }

// Percent constructs a percentage Value.
func Percent(v float64) Value { return Value{Value: v, Unit: UnitPercent} }

// IsUndefined reports whether v carries no usable information.
func (v Value) IsUndefined() bool { return v.Unit == UnitUndefined }

// IsAuto reports whether v requests automatic sizing.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

// Resolve returns v against referenceSize: NaN for Undefined/Auto, the raw
// scalar for Point, and a percentage of referenceSize for Percent.
func Resolve(v Value, referenceSize float64) float64 {
	switch v.Unit {
	case UnitPoint:
		return v.Value
	case UnitPercent:
		return v.Value * referenceSize / 100
	default:
		return fx.NaN()
	}
}

// ResolveMargin behaves like Resolve except that Auto resolves to 0 instead
// of NaN — an auto margin always occupies zero space unless the layout
// algorithm explicitly distributes free space into it.
func ResolveMargin(v Value, referenceSize float64) float64 {
	if v.Unit == UnitAuto {
		return 0
	}
	return Resolve(v, referenceSize)
}

// FloatsEqual reports whether a and b are equal within the engine's
// epsilon tolerance, treating NaN as equal to NaN.
func FloatsEqual(a, b float64) bool { return fx.FloatsEqual(a, b) }
