package flex

import "fmt"

// Direction is the writing/layout direction inherited or set on a node.
type Direction int8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection selects the main axis and its leading edge. Column is the
// zero value and therefore the engine's default, a deliberate deviation
// from CSS, where Row is the initial value.
type FlexDirection int8

const (
	Column FlexDirection = iota
	ColumnReverse
	Row
	RowReverse
)

// Justify controls how free main-axis space is distributed among a line's
// items.
type Justify int8

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// Align controls cross-axis placement, used for both alignItems/alignSelf
// (per item) and alignContent (per line).
type Align int8

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// PositionType selects whether a node participates in flex flow.
type PositionType int8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Wrap controls whether and how a container breaks overflowing items onto
// additional lines.
type Wrap int8

const (
	NoWrap Wrap = iota
	DoesWrap
	WrapReverse
)

// Overflow affects how the main-axis size is bounded when content exceeds
// the available space in AtMost mode.
type Overflow int8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// Display toggles whether a node and its subtree participate in layout at
// all.
type Display int8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// dimension indexes Style.Dimensions/MinDimensions/MaxDimensions and
// Layout.Dimensions/MeasuredDimensions.
type dimension int8

const (
	dimWidth dimension = iota
	dimHeight
	dimCount
)

// Style holds every CSS-flexbox-like property a Node can carry. Its zero
// value is usable directly (Column direction, FlexStart justify, relative
// position, no wrap, visible overflow, flex display) but is not the same
// as a new Node's style: New and Reset use defaultStyle, which sets
// AlignItems to Stretch and gives every Value field an Undefined or Auto
// default.
type Style struct {
	Direction      Direction
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignContent   Align
	AlignItems     Align
	AlignSelf      Align
	PositionType   PositionType
	FlexWrap       Wrap
	Overflow       Overflow
	Display        Display

	Flex       Value
	FlexGrow   Value
	FlexShrink Value
	FlexBasis  Value

	Dimensions    [dimCount]Value
	MinDimensions [dimCount]Value
	MaxDimensions [dimCount]Value

	Margin   Edges
	Position Edges
	Padding  Edges
	Border   Edges

	AspectRatio Value
}

// defaultStyle is deep-copied into every newly created Node, per the
// Lifecycle. AlignItems defaults to Stretch (the one enum field whose zero
// value, Auto, would not match); every other enum field's zero value already
// is its default. The Value fields are set explicitly: FlexBasis and
// Dimensions to Auto, everything else to Undefined.
func defaultStyle() Style {
	var s Style
	s.AlignItems = AlignStretch
	s.Flex = ValueUndefined
	s.FlexGrow = ValueUndefined
	s.FlexShrink = ValueUndefined
	s.FlexBasis = ValueAuto
	s.AspectRatio = ValueUndefined
	for d := dimension(0); d < dimCount; d++ {
		s.Dimensions[d] = ValueAuto
		s.MinDimensions[d] = ValueUndefined
		s.MaxDimensions[d] = ValueUndefined
	}
	for e := Edge(0); e < edgeCount; e++ {
		s.Margin[e] = ValueUndefined
		s.Position[e] = ValueUndefined
		s.Padding[e] = ValueUndefined
		s.Border[e] = ValueUndefined
	}
	return s
}

// styleEq reports whether two styles are identical; used by CopyStyle to
// decide whether a copy is effective and should dirty the node. Styles that
// differ under == are compared again through their printed form, so that
// two undefined (NaN) scalars count as equal.
func styleEq(a, b *Style) bool {
	return *a == *b || fmt.Sprint(*a) == fmt.Sprint(*b)
}
