package flag

// Span is the pair of columns holding the emblem outline on one row.
type Span struct {
	Left, Right int
}

// Widen returns the span grown by one column on each side.
func (s Span) Widen() Span {
	return Span{Left: s.Left - 1, Right: s.Right + 1}
}

// Dimensions is the geometry of a flag of a given size.
type Dimensions struct {
	BodyWidth      int
	BodyHeight     int
	BorderWidth    int
	BorderHeight   int
	CircleStartRow int  // first half-grid row (border row is 0) carrying the emblem
	Center         int  // horizontal center column
	Circle         Span // emblem span on CircleStartRow
}

// ComputeDimensions derives the flag geometry from a validated size.
func ComputeDimensions(n int) Dimensions {
	bodyWidth := 3 * n
	bodyHeight := 2 * n
	borderWidth := bodyWidth + 2
	center := borderWidth / 2

	return Dimensions{
		BodyWidth:      bodyWidth,
		BodyHeight:     bodyHeight,
		BorderWidth:    borderWidth,
		BorderHeight:   bodyHeight + 2,
		CircleStartRow: n/2 + 1,
		Center:         center,
		Circle:         Span{Left: center - 1, Right: center},
	}
}
