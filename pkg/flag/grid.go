package flag

import (
	"slices"
	"strings"
)

// RowTerminator ends every serialised row.
const RowTerminator = "\n"

// Grid is an ordered list of rows. Rows are strings, so they can be shared
// between a grid and its mirror without risk of cross-mutation.
type Grid []string

// BuildHalf builds the top half of the flag: one border row, BodyHeight/2
// body rows, and the emblem drawn over the rows from CircleStartRow down.
// Each emblem row is one column wider on both sides than the row above it.
func BuildHalf(d Dimensions, c Characters) Grid {
	half := make(Grid, 0, 1+d.BodyHeight/2)
	half = append(half, strings.Repeat(string(c.Border), d.BorderWidth))

	body := string(c.Border) + strings.Repeat(string(c.Body), d.BodyWidth) + string(c.Border)
	for range d.BodyHeight / 2 {
		half = append(half, body)
	}

	span := d.Circle
	for i := d.CircleStartRow; i < len(half); i++ {
		half[i] = overlayCircle(half[i], span, c)
		span = span.Widen()
	}
	return half
}

// overlayCircle returns a copy of row with the emblem outline at the span's
// edges and the emblem fill strictly between them. Columns outside the row
// are skipped and an inverted span leaves the row untouched.
func overlayCircle(row string, s Span, c Characters) string {
	if s.Left > s.Right {
		return row
	}
	cells := []rune(row)
	set := func(col int, r rune) {
		if col >= 0 && col < len(cells) {
			cells[col] = r
		}
	}

	set(s.Left, c.CircleBorder)
	set(s.Right, c.CircleBorder)
	for col := s.Left + 1; col < s.Right; col++ {
		set(col, c.CircleBody)
	}
	return string(cells)
}

// Mirror returns half followed by its rows in reverse order.
// The result is a new slice; half is not modified.
func Mirror(half Grid) Grid {
	full := make(Grid, 0, 2*len(half))
	full = append(full, half...)
	full = append(full, half...)
	slices.Reverse(full[len(half):])
	return full
}

// String concatenates the rows, each followed by RowTerminator.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		b.WriteString(row)
		b.WriteString(RowTerminator)
	}
	return b.String()
}

// Width returns the number of characters in the first row, or 0 for an
// empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len([]rune(g[0]))
}
