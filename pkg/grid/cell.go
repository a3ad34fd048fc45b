package grid

// Item is anything a grid can lay out: retrievable contents plus a
// precomputed display width. The solver and renderer only ever see this.
type Item interface {
	Contents() string
	Width() int
}

// Cell is the default Item: a string and its display width.
// Fields are unexported so a cell cannot change after it has been added.
type Cell struct {
	contents string
	width    int
}

// NewCell builds a cell with a caller-supplied width, for when the width is
// already known or should not come from a width oracle.
// Negative widths are clamped to zero.
func NewCell(contents string, width int) Cell {
	if width < 0 {
		width = 0
	}
	return Cell{contents: contents, width: width}
}

// Measure builds a cell whose width is measure(contents).
// A nil measure falls back to UnicodeWidth.
func Measure(contents string, measure WidthFunc) Cell {
	if measure == nil {
		measure = UnicodeWidth
	}
	return NewCell(contents, measure(contents))
}

// Contents returns the text rendered for this cell.
func (c Cell) Contents() string { return c.contents }

// Width returns the precomputed display width.
func (c Cell) Width() int { return c.width }

// Cells measures every string with measure.
func Cells(items []string, measure WidthFunc) []Cell {
	out := make([]Cell, len(items))
	for i, s := range items {
		out[i] = Measure(s, measure)
	}
	return out
}
