package grid

import (
	"bufio"
	"io"
	"strings"
)

// Display is a solved grid ready to render. It borrows the grid's items, so
// the grid must not be modified while a Display is in use.
type Display[T Item] struct {
	grid       *Grid[T]
	dimensions Dimensions
	separator  string
}

func (g *Grid[T]) display(dims Dimensions) *Display[T] {
	return &Display[T]{
		grid:       g,
		dimensions: dims,
		separator:  g.options.Filling.separator(g.options.TabSize),
	}
}

// Dimensions returns a copy of the solved layout.
func (d *Display[T]) Dimensions() Dimensions {
	return Dimensions{NumLines: d.dimensions.NumLines, Widths: append([]int(nil), d.dimensions.Widths...)}
}

// Width returns how many terminal columns the rendered grid spans, counting
// separators at their untabbed width.
func (d *Display[T]) Width() int {
	return d.dimensions.TotalWidth(d.grid.sepWidth)
}

// RowCount returns the number of rendered lines.
func (d *Display[T]) RowCount() int {
	return d.dimensions.NumLines
}

// IsComplete reports whether every allotted column holds something. A layout
// with more columns than items has zero-width columns and is not complete.
func (d *Display[T]) IsComplete() bool {
	for _, w := range d.dimensions.Widths {
		if w <= 0 {
			return false
		}
	}
	return true
}

// cellAt maps a (row, column) position to a linear item index.
func (d *Display[T]) cellAt(y, x int) int {
	if d.grid.options.Direction == TopToBottom {
		return y + d.dimensions.NumLines*x
	}
	return y*len(d.dimensions.Widths) + x
}

// Rows returns the items of each rendered line in column order. A ragged
// last row is shorter than the others.
func (d *Display[T]) Rows() [][]T {
	items := d.grid.items
	numColumns := len(d.dimensions.Widths)
	rows := make([][]T, 0, d.dimensions.NumLines)
	for y := 0; y < d.dimensions.NumLines; y++ {
		row := make([]T, 0, numColumns)
		for x := 0; x < numColumns; x++ {
			if i := d.cellAt(y, x); i < len(items) {
				row = append(row, items[i])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTo renders the grid to w. The last column in each row is not padded.
func (d *Display[T]) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}
	d.render(cw)
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

// String renders the grid; every row, including the last, ends in a newline.
func (d *Display[T]) String() string {
	var b strings.Builder
	d.render(&b)
	return b.String()
}

func (d *Display[T]) render(w io.StringWriter) {
	items := d.grid.items
	numColumns := len(d.dimensions.Widths)
	padding := strings.Repeat(" ", d.grid.widest)

	for y := 0; y < d.dimensions.NumLines; y++ {
		for x := 0; x < numColumns; x++ {
			i := d.cellAt(y, x)
			if i >= len(items) {
				continue
			}
			it := items[i]
			_, _ = w.WriteString(it.Contents())
			if x == numColumns-1 {
				continue
			}
			colWidth := d.dimensions.Widths[x]
			if cw := widthOf(it); cw < colWidth {
				pad := colWidth - cw
				if pad <= len(padding) {
					_, _ = w.WriteString(padding[:pad])
				} else {
					_, _ = w.WriteString(strings.Repeat(" ", pad))
				}
			}
			_, _ = w.WriteString(d.separator)
		}
		_, _ = w.WriteString("\n")
	}
}

type countingWriter struct {
	w   io.StringWriter
	n   int64
	err error
}

func (c *countingWriter) WriteString(s string) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
	return n, err
}
