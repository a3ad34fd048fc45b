package grid

import (
	"slices"
)

// Dimensions is a solved layout. len(Widths) is the column count.
type Dimensions struct {
	NumLines int
	Widths   []int
}

// TotalWidth is the rendered width of the widest possible row: every column
// plus one separator between each pair.
func (d Dimensions) TotalWidth(sepWidth int) int {
	if len(d.Widths) == 0 {
		return 0
	}
	total := 0
	for _, w := range d.Widths {
		total += w
	}
	return total + sepWidth*(len(d.Widths)-1)
}

// NumColumns returns len(Widths).
func (d Dimensions) NumColumns() int { return len(d.Widths) }

func divCeil(n, d int) int {
	if d <= 0 {
		return 0
	}
	q := n / d
	if n%d > 0 {
		q++
	}
	return q
}

func widthOf[T Item](it T) int {
	if w := it.Width(); w > 0 {
		return w
	}
	return 0
}

// columnOf maps a linear item index to its column.
func columnOf(dir Direction, index, numLines, numColumns int) int {
	if dir == TopToBottom {
		return index / numLines
	}
	return index % numColumns
}

// FitIntoColumns lays the grid out in exactly numColumns columns with as many
// rows as that takes. Columns beyond the item count come out with zero width.
// A count below one is treated as one.
func (g *Grid[T]) FitIntoColumns(numColumns int) *Display[T] {
	if numColumns < 1 {
		numColumns = 1
	}
	numLines := divCeil(len(g.items), numColumns)
	return g.display(g.columnWidths(numLines, numColumns))
}

// FitIntoWidth finds the fewest rows whose rendered width, separators
// included, stays under maxWidth. It reports false when any single item is
// wider than maxWidth or no row count fits.
func (g *Grid[T]) FitIntoWidth(maxWidth int) (*Display[T], bool) {
	dims, ok := g.widthDimensions(maxWidth)
	if !ok {
		return nil, false
	}
	return g.display(dims), true
}

func (g *Grid[T]) columnWidths(numLines, numColumns int) Dimensions {
	widths := make([]int, numColumns)
	if numLines == 0 {
		return Dimensions{NumLines: 0, Widths: widths}
	}
	for i, it := range g.items {
		col := columnOf(g.options.Direction, i, numLines, numColumns)
		if w := widthOf(it); w > widths[col] {
			widths[col] = w
		}
	}
	return Dimensions{NumLines: numLines, Widths: widths}
}

// maxLinesBound estimates how many rows a layout could need by packing the
// widest items into one row greedily. It never returns less than one.
// An item is absorbed only while the running total stays strictly below
// maxWidth, so a one-row result always satisfies the strict width bound.
func (g *Grid[T]) maxLinesBound(maxWidth int) int {
	widths := make([]int, len(g.items))
	for i, it := range g.items {
		widths[i] = widthOf(it)
	}
	slices.SortFunc(widths, func(a, b int) int { return b - a })

	used := 0
	for i, w := range widths {
		// used saturates at maxWidth, so none of these subtractions can
		// wrap and the addition below cannot overflow.
		if used >= maxWidth || w >= maxWidth-used {
			return divCeil(len(widths), max(i, 1))
		}
		if g.sepWidth >= maxWidth-used-w {
			used = maxWidth
			continue
		}
		used += w + g.sepWidth
	}
	return 1
}

func (g *Grid[T]) widthDimensions(maxWidth int) (Dimensions, bool) {
	log := g.options.Logger.WithValues("maxWidth", maxWidth, "items", len(g.items))

	if g.widest > maxWidth {
		log.V(1).Info("widest item exceeds width", "widest", g.widest)
		return Dimensions{}, false
	}
	switch len(g.items) {
	case 0:
		return Dimensions{NumLines: 0, Widths: []int{}}, true
	case 1:
		return Dimensions{NumLines: 1, Widths: []int{widthOf(g.items[0])}}, true
	}

	bound := g.maxLinesBound(maxWidth)
	if bound == 1 {
		widths := make([]int, len(g.items))
		for i, it := range g.items {
			widths[i] = widthOf(it)
		}
		return Dimensions{NumLines: 1, Widths: widths}, true
	}

	var best Dimensions
	found := false
	for numLines := bound; numLines >= 1; numLines-- {
		numColumns := divCeil(len(g.items), numLines)

		if g.sepWidth > 0 && numColumns-1 > maxWidth/g.sepWidth {
			log.V(1).Info("separators alone overflow", "lines", numLines, "columns", numColumns)
			continue
		}
		sepTotal := (numColumns - 1) * g.sepWidth
		budget := maxWidth - sepTotal

		dims := g.columnWidths(numLines, numColumns)
		sum := 0
		for _, w := range dims.Widths {
			sum += w
		}
		if sum >= budget {
			log.V(1).Info("candidate too wide", "lines", numLines, "columns", numColumns, "sum", sum, "budget", budget)
			break
		}
		best, found = dims, true
	}
	if found {
		log.V(1).Info("solved", "lines", best.NumLines, "columns", len(best.Widths))
	}
	return best, found
}
