// Package grid arranges short text items into a compact multi-column grid for
// fixed-width display, packing them into the fewest rows that fit a width
// budget, or into a fixed number of columns.
//
//	g := grid.New(grid.Options{Filling: grid.Spaces(1), Direction: grid.LeftToRight})
//	for _, s := range []string{"one", "two", "three", "four"} {
//		g.AddString(s)
//	}
//	if d, ok := g.FitIntoWidth(24); ok {
//		fmt.Print(d)
//	}
//
// FitIntoWidth reports false when some item is wider than the budget; the usual
// fallback is one item per line, which Grid.Render does for you.
package grid

import "slices"

// Grid owns an append-only sequence of items plus the aggregate statistics the
// solver needs. It is not safe for concurrent mutation.
type Grid[T Item] struct {
	options  Options
	items    []T
	widest   int
	widthSum int
	sepWidth int
}

// New creates an empty grid of plain cells.
func New(options Options) *Grid[Cell] {
	return NewOf[Cell](options)
}

// NewOf creates an empty grid over any Item type, for callers that already
// carry contents and widths in their own values.
func NewOf[T Item](options Options) *Grid[T] {
	return &Grid[T]{
		options:  options,
		sepWidth: options.Filling.width(options.measure()),
	}
}

// FromStrings builds a grid with every string measured by the options' oracle.
func FromStrings(items []string, options Options) *Grid[Cell] {
	g := New(options)
	g.Reserve(len(items))
	for _, s := range items {
		g.AddString(s)
	}
	return g
}

// Reserve grows capacity for n more items.
func (g *Grid[T]) Reserve(n int) {
	if n > 0 {
		g.items = slices.Grow(g.items, n)
	}
}

// Add appends an item.
func (g *Grid[T]) Add(item T) {
	w := widthOf(item)
	if w > g.widest {
		g.widest = w
	}
	g.widthSum += w
	g.items = append(g.items, item)
}

// Len returns the number of items.
func (g *Grid[T]) Len() int { return len(g.items) }

// Widest returns the largest item width.
func (g *Grid[T]) Widest() int { return g.widest }

// WidthSum returns the sum of all item widths.
func (g *Grid[T]) WidthSum() int { return g.widthSum }

// SeparatorWidth returns the display width of the filling.
func (g *Grid[T]) SeparatorWidth() int { return g.sepWidth }

// Options returns the options the grid was created with.
func (g *Grid[T]) Options() Options { return g.options }

// Items returns the items in insertion order. The slice must not be modified.
func (g *Grid[T]) Items() []T { return g.items }

// AddString measures s with the grid's width oracle and appends it. It only
// works on grids of plain cells and reports false for any other item type.
func (g *Grid[T]) AddString(s string) bool {
	var item any = Measure(s, g.options.measure())
	c, ok := item.(T)
	if ok {
		g.Add(c)
	}
	return ok
}

// Layout solves against Options.Target. For a MaxWidth target it reports false
// when nothing fits.
func (g *Grid[T]) Layout() (*Display[T], bool) {
	t := g.options.Target
	if t.byWidth {
		return g.FitIntoWidth(t.maxWidth)
	}
	return g.FitIntoColumns(t.columns), true
}

// Render lays the grid out against Options.Target and renders it. When no
// width-bounded layout fits, it falls back to one item per line.
func (g *Grid[T]) Render() string {
	if d, ok := g.Layout(); ok {
		return d.String()
	}
	g.options.Logger.V(1).Info("no layout fits, falling back to one column",
		"items", len(g.items), "widest", g.widest, "target", g.options.Target.String())
	return g.FitIntoColumns(1).String()
}
