package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// ErrInvalidOption is wrapped by every option validation failure.
var ErrInvalidOption = errors.New("invalid grid option")

// Direction controls how a cell's position in the sequence maps to a row and column.
type Direction int

// The zero value is TopToBottom, matching ParseDirection("").
const (
	// TopToBottom fills a column before starting the next one, like `ls` by default.
	TopToBottom Direction = iota
	// LeftToRight fills a row before starting the next one, like a typewriter.
	LeftToRight
)

func (d Direction) String() string {
	switch d {
	case TopToBottom:
		return "down"
	case LeftToRight:
		return "across"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "across"/"left-to-right"/"rows" and "down"/"top-to-bottom"/"columns".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "left-to-right", "ltr", "rows", "row-major":
		return LeftToRight, nil
	case "", "down", "top-to-bottom", "ttb", "columns", "column-major":
		return TopToBottom, nil
	default:
		return LeftToRight, fmt.Errorf("%w: unknown direction %q (expected across or down)", ErrInvalidOption, s)
	}
}

// Filling is what goes between two adjacent columns. It does not include the
// spaces used to align a cell to its column width.
type Filling struct {
	spaces int
	text   string
	isText bool
}

// Spaces separates columns with n spaces.
func Spaces(n int) Filling {
	if n < 0 {
		n = 0
	}
	return Filling{spaces: n}
}

// Text separates columns with an arbitrary string, "|" being a common choice.
func Text(s string) Filling {
	return Filling{text: s, isText: true}
}

// IsText reports whether the filling is literal text rather than a space count.
func (f Filling) IsText() bool { return f.isText }

func (f Filling) String() string {
	if f.isText {
		return fmt.Sprintf("Text(%q)", f.text)
	}
	return fmt.Sprintf("Spaces(%d)", f.spaces)
}

func (f Filling) width(measure WidthFunc) int {
	if f.isText {
		return measure(f.text)
	}
	return f.spaces
}

// separator picks the strategy that turns a filling into literal separator
// text. Tab compression only ever applies to space fillings.
func (f Filling) separator(tabSize int) string {
	if f.isText {
		return f.text
	}
	if tabSize <= 0 {
		return strings.Repeat(" ", f.spaces)
	}
	return compressTabs(strings.Repeat(" ", f.spaces), tabSize)
}

// compressTabs replaces every run of tabSize spaces with a single tab.
func compressTabs(s string, tabSize int) string {
	return strings.ReplaceAll(s, strings.Repeat(" ", tabSize), "\t")
}

// Target is the constraint a layout is solved against: either a fixed number
// of columns or a maximum total width including separators.
type Target struct {
	columns  int
	maxWidth int
	byWidth  bool
}

// Columns requests exactly c columns.
func Columns(c int) Target { return Target{columns: c} }

// MaxWidth requests the fewest rows that fit in w terminal columns.
func MaxWidth(w int) Target { return Target{maxWidth: w, byWidth: true} }

// IsMaxWidth reports whether the target is a width budget.
func (t Target) IsMaxWidth() bool { return t.byWidth }

// Value returns the column count or the width budget.
func (t Target) Value() int {
	if t.byWidth {
		return t.maxWidth
	}
	return t.columns
}

func (t Target) String() string {
	if t.byWidth {
		return fmt.Sprintf("MaxWidth(%d)", t.maxWidth)
	}
	return fmt.Sprintf("Columns(%d)", t.columns)
}

// Options configures a grid.
type Options struct {
	// Direction defaults to TopToBottom.
	Direction Direction
	Filling   Filling

	// Target is used by Grid.Layout and Grid.Render. FitIntoColumns and
	// FitIntoWidth ignore it.
	Target Target

	// TabSize, when positive, replaces each run of TabSize separator spaces
	// with a tab. Alignment padding is never compressed.
	TabSize int

	// Measure is the width oracle for AddString and Text fillings.
	// Nil means UnicodeWidth.
	Measure WidthFunc

	// Logger receives solver tracing at V(1). The zero value discards.
	Logger logr.Logger
}

// Validate checks options assembled from user input, such as CLI flags or a
// config file. The Fit methods never call it and clamp what they can.
func (o Options) Validate() error {
	if o.Direction != TopToBottom && o.Direction != LeftToRight {
		return fmt.Errorf("%w: direction %d", ErrInvalidOption, int(o.Direction))
	}
	if o.TabSize < 0 {
		return fmt.Errorf("%w: tab size must be non-negative, got %d", ErrInvalidOption, o.TabSize)
	}
	if o.Target.byWidth && o.Target.maxWidth < 0 {
		return fmt.Errorf("%w: max width must be non-negative, got %d", ErrInvalidOption, o.Target.maxWidth)
	}
	if !o.Target.byWidth && o.Target.columns < 1 {
		return fmt.Errorf("%w: column count must be at least 1, got %d", ErrInvalidOption, o.Target.columns)
	}
	return nil
}

func (o Options) measure() WidthFunc {
	if o.Measure == nil {
		return UnicodeWidth
	}
	return o.Measure
}
