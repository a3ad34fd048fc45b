// Package formatter turns solved grid layouts into machine-readable reports
// and prepares raw item text for display.
package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/termgrid/pkg/grid"
)

// Output selects how the CLI prints a layout.
type Output string

const (
	OutputGrid Output = "grid"
	OutputYAML Output = "yaml"
	OutputJSON Output = "json"
	OutputTOML Output = "toml"
)

// ErrUnsupportedOutput is returned for unknown names and for Encode(OutputGrid).
var ErrUnsupportedOutput = errors.New("unsupported output")

// ParseOutput accepts grid, yaml (or yml), json and toml. Empty means grid.
func ParseOutput(s string) (Output, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return OutputGrid, nil
	case "yaml", "yml":
		return OutputYAML, nil
	case "json":
		return OutputJSON, nil
	case "toml":
		return OutputTOML, nil
	}
	return "", fmt.Errorf("%w %q (want grid, yaml, json or toml)", ErrUnsupportedOutput, s)
}

// Report describes a solved layout.
type Report struct {
	Direction    string     `json:"direction" yaml:"direction" toml:"direction"`
	Separator    string     `json:"separator" yaml:"separator" toml:"separator"`
	Target       string     `json:"target" yaml:"target" toml:"target"`
	Items        int        `json:"items" yaml:"items" toml:"items"`
	Rows         int        `json:"rows" yaml:"rows" toml:"rows"`
	Columns      int        `json:"columns" yaml:"columns" toml:"columns"`
	Width        int        `json:"width" yaml:"width" toml:"width"`
	Complete     bool       `json:"complete" yaml:"complete" toml:"complete"`
	Fallback     bool       `json:"fallback" yaml:"fallback" toml:"fallback"`
	ColumnWidths []int      `json:"column_widths" yaml:"column_widths" toml:"column_widths"`
	Cells        [][]string `json:"cells" yaml:"cells" toml:"cells"`
}

// NewReport summarizes d. fallback marks a layout that did not come from the
// requested target.
func NewReport[T grid.Item](g *grid.Grid[T], d *grid.Display[T], fallback bool) Report {
	opts := g.Options()
	dims := d.Dimensions()

	rows := d.Rows()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, it := range row {
			cells[i][j] = it.Contents()
		}
	}

	return Report{
		Direction:    opts.Direction.String(),
		Separator:    opts.Filling.String(),
		Target:       opts.Target.String(),
		Items:        g.Len(),
		Rows:         d.RowCount(),
		Columns:      dims.NumColumns(),
		Width:        d.Width(),
		Complete:     d.IsComplete(),
		Fallback:     fallback,
		ColumnWidths: dims.Widths,
		Cells:        cells,
	}
}

// Encode renders r in a structured format.
func Encode(r Report, out Output) ([]byte, error) {
	switch out {
	case OutputYAML:
		s, err := FormatYAML(r, YAMLFormatOptions{Indent: 2})
		return []byte(s), err
	case OutputJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case OutputTOML:
		return toml.Marshal(r)
	}
	return nil, fmt.Errorf("%w %q for a report", ErrUnsupportedOutput, out)
}

// Flatten escapes line breaks and tabs so an item always occupies a single
// cell on a single line. Windows newlines collapse to one escape.
func Flatten(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if strings.Contains(s, "\n") {
		s = strings.ReplaceAll(s, "\n", "\\n")
	}
	if strings.Contains(s, "\t") {
		s = strings.ReplaceAll(s, "\t", "\\t")
	}
	return s
}

// Truncate shortens s to at most maxLen terminal columns, ending in "..."
// when there is room for it. maxLen <= 0 disables truncation.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || lipgloss.Width(s) <= maxLen {
		return s
	}
	ellipsis := "..."
	if maxLen < len(ellipsis) {
		ellipsis = ""
	}
	limit := maxLen - len(ellipsis)

	var b strings.Builder
	width := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if width+rw > limit {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + ellipsis
}
