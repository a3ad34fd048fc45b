package grid

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthFunc reports the number of monospace terminal columns a string occupies.
type WidthFunc func(s string) int

// Names accepted by MeasureByName.
const (
	MeasureUnicode  = "unicode"
	MeasureGrapheme = "grapheme"
	MeasureANSI     = "ansi"
	MeasureBytes    = "bytes"
)

// UnicodeWidth measures s with East Asian width rules.
func UnicodeWidth(s string) int {
	return runewidth.StringWidth(s)
}

// GraphemeWidth splits s into grapheme clusters and counts each cluster as the
// width of its first non-zero-width rune.
func GraphemeWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		for _, r := range g.Runes() {
			if w := runewidth.RuneWidth(r); w > 0 {
				width += w
				break
			}
		}
	}
	return width
}

// ANSIWidth measures s while ignoring any escape sequences it already contains.
// Use it for items that arrive pre-colored, such as `ls --color` output.
func ANSIWidth(s string) int {
	return lipgloss.Width(s)
}

// ByteWidth counts bytes. Only correct for ASCII input.
func ByteWidth(s string) int {
	return len(s)
}

// MeasureByName returns the width oracle registered under name.
// An empty name selects UnicodeWidth.
func MeasureByName(name string) (WidthFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MeasureUnicode:
		return UnicodeWidth, nil
	case MeasureGrapheme:
		return GraphemeWidth, nil
	case MeasureANSI:
		return ANSIWidth, nil
	case MeasureBytes:
		return ByteWidth, nil
	default:
		return nil, fmt.Errorf("%w: unknown width measure %q (expected unicode, grapheme, ansi or bytes)", ErrInvalidOption, name)
	}
}
