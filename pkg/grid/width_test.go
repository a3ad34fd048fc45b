package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthOracles(t *testing.T) {
	tests := []struct {
		name    string
		measure WidthFunc
		in      string
		want    int
	}{
		{"unicode ascii", UnicodeWidth, "hello", 5},
		{"unicode cjk", UnicodeWidth, "日本語", 6},
		{"unicode combining mark", UnicodeWidth, "é", 1},
		{"grapheme ascii", GraphemeWidth, "hello", 5},
		{"grapheme combining mark", GraphemeWidth, "é", 1},
		{"grapheme zwj sequence", GraphemeWidth, "👩‍🔬", 2},
		{"ansi plain", ANSIWidth, "plain", 5},
		{"ansi colored", ANSIWidth, "\x1b[31mred\x1b[0m", 3},
		{"bytes", ByteWidth, "日本", 6},
		{"empty", UnicodeWidth, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.measure(tt.in))
		})
	}
}

func TestMeasureByName(t *testing.T) {
	for _, name := range []string{"", "unicode", "GRAPHEME", " ansi ", "bytes"} {
		t.Run(name, func(t *testing.T) {
			m, err := MeasureByName(name)
			require.NoError(t, err)
			assert.Equal(t, 2, m("ab"))
		})
	}

	_, err := MeasureByName("wcwidth")
	require.ErrorIs(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), "wcwidth")
}

func TestMeasure(t *testing.T) {
	c := Measure("日本", nil)
	assert.Equal(t, "日本", c.Contents())
	assert.Equal(t, 4, c.Width())

	c = Measure("日本", ByteWidth)
	assert.Equal(t, 6, c.Width())

	cells := Cells([]string{"a", "bb"}, UnicodeWidth)
	require.Len(t, cells, 2)
	assert.Equal(t, 2, cells[1].Width())
}

func TestAddStringUsesGridMeasure(t *testing.T) {
	g := New(Options{Measure: ANSIWidth, Filling: Spaces(1)})
	require.True(t, g.AddString("\x1b[1mbold\x1b[0m"))
	require.True(t, g.AddString("x"))
	assert.Equal(t, 4, g.Widest())

	d, ok := g.FitIntoWidth(20)
	require.True(t, ok)
	assert.Equal(t, "\x1b[1mbold\x1b[0m x\n", d.String())
}
