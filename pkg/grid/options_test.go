package grid

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"across", LeftToRight, false},
		{"Left-To-Right", LeftToRight, false},
		{"rows", LeftToRight, false},
		{"down", TopToBottom, false},
		{" top-to-bottom ", TopToBottom, false},
		{"", TopToBottom, false},
		{"diagonal", LeftToRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
		errMsg  string
	}{
		{name: "max width", opts: Options{Target: MaxWidth(80)}},
		{name: "columns", opts: Options{Target: Columns(3), TabSize: 8}},
		{name: "zero columns", opts: Options{}, wantErr: true, errMsg: "at least 1"},
		{name: "negative width", opts: Options{Target: MaxWidth(-1)}, wantErr: true, errMsg: "non-negative"},
		{name: "negative tab size", opts: Options{Target: MaxWidth(10), TabSize: -1}, wantErr: true, errMsg: "tab size"},
		{name: "unknown direction", opts: Options{Target: MaxWidth(10), Direction: Direction(7)}, wantErr: true, errMsg: "direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidOption)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFillingSeparator(t *testing.T) {
	assert.Equal(t, "   ", Spaces(3).separator(0))
	assert.Equal(t, "\t\t ", Spaces(9).separator(4))
	assert.Equal(t, "\t", Spaces(8).separator(8))
	assert.Equal(t, "     ", Spaces(5).separator(8))
	assert.Equal(t, "", Spaces(-2).separator(0))
	assert.Equal(t, " | ", Text(" | ").separator(1))

	assert.Equal(t, 3, Text("| |").width(UnicodeWidth))
	assert.Equal(t, 4, Spaces(4).width(UnicodeWidth))
	assert.True(t, Text("").IsText())
	assert.Equal(t, `Text("|")`, Text("|").String())
	assert.Equal(t, "Spaces(2)", Spaces(2).String())
}

func TestTarget(t *testing.T) {
	assert.True(t, MaxWidth(80).IsMaxWidth())
	assert.Equal(t, 80, MaxWidth(80).Value())
	assert.False(t, Columns(4).IsMaxWidth())
	assert.Equal(t, 4, Columns(4).Value())
	assert.Equal(t, "MaxWidth(80)", MaxWidth(80).String())
	assert.Equal(t, "Columns(4)", Columns(4).String())
}

func TestSolverTracing(t *testing.T) {
	var messages []string
	log := funcr.New(func(_, args string) {
		messages = append(messages, args)
	}, funcr.Options{Verbosity: 1})

	g := FromStrings(numberWords, Options{Filling: Spaces(1), Direction: LeftToRight, Logger: log})
	_, ok := g.FitIntoWidth(24)
	require.True(t, ok)

	require.NotEmpty(t, messages)
	assert.Contains(t, messages[len(messages)-1], `"msg"="solved"`)
	assert.Contains(t, messages[len(messages)-1], `"lines"=3`)
}

func TestZeroValueDirectionFillsDown(t *testing.T) {
	var opts Options
	assert.Equal(t, TopToBottom, opts.Direction)

	parsed, err := ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, opts.Direction, parsed)

	g := FromStrings([]string{"a", "b", "c", "d"}, Options{Filling: Spaces(1)})
	assert.Equal(t, "a c\nb d\n", g.FitIntoColumns(2).String())
}
