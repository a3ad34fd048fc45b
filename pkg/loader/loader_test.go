package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadItemsAuto(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain lines",
			input: "one\ntwo\n\nthree\n",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "crlf lines keep inner spaces",
			input: "a file.txt\r\n  indented\r\n",
			want:  []string{"a file.txt", "  indented"},
		},
		{
			name:  "json array",
			input: `["alpha", "beta", 3, 1.5, true, null]`,
			want:  []string{"alpha", "beta", "3", "1.5", "true", ""},
		},
		{
			name:  "large json number keeps its text",
			input: `[1000000, 12345678901234567890]`,
			want:  []string{"1000000", "12345678901234567890"},
		},
		{
			name:  "bracketed plain text falls back to lines",
			input: "[draft] notes.txt\nREADME.md",
			want:  []string{"[draft] notes.txt", "README.md"},
		},
		{
			name:  "yaml list",
			input: "# files\n- main.go\n- go.mod\n- 42\n",
			want:  []string{"main.go", "go.mod", "42"},
		},
		{
			name:  "yaml document with items key",
			input: "---\nitems:\n  - x\n  - y\n",
			want:  []string{"x", "y"},
		},
		{
			name:  "toml items",
			input: "items = [\n  \"red\",\n  \"green\",\n  7,\n]\n",
			want:  []string{"red", "green", "7"},
		},
		{
			name:  "toml single list under another key",
			input: `colors = ["cyan", "magenta"]`,
			want:  []string{"cyan", "magenta"},
		},
		{
			name:  "dash without space is plain text",
			input: "-rw-r--r--\n-rwxr-xr-x",
			want:  []string{"-rw-r--r--", "-rwxr-xr-x"},
		},
		{
			name:  "empty",
			input: "",
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadItems(tt.input, FormatAuto)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadItemsExplicitFormat(t *testing.T) {
	t.Run("lines ignores structure", func(t *testing.T) {
		got, err := LoadItems(`["a", "b"]`, FormatLines)
		require.NoError(t, err)
		assert.Equal(t, []string{`["a", "b"]`}, got)
	})

	t.Run("json object needs a list", func(t *testing.T) {
		_, err := LoadItems(`{"a": 1}`, FormatJSON)
		require.ErrorIs(t, err, ErrNoList)
	})

	t.Run("ambiguous lists", func(t *testing.T) {
		_, err := LoadItems("a: [1]\nb: [2]\n", FormatYAML)
		require.ErrorIs(t, err, ErrNoList)
		assert.Contains(t, err.Error(), "[a b]")
	})

	t.Run("nested values are rejected", func(t *testing.T) {
		_, err := LoadItems(`["ok", {"k": "v"}]`, FormatJSON)
		require.ErrorIs(t, err, ErrNotScalar)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := LoadItems("items = [", FormatTOML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid TOML")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := LoadItems("[1,", FormatJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid JSON")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := LoadItems("x", Format("xml"))
		require.Error(t, err)
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "AUTO": FormatAuto, " json ": FormatJSON, "yaml": FormatYAML, "toml": FormatTOML, "lines": FormatLines} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("csv")
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "items.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("items: [a, b, c]\n"), 0o600))
	got, err := LoadFile(yamlPath, FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	txtPath := filepath.Join(dir, "items.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("x = 1\n"), 0o600))
	got, err = LoadFile(txtPath, FormatLines)
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1"}, got)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), FormatAuto)
	require.Error(t, err)
}

func TestLoadReader(t *testing.T) {
	got, err := LoadReader(strings.NewReader("b\na\n"), FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got)
}
