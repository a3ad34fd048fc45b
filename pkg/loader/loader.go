// Package loader turns raw input into the ordered list of strings a grid lays
// out. Input is either plain text, one item per line, or a structured list in
// JSON, YAML or TOML.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// ItemsKey is the key looked up when a structured document is a map rather
// than a list.
const ItemsKey = "items"

var (
	// ErrNotScalar is returned for list entries that are maps or lists.
	ErrNotScalar = errors.New("item is not a scalar")
	// ErrNoList is returned when a structured document holds no item list.
	ErrNoList = errors.New("no item list found")
)

// ParseFormat validates a format name. An empty name means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatLines, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected auto, lines, json, yaml or toml)", s)
	}
}

// LoadItems parses input in the given format. With FormatAuto, structured
// formats are tried when the input looks like one and plain lines are used
// otherwise or when structured decoding fails.
func LoadItems(input string, format Format) ([]string, error) {
	switch format {
	case FormatLines:
		return loadLines(input), nil
	case FormatJSON:
		return loadJSON(input)
	case FormatYAML:
		return loadYAML(input)
	case FormatTOML:
		return loadTOML(input)
	case FormatAuto, "":
		return loadAuto(input), nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// LoadReader reads everything from r and parses it.
func LoadReader(r io.Reader, format Format) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadItems(string(data), format)
}

// LoadFile reads a file and parses it. FormatAuto also looks at the extension.
func LoadFile(path string, format Format) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto || format == "" {
		format = formatFromExtension(path)
	}
	return LoadItems(string(data), format)
}

func formatFromExtension(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	default:
		return FormatAuto
	}
}

func loadAuto(input string) []string {
	trimmed := strings.TrimSpace(input)
	var (
		items []string
		err   = ErrNoList
	)
	switch {
	case strings.HasPrefix(trimmed, "["):
		items, err = loadJSON(trimmed)
	case strings.HasPrefix(trimmed, "---") || isLikelyYAMLList(trimmed):
		items, err = loadYAML(trimmed)
	case isLikelyTOML(trimmed):
		items, err = loadTOML(trimmed)
	}
	if err != nil {
		return loadLines(input)
	}
	return items
}

// loadLines splits on newlines, dropping blank lines and carriage returns.
func loadLines(input string) []string {
	lines := strings.Split(input, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

func loadJSON(input string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(input)))
	dec.UseNumber()
	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return itemsFromDocument(data)
}

func loadYAML(input string) ([]string, error) {
	var data interface{}
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return itemsFromDocument(data)
}

func loadTOML(input string) ([]string, error) {
	var data map[string]interface{}
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return itemsFromDocument(data)
}

// itemsFromDocument accepts a list, or a map holding the list under
// ItemsKey, or a map with exactly one list value.
func itemsFromDocument(doc interface{}) ([]string, error) {
	switch v := doc.(type) {
	case []interface{}:
		return scalars(v)
	case map[string]interface{}:
		if list, ok := v[ItemsKey].([]interface{}); ok {
			return scalars(list)
		}
		var lists []string
		for k, val := range v {
			if _, ok := val.([]interface{}); ok {
				lists = append(lists, k)
			}
		}
		if len(lists) == 1 {
			return scalars(v[lists[0]].([]interface{}))
		}
		sort.Strings(lists)
		return nil, fmt.Errorf("%w: expected an %q key or a single list, found lists %v", ErrNoList, ItemsKey, lists)
	case nil:
		return []string{}, nil
	default:
		return nil, fmt.Errorf("%w: document is a %T", ErrNoList, doc)
	}
}

func scalars(list []interface{}) ([]string, error) {
	items := make([]string, len(list))
	for i, v := range list {
		s, err := scalarString(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items[i] = s
	}
	return items, nil
}

func scalarString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case json.Number:
		return x.String(), nil
	case map[string]interface{}, []interface{}:
		return "", fmt.Errorf("%w: got %T", ErrNotScalar, v)
	default:
		return fmt.Sprint(x), nil
	}
}

var yamlListLine = regexp.MustCompile(`^\s*-(\s|$)`)

// isLikelyYAMLList reports whether every non-comment line is a list entry.
func isLikelyYAMLList(input string) bool {
	seen := false
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !yamlListLine.MatchString(line) {
			return false
		}
		seen = true
	}
	return seen
}

// TOML key = value, with bare, quoted or dotted keys.
var tomlKeyValue = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)

// isLikelyTOML reports whether the first meaningful line is a TOML
// assignment. Multi-line arrays make later lines unreliable to classify.
func isLikelyTOML(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return tomlKeyValue.MatchString(line)
	}
	return false
}
