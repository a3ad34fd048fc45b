package formatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatOptions control YAML rendering.
type YAMLFormatOptions struct {
	Indent int
	// LiteralBlockStrings emits multi-line strings as "|" blocks. When false
	// they are double-quoted with escaped newlines.
	LiteralBlockStrings bool
}

// FormatYAML renders v to YAML with the given options.
func FormatYAML(v any, opts YAMLFormatOptions) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", err
	}
	if opts.LiteralBlockStrings {
		setMultilineStyle(&node, yaml.LiteralStyle)
	} else {
		setMultilineStyle(&node, yaml.DoubleQuotedStyle)
	}
	flowIntSequences(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(&node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func setMultilineStyle(n *yaml.Node, style yaml.Style) {
	if n == nil {
		return
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.Contains(n.Value, "\n") {
		n.Style = style
	}
	for _, c := range n.Content {
		setMultilineStyle(c, style)
	}
}

// flowIntSequences prints short numeric lists like column widths inline.
func flowIntSequences(n *yaml.Node) {
	if n == nil {
		return
	}
	if n.Kind == yaml.SequenceNode && len(n.Content) > 0 {
		allInts := true
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode || c.Tag != "!!int" {
				allInts = false
				break
			}
		}
		if allInts {
			n.Style = yaml.FlowStyle
			return
		}
	}
	for _, c := range n.Content {
		flowIntSequences(c)
	}
}
