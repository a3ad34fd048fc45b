// Package filter selects grid items with a CEL boolean expression.
//
// Expressions see three variables: item (string), index (int, position in
// the input) and width (int, display width). Examples:
//
//	item.endsWith(".go")
//	width <= 12 && !item.startsWith(".")
//	index % 2 == 0
package filter

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"

	"github.com/oakwood-commons/termgrid/pkg/grid"
)

// ErrNotBoolean is returned when an expression does not produce a bool.
var ErrNotBoolean = errors.New("filter expression must evaluate to a bool")

// Predicate is a compiled filter expression. It is safe for concurrent use.
type Predicate struct {
	expr string
	prg  cel.Program
}

func newEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("item", cel.StringType),
		cel.Variable("index", cel.IntType),
		cel.Variable("width", cel.IntType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
}

// Compile parses and type-checks expr.
func Compile(expr string) (*Predicate, error) {
	env, err := newEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if out := ast.OutputType(); !out.IsExactType(types.BoolType) && !out.IsExactType(types.DynType) {
		return nil, fmt.Errorf("%w, got %s", ErrNotBoolean, out)
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// String returns the source expression.
func (p *Predicate) String() string { return p.expr }

// Match evaluates the predicate for one item.
func (p *Predicate) Match(index int, item string, width int) (bool, error) {
	out, _, err := p.prg.Eval(map[string]any{
		"item":  item,
		"index": int64(index),
		"width": int64(width),
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w, got %T", ErrNotBoolean, out.Value())
	}
	return b, nil
}

// Apply keeps the items p matches, preserving order. A nil predicate keeps
// everything.
func Apply[T grid.Item](p *Predicate, items []T) ([]T, error) {
	if p == nil {
		return items, nil
	}
	kept := make([]T, 0, len(items))
	for i, it := range items {
		ok, err := p.Match(i, it.Contents(), it.Width())
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i, it.Contents(), err)
		}
		if ok {
			kept = append(kept, it)
		}
	}
	return kept, nil
}
