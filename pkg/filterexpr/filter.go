// Package filterexpr compiles user supplied CEL expressions into predicates
// and parses order_by clauses against a whitelist of keys.
package filterexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"
)

// ErrInvalidFilter is returned for expressions that do not compile.
var ErrInvalidFilter = errors.New("invalid filter")

// ValueKind describes the type of a variable exposed to filters.
type ValueKind string

const (
	KindString     ValueKind = "string"
	KindInt        ValueKind = "int"
	KindBool       ValueKind = "bool"
	KindStringList ValueKind = "list(string)"
)

// Schema lists the variables a filter may reference.
type Schema map[string]ValueKind

// Filter is a compiled boolean expression.
type Filter struct {
	source string
	prg    cel.Program
}

// Compile type-checks expr against the schema. The expression must yield a
// bool. An empty expression compiles into a nil Filter, which matches
// everything.
func Compile(expr string, schema Schema) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if len(schema) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	env, err := buildEnv(schema)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: expected a bool expression, got %s", ErrInvalidFilter, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return &Filter{source: expr, prg: prg}, nil
}

// Match evaluates the filter with the given variables.
func (f *Filter) Match(vars map[string]any) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, _, err := f.prg.Eval(vars)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.source, err)
	}
	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("evaluate filter %q: result is %T, not bool", f.source, out.Value())
	}
	return matched, nil
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

func buildEnv(schema Schema) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(schema)+1)
	for name, kind := range schema {
		celType, err := celTypeForKind(kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		opts = append(opts, cel.Variable(name, celType))
	}
	opts = append(opts, cel.CrossTypeNumericComparisons(true))
	return cel.NewEnv(opts...)
}

func celTypeForKind(kind ValueKind) (*cel.Type, error) {
	switch kind {
	case KindString:
		return cel.StringType, nil
	case KindInt:
		return cel.IntType, nil
	case KindBool:
		return cel.BoolType, nil
	case KindStringList:
		return cel.ListType(cel.StringType), nil
	default:
		return nil, fmt.Errorf("unsupported field kind %s", kind)
	}
}
