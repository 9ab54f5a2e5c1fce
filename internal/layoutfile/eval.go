package layoutfile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/spf13/cast"
)

// evaluator turns raw layout values into numbers. Strings are compiled as
// expr expressions over the layout vars; compiled programs are cached by
// source text since the same expression tends to repeat across frames.
type evaluator struct {
	env      map[string]any
	programs map[string]*vm.Program
}

// newEvaluator evaluates vars in name order. A var may refer to vars whose
// names sort before its own.
func newEvaluator(vars map[string]any) (*evaluator, error) {
	e := &evaluator{
		env:      map[string]any{},
		programs: map[string]*vm.Program{},
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		v, err := e.number(vars[name])
		if err != nil {
			return nil, fmt.Errorf("var %q: %w", name, err)
		}
		e.env[name] = float64(v)
	}
	return e, nil
}

// number converts raw to float32. A nil value is zero.
func (e *evaluator) number(raw any) (float32, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		return e.eval(v)
	default:
		if f, ok := toFloat(v); ok {
			return float32(f), nil
		}
		return 0, fmt.Errorf("%v: %w", raw, ErrNotNumeric)
	}
}

func (e *evaluator) eval(source string) (float32, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return 0, nil
	}
	if f, err := strconv.ParseFloat(source, 32); err == nil {
		return float32(f), nil
	}
	program, ok := e.programs[source]
	if !ok {
		var err error
		program, err = expr.Compile(source, expr.Env(e.env))
		if err != nil {
			return 0, fmt.Errorf("compile %q: %w", source, err)
		}
		e.programs[source] = program
	}
	out, err := expr.Run(program, e.env)
	if err != nil {
		return 0, fmt.Errorf("evaluate %q: %w", source, err)
	}
	f, ok := toFloat(out)
	if !ok {
		return 0, fmt.Errorf("%q yields %T: %w", source, out, ErrNotNumeric)
	}
	return float32(f), nil
}

// toFloat accepts numeric values only. Strings and booleans, which cast
// would also convert, are not numbers in a layout file.
func toFloat(v any) (float64, bool) {
	switch v.(type) {
	case nil, bool, string:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}
