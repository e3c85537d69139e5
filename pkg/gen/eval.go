package gen

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"math"
	"strconv"

	"github.com/atsuko/constlist/pkg/errs"
	"github.com/atsuko/constlist/pkg/list"
	"github.com/atsuko/constlist/pkg/logutil"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var logger = logutil.GetLogger("[gen] ")

// Result is the outcome of evaluating a table file.
type Result struct {
	Package string
	Values  []Value

	// Type is the Go type of elements.
	Type string
}

// Value is one evaluated output.
type Value struct {
	Name string

	// Expr is the expression that produced the value, for example "sort(a)".
	Expr string

	// IsList is true for list-valued outputs. Element-valued outputs have
	// exactly one literal.
	IsList   bool
	Literals []string

	// data is a list.List or an element, used for JSON output.
	data any
}

// elemType describes how elements of one Go type are checked and written.
type elemType[T constraints.Ordered] struct {
	name    string
	literal func(T) string
	check   func(T) error
}

var (
	intType = elemType[int]{
		name:    "int",
		literal: strconv.Itoa,
		check:   func(int) error { return nil },
	}
	float64Type = elemType[float64]{
		name:    "float64",
		literal: func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) },
		check: func(f float64) error {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return fmt.Errorf("%v has no Go literal and no total order", f)
			}
			return nil
		},
	}
	stringType = elemType[string]{
		name:    "string",
		literal: strconv.Quote,
		check:   func(string) error { return nil },
	}
)

// arities maps supported ops to the number of list arguments they take.
var arities = map[string]int{
	"list":   1,
	"sort":   1,
	"split":  1,
	"merge":  2,
	"append": 2,
	"cons":   1,
	"head":   1,
	"tail":   1,
	"init":   1,
	"last":   1,
	"index":  1,
}

// ErrDuplicateName is wrapped by errors about a name defined more than once.
var ErrDuplicateName = errors.New("duplicate name")

// Eval evaluates all outputs of f.
func Eval(f *File) (*Result, error) {
	switch f.Type {
	case "int":
		return evalAs(f, intType)
	case "float64":
		return evalAs(f, float64Type)
	case "string":
		return evalAs(f, stringType)
	default:
		return nil, fmt.Errorf("unsupported element type %q", f.Type)
	}
}

type env[T constraints.Ordered] struct {
	typ   elemType[T]
	lists map[string]list.List[T]
	// defined contains names of lists and of all outputs.
	defined map[string]bool
}

func evalAs[T constraints.Ordered](f *File, typ elemType[T]) (*Result, error) {
	e := &env[T]{typ, map[string]list.List[T]{}, map[string]bool{}}
	if f.Lists.Kind != 0 {
		var lists map[string][]T
		if err := f.Lists.Decode(&lists); err != nil {
			return nil, fmt.Errorf("lists: %w", err)
		}
		names := maps.Keys(lists)
		slices.Sort(names)
		for _, name := range names {
			values := lists[name]
			for _, v := range values {
				if err := typ.check(v); err != nil {
					return nil, fmt.Errorf("list %s: %w", name, err)
				}
			}
			e.lists[name] = list.FromSlice(values)
			e.defined[name] = true
		}
	}

	result := &Result{Package: f.Package, Type: typ.name}
	for i := range f.Outputs {
		out := &f.Outputs[i]
		values, err := e.evalOutput(out)
		if err != nil {
			return nil, fmt.Errorf("output %d (%s): %w", i, out, err)
		}
		result.Values = append(result.Values, values...)
	}
	return result, nil
}

func (e *env[T]) evalOutput(out *Output) ([]Value, error) {
	arity, ok := arities[out.Op]
	if !ok {
		return nil, fmt.Errorf("unknown op %q", out.Op)
	}
	if err := e.checkNames(out); err != nil {
		return nil, err
	}
	if len(out.Args) != arity {
		return nil, errs.ArityMismatch{
			What: "arguments of " + out.Op, ValidLow: arity, ValidHigh: arity,
			Actual: len(out.Args)}
	}
	args := make([]list.List[T], len(out.Args))
	for i, name := range out.Args {
		l, ok := e.lists[name]
		if !ok {
			if e.defined[name] {
				return nil, fmt.Errorf("%s is not a list", name)
			}
			return nil, fmt.Errorf("undefined list %s", name)
		}
		args[i] = l
	}

	expr := out.String()
	logger.Printf("evaluating %s", expr)
	switch out.Op {
	case "list":
		return e.define(out.Name, expr, args[0]), nil
	case "sort":
		return e.define(out.Name, expr, list.Sort(args[0])), nil
	case "split":
		a, b := list.Split(args[0])
		return append(
			e.define(out.Names[0], "the first result of "+expr, a),
			e.define(out.Names[1], "the second result of "+expr, b)...), nil
	case "merge":
		for i, arg := range args {
			if !list.IsSorted(arg) {
				logger.Printf("warning: argument %d of %s is not sorted", i, expr)
			}
		}
		return e.define(out.Name, expr, list.Merge(args[0], args[1])), nil
	case "append":
		return e.define(out.Name, expr, list.Append(args[0], args[1])), nil
	case "cons":
		if out.Value.Kind == 0 {
			return nil, errors.New("cons requires a value")
		}
		var x T
		if err := out.Value.Decode(&x); err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		if err := e.typ.check(x); err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		return e.define(out.Name, out.expr(e.typ.literal(x)), list.Cons(x, args[0])), nil
	}

	// The remaining ops have a precondition on the length of the argument.
	l := args[0]
	if out.Op == "index" {
		if out.At == nil {
			return nil, errors.New("index requires a position")
		}
		if *out.At < 0 || *out.At >= l.Len() {
			return nil, errs.IndexOutOfRange(*out.At, l.Len())
		}
		return e.defineElem(out.Name, expr, list.Index(l, *out.At)), nil
	}
	if l.Len() == 0 {
		return nil, errs.EmptyList{What: out.Op}
	}
	switch out.Op {
	case "head":
		return e.defineElem(out.Name, expr, list.Head(l)), nil
	case "last":
		return e.defineElem(out.Name, expr, list.Last(l)), nil
	case "tail":
		return e.define(out.Name, expr, list.Tail(l)), nil
	case "init":
		return e.define(out.Name, expr, list.Init(l)), nil
	}
	panic("unreachable")
}

func (e *env[T]) checkNames(out *Output) error {
	if out.Op == "split" {
		if out.Name != "" {
			return errors.New("split defines two names and requires names instead of name")
		}
		if len(out.Names) != 2 {
			return errs.ArityMismatch{
				What: "names of split", ValidLow: 2, ValidHigh: 2, Actual: len(out.Names)}
		}
	} else if len(out.Names) > 0 {
		return fmt.Errorf("%s defines one name and requires name instead of names", out.Op)
	}
	seen := map[string]bool{}
	for _, name := range out.resultNames() {
		if !token.IsIdentifier(name) {
			return fmt.Errorf("name %q is not an identifier", name)
		}
		if name == "_" || name == "init" || types.Universe.Lookup(name) != nil {
			return fmt.Errorf("name %q is reserved in Go", name)
		}
		if e.defined[name] || seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		seen[name] = true
	}
	return nil
}

func (e *env[T]) define(name, expr string, l list.List[T]) []Value {
	e.lists[name] = l
	e.defined[name] = true
	literals := make([]string, 0, l.Len())
	for _, v := range l.Slice() {
		literals = append(literals, e.typ.literal(v))
	}
	return []Value{{Name: name, Expr: expr, IsList: true, Literals: literals, data: l}}
}

func (e *env[T]) defineElem(name, expr string, x T) []Value {
	e.defined[name] = true
	return []Value{{Name: name, Expr: expr, Literals: []string{e.typ.literal(x)}, data: x}}
}
