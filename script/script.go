// Package script compiles and evaluates the scripted value expressions used
// by definition files. Expressions are compiled once at load time and run
// against a per-call Context that supplies named variables and functions.
//
// Besides the expr language itself two definition-file conventions are
// supported: a top-level comma list ("10, -4") evaluates to a vector, and a
// bare word ("red") that is not bound in the environment evaluates to itself
// as a string.
package script

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"github.com/yohamta/donburi/features/math"
)

// Env holds the variables and functions visible to one evaluation.
type Env map[string]any

// Lazy is an Env value computed only when an expression references its name.
type Lazy func() any

// Context is the opaque per-call object handed to an evaluation. A nil
// Context evaluates against an empty environment.
type Context interface {
	Env() Env
}

// ErrNotNumber is returned when an expression does not produce a number.
var ErrNotNumber = errors.New("expression is not a number")

// ErrNotVector is returned when an expression does not produce a 2 or 3
// component vector.
var ErrNotVector = errors.New("expression is not a vector")

var bareWord = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Expr is a compiled expression. The zero value and nil are both "absent".
type Expr struct {
	source  string
	program *vm.Program
	word    bool
	names   []string // identifiers referenced by the expression
}

// Compile compiles src. An empty (or all blank) source yields a nil *Expr,
// which every evaluation method treats as absent.
func Compile(src string) (*Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	code := src
	if hasTopLevelComma(src) {
		code = "[" + src + "]"
	}

	tree, err := parser.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	program, err := expr.Compile(code)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}

	names := &identifiers{}
	ast.Walk(&tree.Node, names)

	return &Expr{
		source:  src,
		program: program,
		word:    bareWord.MatchString(src),
		names:   names.list,
	}, nil
}

type identifiers struct {
	list []string
}

func (v *identifiers) Visit(node *ast.Node) {
	if n, ok := (*node).(*ast.IdentifierNode); ok {
		v.list = append(v.list, n.Value)
	}
}

// MustCompile is like Compile but panics on error. Intended for tests and
// static tables.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// Empty reports whether the expression is absent.
func (e *Expr) Empty() bool {
	return e == nil || e.program == nil
}

// Word returns the bare word the expression consists of, if any.
func (e *Expr) Word() (string, bool) {
	if e.Empty() || !e.word {
		return "", false
	}
	return e.source, true
}

func (e *Expr) run(ctx Context) (any, error) {
	env := Env{}
	if ctx != nil {
		if ce := ctx.Env(); ce != nil {
			env = ce
		}
	}
	if e.word {
		if _, bound := env[e.source]; !bound {
			return e.source, nil
		}
	}
	out, err := expr.Run(e.program, e.resolve(env))
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", e.source, err)
	}
	return out, nil
}

// resolve returns env with the lazy values the expression uses computed.
// Unused lazy values are never called.
func (e *Expr) resolve(env Env) map[string]any {
	out := map[string]any(env)
	copied := false
	for _, name := range e.names {
		lazy, ok := env[name].(Lazy)
		if !ok {
			continue
		}
		if !copied {
			out = make(map[string]any, len(env))
			for k, v := range env {
				out[k] = v
			}
			copied = true
		}
		out[name] = lazy()
	}
	return out
}

// Number evaluates the expression as a number.
func (e *Expr) Number(ctx Context) (float64, error) {
	if e.Empty() {
		return 0, fmt.Errorf("evaluate: %w", ErrNotNumber)
	}
	out, err := e.run(ctx)
	if err != nil {
		return 0, err
	}
	f, ok := ToFloat(out)
	if !ok {
		return 0, fmt.Errorf("evaluate %q (%T): %w", e.source, out, ErrNotNumber)
	}
	return f, nil
}

// Vector evaluates the expression as a vector. A third component is accepted
// and ignored since the simulation is planar.
func (e *Expr) Vector(ctx Context) (math.Vec2, error) {
	if e.Empty() {
		return math.Vec2{}, fmt.Errorf("evaluate: %w", ErrNotVector)
	}
	out, err := e.run(ctx)
	if err != nil {
		return math.Vec2{}, err
	}

	items, ok := out.([]any)
	if !ok || len(items) < 2 || len(items) > 3 {
		return math.Vec2{}, fmt.Errorf("evaluate %q (%T): %w", e.source, out, ErrNotVector)
	}
	x, okX := ToFloat(items[0])
	y, okY := ToFloat(items[1])
	if !okX || !okY {
		return math.Vec2{}, fmt.Errorf("evaluate %q: %w", e.source, ErrNotVector)
	}
	return math.Vec2{X: x, Y: y}, nil
}

// String evaluates the expression and formats the result as a string.
func (e *Expr) String(ctx Context) (string, error) {
	if e.Empty() {
		return "", nil
	}
	out, err := e.run(ctx)
	if err != nil {
		return "", err
	}
	switch v := out.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	}
	if f, ok := ToFloat(out); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return fmt.Sprint(out), nil
}

// NumberOr evaluates the expression as a number, or returns def when the
// expression is absent. Evaluation failures are content errors and panic.
func (e *Expr) NumberOr(ctx Context, def float64) float64 {
	if e.Empty() {
		return def
	}
	f, err := e.Number(ctx)
	if err != nil {
		panic(err)
	}
	return f
}

// VectorOr evaluates the expression as a vector, or returns def when the
// expression is absent. Evaluation failures panic.
func (e *Expr) VectorOr(ctx Context, def math.Vec2) math.Vec2 {
	if e.Empty() {
		return def
	}
	v, err := e.Vector(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// StringOr evaluates the expression as a string, or returns def when the
// expression is absent. Evaluation failures panic.
func (e *Expr) StringOr(ctx Context, def string) string {
	if e.Empty() {
		return def
	}
	s, err := e.String(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

// ToFloat converts the numeric result types produced by expr to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return 0, false
}

// hasTopLevelComma reports whether src contains a comma outside of any
// parentheses, brackets or string literal.
func hasTopLevelComma(src string) bool {
	depth := 0
	var quote rune
	for _, r := range src {
		if quote != 0 {
			if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '"', '\'', '`':
			quote = r
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
