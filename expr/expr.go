// Package expr compiles textual f(x) expressions into core.Func
// callbacks, so solvers can be driven from CLI flags, problem files or
// a notebook prompt without writing Go.
//
// Expressions use govaluate syntax with the variable x and the usual
// math functions registered: sin, cos, tan, exp, log, sqrt, abs,
// pow(base, power). Decimal commas between digits are normalized to
// dots before parsing, so "0,5*x" and "0.5*x" name the same function;
// argument separators such as the comma in pow(x, 2) are left alone.
//
// Syntax errors surface at Compile time. A runtime evaluation fault
// (or a non-numeric result) makes the compiled Func return NaN, which
// every solver in this module converts into its ErrNonFinite sentinel
// — malformed expressions cannot masquerade as roots.
//
// ⚙️ Usage:
//
//	f, err := expr.Compile("pow(x, 2) - 2")
//	if err != nil {
//	  // parse failure
//	}
//	res, err := bisect.Find(f, 0, 2, nil)
//
// The compiled Func allocates its parameter map per call and is safe
// for concurrent use.
package expr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/Knetic/govaluate"

	"github.com/hiter-joe/Computing-in-CEE/core"
)

// decimalComma matches a comma squeezed between two digits — the
// decimal-separator habit the course's tooling accepts. A comma
// followed by whitespace never matches, so argument lists written the
// documented way (pow(x, 2), pow(2, 3)) keep their separators.
var decimalComma = regexp.MustCompile(`(\d),(\d)`)

// mathFuncs are the callables registered into every compiled
// expression.
var mathFuncs = map[string]govaluate.ExpressionFunction{
	"sin":  func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
	"cos":  func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
	"tan":  func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
	"exp":  func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
	"log":  func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
	"sqrt": func(args ...interface{}) (interface{}, error) { return math.Sqrt(toFloat(args[0])), nil },
	"abs":  func(args ...interface{}) (interface{}, error) { return math.Abs(toFloat(args[0])), nil },
	"pow": func(args ...interface{}) (interface{}, error) {
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// Compile parses src into a core.Func of the single variable x.
// Parse errors are returned immediately; evaluation faults at call
// time yield NaN (see the package comment).
func Compile(src string) (core.Func, error) {
	// Accept decimal commas the way the course's tooling does, without
	// touching argument separators like the comma in pow(x, 2).
	src = decimalComma.ReplaceAllString(src, "$1.$2")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, mathFuncs)
	if err != nil {
		return nil, fmt.Errorf("expr: %w", err)
	}

	return func(x float64) float64 {
		v, err := parsed.Evaluate(map[string]interface{}{"x": x})
		if err != nil {
			return math.NaN()
		}
		return toFloat(v)
	}, nil
}

// toFloat coerces govaluate's result types to float64, mapping
// anything non-numeric to NaN.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
