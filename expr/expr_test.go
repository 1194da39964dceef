package expr_test

import (
	"math"
	"testing"

	"github.com/hiter-joe/Computing-in-CEE/bisect"
	"github.com/hiter-joe/Computing-in-CEE/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompile_Polynomial verifies arithmetic over x.
func TestCompile_Polynomial(t *testing.T) {
	f, err := expr.Compile("x*x - 2")
	require.NoError(t, err)

	assert.InDelta(t, -2, f(0), 1e-15)
	assert.InDelta(t, 2, f(2), 1e-15)
	assert.InDelta(t, 0, f(math.Sqrt2), 1e-15)
}

// TestCompile_MathFunctions verifies the registered callables.
func TestCompile_MathFunctions(t *testing.T) {
	cases := []struct {
		src  string
		x    float64
		want float64
	}{
		{"sin(x)", math.Pi / 2, 1},
		{"cos(x)", 0, 1},
		{"exp(x)", 1, math.E},
		{"log(x)", math.E, 1},
		{"sqrt(x)", 9, 3},
		{"abs(x)", -4, 4},
		{"pow(x, 3)", 2, 8},
		{"tan(x)", 0, 0},
	}
	for _, tc := range cases {
		f, err := expr.Compile(tc.src)
		require.NoError(t, err, tc.src)
		assert.InDelta(t, tc.want, f(tc.x), 1e-12, tc.src)
	}
}

// TestCompile_DecimalComma verifies comma normalization.
func TestCompile_DecimalComma(t *testing.T) {
	f, err := expr.Compile("x - 0,5")
	require.NoError(t, err)
	assert.InDelta(t, 0, f(0.5), 1e-15)
}

// TestCompile_CommaSeparatedArguments verifies that normalization spares
// the argument separator of two-argument functions: pow(x, 2) must
// compile and evaluate, with or without a decimal comma elsewhere in
// the same expression.
func TestCompile_CommaSeparatedArguments(t *testing.T) {
	f, err := expr.Compile("pow(x, 2) - 2")
	require.NoError(t, err)
	assert.InDelta(t, 2, f(2), 1e-15)
	assert.InDelta(t, 0, f(math.Sqrt2), 1e-15)

	f, err = expr.Compile("pow(x, 2) - 0,25")
	require.NoError(t, err)
	assert.InDelta(t, 0, f(0.5), 1e-15)
}

// TestCompile_ParseError verifies syntax failures surface at compile
// time.
func TestCompile_ParseError(t *testing.T) {
	_, err := expr.Compile("x +* 2")
	assert.Error(t, err)
}

// TestCompile_UnknownVariableYieldsNaN verifies that an undefined
// variable faults at evaluation, producing NaN.
func TestCompile_UnknownVariableYieldsNaN(t *testing.T) {
	f, err := expr.Compile("x + y")
	require.NoError(t, err, "parse succeeds; y is only unknown at evaluation")
	assert.True(t, math.IsNaN(f(1)))
}

// TestCompile_NaNFlowsIntoSolverErr verifies the end-to-end contract:
// an expression that goes non-finite makes the solver fail with its
// ErrNonFinite sentinel rather than return a bogus root.
func TestCompile_NaNFlowsIntoSolverErr(t *testing.T) {
	f, err := expr.Compile("sqrt(x)") // NaN for x < 0
	require.NoError(t, err)

	_, err = bisect.Find(f, -1, 1, nil)
	assert.ErrorIs(t, err, bisect.ErrNonFinite)
}

// TestCompile_DrivesBisection is the happy-path integration: a textual
// expression solved to a known root.
func TestCompile_DrivesBisection(t *testing.T) {
	f, err := expr.Compile("pow(x, 2) - 2")
	require.NoError(t, err)

	opts := bisect.DefaultOptions()
	opts.Epsilon = 1e-6

	res, err := bisect.Find(f, 0, 2, &opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-7)
}
