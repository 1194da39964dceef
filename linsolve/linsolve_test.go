package linsolve_test

import (
	"math"
	"testing"

	"github.com/hiter-joe/Computing-in-CEE/linsolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_EmptySystem verifies nil/empty rejection.
func TestSolve_EmptySystem(t *testing.T) {
	_, err := linsolve.Solve(nil, []float64{1})
	assert.ErrorIs(t, err, linsolve.ErrNilSystem)

	_, err = linsolve.Solve([][]float64{{1}}, nil)
	assert.ErrorIs(t, err, linsolve.ErrNilSystem)
}

// TestSolve_NotSquare verifies ragged and rectangular rejection.
func TestSolve_NotSquare(t *testing.T) {
	_, err := linsolve.Solve([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.ErrorIs(t, err, linsolve.ErrNotSquare, "ragged matrix must error")

	_, err = linsolve.Solve([][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 2})
	assert.ErrorIs(t, err, linsolve.ErrNotSquare, "rectangular matrix must error")
}

// TestSolve_DimensionMismatch verifies rhs length checking.
func TestSolve_DimensionMismatch(t *testing.T) {
	_, err := linsolve.Solve([][]float64{{1, 0}, {0, 1}}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, linsolve.ErrDimensionMismatch)
}

// TestSolve_Identity verifies the trivial case x = b.
func TestSolve_Identity(t *testing.T) {
	a := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	b := []float64{3, -7, 2.5}

	x, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, b, x)
}

// TestSolve_Known2x2 verifies an exactly solvable hand system:
// 2x + y = 5, x - y = 1  →  x = 2, y = 1.
func TestSolve_Known2x2(t *testing.T) {
	a := [][]float64{{2, 1}, {1, -1}}
	b := []float64{5, 1}

	x, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 2, x[0], 1e-12)
	assert.InDelta(t, 1, x[1], 1e-12)
}

// TestSolve_ReactorNetwork verifies the three-reactor mixing system the
// course derives: a feed-forward cascade with a recycle from the third
// reactor back to the first. Exact steady state: c = (11.875, 15, 15).
func TestSolve_ReactorNetwork(t *testing.T) {
	a := [][]float64{
		{8, 0, -3},
		{-8, 13, 0},
		{0, -13, 13},
	}
	b := []float64{50, 100, 0}

	c, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 11.875, c[0], 1e-9)
	assert.InDelta(t, 15, c[1], 1e-9)
	assert.InDelta(t, 15, c[2], 1e-9)
}

// TestSolve_NeedsPivoting verifies a system whose natural order has a
// zero leading pivot; plain elimination would divide by zero.
func TestSolve_NeedsPivoting(t *testing.T) {
	a := [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 0},
	}
	// Exact solution x = (1, 2, 3): b = A·x.
	b := []float64{7, 6, 4}

	x, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, x[0], 1e-12)
	assert.InDelta(t, 2, x[1], 1e-12)
	assert.InDelta(t, 3, x[2], 1e-12)
}

// TestSolve_Singular verifies that linearly dependent rows surface
// ErrSingular.
func TestSolve_Singular(t *testing.T) {
	a := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{1, 0, 1},
	}
	_, err := linsolve.Solve(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, linsolve.ErrSingular)
}

// TestSolve_ZeroRow verifies that an all-zero row is detected during
// scaling, before elimination starts.
func TestSolve_ZeroRow(t *testing.T) {
	a := [][]float64{
		{1, 2},
		{0, 0},
	}
	_, err := linsolve.Solve(a, []float64{1, 0})
	assert.ErrorIs(t, err, linsolve.ErrSingular)
}

// TestSolve_DoesNotMutateInputs verifies the caller's matrix and rhs
// survive a solve untouched.
func TestSolve_DoesNotMutateInputs(t *testing.T) {
	a := [][]float64{{2, 1}, {1, -1}}
	b := []float64{5, 1}
	aCopy := [][]float64{{2, 1}, {1, -1}}
	bCopy := []float64{5, 1}

	_, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

// TestResidual_NearZeroAfterSolve verifies the solve/verify round trip
// on a system whose leading pivot is tiny relative to its row scale —
// the case scaled pivoting exists for. Built from x = (1, -1, 2).
func TestResidual_NearZeroAfterSolve(t *testing.T) {
	a := [][]float64{
		{1e-3, 2, 0},
		{2, 1, 1},
		{1, 0, 3},
	}
	b := []float64{-1.999, 3, 7}

	x, err := linsolve.Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1, x[0], 1e-9)
	assert.InDelta(t, -1, x[1], 1e-9)
	assert.InDelta(t, 2, x[2], 1e-9)

	r, err := linsolve.Residual(a, b, x)
	require.NoError(t, err)
	for i, ri := range r {
		assert.Less(t, math.Abs(ri), 1e-9, "residual component %d", i)
	}
}

// TestResidual_DimensionChecks verifies Residual's own validation.
func TestResidual_DimensionChecks(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	_, err := linsolve.Residual(a, []float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, linsolve.ErrDimensionMismatch)
}
