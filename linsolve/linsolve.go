package linsolve

import "math"

// Solve computes x such that a·x = b by Gaussian elimination with
// scaled partial pivoting, followed by back substitution.
//
// Algorithm outline:
//  1. Validate shape: a must be square and non-ragged, len(b) must
//     equal the order. Inputs are copied; neither a nor b is mutated.
//  2. Record each row's largest absolute coefficient as its scale; a
//     zero scale row is already singular.
//  3. For each column k, promote the row whose pivot magnitude is
//     largest relative to its scale, then eliminate the entries below.
//     A scaled pivot under PivotThreshold aborts with ErrSingular.
//  4. Back-substitute from the last row up.
//
// Complexity: O(n³) time, O(n²) extra space for the working copy —
// entirely adequate for the course's hand-sized mixing and reactor
// systems.
func Solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) == 0 {
		return nil, ErrNilSystem
	}
	for _, row := range a {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}

	// Working copies: elimination must not clobber the caller's system.
	m := make([][]float64, n)
	for i, row := range a {
		m[i] = append([]float64(nil), row...)
	}
	rhs := append([]float64(nil), b...)

	// Row scales for scaled partial pivoting.
	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		s := 0.0
		for j := 0; j < n; j++ {
			s = math.Max(s, math.Abs(m[i][j]))
		}
		if s == 0 {
			return nil, ErrSingular
		}
		scale[i] = s
	}

	// Forward elimination.
	for k := 0; k < n-1; k++ {
		// Promote the row with the largest scaled pivot.
		p := k
		best := math.Abs(m[k][k]) / scale[k]
		for i := k + 1; i < n; i++ {
			if r := math.Abs(m[i][k]) / scale[i]; r > best {
				best, p = r, i
			}
		}
		if best < PivotThreshold {
			return nil, ErrSingular
		}
		if p != k {
			m[p], m[k] = m[k], m[p]
			rhs[p], rhs[k] = rhs[k], rhs[p]
			scale[p], scale[k] = scale[k], scale[p]
		}

		for i := k + 1; i < n; i++ {
			factor := m[i][k] / m[k][k]
			if factor == 0 {
				continue
			}
			m[i][k] = 0
			for j := k + 1; j < n; j++ {
				m[i][j] -= factor * m[k][j]
			}
			rhs[i] -= factor * rhs[k]
		}
	}
	if math.Abs(m[n-1][n-1])/scale[n-1] < PivotThreshold {
		return nil, ErrSingular
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= m[i][j] * x[j]
		}
		x[i] = sum / m[i][i]
	}

	return x, nil
}

// Residual computes r = b - a·x, the leftover of a candidate solution.
// A well-solved system leaves every component near machine precision
// times the problem scale.
func Residual(a [][]float64, b, x []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) == 0 {
		return nil, ErrNilSystem
	}
	for _, row := range a {
		if len(row) != n {
			return nil, ErrNotSquare
		}
	}
	if len(b) != n || len(x) != n {
		return nil, ErrDimensionMismatch
	}

	r := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		r[i] = sum
	}

	return r, nil
}
