// SPDX-License-Identifier: MIT
// Package linalg: small dense matrix operations.
//
// Purpose:
//   - Declare the Matrix representation and the canonical kernels
//     (Transpose, Mul, MatVec) used across the library. Inputs are
//     value tables of at most a few columns, so a plain row-major
//     [][]float64 keeps call sites simple; every kernel validates
//     shape and returns sentinels on mismatch.
//
// Determinism:
//   - Fixed i→j(→k) traversal in every kernel.

package linalg

// Matrix is a small dense row-major matrix. Rows must share one length;
// kernels validate this and return ErrDimensionMismatch otherwise.
type Matrix [][]float64

// NewMatrix allocates a zeroed r×c matrix.
func NewMatrix(r, c int) Matrix {
	m := make(Matrix, r)
	for i := range m {
		m[i] = make([]float64, c)
	}

	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}

	return m
}

// Clone returns a deep copy of m; the result shares no storage with m.
func Clone(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// rectangular reports the column count of m and whether all rows agree.
func rectangular(m Matrix) (int, bool) {
	if len(m) == 0 {
		return 0, true
	}
	c := len(m[0])
	for _, row := range m {
		if len(row) != c {
			return 0, false
		}
	}

	return c, true
}

// Transpose returns mᵀ as a fresh matrix; m is never mutated.
//
// Errors: ErrDimensionMismatch for ragged input.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	c, ok := rectangular(m)
	if !ok {
		return nil, ErrDimensionMismatch
	}
	out := NewMatrix(c, len(m))
	for i, row := range m {
		for j, v := range row {
			out[j][i] = v
		}
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B into a fresh
// matrix (no aliasing, inputs never mutated).
//
// Errors: ErrDimensionMismatch when A is ragged, B is ragged, or
// A.Cols != B.Rows.
// Complexity: O(r*n*c) with fixed i→k→j order.
func Mul(a, b Matrix) (Matrix, error) {
	ac, okA := rectangular(a)
	bc, okB := rectangular(b)
	if !okA || !okB || ac != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := NewMatrix(len(a), bc)
	var av float64
	for i := range a {
		for k := 0; k < ac; k++ {
			av = a[i][k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j := 0; j < bc; j++ {
				out[i][j] += av * b[k][j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors: ErrDimensionMismatch when len(x) != m.Cols or m is ragged.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	c, ok := rectangular(m)
	if !ok || c != len(x) {
		return nil, ErrDimensionMismatch
	}
	y := make([]float64, len(m))
	var acc float64
	for i, row := range m {
		acc = 0
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
