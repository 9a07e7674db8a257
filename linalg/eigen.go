// SPDX-License-Identifier: MIT
// Package linalg: symmetric eigendecomposition via Jacobi sweeps.

package linalg

import (
	"math"
	"sort"
)

// Default numeric policy for Eigen; inputs here never exceed ~10×10,
// where these bounds converge comfortably.
const (
	// EigenTol is the default off-diagonal convergence tolerance.
	EigenTol = 1e-10

	// EigenMaxIter is the default rotation cap.
	EigenMaxIter = 300
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate square, symmetric within tol. Clone A; init Q=I.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in fixed
//     i→j order and apply a Jacobi rotation; accumulate into Q.
//   - Stage 3: If the max off-diagonal is still ≥ tol after maxIter
//     rotations, fail with ErrEigenFailed rather than returning noise.
//
// Inputs:
//   - m: symmetric matrix (within tol); n := len(m).
//   - tol: convergence threshold; tol <= 0 selects EigenTol.
//   - maxIter: rotation cap; maxIter <= 0 selects EigenMaxIter.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix).
//   - Matrix: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare, ErrAsymmetry, ErrEigenFailed.
//
// Determinism:
//   - Fixed pivot scan and update order produce stable results.
//
// Complexity:
//   - Time O(maxIter * n²) per sweep scan plus O(n) per rotation,
//     Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	n := len(m)
	if n == 0 {
		return nil, nil, ErrEmptyMatrix
	}
	if tol <= 0 {
		tol = EigenTol
	}
	if maxIter <= 0 {
		maxIter = EigenMaxIter
	}
	c, ok := rectangular(m)
	if !ok || c != n {
		return nil, nil, ErrNonSquare
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m[i][j]-m[j][i]) > tol {
				return nil, nil, ErrAsymmetry
			}
		}
	}

	a := Clone(m) // working copy; m is never mutated
	q := Identity(n)

	var (
		p, r          int
		maxOff, off   float64
		app, aqq, apq float64
		aip, aiq      float64
		theta, t      float64
		cs, sn        float64
	)
	for iter := 0; iter < maxIter; iter++ {
		// Find pivot (p,r) maximizing |A[p,r]| over the upper triangle.
		maxOff = 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off = math.Abs(a[i][j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		// The pivot scan guarantees |apq| = maxOff ≥ tol here, so the
		// rotation below always makes progress.
		app, aqq, apq = a[p][p], a[r][r], a[p][r]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cs = 1.0 / math.Sqrt(t*t+1)
		sn = t * cs

		// Apply the rotation to A, keeping symmetry explicit.
		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, aiq = a[i][p], a[i][r]
			a[i][p], a[p][i] = cs*aip-sn*aiq, cs*aip-sn*aiq
			a[i][r], a[r][i] = sn*aip+cs*aiq, sn*aip+cs*aiq
		}
		a[p][p] = cs*cs*app - 2*cs*sn*apq + sn*sn*aqq
		a[r][r] = sn*sn*app + 2*cs*sn*apq + cs*cs*aqq
		a[p][r], a[r][p] = 0, 0

		// Accumulate the rotation into Q.
		for i := 0; i < n; i++ {
			aip, aiq = q[i][p], q[i][r]
			q[i][p] = cs*aip - sn*aiq
			q[i][r] = sn*aip + cs*aiq
		}
	}

	// Final convergence check: the caller must never see silent noise.
	maxOff = 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			off = math.Abs(a[i][j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, ErrEigenFailed
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a[i][i]
	}

	return eigs, q, nil
}

// EigenPair couples one eigenvalue with its eigenvector.
type EigenPair struct {
	Value  float64
	Vector []float64
}

// EigenSorted runs Eigen and returns the pairs sorted by descending
// eigenvalue (stable order for ties), the convention PCA and factor
// analysis both expect.
//
// Errors: as Eigen.
func EigenSorted(m Matrix, tol float64, maxIter int) ([]EigenPair, error) {
	vals, q, err := Eigen(m, tol, maxIter)
	if err != nil {
		return nil, err
	}
	n := len(vals)
	pairs := make([]EigenPair, n)
	for i := 0; i < n; i++ {
		vec := make([]float64, n)
		for row := 0; row < n; row++ {
			vec[row] = q[row][i] // column i of Q
		}
		pairs[i] = EigenPair{Value: vals[i], Vector: vec}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Value > pairs[j].Value })

	return pairs, nil
}
