// SPDX-License-Identifier: MIT
// Package linalg: bivariate Gaussian density with covariance
// regularization.

package linalg

import "math"

// CovEpsilon is added to the covariance diagonal before inversion so a
// collapsed (zero-variance) cluster still yields a finite density.
const CovEpsilon = 1e-6

// twoPi caches 2π for the bivariate normalization constant.
const twoPi = 2 * math.Pi

// Gaussian2D evaluates the bivariate normal density at x for the given
// mean and 2×2 covariance.
//
// Behavior highlights:
//   - The covariance diagonal is regularized by +CovEpsilon before
//     inversion, so variance collapse never produces a singular matrix.
//   - Any non-finite input (coordinates, mean, covariance entries) or a
//     non-positive regularized determinant yields density 0 — the
//     sentinel value callers can render — instead of NaN contaminating
//     downstream responsibilities.
//
// Inputs:
//   - x, mean: 2-element coordinates; shorter slices yield 0.
//   - cov: 2×2 covariance matrix; anything else yields 0.
//
// Complexity: O(1).
func Gaussian2D(x, mean []float64, cov Matrix) float64 {
	if len(x) < 2 || len(mean) < 2 || len(cov) != 2 || len(cov[0]) != 2 || len(cov[1]) != 2 {
		return 0
	}
	for i := 0; i < 2; i++ {
		if !Finite(x[i]) || !Finite(mean[i]) || !Finite(cov[i][0]) || !Finite(cov[i][1]) {
			return 0
		}
	}

	// Regularize the diagonal, then invert the 2×2 directly.
	a := cov[0][0] + CovEpsilon
	d := cov[1][1] + CovEpsilon
	b := cov[0][1]
	det := a*d - b*b
	if det <= 0 {
		return 0
	}

	dx := x[0] - mean[0]
	dy := x[1] - mean[1]
	// Mahalanobis distance via the closed-form 2×2 inverse.
	quad := (d*dx*dx - 2*b*dx*dy + a*dy*dy) / det

	dens := math.Exp(-0.5*quad) / (twoPi * math.Sqrt(det))
	if !Finite(dens) {
		return 0
	}

	return dens
}
