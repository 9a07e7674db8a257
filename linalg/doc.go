// SPDX-License-Identifier: MIT
// Package linalg is the numeric kernel shared by every statkit estimator:
// summary statistics, small dense matrix operations, symmetric
// eigendecomposition, and the bivariate Gaussian density.
//
// 🚀 What does linalg cover?
//
//	• Mean / Variance / Covariance / Correlation over paired samples
//	• Transpose, Mul, MatVec, Identity, Clone for small dense matrices
//	• CovarianceMatrix / CorrelationMatrix over row records
//	• Eigen: Jacobi sweeps for symmetric matrices (inputs are ≤ 10×10)
//	• Gaussian2D: regularized bivariate normal density
//
// ✨ Numeric policy:
//
//   - Degenerate input (empty sample, zero variance) yields a documented
//     zero result, never NaN — downstream charts must stay renderable.
//   - Non-finite values (NaN/±Inf) are caught at the boundary: densities
//     evaluate to 0, statistics skip nothing silently but sanitize via
//     Finite before division.
//   - Deterministic loop orders everywhere; identical inputs give
//     bit-identical outputs across runs.
//
// Errors are package-level sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrAsymmetry, ErrEigenFailed) matched with errors.Is; no routine panics
// on user input.
//
// Complexity: everything here is O(n) to O(n³) on matrices that never
// exceed ~10×10, so constants matter more than asymptotics.
package linalg
